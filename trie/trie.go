// Package trie implements the terminfo-derived byte-sequence trie: the
// longest-prefix match from a raw byte sequence to either a KeyInfo (C3's
// trie driver proper) or a mouse-intro marker that the caller should hand
// off to the mouse sub-decoder.
//
// Nodes are one of three kinds: an interior Array node addressed by a
// tight [min,max] byte extent, a terminal KeyLeaf, or a terminal MouseLeaf.
// Leaves are always terminal: walking past one is a programming error, not
// an input-driven outcome, and panics rather than returning a Result.
package trie

import "github.com/badu/tkey/event"

type kind int

const (
	kindArray kind = iota
	kindKey
	kindMouse
)

type node struct {
	kind     kind
	min, max byte
	children []*node
	info     event.KeyInfo
}

func newArray(min, max byte) *node {
	return &node{kind: kindArray, min: min, max: max, children: make([]*node, int(max-min)+1)}
}

func (n *node) index(b byte) (int, bool) {
	if b < n.min || b > n.max {
		return 0, false
	}
	return int(b - n.min), true
}

// Trie is a terminfo byte-sequence trie. The zero value is not usable; use
// New.
type Trie struct {
	root *node
}

// New returns an empty trie spanning the full byte range, ready for Insert
// and InsertMouse calls. Call Compress once all sequences are loaded.
func New() *Trie {
	return &Trie{root: newArray(0x00, 0xff)}
}

// Insert stores seq as a path terminating in a KeyLeaf carrying info.
// Insertion must happen before Compress: compression tightens each node's
// extent to the bytes actually populated, and inserting afterward could fall
// outside that tightened range.
func (t *Trie) Insert(seq []byte, info event.KeyInfo) {
	t.insert(seq, &node{kind: kindKey, info: info})
}

// InsertMouse stores seq (the X10 mouse intro, typically "\x1b[M") as a path
// terminating in a MouseLeaf.
func (t *Trie) InsertMouse(seq []byte) {
	t.insert(seq, &node{kind: kindMouse})
}

func (t *Trie) insert(seq []byte, leaf *node) {
	if len(seq) == 0 {
		return
	}
	cur := t.root
	for pos := 0; pos < len(seq); pos++ {
		idx, ok := cur.index(seq[pos])
		if !ok {
			panic("tkey/trie: insert outside of extent bounds")
		}
		if pos == len(seq)-1 {
			cur.children[idx] = leaf
			return
		}
		child := cur.children[idx]
		if child == nil || child.kind != kindArray {
			child = newArray(0x00, 0xff)
			cur.children[idx] = child
		}
		cur = child
	}
}

// Compress recomputes a tight [min,max] extent for every Array node in one
// bottom-up pass, freeing the unused slots New's full 0x00-0xff span
// reserved during loading.
func (t *Trie) Compress() {
	t.root = compress(t.root)
}

func compress(n *node) *node {
	if n == nil || n.kind != kindArray {
		return n
	}
	min, max := -1, -1
	for i, c := range n.children {
		if c == nil {
			continue
		}
		if min == -1 {
			min = i
		}
		max = i
	}
	if min == -1 {
		return newArray(0, 0)
	}
	tight := &node{kind: kindArray, min: n.min + byte(min), max: n.min + byte(max)}
	tight.children = make([]*node, max-min+1)
	for i := min; i <= max; i++ {
		tight.children[i-min] = compress(n.children[i])
	}
	return tight
}

// Result is the outcome of a Lookup.
type Result int

const (
	// ResNone means b does not match any stored sequence at all.
	ResNone Result = iota
	// ResAgain means b is a valid but incomplete prefix of some sequence.
	ResAgain
	// ResKey means b's prefix of length n matched a KeyLeaf.
	ResKey
	// ResMouse means b's prefix of length n reached a MouseLeaf; the caller
	// should delegate the remainder of the buffer to the mouse sub-decoder.
	ResMouse
)

// Lookup walks the trie against b one byte per edge.
func (t *Trie) Lookup(b []byte) (res Result, info event.KeyInfo, n int) {
	cur := t.root
	for pos := 0; pos < len(b); pos++ {
		if cur.kind != kindArray {
			panic("tkey/trie: lookup-next called on a leaf")
		}
		idx, ok := cur.index(b[pos])
		if !ok {
			return ResNone, event.KeyInfo{}, 0
		}
		child := cur.children[idx]
		if child == nil {
			return ResNone, event.KeyInfo{}, 0
		}
		switch child.kind {
		case kindKey:
			return ResKey, child.info, pos + 1
		case kindMouse:
			return ResMouse, event.KeyInfo{}, pos + 1
		default:
			cur = child
		}
	}
	return ResAgain, event.KeyInfo{}, 0
}
