package trie

import (
	"testing"

	"github.com/badu/tkey/event"
	"gotest.tools/v3/assert"
)

func buildSample() *Trie {
	tr := New()
	tr.Insert([]byte("\x1bOA"), event.KeyInfo{Type: event.TypeSym, Sym: event.SymUp})
	tr.Insert([]byte("\x1bOC"), event.KeyInfo{Type: event.TypeSym, Sym: event.SymRight})
	tr.Insert([]byte("\x1b[1~"), event.KeyInfo{Type: event.TypeSym, Sym: event.SymHome})
	tr.InsertMouse([]byte("\x1b[M"))
	tr.Compress()
	return tr
}

func TestLookupCompleteMatch(t *testing.T) {
	tr := buildSample()
	res, info, n := tr.Lookup([]byte("\x1bOA"))
	assert.Equal(t, res, ResKey)
	assert.Equal(t, n, 3)
	assert.Equal(t, info.Sym, event.SymUp)
}

func TestLookupAgainOnPartialPrefix(t *testing.T) {
	tr := buildSample()
	res, _, _ := tr.Lookup([]byte("\x1bO"))
	assert.Equal(t, res, ResAgain)
}

func TestLookupNoneOffTree(t *testing.T) {
	tr := buildSample()
	res, _, _ := tr.Lookup([]byte("\x1bZ"))
	assert.Equal(t, res, ResNone)
}

func TestLookupMouseLeaf(t *testing.T) {
	tr := buildSample()
	res, _, n := tr.Lookup([]byte("\x1b[M \x20\x20"))
	assert.Equal(t, res, ResMouse)
	assert.Equal(t, n, 3)
}

func TestLookupLongerSequenceSharesPrefix(t *testing.T) {
	tr := buildSample()
	res, info, n := tr.Lookup([]byte("\x1b[1~"))
	assert.Equal(t, res, ResKey)
	assert.Equal(t, n, 4)
	assert.Equal(t, info.Sym, event.SymHome)
}

func TestInsertOutsideExtentPanicsAfterCompress(t *testing.T) {
	tr := buildSample()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic inserting outside compressed extent")
		}
	}()
	// After Compress, the root's extent is tight around 0x1b; inserting a
	// sequence starting elsewhere must panic rather than silently grow.
	tr.Insert([]byte{0x01}, event.KeyInfo{Type: event.TypeSym, Sym: event.SymTab})
}
