package tkey

import "github.com/badu/tkey/codec"

// c0Override lets a caller remap a specific C0 control byte (0x00-0x1f) to a
// Sym other than its ECMA-48 default, the way a host might want DEL (0x7f)
// or a stray NUL treated specially. It is consulted before the built-in
// Backspace/Tab/Enter/Escape table.
type c0Override map[byte]Sym

var c0Defaults = map[byte]Sym{
	0x08: SymBackspace,
	0x09: SymTab,
	0x0d: SymEnter,
	0x1b: SymEscape,
	0x7f: SymDel,
}

// peekSimple is the C6 fallback driver: it handles a lone C0 control byte,
// an Alt-prefixed recursion into the same driver (Esc followed by something
// that isn't the start of a CSI/SS3/trie sequence), and the plain
// codepoint/multibyte path via the active codec. It is reached when neither
// the trie nor the CSI driver resolved the buffered prefix (under force, also
// when they were still waiting for more bytes), and directly when
// FlagNoInterpret or FlagRaw is set.
func (d *Decoder) peekSimple(b []byte, force bool, altPrefixed bool) (Result, int, Event) {
	if len(b) == 0 {
		return ResNone, 0, Event{}
	}

	c := b[0]

	// A lone Esc is ambiguous: it might be standalone Escape, or the start
	// of an Alt-prefixed key that just hasn't arrived yet. AGAIN unless
	// force (timeout elapsed) or this Esc is itself nested inside an
	// Alt-prefix recursion, which never stacks a second prefix.
	if c == 0x1b && !altPrefixed {
		if len(b) == 1 {
			if !force {
				return ResAgain, 0, Event{}
			}
			return ResKey, 1, Event{Type: TypeSym, Sym: SymEscape}
		}
		res, n, ev := d.peekSimple(b[1:], force, true)
		switch res {
		case ResKey:
			return ResKey, n + 1, Event{Type: ev.Type, Sym: ev.Sym, Number: ev.Number, Codepoint: ev.Codepoint, Multibyte: ev.Multibyte, Mod: ev.Mod | ModAlt}
		case ResAgain:
			return ResAgain, 0, Event{}
		default:
			return res, n, ev
		}
	}

	if sym, ok := d.c0[c]; ok {
		return ResKey, 1, Event{Type: TypeSym, Sym: sym}
	}
	if sym, ok := c0Defaults[c]; ok {
		if sym == SymDel && d.canon&CanonDelBS != 0 {
			sym = SymBackspace
		}
		return ResKey, 1, Event{Type: TypeSym, Sym: sym}
	}
	if c < 0x20 {
		// Remaining C0 controls are Ctrl combinations: 0x01-0x1a map back onto
		// the lowercase letter they were derived from (Ctrl-A is 0x01), and the
		// others onto their '@'..'_' counterparts (0x00 is Ctrl-@).
		cp := rune(c) + 0x40
		if c >= 0x01 && c <= 0x1a {
			cp += 0x20
		}
		return ResKey, 1, Event{Type: TypeKey, Codepoint: cp, Mod: ModCtrl}
	}

	return d.emitCodepoint(b, force)
}

// emitCodepoint decodes one codepoint from b using the active codec and
// folds it into a Key event, canonicalizing Space and DEL per the
// configured CanonFlags.
func (d *Decoder) emitCodepoint(b []byte, force bool) (Result, int, Event) {
	cp, n, res := d.codec.ParseOne(b)
	switch res {
	case codec.Again:
		if !force {
			return ResAgain, 0, Event{}
		}
		return ResError, 0, Event{}
	case codec.Replacement:
		return ResKey, n, Event{Type: TypeKey, Codepoint: cp}
	}

	ev := Event{Type: TypeKey, Codepoint: cp}
	if d.canon&CanonSpaceSymbol != 0 && cp == ' ' {
		ev = Event{Type: TypeSym, Sym: SymSpace}
	}
	if d.canon&CanonDelBS != 0 && cp == 0x7f {
		ev = Event{Type: TypeSym, Sym: SymBackspace}
	}
	if n > 1 {
		ev.Multibyte = append([]byte(nil), b[:n]...)
	}
	return ResKey, n, ev
}
