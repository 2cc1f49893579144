package tkey

import (
	"testing"

	"github.com/badu/tkey/info"
	"gotest.tools/v3/assert"
)

func newTestDecoder() *Decoder {
	return NewDecoder(-1, "xterm", WithTerminfoSource(info.Static["xterm"]))
}

func TestCursorKeyViaCSI(t *testing.T) {
	d := newTestDecoder()
	_, _ = d.PushBytes([]byte("\x1b[C"))
	res, ev := d.GetKey()
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, TypeSym)
	assert.Equal(t, ev.Sym, SymRight)
	assert.Equal(t, d.BufferRemaining(), d.buf.Cap())
}

func TestLoneEscIsAgainThenForced(t *testing.T) {
	d := newTestDecoder()
	_, _ = d.PushBytes([]byte("\x1b"))
	res, _, _ := d.PeekKey()
	assert.Equal(t, res, ResAgain)

	res, ev, n := d.GetKeyForce()
	assert.Equal(t, res, ResKey)
	assert.Equal(t, n, 1)
	assert.Equal(t, ev.Sym, SymEscape)
}

func TestAltPrefixedKey(t *testing.T) {
	d := newTestDecoder()
	_, _ = d.PushBytes([]byte("\x1ba"))
	res, ev := d.GetKey()
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, TypeKey)
	assert.Equal(t, ev.Codepoint, rune('a'))
	assert.Equal(t, ev.Mod, ModAlt)
}

func TestCtrlLetterKey(t *testing.T) {
	d := newTestDecoder()
	_, _ = d.PushBytes([]byte{0x01}) // Ctrl-A
	res, ev := d.GetKey()
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, TypeKey)
	assert.Equal(t, ev.Codepoint, rune('a'))
	assert.Equal(t, ev.Mod, ModCtrl)
}

func TestPlainCodepoint(t *testing.T) {
	d := newTestDecoder()
	_, _ = d.PushBytes([]byte("x"))
	res, ev := d.GetKey()
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, TypeKey)
	assert.Equal(t, ev.Codepoint, rune('x'))
}

func TestSpaceCanonicalizedToSym(t *testing.T) {
	d := NewDecoder(-1, "xterm", WithTerminfoSource(info.Static["xterm"]), WithCanonFlags(CanonSpaceSymbol))
	_, _ = d.PushBytes([]byte(" "))
	res, ev := d.GetKey()
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, TypeSym)
	assert.Equal(t, ev.Sym, SymSpace)
}

func TestEmptyBufferIsNone(t *testing.T) {
	d := newTestDecoder()
	res, _, _ := d.PeekKey()
	assert.Equal(t, res, ResNone)
}

func TestTrieInsertedHomeKey(t *testing.T) {
	d := newTestDecoder()
	_, _ = d.PushBytes([]byte("\x1bOH"))
	res, ev := d.GetKey()
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Sym, SymHome)
}

func TestMouseX10ViaTrie(t *testing.T) {
	d := newTestDecoder()
	_, _ = d.PushBytes([]byte("\x1b[M" + string([]byte{0x20, 0x21, 0x21})))
	res, ev := d.GetKey()
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, TypeMouse)
	kind, button := InterpretMouse(ev.MouseInfo)
	assert.Equal(t, kind, MousePress)
	assert.Equal(t, button, 1)
}

func TestKeyCmpOrdersByTypeThenField(t *testing.T) {
	a := Event{Type: TypeKey, Codepoint: 'a'}
	b := Event{Type: TypeKey, Codepoint: 'b'}
	assert.Assert(t, KeyCmp(a, b) < 0)
	assert.Assert(t, KeyEqual(a, a))
}
