package csi

import (
	"testing"

	"github.com/badu/tkey/event"
	"gotest.tools/v3/assert"
)

func peekAll(t *testing.T, raw string, opts Options) (Result, int, event.Event) {
	t.Helper()
	b := []byte(raw)
	intro, n := DetectIntro(b)
	assert.Assert(t, intro != IntroNone, "expected %q to open a CSI/SS3 sequence", raw)
	return Peek(b, intro, n, opts)
}

func TestCursorKey(t *testing.T) {
	res, n, ev := peekAll(t, "\x1b[C", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, n, 3)
	assert.Equal(t, ev.Type, event.TypeSym)
	assert.Equal(t, ev.Sym, event.SymRight)
}

func TestModifiedCursorKey(t *testing.T) {
	res, n, ev := peekAll(t, "\x1b[1;5C", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, n, 6)
	assert.Equal(t, ev.Sym, event.SymRight)
	assert.Equal(t, ev.Mod, event.ModCtrl)
}

func TestRxvtCursorKeyForcesShift(t *testing.T) {
	res, _, ev := peekAll(t, "\x1b[a", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Sym, event.SymUp)
	assert.Equal(t, ev.Mod, event.ModShift)
}

func TestCSIFuncTilde(t *testing.T) {
	res, _, ev := peekAll(t, "\x1b[5~", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Sym, event.SymPageUp)
}

func TestRxvtModifiedFunc(t *testing.T) {
	res, _, ev := peekAll(t, "\x1b[3^", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Sym, event.SymDelete)
	assert.Equal(t, ev.Mod, event.ModCtrl)
}

func TestKittyLegacyModifierForm(t *testing.T) {
	res, _, ev := peekAll(t, "\x1b[27;5;9~", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, event.TypeKey)
	assert.Equal(t, ev.Codepoint, rune(9))
	assert.Equal(t, ev.Mod, event.ModCtrl)
}

func TestKittyCSIu(t *testing.T) {
	res, _, ev := peekAll(t, "\x1b[97;2u", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, event.TypeKey)
	assert.Equal(t, ev.Codepoint, rune(97))
	assert.Equal(t, ev.Mod, event.ModShift)
}

func TestFocusInOut(t *testing.T) {
	res, _, ev := peekAll(t, "\x1b[I", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, event.TypeFocus)
	assert.Equal(t, ev.FocusIn, true)

	res, _, ev = peekAll(t, "\x1b[O", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.FocusIn, false)
}

func TestPositionReport(t *testing.T) {
	res, n, ev := peekAll(t, "\x1b[24;80R", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, n, 8)
	assert.Equal(t, ev.Type, event.TypePosition)
	assert.Equal(t, ev.Row, uint16(24))
	assert.Equal(t, ev.Col, uint16(80))
}

func TestModeReport(t *testing.T) {
	res, _, ev := peekAll(t, "\x1b[?1;2$y", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, event.TypeModeReport)
	assert.Equal(t, ev.Initial, byte('?'))
	assert.Equal(t, ev.Mode, uint16(1))
	assert.Equal(t, ev.Value, uint16(2))
}

func TestMouseSGR(t *testing.T) {
	res, _, ev := peekAll(t, "\x1b[<0;10;20M", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, event.TypeMouse)
	assert.Equal(t, ev.X, uint16(9))
	assert.Equal(t, ev.Y, uint16(19))
}

func TestMouseSGRRelease(t *testing.T) {
	_, _, ev := peekAll(t, "\x1b[<0;10;20m", Options{})
	assert.Equal(t, ev.MouseInfo&0x8000 != 0, true)
}

func TestMouseX10NeedsMoreBytes(t *testing.T) {
	b := []byte("\x1b[M")
	intro, n := DetectIntro(b)
	res, consumed, _ := Peek(b, intro, n, Options{})
	assert.Equal(t, res, ResAgain)
	assert.Equal(t, consumed, 0)
}

func TestMouseX10Complete(t *testing.T) {
	b := []byte("\x1b[M" + string([]byte{0x20, 0x30, 0x30}))
	intro, n := DetectIntro(b)
	res, consumed, ev := Peek(b, intro, n, Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, consumed, 6)
	assert.Equal(t, ev.Type, event.TypeMouse)
}

func TestSS3Cursor(t *testing.T) {
	res, n, ev := peekAll(t, "\x1bOA", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, n, 3)
	assert.Equal(t, ev.Sym, event.SymUp)
}

func TestSS3Function(t *testing.T) {
	res, _, ev := peekAll(t, "\x1bOP", Options{})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Type, event.TypeFunction)
	assert.Equal(t, ev.Number, 1)
}

func TestSS3KeypadConvert(t *testing.T) {
	res, _, ev := peekAll(t, "\x1bOp", Options{ConvertKP: true})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Sym, event.SymInsert)
}

func TestSS3KeypadNoConvert(t *testing.T) {
	res, _, ev := peekAll(t, "\x1bOp", Options{ConvertKP: false})
	assert.Equal(t, res, ResKey)
	assert.Equal(t, ev.Sym, event.SymKP0)
}

func TestUnknownFinalByte(t *testing.T) {
	res, n, ev := peekAll(t, "\x1b[5g", Options{})
	assert.Equal(t, res, ResUnknown)
	assert.Equal(t, n, 4)
	assert.Equal(t, ev.Type, event.TypeUnknownCsi)
	assert.Equal(t, ev.Command, uint32('g'))
}

func TestAgainOnIncompleteBody(t *testing.T) {
	res, n, _ := peekAll(t, "\x1b[1;", Options{})
	assert.Equal(t, res, ResAgain)
	assert.Equal(t, n, 0)
}
