package mouse

import (
	"testing"

	"github.com/badu/tkey/event"
	"gotest.tools/v3/assert"
)

func TestDecodeX10Press(t *testing.T) {
	res, info, x, y, mods, n := DecodeX10([]byte{0x20, 0x30, 0x40})
	assert.Equal(t, res, ResOK)
	assert.Equal(t, n, 3)
	assert.Equal(t, info, uint16(0))
	assert.Equal(t, x, uint16(15))
	assert.Equal(t, y, uint16(31))
	assert.Equal(t, mods, event.Mod(0))
}

func TestDecodeX10NeedsMoreBytes(t *testing.T) {
	res, _, _, _, _, n := DecodeX10([]byte{0x20})
	assert.Equal(t, res, ResAgain)
	assert.Equal(t, n, 0)
}

func TestDecodeX10ExtractsModifiers(t *testing.T) {
	// 0x20 (base) | shift(0x04) | ctrl(0x10) = 0x34
	_, info, _, _, mods, _ := DecodeX10([]byte{0x34, 0x21, 0x21})
	assert.Equal(t, mods, event.ModShift|event.ModCtrl)
	assert.Equal(t, info, uint16(0))
}

func TestDecodeSGRRelease(t *testing.T) {
	info, x, y, _ := DecodeSGR([3]int{0, 5, 10}, 'm')
	assert.Equal(t, info&0x8000 != 0, true)
	assert.Equal(t, x, uint16(4))
	assert.Equal(t, y, uint16(9))
}

func TestDecodeRxvt(t *testing.T) {
	info, x, y, _ := DecodeRxvt([3]int{0x20, 5, 10})
	assert.Equal(t, info, uint16(0))
	assert.Equal(t, x, uint16(4))
	assert.Equal(t, y, uint16(9))
}

func TestInterpretPress(t *testing.T) {
	kind, button := Interpret(0)
	assert.Equal(t, kind, event.MousePress)
	assert.Equal(t, button, 1)
}

func TestInterpretDrag(t *testing.T) {
	kind, button := Interpret(0x20)
	assert.Equal(t, kind, event.MouseDrag)
	assert.Equal(t, button, 1)
}

func TestInterpretWheel(t *testing.T) {
	kind, button := Interpret(65)
	assert.Equal(t, kind, event.MousePress)
	assert.Equal(t, button, 5)
}

func TestInterpretForceRelease(t *testing.T) {
	kind, _ := Interpret(0x8000)
	assert.Equal(t, kind, event.MouseRelease)
}
