// Package mouse decodes the three mouse wire formats a terminal may send
// (X10 3-byte, UTF-8 extended/1005, and the already CSI-parsed SGR/1006 and
// rxvt/1015 forms) into the opaque info/x/y/modifiers shape of a Mouse
// event, and interprets that opaque form into a press/drag/release button.
package mouse

import (
	"unicode/utf8"

	"github.com/badu/tkey/codec"
	"github.com/badu/tkey/event"
)

// Result is the outcome of a wire decode.
type Result int

const (
	// ResOK means info/x/y/mods/n are a complete decode.
	ResOK Result = iota
	// ResAgain means not enough bytes have arrived yet.
	ResAgain
)

// modsFromInfo extracts SHIFT/ALT/CTRL from the classic X10-derived bit
// layout shared by X10, 1005 and rxvt: bits 2-4 of the button byte, and
// clears them from the returned info.
func modsFromInfo(info int) (int, event.Mod) {
	mods := event.Mod((info & 0x1c) >> 2)
	return info &^ 0x1c, mods
}

// DecodeX10 decodes the classic X10 3-byte format that follows a bare
// "\x1b[M" intro: three bytes, each biased by 0x20.
func DecodeX10(b []byte) (res Result, info, x, y uint16, mods event.Mod, n int) {
	if len(b) < 3 {
		return ResAgain, 0, 0, 0, 0, 0
	}
	raw := int(b[0]) - 0x20
	raw, mods = modsFromInfo(raw)
	xx := int(b[1]) - 0x21
	yy := int(b[2]) - 0x21
	return ResOK, uint16(raw), uint16(xx), uint16(yy), mods, 3
}

// DecodeUTF8Extended decodes the 1005 format: the same three-field shape as
// X10, but each field is a UTF-8 scalar read with the fast inline parser
// rather than a single biased byte, to survive values beyond what a single
// byte can encode. An unparseable scalar is replaced with 0x20 (no
// movement) rather than desynchronizing the stream; this is a stability
// choice, not a guarantee about what the terminal actually sent.
func DecodeUTF8Extended(b []byte) (res Result, info, x, y uint16, mods event.Mod, n int) {
	cp0, n0 := codec.ParseUTF8Fast(b)
	if n0 == 0 {
		return ResAgain, 0, 0, 0, 0, 0
	}
	cp1, n1 := codec.ParseUTF8Fast(b[n0:])
	if n1 == 0 {
		return ResAgain, 0, 0, 0, 0, 0
	}
	cp2, n2 := codec.ParseUTF8Fast(b[n0+n1:])
	if n2 == 0 {
		return ResAgain, 0, 0, 0, 0, 0
	}
	if cp0 == utf8.RuneError {
		cp0 = 0x20
	}
	if cp1 == utf8.RuneError {
		cp1 = 0x20
	}
	if cp2 == utf8.RuneError {
		cp2 = 0x20
	}
	raw := int(cp0) - 0x20
	raw, mods = modsFromInfo(raw)
	xx := int(cp1) - 0x21
	yy := int(cp2) - 0x21
	return ResOK, uint16(raw), uint16(xx), uint16(yy), mods, n0 + n1 + n2
}

// DecodeSGR interprets three CSI arguments already parsed by the CSI driver
// as the SGR (1006) mouse wire format. final is the CSI sequence's final
// byte: 'M' for press/motion, 'm' for release.
func DecodeSGR(args [3]int, final byte) (info, x, y uint16, mods event.Mod) {
	raw := args[0]
	if final == 'm' {
		raw |= 0x8000
	}
	modBits, mods := modsFromInfo(raw &^ 0x8000)
	if raw&0x8000 != 0 {
		modBits |= 0x8000
	}
	return uint16(modBits), uint16(args[1] - 1), uint16(args[2] - 1), mods
}

// DecodeRxvt interprets three CSI arguments already parsed by the CSI driver
// as the rxvt (1015) mouse wire format: the button argument is biased by
// 0x20 the same way the raw X10 byte is.
func DecodeRxvt(args [3]int) (info, x, y uint16, mods event.Mod) {
	raw := args[0] - 0x20
	raw, mods = modsFromInfo(raw)
	return uint16(raw), uint16(args[1] - 1), uint16(args[2] - 1), mods
}

// Interpret maps an opaque Mouse event's info field to a press/drag/release
// classification and a 1-based button number (0 for "no button hint").
func Interpret(info uint16) (kind event.MouseEventKind, button int) {
	drag := info&0x20 != 0
	code := info &^ 0x20
	switch code {
	case 0, 1, 2:
		button = int(code) + 1
		if drag {
			kind = event.MouseDrag
		} else {
			kind = event.MousePress
		}
	case 3:
		kind = event.MouseRelease
	case 64, 65:
		button = int(code-64) + 4
		if drag {
			kind = event.MouseDrag
		} else {
			kind = event.MousePress
		}
	default:
		kind = event.MouseUnknown
	}
	if info&0x8000 != 0 {
		kind = event.MouseRelease
	}
	return kind, button
}
