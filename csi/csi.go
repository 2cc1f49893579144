package csi

import (
	"github.com/badu/tkey/event"
	"github.com/badu/tkey/mouse"
)

// Options configures how Peek interprets an ambiguous sequence.
type Options struct {
	// ConvertKP rewrites an application-keypad SS3 sequence (e.g. "ESC O p"
	// for keypad 0) back into the Sym a normal-keypad Home/End/digit key
	// would produce, for callers that don't want to distinguish keypad state.
	ConvertKP bool
}

// Peek attempts to parse one complete CSI or SS3 sequence at the front of b,
// where b[0] is known to open one (see DetectIntro). It returns the decoded
// event, the number of bytes consumed including the intro, or ResAgain if
// more bytes are needed, or ResUnknown with a populated UnknownCsi event (so
// InterpretCSI can retry it later) if the final byte was recognized as a
// valid CSI/SS3 terminator but not one this driver assigns meaning to.
func Peek(b []byte, intro Intro, introLen int, opts Options) (res Result, n int, ev event.Event) {
	switch intro {
	case IntroCSI, IntroCSI8:
		return peekCSI(b, introLen, opts)
	case IntroSS3, IntroSS38:
		return peekSS3(b[introLen:], introLen, opts)
	}
	return ResNone, 0, event.Event{}
}

func peekSS3(body []byte, introLen int, opts Options) (Result, int, event.Event) {
	if len(body) == 0 {
		return ResAgain, 0, event.Event{}
	}
	final := body[0]
	info, ok := ss3Finals[final]
	if !ok {
		return ResUnknown, introLen + 1, event.Event{Type: event.TypeUnknownCsi, Command: uint32(final)}
	}
	if opts.ConvertKP {
		info = convertKeypad(info)
	}
	return ResKey, introLen + 1, info.Apply(0)
}

// convertKeypad rewrites an SS3 application-keypad KeyInfo to the Sym its
// normal-keypad counterpart would produce.
func convertKeypad(info event.KeyInfo) event.KeyInfo {
	switch info.Sym {
	case event.SymKP0:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymInsert}
	case event.SymKP1:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymEnd}
	case event.SymKP2:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymDown}
	case event.SymKP3:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymPageDown}
	case event.SymKP4:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymLeft}
	case event.SymKP5:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymBegin}
	case event.SymKP6:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymRight}
	case event.SymKP7:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymHome}
	case event.SymKP8:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymUp}
	case event.SymKP9:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymPageUp}
	case event.SymKPComma, event.SymKPPeriod:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymDelete}
	case event.SymKPEnter:
		return event.KeyInfo{Type: event.TypeSym, Sym: event.SymEnter}
	default:
		return info
	}
}

func peekCSI(b []byte, introLen int, opts Options) (Result, int, event.Event) {
	body := b[introLen:]
	pr, parsed, consumed := ParseBody(body)
	if pr == PAgain {
		return ResAgain, 0, event.Event{}
	}
	total := introLen + consumed
	if parsed.Final == 0 {
		return ResUnknown, total, event.Event{Type: event.TypeUnknownCsi, Command: Command(parsed)}
	}

	switch {
	case parsed.Private == 0 && parsed.Intermediate == 0:
		if sym, ok := cursorFinals[parsed.Final]; ok {
			return ResKey, total, event.Event{Type: event.TypeSym, Sym: sym, Mod: modFromArg1(parsed)}
		}
		if sym, ok := rxvtCursorFinals[parsed.Final]; ok {
			return ResKey, total, event.Event{Type: event.TypeSym, Sym: sym, Mod: event.ModShift}
		}
	}

	switch parsed.Final {
	case 'Z':
		return ResKey, total, event.Event{Type: event.TypeSym, Sym: event.SymTab, Mod: event.ModShift}
	case 'R':
		if len(parsed.Args) >= 2 {
			return ResKey, total, event.Event{Type: event.TypePosition, Row: uint16(parsed.Arg(0, 1)), Col: uint16(parsed.Arg(1, 1))}
		}
	case '~':
		return csiFunc(parsed, total, 0)
	case '^', '$', '@':
		if mod, ok := rxvtModFinal[parsed.Final]; ok {
			return csiFunc(parsed, total, mod)
		}
	case 'u':
		return ResKey, total, kittyKey(parsed, total)
	case 'M', 'm':
		return mouseCSI(parsed, total, b[total:])
	case 'I':
		return ResKey, total, event.Event{Type: event.TypeFocus, FocusIn: true}
	case 'O':
		return ResKey, total, event.Event{Type: event.TypeFocus, FocusIn: false}
	case 'y':
		if parsed.Intermediate == '$' && len(parsed.Args) >= 2 {
			return ResKey, total, event.Event{
				Type:    event.TypeModeReport,
				Initial: parsed.Private,
				Mode:    uint16(parsed.Arg(0, 0)),
				Value:   uint16(parsed.Arg(1, 0)),
			}
		}
	}
	return ResUnknown, total, event.Event{Type: event.TypeUnknownCsi, Command: Command(parsed)}
}

// modFromArg1 decodes the xterm convention of carrying a modifier mask as
// "1+bits" in the second argument of a modified cursor/function sequence
// (e.g. "CSI 1;5C" for Ctrl-Right).
func modFromArg1(p Parsed) event.Mod {
	if len(p.Args) < 2 {
		return 0
	}
	v := p.Arg(1, 1) - 1
	if v <= 0 {
		return 0
	}
	return event.Mod(v & 0x07)
}

func csiFunc(p Parsed, total int, forced event.Mod) (Result, int, event.Event) {
	n := p.Arg(0, -1)
	// The Kitty legacy modifier-key form repurposes arg0==27 ("CSI
	// 27;<mods>;<codepoint>~") to carry an arbitrary codepoint plus
	// modifiers rather than a functional-key index.
	if n == 27 && len(p.Args) >= 3 {
		return ResKey, total, event.Event{
			Type:      event.TypeKey,
			Codepoint: rune(p.Arg(2, 0)),
			Mod:       xtermMod(p.Arg(1, 1)) | forced,
		}
	}
	info, ok := csiFuncs[n]
	if !ok {
		return ResUnknown, total, event.Event{Type: event.TypeUnknownCsi, Command: Command(p)}
	}
	mod := forced
	if len(p.Args) >= 2 {
		mod |= xtermMod(p.Arg(1, 1))
	}
	return ResKey, total, info.Apply(mod)
}

func kittyKey(p Parsed, total int) event.Event {
	cp := p.Arg(0, 0)
	mod := xtermMod(p.Arg(1, 1))
	return event.Event{Type: event.TypeKey, Codepoint: rune(cp), Mod: mod}
}

func xtermMod(v int) event.Mod {
	v--
	if v <= 0 {
		return 0
	}
	return event.Mod(v & 0x07)
}

// mouseCSI dispatches an 'M'/'m'-terminated CSI sequence. SGR (private
// marker '<') and rxvt (no private marker, 3+ args already parsed as
// decimal CSI arguments) are fully decoded from the parsed arguments alone.
// A bare "CSI M" with fewer than 3 arguments is X10's wire format riding on
// the CSI intro: its three payload bytes are raw, not CSI syntax, so
// ParseBody stopped at the 'M' final byte and left them in tail.
func mouseCSI(p Parsed, total int, tail []byte) (Result, int, event.Event) {
	switch {
	case p.Private == '<' && len(p.Args) >= 3:
		info, x, y, mods := mouse.DecodeSGR([3]int{p.Arg(0, 0), p.Arg(1, 1), p.Arg(2, 1)}, p.Final)
		return ResKey, total, event.Event{Type: event.TypeMouse, MouseInfo: info, X: x, Y: y, Mod: mods}
	case p.Private == 0 && len(p.Args) >= 3:
		info, x, y, mods := mouse.DecodeRxvt([3]int{p.Arg(0, 0), p.Arg(1, 1), p.Arg(2, 1)})
		return ResKey, total, event.Event{Type: event.TypeMouse, MouseInfo: info, X: x, Y: y, Mod: mods}
	default:
		mr, info, x, y, mods, consumed := mouse.DecodeX10(tail)
		if mr == mouse.ResAgain {
			return ResAgain, 0, event.Event{}
		}
		return ResKey, total + consumed, event.Event{Type: event.TypeMouse, MouseInfo: info, X: x, Y: y, Mod: mods}
	}
}
