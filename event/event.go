// Package event defines the tagged event union the decoder produces and the
// internal KeyInfo template that terminfo/CSI/SS3 matches resolve to. It has
// no dependency on the decoder itself so the trie, csi and mouse packages
// can depend on it without an import cycle back to the root package.
package event

import "fmt"

// Mod is a tri-bit (plus reserved) modifier mask.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

func (m Mod) String() string {
	s := ""
	if m&ModCtrl != 0 {
		s += "C-"
	}
	if m&ModAlt != 0 {
		s += "A-"
	}
	if m&ModShift != 0 {
		s += "S-"
	}
	return s
}

// Sym identifies a named key that has no natural Unicode codepoint (Up,
// PageDown, a function-key alias, ...). Zero is reserved for "no symbol".
type Sym uint16

const (
	SymNone Sym = iota
	SymBackspace
	SymTab
	SymEnter
	SymEscape
	SymSpace
	SymDel
	SymUp
	SymDown
	SymLeft
	SymRight
	SymBegin
	SymFind
	SymInsert
	SymDelete
	SymSelect
	SymPageUp
	SymPageDown
	SymHome
	SymEnd
	SymCancel
	SymClear
	SymClose
	SymCommand
	SymCopy
	SymExit
	SymHelp
	SymMark
	SymMessage
	SymMove
	SymOpen
	SymOptions
	SymPrint
	SymRedo
	SymReference
	SymRefresh
	SymReplace
	SymRestart
	SymResume
	SymSave
	SymSuspend
	SymUndo
	SymKP0
	SymKP1
	SymKP2
	SymKP3
	SymKP4
	SymKP5
	SymKP6
	SymKP7
	SymKP8
	SymKP9
	SymKPEnter
	SymKPPlus
	SymKPMinus
	SymKPMult
	SymKPDiv
	SymKPComma
	SymKPPeriod
	SymKPEquals
)

var symNames = map[Sym]string{
	SymNone: "NONE", SymBackspace: "Backspace", SymTab: "Tab", SymEnter: "Enter",
	SymEscape: "Escape", SymSpace: "Space", SymDel: "DEL", SymUp: "Up", SymDown: "Down",
	SymLeft: "Left", SymRight: "Right", SymBegin: "Begin", SymFind: "Find",
	SymInsert: "Insert", SymDelete: "Delete", SymSelect: "Select", SymPageUp: "PageUp",
	SymPageDown: "PageDown", SymHome: "Home", SymEnd: "End", SymCancel: "Cancel",
	SymClear: "Clear", SymClose: "Close", SymCommand: "Command", SymCopy: "Copy",
	SymExit: "Exit", SymHelp: "Help", SymMark: "Mark", SymMessage: "Message",
	SymMove: "Move", SymOpen: "Open", SymOptions: "Options", SymPrint: "Print",
	SymRedo: "Redo", SymReference: "Reference", SymRefresh: "Refresh",
	SymReplace: "Replace", SymRestart: "Restart", SymResume: "Resume", SymSave: "Save",
	SymSuspend: "Suspend", SymUndo: "Undo", SymKPEnter: "KPEnter", SymKPPlus: "KPPlus",
	SymKPMinus: "KPMinus", SymKPMult: "KPMult", SymKPDiv: "KPDiv", SymKPComma: "KPComma",
	SymKPPeriod: "KPPeriod", SymKPEquals: "KPEquals",
}

// Name returns the keyname-registry label for sym, used only for debug
// logging; there is no reverse lookup (Parse) surface.
func (s Sym) Name() string {
	if n, ok := symNames[s]; ok {
		return n
	}
	if s >= SymKP0 && s <= SymKP9 {
		return fmt.Sprintf("KP%d", s-SymKP0)
	}
	return fmt.Sprintf("Sym(%d)", uint16(s))
}

// Type discriminates the Event union.
type Type int

const (
	TypeKey Type = iota
	TypeSym
	TypeFunction
	TypeMouse
	TypeFocus
	TypePosition
	TypeModeReport
	TypeUnknownCsi
)

// MouseEventKind is the result of Mouse.Interpret.
type MouseEventKind int

const (
	MousePress MouseEventKind = iota
	MouseDrag
	MouseRelease
	MouseUnknown
)

// Event is the tagged union the decoder produces. Only the fields relevant
// to Type are meaningful; the zero value of the others is never
// inspected by callers that switch on Type first.
type Event struct {
	Type Type
	Mod  Mod

	// TypeKey
	Codepoint rune
	Multibyte []byte

	// TypeSym
	Sym Sym

	// TypeFunction
	Number int

	// TypeMouse
	MouseInfo uint16
	X, Y      uint16

	// TypeFocus
	FocusIn bool

	// TypePosition
	Row, Col uint16

	// TypeModeReport
	Initial byte
	Mode    uint16
	Value   uint16

	// TypeUnknownCsi
	Command uint32
}

func (e Event) String() string {
	switch e.Type {
	case TypeKey:
		return fmt.Sprintf("Key(%s%q)", e.Mod, e.Codepoint)
	case TypeSym:
		return fmt.Sprintf("Sym(%s%s)", e.Mod, e.Sym.Name())
	case TypeFunction:
		return fmt.Sprintf("Function(%s%d)", e.Mod, e.Number)
	case TypeMouse:
		return fmt.Sprintf("Mouse(info=%#x,x=%d,y=%d,%s)", e.MouseInfo, e.X, e.Y, e.Mod)
	case TypeFocus:
		return fmt.Sprintf("Focus(in=%v)", e.FocusIn)
	case TypePosition:
		return fmt.Sprintf("Position(row=%d,col=%d)", e.Row, e.Col)
	case TypeModeReport:
		return fmt.Sprintf("ModeReport(initial=%q,mode=%d,value=%d)", e.Initial, e.Mode, e.Value)
	case TypeUnknownCsi:
		return fmt.Sprintf("UnknownCsi(command=%#x)", e.Command)
	}
	return "Event(?)"
}

// KeyInfo is the internal template a matched byte sequence maps to: the
// target event shape plus a modifier mask/set pair. ModMask is cleared on
// the event's modifiers before ModSet is OR-ed in, which lets e.g. a
// terminfo "Shift-Tab" sequence force SHIFT even though its own wire form
// carries no argument to say so.
type KeyInfo struct {
	Type    Type
	Sym     Sym
	Number  int
	ModMask Mod
	ModSet  Mod
}

// Apply builds the Event this KeyInfo describes, folding baseMods through
// the mask/set pair.
func (k KeyInfo) Apply(baseMods Mod) Event {
	mods := (baseMods &^ k.ModMask) | k.ModSet
	switch k.Type {
	case TypeSym:
		return Event{Type: TypeSym, Sym: k.Sym, Mod: mods}
	case TypeFunction:
		return Event{Type: TypeFunction, Number: k.Number, Mod: mods}
	default:
		return Event{Type: k.Type, Mod: mods}
	}
}

// Result is the outcome of a peek/get operation.
type Result int

const (
	ResKey Result = iota
	ResNone
	ResAgain
	ResEof
	ResError
)

func (r Result) String() string {
	switch r {
	case ResKey:
		return "Key"
	case ResNone:
		return "None"
	case ResAgain:
		return "Again"
	case ResEof:
		return "Eof"
	case ResError:
		return "Error"
	}
	return "?"
}
