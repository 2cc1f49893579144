// Package tkey decodes a raw tty byte stream into a typed sequence of
// keyboard, mouse, focus, cursor-position and mode-report events. It chains
// a terminfo-derived trie driver, an ECMA-48 CSI/SS3 parser and a fallback
// simple/C0/Alt-prefix/multibyte driver behind a single ring buffer, with a
// timeout-bounded "again" protocol that lets a lone <Esc> be told apart from
// the start of a longer sequence.
package tkey

import "github.com/badu/tkey/event"

// These are aliases onto package event so that callers of the decoder only
// ever need to import the root package; trie/csi/mouse depend on event
// directly to avoid an import cycle back here.
type (
	Event          = event.Event
	Type           = event.Type
	Mod            = event.Mod
	Sym            = event.Sym
	KeyInfo        = event.KeyInfo
	Result         = event.Result
	MouseEventKind = event.MouseEventKind
)

const (
	TypeKey        = event.TypeKey
	TypeSym        = event.TypeSym
	TypeFunction   = event.TypeFunction
	TypeMouse      = event.TypeMouse
	TypeFocus      = event.TypeFocus
	TypePosition   = event.TypePosition
	TypeModeReport = event.TypeModeReport
	TypeUnknownCsi = event.TypeUnknownCsi

	ModShift = event.ModShift
	ModAlt   = event.ModAlt
	ModCtrl  = event.ModCtrl

	ResKey   = event.ResKey
	ResNone  = event.ResNone
	ResAgain = event.ResAgain
	ResEof   = event.ResEof
	ResError = event.ResError

	MousePress   = event.MousePress
	MouseDrag    = event.MouseDrag
	MouseRelease = event.MouseRelease
	MouseUnknown = event.MouseUnknown
)

const (
	SymNone      = event.SymNone
	SymBackspace = event.SymBackspace
	SymTab       = event.SymTab
	SymEnter     = event.SymEnter
	SymEscape    = event.SymEscape
	SymSpace     = event.SymSpace
	SymDel       = event.SymDel
	SymUp        = event.SymUp
	SymDown      = event.SymDown
	SymLeft      = event.SymLeft
	SymRight     = event.SymRight
	SymBegin     = event.SymBegin
	SymFind      = event.SymFind
	SymInsert    = event.SymInsert
	SymDelete    = event.SymDelete
	SymSelect    = event.SymSelect
	SymPageUp    = event.SymPageUp
	SymPageDown  = event.SymPageDown
	SymHome      = event.SymHome
	SymEnd       = event.SymEnd
)
