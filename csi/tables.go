package csi

import "github.com/badu/tkey/event"

// cursorFinals maps a bare CSI cursor-key final byte to its Sym. These are
// the uppercase ECMA-48 forms ("CSI A" for Up, and so on).
var cursorFinals = map[byte]event.Sym{
	'A': event.SymUp,
	'B': event.SymDown,
	'C': event.SymRight,
	'D': event.SymLeft,
	'E': event.SymBegin,
	'F': event.SymEnd,
	'H': event.SymHome,
}

// rxvtCursorFinals maps rxvt's lowercase cursor-key variants, which always
// carry an implicit SHIFT.
var rxvtCursorFinals = map[byte]event.Sym{
	'a': event.SymUp,
	'b': event.SymDown,
	'c': event.SymRight,
	'd': event.SymLeft,
}

// ss3Finals maps an SS3 final byte directly to a KeyInfo. P/Q/R/S are the
// four function keys that travel over SS3 rather than CSI; the keypad
// digits and operators are present so ConvertKP can rewrite an
// application-keypad SS3 sequence back into its normal-keypad Sym.
var ss3Finals = map[byte]event.KeyInfo{
	'A': {Type: event.TypeSym, Sym: event.SymUp},
	'B': {Type: event.TypeSym, Sym: event.SymDown},
	'C': {Type: event.TypeSym, Sym: event.SymRight},
	'D': {Type: event.TypeSym, Sym: event.SymLeft},
	'E': {Type: event.TypeSym, Sym: event.SymBegin},
	'F': {Type: event.TypeSym, Sym: event.SymEnd},
	'H': {Type: event.TypeSym, Sym: event.SymHome},
	'P': {Type: event.TypeFunction, Number: 1},
	'Q': {Type: event.TypeFunction, Number: 2},
	'R': {Type: event.TypeFunction, Number: 3},
	'S': {Type: event.TypeFunction, Number: 4},

	'M': {Type: event.TypeSym, Sym: event.SymKPEnter},
	'j': {Type: event.TypeSym, Sym: event.SymKPMult},
	'k': {Type: event.TypeSym, Sym: event.SymKPPlus},
	'l': {Type: event.TypeSym, Sym: event.SymKPComma},
	'm': {Type: event.TypeSym, Sym: event.SymKPMinus},
	'n': {Type: event.TypeSym, Sym: event.SymKPPeriod},
	'o': {Type: event.TypeSym, Sym: event.SymKPDiv},
	'p': {Type: event.TypeSym, Sym: event.SymKP0},
	'q': {Type: event.TypeSym, Sym: event.SymKP1},
	'r': {Type: event.TypeSym, Sym: event.SymKP2},
	's': {Type: event.TypeSym, Sym: event.SymKP3},
	't': {Type: event.TypeSym, Sym: event.SymKP4},
	'u': {Type: event.TypeSym, Sym: event.SymKP5},
	'v': {Type: event.TypeSym, Sym: event.SymKP6},
	'w': {Type: event.TypeSym, Sym: event.SymKP7},
	'x': {Type: event.TypeSym, Sym: event.SymKP8},
	'y': {Type: event.TypeSym, Sym: event.SymKP9},
	'X': {Type: event.TypeSym, Sym: event.SymKPEquals},
}

// csiFuncs maps the numeric argument of a "CSI <n> ~" sequence (and its
// rxvt '^'/'$'/'@' modified siblings) to a KeyInfo. The numbering follows
// the xterm functional-key convention, including its gaps at 16 and 22
// (reserved, never assigned).
var csiFuncs = map[int]event.KeyInfo{
	1:  {Type: event.TypeSym, Sym: event.SymFind},
	2:  {Type: event.TypeSym, Sym: event.SymInsert},
	3:  {Type: event.TypeSym, Sym: event.SymDelete},
	4:  {Type: event.TypeSym, Sym: event.SymSelect},
	5:  {Type: event.TypeSym, Sym: event.SymPageUp},
	6:  {Type: event.TypeSym, Sym: event.SymPageDown},
	7:  {Type: event.TypeSym, Sym: event.SymHome},
	8:  {Type: event.TypeSym, Sym: event.SymEnd},
	11: {Type: event.TypeFunction, Number: 1},
	12: {Type: event.TypeFunction, Number: 2},
	13: {Type: event.TypeFunction, Number: 3},
	14: {Type: event.TypeFunction, Number: 4},
	15: {Type: event.TypeFunction, Number: 5},
	17: {Type: event.TypeFunction, Number: 6},
	18: {Type: event.TypeFunction, Number: 7},
	19: {Type: event.TypeFunction, Number: 8},
	20: {Type: event.TypeFunction, Number: 9},
	21: {Type: event.TypeFunction, Number: 10},
	23: {Type: event.TypeFunction, Number: 11},
	24: {Type: event.TypeFunction, Number: 12},
	25: {Type: event.TypeFunction, Number: 13},
	26: {Type: event.TypeFunction, Number: 14},
	28: {Type: event.TypeFunction, Number: 15},
	29: {Type: event.TypeFunction, Number: 16},
	31: {Type: event.TypeFunction, Number: 17},
	32: {Type: event.TypeFunction, Number: 18},
	33: {Type: event.TypeFunction, Number: 19},
	34: {Type: event.TypeFunction, Number: 20},
}

// rxvtModFinal maps the rxvt modified-function-key final byte to the
// modifier it forces on top of whatever csiFuncs produced.
var rxvtModFinal = map[byte]event.Mod{
	'^': event.ModCtrl,
	'$': event.ModShift,
	'@': event.ModShift | event.ModCtrl,
}
