package tkey

// KeyCmp orders two events for comparison and deduplication: first by Type,
// then by the fields that type actually uses, then by Mod. It returns a
// negative number if a sorts before b, zero if they are equivalent, and a
// positive number otherwise. Fields outside the active Type (e.g. Codepoint
// on a Sym event) never participate, matching Event's own tagged-union
// contract.
func KeyCmp(a, b Event) int {
	if a.Type != b.Type {
		return int(a.Type) - int(b.Type)
	}
	switch a.Type {
	case TypeKey:
		if a.Codepoint != b.Codepoint {
			return int(a.Codepoint) - int(b.Codepoint)
		}
	case TypeSym:
		if a.Sym != b.Sym {
			return int(a.Sym) - int(b.Sym)
		}
	case TypeFunction:
		if a.Number != b.Number {
			return a.Number - b.Number
		}
	case TypeMouse:
		if a.MouseInfo != b.MouseInfo {
			return int(a.MouseInfo) - int(b.MouseInfo)
		}
		if a.X != b.X {
			return int(a.X) - int(b.X)
		}
		if a.Y != b.Y {
			return int(a.Y) - int(b.Y)
		}
	case TypeFocus:
		if a.FocusIn != b.FocusIn {
			if a.FocusIn {
				return 1
			}
			return -1
		}
	case TypePosition:
		if a.Row != b.Row {
			return int(a.Row) - int(b.Row)
		}
		if a.Col != b.Col {
			return int(a.Col) - int(b.Col)
		}
	case TypeModeReport:
		if a.Initial != b.Initial {
			return int(a.Initial) - int(b.Initial)
		}
		if a.Mode != b.Mode {
			return int(a.Mode) - int(b.Mode)
		}
		if a.Value != b.Value {
			return int(a.Value) - int(b.Value)
		}
	case TypeUnknownCsi:
		if a.Command != b.Command {
			if a.Command < b.Command {
				return -1
			}
			return 1
		}
	}
	return int(a.Mod) - int(b.Mod)
}

// KeyEqual reports whether a and b are the same event under KeyCmp.
func KeyEqual(a, b Event) bool { return KeyCmp(a, b) == 0 }
