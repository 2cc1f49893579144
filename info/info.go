// Package info loads the terminfo key_* capabilities for a terminal (via a
// live infocmp query, falling back to a small built-in table) and builds
// the byte-sequence trie the decoder's C3 driver walks.
package info

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/badu/tkey/event"
	"github.com/badu/tkey/trie"
)

// Capabilities is a terminfo entry reduced to the capability names this
// decoder cares about: the key_* sequences, kmous, and the keypad
// transmit/local strings. Values are raw, unescaped byte sequences.
type Capabilities map[string]string

// direct maps a terminfo capability name straight to a KeyInfo.
var direct = map[string]event.KeyInfo{
	"kcuu1": {Type: event.TypeSym, Sym: event.SymUp},
	"kcud1": {Type: event.TypeSym, Sym: event.SymDown},
	"kcub1": {Type: event.TypeSym, Sym: event.SymLeft},
	"kcuf1": {Type: event.TypeSym, Sym: event.SymRight},
	"khome": {Type: event.TypeSym, Sym: event.SymHome},
	"kend":  {Type: event.TypeSym, Sym: event.SymEnd},
	"kich1": {Type: event.TypeSym, Sym: event.SymInsert},
	"kdch1": {Type: event.TypeSym, Sym: event.SymDelete},
	"knp":   {Type: event.TypeSym, Sym: event.SymPageDown},
	"kpp":   {Type: event.TypeSym, Sym: event.SymPageUp},
	"kbs":   {Type: event.TypeSym, Sym: event.SymBackspace},
	"kcbt":  {Type: event.TypeSym, Sym: event.SymTab, ModSet: event.ModShift, ModMask: event.ModShift},
	"ka1":   {Type: event.TypeSym, Sym: event.SymHome},
	"ka3":   {Type: event.TypeSym, Sym: event.SymPageUp},
	"kb2":   {Type: event.TypeSym, Sym: event.SymBegin},
	"kc1":   {Type: event.TypeSym, Sym: event.SymEnd},
	"kc3":   {Type: event.TypeSym, Sym: event.SymPageDown},
	"kclr":  {Type: event.TypeSym, Sym: event.SymClear},
	"kslt":  {Type: event.TypeSym, Sym: event.SymSelect},
	"kfnd":  {Type: event.TypeSym, Sym: event.SymFind},
	"khlp":  {Type: event.TypeSym, Sym: event.SymHelp},
}

// modifiedBase maps the xterm modified-key capability prefix (kUP, kDN, ...)
// to the Sym it carries when unmodified.
var modifiedBase = map[string]event.Sym{
	"kUP":  event.SymUp,
	"kDN":  event.SymDown,
	"kLFT": event.SymLeft,
	"kRIT": event.SymRight,
	"kHOM": event.SymHome,
	"kEND": event.SymEnd,
	"kNXT": event.SymPageDown,
	"kPRV": event.SymPageUp,
	"kDC":  event.SymDelete,
	"kIC":  event.SymInsert,
}

// modifiedSuffix maps the xterm modified-key numeric suffix (2-8) to the
// modifier combination it encodes.
var modifiedSuffix = map[string]event.Mod{
	"2": event.ModShift,
	"3": event.ModAlt,
	"4": event.ModAlt | event.ModShift,
	"5": event.ModCtrl,
	"6": event.ModCtrl | event.ModShift,
	"7": event.ModAlt | event.ModCtrl,
	"8": event.ModAlt | event.ModCtrl | event.ModShift,
}

// BuildTrie inserts every recognized capability in caps into a fresh trie,
// including kf1..kfN function keys, the xterm modified-arrow/nav
// conventions (kUP3, kDC5, ...) and the kmous mouse intro, and compresses
// it before returning.
func BuildTrie(caps Capabilities) *trie.Trie {
	t := trie.New()
	for name, seq := range caps {
		if seq == "" {
			continue
		}
		if info, ok := direct[name]; ok {
			t.Insert([]byte(seq), info)
			continue
		}
		if name == "kmous" {
			t.InsertMouse([]byte(seq))
			continue
		}
		if n, ok := functionNumber(name); ok {
			t.Insert([]byte(seq), event.KeyInfo{Type: event.TypeFunction, Number: n})
			continue
		}
		if info, ok := modifiedKey(name); ok {
			t.Insert([]byte(seq), info)
			continue
		}
	}
	t.Compress()
	return t
}

func functionNumber(name string) (int, bool) {
	if !strings.HasPrefix(name, "kf") {
		return 0, false
	}
	n, err := strconv.Atoi(name[2:])
	if err != nil {
		return 0, false
	}
	return n, true
}

func modifiedKey(name string) (event.KeyInfo, bool) {
	for base, sym := range modifiedBase {
		if !strings.HasPrefix(name, base) {
			continue
		}
		suffix := name[len(base):]
		mod, ok := modifiedSuffix[suffix]
		if !ok {
			continue
		}
		return event.KeyInfo{Type: event.TypeSym, Sym: sym, ModMask: event.ModShift | event.ModAlt | event.ModCtrl, ModSet: mod}, true
	}
	return event.KeyInfo{}, false
}

// capNames is the set of terminfo capability names Load keeps from
// infocmp's full output.
var capNames = func() []string {
	names := make([]string, 0, len(direct)+len(modifiedBase)*7+64)
	for n := range direct {
		names = append(names, n)
	}
	for base := range modifiedBase {
		for suffix := range modifiedSuffix {
			names = append(names, base+suffix)
		}
	}
	for i := 1; i <= 20; i++ {
		names = append(names, fmt.Sprintf("kf%d", i))
	}
	names = append(names, "kmous", "smkx", "rmkx")
	return names
}()

// Load shells out to infocmp to read the named terminal's key_* capabilities
// (and kmous, and the keypad transmit/local strings smkx/rmkx). It returns
// an error if infocmp cannot be run or the terminal is unknown; callers
// should fall back to Static in that case.
func Load(termName string) (Capabilities, error) {
	out, err := exec.Command("infocmp", "-1", termName).Output()
	if err != nil {
		return nil, fmt.Errorf("info: infocmp %s: %w", termName, err)
	}
	all := parseInfocmp(out)
	caps := make(Capabilities, len(capNames))
	for _, name := range capNames {
		if v, ok := all[name]; ok {
			caps[name] = v
		}
	}
	return caps, nil
}

func parseInfocmp(out []byte) map[string]string {
	caps := make(map[string]string)
	for _, line := range bytes.Split(out, []byte("\n")) {
		s := strings.TrimSpace(string(line))
		s = strings.TrimSuffix(s, ",")
		if s == "" || strings.HasPrefix(s, "#") || !strings.Contains(s, "=") {
			continue
		}
		parts := strings.SplitN(s, "=", 2)
		caps[parts[0]] = unescape(parts[1])
	}
	return caps
}

// unescape decodes a terminfo string capability's escapes: \E/\e for ESC,
// \n \r \t \b \f \s for their usual control characters, \^ and \\ and \,
// and \: for literal characters, \nnn octal escapes, and ^X caret notation
// for control characters.
func unescape(s string) string {
	var out bytes.Buffer
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i++
			switch s[i] {
			case 'E', 'e':
				out.WriteByte(0x1b)
			case 'n':
				out.WriteByte('\n')
			case 'r':
				out.WriteByte('\r')
			case 't':
				out.WriteByte('\t')
			case 'b':
				out.WriteByte('\b')
			case 'f':
				out.WriteByte('\f')
			case 's':
				out.WriteByte(' ')
			case '0', '1', '2', '3', '4', '5', '6', '7':
				j := i
				for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
					j++
				}
				if v, err := strconv.ParseUint(s[i:j], 8, 8); err == nil {
					out.WriteByte(byte(v))
				}
				i = j - 1
			default:
				out.WriteByte(s[i])
			}
		case c == '^' && i+1 < len(s):
			i++
			if s[i] == '?' {
				out.WriteByte(0x7f)
			} else {
				out.WriteByte(s[i] &^ 0x40)
			}
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// Static holds a minimal built-in table for the handful of terminals most
// likely to be in use when infocmp itself is unavailable (a container
// without a terminfo database installed, for instance). Sequences are
// limited to the core navigation keys; anything else simply won't have a
// trie entry and will fall through to the simple/CSI drivers, which still
// recognize the ECMA-48-standard forms these terminals also emit.
var Static = map[string]Capabilities{
	"xterm": {
		"kcuu1": "\x1bOA", "kcud1": "\x1bOB", "kcub1": "\x1bOD", "kcuf1": "\x1bOC",
		"khome": "\x1bOH", "kend": "\x1bOF", "kich1": "\x1b[2~", "kdch1": "\x1b[3~",
		"knp": "\x1b[6~", "kpp": "\x1b[5~", "kbs": "\x7f", "kmous": "\x1b[M",
		"kf1": "\x1bOP", "kf2": "\x1bOQ", "kf3": "\x1bOR", "kf4": "\x1bOS",
	},
	"screen": {
		"kcuu1": "\x1bOA", "kcud1": "\x1bOB", "kcub1": "\x1bOD", "kcuf1": "\x1bOC",
		"khome": "\x1b[1~", "kend": "\x1b[4~", "kich1": "\x1b[2~", "kdch1": "\x1b[3~",
		"knp": "\x1b[6~", "kpp": "\x1b[5~", "kbs": "\x7f", "kmous": "\x1b[M",
	},
	"linux": {
		"kcuu1": "\x1b[A", "kcud1": "\x1b[B", "kcub1": "\x1b[D", "kcuf1": "\x1b[C",
		"khome": "\x1b[1~", "kend": "\x1b[4~", "kich1": "\x1b[2~", "kdch1": "\x1b[3~",
		"knp": "\x1b[6~", "kpp": "\x1b[5~", "kbs": "\x7f",
	},
	"vt100": {
		"kcuu1": "\x1bOA", "kcud1": "\x1bOB", "kcub1": "\x1bOD", "kcuf1": "\x1bOC",
		"kbs": "\x08",
	},
}

// LoadOrStatic is the driver entry point: it tries Load, and on failure
// falls back to the best Static match for termName (an exact key, else
// "xterm" since that is what most terminals claiming any other name still
// emulate for cursor keys).
func LoadOrStatic(termName string) Capabilities {
	if caps, err := Load(termName); err == nil && len(caps) > 0 {
		return caps
	}
	if caps, ok := Static[termName]; ok {
		return caps
	}
	return Static["xterm"]
}
