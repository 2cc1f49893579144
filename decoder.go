package tkey

import (
	"errors"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"github.com/badu/tkey/buffer"
	"github.com/badu/tkey/codec"
	"github.com/badu/tkey/csi"
	"github.com/badu/tkey/info"
	"github.com/badu/tkey/log"
	"github.com/badu/tkey/mouse"
	"github.com/badu/tkey/trie"
)

// Flags configure how the decoder interprets a byte stream.
type Flags uint16

const (
	// FlagNoInterpret disables the CSI/SS3 and trie drivers entirely; only
	// the simple C0/Alt-prefix/codepoint driver runs. Useful for feeding a
	// raw pass-through view of the stream alongside normal decoding.
	FlagNoInterpret Flags = 1 << iota
	// FlagConvertKP rewrites application-keypad SS3 sequences back to their
	// normal-keypad Sym, so callers that don't care about keypad mode see
	// one consistent Home/End/digit stream.
	FlagConvertKP
	// FlagRaw skips both the trie and CSI/SS3 drivers, like FlagNoInterpret;
	// kept as a distinct bit so a caller can tell "no interpretation
	// requested" apart from "no interpretation possible" in its own state.
	FlagRaw
	// FlagNoTermios skips touching termios state on Start/Stop, for callers
	// that manage raw mode themselves.
	FlagNoTermios
	// FlagCtrlC leaves ISIG (and so SIGINT-on-Ctrl-C) enabled instead of
	// disabling it in Start's raw-mode setup.
	FlagCtrlC
	// FlagEINTR surfaces an interrupted read as ErrInterrupted instead of
	// silently retrying it.
	FlagEINTR
	// FlagNoStart skips writing the focus-reporting enable string on Start
	// (and its disable string on Stop), for callers that have already done so.
	FlagNoStart
)

// CanonFlags configure post-decode canonicalization independent of Flags.
type CanonFlags uint8

const (
	// CanonSpaceSymbol reports a plain space codepoint as Sym(Space) instead
	// of Key(' ').
	CanonSpaceSymbol CanonFlags = 1 << iota
	// CanonDelBS reports DEL (0x7f) as Sym(Backspace) instead of Sym(Del).
	CanonDelBS
)

// MouseProtocol selects which wire format a bare "CSI M" trie match (as
// opposed to the already-distinguishable SGR/rxvt CSI-argument forms) is
// decoded as.
type MouseProtocol int

const (
	MouseProtocolX10 MouseProtocol = iota
	MouseProtocolUTF8Ext
)

const defaultBufferSize = 256
const defaultWaitTime = 50 * time.Millisecond

// Decoder holds all state for turning one tty's byte stream into events:
// the ring buffer, the active codec and terminfo trie, and the
// configuration that governs how ambiguous prefixes are resolved.
type Decoder struct {
	fd    int
	flags Flags

	buf       *buffer.Ring
	codec     codec.Codec
	trie      *trie.Trie
	c0        c0Override
	canon     CanonFlags
	waitTime  time.Duration
	logger    zerolog.Logger
	mouseProt MouseProtocol

	started  bool
	termios  *termiosState
}

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithWaitTime sets how long WaitKey polls for more bytes to disambiguate a
// pending Esc or partial sequence before GetKeyForce's semantics apply.
func WithWaitTime(d time.Duration) Option { return func(dec *Decoder) { dec.waitTime = d } }

// WithBufferSize sets the ring buffer's initial capacity.
func WithBufferSize(n int) Option {
	return func(dec *Decoder) { dec.buf = buffer.New(n) }
}

// WithFlags sets the decoder's Flags, replacing any default.
func WithFlags(f Flags) Option { return func(dec *Decoder) { dec.flags = f } }

// WithCanonFlags sets the decoder's CanonFlags, replacing any default.
func WithCanonFlags(c CanonFlags) Option { return func(dec *Decoder) { dec.canon = c } }

// WithMouseProtocol selects how an X10-style "CSI M" trie match is decoded.
func WithMouseProtocol(p MouseProtocol) Option { return func(dec *Decoder) { dec.mouseProt = p } }

// WithTerminfoSource supplies capabilities to build the trie from directly,
// bypassing the infocmp/static lookup NewDecoder otherwise performs.
func WithTerminfoSource(caps info.Capabilities) Option {
	return func(dec *Decoder) { dec.trie = info.BuildTrie(caps) }
}

// WithEncoding sets the session encoding used to decode plain-codepoint
// bytes, overriding the UTF-8 default.
func WithEncoding(enc encoding.Encoding) Option {
	return func(dec *Decoder) { dec.codec = codec.NewSessionCodec(enc) }
}

// WithLogger overrides the default per-user temp-file logger.
func WithLogger(l zerolog.Logger) Option { return func(dec *Decoder) { dec.logger = l } }

// WithC0Override remaps a single C0 control byte to sym, ahead of the
// built-in Backspace/Tab/Enter/Escape/Del table.
func WithC0Override(b byte, sym Sym) Option {
	return func(dec *Decoder) { dec.c0[b] = sym }
}

// NewDecoder builds a Decoder reading from fd, with a terminfo trie loaded
// for termName (via infocmp, falling back to a small built-in table; see
// package info). Apply Option values to override any default.
func NewDecoder(fd int, termName string, opts ...Option) *Decoder {
	d := &Decoder{
		fd:        fd,
		buf:       buffer.New(defaultBufferSize),
		codec:     codec.NewUTF8(),
		c0:        c0Override{},
		waitTime:  defaultWaitTime,
		logger:    log.Default(),
		mouseProt: GuessMouseProtocol(termName),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.trie == nil {
		d.trie = info.BuildTrie(info.LoadOrStatic(termName))
	}
	return d
}

// PushBytes stages externally-read bytes into the decoder's ring buffer,
// for callers driving their own I/O loop instead of using AdviseReadable.
func (d *Decoder) PushBytes(b []byte) (int, error) { return d.buf.Push(b) }

// AdviseReadable reads whatever is available on the decoder's fd into the
// ring buffer.
func (d *Decoder) AdviseReadable() (Result, error) {
	status, err := d.buf.AdviseReadable(d.fd, d.flags&FlagEINTR != 0)
	switch status {
	case buffer.Again:
		return ResKey, nil // more bytes staged; caller should re-peek
	case buffer.None:
		return ResNone, nil
	case buffer.EOF:
		return ResEof, nil
	default:
		if errors.Is(err, syscall.EINTR) {
			return ResError, ErrInterrupted
		}
		return ResError, err
	}
}

// SetBufferSize resizes the ring buffer, refusing to shrink below what's
// currently staged.
func (d *Decoder) SetBufferSize(n int) error { return d.buf.Resize(n) }

// BufferRemaining reports how many free bytes the ring buffer has left.
func (d *Decoder) BufferRemaining() int { return d.buf.Remaining() }

// PeekKey attempts to decode one event from the buffered bytes without
// forcing resolution of an ambiguous pending prefix (a lone Esc, or a
// trie/CSI match still waiting on more bytes).
func (d *Decoder) PeekKey() (Result, Event, int) { return d.peek(false) }

// GetKeyForce forces resolution of a pending ambiguous prefix: a lone Esc
// becomes Sym(Escape), and an incomplete-but-valid CSI/trie prefix is
// abandoned in favor of the simple driver's interpretation of its first
// byte. Intended for use once WaitKey's timeout elapses.
func (d *Decoder) GetKeyForce() (Result, Event, int) { return d.peek(true) }

// GetKey is PeekKey followed by consuming the decoded bytes from the ring
// buffer on a ResKey result; PeekKey alone leaves the buffer untouched so a
// caller can re-peek after pushing more bytes.
func (d *Decoder) GetKey() (Result, Event) {
	res, ev, n := d.PeekKey()
	if res == ResKey {
		d.buf.Eat(n)
		d.buf.SlideIfHalfway()
	}
	return res, ev
}

// WaitKey returns PeekKey's result at once (consuming the bytes on ResKey)
// unless it is ResAgain. On ResAgain it blocks in a single poll(2) call on
// the decoder's fd until a byte arrives or waitTime elapses: if the fd became
// readable it reads via AdviseReadable and returns GetKey's result, otherwise
// it returns GetKeyForce's result and consumes its bytes. It is the
// "again"-to-resolution half of the peek/force protocol described at the
// package level.
func (d *Decoder) WaitKey() (Result, Event, error) {
	res, ev, n := d.PeekKey()
	if res != ResAgain {
		if res == ResKey {
			d.buf.Eat(n)
			d.buf.SlideIfHalfway()
		}
		return res, ev, nil
	}
	if d.fd < 0 {
		return ResError, Event{}, ErrNoFileDescriptor
	}
	ready, err := pollReadable(d.fd, d.waitTime)
	if err != nil {
		return ResError, Event{}, err
	}
	if ready {
		if _, err := d.AdviseReadable(); err != nil {
			return ResError, Event{}, err
		}
		res, ev := d.GetKey()
		return res, ev, nil
	}
	res, ev, n = d.GetKeyForce()
	if res == ResKey {
		d.buf.Eat(n)
		d.buf.SlideIfHalfway()
	}
	return res, ev, nil
}

// peek walks the trie, then CSI/SS3, then simple drivers in order, logging
// which one resolved the buffered prefix at Trace level and recovering a
// driver panic (an internal invariant violation, never an input-driven
// outcome) into a Debug-level log entry before re-raising it.
func (d *Decoder) peek(force bool) (res Result, ev Event, n int) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Debug().Interface("panic", r).Msg("driver invariant violation")
			panic(r)
		}
	}()

	b := d.buf.Bytes()
	if len(b) == 0 {
		return ResNone, Event{}, 0
	}

	if d.flags&(FlagNoInterpret|FlagRaw) == 0 {
		if res, info, n := d.trie.Lookup(b); res != trie.ResNone {
			switch res {
			case trie.ResKey:
				d.logger.Trace().Str("driver", "trie").Int("n", n).Msg("matched")
				return ResKey, info.Apply(0), n
			case trie.ResMouse:
				d.logger.Trace().Str("driver", "trie-mouse").Msg("matched")
				return d.peekMouseIntro(b[n:], n, force)
			case trie.ResAgain:
				if !force {
					return ResAgain, Event{}, 0
				}
			}
		}

		if intro, n := csi.DetectIntro(b); intro != csi.IntroNone {
			res, consumed, ev := csi.Peek(b, intro, n, csi.Options{ConvertKP: d.flags&FlagConvertKP != 0})
			switch res {
			case csi.ResAgain:
				if !force {
					return ResAgain, Event{}, 0
				}
			case csi.ResKey, csi.ResUnknown:
				d.logger.Trace().Str("driver", "csi").Int("n", consumed).Msg("matched")
				return ResKey, ev, consumed
			}
		}
	}

	sres, sn, sev := d.peekSimple(b, force, false)
	if sres == ResKey {
		d.logger.Trace().Str("driver", "simple").Int("n", sn).Msg("matched")
	}
	return sres, sev, sn
}

func (d *Decoder) peekMouseIntro(tail []byte, introLen int, force bool) (Result, Event, int) {
	var res mouse.Result
	var info, x, y uint16
	var mods Mod
	var n int
	switch d.mouseProt {
	case MouseProtocolUTF8Ext:
		res, info, x, y, mods, n = mouse.DecodeUTF8Extended(tail)
	default:
		res, info, x, y, mods, n = mouse.DecodeX10(tail)
	}
	if res == mouse.ResAgain {
		if !force {
			return ResAgain, Event{}, 0
		}
		return ResError, Event{}, 0
	}
	return ResKey, Event{Type: TypeMouse, MouseInfo: info, X: x, Y: y, Mod: mods}, introLen + n
}

// InterpretMouse classifies a Mouse event's opaque info field into a
// press/drag/release kind and a 1-based button number.
func InterpretMouse(info uint16) (MouseEventKind, int) { return mouse.Interpret(info) }

// InterpretCSI re-parses a raw CSI/SS3 byte sequence (typically one
// retained from an earlier UnknownCsi event, after a caller has learned
// what it means) into an Event.
func InterpretCSI(b []byte, convertKP bool) (Result, Event, int) {
	intro, n := csi.DetectIntro(b)
	if intro == csi.IntroNone {
		return ResNone, Event{}, 0
	}
	res, consumed, ev := csi.Peek(b, intro, n, csi.Options{ConvertKP: convertKP})
	switch res {
	case csi.ResAgain:
		return ResAgain, Event{}, 0
	case csi.ResKey, csi.ResUnknown:
		return ResKey, ev, consumed
	}
	return ResNone, Event{}, 0
}

// GuessMouseProtocol picks a MouseProtocol from a $TERM-like name when no
// explicit terminal-capability negotiation is available. Most modern
// terminals answer X10-style "CSI M" reports with plain Latin-1 bytes; only
// terminals known to default to the UTF-8-extended (1005) encoding are
// special-cased.
func GuessMouseProtocol(termName string) MouseProtocol {
	if strings.Contains(termName, "rxvt-unicode") {
		return MouseProtocolUTF8Ext
	}
	return MouseProtocolX10
}
