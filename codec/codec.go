// Package codec converts between a session's byte encoding and Unicode
// scalar values, one codepoint at a time. It is the swappable piece: a host
// can plug in UTF-8-only, an 8-bit legacy charset, or any x/text encoding
// without this package depending on a particular one.
package codec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Result classifies the outcome of a ParseOne call.
type Result int

const (
	// OK means cp/n are a complete, valid decode.
	OK Result = iota
	// Again means the bytes given are a valid but incomplete prefix; the
	// caller must supply more bytes and retry. No input is consumed.
	Again
	// Replacement means the input was malformed; exactly one byte was
	// consumed and cp holds the replacement codepoint.
	Replacement
)

// Codec decodes and encodes single codepoints against a fixed encoding.
type Codec interface {
	// ParseOne decodes the codepoint at the front of b.
	ParseOne(b []byte) (cp rune, n int, res Result)
	// Encode renders cp back into the codec's byte encoding. On failure it
	// returns a single '?' byte.
	Encode(cp rune) []byte
}

type utf8Codec struct{}

// NewUTF8 returns the codec for the common case: the session encoding is
// UTF-8 and codepoints are passed through the standard library's decoder.
// Illegal sequences are replaced with U+FFFD, matching a direct UTF-8 decode
// rather than a session-encoding substitution.
func NewUTF8() Codec { return utf8Codec{} }

func (utf8Codec) ParseOne(b []byte) (rune, int, Result) {
	if len(b) == 0 {
		return 0, 0, Again
	}
	r, n := utf8.DecodeRune(b)
	if r == utf8.RuneError && n <= 1 {
		if !utf8.FullRune(b) {
			return 0, 0, Again
		}
		return utf8.RuneError, 1, Replacement
	}
	return r, n, OK
}

func (utf8Codec) Encode(cp rune) []byte {
	if !utf8.ValidRune(cp) {
		return []byte{'?'}
	}
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, cp)
	return buf[:n]
}

type sessionCodec struct {
	dec transform.Transformer
	enc transform.Transformer
}

// NewSessionCodec wraps an x/text encoding.Encoding (typically obtained via
// LookupEncoding) as a Codec. Illegal byte sequences consume exactly one
// byte and yield the ASCII '?' replacement, matching a locale codec rather
// than a raw UTF-8 decode.
func NewSessionCodec(enc encoding.Encoding) Codec {
	return &sessionCodec{dec: enc.NewDecoder().Transformer, enc: enc.NewEncoder().Transformer}
}

func (s *sessionCodec) ParseOne(b []byte) (rune, int, Result) {
	if len(b) == 0 {
		return 0, 0, Again
	}
	// Try growing prefixes: session decoders report ErrShortSrc when a
	// multi-byte sequence is incomplete, same shape as iconv's EINVAL.
	dst := make([]byte, 4*utf8.UTFMax)
	for i := 1; i <= len(b); i++ {
		s.dec.Reset()
		nDst, nSrc, err := s.dec.Transform(dst, b[:i], false)
		if err == transform.ErrShortSrc || (err == nil && nDst == 0) {
			continue
		}
		if err != nil || nSrc == 0 {
			return '?', 1, Replacement
		}
		r, _ := utf8.DecodeRune(dst[:nDst])
		if r == utf8.RuneError {
			return '?', 1, Replacement
		}
		return r, nSrc, OK
	}
	return 0, 0, Again
}

func (s *sessionCodec) Encode(cp rune) []byte {
	src := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(src, cp)
	dst := make([]byte, 8)
	nDst, _, err := s.enc.Transform(dst, src[:n], true)
	if err != nil || nDst == 0 {
		return []byte{'?'}
	}
	out := make([]byte, nDst)
	copy(out, dst[:nDst])
	return out
}

// ParseUTF8Fast decodes one UTF-8 scalar value independently of the session
// codec. It exists only for the mouse UTF-8-extended (1005) wire format,
// which is always UTF-8 regardless of locale. n==0 means not enough bytes
// have arrived yet; cp==utf8.RuneError with n==1 means the lead byte (or a
// continuation byte) was structurally invalid, and the caller should consume
// just that one byte.
func ParseUTF8Fast(b []byte) (cp rune, n int) {
	if len(b) == 0 {
		return 0, 0
	}
	b0 := b[0]
	switch {
	case b0&0x80 == 0x00:
		return rune(b0), 1
	case b0&0xE0 == 0xC0:
		n, cp = 2, rune(b0&0x1F)
	case b0&0xF0 == 0xE0:
		n, cp = 3, rune(b0&0x0F)
	case b0&0xF8 == 0xF0:
		n, cp = 4, rune(b0&0x07)
	case b0&0xFC == 0xF8:
		n, cp = 5, rune(b0&0x03)
	case b0&0xFE == 0xFC:
		n, cp = 6, rune(b0&0x01)
	default:
		return utf8.RuneError, 1
	}
	if len(b) < n {
		return 0, 0
	}
	for i := 1; i < n; i++ {
		if b[i]&0xC0 != 0x80 {
			return utf8.RuneError, 1
		}
		cp = cp<<6 | rune(b[i]&0x3F)
	}
	return cp, n
}
