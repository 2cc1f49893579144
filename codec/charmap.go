package codec

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// CharMap builds an x/text encoding.Encoding for an 8-bit character set from
// a sparse byte->rune map. Bytes absent from Map are assumed to be the
// identity mapping (ISO8859-1 behavior).
type CharMap struct {
	transform.NopResetter
	bytes map[rune]byte
	runes [256][]byte
	once  sync.Once

	Map             map[byte]rune
	ReplacementChar byte
}

type cmapDecoder struct {
	transform.NopResetter
	runes [256][]byte
}

type cmapEncoder struct {
	transform.NopResetter
	bytes   map[rune]byte
	replace byte
}

func (c *CharMap) Init() {
	c.once.Do(c.initialize)
}

func (c *CharMap) initialize() {
	c.bytes = make(map[rune]byte)
	ascii := true

	for i := 0; i < 256; i++ {
		r, ok := c.Map[byte(i)]
		if !ok {
			r = rune(i)
		}
		if r < 128 && r != rune(i) {
			ascii = false
		}
		if r != utf8.RuneError {
			c.bytes[r] = byte(i)
		}
		utf := make([]byte, utf8.RuneLen(r))
		utf8.EncodeRune(utf, r)
		c.runes[i] = utf
	}
	if ascii && c.ReplacementChar == '\x00' {
		c.ReplacementChar = encoding.ASCIISub
	}
}

func (c *CharMap) NewDecoder() *encoding.Decoder {
	c.Init()
	return &encoding.Decoder{Transformer: &cmapDecoder{runes: c.runes}}
}

func (c *CharMap) NewEncoder() *encoding.Encoder {
	c.Init()
	return &encoding.Encoder{
		Transformer: &cmapEncoder{
			bytes:   c.bytes,
			replace: c.ReplacementChar,
		},
	}
}

func (d *cmapDecoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var err error
	var cDst, cSrc int

	for _, c := range src {
		b := d.runes[c]
		l := len(b)
		if cDst+l > len(dst) {
			err = transform.ErrShortDst
			break
		}
		for i := 0; i < l; i++ {
			dst[cDst] = b[i]
			cDst++
		}
		cSrc++
	}
	return cDst, cSrc, err
}

func (d *cmapEncoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var err error
	var cDst, cSrc int
	for cSrc < len(src) {
		if cDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}
		r, sz := utf8.DecodeRune(src[cSrc:])
		if r == utf8.RuneError && sz == 1 {
			if !atEOF && !utf8.FullRune(src[cSrc:]) {
				err = transform.ErrShortSrc
				break
			}
		}
		if c, ok := d.bytes[r]; ok {
			dst[cDst] = c
		} else {
			dst[cDst] = d.replace
		}
		cSrc += sz
		cDst++
	}
	return cDst, cSrc, err
}
