package codec

import (
	"testing"
	"unicode/utf8"

	"gotest.tools/v3/assert"
)

func TestUTF8CodecParseOneASCII(t *testing.T) {
	c := NewUTF8()
	cp, n, res := c.ParseOne([]byte("a"))
	assert.Equal(t, res, OK)
	assert.Equal(t, n, 1)
	assert.Equal(t, cp, rune('a'))
}

func TestUTF8CodecParseOneMultibyte(t *testing.T) {
	c := NewUTF8()
	cp, n, res := c.ParseOne([]byte("\xe2\x82\xac")) // Euro sign
	assert.Equal(t, res, OK)
	assert.Equal(t, n, 3)
	assert.Equal(t, cp, rune('€'))
}

func TestUTF8CodecAgainOnIncompletePrefix(t *testing.T) {
	c := NewUTF8()
	_, n, res := c.ParseOne([]byte{0xe2, 0x82})
	assert.Equal(t, res, Again)
	assert.Equal(t, n, 0)
}

func TestUTF8CodecReplacementOnMalformed(t *testing.T) {
	c := NewUTF8()
	cp, n, res := c.ParseOne([]byte{0xff})
	assert.Equal(t, res, Replacement)
	assert.Equal(t, n, 1)
	assert.Equal(t, cp, rune(utf8.RuneError))
}

func TestParseUTF8FastASCII(t *testing.T) {
	cp, n := ParseUTF8Fast([]byte("A"))
	assert.Equal(t, n, 1)
	assert.Equal(t, cp, rune('A'))
}

func TestParseUTF8FastIncomplete(t *testing.T) {
	cp, n := ParseUTF8Fast([]byte{0xe2, 0x82})
	assert.Equal(t, cp, rune(0))
	assert.Equal(t, n, 0)
}

func TestParseUTF8FastInvalidContinuation(t *testing.T) {
	cp, n := ParseUTF8Fast([]byte{0xe2, 0x20, 0x20})
	assert.Equal(t, n, 1)
	assert.Equal(t, cp, rune(utf8.RuneError))
}

func TestEncodeRoundTrip(t *testing.T) {
	c := NewUTF8()
	b := c.Encode('€')
	cp, n, res := c.ParseOne(b)
	assert.Equal(t, res, OK)
	assert.Equal(t, n, len(b))
	assert.Equal(t, cp, rune('€'))
}
