package codec

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Registry maps a session encoding name (as found in LANG/LC_ALL/LC_CTYPE)
// to an x/text encoding.Encoding. A caller looks an encoding up here with
// LookupEncoding and passes it to NewSessionCodec to get a Codec.
var (
	registryLk sync.Mutex
	registry   = make(map[string]encoding.Encoding)
)

// RegisterEncoding adds or overrides an entry in the session-encoding registry.
func RegisterEncoding(charset string, enc encoding.Encoding) {
	registryLk.Lock()
	registry[strings.ToLower(charset)] = enc
	registryLk.Unlock()
}

// LookupEncoding finds a previously registered encoding.Encoding by name.
// A call that finds the registry empty first populates it with the built-in
// set; once any encoding has been registered (including via RegisterEncoding
// before the first lookup), the built-in set is not added.
func LookupEncoding(charset string) encoding.Encoding {
	registryLk.Lock()
	empty := len(registry) == 0
	registryLk.Unlock()
	if empty {
		registerBuiltins()
	}
	registryLk.Lock()
	defer registryLk.Unlock()
	return registry[strings.ToLower(charset)]
}

type validUtf8 struct{}

func (validUtf8) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: encoding.UTF8Validator}
}

func (validUtf8) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: encoding.UTF8Validator}
}

func registerBuiltins() {
	var UTF8 encoding.Encoding = validUtf8{}
	RegisterEncoding("utf-8", UTF8)
	RegisterEncoding("utf8", UTF8)

	amap := make(map[byte]rune)
	for i := 128; i <= 255; i++ {
		amap[byte(i)] = utf8.RuneError
	}
	ascii := &CharMap{Map: amap}
	ascii.Init()
	RegisterEncoding("us-ascii", ascii)
	RegisterEncoding("ascii", ascii)
	RegisterEncoding("iso646", ascii)

	iso88591 := &CharMap{}
	iso88591.Init()
	RegisterEncoding("ISO8859-1", iso88591)

	iso88599 := &CharMap{Map: map[byte]rune{
		0xD0: 'Ğ',
		0xDD: 'İ',
		0xDE: 'Ş',
		0xF0: 'ğ',
		0xFD: 'ı',
		0xFE: 'ş',
	}}
	iso88599.Init()
	RegisterEncoding("ISO8859-9", iso88599)

	RegisterEncoding("ISO8859-10", charmap.ISO8859_10)
	RegisterEncoding("ISO8859-13", charmap.ISO8859_13)
	RegisterEncoding("ISO8859-14", charmap.ISO8859_14)
	RegisterEncoding("ISO8859-15", charmap.ISO8859_15)
	RegisterEncoding("ISO8859-16", charmap.ISO8859_16)
	RegisterEncoding("ISO8859-2", charmap.ISO8859_2)
	RegisterEncoding("ISO8859-3", charmap.ISO8859_3)
	RegisterEncoding("ISO8859-4", charmap.ISO8859_4)
	RegisterEncoding("ISO8859-5", charmap.ISO8859_5)
	RegisterEncoding("ISO8859-6", charmap.ISO8859_6)
	RegisterEncoding("ISO8859-7", charmap.ISO8859_7)
	RegisterEncoding("ISO8859-8", charmap.ISO8859_8)
	RegisterEncoding("KOI8-R", charmap.KOI8R)
	RegisterEncoding("KOI8-U", charmap.KOI8U)

	RegisterEncoding("EUC-JP", japanese.EUCJP)
	RegisterEncoding("SHIFT_JIS", japanese.ShiftJIS)
	RegisterEncoding("ISO2022JP", japanese.ISO2022JP)

	RegisterEncoding("EUC-KR", korean.EUCKR)

	RegisterEncoding("GB18030", simplifiedchinese.GB18030)
	RegisterEncoding("GB2312", simplifiedchinese.HZGB2312)
	RegisterEncoding("GBK", simplifiedchinese.GBK)

	RegisterEncoding("Big5", traditionalchinese.Big5)

	aliases := map[string]string{
		"8859-1":      "ISO8859-1",
		"ISO-8859-1":  "ISO8859-1",
		"8859-9":      "ISO8859-9",
		"ISO-8859-9":  "ISO8859-9",
		"SJIS":        "Shift_JIS",
		"EUCJP":       "EUC-JP",
		"2022-JP":     "ISO2022JP",
		"ISO-2022-JP": "ISO2022JP",
		"EUCKR":       "EUC-KR",
		"646":         "US-ASCII",
		"ISO646":      "US-ASCII",
		"UTF8":        "UTF-8",
	}
	for n, v := range aliases {
		if enc := LookupEncoding(v); enc != nil {
			RegisterEncoding(n, enc)
		}
	}
}
