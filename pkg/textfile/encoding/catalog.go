// Package encoding provides the closed codec catalog used by the textfile
// engine: named character encodings with strict decoding, policy-driven
// encoding, byte-order-mark handling, and a best-effort encoding guesser.
//
// The catalog is deliberately finite. Every supported name maps to a concrete
// codec at compile time; unknown names fail with ErrUnknownEncoding rather
// than being resolved through an open-ended registry, so a configuration
// typo can never silently select a near-miss codec.
package encoding

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrDecode indicates that input bytes are not valid under the codec
	// they were decoded with. The wrapping error names the codec.
	ErrDecode = errors.New("cannot decode input")

	// ErrEncode indicates that, under strict error handling, a character has
	// no representation in the target codec. The wrapping error names the
	// character and the codec.
	ErrEncode = errors.New("cannot encode text")

	// ErrUnknownEncoding indicates an encoding name outside the catalog.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// family classifies a codec by the decode/encode mechanism it needs.
type family int

const (
	familyASCII family = iota
	familyUTF8
	familyUTF16LE
	familyUTF16BE
	familyUTF7
	familyCharmap
	familyMultibyte
)

// Codec is one entry of the catalog: a named bidirectional mapping between
// byte sequences and Unicode text. Codec values are immutable and shared;
// all methods are safe for concurrent use.
type Codec struct {
	name   string
	family family
	impl   encoding.Encoding

	// holes lists byte values that are undefined in a Windows code page.
	// golang.org/x/text maps these to C1 control characters (the WHATWG
	// behavior), but the engine must reject them to keep strict decoding
	// strict, and to make the encoding guesser fall through to latin-1.
	holes string
}

// Name returns the canonical catalog name of the codec.
func (c *Codec) Name() string { return c.name }

// BomEligible reports whether the codec belongs to the UTF family that may
// carry a leading byte-order mark (UTF-8, UTF-16LE, UTF-16BE).
func (c *Codec) BomEligible() bool {
	switch c.family {
	case familyUTF8, familyUTF16LE, familyUTF16BE:
		return true
	}
	return false
}

var catalog = map[string]*Codec{
	"ascii":   {name: "ascii", family: familyASCII},
	"utf-8":   {name: "utf-8", family: familyUTF8},
	"utf-16le": {
		name:   "utf-16le",
		family: familyUTF16LE,
		impl:   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	},
	"utf-16be": {
		name:   "utf-16be",
		family: familyUTF16BE,
		impl:   unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	},
	"utf-7": {name: "utf-7", family: familyUTF7},

	"latin-1":     {name: "latin-1", family: familyCharmap, impl: charmap.ISO8859_1},
	"iso-8859-2":  {name: "iso-8859-2", family: familyCharmap, impl: charmap.ISO8859_2},
	"iso-8859-5":  {name: "iso-8859-5", family: familyCharmap, impl: charmap.ISO8859_5},
	"iso-8859-7":  {name: "iso-8859-7", family: familyCharmap, impl: charmap.ISO8859_7},
	"iso-8859-15": {name: "iso-8859-15", family: familyCharmap, impl: charmap.ISO8859_15},

	"cp1250": {
		name: "cp1250", family: familyCharmap, impl: charmap.Windows1250,
		holes: "\x81\x83\x88\x90\x98",
	},
	"cp1251": {
		name: "cp1251", family: familyCharmap, impl: charmap.Windows1251,
		holes: "\x98",
	},
	"cp1252": {
		name: "cp1252", family: familyCharmap, impl: charmap.Windows1252,
		holes: "\x81\x8d\x8f\x90\x9d",
	},
	"cp1253": {
		name: "cp1253", family: familyCharmap, impl: charmap.Windows1253,
		holes: "\x81\x88\x8a\x8c\x8d\x8e\x8f\x90\x98\x9a\x9c\x9d\x9e\x9f\xaa\xd2\xff",
	},

	"koi8-r": {name: "koi8-r", family: familyCharmap, impl: charmap.KOI8R},

	"shift-jis": {name: "shift-jis", family: familyMultibyte, impl: japanese.ShiftJIS},
	"euc-jp":    {name: "euc-jp", family: familyMultibyte, impl: japanese.EUCJP},
	"gbk":       {name: "gbk", family: familyMultibyte, impl: simplifiedchinese.GBK},
	"gb18030":   {name: "gb18030", family: familyMultibyte, impl: simplifiedchinese.GB18030},
	"big5":      {name: "big5", family: familyMultibyte, impl: traditionalchinese.Big5},
	"euc-kr":    {name: "euc-kr", family: familyMultibyte, impl: korean.EUCKR},
}

// aliases maps normalized alternative spellings to canonical catalog names.
// Normalization already folds case and treats '_' as '-', so only genuinely
// different spellings need an entry here.
var aliases = map[string]string{
	"us-ascii": "ascii",
	"utf8":     "utf-8",
	"utf7":     "utf-7",

	"utf-16-le": "utf-16le",
	"utf16le":   "utf-16le",
	"utf-16-be": "utf-16be",
	"utf16be":   "utf-16be",

	"latin1":     "latin-1",
	"iso-8859-1": "latin-1",
	"iso8859-1":  "latin-1",
	"iso8859-2":  "iso-8859-2",
	"iso8859-5":  "iso-8859-5",
	"iso8859-7":  "iso-8859-7",
	"iso8859-15": "iso-8859-15",

	"windows-1250": "cp1250",
	"windows-1251": "cp1251",
	"windows-1252": "cp1252",
	"windows-1253": "cp1253",

	"koi8r": "koi8-r",

	"sjis":     "shift-jis",
	"shiftjis": "shift-jis",
	"eucjp":    "euc-jp",
	"euckr":    "euc-kr",
}

// normalizeName folds an encoding name to the catalog's spelling convention:
// lower case, underscores treated as hyphens. This accepts the common
// Python-style names ("utf_8", "latin_1") alongside IANA-style ones.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "_", "-")
}

// Lookup resolves an encoding name to its catalog codec. It returns
// ErrUnknownEncoding (wrapped with the offending name) for names outside
// the catalog.
func Lookup(name string) (*Codec, error) {
	key := normalizeName(name)
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if c, ok := catalog[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// mustLookup resolves a canonical catalog name known at compile time.
func mustLookup(name string) *Codec {
	c, ok := catalog[name]
	if !ok {
		panic("encoding: catalog is missing " + name)
	}
	return c
}
