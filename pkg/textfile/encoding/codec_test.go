package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakan-ronngren/textfile/pkg/textfile/encoding"
)

func codec(t *testing.T, name string) *encoding.Codec {
	t.Helper()
	c, err := encoding.Lookup(name)
	require.NoError(t, err)
	return c
}

func TestDecode_ASCII(t *testing.T) {
	c := codec(t, "ascii")

	out, err := c.Decode([]byte("Hello\nWorld\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hello\nWorld\n", string(out))

	_, err = c.Decode([]byte{0x48, 0xE5})
	assert.ErrorIs(t, err, encoding.ErrDecode)
}

func TestDecode_UTF8(t *testing.T) {
	c := codec(t, "utf-8")

	out, err := c.Decode([]byte("Hallå\nVärld\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hallå\nVärld\n", string(out))

	// 0xE5 is a bare latin-1 å, not a valid UTF-8 sequence.
	_, err = c.Decode([]byte{0x48, 0xE5, 0x0A})
	assert.ErrorIs(t, err, encoding.ErrDecode)
}

func TestDecode_UTF16(t *testing.T) {
	le := codec(t, "utf-16le")
	be := codec(t, "utf-16be")

	// "Hallå\n" without BOM.
	leBytes := []byte{0x48, 0x00, 0x61, 0x00, 0x6C, 0x00, 0x6C, 0x00, 0xE5, 0x00, 0x0A, 0x00}
	beBytes := []byte{0x00, 0x48, 0x00, 0x61, 0x00, 0x6C, 0x00, 0x6C, 0x00, 0xE5, 0x00, 0x0A}

	out, err := le.Decode(leBytes)
	require.NoError(t, err)
	assert.Equal(t, "Hallå\n", string(out))

	out, err = be.Decode(beBytes)
	require.NoError(t, err)
	assert.Equal(t, "Hallå\n", string(out))

	// Odd byte count.
	_, err = le.Decode([]byte{0x48, 0x00, 0x61})
	assert.ErrorIs(t, err, encoding.ErrDecode)

	// Lone high surrogate.
	_, err = le.Decode([]byte{0x00, 0xD8, 0x41, 0x00})
	assert.ErrorIs(t, err, encoding.ErrDecode)

	// Proper surrogate pair (U+1F600) survives.
	out, err = le.Decode([]byte{0x3D, 0xD8, 0x00, 0xDE})
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", string(out))
}

func TestDecode_CP1252(t *testing.T) {
	c := codec(t, "cp1252")

	// "Hallå\n" in cp1252.
	out, err := c.Decode([]byte{0x48, 0x61, 0x6C, 0x6C, 0xE5, 0x0A})
	require.NoError(t, err)
	assert.Equal(t, "Hallå\n", string(out))

	// 0x93/0x94 are the cp1252 curly quotes.
	out, err = c.Decode([]byte{0x93, 0x48, 0x69, 0x94})
	require.NoError(t, err)
	assert.Equal(t, "“Hi”", string(out))

	// Undefined code-page positions must be rejected, not mapped to C1
	// controls.
	for _, hole := range []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D} {
		_, err := c.Decode([]byte{0x48, hole})
		assert.ErrorIs(t, err, encoding.ErrDecode, "hole byte 0x%02X", hole)
	}
}

func TestDecode_CP1250_DefinedHighBytes(t *testing.T) {
	c := codec(t, "cp1250")

	// 0x8A is Š and 0xE8 is č: defined positions must decode even though
	// they sit between hole bytes in the code page.
	out, err := c.Decode([]byte{0x8A, 0x65, 0xE8, 0x0A})
	require.NoError(t, err)
	assert.Equal(t, "Šeč\n", string(out))

	_, err = c.Decode([]byte{0x8A, 0x83})
	assert.ErrorIs(t, err, encoding.ErrDecode)
}

func TestDecode_GB18030_LiteralReplacementChar(t *testing.T) {
	c := codec(t, "gb18030")

	// 84 31 A4 37 is the gb18030 form of U+FFFD itself; a file carrying it
	// is valid and must not be mistaken for a decoder error marker.
	out, err := c.Decode([]byte{0x41, 0x84, 0x31, 0xA4, 0x37, 0x42})
	require.NoError(t, err)
	assert.Equal(t, "A�B", string(out))

	// A dangling lead byte is still invalid.
	_, err = c.Decode([]byte{0x41, 0x81})
	assert.ErrorIs(t, err, encoding.ErrDecode)
}

func TestDecode_Latin1_AcceptsEveryByte(t *testing.T) {
	c := codec(t, "latin-1")
	buf := make([]byte, 255)
	for i := range buf {
		buf[i] = byte(i + 1) // skip NUL for symmetry with the guesser tests
	}
	out, err := c.Decode(buf)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestDecode_ShiftJIS(t *testing.T) {
	c := codec(t, "shift-jis")

	// こんにちは in Shift JIS.
	kon := []byte{0x82, 0xB1, 0x82, 0xF1, 0x82, 0xC9, 0x82, 0xBF, 0x82, 0xCD}
	out, err := c.Decode(kon)
	require.NoError(t, err)
	assert.Equal(t, "こんにちは", string(out))

	// A dangling lead byte is invalid.
	_, err = c.Decode([]byte{0x82})
	assert.ErrorIs(t, err, encoding.ErrDecode)
}

func TestEncode_RoundTrips(t *testing.T) {
	tests := []struct {
		codec string
		text  string
	}{
		{"utf-8", "Hallå\nVärld\n"},
		{"utf-16le", "Hallå\nVärld\n"},
		{"utf-16be", "こんにちは"},
		{"utf-7", "Hallå +plus+ Värld"},
		{"cp1252", "Hallå\nVärld\n"},
		{"latin-1", "café"},
		{"shift-jis", "こんにちは"},
		{"euc-kr", "안녕하세요"},
		{"gb18030", "你好"},
	}
	for _, tt := range tests {
		c := codec(t, tt.codec)
		enc, err := c.Encode([]byte(tt.text), encoding.Strict)
		require.NoError(t, err, "%s encode", tt.codec)
		dec, err := c.Decode(enc)
		require.NoError(t, err, "%s decode", tt.codec)
		assert.Equal(t, tt.text, string(dec), "%s round trip", tt.codec)
	}
}

func TestEncode_Strict_UnrepresentableFails(t *testing.T) {
	ascii := codec(t, "ascii")
	_, err := ascii.Encode([]byte("Hallå"), encoding.Strict)
	require.ErrorIs(t, err, encoding.ErrEncode)
	assert.Contains(t, err.Error(), "ascii")

	cp := codec(t, "cp1252")
	_, err = cp.Encode([]byte("こんにちは"), encoding.Strict)
	assert.ErrorIs(t, err, encoding.ErrEncode)
}

func TestEncode_Replace_SubstitutesQuestionMark(t *testing.T) {
	ascii := codec(t, "ascii")
	out, err := ascii.Encode([]byte("Hallå\nVärld\n"), encoding.Replace)
	require.NoError(t, err)
	assert.Equal(t, "Hall?\nV?rld\n", string(out))

	cp := codec(t, "cp1252")
	out, err = cp.Encode([]byte("ab こ cd"), encoding.Replace)
	require.NoError(t, err)
	assert.Equal(t, "ab ? cd", string(out))
}

func TestEncode_Ignore_DropsUnrepresentable(t *testing.T) {
	ascii := codec(t, "ascii")
	out, err := ascii.Encode([]byte("Hallå\nVärld\n"), encoding.Ignore)
	require.NoError(t, err)
	assert.Equal(t, "Hall\nVrld\n", string(out))
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	c := codec(t, "utf-8")
	in := []byte("abc")
	out, err := c.Decode(in)
	require.NoError(t, err)
	out[0] = 'x'
	assert.Equal(t, byte('a'), in[0])
}
