package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakan-ronngren/textfile/pkg/textfile/encoding"
)

func TestLookup_CanonicalNames(t *testing.T) {
	for _, name := range []string{
		"ascii", "utf-8", "utf-16le", "utf-16be", "utf-7",
		"latin-1", "iso-8859-2", "iso-8859-5", "iso-8859-7", "iso-8859-15",
		"cp1250", "cp1251", "cp1252", "cp1253", "koi8-r",
		"shift-jis", "euc-jp", "gbk", "gb18030", "big5", "euc-kr",
	} {
		c, err := encoding.Lookup(name)
		require.NoError(t, err, "catalog name %q", name)
		assert.Equal(t, name, c.Name())
	}
}

func TestLookup_Aliases(t *testing.T) {
	tests := []struct {
		alias     string
		canonical string
	}{
		{"UTF-8", "utf-8"},
		{"utf_8", "utf-8"},
		{"utf8", "utf-8"},
		{"utf_16_le", "utf-16le"},
		{"utf_16_be", "utf-16be"},
		{"latin_1", "latin-1"},
		{"Latin1", "latin-1"},
		{"ISO-8859-1", "latin-1"},
		{"windows-1252", "cp1252"},
		{"us-ascii", "ascii"},
		{"Shift_JIS", "shift-jis"},
		{"sjis", "shift-jis"},
		{"koi8_r", "koi8-r"},
	}
	for _, tt := range tests {
		c, err := encoding.Lookup(tt.alias)
		require.NoError(t, err, "alias %q", tt.alias)
		assert.Equal(t, tt.canonical, c.Name(), "alias %q", tt.alias)
	}
}

func TestLookup_UnknownName(t *testing.T) {
	for _, name := range []string{"", "klingon", "utf-32", "cp1254", "as-is", "guess"} {
		_, err := encoding.Lookup(name)
		assert.ErrorIs(t, err, encoding.ErrUnknownEncoding, "name %q", name)
	}
}

func TestBomEligible(t *testing.T) {
	eligible := map[string]bool{
		"utf-8":     true,
		"utf-16le":  true,
		"utf-16be":  true,
		"utf-7":     false,
		"ascii":     false,
		"latin-1":   false,
		"cp1252":    false,
		"shift-jis": false,
	}
	for name, want := range eligible {
		c, err := encoding.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, want, c.BomEligible(), "codec %q", name)
	}
}
