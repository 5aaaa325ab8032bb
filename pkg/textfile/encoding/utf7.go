package encoding

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"unicode/utf16"
)

// UTF-7 (RFC 2152) support. golang.org/x/text ships no UTF-7 codec, so the
// catalog carries its own: ASCII-safe text with non-direct characters
// carried in '+'-shifted runs of modified base64 over UTF-16BE code units.
// The modified base64 alphabet is the standard one without padding, so
// encoding/base64 does the heavy lifting.

var utf7Base64 = base64.RawStdEncoding.Strict()

var errBadUTF7 = errors.New("malformed utf-7 sequence")

// directUTF7Punct is the punctuation of RFC 2152 set D, safe to emit
// without shifting.
const directUTF7Punct = "'(),-./:?"

func isDirectUTF7(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		return true
	}
	return strings.ContainsRune(directUTF7Punct, r)
}

func isUTF7Base64Byte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	return b == '+' || b == '/'
}

func decodeUTF7(b []byte) ([]byte, error) {
	var out bytes.Buffer
	i := 0
	for i < len(b) {
		c := b[i]
		if c >= 0x80 {
			return nil, errBadUTF7
		}
		if c != '+' {
			out.WriteByte(c)
			i++
			continue
		}

		// Shifted run: modified base64 up to the first non-alphabet byte.
		j := i + 1
		for j < len(b) && isUTF7Base64Byte(b[j]) {
			j++
		}
		run := b[i+1 : j]
		if len(run) == 0 {
			// "+-" is the escape for a literal '+'; a bare shift with no
			// payload and no terminator is malformed.
			if j < len(b) && b[j] == '-' {
				out.WriteByte('+')
				i = j + 1
				continue
			}
			return nil, errBadUTF7
		}
		if err := writeUTF7Run(&out, run); err != nil {
			return nil, err
		}
		// An explicit '-' terminator is absorbed by the run.
		if j < len(b) && b[j] == '-' {
			j++
		}
		i = j
	}
	return out.Bytes(), nil
}

// writeUTF7Run decodes one shifted run (UTF-16BE code units in modified
// base64) and appends the resulting text to out.
func writeUTF7Run(out *bytes.Buffer, run []byte) error {
	raw := make([]byte, utf7Base64.DecodedLen(len(run)))
	n, err := utf7Base64.Decode(raw, run)
	if err != nil || n%2 != 0 || n == 0 {
		return errBadUTF7
	}
	units := make([]uint16, n/2)
	for k := range units {
		units[k] = uint16(raw[2*k])<<8 | uint16(raw[2*k+1])
	}
	if !wellPairedUTF16(units) {
		return errBadUTF7
	}
	for _, r := range utf16.Decode(units) {
		out.WriteRune(r)
	}
	return nil
}

// wellPairedUTF16 rejects lone or inverted surrogate code units.
func wellPairedUTF16(units []uint16) bool {
	pendingHigh := false
	for _, u := range units {
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if pendingHigh {
				return false
			}
			pendingHigh = true
		case u >= 0xDC00 && u <= 0xDFFF:
			if !pendingHigh {
				return false
			}
			pendingHigh = false
		default:
			if pendingHigh {
				return false
			}
		}
	}
	return !pendingHigh
}

func encodeUTF7(text []byte) []byte {
	var out bytes.Buffer
	var run []rune
	flush := func() {
		if len(run) == 0 {
			return
		}
		raw := unitsToBytes(utf16.Encode(run))
		out.WriteByte('+')
		out.WriteString(utf7Base64.EncodeToString(raw))
		out.WriteByte('-')
		run = run[:0]
	}
	for _, r := range string(text) {
		switch {
		case isDirectUTF7(r):
			flush()
			out.WriteRune(r)
		case r == '+':
			flush()
			out.WriteString("+-")
		default:
			run = append(run, r)
		}
	}
	flush()
	return out.Bytes()
}

func unitsToBytes(units []uint16) []byte {
	raw := make([]byte, 2*len(units))
	for k, u := range units {
		raw[2*k] = byte(u >> 8)
		raw[2*k+1] = byte(u)
	}
	return raw
}
