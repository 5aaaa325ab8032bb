package encoding

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorHandling selects what Encode does with characters the target codec
// cannot represent.
type ErrorHandling int

const (
	// Strict fails the encode with an ErrEncode-wrapped error.
	Strict ErrorHandling = iota
	// Replace substitutes each unrepresentable character with '?'.
	Replace
	// Ignore drops unrepresentable characters with no substitute.
	Ignore
)

// replacementChar is the placeholder written under Replace.
const replacementChar = '?'

// Decode converts bytes in this codec to UTF-8 text. It fails with an
// ErrDecode-wrapped error if the bytes are not valid under the codec; it
// never silently substitutes replacement characters.
func (c *Codec) Decode(b []byte) ([]byte, error) {
	switch c.family {
	case familyASCII:
		for _, v := range b {
			if v >= 0x80 {
				return nil, c.decodeErr()
			}
		}
		return append([]byte(nil), b...), nil

	case familyUTF8:
		if !utf8.Valid(b) {
			return nil, c.decodeErr()
		}
		return append([]byte(nil), b...), nil

	case familyUTF16LE, familyUTF16BE:
		if !validUTF16(b, c.family == familyUTF16LE) {
			return nil, c.decodeErr()
		}
		out, err := c.impl.NewDecoder().Bytes(b)
		if err != nil {
			return nil, c.decodeErr()
		}
		return out, nil

	case familyUTF7:
		out, err := decodeUTF7(b)
		if err != nil {
			return nil, c.decodeErr()
		}
		return out, nil

	case familyCharmap:
		// The hole bytes are raw values >= 0x80, so the scan must compare
		// bytes, never runes.
		if c.holes != "" {
			for _, v := range b {
				if strings.IndexByte(c.holes, v) >= 0 {
					return nil, c.decodeErr()
				}
			}
		}
		out, err := c.impl.NewDecoder().Bytes(b)
		if err != nil || containsReplacementRune(out) {
			return nil, c.decodeErr()
		}
		return out, nil

	case familyMultibyte:
		out, err := c.impl.NewDecoder().Bytes(b)
		if err != nil {
			return nil, c.decodeErr()
		}
		if containsReplacementRune(out) && !c.reencodesTo(out, b) {
			return nil, c.decodeErr()
		}
		return out, nil
	}
	return nil, c.decodeErr()
}

// Encode converts UTF-8 text to bytes in this codec, applying the given
// error handling to characters the codec cannot represent.
func (c *Codec) Encode(text []byte, h ErrorHandling) ([]byte, error) {
	switch c.family {
	case familyASCII:
		return encodeASCII(text, h)

	case familyUTF8:
		return append([]byte(nil), text...), nil

	case familyUTF16LE, familyUTF16BE:
		out, err := c.impl.NewEncoder().Bytes(text)
		if err != nil {
			// UTF-16 represents all of Unicode; only malformed input text
			// can end up here.
			return nil, fmt.Errorf("%w: invalid text for %s", ErrEncode, c.name)
		}
		return out, nil

	case familyUTF7:
		return encodeUTF7(text), nil

	case familyCharmap, familyMultibyte:
		out, err := c.impl.NewEncoder().Bytes(text)
		if err == nil {
			return out, nil
		}
		return c.encodeSlow(text, h)
	}
	return nil, fmt.Errorf("%w: %s", ErrEncode, c.name)
}

// encodeSlow retries an encode character by character after the whole-buffer
// fast path failed, so the error policy can be applied to exactly the
// characters the codec rejects.
func (c *Codec) encodeSlow(text []byte, h ErrorHandling) ([]byte, error) {
	var buf bytes.Buffer
	var scratch [4]byte
	for _, r := range string(text) {
		n := utf8.EncodeRune(scratch[:], r)
		out, err := c.impl.NewEncoder().Bytes(scratch[:n])
		if err != nil {
			switch h {
			case Replace:
				buf.WriteByte(replacementChar)
			case Ignore:
			default:
				return nil, c.encodeErr(r)
			}
			continue
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}

func encodeASCII(text []byte, h ErrorHandling) ([]byte, error) {
	buf := make([]byte, 0, len(text))
	for _, r := range string(text) {
		if r < 0x80 {
			buf = append(buf, byte(r))
			continue
		}
		switch h {
		case Replace:
			buf = append(buf, replacementChar)
		case Ignore:
		default:
			return nil, fmt.Errorf("%w: %q has no representation in ascii", ErrEncode, r)
		}
	}
	return buf, nil
}

func (c *Codec) decodeErr() error {
	return fmt.Errorf("%w: not valid %s", ErrDecode, c.name)
}

func (c *Codec) encodeErr(r rune) error {
	return fmt.Errorf("%w: %q has no representation in %s", ErrEncode, r, c.name)
}

// containsReplacementRune reports whether decoded UTF-8 output carries
// U+FFFD, the marker golang.org/x/text decoders insert for byte sequences
// the codec does not define. No charmap codec can represent U+FFFD itself,
// so there its presence always means invalid input. Multibyte codecs need
// the reencodesTo double check: gb18030 covers all of Unicode and can carry
// a legitimate U+FFFD.
func containsReplacementRune(b []byte) bool {
	return bytes.Contains(b, []byte("�"))
}

// reencodesTo reports whether text encodes back to exactly b under this
// codec. A decoder-inserted U+FFFD never survives the round trip, while
// text that genuinely contained the character does.
func (c *Codec) reencodesTo(text, b []byte) bool {
	out, err := c.impl.NewEncoder().Bytes(text)
	return err == nil && bytes.Equal(out, b)
}

// validUTF16 checks that b is an even number of bytes forming well-paired
// UTF-16 code units in the given byte order.
func validUTF16(b []byte, littleEndian bool) bool {
	if len(b)%2 != 0 {
		return false
	}
	pendingHigh := false
	for i := 0; i < len(b); i += 2 {
		var u uint16
		if littleEndian {
			u = uint16(b[i]) | uint16(b[i+1])<<8
		} else {
			u = uint16(b[i])<<8 | uint16(b[i+1])
		}
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
