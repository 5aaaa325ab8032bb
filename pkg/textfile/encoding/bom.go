package encoding

import "bytes"

// Byte-order mark sequences for the three BOM-eligible codecs. Detection
// tries the longest pattern first so the UTF-8 mark is never misread as a
// UTF-16 one. Only a leading match counts; the same bytes later in a
// stream are ordinary data.
var bomTable = []struct {
	codec string
	seq   []byte
}{
	{"utf-8", []byte{0xEF, 0xBB, 0xBF}},
	{"utf-16le", []byte{0xFF, 0xFE}},
	{"utf-16be", []byte{0xFE, 0xFF}},
}

// DetectBOM reports the codec whose byte-order mark leads b, and the mark's
// length in bytes. It returns ("", 0) when b carries no recognized BOM.
func DetectBOM(b []byte) (codec string, size int) {
	for _, entry := range bomTable {
		if bytes.HasPrefix(b, entry.seq) {
			return entry.codec, len(entry.seq)
		}
	}
	return "", 0
}

// StripBOM removes a recognized leading byte-order mark from b. The
// returned slice aliases b; callers that need ownership must copy. The
// boolean reports whether a mark was present.
func StripBOM(b []byte) ([]byte, bool) {
	if _, size := DetectBOM(b); size > 0 {
		return b[size:], true
	}
	return b, false
}

// BOM returns the byte-order mark sequence for the codec, or nil for codecs
// outside the UTF family. The returned slice must not be modified.
func (c *Codec) BOM() []byte {
	for _, entry := range bomTable {
		if entry.codec == c.name {
			return entry.seq
		}
	}
	return nil
}
