package encoding

import "bytes"

// fallbackOrder lists the codecs Guess tries by whole-buffer decode, in
// decreasing probability of failure. latin-1 accepts every byte value and
// must stay last: it is what makes Guess total.
var fallbackOrder = []string{"ascii", "utf-8", "cp1252", "latin-1"}

// Guess infers a plausible codec for raw bytes. It is a best-effort
// heuristic: it is not required to recover the historically true encoding,
// only to avoid obviously invalid interpretations. It always returns a
// codec and never fails.
//
// The steps, in order:
//
//  1. A leading UTF-16 byte-order mark decides the answer outright. Without
//     this clue, BOM-only UTF-16 text whose payload bytes all happen to be
//     valid cp1252 would be misread as cp1252.
//  2. Any zero byte classifies the buffer as UTF-16: ASCII-range characters
//     encoded as UTF-16 alternate a data byte with a zero byte, so an even
//     index means big-endian and an odd index little-endian. The rule is a
//     deliberate approximation (it misreads UTF-32, and misfires on
//     single-byte data containing NUL) kept for compatibility.
//  3. Whole-buffer strict decode against fallbackOrder, first success wins.
//
// An empty buffer trivially decodes as ascii.
func Guess(b []byte) *Codec {
	if len(b) >= 2 {
		if b[0] == 0xFF && b[1] == 0xFE {
			return mustLookup("utf-16le")
		}
		if b[0] == 0xFE && b[1] == 0xFF {
			return mustLookup("utf-16be")
		}
	}

	if i := bytes.IndexByte(b, 0x00); i >= 0 {
		if i%2 == 0 {
			return mustLookup("utf-16be")
		}
		return mustLookup("utf-16le")
	}

	for _, name := range fallbackOrder {
		c := mustLookup(name)
		if _, err := c.Decode(b); err == nil {
			return c
		}
	}

	// Unreachable: latin-1 decodes anything.
	return mustLookup("latin-1")
}
