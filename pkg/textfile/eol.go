package textfile

import "bytes"

var (
	seqCRLF = []byte("\r\n")
	seqCR   = []byte("\r")
	seqLF   = []byte("\n")
)

// normalizeLineEndings rewrites every line-terminator token (CRLF, lone CR,
// lone LF) to the target sequence. CRLF is collapsed first so a pair is
// never double-counted as CR plus LF, then the remaining lone terminators
// are funneled through LF before the final rewrite. Operating on LF as the
// intermediate keeps the pass free of overlap ambiguity when the target
// itself is CRLF.
//
// The input may be decoded UTF-8 text or raw bytes: the terminator bytes
// never occur inside a multi-byte UTF-8 sequence, so byte-level replacement
// is safe for both.
func normalizeLineEndings(b []byte, eol string) []byte {
	b = bytes.ReplaceAll(b, seqCRLF, seqLF)
	b = bytes.ReplaceAll(b, seqCR, seqLF)
	if eol != "\n" {
		b = bytes.ReplaceAll(b, seqLF, []byte(eol))
	}
	return b
}

// applyEndOfLine adjusts exactly the final line ending of b per the policy.
// Empty input stays empty: no terminator is ever appended to a zero-length
// document.
func applyEndOfLine(b []byte, eol string, mode EndOfLineMode) []byte {
	if len(b) == 0 {
		return b
	}
	switch mode {
	case EndOfLinePresent:
		if !bytes.HasSuffix(b, []byte(eol)) {
			b = append(b, eol...)
		}
	case EndOfLineAbsent:
		b = bytes.TrimSuffix(b, []byte(eol))
	}
	return b
}
