package textfile

// LineEnding identifies one canonical end-of-line byte sequence.
type LineEnding string

// Constants representing the supported line-ending styles.
const (
	LineEndingCR   LineEnding = "CR"
	LineEndingLF   LineEnding = "LF"
	LineEndingCRLF LineEnding = "CRLF"
)

// Sequence returns the byte sequence for the line ending, or "" for an
// unrecognized value.
func (l LineEnding) Sequence() string {
	switch l {
	case LineEndingCR:
		return "\r"
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	}
	return ""
}

// EndOfLineMode governs whether the last line of a document must end with
// the target line ending.
type EndOfLineMode string

const (
	// EndOfLineAsIs leaves the final boundary alone beyond the uniform
	// mid-text normalization.
	EndOfLineAsIs EndOfLineMode = "as-is"
	// EndOfLinePresent appends the target line ending if it is missing.
	EndOfLinePresent EndOfLineMode = "present"
	// EndOfLineAbsent strips exactly one trailing target line ending.
	EndOfLineAbsent EndOfLineMode = "absent"
)

// BomMode governs whether an input byte-order mark is preserved on output.
type BomMode string

const (
	BomAsIs   BomMode = "as-is"
	BomAbsent BomMode = "absent"
)

// ErrorMode governs encode-time handling of characters that have no
// representation in the target encoding.
type ErrorMode string

const (
	ErrorModeStrict  ErrorMode = "strict"
	ErrorModeReplace ErrorMode = "replace"
	ErrorModeIgnore  ErrorMode = "ignore"
)

// Sentinel values accepted by the encoding fields of Options.
const (
	// EncodingAsIs requests no transcoding: bytes pass through unchanged
	// apart from line-ending and BOM transforms.
	EncodingAsIs = "as-is"
	// EncodingGuess requests heuristic detection of the source encoding.
	EncodingGuess = "guess"
)
