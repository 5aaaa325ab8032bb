package textfile

import (
	"fmt"
	"log/slog"

	"github.com/hakan-ronngren/textfile/pkg/textfile/encoding"
)

// Defaults for the optional Options fields, applied by Validate when the
// corresponding field is left zero.
const (
	DefaultEndOfLine        = EndOfLineAsIs
	DefaultBom              = BomAsIs
	DefaultEncoding         = EncodingAsIs
	DefaultOriginalEncoding = EncodingGuess
	DefaultEncodingErrors   = ErrorModeStrict
)

// Options bundles the configuration for one Transform invocation. It is
// consumed read-only; the same value may be reused across invocations and
// goroutines. EOL is the only required field.
type Options struct {
	// EOL is the target line ending. Required.
	EOL LineEnding `mapstructure:"eol"`

	// EndOfLine governs the line ending on the last line.
	EndOfLine EndOfLineMode `mapstructure:"end_eol"`

	// Bom governs whether a leading byte-order mark survives the transform.
	Bom BomMode `mapstructure:"bom"`

	// Encoding is the target encoding name, or EncodingAsIs to pass bytes
	// through without transcoding.
	Encoding string `mapstructure:"encoding"`

	// OriginalEncoding is the source encoding name, or EncodingGuess to
	// detect it heuristically. Only consulted when Encoding requests a
	// transcode.
	OriginalEncoding string `mapstructure:"original_encoding"`

	// EncodingErrors selects handling of characters the target encoding
	// cannot represent.
	EncodingErrors ErrorMode `mapstructure:"encoding_errors"`

	// Logger receives debug traces (resolved encodings, guess outcomes).
	// Nil discards them.
	Logger slog.Handler `mapstructure:"-"`
}

// Validate fills defaulted fields in place and checks every value against
// its enumeration. All violations report ErrUnsupportedOption.
func (o *Options) Validate() error {
	if o.EndOfLine == "" {
		o.EndOfLine = DefaultEndOfLine
	}
	if o.Bom == "" {
		o.Bom = DefaultBom
	}
	if o.Encoding == "" {
		o.Encoding = DefaultEncoding
	}
	if o.OriginalEncoding == "" {
		o.OriginalEncoding = DefaultOriginalEncoding
	}
	if o.EncodingErrors == "" {
		o.EncodingErrors = DefaultEncodingErrors
	}

	if o.EOL.Sequence() == "" {
		return fmt.Errorf("%w: eol=%q (want CR, LF or CRLF)", ErrUnsupportedOption, string(o.EOL))
	}
	switch o.EndOfLine {
	case EndOfLineAsIs, EndOfLinePresent, EndOfLineAbsent:
	default:
		return fmt.Errorf("%w: end_eol=%q", ErrUnsupportedOption, string(o.EndOfLine))
	}
	switch o.Bom {
	case BomAsIs, BomAbsent:
	default:
		return fmt.Errorf("%w: bom=%q", ErrUnsupportedOption, string(o.Bom))
	}
	switch o.EncodingErrors {
	case ErrorModeStrict, ErrorModeReplace, ErrorModeIgnore:
	default:
		return fmt.Errorf("%w: encoding_errors=%q", ErrUnsupportedOption, string(o.EncodingErrors))
	}

	if o.Encoding != EncodingAsIs {
		if _, err := encoding.Lookup(o.Encoding); err != nil {
			return fmt.Errorf("%w: encoding=%q", ErrUnsupportedOption, o.Encoding)
		}
	}
	if o.OriginalEncoding != EncodingGuess {
		if _, err := encoding.Lookup(o.OriginalEncoding); err != nil {
			return fmt.Errorf("%w: original_encoding=%q", ErrUnsupportedOption, o.OriginalEncoding)
		}
	}
	return nil
}

// resolved is the sentinel-free form of Options the pipeline consumes: the
// as-is and guess values are folded into concrete codecs (or nil) up front
// so the pipeline body never branches on configuration strings.
type resolved struct {
	eol       string
	endOfLine EndOfLineMode
	bom       BomMode
	target    *encoding.Codec // nil: passthrough, no transcoding
	source    *encoding.Codec // nil: guess per input
	onError   encoding.ErrorHandling
}

func (o *Options) resolve() (resolved, error) {
	if err := o.Validate(); err != nil {
		return resolved{}, err
	}
	r := resolved{
		eol:       o.EOL.Sequence(),
		endOfLine: o.EndOfLine,
		bom:       o.Bom,
	}
	if o.Encoding != EncodingAsIs {
		c, err := encoding.Lookup(o.Encoding)
		if err != nil {
			return resolved{}, fmt.Errorf("%w: encoding=%q", ErrUnsupportedOption, o.Encoding)
		}
		r.target = c
	}
	if o.OriginalEncoding != EncodingGuess {
		c, err := encoding.Lookup(o.OriginalEncoding)
		if err != nil {
			return resolved{}, fmt.Errorf("%w: original_encoding=%q", ErrUnsupportedOption, o.OriginalEncoding)
		}
		r.source = c
	}
	switch o.EncodingErrors {
	case ErrorModeReplace:
		r.onError = encoding.Replace
	case ErrorModeIgnore:
		r.onError = encoding.Ignore
	default:
		r.onError = encoding.Strict
	}
	return r, nil
}

// Hooks receives per-file events from callers that drive Transform over a
// batch of files. Implementations must tolerate concurrent use if the
// caller parallelizes.
type Hooks interface {
	OnFileStart(path string)
	OnFileDone(result FileResult)
}

// NoOpHooks is the default, do-nothing Hooks implementation.
type NoOpHooks struct{}

// OnFileStart implements Hooks. It performs no action.
func (NoOpHooks) OnFileStart(path string) {}

// OnFileDone implements Hooks. It performs no action.
func (NoOpHooks) OnFileDone(result FileResult) {}
