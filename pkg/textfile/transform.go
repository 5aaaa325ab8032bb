// Package textfile implements a deterministic, single-pass text
// normalization and transcoding engine. Given the raw bytes of a file it
// detects or accepts a source character encoding, strips or preserves a
// leading byte-order mark, rewrites every line ending to one target form,
// enforces a policy on the final line's terminator, and re-encodes the text
// into a target encoding under a configurable error policy.
//
// The engine is a pure function of input bytes and Options: it performs no
// I/O, holds no state between invocations, and never mutates its input.
// Reading files and persisting output atomically is the caller's job.
package textfile

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/hakan-ronngren/textfile/pkg/textfile/encoding"
)

// Result is the outcome of a successful Transform.
type Result struct {
	// Output is the transformed byte sequence.
	Output []byte
	// Changed reports whether Output differs byte-for-byte from the input.
	Changed bool
}

// Transform applies the configured normalization and transcoding to input
// and reports whether anything changed. On error no output is produced:
// the transform fails as a whole and never yields a partially-transformed
// sequence.
func Transform(input []byte, opts Options) (Result, error) {
	cfg, err := opts.resolve()
	if err != nil {
		return Result{}, err
	}
	logger := newLogger(opts.Logger)

	if len(input) == 0 {
		return Result{Output: []byte{}, Changed: false}, nil
	}

	var out []byte
	if cfg.target == nil {
		out = passthrough(input, cfg)
	} else {
		out, err = transcode(input, cfg, logger)
		if err != nil {
			return Result{}, err
		}
	}

	// Changed is decided by exact byte comparison against the original
	// input, never by whether any stage claims to have acted: a stage that
	// rewrites and then restores identical content must not count.
	return Result{Output: out, Changed: !bytes.Equal(out, input)}, nil
}

// passthrough handles Encoding=as-is: the text before each line break is
// treated as opaque data and never decoded, so files in unrecognizable
// encodings still get their line endings fixed. Only the line-ending and
// BOM transforms run, both at byte level.
func passthrough(input []byte, cfg resolved) []byte {
	body := input
	if cfg.bom == BomAbsent {
		body, _ = encoding.StripBOM(body)
	}
	out := append([]byte(nil), body...)
	out = normalizeLineEndings(out, cfg.eol)
	out = applyEndOfLine(out, cfg.eol, cfg.endOfLine)
	return out
}

// transcode handles an explicit target encoding: BOM strip, decode,
// line-ending normalization, re-encode, BOM reattachment.
func transcode(input []byte, cfg resolved, logger *slog.Logger) ([]byte, error) {
	body, hadBOM := encoding.StripBOM(input)

	source := cfg.source
	if source == nil {
		// The guesser sees the whole original buffer: the BOM and even
		// bytes near the end can be the deciding clue.
		source = encoding.Guess(input)
		logger.Debug("guessed source encoding",
			slog.String("encoding", source.Name()),
			slog.Bool("hadBOM", hadBOM))
	}

	text, err := source.Decode(body)
	if err != nil {
		return nil, err
	}

	text = normalizeLineEndings(text, cfg.eol)
	text = applyEndOfLine(text, cfg.eol, cfg.endOfLine)

	out, err := cfg.target.Encode(text, cfg.onError)
	if err != nil {
		return nil, err
	}

	// A stripped BOM is restored in the target encoding's own form, and
	// only for the UTF family; no BOM is ever invented for other targets,
	// and BomAbsent suppresses it regardless of input state.
	if hadBOM && cfg.bom == BomAsIs && cfg.target.BomEligible() {
		out = append(append([]byte(nil), cfg.target.BOM()...), out...)
	}
	return out, nil
}

func newLogger(h slog.Handler) *slog.Logger {
	if h == nil {
		h = slog.NewTextHandler(io.Discard, nil)
	}
	return slog.New(h).With(slog.String("component", "textfile"))
}
