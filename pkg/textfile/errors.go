package textfile

import (
	"errors"

	"github.com/hakan-ronngren/textfile/pkg/textfile/encoding"
)

var (
	// ErrUnsupportedOption indicates a configuration value outside the
	// recognized enumerations. It signals a caller bug and is never
	// recovered from.
	ErrUnsupportedOption = errors.New("unsupported option value")

	// ErrDecode indicates that the input bytes are not valid under the
	// resolved source encoding. The error text names the encoding.
	ErrDecode = encoding.ErrDecode

	// ErrEncode indicates that, under strict error handling, a character in
	// the text has no representation in the target encoding. The error text
	// names the character and the encoding.
	ErrEncode = encoding.ErrEncode
)
