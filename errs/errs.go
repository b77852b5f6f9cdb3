// Package errs defines the sentinel errors returned by bytestat packages.
//
// Errors are wrapped with additional context via fmt.Errorf("...: %w", err),
// so callers should match them with errors.Is rather than by equality.
package errs

import "errors"

// Validation errors, reported before any computation takes place.
var (
	// ErrInvalidGramSize is returned when the n-gram width is not 1, 2 or 3.
	ErrInvalidGramSize = errors.New("n must be 1, 2, or 3")
	// ErrInvalidStep is returned when the window step is not positive.
	ErrInvalidStep = errors.New("step must be positive")
	// ErrInvalidOption is returned when a functional option receives an out-of-range value.
	ErrInvalidOption = errors.New("invalid option value")
)

// Input errors.
var (
	// ErrUnsupportedInput is returned when an input is neither a byte sequence
	// nor a supported byte-bearing object.
	ErrUnsupportedInput = errors.New("unsupported input type")
	// ErrDecodeFailed is returned when bytes cannot be decoded to text.
	ErrDecodeFailed = errors.New("decode failed")
)

// Compression errors.
var (
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrRoundTrip is returned when decompressed output differs from the original input.
	ErrRoundTrip = errors.New("compression round-trip mismatch")
	// ErrIncompressible is returned by codecs that cannot represent input they fail to shrink.
	ErrIncompressible = errors.New("data is incompressible")
)
