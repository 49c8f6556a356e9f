package encoding

import "errors"

var (
	// ErrLossyDecode is returned when a byte cannot be decoded in the
	// specified encoding without a loss byte.
	ErrLossyDecode = errors.New("encoding: cannot decode without loss")

	// ErrDecodeTruncated is returned when a UTF-16/UTF-32 byte stream has
	// a length that is not a multiple of the code unit size.
	ErrDecodeTruncated = errors.New("encoding: truncated multi-byte sequence")

	// ErrUnsupportedEncoding is returned for an Encoding value this
	// package does not implement a converter for.
	ErrUnsupportedEncoding = errors.New("encoding: unsupported encoding")
)
