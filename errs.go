package corestr

import "github.com/pkg/errors"

// Error taxonomy for the package. Each sentinel is returned (optionally
// wrapped via github.com/pkg/errors to attach the failing operation and
// offset); accessor methods that cannot return an error (CharacterAt and
// similar) panic on the same conditions instead.
var (
	// ErrBounds: an index or range extends past the string's length.
	ErrBounds = errors.New("corestr: index or range out of bounds")

	// ErrNotMutable: a mutating operation on an immutable receiver.
	ErrNotMutable = errors.New("corestr: string is not mutable")

	// ErrNilArg: a required argument is absent.
	ErrNilArg = errors.New("corestr: required argument is nil")

	// ErrOverflow: arithmetic on sizes/positions would exceed the signed
	// index range during format parsing or resize.
	ErrOverflow = errors.New("corestr: size or position overflow")

	// ErrDecodeFailure: bytes cannot be decoded in the specified encoding
	// without a loss byte.
	ErrDecodeFailure = errors.New("corestr: cannot decode bytes without loss")

	// ErrFormatMismatch: a validated format does not match the expected
	// specifier sequence.
	ErrFormatMismatch = errors.New("corestr: format does not match expected")

	// ErrOutOfMemory: the allocator returned a failure and no fallback
	// capacity succeeded.
	ErrOutOfMemory = errors.New("corestr: allocation failed")
)

// wrap attaches op (the failing operation name) as context to err using
// github.com/pkg/errors, returning nil if err is nil.
func wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, op)
}

// wrapf is wrap with a formatted operation description.
func wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
