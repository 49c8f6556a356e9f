package format

import "github.com/pkg/errors"

var (
	// ErrOverflow is returned when an integer literal in a width,
	// precision, or positional-argument slot exceeds the representable
	// range.
	ErrOverflow = errors.New("format: integer literal overflow")

	// ErrFormatMismatch is returned by FormatValidated when an untrusted
	// format string's specifier sequence diverges from the expected one.
	ErrFormatMismatch = errors.New("format: does not match expected")

	// ErrMissingArgument is returned when a specifier references an
	// argument position beyond the end of the argument list.
	ErrMissingArgument = errors.New("format: missing argument")
)

func wrapErrf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}
