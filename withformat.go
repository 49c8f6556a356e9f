package corestr

import (
	"github.com/axiomhq/corestr/format"
	"github.com/axiomhq/corestr/locale"
)

// FormatReplacement is an alias of format.Replacement; its offsets are
// passed through unconverted, exactly as format.Render reports them.
type FormatReplacement = format.Replacement

// WithFormat renders tmpl against args, substituting locale-aware numeric
// formatting and %@ object descriptions, and returns the rendered
// immutable String plus per-specifier replacement metadata.
func WithFormat(l locale.Locale, tmpl string, args ...any) (*String, []FormatReplacement, error) {
	nf := format.NumberFormatter{
		DecimalSeparator:  l.DecimalSeparator(),
		GroupingSeparator: l.GroupingSeparator(),
	}
	out, repl, err := format.Render(tmpl, nf, wrapDescribables(args))
	if err != nil {
		return nil, nil, wrap(err, "WithFormat")
	}
	return FromCString(out), repl, nil
}

// WithValidatedFormat behaves like WithFormat, but first requires that
// tmpl's specifier sequence (starting at alreadyValidated specifiers into
// expected) matches expected's, returning ErrFormatMismatch otherwise.
// This is the entry point for rendering an untrusted (e.g.
// user-supplied) format string against a known-safe expected shape.
func WithValidatedFormat(l locale.Locale, expected, tmpl string, alreadyValidated int, args ...any) (*String, []FormatReplacement, error) {
	if err := format.Validate(expected, tmpl, alreadyValidated); err != nil {
		return nil, nil, wrap(ErrFormatMismatch, "WithValidatedFormat")
	}
	return WithFormat(l, tmpl, args...)
}

// wrapDescribables adapts *String arguments passed to %@ so they render
// via their own contents rather than Go's default struct representation.
func wrapDescribables(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if s, ok := a.(*String); ok {
			out[i] = stringDescribable{s}
			continue
		}
		out[i] = a
	}
	return out
}

type stringDescribable struct{ s *String }

func (d stringDescribable) FormatDescription() string { return string(d.s.Runes()) }
