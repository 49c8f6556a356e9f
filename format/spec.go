// Package format implements the printf-style specifier parser and
// emission engine consumed by the corestr root package's WithFormat /
// WithValidatedFormat entry points: positional (%N$) and sequential
// arguments, %@ object-description substitution in the same single pass
// as every other specifier, and
// structured replacement metadata for rich-text rendering of formatted
// strings.
package format

import (
	"strconv"
)

// ValueKind classifies what a specifier's argument is.
type ValueKind int

const (
	KindLiteral ValueKind = iota
	KindInt
	KindUnsignedInt
	KindFloat
	KindString
	KindObject // %@
	KindPercent
	KindIncomplete // format string ended mid-specifier
)

// NumericStyle selects how a numeric specifier renders.
type NumericStyle int

const (
	StyleDecimal NumericStyle = iota
	StyleScientific
	StyleDecimalOrScientific
	StyleUnsigned
)

// Flags are the printf flag characters.
type Flags struct {
	Alternate    bool // '#'
	LeftJustify  bool // '-'
	PlusSign     bool // '+'
	Space        bool // ' '
	ZeroPad      bool // '0'
	Localizable  bool // numeric specifiers default to true
}

// Spec records everything parsed from one specifier, `%...verb`.
type Spec struct {
	SourceOffset int
	SourceLength int

	Kind  ValueKind
	Style NumericStyle
	Flags Flags

	// ArgPosition is the 1-based explicit %N$ argument position, or 0 if
	// the specifier consumes the next sequential argument.
	ArgPosition int

	HasWidth     bool
	Width        int
	WidthArgPos  int // not set by ParseSpec; always 0
	HasPrecision bool
	Precision    int
	PrecisionArgPos int // not set by ParseSpec; always 0

	Verb rune // the conversion character: d, i, u, f, e, g, s, @, %, c
}

// ParseSpec advances *i past one specifier beginning at format[*i] == '%'
// and returns the filled Spec. If the format string ends before the
// specifier is complete, it returns a Spec with Kind == KindIncomplete
// and no error: incomplete specifiers are not a parse failure, matching
// how a truncated format string is handled elsewhere in this package.
func ParseSpec(format []rune, i *int) (Spec, error) {
	start := *i
	spec := Spec{SourceOffset: start}
	if format[*i] != '%' {
		return spec, wrapErrf("ParseSpec: expected '%%' at %d", *i)
	}
	*i++

	// Positional prefix: digits followed by '$'.
	if pos, ok := peekPositional(format, i); ok {
		spec.ArgPosition = pos
	}

	for *i < len(format) {
		switch format[*i] {
		case '#':
			spec.Flags.Alternate = true
		case '-':
			spec.Flags.LeftJustify = true
		case '+':
			spec.Flags.PlusSign = true
		case ' ':
			spec.Flags.Space = true
		case '0':
			spec.Flags.ZeroPad = true
		default:
			goto afterFlags
		}
		*i++
	}
afterFlags:
	if *i >= len(format) {
		spec.Kind = KindIncomplete
		return spec, nil
	}

	if format[*i] == '*' {
		spec.HasWidth = true
		*i++
	} else if n, consumed, ok := parseDigits(format, *i); ok {
		spec.HasWidth = true
		spec.Width = n
		*i += consumed
	}

	if *i < len(format) && format[*i] == '.' {
		*i++
		spec.HasPrecision = true
		if *i < len(format) && format[*i] == '*' {
			*i++
		} else if n, consumed, ok := parseDigits(format, *i); ok {
			spec.Precision = n
			*i += consumed
		}
	}

	if *i >= len(format) {
		spec.Kind = KindIncomplete
		return spec, nil
	}

	verb := format[*i]
	*i++
	spec.Verb = verb
	spec.SourceLength = *i - start

	switch verb {
	case 'd', 'i':
		spec.Kind = KindInt
		spec.Style = StyleDecimal
		spec.Flags.Localizable = true
	case 'u':
		spec.Kind = KindUnsignedInt
		spec.Style = StyleUnsigned
		spec.Flags.Localizable = true
	case 'f':
		spec.Kind = KindFloat
		spec.Style = StyleDecimal
		spec.Flags.Localizable = true
	case 'e', 'E':
		spec.Kind = KindFloat
		spec.Style = StyleScientific
		spec.Flags.Localizable = true
	case 'g', 'G':
		spec.Kind = KindFloat
		spec.Style = StyleDecimalOrScientific
		spec.Flags.Localizable = true
	case 's':
		spec.Kind = KindString
	case 'c':
		spec.Kind = KindString
	case '@':
		spec.Kind = KindObject
	case '%':
		spec.Kind = KindPercent
	default:
		return spec, wrapErrf("ParseSpec: unsupported conversion %q", verb)
	}
	return spec, nil
}

func peekPositional(format []rune, i *int) (int, bool) {
	n, consumed, ok := parseDigits(format, *i)
	if !ok {
		return 0, false
	}
	end := *i + consumed
	if end >= len(format) || format[end] != '$' {
		return 0, false
	}
	*i = end + 1
	return n, true
}

func parseDigits(format []rune, i int) (value int, consumed int, ok bool) {
	start := i
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	if i == start {
		return 0, 0, false
	}
	n, err := strconv.Atoi(string(format[start:i]))
	if err != nil {
		return 0, 0, false
	}
	return n, i - start, true
}
