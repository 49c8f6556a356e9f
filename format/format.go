package format

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Describable is implemented by argument types that want to control their
// own %@ rendering instead of falling back to fmt.Sprint.
type Describable interface {
	FormatDescription() string
}

// Replacement is one non-literal specifier's contribution to a rendered
// format string, returned alongside the output when metadata is
// requested.
type Replacement struct {
	SpecOffset   int
	SpecLength   int
	OutputOffset int
	OutputLength int
	ArgIndex     int // 1-based
	ArgValue     any // the argument rendered, for numbers/objects
}

var (
	disableLocalizedNumbers     bool
	disableLocalizedNumbersOnce sync.Once
)

func localizedNumbersEnabled() bool {
	disableLocalizedNumbersOnce.Do(func() {
		disableLocalizedNumbers = os.Getenv("CORESTR_DISABLE_LOCALIZED_NUMBER_FORMATTING") != ""
	})
	return !disableLocalizedNumbers
}

// NumberFormatter renders a numeric argument with locale-aware grouping
// and decimal separators. Callers pass the locale's separators; this
// package stays decoupled from the locale package to avoid an import
// cycle with corestr's root package.
type NumberFormatter struct {
	DecimalSeparator  string
	GroupingSeparator string
}

// Render parses tmpl, binds args (sequential unless a specifier uses
// %N$), and returns the rendered output plus replacement metadata for
// every non-literal specifier.
func Render(tmpl string, nf NumberFormatter, args []any) (string, []Replacement, error) {
	runes := []rune(tmpl)
	specs, err := parseAll(runes)
	if err != nil {
		return "", nil, err
	}

	bound, maxPositional, sawPositional, err := bindPositions(specs)
	if err != nil {
		return "", nil, err
	}
	_ = maxPositional

	var out strings.Builder
	var replacements []Replacement
	lastLiteralEnd := 0

	emitLiteral := func(end int) {
		if end > lastLiteralEnd {
			out.WriteString(string(runes[lastLiteralEnd:end]))
		}
	}

	for i, sp := range specs {
		emitLiteral(sp.SourceOffset)
		outStart := out.Len()

		argIdx := bound[i]
		var arg any
		if sp.Kind != KindPercent && sp.Kind != KindLiteral {
			if argIdx < 1 || argIdx > len(args) {
				return "", nil, ErrMissingArgument
			}
			arg = args[argIdx-1]
		}

		switch sp.Kind {
		case KindPercent:
			out.WriteByte('%')
		case KindInt, KindUnsignedInt:
			out.WriteString(renderInt(sp, arg, nf))
		case KindFloat:
			out.WriteString(renderFloat(sp, arg, nf))
		case KindString:
			out.WriteString(renderString(sp, arg))
		case KindObject:
			out.WriteString(describe(arg))
		}

		if sp.Kind != KindLiteral {
			replacements = append(replacements, Replacement{
				SpecOffset:   sp.SourceOffset,
				SpecLength:   sp.SourceLength,
				OutputOffset: outStart,
				OutputLength: out.Len() - outStart,
				ArgIndex:     argIdx,
				ArgValue:     arg,
			})
		}
		lastLiteralEnd = sp.SourceOffset + sp.SourceLength
	}
	emitLiteral(len(runes))

	_ = sawPositional
	return out.String(), replacements, nil
}

func parseAll(runes []rune) ([]Spec, error) {
	var specs []Spec
	i := 0
	for i < len(runes) {
		if runes[i] != '%' {
			i++
			continue
		}
		sp, err := ParseSpec(runes, &i)
		if err != nil {
			return nil, err
		}
		if sp.Kind == KindIncomplete {
			break
		}
		specs = append(specs, sp)
	}
	return specs, nil
}

// bindPositions runs pass 1: assigns each specifier's 1-based argument
// index, sequential unless it carries an explicit %N$ position.
func bindPositions(specs []Spec) (bound []int, maxArg int, sawPositional bool, err error) {
	bound = make([]int, len(specs))
	seq := 1
	for i, sp := range specs {
		if sp.Kind == KindPercent || sp.Kind == KindLiteral {
			continue
		}
		if sp.ArgPosition > 0 {
			bound[i] = sp.ArgPosition
			sawPositional = true
		} else {
			bound[i] = seq
			seq++
		}
		if bound[i] > maxArg {
			maxArg = bound[i]
		}
	}
	return bound, maxArg, sawPositional, nil
}

func renderInt(sp Spec, arg any, nf NumberFormatter) string {
	v := toInt64(arg)
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if sp.Flags.Localizable && localizedNumbersEnabled() && nf.GroupingSeparator != "" {
		s = groupDigits(s, nf.GroupingSeparator)
	}
	if neg {
		s = "-" + s
	} else if sp.Flags.PlusSign {
		s = "+" + s
	} else if sp.Flags.Space {
		s = " " + s
	}
	return pad(s, sp)
}

func renderFloat(sp Spec, arg any, nf NumberFormatter) string {
	v := toFloat64(arg)
	prec := 6
	if sp.HasPrecision {
		prec = sp.Precision
	}
	verbByte := byte('f')
	if sp.Style == StyleScientific {
		verbByte = 'e'
	} else if sp.Style == StyleDecimalOrScientific {
		verbByte = 'g'
	}
	s := strconv.FormatFloat(v, verbByte, prec, 64)
	if sp.Flags.Localizable && localizedNumbersEnabled() && nf.DecimalSeparator != "." && nf.DecimalSeparator != "" {
		s = strings.Replace(s, ".", nf.DecimalSeparator, 1)
	}
	if v >= 0 && sp.Flags.PlusSign {
		s = "+" + s
	}
	return pad(s, sp)
}

func renderString(sp Spec, arg any) string {
	s := fmt.Sprint(arg)
	if sp.HasPrecision && sp.Precision < len(s) {
		s = s[:sp.Precision]
	}
	return pad(s, sp)
}

func describe(arg any) string {
	if d, ok := arg.(Describable); ok {
		return d.FormatDescription()
	}
	return fmt.Sprint(arg)
}

func pad(s string, sp Spec) string {
	if !sp.HasWidth || sp.Width <= len(s) {
		return s
	}
	padLen := sp.Width - len(s)
	padChar := " "
	if sp.Flags.ZeroPad && !sp.Flags.LeftJustify {
		padChar = "0"
	}
	padding := strings.Repeat(padChar, padLen)
	if sp.Flags.LeftJustify {
		return s + strings.Repeat(" ", padLen)
	}
	return padding + s
}

func groupDigits(s, sep string) string {
	if len(s) <= 3 {
		return s
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return strings.Join(groups, sep)
}

func toInt64(arg any) int64 {
	switch v := arg.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	default:
		return 0
	}
}

func toFloat64(arg any) float64 {
	switch v := arg.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
