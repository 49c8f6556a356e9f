package corestr

import (
	"github.com/axiomhq/corestr/locale"
	"github.com/axiomhq/corestr/unicodeprop"
)

// CompareOptions selects the option-driven transformations comparison,
// search, and folding honor.
type CompareOptions struct {
	CaseInsensitive       bool
	DiacriticInsensitive  bool
	WidthInsensitive      bool
	Nonliteral            bool // treat canonically-equivalent sequences as equal
	Numeric               bool // compare maximal digit runs as integers
	ForceOrdering         bool // tiebreak otherwise-equal strings by first fine-grained mismatch
	IgnoreNonAlphanumeric bool
	Anchored              bool
	Backwards             bool
	UseLocale             bool
}

// asciiToLower is the 128-byte ASCII case-insensitive fold table: A-Z map
// to a-z, everything else maps to itself. It never stops on an embedded
// NUL, matching C-string comparison behavior on ASCII prefixes.
var asciiToLower = func() [128]byte {
	var t [128]byte
	for i := range t {
		t[i] = byte(i)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = c - 'A' + 'a'
	}
	return t
}()

func asciiFold(b byte) byte {
	if b < 128 {
		return asciiToLower[b]
	}
	return b
}

// Compare performs a full option- and locale-aware comparison of a and b,
// returning -1, 0, or 1.
func Compare(a, b *String, o CompareOptions, l locale.Locale) int {
	if r, ok := memcmpFastPath(a, b, o); ok {
		return r
	}
	return foldingCompare(a, b, Range{0, a.charLen}, Range{0, b.charLen}, o, l)
}

// memcmpFastPath handles the no-locale, no-numeric, no-ignore-set case
// where both strings expose a contiguous same-representation buffer.
func memcmpFastPath(a, b *String, o CompareOptions) (int, bool) {
	if o.DiacriticInsensitive || o.Nonliteral || o.Numeric || o.IgnoreNonAlphanumeric || o.UseLocale || o.WidthInsensitive {
		return 0, false
	}
	if a.hdr.unicode != b.hdr.unicode {
		return 0, false
	}
	if !a.hdr.unicode {
		if !o.CaseInsensitive {
			return compareBytes(a.bytes, b.bytes), true
		}
		return compareBytesFolded(a.bytes, b.bytes), true
	}
	if !o.CaseInsensitive {
		return compareUnits(a.units, b.units), true
	}
	return 0, false
}

func compareBytes(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return compareLen(len(a), len(b))
}

func compareBytesFolded(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		fa, fb := asciiFold(a[i]), asciiFold(b[i])
		if fa != fb {
			if fa < fb {
				return -1
			}
			return 1
		}
	}
	return compareLen(len(a), len(b))
}

func compareUnits(a, b []uint16) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return compareLen(len(a), len(b))
}

func compareLen(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// foldingCompare walks ar and br in lockstep, folding each scalar (and,
// when diacritic-insensitive, skipping combining marks), honoring the numeric, ignore-set, and force-ordering options,
// falling back to the locale collator when UseLocale is set and a
// mismatch remains.
func foldingCompare(a, b *String, ar, br Range, o CompareOptions, l locale.Locale) int {
	ai, bi := ar.Location, br.Location
	tieBreak := 0
	skippable := func(c rune) bool {
		return (o.IgnoreNonAlphanumeric && !isAlnumRune(c)) || (o.DiacriticInsensitive && isCombiningTail(c))
	}

	for ai < ar.End() && bi < br.End() {
		ca, ra := scalarAt(a, ai)
		cb, rb := scalarAt(b, bi)

		if skippable(ca) {
			ai += ra
			continue
		}
		if skippable(cb) {
			bi += rb
			continue
		}

		if o.Numeric && isASCIIDigit(ca) && isASCIIDigit(cb) {
			na, consumedA := scanDigitRun(a, ai, ar.End())
			nb, consumedB := scanDigitRun(b, bi, br.End())
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			if o.ForceOrdering && tieBreak == 0 && consumedA != consumedB {
				tieBreak = compareLen(consumedA, consumedB)
			}
			ai += consumedA
			bi += consumedB
			continue
		}

		fca := foldRune(ca, o)
		fcb := foldRune(cb, o)
		if fca != fcb {
			if o.UseLocale {
				return l.Compare(runesFrom(a, ai, ar.End()), runesFrom(b, bi, br.End()), o.CaseInsensitive, o.Numeric)
			}
			if fca < fcb {
				return -1
			}
			return 1
		}
		if o.ForceOrdering && tieBreak == 0 && ca != cb {
			tieBreak = compareLen(int(ca), int(cb))
		}
		ai += ra
		bi += rb
	}

	for ai < ar.End() {
		c, r := scalarAt(a, ai)
		if !skippable(c) {
			break
		}
		ai += r
	}
	for bi < br.End() {
		c, r := scalarAt(b, bi)
		if !skippable(c) {
			break
		}
		bi += r
	}

	switch {
	case ai < ar.End():
		return 1
	case bi < br.End():
		return -1
	case tieBreak != 0:
		return tieBreak
	default:
		return 0
	}
}

func foldRune(r rune, o CompareOptions) rune {
	out := r
	if o.WidthInsensitive {
		out = widthFold(out)
	}
	if o.DiacriticInsensitive {
		out = diacriticFold(out)
	}
	if o.CaseInsensitive {
		out = caseFoldRune(out)
	}
	return out
}

// diacriticFold returns the base (canonical-decomposition) scalar for r,
// discarding any combining marks — used only for single-scalar comparison
// fast paths; full cluster folding lives in fold.go.
func diacriticFold(r rune) rune {
	if d, ok := unicodeprop.Default.Decompose(r); ok && len(d) > 0 {
		return d[0]
	}
	return r
}

func caseFoldRune(r rune) rune {
	if unicodeprop.Default.Uppercase(r) {
		return toLowerRune(r)
	}
	return r
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlnumRune(r rune) bool {
	return unicodeprop.Default.Letter(r) || isASCIIDigit(r) || (r >= '0' && r <= '9')
}

func scanDigitRun(s *String, start, end int) (value int64, consumed int) {
	i := start
	var v int64
	for i < end {
		c, r := scalarAt(s, i)
		if !isASCIIDigit(c) {
			break
		}
		v = v*10 + int64(c-'0')
		i += r
	}
	return v, i - start
}

func runesFrom(s *String, start, end int) []rune {
	out := make([]rune, 0, end-start)
	i := start
	for i < end {
		c, r := scalarAt(s, i)
		out = append(out, c)
		i += r
	}
	return out
}

// scalarAt reads one scalar (pairing UTF-16 surrogates) starting at
// character index idx, returning the scalar and how many code units it
// consumed (1 or 2).
func scalarAt(s *String, idx int) (rune, int) {
	if !s.hdr.unicode {
		return rune(s.bytes[idx]), 1
	}
	u := s.units[idx]
	if u >= 0xD800 && u <= 0xDBFF && idx+1 < len(s.units) {
		lo := s.units[idx+1]
		if lo >= 0xDC00 && lo <= 0xDFFF {
			return (rune(u)-0xD800)<<10 + (rune(lo) - 0xDC00) + 0x10000, 2
		}
	}
	return rune(u), 1
}
