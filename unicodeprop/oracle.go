// Package unicodeprop implements the Unicode property oracle collaborator:
// per-plane bitmap lookups for character classes, case mapping,
// decomposition, combining class, and grapheme extension. It is a thin
// adapter over golang.org/x/text and the stdlib unicode package rather
// than a from-scratch reimplementation of Unicode property tables.
package unicodeprop

import (
	"unicode"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Oracle is the property-lookup surface consumed by folding, comparison,
// and segmentation: grapheme extension, canonical/compatibility
// decomposability, non-base marks, letter/case/whitespace/bidi classes,
// case ignorability, plus scalar decomposition expansion, combining
// class, and extended-pictographic/grapheme-break/emoji-modifier queries.
type Oracle interface {
	GraphemeExtend(r rune) bool
	CanonicalDecomposable(r rune) bool
	CompatibilityDecomposable(r rune) bool
	NonBase(r rune) bool
	Letter(r rune) bool
	Uppercase(r rune) bool
	Lowercase(r rune) bool
	WhitespaceAndNewline(r rune) bool
	StrongRightToLeft(r rune) bool
	CaseIgnorable(r rune) bool

	// Decompose returns the canonical (form D) decomposition of r, or
	// (nil, false) if r has none.
	Decompose(r rune) ([]rune, bool)
	// CombiningClass returns the canonical combining class of r (0 for
	// starters).
	CombiningClass(r rune) int

	ExtendedPictographic(r rune) bool
	RegionalIndicator(r rune) bool
	EmojiModifier(r rune) bool
}

// Default is the x/text-backed Oracle used throughout corestr unless a
// caller installs another (the interface exists precisely so a caller can
// swap in a different property-lookup implementation).
var Default Oracle = xtextOracle{}

type xtextOracle struct{}

func (xtextOracle) GraphemeExtend(r rune) bool {
	// Grapheme_Extend ⊆ combining marks; Mn/Me cover nonspacing and
	// enclosing marks, which is the bulk of Grapheme_Extend outside the
	// handful of spacing combining marks ICU also flags.
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r)
}

func (xtextOracle) CanonicalDecomposable(r rune) bool {
	p := norm.NFD.PropertiesString(string(r))
	return p.Decomposition() != nil
}

func (xtextOracle) CompatibilityDecomposable(r rune) bool {
	p := norm.NFKD.PropertiesString(string(r))
	return len(p.Decomposition()) > 0 && p.IsCompatibility()
}

func (xtextOracle) NonBase(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r)
}

func (xtextOracle) Letter(r rune) bool { return unicode.IsLetter(r) }

func (xtextOracle) Uppercase(r rune) bool { return unicode.IsUpper(r) }

func (xtextOracle) Lowercase(r rune) bool { return unicode.IsLower(r) }

func (xtextOracle) WhitespaceAndNewline(r rune) bool {
	return unicode.IsSpace(r) || r == '\n' || r == '\r'
}

func (xtextOracle) StrongRightToLeft(r rune) bool {
	switch bidi.Lookup([]byte(string(r))).Class() {
	case bidi.R, bidi.AL:
		return true
	default:
		return false
	}
}

func (xtextOracle) CaseIgnorable(r rune) bool {
	// Approximate Case_Ignorable via the Word_Break MidLetter/format/
	// combining-mark classes x/text exposes indirectly through
	// categories: punctuation connectors, combining marks, and a small
	// fixed set of letters (e.g. MIDDLE DOT) used purely for case-folding
	// purposes across words.
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r) {
		return true
	}
	switch r {
	case '\'', ':', '.', 0x00B7, 0x2019:
		return true
	}
	return false
}

func (xtextOracle) Decompose(r rune) ([]rune, bool) {
	p := norm.NFD.PropertiesString(string(r))
	d := p.Decomposition()
	if d == nil {
		return nil, false
	}
	out := make([]rune, 0, len(d))
	for _, rr := range string(d) {
		out = append(out, rr)
	}
	return out, true
}

func (xtextOracle) CombiningClass(r rune) int {
	p := norm.NFD.PropertiesString(string(r))
	return int(p.CCC())
}

func (xtextOracle) ExtendedPictographic(r rune) bool {
	return extendedPictographicRanges.contains(r)
}

func (xtextOracle) RegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

func (xtextOracle) EmojiModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}
