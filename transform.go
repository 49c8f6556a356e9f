package corestr

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// toLowerRune and toUpperRune wrap the stdlib unicode case-mapping tables;
// Turkic/Lithuanian/Greek/Dutch special-casing is applied by the caller
// (foldClusterAt) rather than here, since it depends on a locale.
func toLowerRune(r rune) rune { return unicode.ToLower(r) }
func toUpperRune(r rune) rune { return unicode.ToUpper(r) }

// widthFold maps halfwidth/fullwidth forms to their canonical-width
// counterpart by taking the first scalar of their compatibility
// decomposition, leaving everything else unchanged.
func widthFold(r rune) rune {
	if r < 0xFF00 || r > 0xFFEF {
		return r
	}
	d := norm.NFKD.String(string(r))
	for _, rr := range d {
		return rr
	}
	return r
}

// Lowercase returns a new immutable String with every character
// lowercased.
func (s *String) Lowercase() *String {
	return mapRunes(s, unicode.ToLower)
}

// Uppercase returns a new immutable String with every character
// uppercased.
func (s *String) Uppercase() *String {
	return mapRunes(s, unicode.ToUpper)
}

// Capitalize returns a new immutable String with the first letter of each
// word uppercased and the rest lowercased.
func (s *String) Capitalize() *String {
	runes := s.Runes()
	atWordStart := true
	out := make([]rune, len(runes))
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r):
			out[i] = r
			atWordStart = true
		case atWordStart:
			out[i] = unicode.ToUpper(r)
			atWordStart = false
		default:
			out[i] = unicode.ToLower(r)
		}
	}
	return fromRunes(out)
}

// NormalizationForm selects one of the four standard Unicode
// normalization forms.
type NormalizationForm int

const (
	FormD NormalizationForm = iota
	FormC
	FormKD
	FormKC
)

// Normalize returns a new immutable String in the requested normalization
// form.
func (s *String) Normalize(form NormalizationForm) *String {
	var f norm.Form
	switch form {
	case FormD:
		f = norm.NFD
	case FormC:
		f = norm.NFC
	case FormKD:
		f = norm.NFKD
	case FormKC:
		f = norm.NFKC
	}
	out := f.String(string(s.Runes()))
	return fromRunes([]rune(out))
}

// Fold returns a new immutable String with the given comparison options'
// folding transformations applied to every character cluster (case
// folding, diacritic stripping, width folding), independent of any second
// string.
func (s *String) Fold(o CompareOptions) *String {
	var out []rune
	i := 0
	for i < s.charLen {
		folded, consumed := foldClusterAt(s, i, o)
		out = append(out, folded...)
		i += consumed
	}
	return fromRunes(out)
}

func mapRunes(s *String, f func(rune) rune) *String {
	runes := s.Runes()
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = f(r)
	}
	return fromRunes(out)
}
