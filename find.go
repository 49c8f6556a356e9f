package corestr

import "github.com/axiomhq/corestr/locale"

// FindWithOptions searches s for needle within searchRange, honoring o's
// Anchored, Backwards, and folding options. It returns the matched range
// and whether a match was found.
func FindWithOptions(s, needle *String, searchRange Range, o CompareOptions, l locale.Locale) (Range, bool) {
	if needle.charLen == 0 {
		return Range{searchRange.Location, 0}, true
	}
	if needle.charLen > searchRange.Length {
		return Range{}, false
	}

	if o.Anchored {
		if o.Backwards {
			start := searchRange.End() - needle.charLen
			if r, ok := tryMatchAt(s, needle, start, searchRange, o, l); ok {
				return r, true
			}
			return Range{}, false
		}
		if r, ok := tryMatchAt(s, needle, searchRange.Location, searchRange, o, l); ok {
			return r, true
		}
		return Range{}, false
	}

	if o.Backwards {
		for start := searchRange.End() - needle.charLen; start >= searchRange.Location; start-- {
			if r, ok := tryMatchAt(s, needle, start, searchRange, o, l); ok {
				return r, true
			}
		}
		return Range{}, false
	}

	for start := searchRange.Location; start <= searchRange.End()-needle.charLen; start++ {
		if r, ok := tryMatchAt(s, needle, start, searchRange, o, l); ok {
			return r, true
		}
	}
	return Range{}, false
}

// tryMatchAt attempts to match needle against s starting at a fixed
// character position, growing the candidate range as folding expands or
// contracts cluster boundaries, and reports the matched range in s.
func tryMatchAt(s, needle *String, start int, bounds Range, o CompareOptions, l locale.Locale) (Range, bool) {
	if start < bounds.Location || start > bounds.End() {
		return Range{}, false
	}

	si, ni := start, 0
	for ni < needle.charLen {
		if si >= bounds.End() {
			return Range{}, false
		}
		foldedS, consumedS := foldClusterAt(s, si, o)
		foldedN, consumedN := foldClusterAt(needle, ni, o)
		if !runesEqual(foldedS, foldedN) {
			return Range{}, false
		}
		si += consumedS
		ni += consumedN
	}
	return Range{start, si - start}, true
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FindCharacterFromSet scans forward (or backward if o.Backwards) for the
// first character in searchRange that is in set, returning its one- or
// two-unit range.
func FindCharacterFromSet(s *String, set func(rune) bool, searchRange Range, o CompareOptions) (Range, bool) {
	if o.Backwards {
		i := searchRange.End()
		for i > searchRange.Location {
			c, w := scalarBefore(s, i)
			if set(c) {
				return Range{i - w, w}, true
			}
			i -= w
		}
		return Range{}, false
	}
	i := searchRange.Location
	for i < searchRange.End() {
		c, w := scalarAt(s, i)
		if set(c) {
			return Range{i, w}, true
		}
		i += w
	}
	return Range{}, false
}

func scalarBefore(s *String, idx int) (rune, int) {
	if !s.hdr.unicode {
		return rune(s.bytes[idx-1]), 1
	}
	u := s.units[idx-1]
	if u >= 0xDC00 && u <= 0xDFFF && idx-2 >= 0 {
		hi := s.units[idx-2]
		if hi >= 0xD800 && hi <= 0xDBFF {
			return (rune(hi)-0xD800)<<10 + (rune(u) - 0xDC00) + 0x10000, 2
		}
	}
	return rune(u), 1
}
