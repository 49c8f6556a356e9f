package corestr

import "github.com/axiomhq/corestr/unicodeprop"

// ClusterType selects which grapheme-adjacent notion of "cluster"
// RangeOfCharacterClusterAt computes.
type ClusterType int

const (
	ClusterComposed ClusterType = iota
	ClusterGrapheme
	ClusterCursorMovement
	ClusterBackwardDeletion
)

const (
	hangulLBase, hangulLCount = 0x1100, 19
	hangulVBase, hangulVCount = 0x1161, 21
	hangulTBase, hangulTCount = 0x11A7, 28
	hangulSBase               = 0xAC00
)

func hangulClass(r rune) byte {
	switch {
	case r >= hangulLBase && r < hangulLBase+hangulLCount:
		return 'L'
	case r >= hangulVBase && r < hangulVBase+hangulVCount:
		return 'V'
	case r > hangulTBase && r < hangulTBase+hangulTCount:
		return 'T'
	case r >= hangulSBase:
		sIndex := r - hangulSBase
		if sIndex < 0 || sIndex >= 19*21*28 {
			return 0
		}
		if sIndex%28 == 0 {
			return 'O' // LV
		}
		return 'S' // LVT
	default:
		return 0
	}
}

// RangeOfCharacterClusterAt returns the range of the character cluster
// containing idx, per clusterType's rules. All four cluster types share
// the same core algorithm (combining-tail extension, Hangul syllable
// grouping, joiner rules, regional-indicator pairing, extended-
// pictographic matching); ClusterBackwardDeletion additionally refuses to
// combine across the Armenian-Limbu script boundary.
func (s *String) RangeOfCharacterClusterAt(idx int, clusterType ClusterType) Range {
	if idx < 0 || idx >= s.charLen {
		return Range{idx, 0}
	}

	start, end := idx, idx
	seed, seedW := scalarAt(s, idx)
	end = idx + seedW

	extendBackward := func() {
		for start > 0 {
			c, w := scalarBefore(s, start)
			if !isCombiningTail(c) {
				break
			}
			if clusterType == ClusterBackwardDeletion && crossesArmenianLimbu(c, seed) {
				break
			}
			start -= w
		}
	}
	extendForward := func() {
		for end < s.charLen {
			c, w := scalarAt(s, end)
			if !isCombiningTail(c) {
				break
			}
			end += w
		}
	}
	extendBackward()
	extendForward()

	extendHangul(s, &start, &end)
	extendJoiners(s, &start, &end)
	extendRegionalIndicators(s, &start, &end)

	if r, ok := extendedPictographicMatch(s, idx); ok {
		if r.Location < start {
			start = r.Location
		}
		if r.End() > end {
			end = r.End()
		}
	}

	gatherTerminalZWJ(s, &end)
	if seed == 0x200D { // isolated ZWJ seed: also gather backward
		for start > 0 {
			c, w := scalarBefore(s, start)
			if c != 0x200D {
				break
			}
			start -= w
		}
	}

	return Range{start, end - start}
}

// RangeOfComposedCharactersAt is the unconditional (no cluster-type
// variation) composed-character-sequence query: the base scalar plus its
// full combining tail and Hangul grouping, without joiner extensions and
// without the extended-pictographic or backward-deletion special cases.
func (s *String) RangeOfComposedCharactersAt(idx int) Range {
	if idx < 0 || idx >= s.charLen {
		return Range{idx, 0}
	}
	start, end := idx, idx
	_, seedW := scalarAt(s, idx)
	end = idx + seedW
	for start > 0 {
		c, w := scalarBefore(s, start)
		if !isCombiningTail(c) {
			break
		}
		start -= w
	}
	for end < s.charLen {
		c, w := scalarAt(s, end)
		if !isCombiningTail(c) {
			break
		}
		end += w
	}
	extendHangul(s, &start, &end)
	return Range{start, end - start}
}

func isCombiningTail(r rune) bool {
	return unicodeprop.Default.CombiningClass(r) != 0 || unicodeprop.Default.GraphemeExtend(r)
}

// crossesArmenianLimbu reports whether seed and mark straddle the
// Armenian (0x0530-0x058F) to Limbu (0x1900-0x194F) script span backward
// deletion refuses to combine across.
func crossesArmenianLimbu(mark, seed rune) bool {
	inSpan := func(r rune) bool { return r >= 0x0530 && r <= 0x194F }
	return inSpan(mark) != inSpan(seed)
}

func extendHangul(s *String, start, end *int) {
	for *start > 0 {
		c, w := scalarBefore(s, *start)
		cls := hangulClass(c)
		next, _ := scalarAt(s, *start)
		nextCls := hangulClass(next)
		if !hangulPrecedes(cls, nextCls) {
			break
		}
		*start -= w
	}
	for *end < s.charLen {
		c, w := scalarAt(s, *end)
		prev, _ := scalarBefore(s, *end)
		prevCls := hangulClass(prev)
		cls := hangulClass(c)
		if !hangulPrecedes(prevCls, cls) {
			break
		}
		*end += w
	}
}

// hangulPrecedes reports whether a cluster ending/starting in class prev
// may absorb a neighbor of class next, per the L/V/T/LV/LVT grouping
// table: V follows L or LV/O; T follows V, LV/O, or LVT/S.
func hangulPrecedes(prev, next byte) bool {
	switch next {
	case 'V':
		return prev == 'L' || prev == 'O'
	case 'T':
		return prev == 'V' || prev == 'O' || prev == 'S'
	default:
		return false
	}
}

// extendJoiners absorbs a zero-width-joiner or virama-class combiner that
// concatenates two letter clusters.
func extendJoiners(s *String, start, end *int) {
	for *end+1 < s.charLen {
		joiner, jw := scalarAt(s, *end)
		if joiner != 0x200D {
			break
		}
		following, fw := scalarAt(s, *end+jw)
		if !unicodeprop.Default.Letter(following) && !unicodeprop.Default.ExtendedPictographic(following) {
			break
		}
		*end += jw + fw
		for *end < s.charLen {
			c, w := scalarAt(s, *end)
			if !isCombiningTail(c) {
				break
			}
			*end += w
		}
	}
}

func extendRegionalIndicators(s *String, start, end *int) {
	seed, _ := scalarAt(s, *start)
	if !unicodeprop.Default.RegionalIndicator(seed) {
		return
	}
	count := 0
	for i := *start; i > 0; {
		c, w := scalarBefore(s, i)
		if !unicodeprop.Default.RegionalIndicator(c) {
			break
		}
		i -= w
		count++
	}
	if count%2 == 1 {
		if prev, w := scalarBefore(s, *start); unicodeprop.Default.RegionalIndicator(prev) {
			*start -= w
		}
	}
	if next, w := scalarAt(s, *end); unicodeprop.Default.RegionalIndicator(next) {
		if prev, _ := scalarBefore(s, *end); unicodeprop.Default.RegionalIndicator(prev) && *end > *start {
			*end += w
		}
	}
}

func gatherTerminalZWJ(s *String, end *int) {
	for *end < s.charLen {
		c, w := scalarAt(s, *end)
		if c != 0x200D {
			break
		}
		*end += w
	}
}

// extendedPictographicMatch implements the three-phase walk of the
// precore* core postcore* grammar (core := pictograph (Extend* ZWJ
// pictograph)*) seeded at idx, returning a match only if it contains idx
// and at least one pictographic core character was found.
func extendedPictographicMatch(s *String, idx int) (Range, bool) {
	seed, seedW := scalarAt(s, idx)
	isPictCore := unicodeprop.Default.ExtendedPictographic(seed)
	isPostcore := func(r rune) bool {
		return unicodeprop.Default.GraphemeExtend(r) || r == 0x200D
	}

	start := idx
	for start > 0 {
		c, w := scalarBefore(s, start)
		if !isPostcore(c) {
			break
		}
		start -= w
	}

	end := idx + seedW
	foundCore := isPictCore
	for end < s.charLen {
		c, w := scalarAt(s, end)
		if c == 0x200D && end+w < s.charLen {
			next, nw := scalarAt(s, end+w)
			if unicodeprop.Default.ExtendedPictographic(next) {
				end += w + nw
				foundCore = true
				continue
			}
		}
		if isPostcore(c) {
			end += w
			continue
		}
		break
	}

	if !foundCore {
		return Range{}, false
	}
	return Range{start, end - start}, true
}
