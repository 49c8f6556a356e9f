package corestr

import "github.com/axiomhq/corestr/locale"

// isLineBreak reports the scalars that terminate a line: LF, CR, CRLF (as
// a pair), NEL, line separator, paragraph separator.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', 0x0085, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

func isParagraphBreak(r rune) bool {
	switch r {
	case '\n', '\r', 0x0085, 0x2029:
		return true
	default:
		return false
	}
}

// GetLineBounds returns the range of the line containing idx, i.e. the
// maximal run of characters with no line terminator, not including the
// terminator itself.
func (s *String) GetLineBounds(idx int) Range {
	return s.boundsFor(idx, isLineBreak)
}

// GetParagraphBounds returns the range of the paragraph containing idx,
// using the narrower paragraph-terminator set (CRLF is not itself a
// paragraph break inside a single line-separator context).
func (s *String) GetParagraphBounds(idx int) Range {
	return s.boundsFor(idx, isParagraphBreak)
}

func (s *String) boundsFor(idx int, isBreak func(rune) bool) Range {
	start := idx
	for start > 0 {
		c, w := scalarBefore(s, start)
		if isBreak(c) {
			break
		}
		start -= w
	}
	end := idx
	for end < s.charLen {
		c, w := scalarAt(s, end)
		if isBreak(c) {
			break
		}
		end += w
	}
	return Range{start, end - start}
}

// CreateArrayBySeparating splits s on every occurrence of separator,
// returning the resulting substrings (including empty ones between
// adjacent separators).
func CreateArrayBySeparating(s, separator *String) []*String {
	if separator.charLen == 0 {
		return []*String{s.Copy()}
	}
	var out []*String
	pos := 0
	for pos <= s.charLen {
		r, ok := FindWithOptions(s, separator, Range{pos, s.charLen - pos}, CompareOptions{}, locale.Current)
		if !ok {
			out = append(out, s.Substring(Range{pos, s.charLen - pos}))
			break
		}
		out = append(out, s.Substring(Range{pos, r.Location - pos}))
		pos = r.End()
	}
	return out
}

// CreateByCombining joins components with separator between each.
func CreateByCombining(components []*String, separator *String) *String {
	var runes []rune
	for i, c := range components {
		if i > 0 {
			runes = append(runes, separator.Runes()...)
		}
		runes = append(runes, c.Runes()...)
	}
	return newImmutable(runes)
}
