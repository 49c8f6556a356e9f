package corestr

import (
	"github.com/axiomhq/corestr/locale"
	"github.com/axiomhq/corestr/unicodeprop"
)

// foldClusterAt reads one character cluster starting at character index
// idx (a scalar, surrogate-paired if needed, plus any following
// combining marks), applies o's option-driven transformations in order —
// width-insensitive decomposition of halfwidth/fullwidth forms,
// canonical decomposition (when diacritic-insensitive or nonliteral),
// dropping every combining mark after the base (when
// diacritic-insensitive), case-folding (with the Turkic dotted/dotless I special case), then a
// stable priority-sort of the resulting trailing combining marks — and
// returns the folded scalars plus how many source characters were
// consumed.
func foldClusterAt(s *String, idx int, o CompareOptions) (folded []rune, consumed int) {
	start := idx
	seed, seedWidth := scalarAt(s, idx)
	idx += seedWidth

	marks := []rune{seed}
	for idx < s.charLen {
		c, w := scalarAt(s, idx)
		if unicodeprop.Default.CombiningClass(c) == 0 && !unicodeprop.Default.GraphemeExtend(c) {
			break
		}
		marks = append(marks, c)
		idx += w
	}
	consumed = idx - start

	head := marks[0]
	if o.WidthInsensitive {
		head = widthFold(head)
		marks[0] = head
	}
	if o.DiacriticInsensitive || o.Nonliteral {
		if d, ok := unicodeprop.Default.Decompose(head); ok {
			marks = append(append([]rune{}, d...), marks[1:]...)
			head = marks[0]
		}
	}
	if o.DiacriticInsensitive {
		marks = marks[:1]
	}
	if o.CaseInsensitive {
		for i, r := range marks {
			marks[i] = foldCaseTurkic(r, locale.Current)
		}
		head = marks[0]
	}
	_ = head

	tail := marks[1:]
	if len(tail) > 1 {
		unicodeprop.PrioritySortCombiningMarks(unicodeprop.Default, tail)
	}

	out := make([]rune, 0, len(marks))
	out = append(out, marks[0])
	out = append(out, tail...)
	return out, consumed
}

// foldCaseTurkic applies locale-sensitive case folding: Turkic locales
// fold dotted/dotless I without the usual Latin-I<->i mapping.
func foldCaseTurkic(r rune, l locale.Locale) rune {
	if l.IsTurkic() {
		switch r {
		case 'I':
			return 'ı'
		case 'İ':
			return 'i'
		}
	}
	if unicodeprop.Default.Uppercase(r) {
		return toLowerRune(r)
	}
	return r
}
