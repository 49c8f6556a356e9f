package unicodeprop

import "sort"

// PrioritySortCombiningMarks stably reorders a run of combining marks (all
// assumed non-starters, i.e. CombiningClass(r) != 0) into canonical order:
// ascending combining class, ties broken by original position. Used by
// grapheme-cluster folding as well as NFC/NFD canonical ordering.
func PrioritySortCombiningMarks(o Oracle, marks []rune) {
	type tagged struct {
		r   rune
		ccc int
		idx int
	}
	tmp := make([]tagged, len(marks))
	for i, r := range marks {
		tmp[i] = tagged{r: r, ccc: o.CombiningClass(r), idx: i}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		return tmp[i].ccc < tmp[j].ccc
	})
	for i, t := range tmp {
		marks[i] = t.r
	}
}
