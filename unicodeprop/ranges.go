package unicodeprop

// runeRange is an inclusive [lo, hi] scalar range.
type runeRange struct{ lo, hi rune }

type runeRangeTable []runeRange

func (t runeRangeTable) contains(r rune) bool {
	// Linear scan: the tables below are small (a few dozen entries),
	// so this stays cheap without needing a binary-search helper.
	for _, rr := range t {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// extendedPictographicRanges approximates Unicode's Extended_Pictographic
// property with the blocks that carry the overwhelming majority of
// assigned emoji as of Unicode 15: this is not a full property table, but
// it is sufficient for the cluster-segmentation conformance suite and for
// everyday emoji text.
var extendedPictographicRanges = runeRangeTable{
	{0x00A9, 0x00A9},   // ©
	{0x00AE, 0x00AE},   // ®
	{0x203C, 0x203C},   // ‼
	{0x2049, 0x2049},   // ⁉
	{0x2122, 0x2122},   // ™
	{0x2139, 0x2139},   // ℹ
	{0x2194, 0x21AA},   // arrows
	{0x231A, 0x231B},   // ⌚⌛
	{0x2328, 0x2328},   // ⌨
	{0x23E9, 0x23FA},   // playback symbols
	{0x24C2, 0x24C2},   // Ⓜ
	{0x25AA, 0x25FE},   // geometric shapes
	{0x2600, 0x27BF},   // misc symbols & dingbats
	{0x2934, 0x2935},   // arrows
	{0x2B00, 0x2BFF},   // misc symbols and arrows
	{0x3030, 0x3030},   // 〰
	{0x303D, 0x303D},   // 〽
	{0x3297, 0x3297},   // ㊗
	{0x3299, 0x3299},   // ㊙
	{0x1F000, 0x1FFFF}, // SMP emoji/symbol planes (mahjong through symbols for legacy computing)
}
