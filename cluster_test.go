package corestr

import "testing"

func TestRangeOfCharacterClusterAtFamilyEmoji(t *testing.T) {
	// U+1F468 ZWJ U+1F469 ZWJ U+1F467, each astral codepoint a surrogate
	// pair: 2+1+2+1+2 = 8 UTF-16 units total.
	s := FromCString(string([]rune{0x1F468, 0x200D, 0x1F469, 0x200D, 0x1F467}))
	r := s.RangeOfCharacterClusterAt(0, ClusterGrapheme)
	if r.Location != 0 || r.Length != 8 {
		t.Fatalf("RangeOfCharacterClusterAt(0, grapheme) = {%d,%d}, want {0,8}", r.Location, r.Length)
	}
}

func TestRangeOfCharacterClusterAtSimpleASCII(t *testing.T) {
	s := FromCString("abc")
	r := s.RangeOfCharacterClusterAt(1, ClusterGrapheme)
	if r.Location != 1 || r.Length != 1 {
		t.Fatalf("RangeOfCharacterClusterAt(1, grapheme) on ascii = {%d,%d}, want {1,1}", r.Location, r.Length)
	}
}

func TestRangeOfComposedCharactersAtCombiningAcute(t *testing.T) {
	// "cafe" + U+0301 COMBINING ACUTE ACCENT, the decomposed spelling of
	// "café".
	s := FromCString(string([]rune{'c', 'a', 'f', 'e', 0x0301}))
	r := s.RangeOfComposedCharactersAt(3)
	if r.Location != 3 || r.Length != 2 {
		t.Fatalf("RangeOfComposedCharactersAt(3) on e+combining-acute = {%d,%d}, want {3,2}", r.Location, r.Length)
	}
}
