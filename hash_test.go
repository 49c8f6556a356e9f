package corestr

import "testing"

func TestHashEqualStringsHashEqual(t *testing.T) {
	a := FromCString("the quick brown fox")
	b := FromCString("the quick brown fox")
	if a.Hash() != b.Hash() {
		t.Fatalf("Hash of equal strings differ: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestHashDifferentStringsLikelyDiffer(t *testing.T) {
	a := FromCString("the quick brown fox")
	b := FromCString("the quick brown dog")
	if a.Hash() == b.Hash() {
		t.Fatalf("Hash collided for distinct short strings (not impossible, but suspicious): %d", a.Hash())
	}
}

func TestHashAgreesAcross8BitAndUnicodeRepresentation(t *testing.T) {
	// Both of these are pure ASCII, so the 8-bit constructor and an
	// explicit UTF-16 constructor must hash identically.
	eightBit := FromCString("hash me")
	units := make([]uint16, 0, len("hash me"))
	for _, r := range "hash me" {
		units = append(units, uint16(r))
	}
	unicodeForm := FromUTF16(units)
	if eightBit.Hash() != unicodeForm.Hash() {
		t.Fatalf("Hash differs between 8-bit and UTF-16 representations of the same ASCII text: %d vs %d", eightBit.Hash(), unicodeForm.Hash())
	}
}

func TestHashLongStringUsesWindowedFold(t *testing.T) {
	long := make([]rune, 200)
	for i := range long {
		long[i] = rune('a' + i%26)
	}
	s := FromCString(string(long))
	if s.Hash() == 0 {
		t.Fatalf("Hash of a long string was zero")
	}
}
