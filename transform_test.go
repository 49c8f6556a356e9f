package corestr

import "testing"

func TestLowercaseUppercase(t *testing.T) {
	s := FromCString("Hello World")
	if got := string(s.Lowercase().Runes()); got != "hello world" {
		t.Fatalf("Lowercase() = %q, want %q", got, "hello world")
	}
	if got := string(s.Uppercase().Runes()); got != "HELLO WORLD" {
		t.Fatalf("Uppercase() = %q, want %q", got, "HELLO WORLD")
	}
}

func TestCapitalize(t *testing.T) {
	s := FromCString("the QUICK brown FOX")
	if got := string(s.Capitalize().Runes()); got != "The Quick Brown Fox" {
		t.Fatalf("Capitalize() = %q, want %q", got, "The Quick Brown Fox")
	}
}

func TestNormalizeFormDDecomposesThenFormCRecomposes(t *testing.T) {
	precomposed := FromCString(string([]rune{'e', 0x0301})) // decomposed é
	c := precomposed.Normalize(FormC)
	if got := c.Runes(); len(got) != 1 || got[0] != 'é' {
		t.Fatalf("Normalize(FormC) = %q, want single rune é", string(got))
	}
	d := c.Normalize(FormD)
	if got := d.Runes(); len(got) != 2 {
		t.Fatalf("Normalize(FormD) = %q, want 2 runes (base + combining mark)", string(got))
	}
}

func TestWidthFoldNormalizesFullwidthDigit(t *testing.T) {
	fullwidth := FromCString(string(rune(0xFF11))) // fullwidth "1"
	folded := fullwidth.Fold(CompareOptions{WidthInsensitive: true})
	if got := string(folded.Runes()); got != "1" {
		t.Fatalf("Fold(widthInsensitive) on fullwidth 1 = %q, want %q", got, "1")
	}
}
