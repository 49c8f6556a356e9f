package corestr

import (
	"testing"

	"github.com/axiomhq/corestr/locale"
)

func TestCompareDiacriticInsensitiveCafe(t *testing.T) {
	a := FromCString("café")
	b := FromCString("café")
	if got := Compare(a, b, CompareOptions{DiacriticInsensitive: true}, locale.Current); got != 0 {
		t.Fatalf("Compare(café, cafe+combining-acute, diacriticInsensitive) = %d, want 0", got)
	}
}

func TestCompareWidthCaseInsensitiveDoesNotFoldLigature(t *testing.T) {
	a := FromCString("Encyclopædia")
	b := FromCString("encyclopaedia")
	o := CompareOptions{CaseInsensitive: true, WidthInsensitive: true}
	if got := Compare(a, b, o, locale.Current); got == 0 {
		t.Fatalf("Compare(Encyclopædia, encyclopaedia, caseInsensitive+widthInsensitive) = 0, want nonzero (æ != ae)")
	}
}

func TestCompareCaseInsensitiveGermanSharpS(t *testing.T) {
	a := FromCString("STRASSE")
	b := FromCString("straße")
	if got := Compare(a, b, CompareOptions{CaseInsensitive: true}, locale.Current); got != 0 {
		t.Fatalf("Compare(STRASSE, straße, caseInsensitive) = %d, want 0", got)
	}
}

func TestCompareNumericOrdersByMagnitude(t *testing.T) {
	a := FromCString("File 9.txt")
	b := FromCString("File 10.txt")
	if got := Compare(a, b, CompareOptions{Numeric: true}, locale.Current); got >= 0 {
		t.Fatalf("Compare(File 9.txt, File 10.txt, numeric) = %d, want < 0", got)
	}
}

func TestCompareCaseInsensitiveIgnoresEmbeddedNUL(t *testing.T) {
	a := FromCString("abc\x00def")
	b := FromCString("ABC\x00DEF")
	if got := Compare(a, b, CompareOptions{CaseInsensitive: true}, locale.Current); got != 0 {
		t.Fatalf("Compare with embedded NUL under caseInsensitive = %d, want 0", got)
	}
}

func TestCompareEqualStringsAreEqual(t *testing.T) {
	a := FromCString("hello")
	b := FromCString("hello")
	if got := Compare(a, b, CompareOptions{}, locale.Current); got != 0 {
		t.Fatalf("Compare(hello, hello) = %d, want 0", got)
	}
}

func TestCompareOrdering(t *testing.T) {
	a := FromCString("abc")
	b := FromCString("abd")
	if got := Compare(a, b, CompareOptions{}, locale.Current); got >= 0 {
		t.Fatalf("Compare(abc, abd) = %d, want < 0", got)
	}
}
