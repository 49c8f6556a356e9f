package corestr

import "testing"

func TestAppendGrowsCapacity(t *testing.T) {
	s := NewMutable(0)
	for i := 0; i < 100; i++ {
		if err := s.AppendCString("x"); err != nil {
			t.Fatalf("AppendCString error at i=%d: %v", i, err)
		}
	}
	if s.Length() != 100 {
		t.Fatalf("Length() = %d, want 100", s.Length())
	}
}

func TestWidenToUnicodePreservesContent(t *testing.T) {
	s := NewMutableCopy(FromCString("abc"), 0)
	if s.IsUnicode() {
		t.Fatalf("IsUnicode() = true before widening, want false")
	}
	if err := s.AppendCString("ę"); err != nil {
		t.Fatalf("AppendCString error: %v", err)
	}
	if !s.IsUnicode() {
		t.Fatalf("IsUnicode() = false after appending a non-Latin1 scalar, want true")
	}
	if got := string(s.Runes()); got != "abcę" {
		t.Fatalf("contents after widening = %q, want %q", got, "abcę")
	}
}
