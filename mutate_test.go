package corestr

import (
	"testing"

	"github.com/axiomhq/corestr/locale"
)

func TestMutableAppendReplaceSequence(t *testing.T) {
	s := NewMutable(0)
	if err := s.Append(FromCString("α")); err != nil {
		t.Fatalf("Append(α) error: %v", err)
	}
	if err := s.Append(FromCString("β")); err != nil {
		t.Fatalf("Append(β) error: %v", err)
	}
	if err := s.Replace(Range{0, 1}, FromCString("γδ")); err != nil {
		t.Fatalf("Replace({0,1}, γδ) error: %v", err)
	}
	if s.Length() != 3 {
		t.Fatalf("Length() = %d, want 3", s.Length())
	}
	if !s.IsUnicode() {
		t.Fatalf("IsUnicode() = false, want true after appending non-Latin1 content")
	}
	if got := string(s.Runes()); got != "γδβ" {
		t.Fatalf("contents = %q, want %q", got, "γδβ")
	}
}

func TestInsertAndDelete(t *testing.T) {
	s := NewMutableCopy(FromCString("helloworld"), 0)
	if err := s.Insert(5, FromCString(" ")); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if got := string(s.Runes()); got != "hello world" {
		t.Fatalf("after insert = %q, want %q", got, "hello world")
	}
	if err := s.Delete(Range{5, 1}); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if got := string(s.Runes()); got != "helloworld" {
		t.Fatalf("after delete = %q, want %q", got, "helloworld")
	}
}

func TestTrimWhitespace(t *testing.T) {
	s := NewMutableCopy(FromCString("  padded  "), 0)
	if err := s.TrimWhitespace(); err != nil {
		t.Fatalf("TrimWhitespace error: %v", err)
	}
	if got := string(s.Runes()); got != "padded" {
		t.Fatalf("after TrimWhitespace = %q, want %q", got, "padded")
	}
}

func TestFindAndReplace(t *testing.T) {
	s := NewMutableCopy(FromCString("one two one"), 0)
	n, err := s.FindAndReplace(FromCString("one"), FromCString("1"), Range{0, s.Length()}, CompareOptions{}, locale.Current)
	if err != nil {
		t.Fatalf("FindAndReplace error: %v", err)
	}
	if n != 2 {
		t.Fatalf("FindAndReplace replaced %d occurrences, want 2", n)
	}
	if got := string(s.Runes()); got != "1 two 1" {
		t.Fatalf("after FindAndReplace = %q, want %q", got, "1 two 1")
	}
}
