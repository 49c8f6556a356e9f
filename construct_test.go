package corestr

import (
	"testing"

	"github.com/axiomhq/corestr/encoding"
)

func TestFromCStringRoundTripsASCII(t *testing.T) {
	s := FromCString("hello")
	if s.Length() != 5 {
		t.Fatalf("Length() = %d, want 5", s.Length())
	}
	if s.IsUnicode() {
		t.Fatalf("IsUnicode() = true for pure ASCII content, want false")
	}
	if got := string(s.Runes()); got != "hello" {
		t.Fatalf("Runes() = %q, want %q", got, "hello")
	}
}

func TestFromCStringWidensForNonLatin1(t *testing.T) {
	s := FromCString("hęllo")
	if !s.IsUnicode() {
		t.Fatalf("IsUnicode() = false for content containing ę, want true")
	}
}

func TestFromUTF16(t *testing.T) {
	units := []uint16{'h', 'i'}
	s := FromUTF16(units)
	if got := string(s.Runes()); got != "hi" {
		t.Fatalf("Runes() = %q, want %q", got, "hi")
	}
}

func TestFromBytesASCII(t *testing.T) {
	s, err := FromBytes([]byte("plain"), encoding.ASCII)
	if err != nil {
		t.Fatalf("FromBytes error: %v", err)
	}
	if got := string(s.Runes()); got != "plain" {
		t.Fatalf("Runes() = %q, want %q", got, "plain")
	}
}

func TestSubstring(t *testing.T) {
	s := FromCString("hello world")
	sub := s.Substring(Range{6, 5})
	if got := string(sub.Runes()); got != "world" {
		t.Fatalf("Substring({6,5}) = %q, want %q", got, "world")
	}
}

func TestSubstringPanicsOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Substring did not panic on an out-of-bounds range")
		}
	}()
	s := FromCString("hi")
	s.Substring(Range{0, 10})
}

func TestCopyIsIndependent(t *testing.T) {
	s := NewMutableCopy(FromCString("hello"), 0)
	c := s.Copy()
	if err := s.Append(FromCString("!")); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if got := string(c.Runes()); got != "hello" {
		t.Fatalf("Copy() observed the mutation: %q", got)
	}
}

func TestNewMutableIsMutableAndEmpty(t *testing.T) {
	s := NewMutable(16)
	if !s.IsMutable() {
		t.Fatalf("IsMutable() = false for NewMutable result")
	}
	if !s.IsEmpty() {
		t.Fatalf("IsEmpty() = false for a freshly constructed mutable string")
	}
}
