package corestr

import (
	"testing"

	"github.com/axiomhq/corestr/locale"
)

func TestFindWithOptionsBasic(t *testing.T) {
	s := FromCString("hello world")
	needle := FromCString("world")
	r, ok := FindWithOptions(s, needle, Range{0, s.Length()}, CompareOptions{}, locale.Current)
	if !ok || r.Location != 6 || r.Length != 5 {
		t.Fatalf("FindWithOptions(hello world, world) = {%d,%d},%v, want {6,5},true", r.Location, r.Length, ok)
	}
}

func TestFindWithOptionsCaseInsensitive(t *testing.T) {
	s := FromCString("Hello World")
	needle := FromCString("WORLD")
	r, ok := FindWithOptions(s, needle, Range{0, s.Length()}, CompareOptions{CaseInsensitive: true}, locale.Current)
	if !ok || r.Location != 6 {
		t.Fatalf("FindWithOptions case-insensitive = {%d,%d},%v, want location 6, true", r.Location, r.Length, ok)
	}
}

func TestFindWithOptionsAnchored(t *testing.T) {
	s := FromCString("hello world")
	needle := FromCString("world")
	_, ok := FindWithOptions(s, needle, Range{0, s.Length()}, CompareOptions{Anchored: true}, locale.Current)
	if ok {
		t.Fatalf("FindWithOptions(Anchored) unexpectedly matched a non-prefix needle")
	}
	needle2 := FromCString("hello")
	r, ok := FindWithOptions(s, needle2, Range{0, s.Length()}, CompareOptions{Anchored: true}, locale.Current)
	if !ok || r.Location != 0 {
		t.Fatalf("FindWithOptions(Anchored) on a true prefix = {%d,%d},%v, want location 0, true", r.Location, r.Length, ok)
	}
}

func TestFindWithOptionsNotFound(t *testing.T) {
	s := FromCString("hello world")
	needle := FromCString("xyz")
	_, ok := FindWithOptions(s, needle, Range{0, s.Length()}, CompareOptions{}, locale.Current)
	if ok {
		t.Fatalf("FindWithOptions found a needle that is not present")
	}
}

func TestHasPrefixAndHasSuffix(t *testing.T) {
	s := FromCString("hello world")
	if !s.HasPrefix(FromCString("hello"), CompareOptions{}, locale.Current) {
		t.Fatalf("HasPrefix(hello world, hello) = false, want true")
	}
	if !s.HasSuffix(FromCString("world"), CompareOptions{}, locale.Current) {
		t.Fatalf("HasSuffix(hello world, world) = false, want true")
	}
	if s.HasPrefix(FromCString("world"), CompareOptions{}, locale.Current) {
		t.Fatalf("HasPrefix(hello world, world) = true, want false")
	}
}
