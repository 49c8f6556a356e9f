package corestr

import "testing"

func TestGetLineBounds(t *testing.T) {
	s := FromCString("first\nsecond\nthird")
	r := s.GetLineBounds(8) // inside "second"
	if got := string(s.Substring(r).Runes()); got != "second" {
		t.Fatalf("GetLineBounds(8) selected %q, want %q", got, "second")
	}
}

func TestCreateArrayBySeparating(t *testing.T) {
	s := FromCString("a,b,,c")
	parts := CreateArrayBySeparating(s, FromCString(","))
	want := []string{"a", "b", "", "c"}
	if len(parts) != len(want) {
		t.Fatalf("CreateArrayBySeparating returned %d parts, want %d", len(parts), len(want))
	}
	for i, p := range parts {
		if got := string(p.Runes()); got != want[i] {
			t.Fatalf("part %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestCreateByCombining(t *testing.T) {
	parts := []*String{FromCString("a"), FromCString("b"), FromCString("c")}
	joined := CreateByCombining(parts, FromCString("-"))
	if got := string(joined.Runes()); got != "a-b-c" {
		t.Fatalf("CreateByCombining = %q, want %q", got, "a-b-c")
	}
}
