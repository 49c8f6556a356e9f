package corestr

import (
	"testing"

	"github.com/axiomhq/corestr/encoding"
)

func TestExternalRepresentationRoundTripsUTF8(t *testing.T) {
	s := FromCString("héllo")
	raw, err := CreateExternalRepresentation(s, encoding.UTF8, false)
	if err != nil {
		t.Fatalf("CreateExternalRepresentation error: %v", err)
	}
	back, err := CreateFromExternalRepresentation(raw, encoding.UTF8)
	if err != nil {
		t.Fatalf("CreateFromExternalRepresentation error: %v", err)
	}
	if got := string(back.Runes()); got != "héllo" {
		t.Fatalf("round trip = %q, want %q", got, "héllo")
	}
}
