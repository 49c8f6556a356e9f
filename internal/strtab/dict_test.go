package strtab

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tbl := TrainStrings([]string{
		"Cancel", "Cancelar", "Cancel action", "Cancel this action",
	})
	for _, s := range []string{"Cancel", "Cancelar", "Cancel this action", "unseen text", ""} {
		enc := tbl.EncodeAll([]byte(s))
		dec := tbl.DecodeAll(enc)
		if string(dec) != s {
			t.Fatalf("round trip of %q = %q", s, string(dec))
		}
	}
}

func TestEncodeCompactsRepeatedSubstrings(t *testing.T) {
	tbl := TrainStrings([]string{
		"the quick brown fox", "the quick brown dog", "the quick brown cat",
	})
	enc := tbl.EncodeAll([]byte("the quick brown fox"))
	if len(enc) >= len("the quick brown fox") {
		t.Fatalf("EncodeAll did not compact a repeated phrase: encoded len %d >= input len %d", len(enc), len("the quick brown fox"))
	}
}

func TestEmptyTableIsPassthrough(t *testing.T) {
	tbl := TrainStrings(nil)
	if tbl.Len() != 0 {
		t.Fatalf("Len() = %d for an untrained table, want 0", tbl.Len())
	}
	const s = "anything at all"
	dec := tbl.DecodeAll(tbl.EncodeAll([]byte(s)))
	if string(dec) != s {
		t.Fatalf("round trip through an empty table = %q, want %q", string(dec), s)
	}
}

func TestDecodeAllHandlesLiteralNULByte(t *testing.T) {
	tbl := TrainStrings([]string{"ab\x00cd", "ab\x00cd", "ab\x00ef"})
	s := "ab\x00cd"
	dec := tbl.DecodeAll(tbl.EncodeAll([]byte(s)))
	if string(dec) != s {
		t.Fatalf("round trip with embedded NUL = %q, want %q", string(dec), s)
	}
}
