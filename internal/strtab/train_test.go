package strtab

import "testing"

func TestTrainBytesAgreesWithTrainStrings(t *testing.T) {
	inputs := []string{"hello world", "hello there", "hello friend"}
	byteInputs := make([][]byte, len(inputs))
	for i, s := range inputs {
		byteInputs[i] = []byte(s)
	}
	a := TrainStrings(inputs)
	b := TrainBytes(byteInputs)
	if a.Len() != b.Len() {
		t.Fatalf("TrainStrings produced %d symbols, TrainBytes produced %d", a.Len(), b.Len())
	}
}

func TestTrainCapsSymbolCountAtMax(t *testing.T) {
	inputs := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		// Each input repeats a unique two-character token twice so every
		// token clears the minimum-repetition bar and candidate count
		// comfortably exceeds maxSymbols.
		tok := string([]rune{rune('a' + i%26), rune('A' + i/26)})
		inputs = append(inputs, tok+tok)
	}
	tbl := TrainStrings(inputs)
	if tbl.Len() > maxSymbols {
		t.Fatalf("Len() = %d, want <= %d", tbl.Len(), maxSymbols)
	}
}

func TestTrainIgnoresSingletonSubstrings(t *testing.T) {
	tbl := TrainStrings([]string{"completely unique text with no repeats"})
	enc := tbl.EncodeAll([]byte("completely unique text with no repeats"))
	dec := tbl.DecodeAll(enc)
	if string(dec) != "completely unique text with no repeats" {
		t.Fatalf("round trip with no trained symbols failed: %q", string(dec))
	}
}
