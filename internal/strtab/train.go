package strtab

import "sort"

// TrainStrings builds a SymbolTable from a representative sample of
// values, learning the substrings (2-8 bytes) that recur often enough
// across the sample to be worth a single-byte code.
func TrainStrings(inputs []string) *SymbolTable {
	byteInputs := make([][]byte, len(inputs))
	for i, s := range inputs {
		byteInputs[i] = []byte(s)
	}
	return TrainBytes(byteInputs)
}

// TrainBytes is TrainStrings for already-decoded byte slices.
func TrainBytes(inputs [][]byte) *SymbolTable {
	counts := make(map[string]int)
	for _, in := range inputs {
		for length := minSymbolLen; length <= maxSymbolLen; length++ {
			if length > len(in) {
				break
			}
			for start := 0; start+length <= len(in); start++ {
				counts[string(in[start:start+length])]++
			}
		}
	}

	type candidate struct {
		text  string
		score int
	}
	candidates := make([]candidate, 0, len(counts))
	for text, count := range counts {
		if count < 2 {
			continue
		}
		candidates = append(candidates, candidate{text: text, score: count * (len(text) - 1)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].text < candidates[j].text
	})

	if len(candidates) > maxSymbols {
		candidates = candidates[:maxSymbols]
	}
	symbols := make([][]byte, len(candidates))
	for i, c := range candidates {
		symbols[i] = []byte(c.text)
	}
	return newSymbolTable(symbols)
}
