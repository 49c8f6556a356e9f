package strtab

import (
	"bytes"
	"encoding/binary"
)

const (
	minSymbolLen = 2
	maxSymbolLen = 8
	maxSymbols   = 255
)

// SymbolTable is a trained dictionary of repeated byte substrings
// ("symbols"), each addressable by a single-byte code. EncodeAll rewrites
// its input as a stream of literal runs and symbol references; DecodeAll
// reverses the process.
//
// The wire format is a sequence of tokens:
//
//	0x00 <uvarint length> <raw bytes>   — a literal run
//	0x01..0xFF                          — symbol reference (code-1)
type SymbolTable struct {
	symbols []symbolEntry
	byFirst map[byte][]int // indices into symbols, sorted by descending length
}

type symbolEntry struct {
	bytes []byte
}

func newSymbolTable(symbols [][]byte) *SymbolTable {
	t := &SymbolTable{byFirst: make(map[byte][]int)}
	for _, s := range symbols {
		if len(s) == 0 {
			continue
		}
		idx := len(t.symbols)
		t.symbols = append(t.symbols, symbolEntry{bytes: s})
		t.byFirst[s[0]] = append(t.byFirst[s[0]], idx)
	}
	for first, idxs := range t.byFirst {
		sortByDescendingLength(t.symbols, idxs)
		t.byFirst[first] = idxs
	}
	return t
}

func sortByDescendingLength(symbols []symbolEntry, idxs []int) {
	for i := 1; i < len(idxs); i++ {
		for j := i; j > 0 && len(symbols[idxs[j-1]].bytes) < len(symbols[idxs[j]].bytes); j-- {
			idxs[j-1], idxs[j] = idxs[j], idxs[j-1]
		}
	}
}

// longestMatch returns the code and length of the longest trained symbol
// that prefixes s, if any.
func (t *SymbolTable) longestMatch(s []byte) (code, length int, ok bool) {
	idxs, found := t.byFirst[s[0]]
	if !found {
		return 0, 0, false
	}
	for _, idx := range idxs {
		sym := t.symbols[idx].bytes
		if len(sym) <= len(s) && bytes.Equal(sym, s[:len(sym)]) {
			return idx, len(sym), true
		}
	}
	return 0, 0, false
}

// EncodeAll rewrites input as a stream of literal runs and symbol
// references, returning the compacted bytes.
func (t *SymbolTable) EncodeAll(input []byte) []byte {
	out := make([]byte, 0, len(input))
	litStart := -1

	flushLiteral := func(end int) {
		if litStart < 0 {
			return
		}
		run := input[litStart:end]
		out = append(out, 0x00)
		var lenBuf [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(lenBuf[:], uint64(len(run)))
		out = append(out, lenBuf[:n]...)
		out = append(out, run...)
		litStart = -1
	}

	i := 0
	for i < len(input) {
		if code, length, ok := t.longestMatch(input[i:]); ok {
			flushLiteral(i)
			out = append(out, byte(code+1))
			i += length
			continue
		}
		if litStart < 0 {
			litStart = i
		}
		i++
	}
	flushLiteral(len(input))
	return out
}

// DecodeAll reverses EncodeAll, returning the original bytes.
func (t *SymbolTable) DecodeAll(src []byte) []byte {
	out := make([]byte, 0, len(src)*2)
	i := 0
	for i < len(src) {
		tag := src[i]
		i++
		if tag == 0x00 {
			length, n := binary.Uvarint(src[i:])
			i += n
			out = append(out, src[i:i+int(length)]...)
			i += int(length)
			continue
		}
		out = append(out, t.symbols[tag-1].bytes...)
	}
	return out
}

// Len reports how many symbols the table holds.
func (t *SymbolTable) Len() int { return len(t.symbols) }
