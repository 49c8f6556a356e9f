package corestr

import "github.com/axiomhq/corestr/encoding"

// Hash computes a representation-independent hash of s's contents: 8-bit
// and UTF-16 strings with the same abstract character sequence always
// produce the same value.
//
// The actual length seeds the hash. For length <= 96, every code unit is
// folded in; for longer strings, only three 32-unit windows are folded
// (the first 32, the middle 32, and the last 32), keeping the cost
// bounded for very long strings while still depending on their full
// extent.
func (s *String) Hash() uint64 {
	units := s.hashUnits()
	l := len(units)

	var h uint64 = uint64(l)
	fold := func(i int) { h = 257*h + uint64(units[i]) }

	if l <= 96 {
		for i := 0; i < l; i++ {
			fold(i)
		}
	} else {
		for i := 0; i < 32; i++ {
			fold(i)
		}
		mid := l / 2
		for i := mid - 16; i < mid+16; i++ {
			fold(i)
		}
		for i := l - 32; i < l; i++ {
			fold(i)
		}
	}

	return h + (h << (uint(l) & 31))
}

// hashUnits widens 8-bit storage through the process's single-byte
// UTF-16 table before folding, so ASCII content hashes identically
// whether stored as bytes or code units.
func (s *String) hashUnits() []uint16 {
	if s.hdr.unicode {
		return s.units
	}
	table := encoding.ASCII.SingleByteToUTF16Table()
	units := make([]uint16, len(s.bytes))
	for i, b := range s.bytes {
		units[i] = table[b]
	}
	return units
}
