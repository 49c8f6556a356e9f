package corestr

import "github.com/axiomhq/corestr/alloc"

// changeSize grows or shrinks s's backing buffer to hold newCharLen
// characters, widening 8-bit storage to UTF-16 first if needsWidening
// reports a scalar outside the eight-bit range. wantExtra hints the growth policy
// to over-allocate for an anticipated run of further appends.
func (s *String) changeSize(newCharLen int, needsWidening bool, wantExtra bool) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	if needsWidening && !s.hdr.unicode {
		s.widenToUnicode()
	}

	charSize := 1
	if s.hdr.unicode {
		charSize = 2
	}

	a := s.contentsAllocator
	if a == nil {
		a = alloc.Default
	}

	newCap, ok := alloc.NewCapacity(newCharLen*charSize, s.capacity, wantExtra, charSize, a, s.desiredCapacity, s.isFixedCapacity)
	if !ok {
		return ErrOutOfMemory
	}

	if newCap > s.capacity {
		if s.hdr.unicode {
			grown := make([]uint16, newCap/2)
			copy(grown, s.units)
			s.units = grown
		} else {
			grown := make([]byte, newCap)
			copy(grown, s.bytes)
			s.bytes = grown
		}
		s.capacity = newCap
	}
	return nil
}

// widenToUnicode promotes s's storage from 8-bit bytes to UTF-16 code
// units in place. This promotion is one-way: a mutable string never
// demotes back to 8-bit even if later edits remove every non-Latin-1
// character.
func (s *String) widenToUnicode() {
	units := make([]uint16, len(s.bytes), max(len(s.bytes), s.capacity))
	for i, b := range s.bytes {
		units[i] = uint16(b)
	}
	s.units = units
	s.bytes = nil
	s.hdr.unicode = true
	s.capacity *= 2
}

// changeSizeMultiple rearranges the backing buffer to replace the
// characters in deleteRange with insertLen new characters, shifting the
// tail in place when there is room and reallocating via changeSize
// otherwise.
func (s *String) changeSizeMultiple(deleteRange Range, insertLen int) error {
	delta := insertLen - deleteRange.Length
	newLen := s.charLen + delta
	if err := s.changeSize(newLen, false, delta > 0); err != nil {
		return err
	}

	if s.hdr.unicode {
		tailStart := deleteRange.End()
		tail := append([]uint16(nil), s.units[tailStart:s.charLen]...)
		s.units = s.units[:newLen]
		copy(s.units[deleteRange.Location+insertLen:], tail)
	} else {
		tailStart := deleteRange.End()
		tail := append([]byte(nil), s.bytes[tailStart:s.charLen]...)
		s.bytes = s.bytes[:newLen]
		copy(s.bytes[deleteRange.Location+insertLen:], tail)
	}
	s.charLen = newLen
	return nil
}
