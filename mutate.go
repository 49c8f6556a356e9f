package corestr

import (
	"unicode"
	"unicode/utf16"

	"github.com/axiomhq/corestr/locale"
)

// appendRunes is the common tail of every append/insert operation: widen
// if necessary, grow, then copy runes in.
func (s *String) appendRunes(runes []rune) {
	s.insertRunes(s.charLen, runes)
}

func (s *String) insertRunes(at int, runes []rune) {
	needsWidening := !s.hdr.unicode && !fitsEightBit(runes)

	if needsWidening {
		s.widenToUnicode()
	}
	if s.hdr.unicode {
		units := utf16.Encode(runes)
		_ = s.changeSizeMultiple(Range{at, 0}, len(units))
		copy(s.units[at:], units)
		return
	}
	b := make([]byte, len(runes))
	for i, r := range runes {
		b[i] = byte(r)
	}
	_ = s.changeSizeMultiple(Range{at, 0}, len(b))
	copy(s.bytes[at:], b)
}

// Append mutates s in place, appending other's contents. Returns
// ErrNotMutable if s is immutable.
func (s *String) Append(other *String) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	s.appendRunes(other.Runes())
	return nil
}

// AppendCharacters appends raw UTF-16 code units, widening s to Unicode
// storage if it is not already.
func (s *String) AppendCharacters(units []uint16) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	s.appendRunes(utf16.Decode(units))
	return nil
}

// AppendCString appends a Go string (UTF-8) to s.
func (s *String) AppendCString(text string) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	s.appendRunes([]rune(text))
	return nil
}

// Insert mutates s in place, inserting other's contents at character
// index at.
func (s *String) Insert(at int, other *String) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	if at < 0 || at > s.charLen {
		return wrapf(ErrBounds, "Insert(%d) len=%d", at, s.charLen)
	}
	s.insertRunes(at, other.Runes())
	return nil
}

// Delete removes r from s in place.
func (s *String) Delete(r Range) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	if r.Location < 0 || r.Length < 0 || r.End() > s.charLen {
		return wrapf(ErrBounds, "Delete(%v) len=%d", r, s.charLen)
	}
	return s.changeSizeMultiple(r, 0)
}

// Replace replaces r in s with replacement's contents, in place.
func (s *String) Replace(r Range, replacement *String) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	if r.Location < 0 || r.Length < 0 || r.End() > s.charLen {
		return wrapf(ErrBounds, "Replace(%v) len=%d", r, s.charLen)
	}
	runes := replacement.Runes()
	needsWidening := !s.hdr.unicode && !fitsEightBit(runes)
	if needsWidening {
		s.widenToUnicode()
	}
	if s.hdr.unicode {
		units := utf16.Encode(runes)
		if err := s.changeSizeMultiple(r, len(units)); err != nil {
			return err
		}
		copy(s.units[r.Location:], units)
		return nil
	}
	b := make([]byte, len(runes))
	for i, rr := range runes {
		b[i] = byte(rr)
	}
	if err := s.changeSizeMultiple(r, len(b)); err != nil {
		return err
	}
	copy(s.bytes[r.Location:], b)
	return nil
}

// ReplaceAll replaces s's entire contents with replacement's, in place.
func (s *String) ReplaceAll(replacement *String) error {
	return s.Replace(Range{0, s.charLen}, replacement)
}

// FindAndReplace replaces every non-overlapping occurrence of target in
// searchRange with replacement, scanning left to right, and returns the
// number of replacements made.
func (s *String) FindAndReplace(target, replacement *String, searchRange Range, o CompareOptions, l locale.Locale) (int, error) {
	if !s.isMutable() {
		return 0, ErrNotMutable
	}
	count := 0
	pos := searchRange.Location
	end := searchRange.End()
	for pos < end {
		r, ok := FindWithOptions(s, target, Range{pos, end - pos}, o, l)
		if !ok {
			break
		}
		if err := s.Replace(r, replacement); err != nil {
			return count, err
		}
		delta := replacement.charLen - r.Length
		end += delta
		pos = r.Location + replacement.charLen
		count++
	}
	return count, nil
}

// Pad grows or truncates s to exactly length characters, padding with
// repetitions of padString starting at padStartIndex when growing.
func (s *String) Pad(length int, padString *String, padStartIndex int) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	if length < 0 {
		return wrapf(ErrBounds, "Pad(%d): negative length", length)
	}
	if length <= s.charLen {
		return s.Delete(Range{length, s.charLen - length})
	}
	need := length - s.charLen
	padRunes := padString.Runes()
	if len(padRunes) == 0 {
		return wrapf(ErrNilArg, "Pad: empty pad string")
	}
	out := make([]rune, need)
	for i := 0; i < need; i++ {
		out[i] = padRunes[(padStartIndex+i)%len(padRunes)]
	}
	s.appendRunes(out)
	return nil
}

// Trim removes leading and trailing characters that appear in cutset from
// s, in place.
func (s *String) Trim(cutset *String) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	set := runeSet(cutset.Runes())
	return s.trimFunc(set)
}

// TrimWhitespace removes leading and trailing whitespace and newline
// characters from s, in place.
func (s *String) TrimWhitespace() error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	return s.trimFunc(func(r rune) bool { return unicode.IsSpace(r) })
}

func (s *String) trimFunc(in func(rune) bool) error {
	runes := s.Runes()
	start := 0
	for start < len(runes) && in(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && in(runes[end-1]) {
		end--
	}
	if start == 0 && end == len(runes) {
		return nil
	}
	return s.ReplaceAll(newImmutable(runes[start:end]))
}

func runeSet(runes []rune) func(rune) bool {
	m := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		m[r] = struct{}{}
	}
	return func(r rune) bool { _, ok := m[r]; return ok }
}

// SetExternalCharactersNoCopy replaces s's entire backing storage with a
// caller-owned UTF-16 buffer without copying, releasing any previously
// installed deallocator callback against the old buffer first.
func (s *String) SetExternalCharactersNoCopy(units []uint16, deallocator func([]byte)) error {
	if !s.isMutable() {
		return ErrNotMutable
	}
	if s.contentsDeallocator != nil && s.hdr.unicode {
		releaseUnits(s.contentsDeallocator, s.units)
	} else if s.contentsDeallocator != nil {
		releaseBytes(s.contentsDeallocator, s.bytes)
	}
	s.units = units
	s.bytes = nil
	s.charLen = len(units)
	s.capacity = len(units) * 2
	s.hdr.unicode = true
	s.hdr.kind = storageExternalMutable
	s.capacityProvidedExternally = true
	s.contentsDeallocator = deallocator
	return nil
}

func releaseUnits(dealloc func([]byte), units []uint16) {
	b := make([]byte, len(units)*2)
	for i, u := range units {
		b[2*i] = byte(u)
		b[2*i+1] = byte(u >> 8)
	}
	dealloc(b)
}

func releaseBytes(dealloc func([]byte), b []byte) { dealloc(b) }
