package corestr

import (
	"sync/atomic"

	"github.com/axiomhq/corestr/alloc"
	"github.com/axiomhq/corestr/encoding"
	"github.com/axiomhq/corestr/locale"
)

// String is the central entity of this package: a variable-representation
// string object. It is either 8-bit (bytes, one per character, in the
// process eight-bit encoding) or Unicode (UTF-16 code units); either
// immutable or mutable; and backed by inline, heap, or externally-owned
// storage.
//
// corestr assumes Go's GC for actual memory reclamation, but Retain/
// Release are kept as real operations (not no-ops) so constant-pool
// identity and the isConstant short-circuit on release are observable,
// for callers bridging to a foreign object-system dispatcher.
type String struct {
	hdr header

	charLen int // character count

	bytes []byte   // 8-bit storage; valid iff !hdr.unicode
	units []uint16 // UTF-16 storage; valid iff hdr.unicode

	capacity                   int // bytes allocated for the active buffer (mutable only)
	desiredCapacity            int // client-requested minimum capacity, in characters
	isFixedCapacity            bool
	capacityProvidedExternally bool

	contentsAllocator   alloc.Allocator
	contentsDeallocator func([]byte)

	refs int32
}

// Length returns the character count, excluding any length byte or
// trailing NUL.
func (s *String) Length() int { return s.length() }

// IsUnicode reports whether s stores UTF-16 code units rather than 8-bit
// characters.
func (s *String) IsUnicode() bool { return s.isUnicode() }

// IsMutable reports whether s may be mutated in place.
func (s *String) IsMutable() bool { return s.isMutable() }

// IsEmpty reports whether s has zero characters.
func (s *String) IsEmpty() bool { return s.charLen == 0 }

// Retain increments s's reference count and returns s. Constant strings
// (the empty singleton, interned C-string literals) are still counted
// but are never actually deallocated — see Release.
func (s *String) Retain() *String {
	atomic.AddInt32(&s.refs, 1)
	return s
}

// Release decrements s's reference count. It is a bookkeeping operation
// only: corestr relies on the Go garbage collector for actual
// deallocation, but constant strings never reach a zero count through
// Release.
func (s *String) Release() {
	if s.isConstant() {
		return
	}
	atomic.AddInt32(&s.refs, -1)
}

// RefCount reports the current reference count, chiefly for tests and
// debugging the constant-pool invariant.
func (s *String) RefCount() int32 { return atomic.LoadInt32(&s.refs) }

// CharacterAt returns the UTF-16 code unit at idx. It panics on an
// out-of-bounds index; callers who need a checked variant should use
// CheckedCharacterAt.
func (s *String) CharacterAt(idx int) uint16 {
	u, err := s.CheckedCharacterAt(idx)
	if err != nil {
		panic(err)
	}
	return u
}

// CheckedCharacterAt never panics, returning ErrBounds instead.
func (s *String) CheckedCharacterAt(idx int) (uint16, error) {
	if idx < 0 || idx >= s.charLen {
		return 0, wrapf(ErrBounds, "CharacterAt(%d) len=%d", idx, s.charLen)
	}
	if s.hdr.unicode {
		return s.units[idx], nil
	}
	return uint16(s.bytes[idx]), nil
}

// CharactersInRange fills dst (which must have length >= r.Length) with
// the UTF-16 code units in r.
func (s *String) CharactersInRange(r Range, dst []uint16) error {
	if r.Location < 0 || r.Length < 0 || r.End() > s.charLen {
		return wrapf(ErrBounds, "CharactersInRange(%v) len=%d", r, s.charLen)
	}
	if len(dst) < r.Length {
		return wrapf(ErrNilArg, "CharactersInRange: dst too small (%d < %d)", len(dst), r.Length)
	}
	if s.hdr.unicode {
		copy(dst, s.units[r.Location:r.End()])
		return nil
	}
	for i := 0; i < r.Length; i++ {
		dst[i] = uint16(s.bytes[r.Location+i])
	}
	return nil
}

// Runes returns the string's content as a []rune, pairing surrogates.
func (s *String) Runes() []rune {
	if !s.hdr.unicode {
		out := make([]rune, s.charLen)
		for i, b := range s.bytes {
			out[i] = rune(b)
		}
		return out
	}
	return decodeUTF16ToRunes(s.units)
}

// FastestCStringPointer returns a direct view of the backing bytes when s
// is 8-bit and those bytes are valid in e as they stand: e is the
// eight-bit encoding (Latin-1), or e is another ASCII superset and every
// byte is ASCII. It returns (nil, false) otherwise.
func (s *String) FastestCStringPointer(e encoding.Encoding) ([]byte, bool) {
	if s.hdr.unicode || !e.IsSupersetOfASCII() {
		return nil, false
	}
	if e != encoding.Latin1 {
		for _, b := range s.bytes {
			if b >= 0x80 {
				return nil, false
			}
		}
	}
	return s.bytes, true
}

// FastestCharactersPointer returns a direct view of the backing UTF-16
// units when s is Unicode, or (nil, false) otherwise.
func (s *String) FastestCharactersPointer() ([]uint16, bool) {
	if !s.hdr.unicode {
		return nil, false
	}
	return s.units, true
}

// CopyToCString copies s's contents as a NUL-terminated byte string in e.
// Returns ErrDecodeFailure if s cannot be represented in e without loss.
func (s *String) CopyToCString(e encoding.Encoding) ([]byte, error) {
	raw, err := s.externalRepresentationBytes(e, false)
	if err != nil {
		return nil, err
	}
	return append(raw, 0), nil
}

// CopyToPascalString copies s's contents as a Pascal (length-prefixed)
// string in e: a single length byte followed by up to 255 bytes. Returns
// ErrOverflow if s's byte length in e exceeds 255.
func (s *String) CopyToPascalString(e encoding.Encoding) ([]byte, error) {
	raw, err := s.externalRepresentationBytes(e, false)
	if err != nil {
		return nil, err
	}
	if len(raw) > 255 {
		return nil, wrapf(ErrOverflow, "CopyToPascalString: %d bytes exceeds Pascal limit", len(raw))
	}
	out := make([]byte, 0, len(raw)+1)
	out = append(out, byte(len(raw)))
	return append(out, raw...), nil
}

// HasPrefix reports whether s begins with prefix under the given options
// and locale.
func (s *String) HasPrefix(prefix *String, o CompareOptions, l locale.Locale) bool {
	if prefix.charLen == 0 {
		return true
	}
	if prefix.charLen > s.charLen {
		return false
	}
	oAnchored := o
	oAnchored.Anchored = true
	_, found := FindWithOptions(s, prefix, Range{0, s.charLen}, oAnchored, l)
	return found
}

// HasSuffix reports whether s ends with suffix under the given options
// and locale.
func (s *String) HasSuffix(suffix *String, o CompareOptions, l locale.Locale) bool {
	if suffix.charLen == 0 {
		return true
	}
	if suffix.charLen > s.charLen {
		return false
	}
	oAnchored := o
	oAnchored.Anchored = true
	oAnchored.Backwards = true
	_, found := FindWithOptions(s, suffix, Range{0, s.charLen}, oAnchored, l)
	return found
}

func decodeUTF16ToRunes(units []uint16) []rune {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) {
			lo := units[i+1]
			if lo >= 0xDC00 && lo <= 0xDFFF {
				r := (rune(u)-0xD800)<<10 + (rune(lo) - 0xDC00) + 0x10000
				out = append(out, r)
				i++
				continue
			}
		}
		out = append(out, rune(u))
	}
	return out
}
