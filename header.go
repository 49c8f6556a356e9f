package corestr

// storageKind distinguishes the ownership/lifetime variants a string's
// backing storage can take.
type storageKind uint8

const (
	storageInline storageKind = iota
	storageHeapDefaultFree
	storageHeapNoFree
	storageHeapCustomFree
	storageExternalMutable
)

// header is the compact flag set carried by every String: mutable?,
// unicode?, has-length-byte?, has-null-byte?, inline?, plus the
// storage-kind sub-enum (five values) and the constant-pool bit. The
// accessor methods below wrap the common queries, but other files in this
// package also read and set s.hdr fields directly.
type header struct {
	mutable       bool
	unicode       bool
	hasLengthByte bool
	hasNullByte   bool
	inline        bool
	kind          storageKind
	constant      bool
}

// length returns the character count, excluding any length byte or
// trailing NUL.
func (s *String) length() int { return s.charLen }

// isUnicode reports whether the string's characters are UTF-16 code units
// (true) or single bytes in the process eight-bit encoding (false).
func (s *String) isUnicode() bool { return s.hdr.unicode }

// isMutable reports whether the string may be mutated in place.
func (s *String) isMutable() bool { return s.hdr.mutable }

// isConstant reports whether s is a retained singleton from the constant
// pool; deallocation short-circuits for constant strings.
func (s *String) isConstant() bool { return s.hdr.constant }

// isExternalMutableStorage reports whether s wraps a caller-owned UTF-16
// buffer rather than storage this package allocated.
func (s *String) isExternalMutableStorage() bool { return s.hdr.kind == storageExternalMutable }

// contentsBytes returns the raw 8-bit backing bytes. Valid only when
// !isUnicode(); panics otherwise (a representation bug, never a user
// error, so this is an assertion rather than a returned error).
func (s *String) contentsBytes() []byte {
	if s.hdr.unicode {
		panic("corestr: contentsBytes on a Unicode string")
	}
	return s.bytes
}

// contentsUnits returns the raw UTF-16 backing code units. Valid only when
// isUnicode().
func (s *String) contentsUnits() []uint16 {
	if !s.hdr.unicode {
		panic("corestr: contentsUnits on an 8-bit string")
	}
	return s.units
}

// contentsSkippingLengthByte returns the 8-bit backing bytes with any
// Pascal-style length prefix excluded. This package never stores an
// actual length byte inside the Go backing slice (hasLengthByte is never
// set, and CopyToPascalString writes its own prefix), so there is no
// prefix byte to skip at the storage layer, making this identical to
// contentsBytes.
func (s *String) contentsSkippingLengthByte() []byte { return s.contentsBytes() }

// setContentPtr installs new 8-bit backing bytes and clears any Unicode
// storage, updating the unicode flag.
func (s *String) setContentPtr(b []byte) {
	s.bytes = b
	s.units = nil
	s.hdr.unicode = false
}

// setContentUnits installs new UTF-16 backing storage and clears any
// 8-bit storage, updating the unicode flag.
func (s *String) setContentUnits(u []uint16) {
	s.units = u
	s.bytes = nil
	s.hdr.unicode = true
}

// setExplicitLength updates the character count recorded in the header.
func (s *String) setExplicitLength(n int) { s.charLen = n }

// Range is a half-open [Location, Location+Length) character range used
// throughout resize/compare/find.
type Range struct {
	Location int
	Length   int
}

// End returns r.Location + r.Length.
func (r Range) End() int { return r.Location + r.Length }

// Contains reports whether idx lies within r.
func (r Range) Contains(idx int) bool { return idx >= r.Location && idx < r.End() }
