package corestr

import (
	"unicode/utf16"

	"github.com/axiomhq/corestr/alloc"
	"github.com/axiomhq/corestr/encoding"
	"github.com/axiomhq/corestr/intern"
)

// emptyStrings interns the single shared empty-string object every
// zero-length constructor call returns, so two unrelated
// FromCString("") calls observe the same object rather than allocating a
// fresh header each time.
var emptyStrings = intern.New[*String]()

// emptyImmutable returns the process-wide empty-string singleton,
// retaining it on every call.
func emptyImmutable() *String {
	if existing, ok := emptyStrings.Lookup(""); ok {
		return existing.Retain()
	}
	s := &String{refs: 1, hdr: header{inline: true, kind: storageInline, constant: true}}
	existing, _ := emptyStrings.Insert("", s)
	return existing.Retain()
}

// newImmutable is the constructor funnel every public immutable
// constructor in this package routes through: it short-circuits to the
// shared empty-string singleton for zero-length input, otherwise it
// decides 8-bit vs Unicode representation (8-bit iff every scalar is in
// [0, 0xFF], since the process eight-bit encoding is Latin-1 and
// therefore identity with the low Unicode scalars) and builds the header
// accordingly.
func newImmutable(runes []rune) *String {
	if len(runes) == 0 {
		return emptyImmutable()
	}
	s := &String{charLen: len(runes), refs: 1}
	if fitsEightBit(runes) {
		b := make([]byte, len(runes))
		for i, r := range runes {
			b[i] = byte(r)
		}
		s.bytes = b
		s.hdr = header{inline: true, kind: storageInline}
		return s
	}
	s.units = utf16.Encode(runes)
	s.charLen = len(s.units)
	s.hdr = header{unicode: true, inline: true, kind: storageInline}
	return s
}

func fitsEightBit(runes []rune) bool {
	for _, r := range runes {
		if r > 0xFF {
			return false
		}
	}
	return true
}

func fromRunes(runes []rune) *String { return newImmutable(runes) }

func newImmutableFromUnits(units []uint16) *String {
	return newImmutable(utf16.Decode(units))
}

// FromCString builds an immutable String from a Go string holding UTF-8
// text (the common "C string" source in Go).
func FromCString(s string) *String {
	return newImmutable([]rune(s))
}

// FromBytes decodes raw bytes in encoding e into a new immutable String.
func FromBytes(raw []byte, e encoding.Encoding) (*String, error) {
	units, err := encoding.DecodeToUTF16(raw, e, false)
	if err != nil {
		return nil, wrapf(ErrDecodeFailure, "FromBytes(%s): %v", e.CanonicalName(), err)
	}
	return newImmutableFromUnits(units), nil
}

// FromUTF16 builds an immutable String directly from UTF-16 code units,
// without any encoding conversion.
func FromUTF16(units []uint16) *String {
	return newImmutableFromUnits(units)
}

// FromPascalString decodes a Pascal (length-prefixed) byte string in
// encoding e: the first byte is the length, followed by that many data
// bytes.
func FromPascalString(raw []byte, e encoding.Encoding) (*String, error) {
	if len(raw) == 0 {
		return newImmutable(nil), nil
	}
	n := int(raw[0])
	if n > len(raw)-1 {
		return nil, wrapf(ErrBounds, "FromPascalString: length byte %d exceeds buffer", n)
	}
	return FromBytes(raw[1:1+n], e)
}

// Substring returns a new immutable String over r of s. Panics if r is
// out of bounds (a programmer error, not a runtime condition).
func (s *String) Substring(r Range) *String {
	if r.Location < 0 || r.Length < 0 || r.End() > s.charLen {
		panic(wrapf(ErrBounds, "Substring(%v) len=%d", r, s.charLen))
	}
	runes := make([]rune, 0, r.Length)
	i := r.Location
	for i < r.End() {
		c, w := scalarAt(s, i)
		runes = append(runes, c)
		i += w
	}
	return newImmutable(runes)
}

// Copy returns a new immutable String with the same contents as s.
func (s *String) Copy() *String {
	return newImmutable(s.Runes())
}

// NewMutable returns an empty mutable String with room for at least
// desiredCapacity characters once grown (0 means no hint).
func NewMutable(desiredCapacity int) *String {
	return &String{
		hdr:                header{mutable: true, inline: true, kind: storageInline},
		desiredCapacity:    desiredCapacity,
		contentsAllocator:  alloc.Default,
		refs:               1,
	}
}

// NewMutableCopy returns a mutable String initialized with src's
// contents.
func NewMutableCopy(src *String, desiredCapacity int) *String {
	m := NewMutable(desiredCapacity)
	m.appendRunes(src.Runes())
	return m
}

// NewExternalMutableNoCopy wraps a caller-owned UTF-16 buffer as a
// mutable String without copying; deallocator, if non-nil, is invoked
// when SetExternalCharactersNoCopy replaces the backing buffer. Release
// and buffer growth do not invoke it.
func NewExternalMutableNoCopy(units []uint16, deallocator func([]byte)) *String {
	return &String{
		hdr:                 header{mutable: true, unicode: true, kind: storageExternalMutable},
		units:               units,
		charLen:             len(units),
		capacity:            len(units) * 2,
		capacityProvidedExternally: true,
		contentsDeallocator: deallocator,
		refs:                1,
	}
}
