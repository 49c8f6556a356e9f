package corestr

import "github.com/axiomhq/corestr/encoding"

// externalRepresentationBytes renders s's contents in encoding e,
// returning ErrDecodeFailure if e cannot represent every character
// without loss. includeBOM requests a byte-order mark for UTF-16
// encodings; the UTF-32 encodings are not supported and fail.
func (s *String) externalRepresentationBytes(e encoding.Encoding, includeBOM bool) ([]byte, error) {
	units := s.unitsView()
	out, err := encoding.EncodeFromUTF16(units, e, includeBOM)
	if err != nil {
		return nil, wrapf(ErrDecodeFailure, "externalRepresentation(%s): %v", e.CanonicalName(), err)
	}
	return out, nil
}

// unitsView returns s's contents widened to UTF-16, regardless of storage
// representation.
func (s *String) unitsView() []uint16 {
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

// CreateExternalRepresentation renders s as bytes in encoding e, with an
// optional leading BOM for UTF-16 encodings. The UTF-32 encodings are not
// supported and return ErrDecodeFailure.
func CreateExternalRepresentation(s *String, e encoding.Encoding, includeBOM bool) ([]byte, error) {
	return s.externalRepresentationBytes(e, includeBOM)
}

// CreateFromExternalRepresentation decodes raw bytes in encoding e
// (detecting and stripping a BOM for UTF-16 encodings) into a new
// immutable String. The UTF-32 encodings are not supported and return
// ErrDecodeFailure.
func CreateFromExternalRepresentation(raw []byte, e encoding.Encoding) (*String, error) {
	units, err := encoding.DecodeToUTF16(raw, e, true)
	if err != nil {
		return nil, wrapf(ErrDecodeFailure, "CreateFromExternalRepresentation(%s): %v", e.CanonicalName(), err)
	}
	return newImmutableFromUnits(units), nil
}
