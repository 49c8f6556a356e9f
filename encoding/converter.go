// Package encoding implements the encoding-converter collaborator:
// byte-stream <-> UTF-16 conversion with optional BOM detection,
// byte-length-for-characters sizing, ASCII-superset checks, and canonical
// encoding names. Backed by golang.org/x/text/encoding,
// golang.org/x/text/encoding/unicode, and golang.org/x/text/encoding/charmap.
package encoding

import (
	"unicode/utf16"
	"unicode/utf8"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names the small set of encodings the core cares about. The
// core only requires that its "eight-bit encoding" be 1-to-1 with Unicode
// and a superset of ASCII; it otherwise treats encodings opaquely.
type Encoding uint8

const (
	ASCII Encoding = iota
	UTF8
	UTF16
	UTF16BE
	UTF16LE
	UTF32
	UTF32BE
	UTF32LE
	Latin1 // ISO-8859-1, the system 8-bit encoding's usual fallback
	WindowsLatin1
	MacRoman
)

// CanonicalName returns the IANA-style canonical name for e.
func (e Encoding) CanonicalName() string {
	switch e {
	case ASCII:
		return "us-ascii"
	case UTF8:
		return "utf-8"
	case UTF16:
		return "utf-16"
	case UTF16BE:
		return "utf-16be"
	case UTF16LE:
		return "utf-16le"
	case UTF32:
		return "utf-32"
	case UTF32BE:
		return "utf-32be"
	case UTF32LE:
		return "utf-32le"
	case Latin1:
		return "iso-8859-1"
	case WindowsLatin1:
		return "windows-1252"
	case MacRoman:
		return "macintosh"
	default:
		return "unknown"
	}
}

// IsSupersetOfASCII reports whether e maps every ASCII byte value to the
// same scalar ASCII assigns it. The method exists so callers never need
// a type switch of their own.
func (e Encoding) IsSupersetOfASCII() bool {
	switch e {
	case ASCII, UTF8, Latin1, WindowsLatin1, MacRoman:
		return true
	default:
		// UTF-16/UTF-32 are not byte-for-byte ASCII supersets (ASCII
		// bytes don't appear verbatim in a 2- or 4-byte code unit
		// stream).
		return false
	}
}

// singleByteTable returns the charmap used to widen e's bytes to Unicode
// scalars one-to-one, or nil if e is not a single-byte encoding.
func (e Encoding) singleByteTable() *charmap.Charmap {
	switch e {
	case Latin1:
		return charmap.ISO8859_1
	case WindowsLatin1:
		return charmap.Windows1252
	case MacRoman:
		return charmap.Macintosh
	default:
		return nil
	}
}

// SingleByteToUTF16Table returns the process's single-byte→UTF-16 widening
// table for e. Byte i maps to table[i]; ASCII always maps identically so
// 8-bit hashing agrees with UTF-16 hashing for ASCII-only content.
func (e Encoding) SingleByteToUTF16Table() [256]uint16 {
	var table [256]uint16
	cm := e.singleByteTable()
	for i := range 256 {
		if cm == nil {
			table[i] = uint16(i) // ASCII/unknown: identity widen
			continue
		}
		r := cm.DecodeByte(byte(i))
		table[i] = uint16(r)
	}
	return table
}

// DecodeToUTF16 decodes src (bytes in encoding e) into UTF-16 code units,
// detecting and stripping a BOM when detectBOM is set and e is a UTF-16
// variant. It returns ErrLossyDecode if any byte cannot be represented
// without loss. The UTF-32 encodings are not decoded: they return
// ErrUnsupportedEncoding.
func DecodeToUTF16(src []byte, e Encoding, detectBOM bool) ([]uint16, error) {
	switch e {
	case UTF16, UTF16BE, UTF16LE:
		return decodeUTF16Bytes(src, e, detectBOM)
	case UTF8:
		return decodeUTF8ToUTF16(src)
	case ASCII:
		return decodeASCIIToUTF16(src)
	default:
		if cm := e.singleByteTable(); cm != nil {
			return decodeSingleByteToUTF16(src, cm)
		}
		return nil, ErrUnsupportedEncoding
	}
}

func decodeUTF16Bytes(src []byte, e Encoding, detectBOM bool) ([]uint16, error) {
	bigEndian := e == UTF16BE
	if detectBOM && len(src) >= 2 {
		switch {
		case src[0] == 0xFE && src[1] == 0xFF:
			bigEndian = true
			src = src[2:]
		case src[0] == 0xFF && src[1] == 0xFE:
			bigEndian = false
			src = src[2:]
		}
	}
	if len(src)%2 != 0 {
		return nil, ErrDecodeTruncated
	}
	units := make([]uint16, len(src)/2)
	for i := range units {
		if bigEndian {
			units[i] = uint16(src[2*i])<<8 | uint16(src[2*i+1])
		} else {
			units[i] = uint16(src[2*i+1])<<8 | uint16(src[2*i])
		}
	}
	return units, nil
}

func decodeUTF8ToUTF16(src []byte) ([]uint16, error) {
	if !utf8.Valid(src) {
		return nil, ErrLossyDecode
	}
	runes := []rune(string(src))
	return utf16.Encode(runes), nil
}

func decodeASCIIToUTF16(src []byte) ([]uint16, error) {
	units := make([]uint16, len(src))
	for i, b := range src {
		if b >= 0x80 {
			return nil, ErrLossyDecode
		}
		units[i] = uint16(b)
	}
	return units, nil
}

func decodeSingleByteToUTF16(src []byte, cm *charmap.Charmap) ([]uint16, error) {
	units := make([]uint16, len(src))
	for i, b := range src {
		r := cm.DecodeByte(b)
		if r == utf8.RuneError {
			return nil, ErrLossyDecode
		}
		units[i] = uint16(r)
	}
	return units, nil
}

// EncodeFromUTF16 encodes units (UTF-16 code units) into e's byte
// representation. externalFormat requests a BOM for UTF-16 encodings; no
// other encoding ever emits a BOM. The UTF-32 encodings are not encoded:
// they return ErrUnsupportedEncoding.
func EncodeFromUTF16(units []uint16, e Encoding, externalFormat bool) ([]byte, error) {
	switch e {
	case UTF16, UTF16BE, UTF16LE:
		return encodeUTF16Bytes(units, e, externalFormat), nil
	case UTF8:
		return []byte(string(utf16.Decode(units))), nil
	case ASCII:
		return encodeASCII(units)
	default:
		if cm := e.singleByteTable(); cm != nil {
			return encodeSingleByte(units, cm)
		}
		return nil, ErrUnsupportedEncoding
	}
}

func encodeUTF16Bytes(units []uint16, e Encoding, bom bool) []byte {
	bigEndian := e == UTF16BE
	out := make([]byte, 0, len(units)*2+2)
	if bom {
		if bigEndian {
			out = append(out, 0xFE, 0xFF)
		} else {
			out = append(out, 0xFF, 0xFE)
		}
	}
	for _, u := range units {
		if bigEndian {
			out = append(out, byte(u>>8), byte(u))
		} else {
			out = append(out, byte(u), byte(u>>8))
		}
	}
	return out
}

func encodeASCII(units []uint16) ([]byte, error) {
	out := make([]byte, len(units))
	for i, u := range units {
		if u >= 0x80 {
			return nil, ErrLossyDecode
		}
		out[i] = byte(u)
	}
	return out, nil
}

func encodeSingleByte(units []uint16, cm *charmap.Charmap) ([]byte, error) {
	out := make([]byte, len(units))
	for i, u := range units {
		b, ok := cm.EncodeRune(rune(u))
		if !ok {
			return nil, ErrLossyDecode
		}
		out[i] = b
	}
	return out, nil
}

// ByteLengthForCharacters estimates the number of bytes e would need to
// hold the characters in chars. options is reserved for future
// lossy/loose-length variants; it is accepted but unused here.
func ByteLengthForCharacters(e Encoding, chars []uint16, options uint32) int {
	switch e {
	case UTF16, UTF16BE, UTF16LE:
		return len(chars) * 2
	case UTF32, UTF32BE, UTF32LE:
		return len(chars) * 4
	case UTF8:
		return len(string(utf16.Decode(chars)))
	default:
		return len(chars) // single-byte encodings: 1 byte per character
	}
}

// xtextEncoding adapts e to a golang.org/x/text/encoding.Encoding, for
// callers that want x/text's streaming decoders rather than this package's
// byte-slice API.
func (e Encoding) xtextEncoding() xencoding.Encoding {
	switch e {
	case UTF16:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case Latin1:
		return charmap.ISO8859_1
	case WindowsLatin1:
		return charmap.Windows1252
	case MacRoman:
		return charmap.Macintosh
	default:
		return xencoding.Nop
	}
}

// XTextEncoding exports xtextEncoding for use outside this package.
func (e Encoding) XTextEncoding() xencoding.Encoding { return e.xtextEncoding() }
