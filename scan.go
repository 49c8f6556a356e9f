package corestr

import (
	"strconv"
	"strings"
)

// ScanInteger parses a signed integer starting at *idx, skipping leading
// whitespace, and advances *idx past the digits consumed. Returns false
// if no digits were found.
func ScanInteger(s *String, idx *int) (int64, bool) {
	runes := s.Runes()
	i := *idx
	for i < len(runes) && isASCIISpace(runes[i]) {
		i++
	}
	start := i
	if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return 0, false
	}
	v, err := strconv.ParseInt(string(runes[start:i]), 10, 64)
	if err != nil {
		return 0, false
	}
	*idx = i
	return v, true
}

// ScanDouble parses a floating-point number starting at *idx, skipping
// leading whitespace, and advances *idx past the characters consumed.
func ScanDouble(s *String, idx *int) (float64, bool) {
	runes := s.Runes()
	i := *idx
	for i < len(runes) && isASCIISpace(runes[i]) {
		i++
	}
	start := i
	for i < len(runes) && strings.ContainsRune("+-0123456789.eE", runes[i]) {
		i++
	}
	if i == start {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(runes[start:i]), 64)
	if err != nil {
		return 0, false
	}
	*idx = i
	return v, true
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
