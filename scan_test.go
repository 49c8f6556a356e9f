package corestr

import "testing"

func TestScanInteger(t *testing.T) {
	s := FromCString("  -42 rest")
	idx := 0
	v, ok := ScanInteger(s, &idx)
	if !ok || v != -42 {
		t.Fatalf("ScanInteger = %d,%v, want -42,true", v, ok)
	}
	if idx != 5 {
		t.Fatalf("idx after ScanInteger = %d, want 5", idx)
	}
}

func TestScanIntegerNoDigits(t *testing.T) {
	s := FromCString("abc")
	idx := 0
	_, ok := ScanInteger(s, &idx)
	if ok {
		t.Fatalf("ScanInteger on non-numeric text reported success")
	}
}

func TestScanDouble(t *testing.T) {
	s := FromCString("3.14159 rest")
	idx := 0
	v, ok := ScanDouble(s, &idx)
	if !ok || v < 3.14 || v > 3.15 {
		t.Fatalf("ScanDouble = %v,%v, want ~3.14159,true", v, ok)
	}
}
