package corestr

import (
	"testing"

	"github.com/rivo/uniseg"
)

// TestClusterBoundariesAgreeWithReferenceSegmenter cross-checks
// RangeOfCharacterClusterAt(grapheme) boundaries against an independent
// reference implementation for a handful of inputs. This is a test-only
// dependency: production code never imports uniseg.
func TestClusterBoundariesAgreeWithReferenceSegmenter(t *testing.T) {
	cases := []string{
		"abc",
		"café",
		string([]rune{'e', 0x0301, 'f'}),
		string([]rune{0x1F468, 0x200D, 0x1F469, 0x200D, 0x1F467}),
	}

	for _, text := range cases {
		var refLens []int
		gr := uniseg.NewGraphemes(text)
		for gr.Next() {
			refLens = append(refLens, utf16Units(gr.Runes()))
		}

		s := FromCString(text)
		var gotLens []int
		pos := 0
		for pos < s.charLen {
			r := s.RangeOfCharacterClusterAt(pos, ClusterGrapheme)
			if r.Length == 0 {
				break
			}
			gotLens = append(gotLens, r.Length)
			pos = r.End()
		}

		if len(gotLens) != len(refLens) {
			t.Errorf("text %q: got %d clusters %v, reference found %d clusters %v", text, len(gotLens), gotLens, len(refLens), refLens)
			continue
		}
		for i := range gotLens {
			if gotLens[i] != refLens[i] {
				t.Errorf("text %q: cluster %d length = %d, reference = %d", text, i, gotLens[i], refLens[i])
			}
		}
	}
}

func utf16Units(runes []rune) int {
	n := 0
	for _, r := range runes {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
