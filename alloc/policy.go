package alloc

import "math"

// NewCapacity computes the new buffer capacity for a mutation:
//
//   - if current is adequate and not wastefully larger, keep it;
//   - otherwise choose max(required, (3*required+1)/2 when wantExtra,
//     desiredCapacity*charSize);
//   - round up via the installed allocator's PreferredSizeFor, if any.
//
// It reports ok=false when required is negative or exceeds math.MaxInt32 (the
// caller then raises ErrOutOfMemory); there is no sentinel -1 return, since
// Go's multi-value returns make that encoding unnecessary.
func NewCapacity(required, current int, wantExtra bool, charSize int, a Allocator, desiredCapacity int, isFixedCapacity bool) (capacity int, ok bool) {
	if required < 0 || required > math.MaxInt32 {
		return 0, false
	}

	// current is adequate: big enough, and not more than double what's
	// required (avoid keeping a wastefully oversized buffer forever).
	if current >= required && current <= required*2 {
		return current, true
	}

	want := required
	if wantExtra {
		grown := (3*required + 1) / 2
		if grown > want {
			want = grown
		}
	}
	if !isFixedCapacity {
		if floor := desiredCapacity * charSize; floor > want {
			want = floor
		}
	}
	if want > math.MaxInt32 {
		return 0, false
	}

	if a != nil {
		want = a.PreferredSizeFor(want)
	}
	if isFixedCapacity && want > desiredCapacity*charSize && desiredCapacity > 0 {
		want = desiredCapacity * charSize
	}
	return want, true
}
