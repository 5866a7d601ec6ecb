// Package threesum finds every unique triplet of values in an integer slice
// whose sum is zero (or any other target sum).
//
// What
//
//   - Sorts a copy of the input, then runs a two-pointer scan for each
//     candidate smallest value.
//   - Triplets are unique by value, not by index: [-1,-1,2] is reported once
//     no matter how many index combinations produce it.
//   - Every returned Triplet is ascending.
//   - The caller's slice is never reordered.
//
// Determinism
//
//	The scan walks the sorted copy left to right, so the order of triplets is
//	a pure function of the input multiset. Permuting the input yields the
//	same triplets in the same order.
//
// Exact arithmetic
//
//	Sums are compared in 128-bit two's complement, so values near
//	math.MinInt / math.MaxInt never wrap into false matches.
//
// Complexity (n = len(nums))
//
//   - Time:   O(n log n) sort + O(n²) scan = O(n²)
//   - Memory: O(n) for the sorted copy, plus the result
//
// Usage
//
//	ts := threesum.Find([]int{-1, 0, 1, 2, -1, -4})
//	// [(-1,-1,2) (-1,0,1)]
//
//	ts, err := threesum.FindWith(nums,
//		threesum.WithTarget(10),
//		threesum.WithLimit(5),
//	)
//	if err != nil {
//		// ErrOptionViolation, ErrHookAborted or a context error
//	}
package threesum
