package threesum

import (
	"fmt"
	"math/bits"
	"slices"
)

// Find returns every unique triplet of values in nums whose sum is zero.
//
// Steps:
//  1. Sort an ascending copy of nums (O(n log n)).
//  2. For each index i, skip it when nums[i] equals nums[i-1].
//  3. Two-pointer scan l=i+1, r=n-1 while l<r:
//     sum>0 → r--; sum<0 → l++;
//     sum==0 → record, l++, then skip l over equal values.
//
// Inputs shorter than three elements yield an empty, non-nil result.
// Find never fails; see FindWith for targets, limits and hooks.
func Find(nums []int) []Triplet {
	// default options cannot produce an error
	res, _ := FindWith(nums)

	return res
}

// Count returns the number of unique zero-sum triplets in nums.
func Count(nums []int) int {
	return len(Find(nums))
}

// FindWith runs the triplet search with the given options.
//
// Errors:
//   - ErrOptionViolation — an Option carried an invalid value.
//   - ErrHookAborted     — OnTriplet returned an error (both are wrapped).
//   - ctx.Err()          — the context was cancelled or timed out.
//
// On error the partial result is discarded and nil is returned.
//
// Complexity: O(n²) time, O(n) extra memory.
func FindWith(nums []int, opts ...Option) ([]Triplet, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	n := len(sorted)
	res := make([]Triplet, 0)
	for i := 0; i < n; i++ {
		if i > 0 && sorted[i] == sorted[i-1] {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		a := sorted[i]
		l, r := i+1, n-1
		for l < r {
			switch c := compareSum(a, sorted[l], sorted[r], o.Target); {
			case c > 0:
				r--
			case c < 0:
				l++
			default:
				t := Triplet{a, sorted[l], sorted[r]}
				res = append(res, t)
				if o.Verbose {
					fmt.Printf("threesum: found %v\n", t)
				}
				if err := o.OnTriplet(t); err != nil {
					return nil, fmt.Errorf("%w: %w", ErrHookAborted, err)
				}
				if o.Limit > 0 && len(res) >= o.Limit {
					return res, nil
				}

				l++
				for l < r && sorted[l] == sorted[l-1] {
					l++
				}
			}
		}
	}

	return res, nil
}

// compareSum reports the sign of (a+b+c)-target without overflow.
// Each operand is widened to a signed 128-bit value held as (hi, lo).
func compareSum(a, b, c, target int) int {
	hi, lo := wide(a)
	hi, lo = add128(hi, lo, b)
	hi, lo = add128(hi, lo, c)

	thi, tlo := wide(target)
	lo, borrow := bits.Sub64(lo, tlo, 0)
	hi = hi - thi - int64(borrow)

	switch {
	case hi < 0:
		return -1
	case hi == 0 && lo == 0:
		return 0
	default:
		return 1
	}
}

// wide sign-extends x into the (hi, lo) halves of a 128-bit integer.
func wide(x int) (int64, uint64) {
	v := int64(x)

	return v >> 63, uint64(v)
}

// add128 adds x to the 128-bit value (hi, lo).
func add128(hi int64, lo uint64, x int) (int64, uint64) {
	xhi, xlo := wide(x)
	lo, carry := bits.Add64(lo, xlo, 0)

	return hi + xhi + int64(carry), lo
}
