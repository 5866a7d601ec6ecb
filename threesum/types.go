// Package threesum defines the result type, options and error definitions
// for the triplet search.
package threesum

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for FindWith.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("threesum: invalid option supplied")

	// ErrHookAborted wraps the error returned by an OnTriplet hook.
	ErrHookAborted = errors.New("threesum: aborted by OnTriplet hook")
)

// Triplet is three input values in ascending order.
type Triplet [3]int

// Sum returns t[0]+t[1]+t[2] in int arithmetic.
// For values near the int limits the result wraps; the search itself
// never relies on it.
func (t Triplet) Sum() int {
	return t[0] + t[1] + t[2]
}

// String renders the triplet as "(a,b,c)".
func (t Triplet) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t[0], t[1], t[2])
}

// ToSlices converts triplets into plain [][]int rows.
// The result is never nil, so an empty search renders as [].
func ToSlices(ts []Triplet) [][]int {
	out := make([][]int, 0, len(ts))
	for _, t := range ts {
		out = append(out, []int{t[0], t[1], t[2]})
	}

	return out
}

// Option configures FindWith via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when FindWith is invoked.
type Option func(*Options)

// Options holds the parameters of a single search.
type Options struct {
	// Ctx allows cancellation; checked once per candidate smallest value.
	Ctx context.Context

	// Target is the sum every reported triplet must reach. Zero by default.
	Target int

	// Limit, if > 0, stops the search after that many triplets.
	Limit int

	// OnTriplet is called for each triplet in discovery order.
	// A non-nil error stops the search.
	OnTriplet func(t Triplet) error

	// Verbose prints each triplet as it is found.
	Verbose bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Target 0
//   - no limit
//   - a no-op OnTriplet hook
//   - Verbose off.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Target:    0,
		Limit:     0,
		OnTriplet: func(Triplet) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget searches for triplets summing to target instead of zero.
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithLimit stops after k triplets.
//
//	k > 0: at most k triplets
//	k == 0: no limit
//	k < 0: invalid option → ErrOptionViolation
func WithLimit(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, k)

			return
		}
		o.Limit = k
	}
}

// WithOnTriplet registers a callback run for every recorded triplet.
func WithOnTriplet(fn func(t Triplet) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTriplet = fn
		}
	}
}

// WithVerbose toggles printing of each triplet to stdout.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
	}
}
