// Package montecarlo provides tunable options and error definitions
// for Monte-Carlo probability estimation over urnlab urns.
package montecarlo

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for estimation.
var (
	// ErrNilUrn is returned when the reference urn pointer is nil.
	ErrNilUrn = errors.New("montecarlo: reference urn is nil")

	// ErrNegativeDraw is returned when the per-trial draw size is negative.
	ErrNegativeDraw = errors.New("montecarlo: draw size cannot be negative")

	// ErrNoTrials is returned when fewer than one trial is requested.
	ErrNoTrials = errors.New("montecarlo: trial count must be at least 1")

	// ErrNegativeRequirement is returned when a criterion demands a negative count.
	ErrNegativeRequirement = errors.New("montecarlo: criterion count cannot be negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("montecarlo: invalid option supplied")
)

// Option configures estimation behavior via functional arguments.
// If an Option is invalid (e.g. negative workers), it will be recorded
// internally and surfaced as ErrOptionViolation when Estimate is invoked.
type Option func(*Options)

// Options holds parameters that customize Estimate execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per trial.
	Ctx context.Context

	// Seed drives every random draw. Seed == 0 selects the fixed internal
	// default stream, so the zero value is still fully deterministic.
	Seed int64

	// Workers is the number of goroutines trials are partitioned across.
	// 1 runs everything on the calling goroutine.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Seed 0 (fixed default stream)
//   - sequential execution (Workers == 1)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Seed:    0,
		Workers: 1,
		err:     nil,
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

// WithSeed fixes the base random seed. Any value is valid; 0 explicitly
// selects the internal default stream, so every configuration stays
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers partitions trials across n goroutines, each consuming an
// independent RNG stream derived from the base seed.
//
//	n > 1:  parallel execution across n workers
//	n == 1: sequential execution
//	n == 0: explicit default (sequential)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "default"
			o.Workers = 1
		default:
			o.Workers = n
		}
	}
}

// Result holds the outcome of an estimation run:
//   - Successes: trials whose draw satisfied the criterion.
//   - Trials: trials executed in total.
type Result struct {
	Successes int
	Trials    int
}

// Probability returns the point estimate Successes/Trials in [0,1].
// A zero-trial Result reports 0.
func (r Result) Probability() float64 {
	if r.Trials == 0 {
		return 0
	}

	return float64(r.Successes) / float64(r.Trials)
}
