// Package montecarlo - the estimation loop, sequential and parallel.
//
// Estimate approximates a draw-event probability by executing independent
// trials against fresh clones of a reference urn and folding the success
// counts into a point estimate.
package montecarlo

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/urnlab/urn"
)

// Estimate approximates the probability that drawing drawSize items from
// ref yields at least criterion[label] items of every listed label, by
// running trials independent simulated draws.
//
// Contract:
//   - Each trial draws from a fresh clone of ref; ref itself is never
//     mutated, so one reference urn can back any number of estimates.
//   - The criterion constrains only the labels it names; extra labels in
//     the draw are ignored, and an empty (or nil) criterion always succeeds.
//   - drawSize beyond ref's size saturates per urn.Draw semantics, so a
//     positive requirement on a label the urn lacks yields exactly 0.
//   - Exact 0 and 1 are legitimate outcomes emerging from the trials.
//
// Determinism: identical (ref composition, criterion, drawSize, trials,
// seed, workers) reproduce identical Results bit for bit.
//
// Errors: ErrOptionViolation, ErrNilUrn, ErrNegativeDraw, ErrNoTrials,
// ErrNegativeRequirement for invalid input (no partial execution), or the
// context's error on cancellation.
//
// Complexity: O(trials · (n + k)) where n is ref.Len() and k the draw size.
func Estimate(ref *urn.Urn, criterion map[string]int, drawSize, trials int, opts ...Option) (Result, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	if err := validateAll(ref, criterion, drawSize, trials, o); err != nil {
		return Result{}, err
	}

	if o.Workers <= 1 {
		return estimateSequential(ref, criterion, drawSize, trials, o)
	}

	return estimateParallel(ref, criterion, drawSize, trials, o)
}

// runTrial executes one isolated trial: clone the reference, draw, tally,
// and score against the criterion.
//
// Complexity: O(n + k).
func runTrial(ref *urn.Urn, criterion map[string]int, drawSize int, rng *rand.Rand) (bool, error) {
	trial := ref.Clone() // fresh, exclusively owned copy
	drawn, err := trial.Draw(drawSize, rng)
	if err != nil {
		return false, err
	}

	var label string
	tally := make(map[string]int, len(criterion))
	for _, label = range drawn {
		tally[label]++
	}

	var need int
	for label, need = range criterion {
		if tally[label] < need {
			return false, nil
		}
	}

	return true, nil
}

// estimateSequential runs every trial on the calling goroutine against a
// single base RNG stream.
func estimateSequential(ref *urn.Urn, criterion map[string]int, drawSize, trials int, o Options) (Result, error) {
	rng := rngFromSeed(o.Seed)

	var (
		successes int
		t         int
		ok        bool
		err       error
	)
	for t = 0; t < trials; t++ {
		// cancellation check (once per trial)
		select {
		case <-o.Ctx.Done():
			return Result{}, o.Ctx.Err()
		default:
		}

		ok, err = runTrial(ref, criterion, drawSize, rng)
		if err != nil {
			return Result{}, err
		}
		if ok {
			successes++
		}
	}

	return Result{Successes: successes, Trials: trials}, nil
}

// estimateParallel partitions trials across o.Workers goroutines. Worker w
// receives an independent RNG stream derived from the base seed plus its
// share of the trials (the first trials%workers workers take one extra);
// partial success counts are folded after all workers finish.
//
// Workers only read the reference urn (Clone), never mutate it, so
// concurrent access to ref is safe.
func estimateParallel(ref *urn.Urn, criterion map[string]int, drawSize, trials int, o Options) (Result, error) {
	workers := o.Workers
	if workers > trials {
		workers = trials // never spawn idle workers
	}

	var (
		base = trials / workers // minimum per-worker quota
		rem  = trials % workers // leftovers, one each to the first rem workers
	)

	partial := make([]int, workers) // per-worker success counts, folded below

	g, ctx := errgroup.WithContext(o.Ctx)

	var w int
	for w = 0; w < workers; w++ {
		quota := base
		if w < rem {
			quota++
		}
		stream := streamRNG(o.Seed, uint64(w))
		slot := w

		g.Go(func() error {
			var (
				count int
				t     int
				ok    bool
				err   error
			)
			for t = 0; t < quota; t++ {
				// cancellation check (once per trial)
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				ok, err = runTrial(ref, criterion, drawSize, stream)
				if err != nil {
					return err
				}
				if ok {
					count++
				}
			}
			partial[slot] = count

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var successes, c int
	for _, c = range partial {
		successes += c
	}

	return Result{Successes: successes, Trials: trials}, nil
}
