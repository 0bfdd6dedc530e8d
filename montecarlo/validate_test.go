// Package montecarlo_test contains validation tests for urnlab/montecarlo
// inputs and options. The focus is on strict sentinel errors, stage ordering,
// and deterministic failure behavior.
package montecarlo_test

import (
	"testing"

	"github.com/katalvlaran/urnlab/montecarlo"
	"github.com/katalvlaran/urnlab/urn"
)

// runEstimate is a thin wrapper to execute Estimate and return only the error.
// Validation is the gatekeeper in this file, so results are discarded.
func runEstimate(ref *urn.Urn, criterion map[string]int, drawSize, trials int, opts ...montecarlo.Option) error {
	_, err := montecarlo.Estimate(ref, criterion, drawSize, trials, opts...)
	return err
}

// -----------------------------------------------------------------------------
// 1) Validation: reference urn (nil pointer is rejected before any trial)
// -----------------------------------------------------------------------------

func TestEstimate_NilUrn(t *testing.T) {
	Repeat(t, 3, func(t *testing.T) {
		err := runEstimate(nil, marbleCriterion(), 5, trialsCI)
		mustErrIs(t, err, montecarlo.ErrNilUrn)
	})
}

// -----------------------------------------------------------------------------
// 2) Validation: scalar arguments (drawSize, trials)
// -----------------------------------------------------------------------------

func TestEstimate_NegativeDrawSize(t *testing.T) {
	ref := mustUrn(t, marbleCounts())

	Repeat(t, 3, func(t *testing.T) {
		err := runEstimate(ref, marbleCriterion(), -1, trialsCI)
		mustErrIs(t, err, montecarlo.ErrNegativeDraw)
	})
}

func TestEstimate_NoTrials(t *testing.T) {
	ref := mustUrn(t, marbleCounts())

	t.Run("trials=0 → ErrNoTrials", func(t *testing.T) {
		err := runEstimate(ref, marbleCriterion(), 5, 0)
		mustErrIs(t, err, montecarlo.ErrNoTrials)
	})

	t.Run("trials=-5 → ErrNoTrials", func(t *testing.T) {
		err := runEstimate(ref, marbleCriterion(), 5, -5)
		mustErrIs(t, err, montecarlo.ErrNoTrials)
	})
}

// -----------------------------------------------------------------------------
// 3) Validation: criterion values (negative requirements are rejected)
// -----------------------------------------------------------------------------

func TestEstimate_NegativeRequirement(t *testing.T) {
	ref := mustUrn(t, marbleCounts())

	Repeat(t, 3, func(t *testing.T) {
		err := runEstimate(ref, map[string]int{"red": -2}, 5, trialsCI)
		mustErrIs(t, err, montecarlo.ErrNegativeRequirement)
	})
}

// -----------------------------------------------------------------------------
// 4) Validation: options (violations recorded by constructors, surfaced first)
// -----------------------------------------------------------------------------

func TestEstimate_WorkerViolation(t *testing.T) {
	ref := mustUrn(t, marbleCounts())

	Repeat(t, 3, func(t *testing.T) {
		err := runEstimate(ref, marbleCriterion(), 5, trialsCI, montecarlo.WithWorkers(-1))
		mustErrIs(t, err, montecarlo.ErrOptionViolation)
	})
}

func TestEstimate_OptionViolationPrecedence(t *testing.T) {
	// Every validation stage is violated at once; the option violation wins.
	Repeat(t, 3, func(t *testing.T) {
		err := runEstimate(nil, map[string]int{"red": -1}, -3, 0, montecarlo.WithWorkers(-3))
		mustErrIs(t, err, montecarlo.ErrOptionViolation)
	})
}

// -----------------------------------------------------------------------------
// 5) Failure shape: a rejected call returns the zero Result
// -----------------------------------------------------------------------------

func TestEstimate_InvalidInputYieldsZeroResult(t *testing.T) {
	res, err := montecarlo.Estimate(nil, marbleCriterion(), 5, trialsCI)
	if err == nil {
		t.Fatal("want validation error, got nil")
	}
	if res.Successes != 0 || res.Trials != 0 {
		t.Fatalf("want zero Result on error, got %+v", res)
	}
	if p := res.Probability(); p != 0 {
		t.Fatalf("want Probability()==0 on zero Result, got %v", p)
	}
}

// -----------------------------------------------------------------------------
// 6) Option defaults: WithWorkers(0) selects the sequential default
// -----------------------------------------------------------------------------

func TestWithWorkers_ZeroMeansDefault(t *testing.T) {
	ref := mustUrn(t, marbleCounts())

	def, err := montecarlo.Estimate(ref, marbleCriterion(), 5, 200, montecarlo.WithSeed(seedDet))
	if err != nil {
		t.Fatalf("default run failed: %v", err)
	}

	zero, err := montecarlo.Estimate(ref, marbleCriterion(), 5, 200,
		montecarlo.WithSeed(seedDet), montecarlo.WithWorkers(0))
	if err != nil {
		t.Fatalf("WithWorkers(0) run failed: %v", err)
	}

	if def != zero {
		t.Fatalf("WithWorkers(0) diverged from the default: %+v vs %+v", zero, def)
	}
}
