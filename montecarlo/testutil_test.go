// Package montecarlo_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package montecarlo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/urnlab/urn"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic base seed shared by estimation tests.
	seedDet = int64(42)

	// trialsCI is the trial count used by convergence checks: large enough
	// for a tight band, small enough to stay fast on CI.
	trialsCI = 2000

	// tolSingle bounds |estimate − analytic| for one seeded trialsCI run.
	// The standard error at p≈0.37 over 2000 trials is ≈0.0108, so this is
	// a ≈3.7σ band.
	tolSingle = 0.04

	// tolMean bounds the same distance for an average over three seeds
	// (standard error of the mean ≈0.0062, so ≈4.8σ).
	tolMean = 0.03

	// pMarble is the exact probability for the canonical scenario: draw 5
	// from {black:6, red:4, green:3} and require ≥2 red and ≥1 green.
	// Favorable selections sum to 270+108+6+72+12+3 = 471 of C(13,5) = 1287.
	pMarble = 471.0 / 1287.0
)

// marbleCounts returns the canonical composition shared across tests.
func marbleCounts() map[string]int {
	return map[string]int{"black": 6, "red": 4, "green": 3}
}

// marbleCriterion returns the canonical success criterion.
func marbleCriterion() map[string]int {
	return map[string]int{"red": 2, "green": 1}
}

// mustUrn builds an urn from counts or aborts the test/benchmark.
func mustUrn(tb testing.TB, counts map[string]int) *urn.Urn {
	tb.Helper()
	u, err := urn.New(counts)
	if err != nil {
		tb.Fatalf("urn.New failed: %v", err)
	}

	return u
}

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrNilUrn, ErrNoTrials, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustWithin asserts |got−want| ≤ tol.
func mustWithin(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("value out of tolerance: got=%.6f want=%.6f tol=%.3f", got, want, tol)
	}
}
