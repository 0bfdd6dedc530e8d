// Package montecarlo estimates the probability of urn-draw events by
// repeated random sampling (the Monte-Carlo method).
//
// 🚀 What does it answer?
//
//	"If I draw K items from this urn, how likely am I to get at least
//	these counts of these labels?" Estimate runs N independent trials,
//	each against a fresh copy of the reference urn, and reports the
//	success fraction — an unbiased point estimate that converges on the
//	exact hypergeometric probability as N grows. Typical uses:
//	  • lottery and raffle odds with several ticket classes
//	  • quality sampling plans (defect acceptance probabilities)
//	  • tabletop and card game event odds
//
// ✨ Key features:
//   - trial isolation: the reference urn is never mutated
//   - deterministic: fixed seed ⇒ bit-identical estimates, run after run
//   - parallel: WithWorkers(n) partitions trials across goroutines with
//     independent SplitMix64-derived RNG streams and folds the partials
//   - partial-match criteria: labels you do not name are unconstrained
//   - exact 0 and 1 emerge from the trials; no analytic shortcuts
//
// ⚙️ Usage:
//
//	ref, err := urn.New(map[string]int{"black": 6, "red": 4, "green": 3})
//	if err != nil {
//	  return err
//	}
//
//	res, err := montecarlo.Estimate(ref,
//	  map[string]int{"red": 2, "green": 1}, // at least 2 red AND 1 green
//	  5,    // draw 5 items per trial
//	  2000, // run 2000 trials
//	  montecarlo.WithSeed(42),
//	)
//	if err != nil {
//	  return err
//	}
//	fmt.Printf("p ≈ %.3f\n", res.Probability())
//
// Options:
//
//   - WithSeed(s):    reproducible randomness (0 ⇒ fixed default stream)
//   - WithWorkers(n): parallel trial execution, deterministic per (seed, n)
//   - WithContext(c): cancellation between trials
//
// Determinism:
//
//	Identical (urn, criterion, drawSize, trials, seed, workers) inputs
//	reproduce identical Results. Sequential (workers ≤ 1) and parallel
//	(workers ≥ 2) runs are each deterministic but consume differently
//	derived streams, so their estimates differ within Monte-Carlo error.
//
// Performance:
//
//   - Time:   O(trials · (n + k)) where n is the urn size, k the draw size
//   - Memory: O(n) per in-flight trial (one clone per trial)
//
// Errors: every failure is a sentinel (ErrNilUrn, ErrNegativeDraw,
// ErrNoTrials, ErrNegativeRequirement, ErrOptionViolation) detectable
// with errors.Is; cancellation propagates the context's error.
//
// See examples in example_test.go.
package montecarlo
