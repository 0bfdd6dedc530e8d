// Package montecarlo - validation utilities for estimation inputs.
//
// This file contains small, tight helpers that:
//  1. Surface Option violations recorded during option application.
//  2. Validate the reference urn and scalar parameters.
//  3. Validate the success criterion mapping.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Fail fast: no trial runs on invalid input.
package montecarlo

import (
	"fmt"

	"github.com/katalvlaran/urnlab/urn"
)

// validateAll verifies options + reference urn + scalars + criterion.
//
// Contract:
//   - Recorded option violations surface first.
//   - ref must be non-nil; drawSize ≥ 0; trials ≥ 1.
//   - Criterion counts must be non-negative. Labels absent from the urn are
//     legal; a positive requirement on such a label simply never succeeds.
//
// Complexity: O(C) where C is the number of criterion labels.
func validateAll(ref *urn.Urn, criterion map[string]int, drawSize, trials int, o Options) error {
	// Stage 1: Options violations recorded during application.
	if o.err != nil {
		return o.err
	}

	// Stage 2: Reference urn.
	if ref == nil {
		return ErrNilUrn
	}

	// Stage 3: Scalar bounds.
	if drawSize < 0 {
		return fmt.Errorf("%w: drawSize=%d", ErrNegativeDraw, drawSize)
	}
	if trials < 1 {
		return fmt.Errorf("%w: trials=%d", ErrNoTrials, trials)
	}

	// Stage 4: Criterion values.
	var (
		label string
		need  int
	)
	for label, need = range criterion {
		if need < 0 {
			return fmt.Errorf("%w: label %q requires %d", ErrNegativeRequirement, label, need)
		}
	}

	return nil
}
