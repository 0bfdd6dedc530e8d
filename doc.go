// Package urnlab is your in-memory playground for urn-model probability:
// build depletable pools of labeled items, draw without replacement, and
// estimate event probabilities by Monte-Carlo simulation.
//
// 🚀 What is urnlab?
//
//	A small, deterministic-by-default library that brings together:
//		• Urns: finite multisets of labeled items with uniform draws
//		  without replacement, snapshots, resets and deep clones
//		• Monte-Carlo estimation: N independent trials against fresh
//		  urn copies, scored by per-label minimum-count criteria
//		• Reproducibility: fixed seed ⇒ identical estimates, run after run
//		• Parallel trials: worker fan-out with independent RNG streams
//		  and a fold of partial success counts
//
// ✨ Why choose urnlab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – trial isolation, conservation of items,
//     sentinel errors for every failure mode
//   - Pure simulation – exact 0 and 1 emerge from the trials themselves
//   - Extensible – inject your own *rand.Rand, tune seeds and workers
//
// Under the hood, everything is organized under two subpackages:
//
//	urn/        — the Urn container: New, Draw, Snapshot, Reset, Clone
//	montecarlo/ — the Estimate loop: options, validation, RNG streams
//
// Quick urn example:
//
//	    ┌─────────┐
//	    │ ●●●●●●  │  black×6
//	    │ ○○○○    │  red×4
//	    │ ◆◆◆     │  green×3
//	    └─────────┘
//
//	draw 5 — what are the odds of at least 2 red and 1 green?
//
// Dive into README.md for full examples, a feature matrix, and our roadmap
// to weighted sampling, confidence intervals and beyond.
//
//	go get github.com/katalvlaran/urnlab
package urnlab
