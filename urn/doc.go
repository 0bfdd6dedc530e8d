// Package urn implements a finite, depletable multiset of labeled items
// with uniform random draws without replacement.
//
// 🚀 What is an urn?
//
//	The classic probability container: construct it from a label→count
//	mapping, then draw items at random. Every draw removes what it
//	returns, so consecutive draws deplete the urn — the "balls in a
//	hat" model behind hypergeometric experiments:
//	  • quality sampling (defective vs. good units)
//	  • lottery and raffle odds
//	  • card and token game analysis
//	  • Monte-Carlo estimation (see urnlab/montecarlo)
//
// ✨ Key features:
//   - uniform draw without replacement via O(1) swap-with-last removal
//   - over-draw saturation: requests beyond Len() return everything left
//   - immutable construction snapshot: Reset restores, Clone duplicates
//   - deterministic layout: items expand in ascending label order, so a
//     fixed *rand.Rand seed reproduces identical draw sequences
//   - injectable randomness: pass any *rand.Rand, or nil for a fixed
//     default stream
//
// ⚙️ Usage:
//
//	u, err := urn.New(map[string]int{"red": 4, "blue": 2})
//	if err != nil {
//	  return err
//	}
//
//	rng := rand.New(rand.NewSource(42))
//	drawn, _ := u.Draw(3, rng) // e.g. [blue red red]
//	left := u.Len()            // 3 items remain
//	u.Reset()                  // back to 4 red + 2 blue
//
// Concurrency:
//
//	An Urn is NOT safe for concurrent use. One goroutine owns one Urn;
//	hand independent Clones to concurrent workers instead.
//
// Performance:
//
//   - Draw:  O(k) time for k drawn items
//   - Reset: O(n + L·log L) where n is the snapshot total and L the
//     number of distinct labels
//   - Clone: O(n + L)
//
// See examples in example_test.go and estimation workflows in
// urnlab/montecarlo.
package urn
