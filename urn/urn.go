package urn

import (
	"fmt"
	"math/rand"
	"sort"
)

// defaultRNGSeed is the fixed seed used when callers pass rng==nil.
// The value is arbitrary but stable to keep reproducible defaults.
// Note: every nil-rng call starts an identical stream; pass one explicit
// *rand.Rand when a sequence of draws must look independent.
const defaultRNGSeed int64 = 1

// Urn is a finite, depletable collection of labeled items.
//
// Contents are stored flat, one slot per physical item, so uniform
// selection is a single index pick. The construction-time composition is
// kept as an immutable snapshot: Reset restores it, Clone reproduces the
// current state, Snapshot exposes a copy of it.
//
// An Urn is NOT goroutine-safe; see the package documentation.
type Urn struct {
	items    []string       // current contents, one slot per physical item
	counts   map[string]int // live per-label tally; no zero entries
	snapshot map[string]int // construction composition; never mutated after New
}

// New builds an Urn from a label→count mapping.
//
// Contract:
//   - Any negative count ⇒ ErrNegativeCount (no partial construction).
//   - Zero counts contribute nothing; a nil or empty mapping is a valid
//     empty urn.
//   - Items expand in ascending label order, so a fixed seed reproduces
//     identical draw sequences regardless of map iteration order.
//
// Complexity: O(n + L·log L) where n is the total item count and L the
// number of distinct labels.
func New(counts map[string]int) (*Urn, error) {
	var (
		label string
		c     int
	)
	// Validate the whole mapping before allocating anything.
	for label, c = range counts {
		if c < 0 {
			return nil, fmt.Errorf("%w: label %q has count %d", ErrNegativeCount, label, c)
		}
	}

	u := &Urn{snapshot: make(map[string]int, len(counts))}
	for label, c = range counts {
		if c > 0 {
			u.snapshot[label] = c
		}
	}
	u.refill()

	return u, nil
}

// Draw removes and returns k items selected uniformly at random without
// replacement, in draw order.
//
// Contract:
//   - k < 0 ⇒ ErrNegativeDraw, urn untouched.
//   - k ≥ Len() ⇒ every remaining item is returned (order still random)
//     and the urn is left empty; over-drawing is saturation, not an error.
//   - rng == nil ⇒ a fresh default deterministic stream is used.
//
// Complexity: O(k) time via swap-with-last removal; one allocation for
// the returned slice.
func (u *Urn) Draw(k int, rng *rand.Rand) ([]string, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: requested %d", ErrNegativeDraw, k)
	}
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}
	// Saturate: never draw more than the urn holds.
	if k > len(u.items) {
		k = len(u.items)
	}

	drawn := make([]string, 0, k)

	var (
		i     int    // draw counter
		j     int    // selected index
		last  int    // index of the current final slot
		label string // selected item label
	)
	for i = 0; i < k; i++ {
		j = r.Intn(len(u.items))
		label = u.items[j]
		drawn = append(drawn, label)

		// Swap-with-last pop keeps removal O(1); item order is otherwise
		// irrelevant because selection is uniform over indices.
		last = len(u.items) - 1
		u.items[j] = u.items[last]
		u.items = u.items[:last]

		u.counts[label]--
		if u.counts[label] == 0 {
			delete(u.counts, label)
		}
	}

	return drawn, nil
}

// Len reports how many items currently remain in the urn.
func (u *Urn) Len() int { return len(u.items) }

// Count reports how many items with the given label currently remain.
// Unknown labels report 0.
func (u *Urn) Count(label string) int { return u.counts[label] }

// Counts returns a copy of the current per-label composition.
// Labels whose items are exhausted are absent from the result.
//
// Complexity: O(L).
func (u *Urn) Counts() map[string]int {
	cp := make(map[string]int, len(u.counts))
	for label, c := range u.counts {
		cp[label] = c
	}

	return cp
}

// Snapshot returns a copy of the construction-time composition.
// The snapshot is fixed at New and unaffected by draws and resets.
//
// Complexity: O(L).
func (u *Urn) Snapshot() map[string]int {
	cp := make(map[string]int, len(u.snapshot))
	for label, c := range u.snapshot {
		cp[label] = c
	}

	return cp
}

// Reset restores the urn to its construction-time composition,
// discarding the effect of every draw since New.
//
// Complexity: O(n + L·log L), same as construction.
func (u *Urn) Reset() { u.refill() }

// Clone returns an independent deep copy of the urn: current contents,
// live tallies, and the construction snapshot. Mutating either urn never
// affects the other.
//
// Complexity: O(n + L).
func (u *Urn) Clone() *Urn {
	cp := &Urn{
		items:    append([]string(nil), u.items...),
		counts:   make(map[string]int, len(u.counts)),
		snapshot: make(map[string]int, len(u.snapshot)),
	}
	var (
		label string
		c     int
	)
	for label, c = range u.counts {
		cp.counts[label] = c
	}
	for label, c = range u.snapshot {
		cp.snapshot[label] = c
	}

	return cp
}

// refill rebuilds items and counts from the snapshot in ascending label
// order. Shared by New and Reset so both produce identical layouts.
func (u *Urn) refill() {
	var total int
	for _, c := range u.snapshot {
		total += c
	}

	labels := make([]string, 0, len(u.snapshot))
	for label := range u.snapshot {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	u.items = make([]string, 0, total)
	u.counts = make(map[string]int, len(u.snapshot))

	var (
		label string
		c, i  int
	)
	for _, label = range labels {
		c = u.snapshot[label]
		for i = 0; i < c; i++ {
			u.items = append(u.items, label)
		}
		u.counts[label] = c
	}
}
