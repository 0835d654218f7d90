// Package selector chooses which item to quiz next.
//
// Lower-scored items get proportionally more weight, so the less an item is
// mastered the more often it comes up. All randomness flows through an
// injected *rand.Rand so selection is reproducible under a fixed seed.
package selector

import (
	"math/rand/v2"
	"time"

	"github.com/abbr-trainer/backend/internal/domain/item"
)

// Selector is not safe for concurrent use; callers serialize access.
type Selector struct {
	rng *rand.Rand
}

// New wraps the given random source.
func New(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// NewSeeded returns a Selector over a PCG source. A zero seed draws one
// from the clock.
func NewSeeded(seed uint64) *Selector {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Weight is max(1, MaxScore+1-score): 4 for a fresh item, 1 for a mastered one.
func Weight(it item.Item) int {
	return max(1, item.MaxScore+1-it.Score)
}

// PickWeighted runs a cumulative-weight roulette over items.
// It returns false only when items is empty.
func (s *Selector) PickWeighted(items []item.Item) (item.Item, bool) {
	if len(items) == 0 {
		return item.Item{}, false
	}

	total := 0
	for _, it := range items {
		total += Weight(it)
	}

	r := s.rng.Float64() * float64(total)
	for _, it := range items {
		r -= float64(Weight(it))
		if r <= 0 {
			return it, true
		}
	}
	// Rounding left r slightly positive.
	return items[len(items)-1], true
}

// PickUniform picks any item with equal probability.
func (s *Selector) PickUniform(items []item.Item) (item.Item, bool) {
	if len(items) == 0 {
		return item.Item{}, false
	}
	return items[s.rng.IntN(len(items))], true
}

// Next applies the review fallback policy: a weighted pick over the
// unmastered items, or a uniform pick over everything once all items are
// mastered. It returns false only when items is empty.
func (s *Selector) Next(items []item.Item) (item.Item, bool) {
	if pool := item.Unmastered(items); len(pool) > 0 {
		return s.PickWeighted(pool)
	}
	return s.PickUniform(items)
}

// Shuffle returns a shuffled copy of values.
func (s *Selector) Shuffle(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Sample draws up to n values uniformly without replacement.
func (s *Selector) Sample(values []string, n int) []string {
	shuffled := s.Shuffle(values)
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}
