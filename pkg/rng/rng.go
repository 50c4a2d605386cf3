package rng

import "math/rand"

// Source is the sole entropy source consumed by the generation pipeline.
// It wraps math/rand.Rand rather than replacing it, matching the style of
// the original wrapper: a thin deterministic facade with named helpers for
// the draws the pipeline actually needs.
type Source struct {
	seed   int64
	source *rand.Rand
}

// New creates a Source seeded directly from seed. There is no per-stage
// derivation: one Source, one stream, shared by the whole pipeline.
func New(seed int64) *Source {
	return &Source{
		seed:   seed,
		source: rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this Source was constructed with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.source.Intn(n)
}

// Random returns an integer n with lo <= n < hi. Panics if hi <= lo.
func (s *Source) Random(lo, hi int) int {
	if hi <= lo {
		panic("rng: Random requires hi > lo")
	}
	return lo + s.source.Intn(hi-lo)
}

// RandomEven returns an even integer n with lo <= n < hi. Panics if there is
// no even integer in the half-open range.
func (s *Source) RandomEven(lo, hi int) int {
	first := lo
	if first%2 != 0 {
		first++
	}
	if first >= hi {
		panic("rng: RandomEven has no even value in range")
	}
	count := (hi-1-first)/2 + 1
	return first + 2*s.source.Intn(count)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.source.Float64()
}

// Bool returns a pseudo-random boolean with even odds.
func (s *Source) Bool() bool {
	return s.source.Intn(2) == 1
}

// Chance returns true with probability num/den. Used for the pipeline's
// fixed-probability branches (1/30 secret inheritance, 1/6 pillar-instead-
// of-door, 25% axis flip).
func (s *Source) Chance(num, den int) bool {
	return s.source.Intn(den) < num
}

// Shuffle pseudo-randomizes the order of a slice of length n in place.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.source.Shuffle(n, swap)
}

// WeightedChoice selects an index from weights using weighted random
// selection. Weights must be non-negative. Returns -1 if all weights are
// zero or weights is empty.
func (s *Source) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	draw := s.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
