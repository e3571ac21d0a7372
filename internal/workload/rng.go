// Package workload - deterministic synthetic inputs for the matcher.
//
// This file centralizes random generation for workloads and tests.
//
// Goals:
//   - Determinism: same seed ⇒ identical workloads across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package workload

import "math/rand"

// DefaultSeed is the seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, the DefaultSeed stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if rng == nil {
		rng = NewRNG(0)
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a shuffled permutation of 0..n-1. For n<0 it returns ErrNegativeSize.
//
// Complexity: O(n) time, O(n) space.
func Perm(n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(p, rng)
	return p, nil
}
