package match

import (
	"cmp"
	"slices"
)

// sortedView is the reference as seen in non-decreasing key order.
//
// keys holds the reference keys in sorted order. perm maps a sorted slot
// back to its original position in the reference: keys[i] == reference[perm[i]].
// A nil perm stands for the identity, used when the caller vouches that the
// reference is already sorted; keys then aliases the caller's slice and is
// only ever read.
type sortedView[K any] struct {
	keys []K
	perm []int
}

// newSortedView builds the view for reference without touching it.
//
// For an unsorted reference the permutation [0, M) is ordered by key, and by
// original index among equal keys under FirstOccurrence, then the keys are
// gathered into a fresh slice so that the search stage walks contiguous
// memory instead of hopping through perm.
//
// Complexity: O(M log M) time, O(M) space; O(1) when sorted is true.
func newSortedView[K any](reference []K, compare func(a, b K) int, sorted bool, tie TieBreak) sortedView[K] {
	if sorted {
		return sortedView[K]{keys: reference}
	}

	perm := make([]int, len(reference))
	for i := range perm {
		perm[i] = i
	}

	if tie == AnyOccurrence {
		slices.SortFunc(perm, func(a, b int) int {
			return compare(reference[a], reference[b])
		})
	} else {
		slices.SortFunc(perm, func(a, b int) int {
			if c := compare(reference[a], reference[b]); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
	}

	keys := make([]K, len(perm))
	for i, p := range perm {
		keys[i] = reference[p]
	}

	return sortedView[K]{keys: keys, perm: perm}
}

// firstDescent returns the smallest i with keys[i-1] > keys[i], or -1 when
// keys is non-decreasing.
func firstDescent[K any](keys []K, compare func(a, b K) int) int {
	for i := 1; i < len(keys); i++ {
		if compare(keys[i-1], keys[i]) > 0 {
			return i
		}
	}
	return -1
}
