package match

import (
	"cmp"
	"errors"
	"fmt"
)

// Match — bulk array matching
//
// Description:
//
//	For every key of query, find the index of an equal element in
//	reference, or NoMatch if reference holds no such element. Neither
//	input needs to be sorted or unique, and the two lengths are
//	independent.
//
// Algorithm Outline:
//  1. Sorted view. Unless the reference is declared sorted, order a
//     permutation perm of [0, M) so that reference[perm[i]] is
//     non-decreasing, and gather the keys in that order. The reference
//     itself is never reordered. A sorted reference is used directly and
//     perm is the identity (never materialised).
//  2. Bounds. For each query key k, binary-search
//     lo = first slot with key >= k and hi = first slot with key > k.
//  3. Translate. hi == lo means no match (this includes lo == M).
//     Otherwise the leftmost equal slot lo is returned as perm[lo],
//     or as lo itself for a sorted reference.
//
// Duplicates:
//
//	The leftmost slot of the equal range is reported. With the default
//	FirstOccurrence policy the permutation breaks key ties by original
//	index, so this is the first occurrence in the caller's order.
//
// Complexity:
//
//	Time   = O((N + M) log M), or O(N log M) for a sorted reference
//	Memory = O(N + M) (permutation, gathered keys, result)
//
// Errors:
//   - ErrBadWorkers, ErrBadThreshold, ErrBadTieBreak — invalid Options.
//   - ErrUnsortedReference — only with ReferenceSorted && VerifySorted.
//   - ErrNilCompare         — MatchFunc without a comparator.
var (
	// ErrUnsortedReference is returned by the opt-in VerifySorted check when
	// a reference claimed to be sorted has a descending pair.
	ErrUnsortedReference = errors.New("match: reference is not sorted")

	// ErrBadWorkers indicates Options.Workers < -1.
	ErrBadWorkers = errors.New("match: workers must be >= -1")

	// ErrBadThreshold indicates a negative Options.ParallelThreshold.
	ErrBadThreshold = errors.New("match: parallel threshold must be >= 0")

	// ErrBadTieBreak indicates an unknown TieBreak value.
	ErrBadTieBreak = errors.New("match: unknown tie-break policy")

	// ErrNilCompare indicates MatchFunc was called without a comparator.
	ErrNilCompare = errors.New("match: compare function is nil")
)

// Match returns, for each query key, the index of an equal reference
// element or NoMatch. The result has len(query) entries and shares no
// memory with the inputs.
//
// If referenceSorted is true the caller guarantees that reference is
// non-decreasing. That guarantee is not checked: a reference that is not
// actually sorted produces unspecified indices, but never a panic or an
// out-of-range index. Use MatchWith with Options.VerifySorted to check it.
//
// Example:
//
//	idx := match.Match([]int{3, 9, 1}, []int{1, 2, 3}, true)
//	// idx == []int{2, -1, 0}
func Match[K cmp.Ordered](query, reference []K, referenceSorted bool) []int {
	opts := DefaultOptions()
	opts.ReferenceSorted = referenceSorted

	return matchView(query, reference, cmp.Compare[K], opts)
}

// MatchKey matches a single key by wrapping it as a one-element query.
func MatchKey[K cmp.Ordered](key K, reference []K, referenceSorted bool) int {
	return Match([]K{key}, reference, referenceSorted)[0]
}

// MatchWith is Match driven by Options.
func MatchWith[K cmp.Ordered](query, reference []K, opts Options) ([]int, error) {
	return MatchFunc(query, reference, cmp.Compare[K], opts)
}

// MatchFunc matches keys of any type under a caller-supplied total order.
// compare must return a negative number when a < b, zero when a == b and
// a positive number when a > b, consistently for all keys; strings.Compare
// and bytes.Compare both qualify.
func MatchFunc[K any](query, reference []K, compare func(a, b K) int, opts Options) ([]int, error) {
	if compare == nil {
		return nil, ErrNilCompare
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.ReferenceSorted && opts.VerifySorted {
		if i := firstDescent(reference, compare); i >= 0 {
			return nil, fmt.Errorf("%w: element %d is greater than element %d", ErrUnsortedReference, i-1, i)
		}
	}

	return matchView(query, reference, compare, opts), nil
}

// matchView runs the three stages on already validated options.
func matchView[K any](query, reference []K, compare func(a, b K) int, opts Options) []int {
	view := newSortedView(reference, compare, opts.ReferenceSorted, opts.TieBreak)

	out := make([]int, len(query))
	if w := opts.workerCount(len(query)); w > 1 {
		view.searchParallel(query, out, compare, w)
	} else {
		view.search(query, out, compare)
	}

	return out
}
