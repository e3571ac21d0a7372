// Package match finds, for every key of a query sequence, the position of
// an equal key in a reference sequence.
//
// 🚀 What does it solve?
//
//	Joining two unsorted arrays by key without building a hash map:
//	  • cross-matching catalogue IDs between two tables
//	  • mapping a sample of keys back to rows of a full dataset
//	  • checking membership of millions of keys in one call
//
// ✨ Key features:
//   - unsorted inputs, duplicate keys, partial matches
//   - the reference is never mutated: a permutation is sorted instead
//   - fast path for references that are already sorted (no sort, no copy)
//   - deterministic duplicate policy (FirstOccurrence) or a cheaper
//     AnyOccurrence policy
//   - opt-in parallel search for very large queries
//   - generic over cmp.Ordered keys, or any type via MatchFunc
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/argmatch/match"
//
//	idx := match.Match(query, reference, false)
//	for i, r := range idx {
//	  if r == match.NoMatch {
//	    continue // query[i] is not in reference
//	  }
//	  // reference[r] == query[i]
//	}
//
//	opts := match.DefaultOptions()
//	opts.Workers = -1
//	idx, err := match.MatchWith(query, reference, opts)
//
// Performance:
//
//   - Time:   O((N + M) log M); O(N log M) with a sorted reference
//   - Memory: O(N + M)
//
// Every call is independent: no state survives between calls, and calls
// on inputs that are not being modified concurrently are safe to run from
// many goroutines at once.
package match
