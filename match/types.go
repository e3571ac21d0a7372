package match

// NoMatch is the result value for a query key that has no equal element
// in the reference sequence.
const NoMatch = -1

// DefaultParallelThreshold is the minimum query length at which the
// search stage is split across goroutines when Options.Workers allows it.
const DefaultParallelThreshold = 1 << 14

// TieBreak selects which reference index is reported when the reference
// holds several elements equal to a query key.
//
//   - FirstOccurrence — the smallest original index among the duplicates.
//     The permutation is ordered by (key, original index), which gives the
//     same result as a stable sort.
//
//   - AnyOccurrence — some valid index among the duplicates. The permutation
//     is ordered by key only, which is cheaper on heavily duplicated input.
//
// With Options.ReferenceSorted the reference is its own sorted view, so the
// leftmost equal element is already the first occurrence and both policies
// return the same indices.
type TieBreak int

const (
	// FirstOccurrence reports the earliest duplicate in original order.
	FirstOccurrence TieBreak = iota

	// AnyOccurrence reports an unspecified but valid duplicate.
	AnyOccurrence
)

// String returns the flag spelling of the policy.
func (t TieBreak) String() string {
	switch t {
	case FirstOccurrence:
		return "first"
	case AnyOccurrence:
		return "any"
	default:
		return "unknown"
	}
}

// Options configures MatchWith and MatchFunc.
//
// Fields:
//   - ReferenceSorted   — caller guarantees the reference is non-decreasing.
//     No permutation is built and sorted-space indices are returned as is.
//     If the guarantee is broken the results are unspecified: the call does
//     not crash and never reads out of bounds, but indices may be wrong.
//   - VerifySorted      — opt-in debug assertion. When ReferenceSorted is set,
//     spend one extra O(M) pass and fail with ErrUnsortedReference on the
//     first descending pair. Ignored otherwise.
//   - TieBreak          — duplicate resolution policy, see TieBreak.
//   - Workers           — 0 or 1 runs the search sequentially, >1 caps the
//     number of goroutines, -1 uses runtime.GOMAXPROCS(0).
//   - ParallelThreshold — minimum len(query) before Workers takes effect.
//
// Example:
//
//	opts := match.DefaultOptions()
//	opts.Workers = -1           // use every available CPU for large queries
//	opts.TieBreak = match.AnyOccurrence
//
//	idx, err := match.MatchWith(query, reference, opts)
//	if err != nil {
//	  // handle ErrBadWorkers or ErrBadThreshold
//	}
type Options struct {
	ReferenceSorted   bool
	VerifySorted      bool
	TieBreak          TieBreak
	Workers           int
	ParallelThreshold int
}

// DefaultOptions returns sequential, first-occurrence matching against an
// unsorted reference.
func DefaultOptions() Options {
	return Options{
		TieBreak:          FirstOccurrence,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// validate checks the option values that can be set out of range.
func (o Options) validate() error {
	if o.Workers < -1 {
		return ErrBadWorkers
	}
	if o.ParallelThreshold < 0 {
		return ErrBadThreshold
	}
	if o.TieBreak != FirstOccurrence && o.TieBreak != AnyOccurrence {
		return ErrBadTieBreak
	}
	return nil
}
