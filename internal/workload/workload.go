package workload

import "fmt"

// Workload is a query/reference pair for the matcher.
type Workload struct {
	Query     []int
	Reference []int
	Sorted    bool // Reference is in ascending order
}

// Generate builds an all-matched workload: Reference is the universe
// [0, m), shuffled unless sortedReference is set, and Query holds n keys
// drawn from that universe without replacement.
//
// Errors: ErrNegativeSize, ErrQueryTooLarge.
func Generate(n, m int, seed int64, sortedReference bool) (Workload, error) {
	if n < 0 || m < 0 {
		return Workload{}, ErrNegativeSize
	}
	if n > m {
		return Workload{}, fmt.Errorf("%w: %d > %d", ErrQueryTooLarge, n, m)
	}

	rng := NewRNG(seed)

	universe, err := Perm(m, rng)
	if err != nil {
		return Workload{}, err
	}
	// The first n slots of a shuffled universe are a sample without
	// replacement; copy them before the reference is reordered.
	query := make([]int, n)
	copy(query, universe[:n])

	reference := universe
	if sortedReference {
		for i := range reference {
			reference[i] = i
		}
	} else {
		Shuffle(reference, rng)
	}

	return Workload{Query: query, Reference: reference, Sorted: sortedReference}, nil
}

// Summary counts the outcome of one match call.
type Summary struct {
	Matched int `yaml:"matched"`
	Missed  int `yaml:"missed"`
}

// Rate returns the fraction of query keys that matched, or 1 for an empty query.
func (s Summary) Rate() float64 {
	total := s.Matched + s.Missed
	if total == 0 {
		return 1
	}
	return float64(s.Matched) / float64(total)
}

// Verify checks the round-trip property reference[result[i]] == query[i]
// for every matched position and counts matches. A negative result is
// counted as a miss.
//
// Errors: ErrLengthMismatch, ErrRoundTrip (wrapped with the position).
func Verify(query, reference, result []int) (Summary, error) {
	if len(result) != len(query) {
		return Summary{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(result), len(query))
	}

	var s Summary
	for i, r := range result {
		if r < 0 {
			s.Missed++
			continue
		}
		if r >= len(reference) || reference[r] != query[i] {
			return s, fmt.Errorf("%w: position %d, index %d", ErrRoundTrip, i, r)
		}
		s.Matched++
	}
	return s, nil
}
