package workload

import "errors"

var (
	// ErrNegativeSize indicates a negative query or reference length.
	ErrNegativeSize = errors.New("workload: size must be non-negative")

	// ErrQueryTooLarge indicates more query keys than the universe can
	// supply without replacement.
	ErrQueryTooLarge = errors.New("workload: query larger than reference universe")

	// ErrLengthMismatch indicates a result whose length differs from the query.
	ErrLengthMismatch = errors.New("workload: result length differs from query length")

	// ErrRoundTrip indicates a result index whose reference key differs
	// from the query key, or that lies outside the reference.
	ErrRoundTrip = errors.New("workload: matched index does not hold the query key")
)
