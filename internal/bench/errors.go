package bench

import "errors"

var (
	// ErrBadConfig wraps every configuration validation failure.
	ErrBadConfig = errors.New("bench: invalid configuration")

	// ErrIncomplete is returned when an all-matched workload did not match
	// every query key.
	ErrIncomplete = errors.New("bench: not every query key matched")
)
