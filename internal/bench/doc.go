// Package bench is the timing harness around the matcher.
//
// It synthesizes an all-matched workload (N keys sampled without replacement
// from a shuffled universe of M keys), times one or more match calls, checks
// that every key was found, and renders a report. Optional CPU and heap
// profiles are written with runtime/pprof.
package bench
