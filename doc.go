// Package argmatch is your toolkit for joining two arrays by key: for every
// element of a query sequence it returns the index of an equal element in a
// reference sequence, or -1 when there is none.
//
// 🚀 What is inside?
//
//	match/              — the matcher: sort a permutation of the reference,
//	                      binary-search every query key, translate back
//	internal/workload/  — deterministic synthetic workloads and result checks
//	internal/bench/     — timing harness with profiling and table/YAML reports
//	cmd/matchbench/     — `matchbench N M` command-line driver
//
// ✨ Why choose argmatch?
//
//   - Handles unsorted inputs, duplicate keys and partial matches
//   - Never mutates caller data
//   - Scales to millions of keys; optional parallel search
//   - Generic: any cmp.Ordered key, or any type with a comparator
//
// Quick example:
//
//	idx := match.Match([]int{7, 3, 11}, []int{3, 5, 7}, false)
//	// idx == []int{2, 0, -1}
//
//	go get github.com/katalvlaran/argmatch/match
package argmatch
