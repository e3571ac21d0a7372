package match

// translate maps the equal range [lo, hi) of the sorted view to an index
// into the original reference. An empty range, including lo == len(keys),
// yields NoMatch.
func (v sortedView[K]) translate(lo, hi int) int {
	if hi <= lo {
		return NoMatch
	}
	if v.perm == nil {
		return lo
	}
	return v.perm[lo]
}

// search resolves every key of query against the view and stores the
// original-space index, or NoMatch, at the same position of out.
// len(out) must equal len(query).
func (v sortedView[K]) search(query []K, out []int, compare func(a, b K) int) {
	for i, k := range query {
		lo := lowerBound(v.keys, k, compare)
		hi := upperBound(v.keys, lo, k, compare)
		out[i] = v.translate(lo, hi)
	}
}
