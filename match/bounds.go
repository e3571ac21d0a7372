package match

// lowerBound returns the first index in keys whose element is >= k, or
// len(keys) if there is none.
func lowerBound[K any](keys []K, k K, compare func(a, b K) int) int {
	i, j := 0, len(keys)
	for i < j {
		h := int(uint(i+j) >> 1) // avoid overflow when computing h
		if compare(keys[h], k) < 0 {
			i = h + 1
		} else {
			j = h
		}
	}
	return i
}

// upperBound returns the first index in keys[lo:] whose element is > k,
// or len(keys) if there is none. lo must come from lowerBound for the same
// key; everything before it is already known to be < k.
func upperBound[K any](keys []K, lo int, k K, compare func(a, b K) int) int {
	i, j := lo, len(keys)
	for i < j {
		h := int(uint(i+j) >> 1)
		if compare(keys[h], k) <= 0 {
			i = h + 1
		} else {
			j = h
		}
	}
	return i
}
