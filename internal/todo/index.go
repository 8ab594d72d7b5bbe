package todo

// Index normalization. Positions supplied by callers are 1-based; list
// storage is 0-based.

// ValidateIndex converts a 1-based position into a storage index for a list
// of length n. It reports false when the position is out of range.
func ValidateIndex(n, pos int) (int, bool) {
	idx := pos - 1
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// ClampIndex converts a 1-based position into a storage index for a list of
// length n, clamping it into [0, n-1]. An empty list yields 0.
func ClampIndex(n, pos int) int {
	if n == 0 {
		return 0
	}
	switch {
	case pos < 1:
		return 0
	case pos > n:
		return n - 1
	default:
		return pos - 1
	}
}

// WrapIndex moves a 0-based index by shift slots around a list of length n.
// The result is always in [0, n), also for negative shifts. An empty list
// yields 0.
func WrapIndex(n, idx, shift int) int {
	if n == 0 {
		return 0
	}
	shift %= n
	return ((idx+shift)%n + n) % n
}
