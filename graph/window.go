package graph

// ReverseComplementWindow returns the reverse complement of an oriented
// node sequence: the handles in reverse order, each flipped.
func ReverseComplementWindow(window []Handle) []Handle {
	result := make([]Handle, len(window))
	for i, h := range window {
		result[len(window)-1-i] = h.Flip()
	}
	return result
}

// CompareWindows orders handle sequences lexicographically by packed handle
// value. It returns a negative number, zero or a positive number when a is
// smaller than, equal to or greater than b.
func CompareWindows(a, b []Handle) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// CanonicalWindow returns the lexicographically smaller of the window and
// its reverse complement, which makes the window key orientation symmetric.
// The input slice is not modified.
func CanonicalWindow(window []Handle) []Handle {
	reverse := ReverseComplementWindow(window)
	if CompareWindows(window, reverse) <= 0 {
		result := make([]Handle, len(window))
		copy(result, window)
		return result
	}
	return reverse
}

// ForwardWindow forms the canonical window of the last k-1 handles of the
// path extended by the successor.
func ForwardWindow(path []Handle, successor Handle, k int) []Handle {
	window := make([]Handle, 0, k)
	window = append(window, path[len(path)-(k-1):]...)
	window = append(window, successor)
	return canonicalInPlace(window)
}

// BackwardWindow forms the canonical window of the predecessor followed by
// the first k-1 handles of the path.
func BackwardWindow(path []Handle, predecessor Handle, k int) []Handle {
	window := make([]Handle, 0, k)
	window = append(window, predecessor)
	window = append(window, path[:k-1]...)
	return canonicalInPlace(window)
}

func canonicalInPlace(window []Handle) []Handle {
	reverse := ReverseComplementWindow(window)
	if CompareWindows(window, reverse) <= 0 {
		return window
	}
	return reverse
}
