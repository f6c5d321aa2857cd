package sortedcontainers

import "slices"

// BisectLeft returns the leftmost index i in [0, len(a)] such that
// cmp(a[i], x) >= 0 for all j >= i. Equivalently, the insertion point for x
// in a sorted slice a that keeps a sorted and places x before any existing
// equal element.
//
// cmp must be consistent with a total preorder over the lifetime of the
// call; a itself must already be sorted by cmp.
func BisectLeft[T any](a []T, x T, cmp Comparator[T]) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(a[mid], x) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// BisectRight returns the leftmost index i in [0, len(a)] such that
// cmp(x, a[i]) < 0 for all j >= i. It is the insertion point for x that
// keeps a sorted and places x after any existing equal element.
func BisectRight[T any](a []T, x T, cmp Comparator[T]) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(x, a[mid]) < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Insort inserts x into a sorted slice a at BisectRight(a, x, cmp),
// returning the (possibly reallocated) resulting slice.
func Insort[T any](a []T, x T, cmp Comparator[T]) []T {
	i := BisectRight(a, x, cmp)
	return slices.Insert(a, i, x)
}

// normalizeRange applies Python-style negative-index normalization and
// clamping to a [start, end) range over a sequence of length n. It reports
// ok=false when the resulting range is empty.
func normalizeRange(start, end, n int) (s, e int, ok bool) {
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end || start >= n || end <= 0 {
		return 0, 0, false
	}
	return start, end, true
}
