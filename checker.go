package sortedcontainers

import "fmt"

// check validates the structural invariants of a twoLevelList: sublists
// individually sorted, sorted end-to-end across sublist boundaries, maxes
// in sync with the last element of each sublist, load-factor bounds
// respected (the lower bound is not applied to the last sublist), the length counter in sync
// with the sum of sublist lengths, and — if built — the positional index
// consistent with the sublists it summarizes.
//
// It is a diagnostic used by tests, not a production-path validator: a
// failure here means a bug in this package, not a caller error.
func (t *twoLevelList[T]) check() error {
	if t.loadFactor < minLoadFactor {
		return fmt.Errorf("sortedcontainers: load factor %d below minimum %d", t.loadFactor, minLoadFactor)
	}
	if len(t.maxes) != len(t.lists) {
		return fmt.Errorf("sortedcontainers: len(maxes)=%d != len(lists)=%d", len(t.maxes), len(t.lists))
	}

	total := 0
	lengths := make([]int, len(t.lists))
	for i, sub := range t.lists {
		lengths[i] = len(sub)
		total += len(sub)

		for j := 1; j < len(sub); j++ {
			if t.cmp(sub[j-1], sub[j]) > 0 {
				return fmt.Errorf("sortedcontainers: lists[%d] not sorted at offset %d", i, j)
			}
		}
		if i+1 < len(t.lists) {
			next := t.lists[i+1]
			if len(sub) > 0 && len(next) > 0 && t.cmp(sub[len(sub)-1], next[0]) > 0 {
				return fmt.Errorf("sortedcontainers: lists[%d] and lists[%d] out of order at the boundary", i, i+1)
			}
		}
		if len(sub) > 0 && t.cmp(t.maxes[i], sub[len(sub)-1]) != 0 {
			return fmt.Errorf("sortedcontainers: maxes[%d] does not match the last element of lists[%d]", i, i)
		}
		if len(sub) > 2*t.loadFactor {
			return fmt.Errorf("sortedcontainers: lists[%d] has %d elements, exceeding 2*loadFactor", i, len(sub))
		}
		if i != len(t.lists)-1 && len(sub) < t.loadFactor/2 {
			return fmt.Errorf("sortedcontainers: lists[%d] has %d elements, below loadFactor/2", i, len(sub))
		}
	}
	if total != t.ln {
		return fmt.Errorf("sortedcontainers: len=%d != sum of sublist lengths %d", t.ln, total)
	}
	if t.idx.built() {
		if err := t.idx.check(lengths); err != nil {
			return err
		}
	}
	return nil
}

// checkUnique additionally validates the SortedSet invariant that adjacent
// elements across the whole container are never equal under cmp (strict
// increase), on top of every twoLevelList invariant.
func (t *twoLevelList[T]) checkUnique() error {
	if err := t.check(); err != nil {
		return err
	}
	var prev *T
	for _, sub := range t.lists {
		for i := range sub {
			if prev != nil && t.cmp(*prev, sub[i]) >= 0 {
				return fmt.Errorf("sortedcontainers: duplicate or out-of-order element %v", sub[i])
			}
			v := sub[i]
			prev = &v
		}
	}
	return nil
}
