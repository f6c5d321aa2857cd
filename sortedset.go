package sortedcontainers

import "iter"

// sortedSet is the concrete SortedSet[T] implementation: a twoLevelList
// with insertion deduplicated by cmp, plus set algebra over other
// SortedSet[T] values (of any concrete type sharing a compatible order).
type sortedSet[T any] struct {
	core *twoLevelList[T]
}

// NewSortedSet returns an empty SortedSet ordered by cmp.
func NewSortedSet[T any](cmp Comparator[T]) SortedSet[T] {
	if cmp == nil {
		panic("sortedcontainers: NewSortedSet: comparator must not be nil")
	}
	return &sortedSet[T]{core: newTwoLevelList[T](cmp, 0)}
}

// NewSortedSetOrdered returns an empty SortedSet using T's natural order.
func NewSortedSetOrdered[T Ordered]() SortedSet[T] {
	return NewSortedSet[T](CompareFunc[T]())
}

// NewSortedSetWithLoadFactor is like NewSortedSet but overrides the
// sublist load factor (must be >= 4).
func NewSortedSetWithLoadFactor[T any](cmp Comparator[T], loadFactor int) SortedSet[T] {
	if cmp == nil {
		panic("sortedcontainers: NewSortedSetWithLoadFactor: comparator must not be nil")
	}
	return &sortedSet[T]{core: newTwoLevelList[T](cmp, loadFactor)}
}

// NewSortedSetFrom returns a SortedSet bulk-loaded from values, deduplicated.
func NewSortedSetFrom[T any](cmp Comparator[T], values ...T) SortedSet[T] {
	ss := NewSortedSet[T](cmp).(*sortedSet[T])
	ss.core.updateUnique(values)
	return ss
}

func newSortedSetLike[T any](s *sortedSet[T]) *sortedSet[T] {
	return &sortedSet[T]{core: newTwoLevelList[T](s.core.cmp, s.core.loadFactor)}
}

func (s *sortedSet[T]) Length() int { return s.core.length() }
func (s *sortedSet[T]) Clear()      { s.core.clear() }

func (s *sortedSet[T]) ToSlice() []T { return s.core.flatten() }

func (s *sortedSet[T]) String() string {
	return formatCollection("SortedSet", s.Seq())
}

func (s *sortedSet[T]) Seq() iter.Seq[T] {
	return s.core.iterateRange(0, s.core.ln, false)
}

func (s *sortedSet[T]) Reversed() iter.Seq[T] {
	return s.core.iterateRange(0, s.core.ln, true)
}

func (s *sortedSet[T]) ForEach(action func(value T) bool) {
	for v := range s.Seq() {
		if !action(v) {
			return
		}
	}
}

func (s *sortedSet[T]) Add(value T) bool { return s.core.addIfAbsent(value) }

func (s *sortedSet[T]) Update(values ...T) { s.core.updateUnique(values) }

func (s *sortedSet[T]) UpdateSeq(seq iter.Seq[T]) {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	s.core.updateUnique(values)
}

func (s *sortedSet[T]) Delete(value T) bool { return s.core.delete(value) }

func (s *sortedSet[T]) DeleteAt(rank int) { s.core.deleteAt(rank) }

func (s *sortedSet[T]) Pop(rank int) (T, bool) { return s.core.pop(rank) }

func (s *sortedSet[T]) At(rank int) (T, bool) { return s.core.at(rank) }

func (s *sortedSet[T]) IndexOf(value T) int { return s.core.indexOf(value, 0, s.core.ln) }

func (s *sortedSet[T]) Has(value T) bool { return s.core.has(value) }

func (s *sortedSet[T]) BisectLeft(value T) int { return s.core.bisectLeft(value) }

func (s *sortedSet[T]) BisectRight(value T) int { return s.core.bisectRight(value) }

func (s *sortedSet[T]) Count(value T) int { return s.core.count(value) }

func (s *sortedSet[T]) IRange(minVal, maxVal *T, inclMin, inclMax, reverse bool) iter.Seq[T] {
	return s.core.irange(minVal, maxVal, inclMin, inclMax, reverse)
}

func (s *sortedSet[T]) ISlice(start, end int, reverse bool) iter.Seq[T] {
	return s.core.iterateRange(start, end, reverse)
}

func (s *sortedSet[T]) Union(other SortedSet[T]) SortedSet[T] {
	out := newSortedSetLike(s)
	merged := dedupSorted(append(s.core.flatten(), other.ToSlice()...), s.core.cmp)
	out.core.bulkLoad(merged, true)
	return out
}

func (s *sortedSet[T]) Intersection(other SortedSet[T]) SortedSet[T] {
	out := newSortedSetLike(s)
	var small, large SortedSet[T] = s, other
	if other.Length() < s.Length() {
		small, large = other, s
	}
	var result []T
	small.ForEach(func(v T) bool {
		if large.Has(v) {
			result = append(result, v)
		}
		return true
	})
	out.core.bulkLoad(result, true)
	return out
}

func (s *sortedSet[T]) Difference(other SortedSet[T]) SortedSet[T] {
	if other.Length() < s.Length()/4 {
		out := &sortedSet[T]{core: s.core.clone()}
		other.ForEach(func(v T) bool {
			out.core.delete(v)
			return true
		})
		return out
	}
	out := newSortedSetLike(s)
	var result []T
	s.ForEach(func(v T) bool {
		if !other.Has(v) {
			result = append(result, v)
		}
		return true
	})
	out.core.bulkLoad(result, true)
	return out
}

func (s *sortedSet[T]) SymmetricDifference(other SortedSet[T]) SortedSet[T] {
	out := newSortedSetLike(s)
	var left, right []T
	s.ForEach(func(v T) bool {
		if !other.Has(v) {
			left = append(left, v)
		}
		return true
	})
	other.ForEach(func(v T) bool {
		if !s.Has(v) {
			right = append(right, v)
		}
		return true
	})
	merged := append(left, right...)
	out.core.bulkLoad(merged, false)
	return out
}

func (s *sortedSet[T]) IntersectionUpdate(other SortedSet[T]) {
	s.core = s.Intersection(other).(*sortedSet[T]).core
}

func (s *sortedSet[T]) DifferenceUpdate(other SortedSet[T]) {
	if other.Length() < s.Length()/4 {
		other.ForEach(func(v T) bool {
			s.core.delete(v)
			return true
		})
		return
	}
	var result []T
	s.ForEach(func(v T) bool {
		if !other.Has(v) {
			result = append(result, v)
		}
		return true
	})
	s.core.bulkLoad(result, true)
}

func (s *sortedSet[T]) SymmetricDifferenceUpdate(other SortedSet[T]) {
	s.core = s.SymmetricDifference(other).(*sortedSet[T]).core
}

func (s *sortedSet[T]) IsSubsetOf(other SortedSet[T]) bool {
	ok := true
	s.ForEach(func(v T) bool {
		if !other.Has(v) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

func (s *sortedSet[T]) IsSupersetOf(other SortedSet[T]) bool {
	ok := true
	other.ForEach(func(v T) bool {
		if !s.Has(v) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

func (s *sortedSet[T]) IsDisjointFrom(other SortedSet[T]) bool {
	disjoint := true
	other.ForEach(func(v T) bool {
		if s.Has(v) {
			disjoint = false
			return false
		}
		return true
	})
	return disjoint
}

func (s *sortedSet[T]) Clone() SortedSet[T] {
	return &sortedSet[T]{core: s.core.clone()}
}
