package sortedcontainers

import "iter"

// sortedArray is the concrete SortedArray[T] implementation: a thin
// contract layered over a twoLevelList.
type sortedArray[T any] struct {
	core *twoLevelList[T]
}

// NewSortedArray returns an empty SortedArray ordered by cmp.
func NewSortedArray[T any](cmp Comparator[T]) SortedArray[T] {
	if cmp == nil {
		panic("sortedcontainers: NewSortedArray: comparator must not be nil")
	}
	return &sortedArray[T]{core: newTwoLevelList[T](cmp, 0)}
}

// NewSortedArrayOrdered returns an empty SortedArray using T's natural
// order.
func NewSortedArrayOrdered[T Ordered]() SortedArray[T] {
	return NewSortedArray[T](CompareFunc[T]())
}

// NewSortedArrayWithLoadFactor is like NewSortedArray but overrides the
// sublist load factor (must be >= 4).
func NewSortedArrayWithLoadFactor[T any](cmp Comparator[T], loadFactor int) SortedArray[T] {
	if cmp == nil {
		panic("sortedcontainers: NewSortedArrayWithLoadFactor: comparator must not be nil")
	}
	return &sortedArray[T]{core: newTwoLevelList[T](cmp, loadFactor)}
}

// NewSortedArrayFrom returns a SortedArray bulk-loaded from values.
func NewSortedArrayFrom[T any](cmp Comparator[T], values ...T) SortedArray[T] {
	sa := NewSortedArray[T](cmp).(*sortedArray[T])
	sa.core.update(values)
	return sa
}

func (s *sortedArray[T]) Length() int { return s.core.length() }
func (s *sortedArray[T]) Clear()      { s.core.clear() }

func (s *sortedArray[T]) ToSlice() []T { return s.core.flatten() }

func (s *sortedArray[T]) String() string {
	return formatCollection("SortedArray", s.Seq())
}

func (s *sortedArray[T]) Seq() iter.Seq[T] {
	return s.core.iterateRange(0, s.core.ln, false)
}

func (s *sortedArray[T]) Reversed() iter.Seq[T] {
	return s.core.iterateRange(0, s.core.ln, true)
}

func (s *sortedArray[T]) ForEach(action func(value T) bool) {
	for v := range s.Seq() {
		if !action(v) {
			return
		}
	}
}

func (s *sortedArray[T]) Add(value T) { s.core.add(value) }

func (s *sortedArray[T]) Update(values ...T) { s.core.update(values) }

func (s *sortedArray[T]) UpdateSeq(seq iter.Seq[T]) {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	s.core.update(values)
}

func (s *sortedArray[T]) Delete(value T) bool { return s.core.delete(value) }

func (s *sortedArray[T]) DeleteAt(rank int) { s.core.deleteAt(rank) }

func (s *sortedArray[T]) DeleteSlice(start, end int) { s.core.deleteSlice(start, end) }

func (s *sortedArray[T]) Pop(rank int) (T, bool) { return s.core.pop(rank) }

func (s *sortedArray[T]) At(rank int) (T, bool) { return s.core.at(rank) }

func (s *sortedArray[T]) Slice(start, end int) []T { return s.core.slice(start, end) }

func (s *sortedArray[T]) IndexOf(value T, start, end int) int {
	return s.core.indexOf(value, start, end)
}

func (s *sortedArray[T]) Includes(value T) bool { return s.core.has(value) }

func (s *sortedArray[T]) BisectLeft(value T) int { return s.core.bisectLeft(value) }

func (s *sortedArray[T]) BisectRight(value T) int { return s.core.bisectRight(value) }

func (s *sortedArray[T]) Count(value T) int { return s.core.count(value) }

func (s *sortedArray[T]) IRange(minVal, maxVal *T, inclMin, inclMax, reverse bool) iter.Seq[T] {
	return s.core.irange(minVal, maxVal, inclMin, inclMax, reverse)
}

func (s *sortedArray[T]) ISlice(start, end int, reverse bool) iter.Seq[T] {
	return s.core.iterateRange(start, end, reverse)
}

func (s *sortedArray[T]) Concat(other SortedArray[T]) SortedArray[T] {
	out := &sortedArray[T]{core: newTwoLevelList[T](s.core.cmp, s.core.loadFactor)}
	combined := append(s.core.flatten(), other.ToSlice()...)
	out.core.update(combined)
	return out
}

func (s *sortedArray[T]) Clone() SortedArray[T] {
	return &sortedArray[T]{core: s.core.clone()}
}
