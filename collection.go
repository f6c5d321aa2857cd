package sortedcontainers

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// =========================
// Core Interfaces
// =========================

// Collection is the base interface of SortedArray and SortedSet. SortedMap
// does not embed it and has no ToSlice method.
type Collection[T any] interface {
	// Length returns the number of elements.
	Length() int
	// Clear removes all elements from the collection.
	Clear()
	// ToSlice returns a flat copy of all elements in ascending order.
	ToSlice() []T
	// String returns a string representation of the collection.
	String() string
}

// Iterable represents a collection that can be iterated in ascending order
// and reversed.
type Iterable[T any] interface {
	// Seq returns a sequence for use with for-range:
	//
	//	for v := range c.Seq() { ... }
	Seq() iter.Seq[T]
	// Reversed returns a sequence iterating in descending order.
	Reversed() iter.Seq[T]
	// ForEach applies action to each element in ascending order. Iteration
	// stops early if action returns false.
	ForEach(action func(value T) bool)
}

// SortedArray is an ordered multiset: a sorted sequence of T that permits
// duplicate elements, addressable both by value (via the comparator) and by
// rank (0-based position in iteration order).
type SortedArray[T any] interface {
	Collection[T]
	Iterable[T]

	// Add inserts value, preserving sorted order. Duplicates are permitted.
	Add(value T)
	// Update bulk-inserts values, preserving sorted order.
	Update(values ...T)
	// UpdateSeq bulk-inserts values from a sequence.
	UpdateSeq(seq iter.Seq[T])

	// Delete removes one occurrence of value if present. Returns whether a
	// value was removed.
	Delete(value T) bool
	// DeleteAt removes the element at rank. Negative ranks count from the
	// end. Out-of-range ranks are a silent no-op.
	DeleteAt(rank int)
	// DeleteSlice removes elements with ranks in [start, end).
	DeleteSlice(start, end int)
	// Pop removes and returns the element at rank. Negative ranks count from
	// the end (-1 is the last element). Returns
	// (zero, false) if the container is empty or rank is out of range.
	Pop(rank int) (T, bool)

	// At returns the element at rank, or (zero, false) if out of range.
	At(rank int) (T, bool)
	// Slice returns a flat copy of elements with ranks in [start, end).
	Slice(start, end int) []T
	// IndexOf returns the first rank >= start, < end at which value appears,
	// or -1.
	IndexOf(value T, start, end int) int
	// Includes reports whether value appears in the container.
	Includes(value T) bool
	// BisectLeft returns the leftmost rank at which value could be inserted
	// while keeping the container sorted.
	BisectLeft(value T) int
	// BisectRight returns the rightmost such rank.
	BisectRight(value T) int
	// Count returns the number of occurrences of value.
	Count(value T) int

	// IRange returns a sequence over elements within the comparator range
	// [minVal, maxVal] (bounds inclusive/exclusive per incl flags). A nil
	// bound is unbounded on that side.
	IRange(minVal, maxVal *T, inclMin, inclMax, reverse bool) iter.Seq[T]
	// ISlice returns a sequence over ranks [start, end), optionally
	// reversed.
	ISlice(start, end int, reverse bool) iter.Seq[T]

	// Concat returns a new SortedArray built from this container's elements
	// concatenated with other, using the same comparator.
	Concat(other SortedArray[T]) SortedArray[T]
	// Clone returns a deep structural copy.
	Clone() SortedArray[T]
}

// SortedSet is a SortedArray that additionally enforces uniqueness and
// provides set algebra.
type SortedSet[T any] interface {
	Collection[T]
	Iterable[T]

	Add(value T) bool
	Update(values ...T)
	UpdateSeq(seq iter.Seq[T])

	Delete(value T) bool
	DeleteAt(rank int)
	Pop(rank int) (T, bool)

	At(rank int) (T, bool)
	IndexOf(value T) int
	Has(value T) bool
	BisectLeft(value T) int
	BisectRight(value T) int
	Count(value T) int

	IRange(minVal, maxVal *T, inclMin, inclMax, reverse bool) iter.Seq[T]
	ISlice(start, end int, reverse bool) iter.Seq[T]

	// Union returns a new set containing s ∪ other.
	Union(other SortedSet[T]) SortedSet[T]
	// Intersection returns a new set containing s ∩ other.
	Intersection(other SortedSet[T]) SortedSet[T]
	// Difference returns a new set containing s − other.
	Difference(other SortedSet[T]) SortedSet[T]
	// SymmetricDifference returns a new set containing (s−other) ∪ (other−s).
	SymmetricDifference(other SortedSet[T]) SortedSet[T]
	// IntersectionUpdate mutates s to s ∩ other.
	IntersectionUpdate(other SortedSet[T])
	// DifferenceUpdate mutates s to s − other.
	DifferenceUpdate(other SortedSet[T])
	// SymmetricDifferenceUpdate mutates s to (s−other) ∪ (other−s).
	SymmetricDifferenceUpdate(other SortedSet[T])

	// IsSubsetOf reports whether every element of s is in other.
	IsSubsetOf(other SortedSet[T]) bool
	// IsSupersetOf reports whether s contains every element of other.
	IsSupersetOf(other SortedSet[T]) bool
	// IsDisjointFrom reports whether s and other share no elements.
	IsDisjointFrom(other SortedSet[T]) bool

	Clone() SortedSet[T]
}

// SortedMap is an ordered key→value mapping. Keys are compared exclusively
// through the map's Comparator[K]; two keys that compare equal are the same
// key, even if they are not otherwise identical.
type SortedMap[K, V any] interface {
	// Length returns the number of entries.
	Length() int
	// Clear removes all entries.
	Clear()
	// String returns a string representation.
	String() string

	// Set associates value with key, overwriting any existing value. If key
	// was already present the stored key object is not replaced.
	Set(key K, value V)
	// Get returns (value, true) if key is present, else (zero, false).
	Get(key K) (V, bool)
	// GetOrDefault returns the value for key, or defaultValue if absent.
	GetOrDefault(key K, defaultValue V) V
	// Has reports whether key is present.
	Has(key K) bool
	// Delete removes key. Returns whether it was present.
	Delete(key K) bool
	// Upsert returns the existing value for key, inserting defaultValue
	// first if key is absent.
	Upsert(key K, defaultValue V) V
	// PopKey removes key and returns (value, true), or (defaultValue, false)
	// if absent.
	PopKey(key K, defaultValue V) (V, bool)
	// PopEntry removes and returns the entry at rank. Negative ranks count
	// from the end (-1 is the last entry).
	PopEntry(rank int) (K, V, bool)
	// EntryAt returns the entry at rank without removing it. Negative ranks
	// count from the end (-1 is the last entry).
	EntryAt(rank int) (K, V, bool)
	// At returns the entry at rank without removing it. Alias of EntryAt
	// retained for symmetry with SortedArray/SortedSet.
	At(rank int) (K, V, bool)

	// Keys returns a sequence of keys in ascending order.
	Keys() iter.Seq[K]
	// Values returns a sequence of values in key order.
	Values() iter.Seq[V]
	// Entries returns a sequence of (key, value) pairs in ascending key
	// order.
	Entries() iter.Seq2[K, V]
	// ForEach applies action to each entry in ascending key order.
	ForEach(action func(key K, value V) bool)

	BisectLeft(key K) int
	BisectRight(key K) int
	IndexOf(key K) int
	IRange(minKey, maxKey *K, inclMin, inclMax, reverse bool) iter.Seq2[K, V]
	ISlice(start, end int, reverse bool) iter.Seq2[K, V]

	Clone() SortedMap[K, V]
}

// ==========================
// Common String() formatters
// ==========================

// formatCollection renders a collection in the form: name{a, b, c}
// The provided seq controls iteration ordering.
func formatCollection[T any](name string, seq iter.Seq[T]) string {
	var b strings.Builder
	b.WriteString(cmp.Or(name, "collection"))
	b.WriteString("{")
	first := true
	for v := range seq {
		if !first {
			b.WriteString(", ")
		}
		first = false
		_, _ = fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("}")
	return b.String()
}

// formatMap renders a map in the form: name{k:v, ...}
// The provided seq controls iteration ordering.
func formatMap[K, V any](name string, seq iter.Seq2[K, V]) string {
	var b strings.Builder
	b.WriteString(cmp.Or(name, "map"))
	b.WriteString("{")
	first := true
	seq(func(k K, v V) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		_, _ = fmt.Fprintf(&b, "%v:%v", k, v)
		return true
	})
	b.WriteString("}")
	return b.String()
}
