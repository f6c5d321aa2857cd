package sortedcontainers

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
)

// ==========================
// Serialization Helpers
// ==========================

// serializableEntry is used for serializing maps with non-comparable keys.
type serializableEntry[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// serializableMap wraps map entries for JSON serialization. The comparator
// is never part of the wire format; it must be supplied again on unmarshal.
type serializableMap[K, V any] struct {
	Entries []serializableEntry[K, V] `json:"entries"`
}

// MarshalJSON encodes a SortedArray as a flat JSON array in ascending order.
func (s *sortedArray[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.core.flatten())
}

// MarshalJSON encodes a SortedSet as a flat JSON array in ascending order.
func (s *sortedSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.core.flatten())
}

// MarshalJSON encodes a SortedMap as {"entries":[{"key":...,"value":...},...]}
// in ascending key order.
func (s *sortedMap[K, V]) MarshalJSON() ([]byte, error) {
	wrapped := serializableMap[K, V]{Entries: make([]serializableEntry[K, V], 0, s.core.ln)}
	for k, v := range s.core.iterateRange(0, s.core.ln, false) {
		wrapped.Entries = append(wrapped.Entries, serializableEntry[K, V]{Key: k, Value: v})
	}
	return json.Marshal(wrapped)
}

// GobEncode encodes a SortedArray's elements via gob.
func (s *sortedArray[T]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s.core.flatten()); err != nil {
		return nil, fmt.Errorf("sortedcontainers: gob encode SortedArray: %w", err)
	}
	return buf.Bytes(), nil
}

// GobEncode encodes a SortedSet's elements via gob.
func (s *sortedSet[T]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s.core.flatten()); err != nil {
		return nil, fmt.Errorf("sortedcontainers: gob encode SortedSet: %w", err)
	}
	return buf.Bytes(), nil
}

// GobEncode encodes a SortedMap's entries via gob.
func (s *sortedMap[K, V]) GobEncode() ([]byte, error) {
	entries := make([]serializableEntry[K, V], 0, s.core.ln)
	for k, v := range s.core.iterateRange(0, s.core.ln, false) {
		entries = append(entries, serializableEntry[K, V]{Key: k, Value: v})
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entries); err != nil {
		return nil, fmt.Errorf("sortedcontainers: gob encode SortedMap: %w", err)
	}
	return buf.Bytes(), nil
}

// ==========================
// Unmarshal helpers
//
// A comparator is never part of the wire format — it governs runtime
// behavior, not data — so every Unmarshal helper requires one explicitly,
// with an Ordered variant supplying the natural-order comparator for
// callers that don't need a custom one.
// ==========================

// UnmarshalSortedArrayJSON decodes a flat JSON array into a new SortedArray
// ordered by comparator.
func UnmarshalSortedArrayJSON[T any](data []byte, comparator Comparator[T]) (SortedArray[T], error) {
	if comparator == nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedArray: comparator required")
	}
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedArray: %w", err)
	}
	sa := NewSortedArray(comparator)
	sa.Update(elements...)
	return sa, nil
}

// UnmarshalSortedArrayOrderedJSON is UnmarshalSortedArrayJSON for Ordered
// element types, using the natural order.
func UnmarshalSortedArrayOrderedJSON[T Ordered](data []byte) (SortedArray[T], error) {
	return UnmarshalSortedArrayJSON(data, CompareFunc[T]())
}

// UnmarshalSortedSetJSON decodes a flat JSON array into a new SortedSet
// ordered by comparator, discarding duplicates.
func UnmarshalSortedSetJSON[T any](data []byte, comparator Comparator[T]) (SortedSet[T], error) {
	if comparator == nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedSet: comparator required")
	}
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedSet: %w", err)
	}
	ss := NewSortedSet(comparator)
	ss.Update(elements...)
	return ss, nil
}

// UnmarshalSortedSetOrderedJSON is UnmarshalSortedSetJSON for Ordered
// element types, using the natural order.
func UnmarshalSortedSetOrderedJSON[T Ordered](data []byte) (SortedSet[T], error) {
	return UnmarshalSortedSetJSON(data, CompareFunc[T]())
}

// UnmarshalSortedMapJSON decodes a {"entries":[...]} document into a new
// SortedMap with keys ordered by comparator.
func UnmarshalSortedMapJSON[K, V any](data []byte, comparator Comparator[K]) (SortedMap[K, V], error) {
	if comparator == nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedMap: comparator required")
	}
	var wrapped serializableMap[K, V]
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedMap: %w", err)
	}
	m := NewSortedMap[K, V](comparator)
	for _, entry := range wrapped.Entries {
		m.Set(entry.Key, entry.Value)
	}
	return m, nil
}

// UnmarshalSortedMapOrderedJSON is UnmarshalSortedMapJSON for Ordered key
// types, using the natural order.
func UnmarshalSortedMapOrderedJSON[K Ordered, V any](data []byte) (SortedMap[K, V], error) {
	return UnmarshalSortedMapJSON[K, V](data, CompareFunc[K]())
}

// UnmarshalSortedArrayGob decodes a gob-encoded element slice into a new
// SortedArray ordered by comparator.
func UnmarshalSortedArrayGob[T any](data []byte, comparator Comparator[T]) (SortedArray[T], error) {
	if comparator == nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedArray gob: comparator required")
	}
	var elements []T
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&elements); err != nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedArray gob: %w", err)
	}
	sa := NewSortedArray(comparator)
	sa.Update(elements...)
	return sa, nil
}

// UnmarshalSortedArrayOrderedGob is UnmarshalSortedArrayGob for Ordered
// element types, using the natural order.
func UnmarshalSortedArrayOrderedGob[T Ordered](data []byte) (SortedArray[T], error) {
	return UnmarshalSortedArrayGob(data, CompareFunc[T]())
}

// UnmarshalSortedSetGob decodes a gob-encoded element slice into a new
// SortedSet ordered by comparator, discarding duplicates.
func UnmarshalSortedSetGob[T any](data []byte, comparator Comparator[T]) (SortedSet[T], error) {
	if comparator == nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedSet gob: comparator required")
	}
	var elements []T
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&elements); err != nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedSet gob: %w", err)
	}
	ss := NewSortedSet(comparator)
	ss.Update(elements...)
	return ss, nil
}

// UnmarshalSortedSetOrderedGob is UnmarshalSortedSetGob for Ordered element
// types, using the natural order.
func UnmarshalSortedSetOrderedGob[T Ordered](data []byte) (SortedSet[T], error) {
	return UnmarshalSortedSetGob(data, CompareFunc[T]())
}

// UnmarshalSortedMapGob decodes a gob-encoded entry slice into a new
// SortedMap with keys ordered by comparator.
func UnmarshalSortedMapGob[K, V any](data []byte, comparator Comparator[K]) (SortedMap[K, V], error) {
	if comparator == nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedMap gob: comparator required")
	}
	var entries []serializableEntry[K, V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("sortedcontainers: unmarshal SortedMap gob: %w", err)
	}
	m := NewSortedMap[K, V](comparator)
	for _, entry := range entries {
		m.Set(entry.Key, entry.Value)
	}
	return m, nil
}

// UnmarshalSortedMapOrderedGob is UnmarshalSortedMapGob for Ordered key
// types, using the natural order.
func UnmarshalSortedMapOrderedGob[K Ordered, V any](data []byte) (SortedMap[K, V], error) {
	return UnmarshalSortedMapGob[K, V](data, CompareFunc[K]())
}
