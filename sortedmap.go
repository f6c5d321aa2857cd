package sortedcontainers

import (
	"fmt"
	"iter"
	"slices"
)

// twoLevelMap is twoLevelList's sibling for SortedMap: it carries a payload
// slice-of-slices (vals) that mirrors keys' sublist shape element-for-
// element. Every structural operation that splits, merges, or reorders a
// keys sublist applies the identical operation to the matching vals
// sublist, so a key at (p, idx) always has its value at vals[p][idx].
type twoLevelMap[K, V any] struct {
	keys       [][]K
	vals       [][]V
	maxes      []K
	ln         int
	loadFactor int
	cmp        Comparator[K]
	idx        positionalIndex
	gen        uint64
}

func newTwoLevelMap[K, V any](cmp Comparator[K], loadFactor int) *twoLevelMap[K, V] {
	if cmp == nil {
		panic("sortedcontainers: comparator must not be nil")
	}
	if loadFactor == 0 {
		loadFactor = DefaultLoadFactor
	}
	if loadFactor < minLoadFactor {
		panic("sortedcontainers: load factor must be >= 4")
	}
	return &twoLevelMap[K, V]{cmp: cmp, loadFactor: loadFactor}
}

func (t *twoLevelMap[K, V]) length() int { return t.ln }

func (t *twoLevelMap[K, V]) clear() {
	t.gen++
	t.keys, t.vals, t.maxes = nil, nil, nil
	t.ln = 0
	t.idx = positionalIndex{}
}

// set inserts or overwrites key's value, reporting whether key was newly
// inserted. The stored key object is not replaced on overwrite.
func (t *twoLevelMap[K, V]) set(key K, value V) bool {
	t.gen++
	if len(t.keys) == 0 {
		t.keys = [][]K{{key}}
		t.vals = [][]V{{value}}
		t.maxes = []K{key}
		t.ln = 1
		return true
	}
	p := BisectLeft(t.maxes, key, t.cmp)
	appendToTail := p == len(t.maxes)
	if appendToTail {
		p--
	}
	idx := BisectLeft(t.keys[p], key, t.cmp)
	if idx < len(t.keys[p]) && t.cmp(t.keys[p][idx], key) == 0 {
		t.vals[p][idx] = value
		return false
	}
	if appendToTail {
		t.keys[p] = append(t.keys[p], key)
		t.vals[p] = append(t.vals[p], value)
		t.maxes[p] = key
	} else {
		t.keys[p] = slices.Insert(t.keys[p], idx, key)
		t.vals[p] = slices.Insert(t.vals[p], idx, value)
	}
	t.ln++
	t.expand(p)
	return true
}

func (t *twoLevelMap[K, V]) expand(p int) {
	keySub := t.keys[p]
	if len(keySub) > 2*t.loadFactor {
		mid := t.loadFactor
		keyHead := append([]K(nil), keySub[:mid]...)
		keyTail := append([]K(nil), keySub[mid:]...)
		valSub := t.vals[p]
		valHead := append([]V(nil), valSub[:mid]...)
		valTail := append([]V(nil), valSub[mid:]...)

		t.keys[p] = keyHead
		t.vals[p] = valHead
		t.maxes[p] = keyHead[len(keyHead)-1]
		t.keys = slices.Insert(t.keys, p+1, keyTail)
		t.vals = slices.Insert(t.vals, p+1, valTail)
		t.maxes = slices.Insert(t.maxes, p+1, keyTail[len(keyTail)-1])
		t.idx = positionalIndex{}
		return
	}
	if t.idx.built() {
		t.idx.adjust(p, 1)
	}
}

func (t *twoLevelMap[K, V]) get(key K) (V, bool) {
	var zero V
	if len(t.maxes) == 0 {
		return zero, false
	}
	p := BisectLeft(t.maxes, key, t.cmp)
	if p == len(t.maxes) {
		return zero, false
	}
	idx := BisectLeft(t.keys[p], key, t.cmp)
	if idx >= len(t.keys[p]) || t.cmp(t.keys[p][idx], key) != 0 {
		return zero, false
	}
	return t.vals[p][idx], true
}

func (t *twoLevelMap[K, V]) has(key K) bool {
	_, ok := t.get(key)
	return ok
}

func (t *twoLevelMap[K, V]) delete(key K) bool {
	if len(t.maxes) == 0 {
		return false
	}
	p := BisectLeft(t.maxes, key, t.cmp)
	if p == len(t.maxes) {
		return false
	}
	idx := BisectLeft(t.keys[p], key, t.cmp)
	if idx >= len(t.keys[p]) || t.cmp(t.keys[p][idx], key) != 0 {
		return false
	}
	t.deleteAtPos(p, idx)
	return true
}

func (t *twoLevelMap[K, V]) deleteAtPos(p, idx int) {
	t.gen++
	keySub := slices.Delete(t.keys[p], idx, idx+1)
	valSub := slices.Delete(t.vals[p], idx, idx+1)
	t.keys[p] = keySub
	t.vals[p] = valSub
	t.ln--

	switch {
	case len(keySub) > t.loadFactor/2:
		if len(keySub) > 0 {
			t.maxes[p] = keySub[len(keySub)-1]
		}
		if t.idx.built() {
			t.idx.adjust(p, -1)
		}
	case len(t.keys) > 1:
		var mergeAt int
		if p == 0 {
			mergedK := append(keySub, t.keys[1]...)
			mergedV := append(valSub, t.vals[1]...)
			t.keys[0] = mergedK
			t.vals[0] = mergedV
			t.keys = slices.Delete(t.keys, 1, 2)
			t.vals = slices.Delete(t.vals, 1, 2)
			t.maxes = slices.Delete(t.maxes, 1, 2)
			t.maxes[0] = mergedK[len(mergedK)-1]
			mergeAt = 0
		} else {
			mergedK := append(t.keys[p-1], keySub...)
			mergedV := append(t.vals[p-1], valSub...)
			t.keys[p-1] = mergedK
			t.vals[p-1] = mergedV
			t.keys = slices.Delete(t.keys, p, p+1)
			t.vals = slices.Delete(t.vals, p, p+1)
			t.maxes = slices.Delete(t.maxes, p, p+1)
			t.maxes[p-1] = mergedK[len(mergedK)-1]
			mergeAt = p - 1
		}
		t.idx = positionalIndex{}
		t.expand(mergeAt)
	case len(keySub) > 0:
		t.maxes[p] = keySub[len(keySub)-1]
		if t.idx.built() {
			t.idx.adjust(p, -1)
		}
	default:
		t.keys = slices.Delete(t.keys, p, p+1)
		t.vals = slices.Delete(t.vals, p, p+1)
		t.maxes = slices.Delete(t.maxes, p, p+1)
		t.idx = positionalIndex{}
	}
}

func (t *twoLevelMap[K, V]) posFromRank(rank int) (int, int) {
	if rank < len(t.keys[0]) {
		return 0, rank
	}
	last := len(t.keys) - 1
	lastLen := len(t.keys[last])
	if rank >= t.ln-lastLen {
		return last, rank - (t.ln - lastLen)
	}
	if !t.idx.built() {
		t.buildIndexFromKeys()
	}
	return t.idx.posFromRank(rank)
}

func (t *twoLevelMap[K, V]) rankFromPos(p, idx int) int {
	if p == 0 {
		return idx
	}
	if !t.idx.built() {
		t.buildIndexFromKeys()
	}
	return t.idx.rankFromPos(p, idx)
}

func (t *twoLevelMap[K, V]) buildIndexFromKeys() {
	lengths := make([]int, len(t.keys))
	for i, s := range t.keys {
		lengths[i] = len(s)
	}
	t.idx = buildPositionalIndex(lengths)
}

func (t *twoLevelMap[K, V]) entryAt(rank int) (K, V, bool) {
	var zk K
	var zv V
	if t.ln == 0 {
		return zk, zv, false
	}
	if rank < 0 {
		rank += t.ln
	}
	if rank < 0 || rank >= t.ln {
		return zk, zv, false
	}
	p, idx := t.posFromRank(rank)
	return t.keys[p][idx], t.vals[p][idx], true
}

func (t *twoLevelMap[K, V]) popEntry(rank int) (K, V, bool) {
	var zk K
	var zv V
	if t.ln == 0 {
		return zk, zv, false
	}
	if rank < 0 {
		rank += t.ln
	}
	if rank < 0 || rank >= t.ln {
		return zk, zv, false
	}
	p, idx := t.posFromRank(rank)
	k, v := t.keys[p][idx], t.vals[p][idx]
	t.deleteAtPos(p, idx)
	return k, v, true
}

func (t *twoLevelMap[K, V]) bisectLeft(key K) int {
	if len(t.maxes) == 0 {
		return 0
	}
	p := BisectLeft(t.maxes, key, t.cmp)
	if p == len(t.maxes) {
		return t.ln
	}
	idx := BisectLeft(t.keys[p], key, t.cmp)
	return t.rankFromPos(p, idx)
}

func (t *twoLevelMap[K, V]) bisectRight(key K) int {
	if len(t.maxes) == 0 {
		return 0
	}
	p := BisectRight(t.maxes, key, t.cmp)
	if p == len(t.maxes) {
		return t.ln
	}
	idx := BisectRight(t.keys[p], key, t.cmp)
	return t.rankFromPos(p, idx)
}

func (t *twoLevelMap[K, V]) indexOf(key K) int {
	lo := t.bisectLeft(key)
	hi := t.bisectRight(key)
	if lo >= hi {
		return -1
	}
	return lo
}

// iterateRange yields (key, value) pairs with ranks in [start, end),
// ascending or descending, as a fail-fast sequence.
func (t *twoLevelMap[K, V]) iterateRange(start, end int, reverse bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s, e, ok := normalizeRange(start, end, t.ln)
		if !ok {
			return
		}
		gen := t.gen
		if !reverse {
			p, idx := t.posFromRank(s)
			remaining := e - s
			for remaining > 0 {
				if gen != t.gen {
					panic("sortedcontainers: container modified during iteration")
				}
				keySub, valSub := t.keys[p], t.vals[p]
				for idx < len(keySub) && remaining > 0 {
					if gen != t.gen {
						panic("sortedcontainers: container modified during iteration")
					}
					if !yield(keySub[idx], valSub[idx]) {
						return
					}
					idx++
					remaining--
				}
				p++
				idx = 0
			}
			return
		}
		p, idx := t.posFromRank(e - 1)
		remaining := e - s
		for remaining > 0 {
			if gen != t.gen {
				panic("sortedcontainers: container modified during iteration")
			}
			keySub, valSub := t.keys[p], t.vals[p]
			for idx >= 0 && remaining > 0 {
				if gen != t.gen {
					panic("sortedcontainers: container modified during iteration")
				}
				if !yield(keySub[idx], valSub[idx]) {
					return
				}
				idx--
				remaining--
			}
			p--
			if p >= 0 {
				idx = len(t.keys[p]) - 1
			}
		}
	}
}

func (t *twoLevelMap[K, V]) irange(minKey, maxKey *K, inclMin, inclMax, reverse bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		start := 0
		if minKey != nil {
			if inclMin {
				start = t.bisectLeft(*minKey)
			} else {
				start = t.bisectRight(*minKey)
			}
		}
		end := t.ln
		if maxKey != nil {
			if inclMax {
				end = t.bisectRight(*maxKey)
			} else {
				end = t.bisectLeft(*maxKey)
			}
		}
		if start >= end {
			return
		}
		for k, v := range t.iterateRange(start, end, reverse) {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (t *twoLevelMap[K, V]) clone() *twoLevelMap[K, V] {
	out := &twoLevelMap[K, V]{cmp: t.cmp, loadFactor: t.loadFactor, ln: t.ln}
	out.keys = make([][]K, len(t.keys))
	out.vals = make([][]V, len(t.vals))
	for i, s := range t.keys {
		out.keys[i] = append([]K(nil), s...)
	}
	for i, s := range t.vals {
		out.vals[i] = append([]V(nil), s...)
	}
	out.maxes = append([]K(nil), t.maxes...)
	if t.idx.built() {
		out.idx = positionalIndex{
			tree:   append([]int(nil), t.idx.tree...),
			offset: t.idx.offset,
			padded: t.idx.padded,
		}
	}
	return out
}

func (t *twoLevelMap[K, V]) check() error {
	if t.loadFactor < minLoadFactor {
		return fmt.Errorf("load factor %d below minimum %d", t.loadFactor, minLoadFactor)
	}
	if len(t.maxes) != len(t.keys) || len(t.keys) != len(t.vals) {
		return fmt.Errorf("len(maxes)=%d, len(keys)=%d, len(vals)=%d must match", len(t.maxes), len(t.keys), len(t.vals))
	}
	total := 0
	lengths := make([]int, len(t.keys))
	for i, keySub := range t.keys {
		if len(keySub) != len(t.vals[i]) {
			return fmt.Errorf("len(keys[%d])=%d != len(vals[%d])=%d", i, len(keySub), i, len(t.vals[i]))
		}
		lengths[i] = len(keySub)
		total += len(keySub)
		for j := 1; j < len(keySub); j++ {
			if t.cmp(keySub[j-1], keySub[j]) >= 0 {
				return fmt.Errorf("keys[%d] not strictly increasing at offset %d", i, j)
			}
		}
		if i+1 < len(t.keys) {
			next := t.keys[i+1]
			if len(keySub) > 0 && len(next) > 0 && t.cmp(keySub[len(keySub)-1], next[0]) >= 0 {
				return fmt.Errorf("keys[%d] and keys[%d] out of order at the boundary", i, i+1)
			}
		}
		if len(keySub) > 0 && t.cmp(t.maxes[i], keySub[len(keySub)-1]) != 0 {
			return fmt.Errorf("maxes[%d] does not match the last key of keys[%d]", i, i)
		}
		if len(keySub) > 2*t.loadFactor {
			return fmt.Errorf("keys[%d] has %d elements, exceeding 2*loadFactor", i, len(keySub))
		}
		if i != len(t.keys)-1 && len(keySub) < t.loadFactor/2 {
			return fmt.Errorf("keys[%d] has %d elements, below loadFactor/2", i, len(keySub))
		}
	}
	if total != t.ln {
		return fmt.Errorf("len=%d != sum of sublist lengths %d", t.ln, total)
	}
	if t.idx.built() {
		if err := t.idx.check(lengths); err != nil {
			return err
		}
	}
	return nil
}

// sortedMap is the concrete SortedMap[K, V] implementation.
type sortedMap[K, V any] struct {
	core *twoLevelMap[K, V]
}

// NewSortedMap returns an empty SortedMap with keys ordered by cmp.
func NewSortedMap[K, V any](cmp Comparator[K]) SortedMap[K, V] {
	if cmp == nil {
		panic("sortedcontainers: NewSortedMap: comparator must not be nil")
	}
	return &sortedMap[K, V]{core: newTwoLevelMap[K, V](cmp, 0)}
}

// NewSortedMapOrdered returns an empty SortedMap using K's natural order.
func NewSortedMapOrdered[K Ordered, V any]() SortedMap[K, V] {
	return NewSortedMap[K, V](CompareFunc[K]())
}

// NewSortedMapWithLoadFactor is like NewSortedMap but overrides the
// sublist load factor (must be >= 4).
func NewSortedMapWithLoadFactor[K, V any](cmp Comparator[K], loadFactor int) SortedMap[K, V] {
	if cmp == nil {
		panic("sortedcontainers: NewSortedMapWithLoadFactor: comparator must not be nil")
	}
	return &sortedMap[K, V]{core: newTwoLevelMap[K, V](cmp, loadFactor)}
}

func (s *sortedMap[K, V]) Length() int { return s.core.length() }
func (s *sortedMap[K, V]) Clear()      { s.core.clear() }

func (s *sortedMap[K, V]) String() string {
	return formatMap("SortedMap", s.Entries())
}

func (s *sortedMap[K, V]) Set(key K, value V) { s.core.set(key, value) }

func (s *sortedMap[K, V]) Get(key K) (V, bool) { return s.core.get(key) }

func (s *sortedMap[K, V]) GetOrDefault(key K, defaultValue V) V {
	if v, ok := s.core.get(key); ok {
		return v
	}
	return defaultValue
}

func (s *sortedMap[K, V]) Has(key K) bool { return s.core.has(key) }

func (s *sortedMap[K, V]) Delete(key K) bool { return s.core.delete(key) }

func (s *sortedMap[K, V]) Upsert(key K, defaultValue V) V {
	if v, ok := s.core.get(key); ok {
		return v
	}
	s.core.set(key, defaultValue)
	return defaultValue
}

func (s *sortedMap[K, V]) PopKey(key K, defaultValue V) (V, bool) {
	if v, ok := s.core.get(key); ok {
		s.core.delete(key)
		return v, true
	}
	return defaultValue, false
}

func (s *sortedMap[K, V]) PopEntry(rank int) (K, V, bool) { return s.core.popEntry(rank) }

func (s *sortedMap[K, V]) EntryAt(rank int) (K, V, bool) { return s.core.entryAt(rank) }

func (s *sortedMap[K, V]) At(rank int) (K, V, bool) { return s.core.entryAt(rank) }

func (s *sortedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.core.iterateRange(0, s.core.ln, false) {
			if !yield(k) {
				return
			}
		}
	}
}

func (s *sortedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		s.core.iterateRange(0, s.core.ln, false)(func(_ K, v V) bool {
			return yield(v)
		})
	}
}

func (s *sortedMap[K, V]) Entries() iter.Seq2[K, V] {
	return s.core.iterateRange(0, s.core.ln, false)
}

func (s *sortedMap[K, V]) ForEach(action func(key K, value V) bool) {
	s.Entries()(action)
}

func (s *sortedMap[K, V]) BisectLeft(key K) int { return s.core.bisectLeft(key) }

func (s *sortedMap[K, V]) BisectRight(key K) int { return s.core.bisectRight(key) }

func (s *sortedMap[K, V]) IndexOf(key K) int { return s.core.indexOf(key) }

func (s *sortedMap[K, V]) IRange(minKey, maxKey *K, inclMin, inclMax, reverse bool) iter.Seq2[K, V] {
	return s.core.irange(minKey, maxKey, inclMin, inclMax, reverse)
}

func (s *sortedMap[K, V]) ISlice(start, end int, reverse bool) iter.Seq2[K, V] {
	return s.core.iterateRange(start, end, reverse)
}

func (s *sortedMap[K, V]) Clone() SortedMap[K, V] {
	return &sortedMap[K, V]{core: s.core.clone()}
}
