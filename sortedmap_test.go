package sortedcontainers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedMap_PanicOnNilComparator(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			require.Fail(t, "expected panic on nil comparator")
		}
	}()
	_ = NewSortedMap[int, string](nil)
}

func TestSortedMap_SetGetHasDelete(t *testing.T) {
	m := NewSortedMapOrdered[int, string]()
	m.Set(3, "c")
	m.Set(1, "a")
	m.Set(2, "b")

	v, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	assert.True(t, m.Has(1))
	assert.False(t, m.Has(99))

	assert.True(t, m.Delete(1))
	assert.False(t, m.Has(1))
	assert.False(t, m.Delete(1))
}

func TestSortedMap_SetOverwritesValueOnly(t *testing.T) {
	m := NewSortedMapOrdered[int, string]()
	m.Set(1, "first")
	m.Set(1, "second")
	assert.Equal(t, 1, m.Length())
	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestSortedMap_GetOrDefaultUpsertPopKey(t *testing.T) {
	m := NewSortedMapOrdered[int, string]()
	assert.Equal(t, "zz", m.GetOrDefault(5, "zz"))

	got := m.Upsert(5, "inserted")
	assert.Equal(t, "inserted", got)
	v, ok := m.Get(5)
	require.True(t, ok)
	assert.Equal(t, "inserted", v)

	// Upsert does not overwrite an existing value.
	got = m.Upsert(5, "other")
	assert.Equal(t, "inserted", got)

	v, ok = m.PopKey(5, "missing")
	require.True(t, ok)
	assert.Equal(t, "inserted", v)
	assert.False(t, m.Has(5))

	v, ok = m.PopKey(5, "missing")
	assert.False(t, ok)
	assert.Equal(t, "missing", v)
}

func TestSortedMap_EntryAtAtPopEntry(t *testing.T) {
	m := NewSortedMapOrdered[int, string]()
	m.Set(10, "ten")
	m.Set(20, "twenty")
	m.Set(30, "thirty")

	k, v, ok := m.EntryAt(0)
	require.True(t, ok)
	assert.Equal(t, 10, k)
	assert.Equal(t, "ten", v)

	k, v, ok = m.At(-1)
	require.True(t, ok)
	assert.Equal(t, 30, k)
	assert.Equal(t, "thirty", v)

	k, v, ok = m.PopEntry(1)
	require.True(t, ok)
	assert.Equal(t, 20, k)
	assert.Equal(t, "twenty", v)
	assert.Equal(t, 2, m.Length())

	_, _, ok = m.EntryAt(100)
	assert.False(t, ok)
}

func TestSortedMap_KeysValuesEntriesForEach(t *testing.T) {
	m := NewSortedMapOrdered[int, string]()
	m.Set(2, "b")
	m.Set(1, "a")
	m.Set(3, "c")

	var keys []int
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{1, 2, 3}, keys)

	var values []string
	for v := range m.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, values)

	var pairs [][2]any
	m.ForEach(func(k int, v string) bool {
		pairs = append(pairs, [2]any{k, v})
		return true
	})
	assert.Len(t, pairs, 3)

	// Early exit.
	count := 0
	m.ForEach(func(k int, v string) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestSortedMap_BisectIndexOf(t *testing.T) {
	m := NewSortedMapOrdered[int, string]()
	m.Set(10, "a")
	m.Set(20, "b")
	m.Set(30, "c")

	assert.Equal(t, 1, m.BisectLeft(20))
	assert.Equal(t, 2, m.BisectRight(20))
	assert.Equal(t, 1, m.IndexOf(20))
	assert.Equal(t, -1, m.IndexOf(99))
}

func TestSortedMap_IRangeAndISlice(t *testing.T) {
	m := NewSortedMapOrdered[int, string]()
	for i := 1; i <= 6; i++ {
		m.Set(i, string(rune('a'+i-1)))
	}
	lo, hi := 2, 5
	var keys []int
	for k := range m.IRange(&lo, &hi, true, false, false) {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{2, 3, 4}, keys)

	keys = nil
	for k := range m.ISlice(0, 3, true) {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{3, 2, 1}, keys)
}

func TestSortedMap_Clone(t *testing.T) {
	m := NewSortedMapOrdered[int, string]()
	m.Set(1, "a")
	m.Set(2, "b")
	clone := m.Clone()
	clone.Set(3, "c")
	assert.False(t, m.Has(3))
	assert.True(t, clone.Has(3))
}

func TestSortedMap_String(t *testing.T) {
	m := NewSortedMapOrdered[int, string]()
	m.Set(1, "a")
	m.Set(2, "b")
	assert.Equal(t, "SortedMap{1:a, 2:b}", m.String())
}

// Exercises the parallel keys/values structure under splits and merges: the
// value for every key must stay correctly paired through heavy churn.
func TestSortedMap_ParallelStructureUnderChurn(t *testing.T) {
	core := newTwoLevelMap[int, int](func(a, b int) int { return a - b }, 6)
	r := rand.New(rand.NewSource(7))
	shadow := map[int]int{}

	for i := 0; i < 500; i++ {
		switch r.Intn(3) {
		case 0:
			k := r.Intn(100)
			core.set(k, k*1000)
			shadow[k] = k * 1000
		case 1:
			k := r.Intn(100)
			if core.delete(k) {
				delete(shadow, k)
			}
		case 2:
			if core.ln == 0 {
				continue
			}
			rank := r.Intn(core.ln)
			k, v, ok := core.popEntry(rank)
			require.True(t, ok)
			assert.Equal(t, shadow[k], v)
			delete(shadow, k)
		}
		require.NoError(t, core.check())
	}

	for k, v := range shadow {
		got, ok := core.get(k)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}
