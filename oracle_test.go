package sortedcontainers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/btree"
)

// Cross-validates SortedSet against tidwall/btree.BTreeG under a long
// randomized operation sequence. The oracle is used purely as an
// independently-implemented reference ordered container, never as
// production storage.
func TestOracle_SortedSet_AgainstBTree(t *testing.T) {
	ss := NewSortedSetOrdered[int]()
	oracle := btree.NewBTreeG(func(a, b int) bool { return a < b })

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := r.Intn(300)
		switch r.Intn(3) {
		case 0:
			ss.Add(v)
			oracle.Set(v)
		case 1:
			ss.Delete(v)
			oracle.Delete(v)
		case 2:
			_, wantOK := oracle.Get(v)
			gotOK := ss.Has(v)
			require.Equal(t, wantOK, gotOK)
		}
	}

	require.Equal(t, oracle.Len(), ss.Length())

	var want []int
	oracle.Scan(func(v int) bool {
		want = append(want, v)
		return true
	})
	assert.Equal(t, want, ss.ToSlice())
}

// Cross-validates SortedMap's key ordering and presence against
// tidwall/btree.BTreeG keyed on (key, value) pairs ordered by key alone.
func TestOracle_SortedMap_AgainstBTree(t *testing.T) {
	type entry struct {
		key   int
		value int
	}
	m := NewSortedMapOrdered[int, int]()
	oracle := btree.NewBTreeG(func(a, b entry) bool { return a.key < b.key })

	r := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		k := r.Intn(300)
		switch r.Intn(3) {
		case 0:
			v := r.Intn(1_000_000)
			m.Set(k, v)
			oracle.Set(entry{key: k, value: v})
		case 1:
			m.Delete(k)
			oracle.Delete(entry{key: k})
		case 2:
			wantEntry, wantOK := oracle.Get(entry{key: k})
			gotV, gotOK := m.Get(k)
			require.Equal(t, wantOK, gotOK)
			if wantOK {
				assert.Equal(t, wantEntry.value, gotV)
			}
		}
	}

	require.Equal(t, oracle.Len(), m.Length())

	var wantKeys, wantVals []int
	oracle.Scan(func(e entry) bool {
		wantKeys = append(wantKeys, e.key)
		wantVals = append(wantVals, e.value)
		return true
	})

	var gotKeys, gotVals []int
	for k, v := range m.Entries() {
		gotKeys = append(gotKeys, k)
		gotVals = append(gotVals, v)
	}
	assert.Equal(t, wantKeys, gotKeys)
	assert.Equal(t, wantVals, gotVals)
}
