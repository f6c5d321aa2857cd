package sortedcontainers

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_List_CatchesUnsortedSublist(t *testing.T) {
	l := newTwoLevelList[int](cmp.Compare[int], 8)
	for i := 0; i < 20; i++ {
		l.add(i)
	}
	require.NoError(t, l.check())

	l.lists[0][0], l.lists[0][1] = l.lists[0][1], l.lists[0][0]
	assert.Error(t, l.check())
}

func TestChecker_List_CatchesMaxesMismatch(t *testing.T) {
	l := newTwoLevelList[int](cmp.Compare[int], 8)
	for i := 0; i < 20; i++ {
		l.add(i)
	}
	require.NoError(t, l.check())

	l.maxes[0] = -999
	assert.Error(t, l.check())
}

func TestChecker_List_CatchesLengthDrift(t *testing.T) {
	l := newTwoLevelList[int](cmp.Compare[int], 8)
	for i := 0; i < 20; i++ {
		l.add(i)
	}
	require.NoError(t, l.check())

	l.ln = l.ln + 1
	assert.Error(t, l.check())
}

func TestChecker_List_CatchesOversizedSublist(t *testing.T) {
	l := newTwoLevelList[int](cmp.Compare[int], 4)
	l.add(1)
	// Directly corrupt the sole sublist past 2*loadFactor without going
	// through expand, to isolate the size-bound check.
	big := make([]int, 0, 20)
	for i := 0; i < 20; i++ {
		big = append(big, i)
	}
	l.lists[0] = big
	l.maxes[0] = big[len(big)-1]
	l.ln = len(big)
	assert.Error(t, l.check())
}

func TestChecker_List_Unique_CatchesDuplicate(t *testing.T) {
	l := newTwoLevelList[int](cmp.Compare[int], 8)
	for i := 0; i < 20; i++ {
		l.add(i)
	}
	require.NoError(t, l.checkUnique())

	l.lists[0][1] = l.lists[0][0]
	assert.Error(t, l.checkUnique())
}

func TestChecker_Map_CatchesKeyValueLengthMismatch(t *testing.T) {
	m := newTwoLevelMap[int, string](cmp.Compare[int], 8)
	for i := 0; i < 20; i++ {
		m.set(i, "x")
	}
	require.NoError(t, m.check())

	m.vals[0] = m.vals[0][:len(m.vals[0])-1]
	assert.Error(t, m.check())
}

func TestChecker_Map_CatchesNonStrictlyIncreasingKeys(t *testing.T) {
	m := newTwoLevelMap[int, string](cmp.Compare[int], 8)
	for i := 0; i < 20; i++ {
		m.set(i, "x")
	}
	require.NoError(t, m.check())

	m.keys[0][1] = m.keys[0][0]
	assert.Error(t, m.check())
}

func TestChecker_PositionalIndex_CatchesRootMismatch(t *testing.T) {
	l := newTwoLevelList[int](cmp.Compare[int], 4)
	for i := 0; i < 100; i++ {
		l.add(i)
	}
	// Force the index to build.
	_, _ = l.at(l.length() / 2)
	require.True(t, l.idx.built())
	require.NoError(t, l.check())

	l.idx.tree[0]++
	assert.Error(t, l.check())
}
