package sortedarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int { return a - b }

func TestNew_NilComparator(t *testing.T) {
	_, err := New[int, string](nil, LayoutLinear)
	assert.ErrorIs(t, err, ErrNilComparator)
}

func TestLinear_InsertAndLookup(t *testing.T) {
	sa, err := New[int, string](intCmp, LayoutLinear)
	require.NoError(t, err)

	for _, k := range []int{5, 3, 8, 1, 9, 2} {
		_, inserted, err := sa.Insert(k, "v", ModeAlways)
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	for _, k := range []int{5, 3, 8, 1, 9, 2} {
		_, ok := sa.KeyToIndex(k)
		assert.True(t, ok, "key %d should be found", k)
	}
	_, ok := sa.KeyToIndex(42)
	assert.False(t, ok)
}

func TestLinear_TailOverflowResorts(t *testing.T) {
	sa, err := New[int, int](intCmp, LayoutLinear)
	require.NoError(t, err)

	// Insert more than defaultTailThreshold elements in descending order;
	// the tail must be folded back into the sorted prefix at some point.
	for i := 100; i > 0; i-- {
		_, _, err := sa.Insert(i, i, ModeAlways)
		require.NoError(t, err)
	}

	assert.Equal(t, 100, sa.Len())
	for i := 1; i <= 100; i++ {
		idx, ok := sa.KeyToIndex(i)
		require.True(t, ok)
		assert.Equal(t, i, sa.At(idx).Value)
	}
}

func TestModes(t *testing.T) {
	sa, err := New[int, string](intCmp, LayoutLinear)
	require.NoError(t, err)

	_, inserted, err := sa.Insert(1, "first", ModeOnlyIfAbsent)
	require.NoError(t, err)
	assert.True(t, inserted)

	_, inserted, err = sa.Insert(1, "second", ModeOnlyIfAbsent)
	assert.ErrorIs(t, err, ErrKeyExists)
	assert.False(t, inserted)

	idx, _ := sa.KeyToIndex(1)
	assert.Equal(t, "first", sa.At(idx).Value)

	_, inserted, err = sa.Insert(1, "third", ModeOverwriteIfPresent)
	require.NoError(t, err)
	assert.False(t, inserted)

	idx, _ = sa.KeyToIndex(1)
	assert.Equal(t, "third", sa.At(idx).Value)
}

func TestTree_HeapPropertyHolds(t *testing.T) {
	sa, err := New[int, int](intCmp, LayoutTree)
	require.NoError(t, err)

	vals := []int{9, 4, 7, 1, 8, 2, 6, 3, 5, 0}
	for _, v := range vals {
		_, _, err := sa.Insert(v, v, ModeAlways)
		require.NoError(t, err)
	}

	elems := sa.Elements()
	for i := range elems {
		left, right := 2*i+1, 2*i+2
		if left < len(elems) {
			assert.LessOrEqual(t, elems[i].Key, elems[left].Key)
		}
		if right < len(elems) {
			assert.LessOrEqual(t, elems[i].Key, elems[right].Key)
		}
	}

	for _, v := range vals {
		idx, ok := sa.KeyToIndex(v)
		require.True(t, ok)
		assert.Equal(t, v, sa.At(idx).Value)
	}
}
