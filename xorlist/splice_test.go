package xorlist_test

import (
	"testing"

	"github.com/AntoineSebert/xor-list/arena"
	"github.com/AntoineSebert/xor-list/xorlist"
	"github.com/AntoineSebert/xor-list/xorlisttesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpliceMovesEverything(t *testing.T) {
	tests := []struct {
		name     string
		dst      []int
		at       int
		expected []int
	}{
		{"middle", []int{1, 2, 3}, 1, []int{1, 10, 20, 30, 2, 3}},
		{"front", []int{1, 2, 3}, 0, []int{10, 20, 30, 1, 2, 3}},
		{"back", []int{1, 2, 3}, 3, []int{1, 2, 3, 10, 20, 30}},
		{"into empty", []int{}, 0, []int{10, 20, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena[int](t)
			l := xorlisttesting.NewList[int](t, a, tt.dst...)
			other := xorlisttesting.NewList[int](t, a, 10, 20, 30)
			moved := xorlisttesting.Refs(other)
			live := a.Len()

			require.NoError(t, l.Splice(l.Begin().Advance(tt.at), other))
			assert.Equal(t, tt.expected, l.Values())
			assert.Equal(t, moved, xorlisttesting.Refs(l)[tt.at:tt.at+3])
			assert.True(t, other.Empty())
			assert.Equal(t, live, a.Len())
			xorlisttesting.CheckLinks(t, l)
			xorlisttesting.CheckLinks(t, other)
		})
	}
}

func TestSpliceEmptyOrSelfIsNoop(t *testing.T) {
	a := newArena[int](t)
	l := xorlisttesting.NewList[int](t, a, 1, 2)
	other := xorlisttesting.NewList[int](t, a)

	require.NoError(t, l.Splice(l.Begin(), other))
	require.NoError(t, l.Splice(l.Begin(), l))
	assert.Equal(t, []int{1, 2}, l.Values())
	xorlisttesting.CheckLinks(t, l)
}

func TestSpliceOne(t *testing.T) {
	a := newArena[int](t)
	l := xorlisttesting.NewList[int](t, a, 1, 2, 3)
	other := xorlisttesting.NewList[int](t, a, 10, 20, 30)
	it := other.Begin().Next()
	ref := it.Ref()

	require.NoError(t, l.SpliceOne(l.End(), other, it))
	assert.Equal(t, []int{1, 2, 3, 20}, l.Values())
	assert.Equal(t, []int{10, 30}, other.Values())
	assert.Equal(t, ref, l.End().Prev().Ref())
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 2, other.Len())
	xorlisttesting.CheckLinks(t, l)
	xorlisttesting.CheckLinks(t, other)

	require.NoError(t, l.SpliceOne(l.Begin(), other, other.Begin()))
	require.NoError(t, l.SpliceOne(l.Begin(), other, other.Begin()))
	assert.Equal(t, []int{30, 10, 1, 2, 3, 20}, l.Values())
	assert.True(t, other.Empty())
	xorlisttesting.CheckLinks(t, l)
	xorlisttesting.CheckLinks(t, other)
}

func TestSpliceOneWithinList(t *testing.T) {
	tests := []struct {
		name     string
		pos, it  int
		expected []int
	}{
		{"back to front", 0, 3, []int{4, 1, 2, 3}},
		{"front to back", 4, 0, []int{2, 3, 4, 1}},
		{"forward over one", 3, 1, []int{1, 3, 2, 4}},
		{"at itself", 2, 2, []int{1, 2, 3, 4}},
		{"before its successor", 3, 2, []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena[int](t)
			l := xorlisttesting.NewList[int](t, a, 1, 2, 3, 4)

			require.NoError(t, l.SpliceOne(l.Begin().Advance(tt.pos), l, l.Begin().Advance(tt.it)))
			assert.Equal(t, tt.expected, l.Values())
			assert.Equal(t, 4, l.Len())
			xorlisttesting.CheckLinks(t, l)
		})
	}
}

func TestSpliceRange(t *testing.T) {
	a := newArena[int](t)
	l := xorlisttesting.NewList[int](t, a, 1, 2)
	other := xorlisttesting.NewList[int](t, a, 10, 20, 30, 40)
	first, last := other.Begin().Next(), other.End().Prev()
	moved := []arena.Ref{first.Ref(), first.Next().Ref()}

	require.NoError(t, l.SpliceRange(l.End(), other, first, last))
	assert.Equal(t, []int{1, 2, 20, 30}, l.Values())
	assert.Equal(t, []int{10, 40}, other.Values())
	assert.Equal(t, moved, xorlisttesting.Refs(l)[2:])
	xorlisttesting.CheckLinks(t, l)
	xorlisttesting.CheckLinks(t, other)

	// the whole of other is not counted but still accounted for
	require.NoError(t, l.SpliceRange(l.Begin(), other, other.Begin(), other.End()))
	assert.Equal(t, []int{10, 40, 1, 2, 20, 30}, l.Values())
	assert.Equal(t, 6, l.Len())
	assert.True(t, other.Empty())
	xorlisttesting.CheckLinks(t, l)
	xorlisttesting.CheckLinks(t, other)

	require.NoError(t, l.SpliceRange(l.Begin(), other, other.Begin(), other.End()))
	assert.Equal(t, 6, l.Len())
}

func TestSpliceRangeWithinList(t *testing.T) {
	tests := []struct {
		name         string
		pos          int
		first, last  int
		expected     []int
		expectedHead int
	}{
		{"rotate left", 0, 3, 6, []int{4, 5, 6, 1, 2, 3}, 4},
		{"rotate right", 6, 0, 2, []int{3, 4, 5, 6, 1, 2}, 3},
		{"middle forward", 5, 1, 3, []int{1, 4, 5, 2, 3, 6}, 1},
		{"middle backward", 1, 3, 5, []int{1, 4, 5, 2, 3, 6}, 1},
		{"pos at last", 4, 1, 4, []int{1, 2, 3, 4, 5, 6}, 1},
		{"pos at first", 1, 1, 4, []int{1, 2, 3, 4, 5, 6}, 1},
		{"empty range", 0, 2, 2, []int{1, 2, 3, 4, 5, 6}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena[int](t)
			l := xorlisttesting.NewList[int](t, a, 1, 2, 3, 4, 5, 6)
			at := func(i int) xorlist.Iterator[int] { return l.Begin().Advance(i) }

			require.NoError(t, l.SpliceRange(at(tt.pos), l, at(tt.first), at(tt.last)))
			assert.Equal(t, tt.expected, l.Values())
			assert.Equal(t, tt.expectedHead, l.Front())
			assert.Equal(t, 6, l.Len())
			xorlisttesting.CheckLinks(t, l)
		})
	}
}

func TestSpliceAcrossAllocatorsMovesValues(t *testing.T) {
	a, b := newArena[int](t), newArena[int](t)
	l := xorlisttesting.NewList[int](t, a, 1, 2)
	other := xorlisttesting.NewList[int](t, b, 10, 20, 30)

	require.NoError(t, l.SpliceOne(l.Begin(), other, other.End().Prev()))
	assert.Equal(t, []int{30, 1, 2}, l.Values())
	assert.Equal(t, []int{10, 20}, other.Values())

	require.NoError(t, l.Splice(l.End(), other))
	assert.Equal(t, []int{30, 1, 2, 10, 20}, l.Values())
	assert.True(t, other.Empty())
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, 1, b.Len())
	xorlisttesting.CheckLinks(t, l)
	xorlisttesting.CheckLinks(t, other)
}

func TestSpliceAcrossAllocatorsFailureKeepsBothLists(t *testing.T) {
	fa := &xorlisttesting.FailingAllocator[int]{Allocator: arena.MustNew[int](), Budget: 2}
	l, err := xorlist.FromSlice([]int{1}, xorlist.WithAllocator[int](fa))
	require.NoError(t, err)
	other, err := xorlist.FromSlice([]int{10, 20})
	require.NoError(t, err)

	fa.Budget = 1
	err = l.Splice(l.End(), other)
	require.ErrorIs(t, err, xorlisttesting.ErrInjected)
	assert.Equal(t, []int{1}, l.Values())
	assert.Equal(t, []int{10, 20}, other.Values())
	xorlisttesting.CheckLinks(t, l)
	xorlisttesting.CheckLinks(t, other)
}
