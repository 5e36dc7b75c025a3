package arena

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"negative max nodes", []Option{WithMaxNodes(-1)}, ErrBadMaxNodes},
		{"negative capacity", []Option{WithCapacity(-1)}, ErrBadCapacity},
		{"capacity above max nodes", []Option{WithMaxNodes(2), WithCapacity(3)}, ErrBadCapacity},
		{"defaults", nil, nil},
		{"bounded with reservation", []Option{WithMaxNodes(8), WithCapacity(8)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[int](tt.opts...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAllocateNeverReturnsNoRef(t *testing.T) {
	a := MustNew[string]()

	seen := map[Ref]bool{}
	for i := 0; i < 100; i++ {
		ref, err := a.Allocate()
		require.NoError(t, err)
		require.NotEqual(t, NoRef, ref)
		require.False(t, seen[ref], "ref %d handed out twice", ref)
		seen[ref] = true
	}
	assert.Equal(t, 100, a.Len())
	assert.Equal(t, 100, a.Slots())
}

func TestDeallocateReusesSlotAndZeroesValue(t *testing.T) {
	a := MustNew[*int]()

	v := 7
	ref, err := a.Allocate()
	require.NoError(t, err)
	a.Node(ref).Value = &v
	a.Node(ref).Link = 42

	a.Deallocate(ref)
	assert.Equal(t, 0, a.Len())

	again, err := a.Allocate()
	require.NoError(t, err)
	require.Equal(t, ref, again)
	assert.Nil(t, a.Node(again).Value)
	assert.Equal(t, NoRef, a.Node(again).Link)
	assert.Equal(t, 1, a.Slots())
}

func TestFreeListIsLastInFirstOut(t *testing.T) {
	a := MustNew[int]()

	var refs []Ref
	for i := 0; i < 4; i++ {
		ref, err := a.Allocate()
		require.NoError(t, err)
		refs = append(refs, ref)
	}
	a.Deallocate(refs[1])
	a.Deallocate(refs[3])

	r1, err := a.Allocate()
	require.NoError(t, err)
	r2, err := a.Allocate()
	require.NoError(t, err)
	assert.Equal(t, refs[3], r1)
	assert.Equal(t, refs[1], r2)
	assert.Equal(t, 4, a.Slots())
}

func TestBoundedArenaReportsFull(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	id := uuid.MustParse("8a4d5ca1-6a49-4e0e-9d0e-6f3e0a2b8c11")
	a := MustNew[int](WithMaxNodes(2), WithID(id), WithLogger(logger.Sugar.WithServiceName("arena")))
	assert.Equal(t, id, a.ID())
	assert.Equal(t, 2, a.MaxNodes())

	r1, err := a.Allocate()
	require.NoError(t, err)
	_, err = a.Allocate()
	require.NoError(t, err)

	_, err = a.Allocate()
	require.ErrorIs(t, err, ErrArenaFull)
	assert.Contains(t, err.Error(), id.String())

	// a freed slot is usable again without growing
	a.Deallocate(r1)
	r3, err := a.Allocate()
	require.NoError(t, err)
	assert.Equal(t, r1, r3)
}

func TestCapacityAvoidsGrowth(t *testing.T) {
	a := MustNew[int](WithCapacity(16))

	n0 := a.Node(NoRef)
	for i := 0; i < 16; i++ {
		_, err := a.Allocate()
		require.NoError(t, err)
	}
	// the reserved slot has not moved, so neither has the slab
	assert.Same(t, n0, a.Node(NoRef))
}
