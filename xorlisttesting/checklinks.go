package xorlisttesting

import (
	"slices"
	"testing"

	"github.com/AntoineSebert/xor-list/arena"
	"github.com/AntoineSebert/xor-list/xorlist"
	"github.com/stretchr/testify/require"
)

// CheckLinks verifies the structural invariants of l: every link field,
// including the sentinel's, is the XOR of the node's two ring neighbours; the
// walks in both directions agree with each other and with Len; and Empty is
// consistent with Begin == End.
func CheckLinks[T any](t *testing.T, l *xorlist.List[T]) {
	t.Helper()

	a := l.Allocator()
	ring := []arena.Ref{l.End().Ref()}
	for ref := range l.Nodes() {
		if len(ring) > l.Len()+1 {
			t.Fatalf("forward walk passes %d elements without reaching the sentinel", l.Len())
		}
		ring = append(ring, ref)
	}
	require.Equal(t, l.Len(), len(ring)-1, "forward walk disagrees with Len")

	n := len(ring)
	for i, ref := range ring {
		prev, next := ring[(i+n-1)%n], ring[(i+1)%n]
		require.Equalf(t, prev^next, a.Node(ref).Link, "link of node %d at ring position %d", ref, i)
	}

	back := make([]T, 0, l.Len())
	for v := range l.Backward() {
		back = append(back, v)
	}
	slices.Reverse(back)
	require.Equal(t, l.Values(), back, "backward walk disagrees with forward walk")

	require.Equal(t, l.Empty(), l.Len() == 0)
	require.Equal(t, l.Empty(), l.Begin().Equal(l.End()))
}

// Distance counts the steps from first to last.
func Distance[T any](first, last xorlist.Iterator[T]) int {
	n := 0
	for it := first; !it.Equal(last); it = it.Next() {
		n++
	}
	return n
}

// Refs returns the node handles of l front to back.
func Refs[T any](l *xorlist.List[T]) []arena.Ref {
	return slices.Collect(l.Nodes())
}
