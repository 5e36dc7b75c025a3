package arena

// Node is the storage record for one element.
//
// For a linked node Link is the XOR of the refs of its two neighbours. For a
// free slot Link holds the next free ref.
type Node[T any] struct {
	Link  Ref
	Value T
}

// Allocator is the node storage consumed by the xorlist package.
//
// Allocate returns a slot whose Link is NoRef and whose Value is the zero
// value. Deallocate destroys the value and makes the slot available again.
// Implementations may fail Allocate (for example when bounded), they may not
// fail Deallocate.
type Allocator[T any] interface {
	Allocate() (Ref, error)
	Deallocate(ref Ref)
	Node(ref Ref) *Node[T]
	MaxNodes() int
}
