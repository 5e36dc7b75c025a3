package arena

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

// Arena is a growable slab of nodes with a free list.
//
// It is not go routine safe. Lists sharing an arena must be used from the
// same go routine.
type Arena[T any] struct {
	id  uuid.UUID
	log logger.Logger

	// nodes[0] is the reserved NoRef slot
	nodes []Node[T]
	free  Ref
	live  int

	maxNodes int
}

var _ Allocator[int] = (*Arena[int])(nil)

func New[T any](opts ...Option) (*Arena[T], error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxNodes < 0 || o.maxNodes > maxNodesLimit {
		return nil, ErrBadMaxNodes
	}
	maxNodes := o.maxNodes
	if maxNodes == 0 {
		maxNodes = maxNodesLimit
	}
	if o.capacity < 0 || o.capacity > maxNodes {
		return nil, ErrBadCapacity
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	a := &Arena[T]{
		id:       o.id,
		log:      o.log,
		nodes:    make([]Node[T], 1, o.capacity+1),
		maxNodes: maxNodes,
	}
	if a.log != nil {
		a.log.Debugf("arena %s: created, capacity %d, max nodes %d", a.id, o.capacity, a.maxNodes)
	}
	return a, nil
}

// MustNew is New for callers whose options are known good.
func MustNew[T any](opts ...Option) *Arena[T] {
	a, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Arena[T]) ID() uuid.UUID         { return a.id }
func (a *Arena[T]) Logger() logger.Logger { return a.log }

// Len returns the number of live nodes.
func (a *Arena[T]) Len() int { return a.live }

// Slots returns the number of slots ever created, live or free.
func (a *Arena[T]) Slots() int { return len(a.nodes) - 1 }

// MaxNodes returns the largest number of nodes that can be live at once.
func (a *Arena[T]) MaxNodes() int { return a.maxNodes }

// Allocate returns a fresh slot, reusing freed slots first.
func (a *Arena[T]) Allocate() (Ref, error) {
	if a.free != NoRef {
		ref := a.free
		n := &a.nodes[ref]
		a.free = n.Link
		n.Link = NoRef
		a.live++
		return ref, nil
	}

	if a.Slots() >= a.maxNodes {
		if a.log != nil {
			a.log.Infof("arena %s: exhausted at %d nodes", a.id, a.live)
		}
		return NoRef, fmt.Errorf("%w: arena %s has %d live nodes", ErrArenaFull, a.id, a.live)
	}

	before := cap(a.nodes)
	a.nodes = append(a.nodes, Node[T]{})
	if a.log != nil && cap(a.nodes) != before {
		a.log.Debugf("arena %s: grew from %d to %d slots", a.id, before-1, cap(a.nodes)-1)
	}
	a.live++
	return Ref(len(a.nodes) - 1), nil
}

// Deallocate zeroes the slot, so the value no longer holds references for the
// garbage collector, and pushes it on the free list.
func (a *Arena[T]) Deallocate(ref Ref) {
	a.nodes[ref] = Node[T]{Link: a.free}
	a.free = ref
	a.live--
}

// Node returns the storage for ref. See the package doc for pointer lifetime.
func (a *Arena[T]) Node(ref Ref) *Node[T] {
	return &a.nodes[ref]
}
