package xorlist

import (
	"iter"

	"github.com/AntoineSebert/xor-list/arena"
	"github.com/datatrails/go-datatrails-common/logger"
)

// List is a doubly linked list with one combined link field per node.
//
// The zero List is not usable, create lists with New or one of the other
// constructors. A List is not go routine safe, nor are lists sharing an
// allocator safe to use from different go routines.
type List[T any] struct {
	alloc arena.Allocator[T]
	log   logger.Logger

	sentinel arena.Ref
	// head is the first element, or the sentinel when the list is empty
	head arena.Ref
	size int
}

// New creates an empty list.
//
// The sentinel is allocated immediately, so New fails if the allocator is
// exhausted.
func New[T any](opts ...Option) (*List[T], error) {
	o := newOptions(opts)

	var alloc arena.Allocator[T]
	if o.allocator != nil {
		a, ok := o.allocator.(arena.Allocator[T])
		if !ok {
			return nil, ErrAllocatorType
		}
		alloc = a
	} else {
		a, err := arena.New[T](o.arenaOpts...)
		if err != nil {
			return nil, err
		}
		alloc = a
	}

	log := o.log
	if log == nil {
		if lg, ok := alloc.(interface{ Logger() logger.Logger }); ok {
			log = lg.Logger()
		}
	}

	s, err := alloc.Allocate()
	if err != nil {
		return nil, err
	}
	// link(s) = s ^ s, which is NoRef as returned by Allocate
	return &List[T]{
		alloc:    alloc,
		log:      log,
		sentinel: s,
		head:     s,
	}, nil
}

// NewSized creates a list of n zero values.
func NewSized[T any](n int, opts ...Option) (*List[T], error) {
	var zero T
	return NewFilled(n, zero, opts...)
}

// NewFilled creates a list of n copies of value.
func NewFilled[T any](n int, value T, opts ...Option) (*List[T], error) {
	return build[T](opts, func(l *List[T]) error {
		_, err := l.InsertN(l.End(), n, value)
		return err
	})
}

// FromSlice creates a list holding values in order.
func FromSlice[T any](values []T, opts ...Option) (*List[T], error) {
	return build[T](opts, func(l *List[T]) error {
		return l.AssignSlice(values...)
	})
}

// FromSeq creates a list holding the values produced by seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) (*List[T], error) {
	return build[T](opts, func(l *List[T]) error {
		return l.Assign(seq)
	})
}

// NewMoved creates a list holding the elements of other, leaving other empty.
// Unless opts say otherwise the new list shares other's allocator and the
// elements are relinked rather than moved.
func NewMoved[T any](other *List[T], opts ...Option) (*List[T], error) {
	opts = append([]Option{WithAllocator(other.alloc)}, opts...)
	return build[T](opts, func(l *List[T]) error {
		return l.MoveAssign(other)
	})
}

// Clone returns a copy of l. Unless opts say otherwise the copy shares l's
// allocator.
func (l *List[T]) Clone(opts ...Option) (*List[T], error) {
	opts = append([]Option{WithAllocator(l.alloc)}, opts...)
	return build[T](opts, func(c *List[T]) error {
		return c.CopyAssign(l)
	})
}

// build creates a list and fills it, releasing it again if filling fails.
func build[T any](opts []Option, fill func(*List[T]) error) (*List[T], error) {
	l, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	if err := fill(l); err != nil {
		l.Release()
		return nil, err
	}
	return l, nil
}

// Release destroys every element and the sentinel. Lists on a private arena
// need not be released, the garbage collector reclaims the arena with the
// list. Lists on a shared allocator should be, or their slots stay in use.
// The list must not be used afterwards.
func (l *List[T]) Release() {
	l.Clear()
	l.alloc.Deallocate(l.sentinel)
	l.sentinel, l.head = arena.NoRef, arena.NoRef
}

// Allocator returns the node storage of the list.
func (l *List[T]) Allocator() arena.Allocator[T] { return l.alloc }

func (l *List[T]) sameAllocator(other *List[T]) bool { return l.alloc == other.alloc }

func (l *List[T]) value(ref arena.Ref) T { return l.alloc.Node(ref).Value }

// last returns the last element, or the sentinel when the list is empty.
func (l *List[T]) last() arena.Ref { return step(l.alloc, l.sentinel, l.head) }

func (l *List[T]) Empty() bool { return l.size == 0 }
func (l *List[T]) Len() int    { return l.size }

// MaxSize returns the largest number of elements the list could hold if it
// had its allocator to itself. One node is always taken by the sentinel.
func (l *List[T]) MaxSize() int {
	return l.alloc.MaxNodes() - 1
}

// Front returns the first element. It panics with ErrEmpty if there is none.
func (l *List[T]) Front() T {
	if l.size == 0 {
		panic(ErrEmpty)
	}
	return l.value(l.head)
}

// Back returns the last element. It panics with ErrEmpty if there is none.
func (l *List[T]) Back() T {
	if l.size == 0 {
		panic(ErrEmpty)
	}
	return l.value(l.last())
}

func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{alloc: l.alloc, cur: l.head, prev: l.sentinel}
}

func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{alloc: l.alloc, cur: l.sentinel, prev: l.last()}
}

func (l *List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{alloc: l.alloc, cur: l.last(), next: l.sentinel}
}

func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{alloc: l.alloc, cur: l.sentinel, next: l.head}
}

// All yields the elements front to back. The list must not be modified
// during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur, prev := l.head, l.sentinel; cur != l.sentinel; cur, prev = step(l.alloc, cur, prev), cur {
			if !yield(l.value(cur)) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur, next := l.last(), l.sentinel; cur != l.sentinel; cur, next = step(l.alloc, cur, next), cur {
			if !yield(l.value(cur)) {
				return
			}
		}
	}
}

// Nodes yields the node handle of each element front to back, for callers
// that want to observe element identity across relinking operations.
func (l *List[T]) Nodes() iter.Seq[arena.Ref] {
	return func(yield func(arena.Ref) bool) {
		for cur, prev := l.head, l.sentinel; cur != l.sentinel; cur, prev = step(l.alloc, cur, prev), cur {
			if !yield(cur) {
				return
			}
		}
	}
}

// Values returns the elements front to back in a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}
