package xorlist

import "github.com/AntoineSebert/xor-list/arena"

// Iterator is a position in a List: the current node and the node before it.
//
// Iterators are values. Next and Prev return new iterators, and two iterators
// are at the same position iff Equal reports so; comparing Iterator values
// with == also compares the carried neighbour and is not what you want.
type Iterator[T any] struct {
	alloc arena.Allocator[T]
	cur   arena.Ref
	prev  arena.Ref
}

func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{alloc: it.alloc, cur: step(it.alloc, it.cur, it.prev), prev: it.cur}
}

func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{alloc: it.alloc, cur: it.prev, prev: step(it.alloc, it.prev, it.cur)}
}

// Advance moves n positions, backwards for negative n.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.cur == other.cur }

// Value returns the element. Undefined at End.
func (it Iterator[T]) Value() T { return it.alloc.Node(it.cur).Value }

// Set replaces the element. Undefined at End.
func (it Iterator[T]) Set(v T) { it.alloc.Node(it.cur).Value = v }

// Ref is the node handle. It identifies the element for as long as it is in
// any list on the same allocator, including across Splice and Merge.
func (it Iterator[T]) Ref() arena.Ref { return it.cur }

// Reverse returns a reverse iterator at the same element.
func (it Iterator[T]) Reverse() ReverseIterator[T] {
	return ReverseIterator[T]{alloc: it.alloc, cur: it.cur, next: step(it.alloc, it.cur, it.prev)}
}

// ReverseIterator walks a List back to front. It is the same pair as an
// Iterator with the carried neighbour on the other side, so advancing it
// uses exactly the same step.
type ReverseIterator[T any] struct {
	alloc arena.Allocator[T]
	cur   arena.Ref
	next  arena.Ref
}

func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{alloc: it.alloc, cur: step(it.alloc, it.cur, it.next), next: it.cur}
}

func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{alloc: it.alloc, cur: it.next, next: step(it.alloc, it.next, it.cur)}
}

func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool { return it.cur == other.cur }
func (it ReverseIterator[T]) Value() T                            { return it.alloc.Node(it.cur).Value }
func (it ReverseIterator[T]) Set(v T)                             { it.alloc.Node(it.cur).Value = v }
func (it ReverseIterator[T]) Ref() arena.Ref                      { return it.cur }

// Base returns the forward iterator one past this element in forward order,
// so RBegin().Base() is End() and REnd().Base() is Begin().
func (it ReverseIterator[T]) Base() Iterator[T] {
	return Iterator[T]{alloc: it.alloc, cur: it.next, prev: it.cur}
}

// Forward returns a forward iterator at the same element.
func (it ReverseIterator[T]) Forward() Iterator[T] {
	return Iterator[T]{alloc: it.alloc, cur: it.cur, prev: step(it.alloc, it.cur, it.next)}
}
