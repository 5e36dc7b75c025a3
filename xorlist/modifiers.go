package xorlist

import (
	"iter"
	"slices"

	"github.com/AntoineSebert/xor-list/arena"
)

// Clear destroys every element.
func (l *List[T]) Clear() {
	c := l.detachAll()
	l.release(&c)
}

// link places the new node x between prev and next.
func (l *List[T]) link(x, prev, next arena.Ref) {
	front := l.front(prev, next)
	wire(l.alloc, x, prev, next)
	if front {
		l.head = x
	}
	l.size++
}

// Insert places v before pos and returns its position. If the allocator fails
// the list is unchanged.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	x, err := l.alloc.Allocate()
	if err != nil {
		return pos, err
	}
	l.alloc.Node(x).Value = v
	l.link(x, pos.prev, pos.cur)
	return Iterator[T]{alloc: l.alloc, cur: x, prev: pos.prev}, nil
}

// Emplace inserts a new element before pos, initialised in place by init. If
// the allocator fails, or init panics, the list is unchanged.
//
// init must not allocate from the list's allocator.
func (l *List[T]) Emplace(pos Iterator[T], init func(*T)) (Iterator[T], error) {
	x, err := l.alloc.Allocate()
	if err != nil {
		return pos, err
	}
	done := false
	defer func() {
		if !done {
			l.alloc.Deallocate(x)
		}
	}()
	init(&l.alloc.Node(x).Value)
	done = true

	l.link(x, pos.prev, pos.cur)
	return Iterator[T]{alloc: l.alloc, cur: x, prev: pos.prev}, nil
}

func (l *List[T]) EmplaceFront(init func(*T)) (Iterator[T], error) {
	return l.Emplace(l.Begin(), init)
}

func (l *List[T]) EmplaceBack(init func(*T)) (Iterator[T], error) {
	return l.Emplace(l.End(), init)
}

// InsertN inserts n copies of v before pos and returns the position of the
// first, or pos when n is 0.
func (l *List[T]) InsertN(pos Iterator[T], n int, v T) (Iterator[T], error) {
	if n < 0 {
		return pos, ErrNegativeCount
	}
	if n > l.MaxSize()-l.size {
		return pos, ErrTooLarge
	}
	return l.InsertSeq(pos, func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	})
}

// InsertSlice inserts values before pos, in order, and returns the position of
// the first, or pos when there are none.
func (l *List[T]) InsertSlice(pos Iterator[T], values ...T) (Iterator[T], error) {
	return l.InsertSeq(pos, slices.Values(values))
}

// InsertSeq inserts the values produced by seq before pos, in order, and
// returns the position of the first, or pos when there are none. If the
// allocator fails part way, the values already inserted are removed again and
// the list is unchanged.
func (l *List[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	first := pos
	inserted := false
	for v := range seq {
		it, err := l.Insert(pos, v)
		if err != nil {
			if inserted {
				return l.EraseRange(first, pos), err
			}
			return pos, err
		}
		if !inserted {
			first, inserted = it, true
		}
		// pos now carries a stale neighbour, the new node is its prev
		pos = it.Next()
	}
	return first, nil
}

// Erase removes the element at pos and returns the position that followed it.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	prev, x := pos.prev, pos.cur
	next := step(l.alloc, x, prev)
	l.unhead(prev, x, x, next)
	unwire(l.alloc, x, prev, next)
	l.size--
	l.alloc.Deallocate(x)
	return Iterator[T]{alloc: l.alloc, cur: next, prev: prev}
}

// EraseRange removes [first, last) and returns last, re-anchored to the
// element that preceded first.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	if first.cur == last.cur {
		return last
	}
	c := l.detach(first.prev, first.cur, last.prev, last.cur)
	l.size -= l.release(&c)
	return Iterator[T]{alloc: l.alloc, cur: last.cur, prev: first.prev}
}

func (l *List[T]) PushFront(v T) error {
	_, err := l.Insert(l.Begin(), v)
	return err
}

func (l *List[T]) PushBack(v T) error {
	_, err := l.Insert(l.End(), v)
	return err
}

// PopFront removes and returns the first element. It panics with ErrEmpty if
// there is none.
func (l *List[T]) PopFront() T {
	v := l.Front()
	l.Erase(l.Begin())
	return v
}

// PopBack removes and returns the last element. It panics with ErrEmpty if
// there is none.
func (l *List[T]) PopBack() T {
	v := l.Back()
	l.Erase(l.End().Prev())
	return v
}

// Resize grows the list with zero values, or shrinks it from the back, to n
// elements.
func (l *List[T]) Resize(n int) error {
	var zero T
	return l.ResizeWith(n, zero)
}

// ResizeWith grows the list with copies of v, or shrinks it from the back, to
// n elements.
func (l *List[T]) ResizeWith(n int, v T) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if n >= l.size {
		_, err := l.InsertN(l.End(), n-l.size, v)
		return err
	}
	l.EraseRange(l.at(n), l.End())
	return nil
}

// at returns the iterator at index i, walking from the nearer end.
func (l *List[T]) at(i int) Iterator[T] {
	if i <= l.size/2 {
		return l.Begin().Advance(i)
	}
	return l.End().Advance(i - l.size)
}

// Swap exchanges the contents of l and other. Iterators remain valid and
// follow their elements.
func (l *List[T]) Swap(other *List[T]) {
	*l, *other = *other, *l
}

// Assign replaces the contents with the values produced by seq. Existing nodes
// are reused, surplus nodes are destroyed and missing ones allocated. If the
// allocator fails the list is left valid, holding a prefix of seq.
func (l *List[T]) Assign(seq iter.Seq[T]) error {
	it := l.Begin()
	for v := range seq {
		if it.cur != l.sentinel {
			it.Set(v)
			it = it.Next()
			continue
		}
		if err := l.PushBack(v); err != nil {
			return err
		}
	}
	if it.cur != l.sentinel {
		l.EraseRange(it, l.End())
	}
	return nil
}

func (l *List[T]) AssignSlice(values ...T) error {
	return l.Assign(slices.Values(values))
}

// AssignN replaces the contents with n copies of v.
func (l *List[T]) AssignN(n int, v T) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if n > l.MaxSize() {
		return ErrTooLarge
	}
	return l.Assign(func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	})
}

// CopyAssign replaces the contents with a copy of other's.
func (l *List[T]) CopyAssign(other *List[T]) error {
	if other == l {
		return nil
	}
	return l.Assign(other.All())
}

// MoveAssign replaces the contents with other's elements, leaving other
// empty. On a shared allocator the nodes are relinked, otherwise the values
// are moved into nodes from l's allocator.
func (l *List[T]) MoveAssign(other *List[T]) error {
	if other == l {
		return nil
	}
	if l.sameAllocator(other) {
		l.Clear()
		return l.Splice(l.End(), other)
	}
	if l.log != nil {
		l.log.Debugf("xorlist: move assign across allocators, copying %d values", other.size)
	}
	if err := l.Assign(other.All()); err != nil {
		return err
	}
	other.Clear()
	return nil
}
