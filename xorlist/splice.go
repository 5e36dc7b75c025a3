package xorlist

// Splice moves every element of other before pos, leaving other empty.
//
// On a shared allocator this is O(1): four link fields change and no element
// is copied. Otherwise the values are moved into new nodes; if the allocator
// fails part way both lists are left as they were.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) error {
	if other == l || other.size == 0 {
		return nil
	}
	if !l.sameAllocator(other) {
		return l.moveValues(pos, other, other.Begin(), other.End())
	}
	c := other.detachAll()
	l.attach(&c, pos.prev, pos.cur)
	return nil
}

// SpliceOne moves the element at it, which belongs to other, before pos.
// other may be l.
func (l *List[T]) SpliceOne(pos Iterator[T], other *List[T], it Iterator[T]) error {
	if !l.sameAllocator(other) {
		return l.moveValues(pos, other, it, it.Next())
	}
	// already in place
	if other == l && (pos.cur == it.cur || pos.prev == it.cur) {
		return nil
	}
	next := step(l.alloc, it.cur, it.prev)
	c := other.detach(it.prev, it.cur, it.cur, next)
	other.size--
	c.n = 1
	l.attach(&c, pos.prev, pos.cur)
	return nil
}

// SpliceRange moves [first, last), which belongs to other, before pos. other
// may be l, in which case pos must not be strictly inside the range; pos at
// first or at last leaves the list as it is.
//
// O(1) within a list or for all of other, otherwise linear in the length of
// the range, which has to be counted.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) error {
	if first.cur == last.cur {
		return nil
	}
	if !l.sameAllocator(other) {
		return l.moveValues(pos, other, first, last)
	}
	if other == l {
		if pos.cur == first.cur || pos.cur == last.cur {
			return nil
		}
		c := l.detach(first.prev, first.cur, last.prev, last.cur)
		// the element count is unchanged, attach adds it back
		c.n = 0
		l.attach(&c, pos.prev, pos.cur)
		return nil
	}

	var n int
	if first.prev == other.sentinel && last.cur == other.sentinel {
		n = other.size
	} else {
		for it := first; !it.Equal(last); it = it.Next() {
			n++
		}
	}
	c := other.detach(first.prev, first.cur, last.prev, last.cur)
	other.size -= n
	c.n = n
	l.attach(&c, pos.prev, pos.cur)
	return nil
}

// moveValues is the splice fallback between allocators: it copies [first,
// last) before pos and then erases it from other.
func (l *List[T]) moveValues(pos Iterator[T], other *List[T], first, last Iterator[T]) error {
	if l.log != nil {
		l.log.Debugf("xorlist: splice across allocators, moving values")
	}
	_, err := l.InsertSeq(pos, func(yield func(T) bool) {
		for it := first; !it.Equal(last); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	})
	if err != nil {
		return err
	}
	other.EraseRange(first, last)
	return nil
}
