package xorlist

// Reverse reverses the order of the elements in O(1).
//
// Link fields do not record a direction, so reversing only moves head to the
// other end of the ring. No node is touched. Outstanding iterators keep their
// element but now walk in the opposite direction. They remain valid for every
// operation, including Insert, Erase and the Splice family, which place and
// remove elements relative to the neighbour the iterator carries.
func (l *List[T]) Reverse() {
	if l.size < 2 {
		return
	}
	l.head = l.last()
}

// MergeFunc merges other into l. Both lists must be sorted by cmp; the
// result is sorted, equal elements from l precede those from other, and other
// is left empty.
//
// On a shared allocator nodes are relinked and no value is copied. If cmp
// panics, every element ends up in l in an unspecified order. Between
// allocators values are moved instead; if cmp panics the elements merged so
// far are in l and the rest remain in other.
func (l *List[T]) MergeFunc(other *List[T], cmp func(a, b T) int) error {
	if other == l || other.size == 0 {
		return nil
	}
	if !l.sameAllocator(other) {
		return l.mergeValues(other, cmp)
	}

	a, b := l.detachAll(), other.detachAll()
	var out chain
	defer func() {
		// on a cmp panic a and b still hold the unmerged remainder
		l.concat(&out, &a)
		l.concat(&out, &b)
		l.attach(&out, l.sentinel, l.sentinel)
	}()
	for !a.empty() && !b.empty() {
		if cmp(l.value(b.head), l.value(a.head)) < 0 {
			l.pushBack(&out, l.popFront(&b))
		} else {
			l.pushBack(&out, l.popFront(&a))
		}
	}
	return nil
}

// mergeValues is the merge fallback between allocators. Values from other are
// copied into place and erased from other as a block when the merge ends. If
// the allocator fails, or cmp panics, only the values copied so far are erased
// from other, so no element is lost or duplicated.
func (l *List[T]) mergeValues(other *List[T], cmp func(a, b T) int) error {
	if l.log != nil {
		l.log.Debugf("xorlist: merge across allocators, moving %d values", other.size)
	}
	it, jt := l.Begin(), other.Begin()
	defer func() {
		// everything before jt is in l
		other.EraseRange(other.Begin(), jt)
	}()
	for !jt.Equal(other.End()) {
		if !it.Equal(l.End()) && cmp(jt.Value(), it.Value()) >= 0 {
			it = it.Next()
			continue
		}
		ins, err := l.Insert(it, jt.Value())
		if err != nil {
			return err
		}
		it = ins.Next()
		jt = jt.Next()
	}
	return nil
}

// RemoveFunc removes every element for which pred returns true and returns
// how many were removed. pred is called once per element. Runs of matching
// elements are cut out and destroyed together.
func (l *List[T]) RemoveFunc(pred func(T) bool) int {
	removed := 0
	prev, cur := l.sentinel, l.head
	for cur != l.sentinel {
		if !pred(l.value(cur)) {
			prev, cur = cur, step(l.alloc, cur, prev)
			continue
		}
		last, next := cur, step(l.alloc, cur, prev)
		for next != l.sentinel && pred(l.value(next)) {
			last, next = next, step(l.alloc, next, last)
		}
		c := l.detach(prev, cur, last, next)
		n := l.release(&c)
		l.size -= n
		removed += n

		// next is already known not to match
		if next == l.sentinel {
			break
		}
		prev, cur = next, step(l.alloc, next, prev)
	}
	return removed
}

// UniqueFunc removes all but the first of every run of consecutive elements
// equal to it under eq, and returns how many were removed. eq is called with
// the first element of the run and the candidate.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	removed := 0
	prev, cur := l.sentinel, l.head
	for cur != l.sentinel {
		first := step(l.alloc, cur, prev)
		last, next := cur, first
		for next != l.sentinel && eq(l.value(cur), l.value(next)) {
			last, next = next, step(l.alloc, next, last)
		}
		if next != first {
			c := l.detach(cur, first, last, next)
			n := l.release(&c)
			l.size -= n
			removed += n
		}
		prev, cur = cur, next
	}
	return removed
}
