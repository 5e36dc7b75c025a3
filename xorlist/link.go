package xorlist

import "github.com/AntoineSebert/xor-list/arena"

// step returns the neighbour of cur that is not from.
//
// from must be one of cur's two neighbours.
func step[T any](a arena.Allocator[T], cur, from arena.Ref) arena.Ref {
	return a.Node(cur).Link ^ from
}

// relink replaces the neighbour from of n with to.
func relink[T any](a arena.Allocator[T], n, from, to arena.Ref) {
	a.Node(n).Link ^= from ^ to
}

// wire links x between the adjacent nodes prev and next.
func wire[T any](a arena.Allocator[T], x, prev, next arena.Ref) {
	a.Node(x).Link = prev ^ next
	relink(a, prev, next, x)
	relink(a, next, prev, x)
}

// unwire removes x from between prev and next, leaving them adjacent. x's own
// link is left as it was.
func unwire[T any](a arena.Allocator[T], x, prev, next arena.Ref) {
	relink(a, prev, x, next)
	relink(a, next, x, prev)
}

// front reports whether the gap between the adjacent nodes a and b, in either
// order, is the one before the first element. With at most one element both
// gaps join the sentinel and head, and the gap counts as the front only when a
// is the sentinel.
func (l *List[T]) front(a, b arena.Ref) bool {
	if a == l.sentinel && b == l.head {
		return true
	}
	return b == l.sentinel && a == l.head && l.head != l.last()
}

// unhead moves head off the run first..last if the run is about to be cut
// out, prev and next being its outer neighbours in either direction.
func (l *List[T]) unhead(prev, first, last, next arena.Ref) {
	switch {
	case first == l.head && prev == l.sentinel:
		l.head = next
	case last == l.head && next == l.sentinel:
		l.head = prev
	}
}

// chain is a run of nodes detached from any ring. The outer neighbour of
// both ends is arena.NoRef, so a chain decodes from its head with from ==
// NoRef.
type chain struct {
	head, tail arena.Ref
	n          int
}

func (c *chain) empty() bool { return c.head == arena.NoRef }

// detach cuts the run first..last out of the ring, where prev precedes first
// and next follows last. prev and next become adjacent. The caller accounts
// for the element count.
//
// prev and next need only be the outer neighbours of the run, in either
// direction around the ring.
func (l *List[T]) detach(prev, first, last, next arena.Ref) chain {
	relink(l.alloc, prev, first, next)
	relink(l.alloc, next, last, prev)
	relink(l.alloc, first, prev, arena.NoRef)
	relink(l.alloc, last, next, arena.NoRef)
	l.unhead(prev, first, last, next)
	return chain{head: first, tail: last}
}

// attach links c between the adjacent nodes prev and next and adds c.n to the
// element count. c is left empty.
func (l *List[T]) attach(c *chain, prev, next arena.Ref) {
	if c.empty() {
		return
	}
	front := l.front(prev, next)
	relink(l.alloc, prev, next, c.head)
	relink(l.alloc, next, prev, c.tail)
	relink(l.alloc, c.head, arena.NoRef, prev)
	relink(l.alloc, c.tail, arena.NoRef, next)
	if front {
		// the end of the chain that now neighbours the sentinel
		if prev == l.sentinel {
			l.head = c.head
		} else {
			l.head = c.tail
		}
	}
	l.size += c.n
	*c = chain{}
}

// detachAll moves every element into a chain, leaving the list empty.
func (l *List[T]) detachAll() chain {
	if l.size == 0 {
		return chain{}
	}
	c := l.detach(l.sentinel, l.head, l.last(), l.sentinel)
	c.n = l.size
	l.size = 0
	return c
}

// popFront removes and returns the head of a non empty chain as an isolated
// node.
func (l *List[T]) popFront(c *chain) arena.Ref {
	x := c.head
	next := step(l.alloc, x, arena.NoRef)
	if next != arena.NoRef {
		relink(l.alloc, next, x, arena.NoRef)
	} else {
		c.tail = arena.NoRef
	}
	c.head = next
	c.n--
	l.alloc.Node(x).Link = arena.NoRef
	return x
}

// pushBack appends the isolated node x to c.
func (l *List[T]) pushBack(c *chain, x arena.Ref) {
	if c.empty() {
		c.head, c.tail = x, x
	} else {
		relink(l.alloc, c.tail, arena.NoRef, x)
		l.alloc.Node(x).Link = c.tail
		c.tail = x
	}
	c.n++
}

// concat appends all of d to c, leaving d empty.
func (l *List[T]) concat(c, d *chain) {
	if d.empty() {
		return
	}
	if c.empty() {
		*c, *d = *d, chain{}
		return
	}
	relink(l.alloc, c.tail, arena.NoRef, d.head)
	relink(l.alloc, d.head, arena.NoRef, c.tail)
	c.tail = d.tail
	c.n += d.n
	*d = chain{}
}

// release destroys every node of c and returns how many there were. The
// element count is not adjusted.
func (l *List[T]) release(c *chain) int {
	n := 0
	for cur, from := c.head, arena.NoRef; cur != arena.NoRef; n++ {
		next := step(l.alloc, cur, from)
		l.alloc.Deallocate(cur)
		cur, from = next, cur
	}
	*c = chain{}
	return n
}
