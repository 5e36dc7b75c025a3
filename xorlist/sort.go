package xorlist

// buckets bounds the number of elements the sorter can handle at 2^buckets.
const buckets = 64

// sorter is a bottom up merge sort over detached chains. bucket[i] holds a
// sorted chain of 2^i elements or is empty; each element taken from input is
// carried up through the occupied buckets, the way a binary counter is
// incremented.
//
// Every node is reachable from the sorter's fields at all times, so restore
// can put the list back together whatever cmp does.
type sorter[T any] struct {
	l   *List[T]
	cmp func(a, b T) int

	input  chain
	carry  chain
	out    chain
	bucket [buckets]chain
}

// SortFunc sorts the list by cmp. The sort is stable and takes O(N log N)
// comparisons. Nodes are relinked, no value is copied and iterators keep
// their elements, though not their neighbours.
//
// If cmp panics, the list keeps all its elements in an unspecified order.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	if l.size < 2 {
		return
	}
	s := &sorter[T]{l: l, cmp: cmp}
	s.input = l.detachAll()
	defer s.restore()
	s.run()
}

func (s *sorter[T]) run() {
	l := s.l
	for !s.input.empty() {
		l.pushBack(&s.carry, l.popFront(&s.input))

		i := 0
		for ; i < buckets-1 && !s.bucket[i].empty(); i++ {
			// bucket[i] is older, it goes first to keep the sort stable
			s.merge(&s.bucket[i], &s.carry)
		}
		s.bucket[i], s.carry = s.carry, chain{}
	}
	for i := range s.bucket {
		s.merge(&s.bucket[i], &s.carry)
	}
}

// merge merges first and second into second, taking from first on ties.
// first is left empty.
func (s *sorter[T]) merge(first, second *chain) {
	l := s.l
	for !first.empty() && !second.empty() {
		if s.cmp(l.value(second.head), l.value(first.head)) < 0 {
			l.pushBack(&s.out, l.popFront(second))
		} else {
			l.pushBack(&s.out, l.popFront(first))
		}
	}
	l.concat(&s.out, first)
	l.concat(&s.out, second)
	*second, s.out = s.out, chain{}
}

// restore reattaches everything to the list. After a normal run only carry
// is non empty.
func (s *sorter[T]) restore() {
	l := s.l
	var all chain
	l.concat(&all, &s.carry)
	l.concat(&all, &s.out)
	l.concat(&all, &s.input)
	for i := range s.bucket {
		l.concat(&all, &s.bucket[i])
	}
	l.attach(&all, l.sentinel, l.sentinel)
}
