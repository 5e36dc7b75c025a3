package xorlist

/*

# XOR linked list

This package provides List, a doubly linked sequence container whose nodes
carry a single link field instead of a prev and a next pointer. The field
holds the XOR of the handles of the node's two neighbours:

	link(n) = ref(prev) ^ ref(next)

Given the neighbour we arrived from, the other one falls out of the same
field:

	to = link(n) ^ from

Everything else in the package is built on that one step and on the two
rewiring rules below.

## Handles, not pointers

The garbage collector must see every live pointer, so the XOR is taken over
arena.Ref slot handles. Node storage is provided by an arena.Allocator; by
default each list gets a private arena.Arena. Lists that are created on the
same allocator (WithAllocator) can exchange nodes with Splice and Merge in
O(1). Between allocators those operations fall back to moving values.

## The sentinel

Every list owns one sentinel node allocated from its arena. It closes the
elements into a ring:

	  +------------------------------------------+
	  |                                          |
	  s  <->  e0  <->  e1  <->  ...  <->  en-1 --+

	link(s)  = ref(en-1) ^ ref(e0)
	link(e0) = ref(s)    ^ ref(e1)

A combined field can only be decoded relative to a known neighbour, so the
list additionally remembers head, the first element. The last element is
then link(s) ^ head. For an empty list head is the sentinel itself and
link(s) is s ^ s == 0. Empty() is answered from the element count; nothing
walks through a self linked sentinel.

## Iterators carry where they came from

An Iterator is the pair (cur, prev). Next is (link(cur) ^ prev, cur) and Prev
is (prev, link(prev) ^ cur). End() is (s, last), so stepping back from End
reaches the last element and stepping forward from the last element reaches
End.

Because the stored pair {prev, next} is unordered, nothing in a node says
which way is forward. A ReverseIterator is the same pair with the carried
neighbour on the other side, and Reverse() is O(1): it only moves head to the
other end of the ring. No node is touched.

The price is in invalidation. An Iterator is only valid while its element and
the neighbour it carries remain adjacent: erasing or moving either of them,
or inserting between them, invalidates it. Reverse flips the direction of
every outstanding iterator without invalidating it: an iterator taken before
Reverse still steps away from the neighbour it carries, and Insert, Erase and
Splice through it act on that same pair of nodes.

## Rewiring

Inserting x between neighbours a and b touches three link fields:

	link(x)  = a ^ b
	link(a) ^= b ^ x
	link(b) ^= a ^ x

and removing it touches two:

	link(a) ^= x ^ b
	link(b) ^= x ^ a

Neither depends on the length of the list. The same identities hold when
a == b, which is the case for the first element inserted into an empty list
(both neighbours are the sentinel).

Splice generalises this to a run of nodes: only the two nodes at each end of
the run and the two nodes either side of each gap are rewritten. Merge, Sort,
Unique and Remove are expressed in terms of detaching and attaching runs;
element values are never copied between nodes.

## Burden of knowledge

In common with the rest of this module, preconditions that can not be checked
in O(1) are the caller's to keep. Passing an iterator from another list, or an
invalidated one, yields nonsense results that are not detected.

*/
