package arena

/*

# Slot arena for index linked structures

This package provides the node storage used by the xorlist package. It is a
slab of fixed shape records addressed by a stable integer handle, `Ref`,
rather than by Go pointer.

The handle exists because the xorlist stores the XOR of two neighbour
addresses in a single field. Go pointers can not be combined that way: the
garbage collector must be able to see every live pointer, and an XOR of two
pointers is not one. Handles into a slice carry the same algebra and are
stable for the lifetime of the node, whatever the slice does underneath.

## Handles

Ref 0 is reserved as `NoRef` and is never handed out. The list code relies on
this: a chain detached from its ring uses NoRef as the missing neighbour, and
XOR against 0 must not alias a real node.

	nodes: [ reserved | 1 | 2 | 3 | ... ]
	         NoRef

Freed slots are threaded onto a free list through their Link field and are
reused before the slab grows.

## Burden of knowledge

As with the rest of this module the low level api places a burden of
knowledge on the caller. Node(ref) for a freed or never allocated ref returns
storage that does not belong to anyone; Deallocate of a ref twice corrupts the
free list. Neither is detected.

## Pointer lifetime

Node returns a pointer into the slab. Allocate may move the slab, so the
pointer must not be retained across a call to Allocate.

*/
