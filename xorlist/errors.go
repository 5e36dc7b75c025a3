package xorlist

import "errors"

var (
	ErrEmpty         = errors.New("xorlist: empty list")
	ErrAllocatorType = errors.New("xorlist: allocator does not store the list element type")
	ErrTooLarge      = errors.New("xorlist: requested size exceeds the allocator limit")
	ErrNegativeCount = errors.New("xorlist: negative element count")
)
