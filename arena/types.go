package arena

import (
	"errors"
	"math"
)

// Ref is a node slot index.
type Ref uint32

// NoRef is never allocated. XOR against it is the identity.
const NoRef = Ref(0)

// MaxRef is the largest handle an arena will hand out.
const MaxRef = ^Ref(0) - 1

// maxNodesLimit is MaxRef expressed as an int on every platform.
var maxNodesLimit = int(min(uint64(MaxRef), uint64(math.MaxInt)))

var (
	ErrArenaFull   = errors.New("arena: no free node slots")
	ErrBadMaxNodes = errors.New("arena: max nodes must not be negative or exceed the handle width")
	ErrBadCapacity = errors.New("arena: capacity must not be negative or exceed max nodes")
)
