package arena

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

type Options struct {
	// capacity is the number of slots reserved up front.
	capacity int
	// maxNodes bounds the slab, 0 means the handle width is the only limit.
	maxNodes int
	log      logger.Logger
	id       uuid.UUID
}

type Option func(*Options)

// WithCapacity reserves room for n nodes so the first n allocations do not
// move the slab.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.capacity = n
	}
}

// WithMaxNodes bounds the arena. Allocate fails with ErrArenaFull once n nodes
// are live.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		o.maxNodes = n
	}
}

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

// WithID sets the identity reported in logs and errors. By default a random
// one is generated.
func WithID(id uuid.UUID) Option {
	return func(o *Options) {
		o.id = id
	}
}
