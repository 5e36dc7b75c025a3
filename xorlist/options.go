package xorlist

import (
	"github.com/AntoineSebert/xor-list/arena"
	"github.com/datatrails/go-datatrails-common/logger"
)

type Options struct {
	// allocator is an arena.Allocator[T] for the list's T, checked when the
	// list is created.
	allocator any
	log       logger.Logger
	arenaOpts []arena.Option
}

// Option is a generic option type. Constructors type assert the allocator
// against their element type.
type Option func(*Options)

// WithAllocator places the list's nodes, including its sentinel, in a. Lists
// sharing an allocator splice and merge without moving values.
func WithAllocator[T any](a arena.Allocator[T]) Option {
	return func(o *Options) {
		o.allocator = a
	}
}

// WithLogger overrides the logger. By default a list uses its allocator's
// logger, if it has one.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

// WithArenaOptions configures the private arena created when no allocator is
// provided.
func WithArenaOptions(opts ...arena.Option) Option {
	return func(o *Options) {
		o.arenaOpts = append(o.arenaOpts, opts...)
	}
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
