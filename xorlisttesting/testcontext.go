package xorlisttesting

import (
	"errors"
	"testing"

	"github.com/AntoineSebert/xor-list/arena"
	"github.com/AntoineSebert/xor-list/xorlist"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/require"
)

var ErrInjected = errors.New("xorlisttesting: injected allocation failure")

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	// LogLevel is passed to logger.New, "NOOP" if empty.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	return TestContext{
		T:   t,
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// NewArena creates an arena that logs through the test context.
func NewArena[T any](c *TestContext, opts ...arena.Option) *arena.Arena[T] {
	a, err := arena.New[T](append([]arena.Option{arena.WithLogger(c.Log)}, opts...)...)
	require.NoError(c.T, err)
	return a
}

// NewList creates a list on a holding values.
func NewList[T any](t *testing.T, a arena.Allocator[T], values ...T) *xorlist.List[T] {
	l, err := xorlist.FromSlice(values, xorlist.WithAllocator(a))
	require.NoError(t, err)
	return l
}

// FailingAllocator allows Budget more allocations from the wrapped allocator
// and then fails with ErrInjected.
type FailingAllocator[T any] struct {
	arena.Allocator[T]
	Budget int
}

func (f *FailingAllocator[T]) Allocate() (arena.Ref, error) {
	if f.Budget <= 0 {
		return arena.NoRef, ErrInjected
	}
	f.Budget--
	return f.Allocator.Allocate()
}
