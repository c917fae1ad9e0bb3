package stream

import (
	"context"
	"sync"
	"time"

	"github.com/kbukum/streamkit/errors"
)

// DefaultAwaitTimeout is used by Await when no timeout is configured.
const DefaultAwaitTimeout = 3 * time.Second

// Future is a write-once container for a value that becomes available when a
// run completes. It is completed exactly once, by whichever of Complete or
// Fail wins.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// NewFuture creates an incomplete future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// CompletedFuture creates a future already completed with v.
func CompletedFuture[T any](v T) *Future[T] {
	f := NewFuture[T]()
	f.Complete(v)
	return f
}

// FailedFuture creates a future already failed with err.
func FailedFuture[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Fail(err)
	return f
}

// Complete resolves the future with v. Returns false if it was already resolved.
func (f *Future[T]) Complete(v T) bool {
	won := false
	f.once.Do(func() {
		f.val = v
		won = true
		close(f.done)
	})
	return won
}

// Fail resolves the future with err. Returns false if it was already resolved.
func (f *Future[T]) Fail(err error) bool {
	won := false
	f.once.Do(func() {
		f.err = err
		won = true
		close(f.done)
	})
	return won
}

// Done returns a channel closed when the future resolves.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// IsCompleted reports whether the future has resolved.
func (f *Future[T]) IsCompleted() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// TryValue returns the resolved value and error without blocking. The bool
// reports whether the future has resolved at all.
func (f *Future[T]) TryValue() (T, error, bool) {
	select {
	case <-f.done:
		return f.val, f.err, true
	default:
		var zero T
		return zero, nil, false
	}
}

// Await blocks until the future resolves, the context is cancelled, or the
// timeout elapses. A timeout is a caller-side condition: the run backing the
// future keeps going and a later Await may still succeed. A timeout <= 0
// falls back to DefaultAwaitTimeout.
func (f *Future[T]) Await(ctx context.Context, timeout time.Duration) (T, error) {
	if timeout <= 0 {
		timeout = DefaultAwaitTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case <-f.done:
		if f.err != nil {
			return zero, f.err
		}
		return f.val, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-timer.C:
		return zero, errors.AwaitTimeout("await materialized value")
	}
}
