package stream

import (
	"context"
	"time"
)

// Iterator provides pull-based sequential access to a stream of elements.
type Iterator[T any] interface {
	// Next returns the next element. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// sliceIter yields the elements of a slice in order.
type sliceIter[T any] struct {
	items []T
	pos   int
}

func (it *sliceIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	if it.pos >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	v := it.items[it.pos]
	it.pos++
	return v, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

// emptyIter yields nothing.
type emptyIter[T any] struct{}

func (emptyIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	return zero, false, nil
}

func (emptyIter[T]) Close() error { return nil }

// repeatIter yields the same element forever.
type repeatIter[T any] struct {
	element T
}

func (it *repeatIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	return it.element, true, nil
}

func (it *repeatIter[T]) Close() error { return nil }

// futureIter yields the value of a future once it completes, then ends.
type futureIter[T any] struct {
	future  *Future[T]
	emitted bool
}

func (it *futureIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.emitted {
		return zero, false, nil
	}
	select {
	case <-it.future.Done():
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
	it.emitted = true
	v, err, _ := it.future.TryValue()
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (it *futureIter[T]) Close() error { return nil }

// tickIter emits the same element periodically until cancelled. Each iterator
// owns its own timer, so independent runs tick independently.
type tickIter[T any] struct {
	delay    time.Duration
	interval time.Duration
	element  T
	cancel   *cancellation
	timer    *time.Timer
}

func (it *tickIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.timer == nil {
		it.timer = time.NewTimer(it.delay)
	}
	select {
	case <-it.cancel.Done():
		return zero, false, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case <-it.timer.C:
		it.timer.Reset(it.interval)
		return it.element, true, nil
	}
}

func (it *tickIter[T]) Close() error {
	if it.timer != nil {
		it.timer.Stop()
	}
	return nil
}

// mapIter transforms each element with fn.
type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

// filterIter keeps only elements that satisfy the predicate.
type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

// takeIter ends the stream after n elements.
type takeIter[T any] struct {
	source Iterator[T]
	left   int
}

func (it *takeIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.left <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	it.left--
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }
