package stream

import (
	"context"
	"reflect"
	"time"

	"github.com/kbukum/streamkit/graph"
)

// NotUsed is the materialized value of endpoints that produce nothing useful
// at materialization time.
type NotUsed struct{}

// Source describes how to produce elements of type Out. Materializing it also
// yields a value of type Mat (NotUsed for plain sources, a Cancellable for
// Tick). A Source is immutable: every combinator returns a new Source backed
// by a fresh-state factory, so the original stays independently usable and
// each materialization gets its own instances.
type Source[Out, Mat any] struct {
	bp     graph.Blueprint
	create func(ctx context.Context) (Iterator[Out], Mat)
}

// Blueprint returns the source's stage description.
func (s Source[Out, Mat]) Blueprint() graph.Blueprint { return s.bp }

// From creates a source emitting the given elements in order.
func From[T any](elements ...T) Source[T, NotUsed] {
	return FromSlice(elements)
}

// FromSlice creates a source emitting the slice's elements in order.
func FromSlice[T any](items []T) Source[T, NotUsed] {
	return Source[T, NotUsed]{
		bp: sourceStage[T]("from"),
		create: func(_ context.Context) (Iterator[T], NotUsed) {
			return &sliceIter[T]{items: items}, NotUsed{}
		},
	}
}

// Single creates a source emitting exactly one element.
func Single[T any](element T) Source[T, NotUsed] {
	return Source[T, NotUsed]{
		bp: sourceStage[T]("single"),
		create: func(_ context.Context) (Iterator[T], NotUsed) {
			return &sliceIter[T]{items: []T{element}}, NotUsed{}
		},
	}
}

// Empty creates a source that completes without emitting anything.
func Empty[T any]() Source[T, NotUsed] {
	return Source[T, NotUsed]{
		bp: sourceStage[T]("empty"),
		create: func(_ context.Context) (Iterator[T], NotUsed) {
			return emptyIter[T]{}, NotUsed{}
		},
	}
}

// FromFuture creates a source emitting the future's value once it resolves.
// A failed future fails the stream.
func FromFuture[T any](f *Future[T]) Source[T, NotUsed] {
	return Source[T, NotUsed]{
		bp: sourceStage[T]("future"),
		create: func(_ context.Context) (Iterator[T], NotUsed) {
			return &futureIter[T]{future: f}, NotUsed{}
		},
	}
}

// Repeat creates an infinite source emitting the same element. Pair it with
// Take or a cancelling sink side.
func Repeat[T any](element T) Source[T, NotUsed] {
	return Source[T, NotUsed]{
		bp: sourceStage[T]("repeat"),
		create: func(_ context.Context) (Iterator[T], NotUsed) {
			return &repeatIter[T]{element: element}, NotUsed{}
		},
	}
}

// Tick creates a periodic source that emits element after initialDelay and
// then every interval. Its materialized value is a Cancellable; every
// materialization starts an independent timer, and cancelling one run's
// handle stops that run's ticks only. An interval <= 0 is clamped to 1ms.
func Tick[T any](initialDelay, interval time.Duration, element T) Source[T, Cancellable] {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return Source[T, Cancellable]{
		bp: sourceStage[T]("tick"),
		create: func(_ context.Context) (Iterator[T], Cancellable) {
			c := newCancellation()
			return &tickIter[T]{
				delay:    initialDelay,
				interval: interval,
				element:  element,
				cancel:   c,
			}, c
		},
	}
}

func sourceStage[T any](name string) graph.Blueprint {
	return graph.New(graph.NewStage(name, graph.RoleSource, nil, typeFor[T]()))
}

func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// mustCompose unwraps blueprint composition results in the typed API, where
// the generic signatures already guarantee element types line up.
func mustCompose(bp graph.Blueprint, err error) graph.Blueprint {
	if err != nil {
		panic(err)
	}
	return bp
}
