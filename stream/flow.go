package stream

import (
	"context"

	"github.com/kbukum/streamkit/graph"
)

// Flow describes a reusable element transformation with open input and
// output. Like Source, a Flow is immutable; combinators return new flows.
type Flow[In, Out any] struct {
	bp   graph.Blueprint
	wrap func(Iterator[In]) Iterator[Out]
}

// Blueprint returns the flow's stage description.
func (f Flow[In, Out]) Blueprint() graph.Blueprint { return f.bp }

// FlowOf creates an identity flow, the starting point for building a
// standalone transformation chain.
func FlowOf[T any]() Flow[T, T] {
	return Flow[T, T]{
		wrap: func(in Iterator[T]) Iterator[T] { return in },
	}
}

// MapFlow appends a transformation stage to a flow.
func MapFlow[In, A, B any](f Flow[In, A], fn func(context.Context, A) (B, error)) Flow[In, B] {
	return Flow[In, B]{
		bp: mustCompose(f.bp.Append(flowStage[A, B]("map"))),
		wrap: func(in Iterator[In]) Iterator[B] {
			return &mapIter[A, B]{source: f.wrap(in), fn: fn}
		},
	}
}

// FilterFlow appends a predicate stage to a flow.
func FilterFlow[In, Out any](f Flow[In, Out], fn func(Out) bool) Flow[In, Out] {
	return Flow[In, Out]{
		bp: mustCompose(f.bp.Append(flowStage[Out, Out]("filter"))),
		wrap: func(in Iterator[In]) Iterator[Out] {
			return &filterIter[Out]{source: f.wrap(in), fn: fn}
		},
	}
}

// TakeFlow appends a stage that ends the stream after n elements.
func TakeFlow[In, Out any](f Flow[In, Out], n int) Flow[In, Out] {
	return Flow[In, Out]{
		bp: mustCompose(f.bp.Append(flowStage[Out, Out]("take"))),
		wrap: func(in Iterator[In]) Iterator[Out] {
			return &takeIter[Out]{source: f.wrap(in), left: n}
		},
	}
}

// Via returns a new source with the flow appended. The source's materialized
// value type is unchanged: transforming a Tick source still materializes the
// timer's Cancellable, no matter how many stages are appended. Only the keep
// policy chosen at connect time decides which endpoint's value survives.
func Via[In, Out, Mat any](src Source[In, Mat], f Flow[In, Out]) Source[Out, Mat] {
	return Source[Out, Mat]{
		bp: mustCompose(src.bp.Extend(f.bp)),
		create: func(ctx context.Context) (Iterator[Out], Mat) {
			it, mat := src.create(ctx)
			return f.wrap(it), mat
		},
	}
}

// Map returns a new source with a transformation appended. The original
// source is unaffected and stays independently runnable.
func Map[In, Out, Mat any](src Source[In, Mat], fn func(context.Context, In) (Out, error)) Source[Out, Mat] {
	return Source[Out, Mat]{
		bp: mustCompose(src.bp.Append(flowStage[In, Out]("map"))),
		create: func(ctx context.Context) (Iterator[Out], Mat) {
			it, mat := src.create(ctx)
			return &mapIter[In, Out]{source: it, fn: fn}, mat
		},
	}
}

// Filter returns a new source keeping only elements that satisfy fn.
func Filter[T, Mat any](src Source[T, Mat], fn func(T) bool) Source[T, Mat] {
	return Source[T, Mat]{
		bp: mustCompose(src.bp.Append(flowStage[T, T]("filter"))),
		create: func(ctx context.Context) (Iterator[T], Mat) {
			it, mat := src.create(ctx)
			return &filterIter[T]{source: it, fn: fn}, mat
		},
	}
}

// Take returns a new source that completes after n elements.
func Take[T, Mat any](src Source[T, Mat], n int) Source[T, Mat] {
	return Source[T, Mat]{
		bp: mustCompose(src.bp.Append(flowStage[T, T]("take"))),
		create: func(ctx context.Context) (Iterator[T], Mat) {
			it, mat := src.create(ctx)
			return &takeIter[T]{source: it, left: n}, mat
		},
	}
}

// FlowTo prepends a flow to a sink, producing a new sink. This composes a
// pipeline from the sink end; the sink's materialized value type is kept.
func FlowTo[In, Out, Mat any](f Flow[In, Out], snk Sink[Out, Mat]) Sink[In, Mat] {
	return Sink[In, Mat]{
		bp: mustCompose(f.bp.Extend(snk.bp)),
		create: func() (*sinkRuntime[In], Mat) {
			inner, mat := snk.create()
			return &sinkRuntime[In]{
				fail: inner.fail,
				consume: func(ctx context.Context, in Iterator[In]) (int64, error) {
					return inner.consume(ctx, f.wrap(in))
				},
			}, mat
		},
	}
}

func flowStage[In, Out any](name string) graph.Stage {
	return graph.NewStage(name, graph.RoleFlow, typeFor[In](), typeFor[Out]())
}
