package stream

import (
	"context"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/graph"
)

// Sink describes how to consume elements of type In. Materializing it yields
// a value of type Mat, typically a *Future that resolves when the run ends.
// create is called once per materialization, so accumulators and futures are
// fresh for every run.
type Sink[In, Mat any] struct {
	bp     graph.Blueprint
	create func() (*sinkRuntime[In], Mat)
}

// Blueprint returns the sink's stage description.
func (s Sink[In, Mat]) Blueprint() graph.Blueprint { return s.bp }

// sinkRuntime is one materialized sink instance. consume drives the upstream
// iterator to completion and resolves the materialized future; fail resolves
// it exceptionally when consume itself cannot (e.g. a recovered panic).
type sinkRuntime[In any] struct {
	consume func(ctx context.Context, in Iterator[In]) (int64, error)
	fail    func(error)
}

// Fold creates a sink that folds all elements into an accumulator starting
// from seed. Its materialized value resolves to the final accumulator. The
// accumulator is confined to the run's goroutine; two runs never share one.
func Fold[In, Acc any](seed Acc, fn func(Acc, In) Acc) Sink[In, *Future[Acc]] {
	return Sink[In, *Future[Acc]]{
		bp: sinkStage[In]("fold"),
		create: func() (*sinkRuntime[In], *Future[Acc]) {
			fut := NewFuture[Acc]()
			return &sinkRuntime[In]{
				fail: func(err error) { fut.Fail(err) },
				consume: func(ctx context.Context, in Iterator[In]) (int64, error) {
					acc := seed
					var n int64
					for {
						v, ok, err := in.Next(ctx)
						if err != nil {
							fut.Fail(err)
							return n, err
						}
						if !ok {
							break
						}
						n++
						acc = fn(acc, v)
					}
					fut.Complete(acc)
					return n, nil
				},
			}, fut
		},
	}
}

// Head creates a sink that resolves with the first element and stops pulling.
// An empty stream fails the materialized value with NO_ELEMENTS.
func Head[In any]() Sink[In, *Future[In]] {
	return Sink[In, *Future[In]]{
		bp: sinkStage[In]("head"),
		create: func() (*sinkRuntime[In], *Future[In]) {
			fut := NewFuture[In]()
			return &sinkRuntime[In]{
				fail: func(err error) { fut.Fail(err) },
				consume: func(ctx context.Context, in Iterator[In]) (int64, error) {
					v, ok, err := in.Next(ctx)
					if err != nil {
						fut.Fail(err)
						return 0, err
					}
					if !ok {
						err := errors.NoElements("head")
						fut.Fail(err)
						return 0, err
					}
					fut.Complete(v)
					return 1, nil
				},
			}, fut
		},
	}
}

// Ignore creates a sink that consumes the stream without using the elements.
// Its materialized value resolves when the stream completes.
func Ignore[In any]() Sink[In, *Future[NotUsed]] {
	return Sink[In, *Future[NotUsed]]{
		bp: sinkStage[In]("ignore"),
		create: func() (*sinkRuntime[In], *Future[NotUsed]) {
			fut := NewFuture[NotUsed]()
			return &sinkRuntime[In]{
				fail: func(err error) { fut.Fail(err) },
				consume: func(ctx context.Context, in Iterator[In]) (int64, error) {
					var n int64
					for {
						_, ok, err := in.Next(ctx)
						if err != nil {
							fut.Fail(err)
							return n, err
						}
						if !ok {
							fut.Complete(NotUsed{})
							return n, nil
						}
						n++
					}
				},
			}, fut
		},
	}
}

// Foreach creates a sink that runs fn for every element. Its materialized
// value resolves when the stream completes, or fails with fn's first error.
func Foreach[In any](fn func(context.Context, In) error) Sink[In, *Future[NotUsed]] {
	return Sink[In, *Future[NotUsed]]{
		bp: sinkStage[In]("foreach"),
		create: func() (*sinkRuntime[In], *Future[NotUsed]) {
			fut := NewFuture[NotUsed]()
			return &sinkRuntime[In]{
				fail: func(err error) { fut.Fail(err) },
				consume: func(ctx context.Context, in Iterator[In]) (int64, error) {
					var n int64
					for {
						v, ok, err := in.Next(ctx)
						if err != nil {
							fut.Fail(err)
							return n, err
						}
						if !ok {
							fut.Complete(NotUsed{})
							return n, nil
						}
						n++
						if err := fn(ctx, v); err != nil {
							fut.Fail(err)
							return n, err
						}
					}
				},
			}, fut
		},
	}
}

// Seq creates a sink that collects all elements into a slice.
func Seq[In any]() Sink[In, *Future[[]In]] {
	return Sink[In, *Future[[]In]]{
		bp: sinkStage[In]("seq"),
		create: func() (*sinkRuntime[In], *Future[[]In]) {
			fut := NewFuture[[]In]()
			return &sinkRuntime[In]{
				fail: func(err error) { fut.Fail(err) },
				consume: func(ctx context.Context, in Iterator[In]) (int64, error) {
					var out []In
					for {
						v, ok, err := in.Next(ctx)
						if err != nil {
							fut.Fail(err)
							return int64(len(out)), err
						}
						if !ok {
							fut.Complete(out)
							return int64(len(out)), nil
						}
						out = append(out, v)
					}
				},
			}, fut
		},
	}
}

func sinkStage[In any](name string) graph.Blueprint {
	return graph.New(graph.NewStage(name, graph.RoleSink, typeFor[In](), nil))
}
