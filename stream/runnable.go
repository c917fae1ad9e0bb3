package stream

import (
	"context"
	"fmt"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/graph"
)

// Pair carries both materialized values when a source and sink are connected
// with ToKeepBoth.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Runnable is a fully connected blueprint ready to materialize. It holds no
// run state itself; every call to Run creates fresh stage instances, so one
// Runnable can be materialized any number of times, concurrently or not.
type Runnable[Mat any] struct {
	bp    graph.Blueprint
	start func(ctx context.Context) (Mat, *pipelineRuntime)
}

// Blueprint returns the connected stage description.
func (r Runnable[Mat]) Blueprint() graph.Blueprint { return r.bp }

// pipelineRuntime is the untyped execution surface of one materialization
// handed to the materializer's run goroutine.
type pipelineRuntime struct {
	consume func(ctx context.Context) (int64, error)
	fail    func(error)
	close   func() error
	cancel  Cancellable
}

// safeConsume drives the pipeline and converts stage panics into a terminal
// error so the materialized future always resolves.
func (p *pipelineRuntime) safeConsume(ctx context.Context) (n int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Internal(fmt.Errorf("stage panicked: %v", r))
			p.fail(err)
		}
	}()
	return p.consume(ctx)
}

// To connects a source to a sink keeping the sink's materialized value. This
// is the default combine policy, which is what drops a tick source's
// Cancellable unless ToKeepLeft or ToKeepBoth is used instead.
func To[Out, L, R any](src Source[Out, L], snk Sink[Out, R]) Runnable[R] {
	return toMat(src, snk, graph.KeepRight, func(_ L, r R) R { return r })
}

// ToKeepLeft connects a source to a sink keeping the source's materialized
// value.
func ToKeepLeft[Out, L, R any](src Source[Out, L], snk Sink[Out, R]) Runnable[L] {
	return toMat(src, snk, graph.KeepLeft, func(l L, _ R) L { return l })
}

// ToKeepBoth connects a source to a sink keeping both materialized values.
func ToKeepBoth[Out, L, R any](src Source[Out, L], snk Sink[Out, R]) Runnable[Pair[L, R]] {
	return toMat(src, snk, graph.KeepBoth, func(l L, r R) Pair[L, R] {
		return Pair[L, R]{Left: l, Right: r}
	})
}

// ToMat connects a source to a sink with a caller supplied combine function.
func ToMat[Out, L, R, M any](src Source[Out, L], snk Sink[Out, R], combine func(L, R) M) Runnable[M] {
	return toMat(src, snk, graph.KeepCustom, combine)
}

func toMat[Out, L, R, M any](src Source[Out, L], snk Sink[Out, R], keep graph.Keep, combine func(L, R) M) Runnable[M] {
	bp := mustCompose(graph.Connect(src.bp, snk.bp, keep))
	return Runnable[M]{
		bp: bp,
		start: func(ctx context.Context) (M, *pipelineRuntime) {
			it, left := src.create(ctx)
			rt, right := snk.create()
			cancel, _ := any(left).(Cancellable)
			pr := &pipelineRuntime{
				consume: func(ctx context.Context) (int64, error) { return rt.consume(ctx, it) },
				fail:    rt.fail,
				close:   it.Close,
				cancel:  cancel,
			}
			return combine(left, right), pr
		},
	}
}

// RunWith connects src to snk keeping the sink's materialized value and runs
// the result with m. It is shorthand for To(src, snk).Run(ctx, m).
func RunWith[Out, L, R any](ctx context.Context, m *Materializer, src Source[Out, L], snk Sink[Out, R]) (R, *Run) {
	return To(src, snk).Run(ctx, m)
}
