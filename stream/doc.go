// Package stream provides a typed, composable streaming model: sources emit
// elements, flows transform them, sinks consume them. Blueprints are inert
// and immutable; nothing runs until a connected blueprint is handed to a
// Materializer, and every Run call creates fresh stage state, so the same
// blueprint can be materialized many times concurrently.
//
// # Composition
//
// Combinators never mutate their receiver. Map, Filter and Take return new
// sources; Via applies a reusable Flow; To, ToKeepLeft, ToKeepBoth and ToMat
// connect a source to a sink into a Runnable. Element types line up at
// compile time through generics.
//
// # Materialized values
//
// Each source and sink contributes a materialized value per run: a fold sink
// yields a *Future with the final accumulator, a tick source yields a
// Cancellable, plain sources yield NotUsed. The connect call decides which
// side survives; To keeps the sink's value. Transforming a source does not
// change its materialized type, so a mapped tick source still carries the
// Cancellable, but only ToKeepLeft or ToKeepBoth will hand it to the caller.
//
// # Usage
//
//	src := stream.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
//	sum := stream.Fold(0, func(acc, n int) int { return acc + n })
//
//	m := stream.NewMaterializer()
//	fut, _ := stream.To(src, sum).Run(ctx, m)
//	total, err := stream.Await(ctx, m, fut)
//
// Keeping a tick source's Cancellable:
//
//	ticks := stream.Tick(0, time.Second, "tick")
//	cancel, run := stream.ToKeepLeft(ticks, stream.Ignore[string]()).Run(ctx, m)
//	cancel.Cancel()
//	<-run.Done()
package stream
