// Package observability provides OpenTelemetry tracing and metrics integration
// for stream materialization.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-app"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanStreamRun)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewStreamMetrics(observability.Meter("my-app"))
//	metrics.RecordRunEnd(ctx, "from ~> fold", "completed", duration)
package observability
