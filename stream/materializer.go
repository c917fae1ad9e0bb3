package stream

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
)

// Materializer turns runnable blueprints into live runs. It owns the ambient
// concerns of a run's goroutine: logging, metrics, tracing and the default
// await timeout. A single Materializer is safe for concurrent use.
type Materializer struct {
	name         string
	log          *logger.Logger
	metrics      *observability.StreamMetrics
	tracing      bool
	awaitTimeout time.Duration
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithName sets the materializer name used in logs.
func WithName(name string) Option {
	return func(m *Materializer) { m.name = name }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(m *Materializer) { m.log = log }
}

// WithMetrics enables per-run metrics recording.
func WithMetrics(metrics *observability.StreamMetrics) Option {
	return func(m *Materializer) { m.metrics = metrics }
}

// WithTracing wraps every run in a span.
func WithTracing(enabled bool) Option {
	return func(m *Materializer) { m.tracing = enabled }
}

// WithAwaitTimeout sets the default timeout used by Await.
func WithAwaitTimeout(d time.Duration) Option {
	return func(m *Materializer) { m.awaitTimeout = d }
}

// WithConfig applies a loaded configuration.
func WithConfig(cfg Config) Option {
	return func(m *Materializer) {
		cfg.ApplyDefaults()
		m.name = cfg.Name
		m.tracing = cfg.Tracing
		m.awaitTimeout = cfg.AwaitTimeout
	}
}

// NewMaterializer creates a materializer with defaults applied.
func NewMaterializer(opts ...Option) *Materializer {
	m := &Materializer{
		name:         "streamkit",
		awaitTimeout: DefaultAwaitTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logger.NewDefault(m.name)
	}
	m.log = m.log.WithComponent("materializer")
	return m
}

// Run materializes the blueprint. It creates fresh stage instances, returns
// the combined materialized value immediately and drives the stream on its
// own goroutine. The returned Run tracks that one execution only.
func (r Runnable[Mat]) Run(ctx context.Context, m *Materializer) (Mat, *Run) {
	run := newRun(r.bp.String())
	mat, pr := r.start(ctx)
	m.launch(ctx, run, pr)
	return mat, run
}

// Await blocks on a materialized future using the materializer's default
// timeout.
func Await[T any](ctx context.Context, m *Materializer, f *Future[T]) (T, error) {
	return f.Await(ctx, m.awaitTimeout)
}

func (m *Materializer) launch(ctx context.Context, run *Run, pr *pipelineRuntime) {
	run.markRunning()
	log := m.log.WithFields(logger.Fields(
		logger.FieldRunID, run.ID(),
		logger.FieldBlueprint, run.Blueprint(),
	))
	if m.metrics != nil {
		m.metrics.RecordRunStart(ctx, run.Blueprint())
	}
	log.Debug("stream run started")

	go func() {
		runCtx := ctx
		var span trace.Span
		if m.tracing {
			runCtx, span = observability.StartSpan(ctx, observability.SpanStreamRun)
			observability.SetSpanAttribute(runCtx, observability.AttrRunID, run.ID())
			observability.SetSpanAttribute(runCtx, observability.AttrBlueprint, run.Blueprint())
			defer span.End()
		}

		n, err := pr.safeConsume(runCtx)
		if closeErr := pr.close(); err == nil && closeErr != nil {
			err = closeErr
			pr.fail(err)
		}

		state := RunCompleted
		switch {
		case pr.cancel != nil && pr.cancel.IsCancelled():
			state = RunCancelled
		case err != nil:
			state = RunFailed
			err = errors.RunFailed(run.ID(), err)
		}

		dur := run.finish(state, err)
		if m.metrics != nil {
			m.metrics.RecordRunEnd(ctx, run.Blueprint(), state.String(), dur)
			m.metrics.RecordElements(ctx, run.Blueprint(), n)
		}
		if m.tracing {
			observability.SetSpanAttribute(runCtx, observability.AttrRunState, state.String())
			observability.SetSpanAttribute(runCtx, observability.AttrDurationMs, dur.Milliseconds())
			if err != nil {
				observability.SetSpanError(runCtx, err)
			}
		}

		fields := logger.Fields(
			logger.FieldState, state.String(),
			logger.FieldDuration, dur.Milliseconds(),
			logger.FieldElements, n,
		)
		if state == RunFailed {
			log.WithError(err).Error("stream run failed", fields)
			return
		}
		log.Debug("stream run finished", fields)
	}()
}
