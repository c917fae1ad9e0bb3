package bootstrap

import (
	"time"

	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/stream"
)

// Option configures the App during creation. Options are non-generic so they
// can be used with any config type.
type Option func(*appOptions)

type appOptions struct {
	logger          *logger.Logger
	gracefulTimeout *time.Duration
	meterConfig     *observability.MeterConfig
	tracerConfig    *observability.TracerConfig
	matOpts         []stream.Option
}

func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger. If not set, the logger is initialized from
// the config's logging section.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) { o.logger = l }
}

// WithGracefulTimeout sets the maximum duration for graceful shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) { o.gracefulTimeout = &d }
}

// WithMetrics enables OTLP metric export and per-run stream metrics.
func WithMetrics(cfg observability.MeterConfig) Option {
	return func(o *appOptions) { o.meterConfig = &cfg }
}

// WithTracing enables OTLP trace export and per-run spans.
func WithTracing(cfg observability.TracerConfig) Option {
	return func(o *appOptions) { o.tracerConfig = &cfg }
}

// WithMaterializerOptions appends extra options passed to the Materializer
// built by Start.
func WithMaterializerOptions(opts ...stream.Option) Option {
	return func(o *appOptions) { o.matOpts = append(o.matOpts, opts...) }
}
