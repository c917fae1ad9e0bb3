package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/stream"
	"github.com/kbukum/streamkit/version"
)

// App wires configuration, logging, observability and a stream Materializer
// into one lifecycle. The type parameter C is the config type; any struct
// embedding config.AppConfig satisfies the Config constraint.
//
// Example:
//
//	var cfg bootstrap.AppConfig
//	if err := config.LoadConfig("myapp", &cfg); err != nil { ... }
//	app, err := bootstrap.NewApp(&cfg)
//	app.RunTask(ctx, func(ctx context.Context) error {
//	    fut, _ := stream.To(src, snk).Run(ctx, app.Materializer)
//	    _, err := stream.Await(ctx, app.Materializer, fut)
//	    return err
//	})
type App[C Config] struct {
	Name         string
	Version      string
	Cfg          C
	Logger       *logger.Logger
	Materializer *stream.Materializer

	gracefulTimeout time.Duration
	meterConfig     *observability.MeterConfig
	tracerConfig    *observability.TracerConfig
	matOpts         []stream.Option

	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider

	onStart []Hook
	onStop  []Hook
}

// NewApp creates an application from a typed config. It applies defaults,
// validates the config and initializes the logger. Observability providers
// are only initialized by Start, so NewApp itself opens no connections.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	base := cfg.GetAppConfig()
	if base.Version == "" {
		base.Version = version.Short()
	}

	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	app.meterConfig = o.meterConfig
	app.tracerConfig = o.tracerConfig
	app.matOpts = o.matOpts

	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(base.Logging)
		app.Logger = logger.New(&base.Logging, base.Name)
	}

	return app, nil
}

// Start initializes observability providers, builds the Materializer and runs
// the OnStart hooks.
func (a *App[C]) Start(ctx context.Context) error {
	a.Logger.Info("starting application", map[string]interface{}{
		"name":    a.Name,
		"version": a.Version,
	})

	matOpts := []stream.Option{
		stream.WithName(a.Name),
		stream.WithLogger(a.Logger),
	}

	if a.meterConfig != nil {
		mp, err := observability.InitMeter(ctx, a.meterConfig)
		if err != nil {
			return fmt.Errorf("init meter: %w", err)
		}
		a.meterProvider = mp

		metrics, err := observability.NewStreamMetrics(observability.Meter(a.Name))
		if err != nil {
			return fmt.Errorf("create stream metrics: %w", err)
		}
		matOpts = append(matOpts, stream.WithMetrics(metrics))
	}

	if a.tracerConfig != nil {
		tp, err := observability.InitTracer(ctx, *a.tracerConfig)
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		a.tracerProvider = tp
		matOpts = append(matOpts, stream.WithTracing(true))
	}

	matOpts = append(matOpts, a.matOpts...)
	a.Materializer = stream.NewMaterializer(matOpts...)

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	a.Logger.Info("application ready")
	return nil
}

// Run starts the application and blocks until an OS signal or context
// cancellation, then shuts down gracefully.
func (a *App[C]) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}
	a.WaitForSignal(ctx)
	return a.Shutdown()
}

// RunTask starts the application, executes a finite task and shuts down when
// the task completes. A SIGINT or SIGTERM cancels the task's context.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := a.Start(ctx); err != nil {
		return err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("received signal, canceling task", map[string]interface{}{
				"signal": sig.String(),
			})
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx)

	if stopErr := a.Shutdown(); stopErr != nil {
		if taskErr != nil {
			return taskErr
		}
		return stopErr
	}
	return taskErr
}

// WaitForSignal blocks until an interrupt/term signal or context cancellation.
func (a *App[C]) WaitForSignal(ctx context.Context) os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.Logger.Info("received shutdown signal", map[string]interface{}{
			"signal": sig.String(),
		})
		return sig
	case <-ctx.Done():
		a.Logger.Info("context canceled, shutting down")
		return nil
	}
}

// Shutdown runs the OnStop hooks and flushes observability providers within
// the graceful timeout.
func (a *App[C]) Shutdown() error {
	a.Logger.Info("shutting down application", map[string]interface{}{
		"timeout": a.gracefulTimeout.String(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var shutdownErr error

	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.WithError(err).Error("onStop hook error")
		shutdownErr = err
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			a.Logger.WithError(err).Error("tracer provider shutdown error")
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}
	if a.meterProvider != nil {
		if err := a.meterProvider.Shutdown(ctx); err != nil {
			a.Logger.WithError(err).Error("meter provider shutdown error")
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	a.Logger.Info("application shutdown complete")
	return shutdownErr
}
