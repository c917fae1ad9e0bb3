package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/streamkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// StreamMetrics holds OpenTelemetry metric instruments for stream runs.
type StreamMetrics struct {
	runTotal    metric.Int64Counter
	runActive   metric.Int64UpDownCounter
	runDuration metric.Float64Histogram
	elements    metric.Int64Counter
}

// NewStreamMetrics creates metric instruments on the given meter.
func NewStreamMetrics(meter metric.Meter) (*StreamMetrics, error) {
	runTotal, err := meter.Int64Counter("stream.run.total",
		metric.WithDescription("Total number of materialized runs by terminal state"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.run.total counter: %w", err)
	}

	runActive, err := meter.Int64UpDownCounter("stream.run.active",
		metric.WithDescription("Number of currently running materializations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.run.active gauge: %w", err)
	}

	runDuration, err := meter.Float64Histogram("stream.run.duration",
		metric.WithDescription("Duration of completed runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.run.duration histogram: %w", err)
	}

	elements, err := meter.Int64Counter("stream.elements.total",
		metric.WithDescription("Total number of elements delivered to sinks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.elements.total counter: %w", err)
	}

	return &StreamMetrics{
		runTotal:    runTotal,
		runActive:   runActive,
		runDuration: runDuration,
		elements:    elements,
	}, nil
}

// RecordRunStart increments the active run count.
func (m *StreamMetrics) RecordRunStart(ctx context.Context, blueprint string) {
	m.runActive.Add(ctx, 1, metric.WithAttributes(
		attribute.String("blueprint", blueprint),
	))
}

// RecordRunEnd decrements active runs and records the run's terminal state.
func (m *StreamMetrics) RecordRunEnd(ctx context.Context, blueprint, state string, duration time.Duration) {
	m.runActive.Add(ctx, -1, metric.WithAttributes(
		attribute.String("blueprint", blueprint),
	))
	m.runTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("blueprint", blueprint),
		attribute.String("state", state),
	))
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("blueprint", blueprint),
		attribute.String("state", state),
	))
}

// RecordElements counts elements delivered to a sink.
func (m *StreamMetrics) RecordElements(ctx context.Context, blueprint string, n int64) {
	if n == 0 {
		return
	}
	m.elements.Add(ctx, n, metric.WithAttributes(
		attribute.String("blueprint", blueprint),
	))
}
