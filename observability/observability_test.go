package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-app")

	if cfg.ServiceName != "test-app" {
		t.Errorf("expected ServiceName 'test-app', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-app")

	if cfg.ServiceName != "test-app" {
		t.Errorf("expected ServiceName 'test-app', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestNewStreamMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewStreamMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordRunStart(ctx, "from ~> fold")
	metrics.RecordElements(ctx, "from ~> fold", 10)
	metrics.RecordElements(ctx, "from ~> fold", 0)
	metrics.RecordRunEnd(ctx, "from ~> fold", "completed", 100*time.Millisecond)
}

func TestSetSpanAttribute_NoSpan(t *testing.T) {
	// Without a recording span these must be no-ops, not panics.
	ctx := context.Background()
	SetSpanAttribute(ctx, "run.id", "abc")
	SetSpanAttribute(ctx, "count", 3)
	SetSpanError(ctx, context.Canceled)
}
