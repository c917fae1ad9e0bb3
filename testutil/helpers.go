package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/kbukum/streamkit/logger"
)

// Context returns a context that is canceled when the test ends.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

// ContextWithTimeout returns a test-scoped context with a deadline.
func ContextWithTimeout(t *testing.T, d time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}

// Eventually polls cond every interval until it returns true or the timeout
// expires, failing the test with msg on timeout.
func Eventually(t *testing.T, timeout, interval time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if cond() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %v: %s", timeout, msg)
		}
		time.Sleep(interval)
	}
}

// QuietLogger returns a logger that only emits errors, keeping test output
// readable.
func QuietLogger() *logger.Logger {
	return logger.New(&logger.Config{
		Level:  "error",
		Format: "json",
		Output: "stderr",
	}, "test")
}
