package testutil

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestContext_CanceledOnCleanup(t *testing.T) {
	var ctxDone <-chan struct{}
	t.Run("inner", func(t *testing.T) {
		ctx := Context(t)
		ctxDone = ctx.Done()
		select {
		case <-ctx.Done():
			t.Error("context canceled before test end")
		default:
		}
	})
	select {
	case <-ctxDone:
	case <-time.After(time.Second):
		t.Error("context not canceled after test end")
	}
}

func TestEventually(t *testing.T) {
	var n atomic.Int32
	go func() {
		time.Sleep(5 * time.Millisecond)
		n.Store(1)
	}()
	Eventually(t, time.Second, time.Millisecond, func() bool {
		return n.Load() == 1
	}, "counter never became 1")
}

func TestQuietLogger(t *testing.T) {
	if QuietLogger() == nil {
		t.Fatal("QuietLogger returned nil")
	}
}
