package stream

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kbukum/streamkit/testutil"
)

func TestTick_CancelStopsRun(t *testing.T) {
	ctx := context.Background()
	m := newTestMaterializer()

	var seen atomic.Int64
	snk := Foreach(func(_ context.Context, _ string) error {
		seen.Add(1)
		return nil
	})
	pair, run := ToKeepBoth(Tick(0, 2*time.Millisecond, "tick"), snk).Run(ctx, m)

	testutil.Eventually(t, 2*time.Second, time.Millisecond, func() bool {
		return seen.Load() >= 3
	}, "tick source never produced 3 elements")

	if !pair.Left.Cancel() {
		t.Error("first Cancel should report true")
	}
	if pair.Left.Cancel() {
		t.Error("second Cancel should report false")
	}
	if !pair.Left.IsCancelled() {
		t.Error("IsCancelled should report true after Cancel")
	}

	<-run.Done()
	if run.State() != RunCancelled {
		t.Errorf("state = %s, want cancelled", run.State())
	}
	if _, err := Await(ctx, m, pair.Right); err != nil {
		t.Errorf("foreach future after cancel: %v", err)
	}
}

func TestTick_MappedSourceKeepsCancellable(t *testing.T) {
	ctx := context.Background()
	m := newTestMaterializer()

	shouted := Map(Tick(0, 2*time.Millisecond, "tick"), func(_ context.Context, s string) (string, error) {
		return strings.ToUpper(s), nil
	})

	cancel, run := ToKeepLeft(shouted, Ignore[string]()).Run(ctx, m)
	if cancel == nil {
		t.Fatal("mapped tick source lost its Cancellable")
	}
	cancel.Cancel()

	select {
	case <-run.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after Cancel")
	}
	if run.State() != RunCancelled {
		t.Errorf("state = %s, want cancelled", run.State())
	}
}

func TestTick_RunsAreIndependent(t *testing.T) {
	ctx := context.Background()
	m := newTestMaterializer()

	runnable := ToKeepLeft(Tick(0, 2*time.Millisecond, 1), Ignore[int]())
	cancel1, run1 := runnable.Run(ctx, m)
	cancel2, run2 := runnable.Run(ctx, m)

	cancel1.Cancel()
	<-run1.Done()
	if run1.State() != RunCancelled {
		t.Errorf("run1 state = %s, want cancelled", run1.State())
	}

	if cancel2.IsCancelled() {
		t.Error("cancelling run1 cancelled run2's handle")
	}
	if run2.State() == RunCancelled {
		t.Error("run2 stopped with run1")
	}

	cancel2.Cancel()
	<-run2.Done()
	if run2.State() != RunCancelled {
		t.Errorf("run2 state = %s, want cancelled", run2.State())
	}
}
