package stream

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/kbukum/streamkit/errors"
)

func TestFuture_CompleteOnce(t *testing.T) {
	f := NewFuture[int]()
	if !f.Complete(1) {
		t.Error("first Complete should report true")
	}
	if f.Complete(2) {
		t.Error("second Complete should report false")
	}
	if f.Fail(stderrors.New("late")) {
		t.Error("Fail after Complete should report false")
	}

	v, err := f.Await(context.Background(), time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Errorf("got %d, want 1", v)
	}
}

func TestFuture_Fail(t *testing.T) {
	boom := stderrors.New("boom")
	f := FailedFuture[int](boom)

	_, err := f.Await(context.Background(), time.Second)
	if !stderrors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if !f.IsCompleted() {
		t.Error("failed future should be completed")
	}
}

func TestFuture_AwaitTimeout(t *testing.T) {
	f := NewFuture[int]()

	_, err := f.Await(context.Background(), 10*time.Millisecond)
	if !errors.IsAwaitTimeout(err) {
		t.Fatalf("err = %v, want AWAIT_TIMEOUT", err)
	}
	if !errors.IsRetryable(err) {
		t.Error("await timeout should be retryable")
	}
}

func TestFuture_AwaitContextCancelled(t *testing.T) {
	f := NewFuture[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Await(ctx, time.Second)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestFuture_TryValue(t *testing.T) {
	f := NewFuture[string]()
	if _, _, ok := f.TryValue(); ok {
		t.Error("TryValue on pending future should report false")
	}

	f.Complete("done")
	v, err, ok := f.TryValue()
	if !ok || err != nil || v != "done" {
		t.Errorf("TryValue = (%q, %v, %v), want (done, nil, true)", v, err, ok)
	}
}

func TestMaterializer_AwaitTimeoutOption(t *testing.T) {
	m := NewMaterializer(
		WithLogger(newTestMaterializer().log),
		WithAwaitTimeout(10*time.Millisecond),
	)

	_, err := Await(context.Background(), m, NewFuture[int]())
	if !errors.IsAwaitTimeout(err) {
		t.Fatalf("err = %v, want AWAIT_TIMEOUT", err)
	}
}
