package stream

import "sync"

// Cancellable is the materialized value of sources that own a periodic
// resource, such as Tick. Cancelling is cooperative: it stops future emissions
// for that run only and never undoes elements already emitted.
type Cancellable interface {
	// Cancel stops the resource. Returns true on the first call, false after.
	Cancel() bool
	// IsCancelled reports whether Cancel has been called.
	IsCancelled() bool
	// Done returns a channel closed once the resource is cancelled.
	Done() <-chan struct{}
}

// cancellation is the single Cancellable implementation; one is created per
// materialization so independent runs cancel independently.
type cancellation struct {
	once sync.Once
	done chan struct{}
}

func newCancellation() *cancellation {
	return &cancellation{done: make(chan struct{})}
}

func (c *cancellation) Cancel() bool {
	won := false
	c.once.Do(func() {
		won = true
		close(c.done)
	})
	return won
}

func (c *cancellation) IsCancelled() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *cancellation) Done() <-chan struct{} { return c.done }
