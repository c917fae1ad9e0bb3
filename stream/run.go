package stream

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// RunState is the lifecycle state of a single materialization.
type RunState int

const (
	// RunCreated means the run exists but its goroutine has not started yet.
	RunCreated RunState = iota
	// RunRunning means elements are flowing.
	RunRunning
	// RunCompleted means the stream finished normally.
	RunCompleted
	// RunFailed means a stage returned an error or panicked.
	RunFailed
	// RunCancelled means the run was stopped through its Cancellable.
	RunCancelled
)

func (s RunState) String() string {
	switch s {
	case RunCreated:
		return "created"
	case RunRunning:
		return "running"
	case RunCompleted:
		return "completed"
	case RunFailed:
		return "failed"
	case RunCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Run tracks one materialization of a runnable blueprint. Each call to Run
// on the same Runnable produces a distinct Run with its own identifier and
// its own state, so concurrent runs never observe each other.
type Run struct {
	id        string
	blueprint string

	mu      sync.Mutex
	state   RunState
	err     error
	started time.Time

	done     chan struct{}
	doneOnce sync.Once
}

func newRun(blueprint string) *Run {
	return &Run{
		id:        uuid.New().String(),
		blueprint: blueprint,
		state:     RunCreated,
		done:      make(chan struct{}),
	}
}

// ID returns the run's unique identifier.
func (r *Run) ID() string { return r.id }

// Blueprint returns a description of the stages this run executes.
func (r *Run) Blueprint() string { return r.blueprint }

// State returns the current lifecycle state.
func (r *Run) State() RunState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err returns the terminal error, if the run failed.
func (r *Run) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Done returns a channel closed when the run reaches a terminal state.
func (r *Run) Done() <-chan struct{} { return r.done }

func (r *Run) markRunning() {
	r.mu.Lock()
	r.state = RunRunning
	r.started = time.Now()
	r.mu.Unlock()
}

func (r *Run) finish(state RunState, err error) time.Duration {
	r.mu.Lock()
	r.state = state
	r.err = err
	dur := time.Since(r.started)
	r.mu.Unlock()
	r.doneOnce.Do(func() { close(r.done) })
	return dur
}
