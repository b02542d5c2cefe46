// Package handoff hands a function to the goroutine that owns the UI and waits for it.
package handoff

import (
	"context"
	"sync/atomic"

	"go.trai.ch/logshare/internal/core/domain"
)

const (
	statePending int32 = iota
	stateRunning
	stateAbandoned
)

// Call is a function queued for the UI goroutine. Exactly one of Run and an
// abandoning Await decides whether the function executes.
type Call struct {
	fn    func()
	state atomic.Int32
	done  chan struct{}
}

// New wraps fn in a pending Call.
func New(fn func()) *Call {
	return &Call{fn: fn, done: make(chan struct{})}
}

// Run executes the function on the calling goroutine unless the call was abandoned.
func (c *Call) Run() {
	if !c.state.CompareAndSwap(statePending, stateRunning) {
		return
	}
	defer close(c.done)
	c.fn()
}

// Abandon prevents a pending call from running. It reports false if the call
// already started.
func (c *Call) Abandon() bool {
	return c.state.CompareAndSwap(statePending, stateAbandoned)
}

// Await blocks until the function has returned. If ctx is done or stopped is
// closed before the function starts, the call is abandoned and an error is
// returned. Await never returns while the function is running.
func (c *Call) Await(ctx context.Context, stopped <-chan struct{}) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		if c.Abandon() {
			return ctx.Err()
		}
	case <-stopped:
		if c.Abandon() {
			return domain.ErrViewStopped
		}
	}
	<-c.done
	return nil
}
