package share

import (
	"context"
	"sync"
)

// dispatcher delivers observer updates on a single goroutine, in the order they were
// posted, without ever blocking the poster.
type dispatcher struct {
	mu      sync.Mutex
	pending []func()
	closed  bool

	wake chan struct{}
	done chan struct{}
}

func newDispatcher() *dispatcher {
	d := &dispatcher{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go d.loop()
	return d
}

// Post queues fn. Updates posted after Close are dropped.
func (d *dispatcher) Post(fn func()) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.pending = append(d.pending, fn)
	d.mu.Unlock()
	d.signal()
}

// Flush blocks until every update posted before the call has been delivered.
func (d *dispatcher) Flush(ctx context.Context) error {
	reached := make(chan struct{})

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return nil
	}
	d.pending = append(d.pending, func() { close(reached) })
	d.mu.Unlock()
	d.signal()

	select {
	case <-reached:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close delivers what is still queued and stops the loop.
func (d *dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	d.mu.Unlock()
	d.signal()
	<-d.done
}

func (d *dispatcher) signal() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *dispatcher) loop() {
	defer close(d.done)
	for range d.wake {
		d.mu.Lock()
		batch := d.pending
		d.pending = nil
		closed := d.closed
		d.mu.Unlock()

		for _, fn := range batch {
			fn()
		}

		if closed {
			d.mu.Lock()
			drained := len(d.pending) == 0
			d.mu.Unlock()
			if drained {
				return
			}
			d.signal()
		}
	}
}
