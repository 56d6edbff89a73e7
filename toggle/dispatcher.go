package toggle

import "sync"

// Dispatcher is an unbounded FIFO queue of events with one producer and one
// consumer. Send never blocks, so it is safe to call from an OS callback.
type Dispatcher struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Event
	closed bool
}

// NewDispatcher creates an empty, open Dispatcher.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{}
	d.cond = sync.NewCond(&d.mu)
	return d
}

// Send enqueues e. It reports false, dropping e, if the dispatcher is closed.
func (d *Dispatcher) Send(e Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	d.queue = append(d.queue, e)
	d.cond.Signal()
	return true
}

// Recv blocks until an event is available and returns it. Once the
// dispatcher is closed and every buffered event has been received, Recv
// returns false.
func (d *Dispatcher) Recv() (Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for len(d.queue) == 0 && !d.closed {
		d.cond.Wait()
	}
	if len(d.queue) == 0 {
		return 0, false
	}
	e := d.queue[0]
	d.queue[0] = 0
	d.queue = d.queue[1:]
	return e, true
}

// Close stops accepting events and wakes the consumer. Safe to call more
// than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.cond.Broadcast()
}

// Len returns the number of events waiting to be received.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}
