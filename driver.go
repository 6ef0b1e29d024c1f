package hyperspace

import "time"

// Scheduler is the host's per-frame callback facility, the equivalent of
// requestAnimationFrame. Callbacks receive the frame's monotonic timestamp.
type Scheduler interface {
	Now() time.Duration
	RequestFrame(fn func(now time.Duration)) (cancel func())
}

// Driver owns the animation loop of one field. It ticks the field once per
// frame, pauses entirely while the host reports itself hidden, and resumes
// with a freshly sampled baseline so the first delta after a pause is small.
type Driver struct {
	field  *Field
	sched  Scheduler
	cancel func()
	gen    uint64 // identifies the current request; stale callbacks return early
	last   time.Duration

	running bool
	hidden  bool
	stopped bool
	frames  uint64
}

// NewDriver creates a driver for f on sched. Nothing runs until Start.
func NewDriver(f *Field, sched Scheduler) *Driver {
	return &Driver{field: f, sched: sched}
}

// Start begins ticking. It is a no-op without a scheduler, for an inert
// field, or after Stop.
func (d *Driver) Start() {
	if d.running || d.stopped || d.sched == nil || d.field == nil || d.field.inert {
		return
	}
	d.running = true
	d.last = d.sched.Now()
	if !d.hidden {
		d.request()
	}
}

// SetHidden pauses (true) or resumes (false) ticking.
func (d *Driver) SetHidden(hidden bool) {
	if hidden == d.hidden {
		return
	}
	d.hidden = hidden
	if !d.running || d.stopped {
		return
	}
	if hidden {
		d.cancelPending()
		return
	}
	d.last = d.sched.Now()
	d.request()
}

// Stop cancels the pending frame and detaches the field's observations.
// No frame runs after Stop returns. Safe to call more than once.
func (d *Driver) Stop() {
	if d.stopped {
		return
	}
	d.stopped = true
	d.running = false
	d.cancelPending()
	if d.field != nil {
		d.field.Close()
	}
}

// Running reports whether the driver has been started and not stopped.
func (d *Driver) Running() bool {
	return d.running
}

// Hidden reports whether ticking is paused by the host.
func (d *Driver) Hidden() bool {
	return d.hidden
}

// Frames returns the number of frames ticked so far.
func (d *Driver) Frames() uint64 {
	return d.frames
}

func (d *Driver) request() {
	d.cancelPending()
	gen := d.gen
	d.cancel = d.sched.RequestFrame(func(now time.Duration) {
		d.frame(gen, now)
	})
}

// cancelPending withdraws the pending request. A scheduler that has already
// dequeued the callback may still run it; the generation bump makes it a no-op.
func (d *Driver) cancelPending() {
	d.gen++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Driver) frame(gen uint64, now time.Duration) {
	if gen != d.gen {
		return
	}
	d.cancel = nil
	if d.stopped || d.hidden {
		return
	}
	dt := clampDelta(now - d.last)
	d.last = now
	d.field.Advance(now, dt)
	d.frames++
	d.request()
}

// FrameQueue is a Scheduler pumped by the host: callbacks requested during a
// frame run on the next Flush. Both bundled hosts and the tests drive their
// fields through it.
type FrameQueue struct {
	clock   func() time.Duration
	pending []queuedFrame
	nextID  uint64
}

type queuedFrame struct {
	id uint64
	fn func(now time.Duration)
}

// NewFrameQueue creates a queue reading time from clock. A nil clock uses
// the monotonic time since the queue was created.
func NewFrameQueue(clock func() time.Duration) *FrameQueue {
	if clock == nil {
		start := time.Now()
		clock = func() time.Duration { return time.Since(start) }
	}
	return &FrameQueue{clock: clock}
}

// Now implements Scheduler.
func (q *FrameQueue) Now() time.Duration {
	return q.clock()
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func(now time.Duration)) func() {
	q.nextID++
	id := q.nextID
	q.pending = append(q.pending, queuedFrame{id: id, fn: fn})
	return func() {
		for i, p := range q.pending {
			if p.id == id {
				q.pending = append(q.pending[:i], q.pending[i+1:]...)
				return
			}
		}
	}
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs every callback queued before the call with the current time.
// Callbacks requested while flushing wait for the next Flush.
func (q *FrameQueue) Flush() int {
	if len(q.pending) == 0 {
		return 0
	}
	now := q.clock()
	batch := q.pending
	q.pending = nil
	for _, p := range batch {
		p.fn(now)
	}
	return len(batch)
}
