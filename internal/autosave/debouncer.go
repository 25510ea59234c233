// Package autosave coalesces bursts of state changes into a single save.
package autosave

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a pending save runs.
const DefaultDelay = 500 * time.Millisecond

// Debouncer runs fn once the triggers stop arriving for delay. Each Trigger
// replaces the pending timer. While suppressed, triggers are ignored and fn
// never runs.
type Debouncer struct {
	// run is held while fn or a suppressed section executes.
	run sync.Mutex

	mu         sync.Mutex
	delay      time.Duration
	fn         func()
	timer      *time.Timer
	generation uint64
	suppressed bool
	stopped    bool
}

func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn to run after the quiet period, cancelling any
// pending run.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.suppressed || d.stopped {
		return
	}
	d.cancelLocked()
	gen := d.generation
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Suppress runs f with triggers ignored and any pending save dropped. It
// waits for a save already in progress, and no save starts until f
// returns. Calls must not nest.
func (d *Debouncer) Suppress(f func()) {
	d.mu.Lock()
	d.suppressed = true
	d.cancelLocked()
	d.mu.Unlock()

	d.run.Lock()
	defer func() {
		d.run.Unlock()
		d.mu.Lock()
		d.suppressed = false
		d.mu.Unlock()
	}()
	f()
}

// Suppressed reports whether a Suppress call is in progress.
func (d *Debouncer) Suppressed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suppressed
}

// Pending reports whether a save is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Flush runs a pending save immediately.
func (d *Debouncer) Flush() {
	d.run.Lock()
	defer d.run.Unlock()

	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.cancelLocked()
	d.mu.Unlock()
	d.fn()
}

// Stop cancels any pending save and ignores later triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.cancelLocked()
}

func (d *Debouncer) fire(gen uint64) {
	d.run.Lock()
	defer d.run.Unlock()

	d.mu.Lock()
	// A timer that lost the race with Stop, Suppress or a newer Trigger
	// must not run.
	if gen != d.generation || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
}
