// Package debounce provides a cancellable deferred single-shot timer: each
// trigger resets the window, and only the last trigger's window firing runs
// the callback. Side effects like persistence writes are modeled with it
// explicitly rather than left to implicit scheduling.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
	pending  bool
}

func New(interval time.Duration, fn func()) *Debouncer {
	return &Debouncer{interval: interval, fn: fn}
}

// Trigger schedules the callback after the debounce interval, cancelling
// any earlier pending schedule.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = true
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		if !d.pending {
			d.mu.Unlock()
			return
		}
		d.pending = false
		d.mu.Unlock()
		d.fn()
	})
}

// Cancel drops any pending schedule without running the callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush runs the callback immediately if a trigger is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	wasPending := d.pending
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if wasPending {
		d.fn()
	}
}

// Pending reports whether a trigger is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
