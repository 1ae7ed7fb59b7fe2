package state

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into one delayed call. A newer
// trigger supersedes any scheduled one, so only the latest update runs.
// An optional cooldown pushes runs apart to stay under rate limits.
type Debouncer struct {
	mu       sync.Mutex
	window   time.Duration
	cooldown time.Duration
	timer    *time.Timer
	lastRun  time.Time
	seq      uint64
}

// NewDebouncer creates a debouncer with the given settle window and
// minimum spacing between runs (0 for none).
func NewDebouncer(window, cooldown time.Duration) *Debouncer {
	return &Debouncer{window: window, cooldown: cooldown}
}

// Trigger schedules fn to run after the window. Triggering again before
// it fires drops the stale callback and restarts the window.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	id := d.seq

	delay := d.window
	if d.cooldown > 0 && !d.lastRun.IsZero() {
		if wait := d.cooldown - time.Since(d.lastRun); wait > delay {
			delay = wait
		}
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		if id != d.seq {
			// A newer trigger superseded this one
			d.mu.Unlock()
			return
		}
		d.lastRun = time.Now()
		d.mu.Unlock()
		fn()
	})
}

// Stop cancels any scheduled call
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
