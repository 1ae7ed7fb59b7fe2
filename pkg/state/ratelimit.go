package state

import "time"

// SlidingWindow tracks a local action budget over a rolling window,
// mirroring server-side limits (voice board: 5 edits per hour; photo
// uploads: 3 per day) so the client can refuse before a doomed request.
type SlidingWindow struct {
	limit  int
	window time.Duration
	events []time.Time
	now    func() time.Time
}

// NewSlidingWindow creates a budget of limit events per window
func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (w *SlidingWindow) prune() {
	cutoff := w.now().Add(-w.window)
	kept := w.events[:0]
	for _, t := range w.events {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.events = kept
}

// Allow reports whether another event fits in the current window
func (w *SlidingWindow) Allow() bool {
	w.prune()
	return len(w.events) < w.limit
}

// Record registers an event against the budget
func (w *SlidingWindow) Record() {
	w.prune()
	w.events = append(w.events, w.now())
}

// Remaining returns how many events are left in the current window
func (w *SlidingWindow) Remaining() int {
	w.prune()
	if r := w.limit - len(w.events); r > 0 {
		return r
	}
	return 0
}

// RetryAfter returns how long until the oldest event ages out; zero when
// the budget is not exhausted.
func (w *SlidingWindow) RetryAfter() time.Duration {
	w.prune()
	if len(w.events) < w.limit {
		return 0
	}
	return w.events[0].Add(w.window).Sub(w.now())
}
