// Package scheduler provides the explicit timer abstractions used by the
// persistence layer: a debounced task for batched auto-saves and a cron-backed
// daily backup job.
package scheduler

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single invocation of fn after
// a quiet window. A trigger arriving before the window elapses cancels and
// replaces the pending invocation rather than queuing a second one.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	fn     func()
	timer  *time.Timer
}

// NewDebouncer creates a debouncer that runs fn once per quiet window.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		window: window,
		fn:     fn,
	}
}

// Trigger schedules fn to run after the debounce window, replacing any
// pending schedule.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// Flush cancels the pending schedule, if any, and runs fn immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.fn()
}

// Stop cancels the pending schedule without running fn. Used on shutdown
// after a final flush.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
