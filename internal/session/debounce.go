package session

import (
	"sync"
	"time"
)

// debouncer coalesces rapid mutations into one save per idle window. Each
// Schedule resets the timer; when the window elapses with no further edits
// the flush target runs. Flush reads current state at fire time, so the
// newest tree is always the one written.
type debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	flush   func() error
	timer   *time.Timer
	pending bool
	stopped bool
}

func newDebouncer(window time.Duration, flush func() error) *debouncer {
	return &debouncer{window: window, flush: flush}
}

// Schedule arms (or re-arms) the idle timer. No-op after Stop.
func (d *debouncer) Schedule() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = true

	if d.timer != nil {
		d.timer.Reset(d.window)
		return
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.stopped || !d.pending {
			d.mu.Unlock()
			return
		}
		d.pending = false
		d.mu.Unlock()

		// Flush outside the lock; it takes the session lock itself.
		_ = d.flush()
	})
}

// Flush persists now if a save is pending and disarms the timer.
func (d *debouncer) Flush() error {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	wasPending := d.pending
	d.pending = false
	d.mu.Unlock()

	if !wasPending {
		return nil
	}
	return d.flush()
}

// Stop flushes any pending save and prevents further scheduling. A pending
// edit is never dropped: the final flush writes the latest state.
func (d *debouncer) Stop() error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	wasPending := d.pending
	d.pending = false
	d.mu.Unlock()

	if !wasPending {
		return nil
	}
	return d.flush()
}
