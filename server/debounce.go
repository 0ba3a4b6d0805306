package server

import (
	"sync"
	"time"
)

// Debouncer coalesces fetch triggers per tenant. A trigger arriving while
// one is already pending for the same tenant is absorbed, so a burst of
// source mutations produces a single fetch after the window elapses.
type Debouncer struct {
	window time.Duration
	run    func(tenantID int64)

	mu      sync.Mutex
	pending map[int64]struct{}
}

// NewDebouncer creates a debouncer firing run once per tenant per window
func NewDebouncer(window time.Duration, run func(tenantID int64)) *Debouncer {
	return &Debouncer{
		window:  window,
		run:     run,
		pending: map[int64]struct{}{},
	}
}

// Trigger schedules a run for the tenant unless one is already pending
func (d *Debouncer) Trigger(tenantID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.pending[tenantID]; ok {
		return
	}
	d.pending[tenantID] = struct{}{}

	time.AfterFunc(d.window, func() {
		d.mu.Lock()
		delete(d.pending, tenantID)
		d.mu.Unlock()
		d.run(tenantID)
	})
}
