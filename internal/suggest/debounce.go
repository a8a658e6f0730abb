package suggest

import (
	"sync"
	"time"

	"socialup-discovery/internal/types"
)

// DefaultDebounceInterval matches the UI's keystroke debounce.
const DefaultDebounceInterval = 300 * time.Millisecond

// Debouncer owns a single pending timer. Scheduling a new function cancels
// the prior pending one, so a burst of calls runs only the last.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{interval: interval}
}

// Do schedules fn to run after the debounce interval, replacing any pending
// schedule.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending schedule.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Debounced wraps a Source with debouncing and a stale-result guard: results
// are delivered only when no newer Fetch call has superseded the one that
// produced them. The network call itself is never cancelled, its result is
// simply discarded.
type Debounced struct {
	source    Source
	debouncer *Debouncer

	mu         sync.Mutex
	generation uint64
}

func NewDebounced(source Source, interval time.Duration) *Debounced {
	return &Debounced{
		source:    source,
		debouncer: NewDebouncer(interval),
	}
}

// Fetch schedules a fetch for query and delivers the outcome to deliver.
// A newer call supersedes this one: its timer is cancelled if still pending,
// and its result is dropped if already in flight.
func (d *Debounced) Fetch(query string, limit int, deliver func([]types.Suggestion, error)) {
	d.mu.Lock()
	d.generation++
	gen := d.generation
	d.mu.Unlock()

	d.debouncer.Do(func() {
		suggestions, err := d.source.Fetch(query, limit)

		d.mu.Lock()
		stale := gen != d.generation
		d.mu.Unlock()
		if stale {
			return
		}
		deliver(suggestions, err)
	})
}

// Stop cancels any pending fetch.
func (d *Debounced) Stop() {
	d.debouncer.Stop()
}
