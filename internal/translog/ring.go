package translog

import "sync"

// Ring is a fixed-capacity buffer of transcript events. Once full, new
// events overwrite the oldest. Safe for concurrent use.
type Ring struct {
	mu     sync.Mutex
	events []Event
	start  int
	count  int
}

// NewRing creates a ring holding up to capacity events. Non-positive
// capacities fall back to a small default.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 64
	}
	return &Ring{events: make([]Event, capacity)}
}

// Add appends an event, evicting the oldest when full.
func (r *Ring) Add(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	end := (r.start + r.count) % len(r.events)
	r.events[end] = event
	if r.count < len(r.events) {
		r.count++
	} else {
		r.start = (r.start + 1) % len(r.events)
	}
}

// Len reports how many events are currently buffered.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Snapshot returns the buffered events oldest first.
func (r *Ring) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, 0, r.count)
	for i := 0; i < r.count; i++ {
		out = append(out, r.events[(r.start+i)%len(r.events)])
	}
	return out
}

// Recent returns up to n of the newest events, newest first. n <= 0
// returns everything buffered.
func (r *Ring) Recent(n int) []Event {
	all := r.Snapshot()
	if n <= 0 || n > len(all) {
		n = len(all)
	}
	out := make([]Event, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		out = append(out, all[i])
	}
	return out
}
