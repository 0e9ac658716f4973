package logbridge

import "sync"

// LogBuffer holds envelopes produced in buffered mode until the next flush.
// The zero value is ready to use.
type LogBuffer struct {
	mu      sync.Mutex
	pending []Envelope
}

// Append adds an envelope at the tail.
func (b *LogBuffer) Append(env Envelope) {
	b.mu.Lock()
	b.pending = append(b.pending, env)
	b.mu.Unlock()
}

// Drain takes every pending envelope in append order and leaves the buffer
// empty. The result is never nil.
func (b *LogBuffer) Drain() []Envelope {
	b.mu.Lock()
	drained := b.pending
	b.pending = nil
	b.mu.Unlock()

	if drained == nil {
		return []Envelope{}
	}
	return drained
}

// Len returns the number of pending envelopes.
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
