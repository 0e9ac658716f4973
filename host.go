package logbridge

import (
	"encoding/json"
	"io"
	"sync"
)

// Host is the one-way message channel to the context that renders or
// persists log output. PostMessage receives either a single Envelope or a
// []Envelope batch. Implementations must not retain msg after returning.
type Host interface {
	PostMessage(msg any) error
}

// HostFunc adapts a plain function to the Host interface.
type HostFunc func(msg any) error

// PostMessage calls f(msg).
func (f HostFunc) PostMessage(msg any) error {
	return f(msg)
}

// WriterHost encodes each posted message as one JSON line on w, the usual
// shape of a worker-to-parent pipe.
type WriterHost struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewWriterHost creates a host writing JSON lines to w.
func NewWriterHost(w io.Writer) *WriterHost {
	return &WriterHost{enc: json.NewEncoder(w)}
}

// PostMessage writes msg as a single JSON line.
func (h *WriterHost) PostMessage(msg any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.enc.Encode(msg); err != nil {
		return fmtErrorf("failed to encode host message: %w", err)
	}
	return nil
}

// ChannelHost forwards messages to an in-process Go channel.
// PostMessage blocks while the channel is full.
type ChannelHost struct {
	ch chan any
}

// NewChannelHost creates a host backed by a channel of the given capacity.
func NewChannelHost(capacity int) *ChannelHost {
	if capacity < 0 {
		capacity = 0
	}
	return &ChannelHost{ch: make(chan any, capacity)}
}

// PostMessage sends msg on the channel.
func (h *ChannelHost) PostMessage(msg any) error {
	h.ch <- msg
	return nil
}

// Messages returns the receive side of the channel.
func (h *ChannelHost) Messages() <-chan any {
	return h.ch
}
