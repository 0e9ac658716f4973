package logbridge

import (
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// State encapsulates the runtime state of the logger
type State struct {
	IsInitialized  atomic.Bool
	LoggerDisabled atomic.Bool
	ShutdownCalled atomic.Bool

	threshold atomic.Uint32 // Severity installed by Init
	mode      atomic.Uint32 // DeliveryMode installed by Init

	gate       sync.RWMutex // Record acceptance (read) vs shutdown (write)
	flushMutex sync.Mutex   // Serializes flushes so batches keep drain order
	sendMutex  sync.Mutex   // Serializes host posts

	ErrorWriter atomic.Value // stores *sink

	LoggerStartTime    atomic.Value  // Stores time.Time of the last successful Init
	TotalLogsProcessed atomic.Uint64 // Records turned into envelopes
	TotalFiltered      atomic.Uint64 // Records dropped by the severity filter
	TotalFlushes       atomic.Uint64 // Batches posted to the host
	FailedSends        atomic.Uint64 // Host posts that returned an error
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// Stats is a point-in-time snapshot of logger activity.
type Stats struct {
	Initialized bool
	Disabled    bool
	Threshold   Severity
	Mode        DeliveryMode
	Processed   uint64
	Filtered    uint64
	Flushes     uint64
	FailedSends uint64
	Pending     int
	Uptime      time.Duration
}

// Stats returns a snapshot of the logger counters.
func (l *Logger) Stats() Stats {
	s := Stats{
		Initialized: l.state.IsInitialized.Load(),
		Disabled:    l.state.LoggerDisabled.Load(),
		Threshold:   l.threshold(),
		Mode:        l.mode(),
		Processed:   l.state.TotalLogsProcessed.Load(),
		Filtered:    l.state.TotalFiltered.Load(),
		Flushes:     l.state.TotalFlushes.Load(),
		FailedSends: l.state.FailedSends.Load(),
		Pending:     l.buffer.Len(),
	}
	if start, ok := l.state.LoggerStartTime.Load().(time.Time); ok && !start.IsZero() && s.Initialized {
		s.Uptime = time.Since(start)
	}
	return s
}

// Shutdown stops accepting records, posts whatever is still buffered and
// uninstalls the sink. A later Init may install it again.
func (l *Logger) Shutdown() error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	if !l.state.IsInitialized.Load() {
		l.state.ShutdownCalled.Store(false)
		return nil
	}

	// Waits for in-flight records to land in the buffer or reach the host
	l.state.gate.Lock()
	l.state.LoggerDisabled.Store(true)
	l.state.gate.Unlock()

	l.state.flushMutex.Lock()
	defer l.state.flushMutex.Unlock()

	var finalErr error
	if l.mode() == DeliveryBuffered {
		if err := l.flushBuffer(); err != nil {
			finalErr = combineErrors(finalErr, fmtErrorf("failed to flush pending logs during shutdown: %w", err))
		}
	}

	l.state.IsInitialized.Store(false)
	return finalErr
}

// Flush posts every buffered envelope to the host as one ordered batch.
// It is a no-op in immediate mode and before Init.
func (l *Logger) Flush() error {
	l.state.flushMutex.Lock()
	defer l.state.flushMutex.Unlock()

	if !l.state.IsInitialized.Load() || l.mode() != DeliveryBuffered {
		return nil
	}
	return l.flushBuffer()
}

// flushBuffer drains and posts, assuming flushMutex is held
func (l *Logger) flushBuffer() error {
	batch := l.buffer.Drain()

	l.state.sendMutex.Lock()
	err := l.host.PostMessage(batch)
	l.state.sendMutex.Unlock()

	if err != nil {
		l.state.FailedSends.Add(1)
		return fmtErrorf("failed to post batch of %d envelopes: %w", len(batch), err)
	}
	l.state.TotalFlushes.Add(1)
	return nil
}

func (l *Logger) threshold() Severity {
	return Severity(l.state.threshold.Load())
}

func (l *Logger) mode() DeliveryMode {
	return DeliveryMode(l.state.mode.Load())
}
