// Package schedule flushes a buffered bridge on a cron schedule, so batches
// reach the host without the application calling Flush itself.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/logbridge"
	"github.com/robfig/cron/v3"
)

// ErrNoSchedule is returned by FromLogger when flush_schedule is empty
var ErrNoSchedule = errors.New("schedule: no flush schedule configured")

// Flusher is the operation the scheduler drives. *logbridge.Logger implements it.
type Flusher interface {
	Flush() error
}

// Scheduler runs Flush on a cron spec.
// Specs accept the standard five fields and descriptors such as "@every 5s".
// Intervals below one second are rounded up by cron.
type Scheduler struct {
	cron    *cron.Cron
	flusher Flusher
	spec    string
	entry   cron.EntryID

	mu         sync.Mutex
	running    bool
	finalFlush bool
	onError    func(error)
	logger     cron.Logger

	runs   atomic.Uint64
	failed atomic.Uint64
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithLogger sets the logger used for cron's own diagnostics
func WithLogger(logger cron.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithErrorHandler receives every failed flush
func WithErrorHandler(fn func(error)) Option {
	return func(s *Scheduler) {
		s.onError = fn
	}
}

// WithFinalFlush makes Stop flush once more after the last scheduled run
func WithFinalFlush(enabled bool) Option {
	return func(s *Scheduler) {
		s.finalFlush = enabled
	}
}

// New creates a stopped scheduler flushing f on spec
func New(f Flusher, spec string, opts ...Option) (*Scheduler, error) {
	if f == nil {
		return nil, fmt.Errorf("schedule: flusher cannot be nil")
	}

	s := &Scheduler{
		flusher: f,
		spec:    spec,
		logger:  cron.DiscardLogger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cron = cron.New(
		cron.WithLogger(s.logger),
		cron.WithChain(
			cron.Recover(s.logger),
			cron.SkipIfStillRunning(s.logger),
		),
	)

	entry, err := s.cron.AddFunc(spec, s.flush)
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid flush schedule '%s': %w", spec, err)
	}
	s.entry = entry

	return s, nil
}

// FromLogger creates a scheduler from the logger's flush_schedule setting
func FromLogger(l *logbridge.Logger, opts ...Option) (*Scheduler, error) {
	spec := l.GetConfig().FlushSchedule
	if spec == "" {
		return nil, ErrNoSchedule
	}
	return New(l, spec, opts...)
}

// Start begins scheduled flushing. Safe to call multiple times
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
}

// Stop halts scheduling and waits for a running flush to finish or ctx to end
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	if s.finalFlush {
		s.flush()
	}
	return nil
}

// Spec returns the cron spec in use
func (s *Scheduler) Spec() string {
	return s.spec
}

// Next returns the time of the next scheduled flush, zero when stopped
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

// Runs returns how many flushes have been attempted
func (s *Scheduler) Runs() uint64 {
	return s.runs.Load()
}

// Failed returns how many flushes returned an error
func (s *Scheduler) Failed() uint64 {
	return s.failed.Load()
}

func (s *Scheduler) flush() {
	s.runs.Add(1)
	if err := s.flusher.Flush(); err != nil {
		s.failed.Add(1)
		if s.onError != nil {
			s.onError(err)
		} else {
			s.logger.Error(err, "scheduled flush failed", "spec", s.spec)
		}
	}
}
