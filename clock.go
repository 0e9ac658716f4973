package logbridge

import (
	"sync"
	"time"
)

// Clock reports the time elapsed since a fixed epoch.
type Clock interface {
	Elapsed() time.Duration
}

// EpochClock captures its epoch on first read and never resets it.
type EpochClock struct {
	once  sync.Once
	epoch time.Time
	now   func() time.Time
}

// NewEpochClock creates a clock whose epoch is taken lazily on first use.
func NewEpochClock() *EpochClock {
	return &EpochClock{now: time.Now}
}

// Epoch returns the reference instant, initializing it if needed.
func (c *EpochClock) Epoch() time.Time {
	c.once.Do(func() {
		c.epoch = c.now()
	})
	return c.epoch
}

// Elapsed returns the monotonic duration since the epoch.
func (c *EpochClock) Elapsed() time.Duration {
	epoch := c.Epoch()
	return c.now().Sub(epoch)
}

var processClock = NewEpochClock()

// ProcessClock returns the process-wide clock shared by all loggers that
// are not given their own.
func ProcessClock() *EpochClock {
	return processClock
}
