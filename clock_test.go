package logbridge

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedClock reports a constant elapsed duration
type fixedClock time.Duration

func (c fixedClock) Elapsed() time.Duration { return time.Duration(c) }

func TestEpochClock_InitializesOnce(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base

	c := NewEpochClock()
	c.now = func() time.Time {
		return current
	}

	assert.Equal(t, time.Duration(0), c.Elapsed())

	current = base.Add(5 * time.Second)
	assert.Equal(t, 5*time.Second, c.Elapsed())

	current = base.Add(90 * time.Second)
	assert.Equal(t, 90*time.Second, c.Elapsed())
	assert.Equal(t, base, c.Epoch(), "epoch must never move")
}

func TestEpochClock_ConcurrentFirstRead(t *testing.T) {
	c := NewEpochClock()

	var wg sync.WaitGroup
	epochs := make([]time.Time, 16)
	for i := range epochs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			epochs[i] = c.Epoch()
		}(i)
	}
	wg.Wait()

	for _, e := range epochs {
		assert.Equal(t, epochs[0], e)
	}
}

func TestProcessClock_Shared(t *testing.T) {
	assert.Same(t, ProcessClock(), ProcessClock())
	assert.GreaterOrEqual(t, ProcessClock().Elapsed(), time.Duration(0))
}
