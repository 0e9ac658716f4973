package logbridge

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerShutdown verifies the logger's state and behavior after shutdown is called
func TestLoggerShutdown(t *testing.T) {
	t.Run("buffered shutdown flushes", func(t *testing.T) {
		logger, host, _ := createTestLogger(t, 3, false)
		logger.Info("pending")

		require.NoError(t, logger.Shutdown())

		assert.True(t, logger.state.ShutdownCalled.Load())
		assert.True(t, logger.state.LoggerDisabled.Load())
		assert.False(t, logger.state.IsInitialized.Load())

		batches := host.batches(t)
		require.Len(t, batches, 1)
		assert.Len(t, batches[0], 2)
	})

	t.Run("immediate shutdown posts nothing", func(t *testing.T) {
		logger, host, _ := createTestLogger(t, 3, true)
		before := len(host.messages())

		require.NoError(t, logger.Shutdown())
		assert.Len(t, host.messages(), before)
	})

	t.Run("shutdown before init", func(t *testing.T) {
		logger, _, _ := newTestLogger()
		assert.NoError(t, logger.Shutdown())
		assert.False(t, logger.state.ShutdownCalled.Load())
	})

	t.Run("double shutdown", func(t *testing.T) {
		logger, host, _ := createTestLogger(t, 3, false)

		err1 := logger.Shutdown()
		err2 := logger.Shutdown()

		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Len(t, host.messages(), 1)
	})

	t.Run("flush after shutdown is a no-op", func(t *testing.T) {
		logger, host, _ := createTestLogger(t, 3, false)
		require.NoError(t, logger.Shutdown())

		require.NoError(t, logger.Flush())
		assert.Len(t, host.messages(), 1)
	})
}

// TestShutdownDuringLogging checks that no accepted record is stranded
func TestShutdownDuringLogging(t *testing.T) {
	logger, host, _ := createTestLogger(t, 3, false)

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if logger.Enabled(LevelInfo) {
					logger.Info("p", p, i)
				}
			}
		}(p)
	}

	time.Sleep(time.Millisecond)
	require.NoError(t, logger.Shutdown())
	wg.Wait()

	total := 0
	for _, batch := range host.batches(t) {
		total += len(batch)
	}
	assert.Equal(t, int(logger.Stats().Processed), total, "every processed record reaches the host")
	assert.Zero(t, logger.buffer.Len())
}

func TestStats(t *testing.T) {
	logger, _, _ := createTestLogger(t, 2, false)

	logger.Error("a")
	logger.Warn("b")
	logger.Info("c")
	logger.Debug("d")

	stats := logger.Stats()
	assert.True(t, stats.Initialized)
	assert.False(t, stats.Disabled)
	assert.Equal(t, LevelWarn, stats.Threshold)
	assert.Equal(t, DeliveryBuffered, stats.Mode)
	assert.Equal(t, uint64(2), stats.Processed)
	assert.Equal(t, uint64(3), stats.Filtered, "epoch record plus info and debug")
	assert.Equal(t, 2, stats.Pending)
	assert.GreaterOrEqual(t, stats.Uptime, time.Duration(0))

	require.NoError(t, logger.Flush())
	stats = logger.Stats()
	assert.Zero(t, stats.Pending)
	assert.Equal(t, uint64(1), stats.Flushes)
}
