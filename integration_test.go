package logbridge

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferedScenario runs the documented worker flow: Info threshold,
// buffered delivery, one record kept and one filtered.
func TestBufferedScenario(t *testing.T) {
	logger, host, _ := createTestLogger(t, 3, false)

	// Drain the epoch record so the next batch holds only the scenario records
	require.NoError(t, logger.Flush())
	require.Len(t, host.batches(t), 1)

	logger.Debug("hidden")
	assert.Zero(t, logger.buffer.Len(), "filtered records never reach the buffer")

	logger.Info("ready")
	require.Equal(t, 1, logger.buffer.Len())

	require.NoError(t, logger.Flush())

	batches := host.batches(t)
	require.Len(t, batches, 2)
	assert.Equal(t, []Envelope{{
		Type:    "log",
		Level:   "INFO",
		Message: "[INFO] [00:00:05]          ready",
	}}, batches[1])
	assert.Zero(t, logger.buffer.Len())
}

// TestWriterHostPipeline checks the JSON lines a parent process would read.
func TestWriterHostPipeline(t *testing.T) {
	var out bytes.Buffer

	logger, err := NewBuilder().
		Host(NewWriterHost(&out)).
		Clock(fixedClock(3661 * time.Second)).
		ErrorOutput(&lockedBuffer{}).
		LevelString("debug").
		ShowLogsInstant(false).
		Build()
	require.NoError(t, err)

	logger.Debug("cache warm")
	logger.Trace("not shown")
	require.NoError(t, logger.Shutdown())

	scanner := bufio.NewScanner(&out)
	require.True(t, scanner.Scan())

	var batch []map[string]string
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &batch))
	require.Len(t, batch, 2)

	assert.Equal(t, map[string]string{
		"type":    "log",
		"level":   "INFO",
		"message": "[INFO] [01:01:01]          Epoch: 3661",
	}, batch[0])
	assert.Equal(t, map[string]string{
		"type":    "log",
		"level":   "DEBUG",
		"message": "[DEBUG] [01:01:01]         cache warm",
	}, batch[1])

	assert.False(t, scanner.Scan(), "shutdown posts exactly one batch")
}

// TestChannelHostPipeline delivers immediately into a Go channel.
func TestChannelHostPipeline(t *testing.T) {
	host := NewChannelHost(8)

	logger, err := NewBuilder().
		Host(host).
		Clock(fixedClock(0)).
		Level(2).
		ShowLogsInstant(true).
		Build()
	require.NoError(t, err)
	defer logger.Shutdown()

	logger.Warn("first")
	logger.Error("second")

	for _, want := range []string{
		"[WARN] [00:00:00]          first",
		"[ERROR] [00:00:00]         second",
	} {
		select {
		case msg := <-host.Messages():
			env, ok := msg.(Envelope)
			require.True(t, ok)
			assert.Equal(t, want, env.Message)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for envelope")
		}
	}
}
