package logbridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useDefaultLogger swaps the package-level logger for the duration of a test
func useDefaultLogger(t *testing.T) *recordingHost {
	t.Helper()
	logger, host, _ := newTestLogger()

	saved := defaultLogger
	defaultLogger = logger
	t.Cleanup(func() {
		_ = logger.Shutdown()
		defaultLogger = saved
	})
	return host
}

func TestPackageLevelFunctions(t *testing.T) {
	host := useDefaultLogger(t)
	assert.Same(t, defaultLogger, Default())

	require.NoError(t, InitLogger(5, false))
	assert.ErrorIs(t, InitLogger(5, false), ErrAlreadyInitialized)

	Error("e")
	Warn("w")
	Info("i")
	Debug("d")
	Trace("t")
	Log(LevelInfo, "l")

	require.NoError(t, FlushLogs())

	batches := host.batches(t)
	require.Len(t, batches, 1)
	levels := make([]string, 0, len(batches[0]))
	for _, env := range batches[0] {
		levels = append(levels, env.Level)
	}
	assert.Equal(t, []string{"INFO", "ERROR", "WARN", "INFO", "DEBUG", "TRACE", "INFO"}, levels)

	require.NoError(t, Shutdown())
	assert.False(t, Default().Stats().Initialized)
}

func TestLoadConfig(t *testing.T) {
	host := useDefaultLogger(t)

	path := filepath.Join(t.TempDir(), "bridge.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logbridge]\nlevel = 1\n"), 0644))

	require.NoError(t, LoadConfig(path, "show_logs_instant=true"))

	cfg := Default().GetConfig()
	assert.Equal(t, int64(LevelError), cfg.Level)
	assert.True(t, cfg.ShowLogsInstant)

	Warn("filtered")
	Error("kept")
	envs := host.envelopes(t)
	require.Len(t, envs, 1)
	assert.Equal(t, "[ERROR] [00:00:05]         kept", envs[0].Message)
}
