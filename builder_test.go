package logbridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns installed logger", func(t *testing.T) {
		host := &recordingHost{}

		logger, err := NewBuilder().
			Host(host).
			Clock(fixedClock(42 * time.Second)).
			ErrorOutput(&lockedBuffer{}).
			LevelString("debug").
			ShowLogsInstant(true).
			Sanitization(SanitizeTxt).
			ErrorTarget(TargetDiscard).
			FlushSchedule("@every 10s").
			Build()
		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, logger)
		defer logger.Shutdown()

		cfg := logger.GetConfig()
		assert.Equal(t, int64(LevelDebug), cfg.Level)
		assert.True(t, cfg.ShowLogsInstant)
		assert.Equal(t, SanitizeTxt, cfg.Sanitization)
		assert.Equal(t, TargetDiscard, cfg.ErrorTarget)
		assert.Equal(t, "@every 10s", cfg.FlushSchedule)

		envs := host.envelopes(t)
		require.Len(t, envs, 1)
		assert.Equal(t, "[INFO] [00:00:42]          Epoch: 42", envs[0].Message)
	})

	t.Run("builder error on invalid level string", func(t *testing.T) {
		logger, err := NewBuilder().
			Host(&recordingHost{}).
			LevelString("verbose").
			Level(2). // ignored, the first error sticks
			Build()

		assert.Error(t, err)
		assert.Nil(t, logger)
		assert.Contains(t, err.Error(), "invalid level string")
	})

	t.Run("validation error", func(t *testing.T) {
		logger, err := NewBuilder().
			Host(&recordingHost{}).
			Sanitization("html").
			Build()

		assert.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("missing host", func(t *testing.T) {
		logger, err := NewBuilder().Build()

		assert.ErrorIs(t, err, ErrNoHost)
		assert.Nil(t, logger)
	})
}
