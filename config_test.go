package logbridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, int64(LevelInfo), cfg.Level)
	assert.False(t, cfg.ShowLogsInstant)
	assert.Equal(t, SanitizeRaw, cfg.Sanitization)
	assert.Equal(t, TargetStderr, cfg.ErrorTarget)
	assert.Empty(t, cfg.FlushSchedule)
	assert.NoError(t, cfg.Validate())
}

func TestConfigClone(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.Level = int64(LevelDebug)
	cfg1.FlushSchedule = "@every 1s"

	cfg2 := cfg1.Clone()

	assert.Equal(t, cfg1.Level, cfg2.Level)
	assert.Equal(t, cfg1.FlushSchedule, cfg2.FlushSchedule)

	// Modify original
	cfg1.Level = int64(LevelError)

	// Verify clone unchanged
	assert.Equal(t, int64(LevelDebug), cfg2.Level)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:   "valid config",
			modify: func(c *Config) {},
		},
		{
			name:   "trace level with cron schedule",
			modify: func(c *Config) { c.Level = 5; c.FlushSchedule = "*/5 * * * *" },
		},
		{
			name:      "level too high",
			modify:    func(c *Config) { c.Level = 6 },
			wantError: "level: failed 'max'",
		},
		{
			name:      "negative level",
			modify:    func(c *Config) { c.Level = -1 },
			wantError: "level: failed 'min'",
		},
		{
			name:      "unknown sanitization",
			modify:    func(c *Config) { c.Sanitization = "html" },
			wantError: "sanitization: failed 'oneof'",
		},
		{
			name:      "unknown error target",
			modify:    func(c *Config) { c.ErrorTarget = "syslog" },
			wantError: "error_target: failed 'oneof'",
		},
		{
			name:      "bad flush schedule",
			modify:    func(c *Config) { c.FlushSchedule = "every now and then" },
			wantError: "flush_schedule: failed 'cronspec'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"level":             5,
		"show_logs_instant": true,
		"sanitization":      "json",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Level)
	assert.True(t, cfg.ShowLogsInstant)
	assert.Equal(t, SanitizeJSON, cfg.Sanitization)

	_, err = NewConfigFromDefaults(map[string]any{"directory": "/tmp"})
	assert.ErrorContains(t, err, "unknown config key: directory")

	_, err = NewConfigFromDefaults(map[string]any{"show_logs_instant": "yes"})
	assert.ErrorContains(t, err, "expected bool")

	_, err = NewConfigFromDefaults(map[string]any{"level": 9})
	assert.ErrorContains(t, err, "config validation failed")
}

func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.toml")
	content := `
[logbridge]
level = 4
show_logs_instant = true
sanitization = "txt"
flush_schedule = "@every 2s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, int64(4), cfg.Level)
	assert.True(t, cfg.ShowLogsInstant)
	assert.Equal(t, SanitizeTxt, cfg.Sanitization)
	assert.Equal(t, "@every 2s", cfg.FlushSchedule)
	assert.Equal(t, TargetStderr, cfg.ErrorTarget, "unset keys keep defaults")
}

func TestApplyOverride(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		check     func(*testing.T, *Config)
		wantError string
	}{
		{
			name:      "numeric level",
			overrides: []string{"level=2"},
			check:     func(t *testing.T, c *Config) { assert.Equal(t, int64(2), c.Level) },
		},
		{
			name:      "named level",
			overrides: []string{"level=trace"},
			check:     func(t *testing.T, c *Config) { assert.Equal(t, int64(LevelTrace), c.Level) },
		},
		{
			name:      "all keys",
			overrides: []string{"show_logs_instant=true", "sanitization=txt", "error_target=discard", "flush_schedule=@every 3s"},
			check: func(t *testing.T, c *Config) {
				assert.True(t, c.ShowLogsInstant)
				assert.Equal(t, SanitizeTxt, c.Sanitization)
				assert.Equal(t, TargetDiscard, c.ErrorTarget)
				assert.Equal(t, "@every 3s", c.FlushSchedule)
			},
		},
		{
			name:      "bad level name",
			overrides: []string{"level=loud"},
			wantError: "invalid level value 'loud'",
		},
		{
			name:      "bad bool",
			overrides: []string{"show_logs_instant=maybe"},
			wantError: "invalid boolean value for show_logs_instant",
		},
		{
			name:      "missing equals",
			overrides: []string{"level"},
			wantError: "expected key=value",
		},
		{
			name:      "multiple errors",
			overrides: []string{"color=red", "level=loud"},
			wantError: "multiple configuration errors",
		},
		{
			name:      "fails validation",
			overrides: []string{"level=7"},
			wantError: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _, _ := newTestLogger()
			err := logger.ApplyOverride(tt.overrides...)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			tt.check(t, logger.GetConfig())
		})
	}
}
