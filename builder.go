package logbridge

import "io"

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg    *Config
	host   Host
	clock  Clock
	errOut io.Writer
	err    error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a Logger with the configured host and installs its sink.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger(b.host)
	if b.clock != nil {
		logger.clock = b.clock
	}

	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}
	if b.errOut != nil {
		logger.SetErrorOutput(b.errOut)
	}

	if err := logger.Start(); err != nil {
		return nil, err
	}

	return logger, nil
}

// Level sets the threshold code.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the threshold from a level name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseSeverity(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = int64(levelVal)
	return b
}

// ShowLogsInstant selects immediate (true) or buffered (false) delivery.
func (b *Builder) ShowLogsInstant(instant bool) *Builder {
	b.cfg.ShowLogsInstant = instant
	return b
}

// Sanitization sets the message sanitization policy.
func (b *Builder) Sanitization(policy string) *Builder {
	b.cfg.Sanitization = policy
	return b
}

// ErrorTarget sets where internal diagnostics are written.
func (b *Builder) ErrorTarget(target string) *Builder {
	b.cfg.ErrorTarget = target
	return b
}

// FlushSchedule sets the cron spec used by the flush scheduler.
func (b *Builder) FlushSchedule(spec string) *Builder {
	b.cfg.FlushSchedule = spec
	return b
}

// Host sets the message channel envelopes are posted to.
func (b *Builder) Host(host Host) *Builder {
	b.host = host
	return b
}

// Clock replaces the process clock.
func (b *Builder) Clock(clock Clock) *Builder {
	b.clock = clock
	return b
}

// ErrorOutput sends internal diagnostics to w, overriding ErrorTarget.
func (b *Builder) ErrorOutput(w io.Writer) *Builder {
	b.errOut = w
	return b
}

// Example usage:
// logger, err := logbridge.NewBuilder().
//
//	Host(logbridge.NewWriterHost(os.Stdout)).
//	LevelString("debug").
//	ShowLogsInstant(false).
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Info("bridge ready")
//
// }
