package compat

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/logbridge"
)

// Builder creates framework adapters sharing one logbridge logger.
// It can use an existing *logbridge.Logger or install a new one from a Config and Host.
type Builder struct {
	logger *logbridge.Logger
	logCfg *logbridge.Config
	host   logbridge.Host
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// If this is set WithConfig and WithHost are ignored
func (b *Builder) WithLogger(l *logbridge.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("logbridge/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
func (b *Builder) WithConfig(cfg *logbridge.Config) *Builder {
	b.logCfg = cfg
	return b
}

// WithHost sets the message channel of a new logger instance
func (b *Builder) WithHost(host logbridge.Host) *Builder {
	b.host = host
	return b
}

// getLogger resolves the logger to be used, creating and installing one if necessary
func (b *Builder) getLogger() (*logbridge.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	if b.host == nil {
		return nil, fmt.Errorf("logbridge/compat: %w", logbridge.ErrNoHost)
	}

	l := logbridge.NewLogger(b.host)
	cfg := b.logCfg
	if cfg == nil {
		cfg = logbridge.DefaultConfig()
	}

	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	if err := l.Start(); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// BuildCron creates a robfig/cron logger adapter
func (b *Builder) BuildCron() (*CronAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewCronAdapter(l), nil
}

// BuildSlog creates a *slog.Logger writing through the bridge
func (b *Builder) BuildSlog() (*slog.Logger, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return slog.New(NewSlogHandler(l)), nil
}

// GetLogger returns the underlying *logbridge.Logger instance
// If a logger has not been provided or created yet, it will be initialized
func (b *Builder) GetLogger() (*logbridge.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
//	// 1. Install the worker's bridge logger, posting JSON lines to the parent
//	appLogger, err := logbridge.NewBuilder().
//		Host(logbridge.NewWriterHost(os.Stdout)).
//		LevelString("debug").
//		ShowLogsInstant(true).
//		Build()
//	if err != nil { /* handle error */ }
//
//	// 2. Create a builder and provide the existing logger
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	// 3. Build the required adapters
//	gnetLogger, _ := builder.BuildGnet()
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//	cronLogger, _ := builder.BuildCron()
//	slogLogger, _ := builder.BuildSlog()
//
//	// 4. Configure frameworks with the adapters
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//	c := cron.New(cron.WithLogger(cronLogger))
//	slog.SetDefault(slogLogger)
