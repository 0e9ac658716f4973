package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/logbridge"
	"github.com/valyala/fasthttp"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter routes fasthttp's Printf logger into a logbridge sink
type FastHTTPAdapter struct {
	sink          logbridge.Sink
	defaultLevel  logbridge.Severity
	levelDetector func(string) logbridge.Severity // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(sink logbridge.Sink, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		sink:          sink,
		defaultLevel:  logbridge.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection finds nothing
func WithDefaultLevel(level logbridge.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) logbridge.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != logbridge.LevelOff {
			level = detected
		}
	}

	emit(a.sink, level, "fasthttp", msg)
}

// DetectLogLevel guesses a level from message content, LevelOff when nothing matches
func DetectLogLevel(msg string) logbridge.Severity {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return logbridge.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return logbridge.LevelWarn
	}

	if strings.Contains(msgLower, "debug") {
		return logbridge.LevelDebug
	}

	if strings.Contains(msgLower, "trace") {
		return logbridge.LevelTrace
	}

	return logbridge.LevelOff
}
