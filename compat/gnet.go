package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/logbridge"
	"github.com/panjf2000/gnet/v2/pkg/logging"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter routes gnet's logging.Logger calls into a logbridge sink
type GnetAdapter struct {
	sink         logbridge.Sink
	source       string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(sink logbridge.Sink, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		sink:   sink,
		source: "gnet",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetSource replaces the "gnet" message tag, empty disables tagging
func WithGnetSource(source string) GnetOption {
	return func(a *GnetAdapter) {
		a.source = source
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	emit(a.sink, logbridge.LevelDebug, a.source, fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	emit(a.sink, logbridge.LevelInfo, a.source, fmt.Sprintf(format, args...))
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	emit(a.sink, logbridge.LevelWarn, a.source, fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	emit(a.sink, logbridge.LevelError, a.source, fmt.Sprintf(format, args...))
}

// Fatalf logs at error level, flushes, then triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	emit(a.sink, logbridge.LevelError, a.source, "fatal: "+msg)

	// Buffered records must reach the host before exit
	flush(a.sink)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
