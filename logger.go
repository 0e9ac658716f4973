package logbridge

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/logbridge/formatter"
	"github.com/lixenwraith/logbridge/sanitizer"
)

// Logger is the core struct that encapsulates all logger functionality
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	initMu        sync.Mutex
	clock         Clock
	host          Host
	formatter     atomic.Pointer[formatter.Formatter]
	buffer        LogBuffer
}

// NewLogger creates a new Logger posting to host. Nothing is delivered
// until Init installs a threshold and delivery mode.
func NewLogger(host Host) *Logger {
	l := &Logger{
		clock: ProcessClock(),
		host:  host,
	}

	l.currentConfig.Store(DefaultConfig())
	l.formatter.Store(formatter.New())
	l.state.ErrorWriter.Store(&sink{w: os.Stderr})
	l.state.LoggerStartTime.Store(time.Time{})
	l.state.threshold.Store(uint32(LevelOff))
	l.state.mode.Store(uint32(DeliveryBuffered))

	return l
}

// Init installs the severity threshold (0=Off .. 5=Trace) and delivery mode,
// then emits one Info record with the seconds elapsed since the epoch.
// An out-of-range code is reported on the error output and installs nothing.
func (l *Logger) Init(levelCode int64, showLogsInstant bool) error {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	threshold, err := SeverityFromCode(levelCode)
	if err != nil {
		l.internalLog("%v\n", err)
		return nil
	}

	if l.state.IsInitialized.Load() {
		return fmt.Errorf("%w: installed with threshold %s in %s mode",
			ErrAlreadyInitialized, l.threshold(), l.mode())
	}

	if l.host == nil {
		return fmt.Errorf("%w: cannot install sink", ErrNoHost)
	}

	mode := modeFor(showLogsInstant)
	l.state.threshold.Store(uint32(threshold))
	l.state.mode.Store(uint32(mode))
	l.state.LoggerDisabled.Store(false)
	l.state.ShutdownCalled.Store(false)
	l.state.LoggerStartTime.Store(time.Now())
	l.state.IsInitialized.Store(true)

	cfg := l.getConfig().Clone()
	cfg.Level = levelCode
	cfg.ShowLogsInstant = showLogsInstant
	l.currentConfig.Store(cfg)

	epoch := "Epoch: " + strconv.FormatFloat(l.clock.Elapsed().Seconds(), 'f', -1, 64)
	if err := l.HandleRecord(LevelInfo, epoch); err != nil {
		l.internalLog("%v\n", err)
	}

	return nil
}

// Start installs the sink using the level and delivery mode of the
// current configuration.
func (l *Logger) Start() error {
	cfg := l.getConfig()
	return l.Init(cfg.Level, cfg.ShowLogsInstant)
}

// ApplyConfig applies a validated configuration to the logger.
// Level and delivery mode cannot change while the sink is installed.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg)
}

// applyConfig is the internal implementation for applying configuration, assuming initMu is held
func (l *Logger) applyConfig(cfg *Config) error {
	if l.state.IsInitialized.Load() {
		oldCfg := l.getConfig()
		if oldCfg.Level != cfg.Level || oldCfg.ShowLogsInstant != cfg.ShowLogsInstant {
			return fmt.Errorf("%w: level and show_logs_instant are fixed until Shutdown", ErrAlreadyInitialized)
		}
	}

	s, err := sanitizer.ForPolicy(cfg.Sanitization)
	if err != nil {
		return fmtErrorf("failed to build sanitizer: %w", err)
	}

	l.formatter.Store(formatter.New(s))
	l.state.ErrorWriter.Store(&sink{w: errorWriterFor(cfg.ErrorTarget)})
	l.currentConfig.Store(cfg.Clone())

	return nil
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// SetErrorOutput redirects internal diagnostics to w until the next
// configuration change.
func (l *Logger) SetErrorOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.state.ErrorWriter.Store(&sink{w: w})
}

// Enabled reports whether a record of the given level would be delivered.
func (l *Logger) Enabled(level Severity) bool {
	return l.active() && level.Enabled(l.threshold())
}

// HandleRecord filters, formats and delivers one record. Records below the
// threshold, or arriving while no sink is installed, are dropped without error.
func (l *Logger) HandleRecord(level Severity, message string) error {
	l.state.gate.RLock()
	defer l.state.gate.RUnlock()

	if !l.accept(level) {
		return nil
	}
	return l.emit(level, message)
}

// Error logs a message at error level
func (l *Logger) Error(args ...any) {
	l.log(LevelError, args...)
}

// Warn logs a message at warning level
func (l *Logger) Warn(args ...any) {
	l.log(LevelWarn, args...)
}

// Info logs a message at info level
func (l *Logger) Info(args ...any) {
	l.log(LevelInfo, args...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(args ...any) {
	l.log(LevelDebug, args...)
}

// Trace logs a message at trace level
func (l *Logger) Trace(args ...any) {
	l.log(LevelTrace, args...)
}

// Log logs a message at the given level
func (l *Logger) Log(level Severity, args ...any) {
	l.log(level, args...)
}

// log renders args only after the record passed the filter
func (l *Logger) log(level Severity, args ...any) {
	l.state.gate.RLock()
	defer l.state.gate.RUnlock()

	if !l.accept(level) {
		return
	}
	if err := l.emit(level, renderMessage(args)); err != nil {
		l.internalLog("%v\n", err)
	}
}

// accept applies the severity filter, assuming the gate is read-held
func (l *Logger) accept(level Severity) bool {
	if !l.active() {
		return false
	}
	if !level.Enabled(l.threshold()) {
		l.state.TotalFiltered.Add(1)
		return false
	}
	return true
}

// emit formats, wraps and delivers an accepted record
func (l *Logger) emit(level Severity, message string) error {
	line := l.formatter.Load().Format(level.String(), l.clock.Elapsed(), message)
	if err := l.deliver(NewEnvelope(level, line)); err != nil {
		return err
	}
	l.state.TotalLogsProcessed.Add(1)
	return nil
}

// deliver posts the envelope right away or buffers it for the next flush
func (l *Logger) deliver(env Envelope) error {
	if l.mode() == DeliveryBuffered {
		l.buffer.Append(env)
		return nil
	}

	l.state.sendMutex.Lock()
	err := l.host.PostMessage(env)
	l.state.sendMutex.Unlock()

	if err != nil {
		l.state.FailedSends.Add(1)
		return fmtErrorf("failed to post %s envelope: %w", env.Level, err)
	}
	return nil
}

func (l *Logger) active() bool {
	return l.state.IsInitialized.Load() && !l.state.LoggerDisabled.Load()
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// internalLog writes diagnostics to the error output, never through the pipeline
func (l *Logger) internalLog(format string, args ...any) {
	s, ok := l.state.ErrorWriter.Load().(*sink)
	if !ok || s == nil {
		return
	}

	// Ensure consistent "logbridge: " prefix
	msg := fmt.Sprintf(format, args...)
	if !strings.HasPrefix(msg, errPrefix) {
		msg = errPrefix + msg
	}
	_, _ = io.WriteString(s.w, msg)
}

func errorWriterFor(target string) io.Writer {
	switch target {
	case TargetStdout:
		return os.Stdout
	case TargetDiscard:
		return io.Discard
	default:
		return os.Stderr
	}
}
