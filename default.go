package logbridge

import "os"

// Global instance for package-level functions, posting JSON lines to stdout
var defaultLogger = NewLogger(NewWriterHost(os.Stdout))

// Default returns the process-wide logger behind the package-level functions.
func Default() *Logger {
	return defaultLogger
}

// InitLogger installs the threshold (0=Off .. 5=Trace) and delivery mode on
// the default logger.
func InitLogger(levelCode int64, showLogsInstant bool) error {
	return defaultLogger.Init(levelCode, showLogsInstant)
}

// FlushLogs posts everything the default logger has buffered as one batch.
func FlushLogs() error {
	return defaultLogger.Flush()
}

// Shutdown flushes and uninstalls the default logger
func Shutdown() error {
	return defaultLogger.Shutdown()
}

// LoadConfig loads configuration from a TOML file, applies key=value
// overrides and installs the default logger.
func LoadConfig(path string, overrides ...string) error {
	cfg, err := NewConfigFromFile(path)
	if err != nil {
		return err
	}
	if err := defaultLogger.ApplyConfig(cfg); err != nil {
		return err
	}
	if len(overrides) > 0 {
		if err := defaultLogger.ApplyOverride(overrides...); err != nil {
			return err
		}
	}
	return defaultLogger.Start()
}

// Error logs a message at error level
func Error(args ...any) {
	defaultLogger.Error(args...)
}

// Warn logs a message at warning level
func Warn(args ...any) {
	defaultLogger.Warn(args...)
}

// Info logs a message at info level
func Info(args ...any) {
	defaultLogger.Info(args...)
}

// Debug logs a message at debug level
func Debug(args ...any) {
	defaultLogger.Debug(args...)
}

// Trace logs a message at trace level
func Trace(args ...any) {
	defaultLogger.Trace(args...)
}

// Log logs a message at the given level
func Log(level Severity, args ...any) {
	defaultLogger.Log(level, args...)
}
