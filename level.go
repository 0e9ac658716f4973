package logbridge

import (
	"fmt"
	"strings"
)

// Severity is a log importance level. Higher values are more verbose.
type Severity uint8

// String returns the display name used in prefixes and envelopes.
func (s Severity) String() string {
	switch s {
	case LevelOff:
		return "OFF"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return fmt.Sprintf("LEVEL(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return s <= LevelTrace
}

// Enabled reports whether a record of severity s passes the given threshold.
// LevelOff as a threshold disables everything, and Off is never a record level.
func (s Severity) Enabled(threshold Severity) bool {
	if threshold == LevelOff || s == LevelOff || !s.Valid() {
		return false
	}
	return s <= threshold
}

// SeverityFromCode maps an integer threshold code (0=Off .. 5=Trace) to a Severity.
func SeverityFromCode(code int64) (Severity, error) {
	if code < int64(LevelOff) || code > int64(LevelTrace) {
		return LevelOff, fmt.Errorf("%w: %d", ErrInvalidLevel, code)
	}
	return Severity(code), nil
}

// ParseSeverity converts a level name or numeric code string to a Severity.
func ParseSeverity(levelStr string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelOff, fmtErrorf("invalid level string: '%s' (use off, error, warn, info, debug, trace)", levelStr)
	}
}
