// FILE: lixenwraith/logbridge/constant.go
package logbridge

import "errors"

// Severity levels, ordered by increasing verbosity
const (
	LevelOff Severity = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// KindLog tags every envelope as a log message for host-side routing
const KindLog = "log"

// Delivery modes
const (
	DeliveryImmediate DeliveryMode = iota
	DeliveryBuffered
)

// Sanitization policies accepted in configuration
const (
	SanitizeRaw  = "raw"
	SanitizeTxt  = "txt"
	SanitizeJSON = "json"
)

// Error channel targets accepted in configuration
const (
	TargetStderr  = "stderr"
	TargetStdout  = "stdout"
	TargetDiscard = "discard"
)

// Sentinel errors
var (
	ErrAlreadyInitialized = errors.New("logbridge: logger already initialized")
	ErrInvalidLevel       = errors.New("logbridge: invalid level filter value")
	ErrNoHost             = errors.New("logbridge: no host channel configured")
)
