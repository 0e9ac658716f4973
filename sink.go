package logbridge

import "fmt"

// Sink is the single capability every upstream logging facility needs:
// hand over a severity-tagged message.
type Sink interface {
	HandleRecord(level Severity, message string) error
}

// DeliveryMode selects how accepted records reach the host.
type DeliveryMode uint8

// String returns the mode name.
func (m DeliveryMode) String() string {
	switch m {
	case DeliveryImmediate:
		return "immediate"
	case DeliveryBuffered:
		return "buffered"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// modeFor maps the show_logs_instant flag to a delivery mode.
func modeFor(showLogsInstant bool) DeliveryMode {
	if showLogsInstant {
		return DeliveryImmediate
	}
	return DeliveryBuffered
}

var _ Sink = (*Logger)(nil)
