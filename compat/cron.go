package compat

import (
	"strings"

	"github.com/lixenwraith/logbridge"
	"github.com/robfig/cron/v3"
)

var _ cron.Logger = (*CronAdapter)(nil)

// CronAdapter routes robfig/cron scheduler logs into a logbridge sink.
// Scheduler chatter (start, wake, run) is logged at Debug.
type CronAdapter struct {
	sink      logbridge.Sink
	infoLevel logbridge.Severity
}

// NewCronAdapter creates a cron.Logger backed by sink
func NewCronAdapter(sink logbridge.Sink) *CronAdapter {
	return &CronAdapter{sink: sink, infoLevel: logbridge.LevelDebug}
}

// Info implements cron.Logger
func (a *CronAdapter) Info(msg string, keysAndValues ...any) {
	var sb strings.Builder
	sb.WriteString(msg)
	appendKeyValues(&sb, keysAndValues)
	emit(a.sink, a.infoLevel, "cron", sb.String())
}

// Error implements cron.Logger
func (a *CronAdapter) Error(err error, msg string, keysAndValues ...any) {
	var sb strings.Builder
	sb.WriteString(msg)
	appendKeyValues(&sb, keysAndValues)
	if err != nil {
		sb.WriteString(" error=")
		sb.WriteString(err.Error())
	}
	emit(a.sink, logbridge.LevelError, "cron", sb.String())
}
