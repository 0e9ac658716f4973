package compat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lixenwraith/logbridge"
)

var _ slog.Handler = (*SlogHandler)(nil)

// LevelTrace is the slog level mapped to logbridge.LevelTrace
const LevelTrace = slog.Level(-8)

// SlogHandler implements slog.Handler on top of a logbridge sink.
// Attributes are rendered as trailing key=value pairs, groups as dotted key prefixes.
type SlogHandler struct {
	sink   logbridge.Sink
	attrs  string // pre-rendered WithAttrs output
	prefix string // open group path, ends with "."
}

// NewSlogHandler creates a handler delivering to sink
func NewSlogHandler(sink logbridge.Sink) *SlogHandler {
	return &SlogHandler{sink: sink}
}

// SeverityFromSlog maps a slog level onto the bridge's severities
func SeverityFromSlog(level slog.Level) logbridge.Severity {
	switch {
	case level >= slog.LevelError:
		return logbridge.LevelError
	case level >= slog.LevelWarn:
		return logbridge.LevelWarn
	case level >= slog.LevelInfo:
		return logbridge.LevelInfo
	case level >= slog.LevelDebug:
		return logbridge.LevelDebug
	default:
		return logbridge.LevelTrace
	}
}

// Enabled asks the sink when it can answer, so filtered records skip attribute rendering
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if e, ok := h.sink.(interface{ Enabled(logbridge.Severity) bool }); ok {
		return e.Enabled(SeverityFromSlog(level))
	}
	return true
}

// Handle renders the record and hands it to the sink
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.prefix, a)
		return true
	})
	return h.sink.HandleRecord(SeverityFromSlog(r.Level), sb.String())
}

// WithAttrs returns a handler that appends attrs to every record
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.prefix, a)
	}
	clone := *h
	clone.attrs = sb.String()
	return &clone
}

// WithGroup returns a handler that qualifies later attribute keys with name
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendAttr writes " prefix.key=value", flattening nested groups
func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, groupPrefix, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
