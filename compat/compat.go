// Package compat adapts third-party logging interfaces onto a logbridge sink,
// so framework output travels the same filter, format and deliver path as
// application records.
package compat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/logbridge"
)

// Flusher is implemented by sinks that can push buffered records to the host.
type Flusher interface {
	Flush() error
}

// errOutput receives sink errors the adapted interfaces have no way to return
var errOutput io.Writer = os.Stderr

// emit hands one record to the sink, tagged with its source
func emit(sink logbridge.Sink, level logbridge.Severity, source, msg string) {
	if source != "" {
		msg = source + ": " + msg
	}
	if err := sink.HandleRecord(level, msg); err != nil {
		fmt.Fprintf(errOutput, "logbridge/compat: %v\n", err)
	}
}

// flush pushes buffered records if the sink supports it
func flush(sink logbridge.Sink) {
	if f, ok := sink.(Flusher); ok {
		if err := f.Flush(); err != nil {
			fmt.Fprintf(errOutput, "logbridge/compat: %v\n", err)
		}
	}
}

// appendKeyValues renders alternating keys and values as " k=v" pairs
func appendKeyValues(sb *strings.Builder, keysAndValues []any) {
	for i := 0; i < len(keysAndValues); i += 2 {
		sb.WriteByte(' ')
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(sb, "%v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(sb, "%v", keysAndValues[i])
		}
	}
}
