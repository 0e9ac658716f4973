// Package formatter renders log lines with a fixed-width elapsed-time prefix:
//
//	[INFO] [00:00:05]          ready
//
// The prefix is "[LEVEL] [HH:MM:SS]" padded with spaces to MinPrefixWidth.
package formatter

import (
	"strconv"
	"time"

	"github.com/lixenwraith/logbridge/sanitizer"
)

// MinPrefixWidth is the column at which message text starts when the prefix is shorter
const MinPrefixWidth = 27

// Formatter builds prefixed log lines
type Formatter struct {
	sanitizer *sanitizer.Sanitizer
	width     int
}

// New creates a formatter with the provided sanitizer
func New(s ...*sanitizer.Sanitizer) *Formatter {
	var san *sanitizer.Sanitizer
	if len(s) > 0 && s[0] != nil {
		san = s[0]
	} else {
		san = sanitizer.New() // Default passthrough sanitizer
	}
	return &Formatter{
		sanitizer: san,
		width:     MinPrefixWidth,
	}
}

// Format renders the full line for a record: padded prefix followed by the message
func (f *Formatter) Format(level string, elapsed time.Duration, message string) string {
	message = f.sanitizer.Sanitize(message)

	buf := make([]byte, 0, f.width+len(message))
	buf = AppendPrefix(buf, level, elapsed)
	for len(buf) < f.width {
		buf = append(buf, ' ')
	}
	buf = append(buf, message...)
	return string(buf)
}

// AppendPrefix appends "[LEVEL] [HH:MM:SS]" to buf without padding
func AppendPrefix(buf []byte, level string, elapsed time.Duration) []byte {
	buf = append(buf, '[')
	buf = append(buf, level...)
	buf = append(buf, "] ["...)
	buf = AppendElapsed(buf, elapsed)
	buf = append(buf, ']')
	return buf
}

// Prefix returns the unpadded prefix for a level and elapsed duration
func Prefix(level string, elapsed time.Duration) string {
	return string(AppendPrefix(nil, level, elapsed))
}

// AppendElapsed appends elapsed whole seconds as HH:MM:SS.
// Hours are not wrapped, so 360000s renders as 100:00:00.
func AppendElapsed(buf []byte, elapsed time.Duration) []byte {
	if elapsed < 0 {
		elapsed = 0
	}
	total := uint64(elapsed / time.Second)
	hours := total / 3600
	minutes := (total / 60) % 60
	seconds := total % 60

	buf = appendTwoDigits(buf, hours)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, minutes)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, seconds)
	return buf
}

// Elapsed returns the HH:MM:SS rendering of a duration
func Elapsed(elapsed time.Duration) string {
	return string(AppendElapsed(nil, elapsed))
}

func appendTwoDigits(buf []byte, n uint64) []byte {
	if n < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendUint(buf, n, 10)
}
