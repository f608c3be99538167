package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TraceLogger records every table lookup performed by a command.
type TraceLogger interface {
	Log(table string, in, out any)
}

type traceLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewTrace creates a TraceLogger writing to w. A nil w gives a no-op
// logger.
func NewTrace(w io.Writer) TraceLogger {
	return &traceLogger{w: w, now: time.Now}
}

// Log writes one line: timestamp, table, input and result.
func (t *traceLogger) Log(table string, in, out any) {
	if t.w == nil {
		return
	}
	line := fmt.Sprintf("%s %s %v -> %v\n",
		t.now().Format("2006/01/02 15:04:05"),
		table,
		in,
		out)

	t.mu.Lock()
	_, _ = io.WriteString(t.w, line)
	t.mu.Unlock()
}
