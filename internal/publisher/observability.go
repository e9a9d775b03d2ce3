package publisher

import (
	"fmt"
	"io"
	"time"

	"github.com/pautahq/pauta/internal/domain"
)

// CallEvent records metadata about a single publisher invocation.
type CallEvent struct {
	Op        string // "publish" or "schedule"
	Platform  domain.Platform
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about publisher calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes publisher call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] publisher_call op=%s platform=%s latency_ms=%d status=%s\n",
		ts, event.Op, event.Platform, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
