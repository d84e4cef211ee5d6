package llm

import (
	"go.uber.org/zap"
)

// CallEvent records metadata about a single provider invocation.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about provider calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// ZapObserver writes provider call events to a zap logger.
type ZapObserver struct {
	log *zap.SugaredLogger
}

// NewZapObserver creates an Observer that logs events via zap.
func NewZapObserver(log *zap.SugaredLogger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		o.log.Infow("llm call",
			"task", event.Task,
			"model", event.Model,
			"latency_ms", event.LatencyMs,
		)
		return
	}
	o.log.Warnw("llm call failed",
		"task", event.Task,
		"model", event.Model,
		"latency_ms", event.LatencyMs,
		"error_code", event.ErrorCode,
	)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
