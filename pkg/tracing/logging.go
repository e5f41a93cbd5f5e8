package tracing

import (
	"context"
	"log/slog"
	"time"
)

var (
	_ Tracer = LoggingTracer{}
	_ Span   = loggingSpan{}
)

// LoggingTracer emits spans as debug-level log records.
type LoggingTracer struct {
	logger *slog.Logger
}

func NewLoggingTracer(logger *slog.Logger) *LoggingTracer {
	return &LoggingTracer{
		logger: logger,
	}
}

//nolint:ireturn // Tracer implementations are selected by the caller.
func (l LoggingTracer) StartSpan(operationName string) Span {
	return loggingSpan{
		logger:        l.logger,
		operationName: operationName,
		baggage:       make(map[string]any),
		start:         time.Now(),
	}
}

type loggingSpan struct {
	logger        *slog.Logger
	operationName string
	baggage       map[string]any
	start         time.Time
}

func (s loggingSpan) Finish() {
	attrs := []any{}
	attrs = append(attrs, baggageToVals(s.baggage)...)
	attrs = append(attrs, "operation_name", s.operationName, "time_ms", time.Since(s.start).Seconds()*1e3)
	s.logger.Log(context.Background(), slog.LevelDebug, "trace", attrs...)
}

func (s loggingSpan) SetBaggageItem(key string, value any) {
	s.baggage[key] = value
}

func baggageToVals(baggage map[string]any) []any {
	result := make([]any, 0, len(baggage)*2)
	for k, v := range baggage {
		result = append(result, k, v)
	}

	return result
}
