// Package tracing provides a minimal span abstraction for timing engine
// stages. The only implementation emits spans as structured log records, so
// stage durations land in the same stream as everything else.
package tracing

// Tracer creates spans.
type Tracer interface {
	StartSpan(operationName string) Span
}

// Span is one timed operation. Spans are not safe for concurrent use.
type Span interface {
	// Finish emits the span with its duration.
	Finish()
	// SetBaggageItem attaches a key/value pair reported when the span
	// finishes.
	SetBaggageItem(key string, value any)
}
