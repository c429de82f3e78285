package writer

import "github.com/Aleph-Alpha/reqlog/v1/level"

// Reserved Context keys.
const (
	KeyRequestID  = "reqid"
	KeyStackTrace = "stack_trace"
	KeyException  = "exception"
	KeyTraceID    = "trace_id"
	KeySpanID     = "span_id"
)

// Context carries the per-call fields of a single record.
type Context map[string]interface{}

// Clone returns a shallow copy of c. A nil Context clones to an empty one.
func (c Context) Clone() Context {
	out := make(Context, len(c)+2)
	for k, v := range c {
		out[k] = v
	}
	return out
}

// String returns the value stored under key if it is a non-empty string.
func (c Context) String(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok && s != ""
}

//go:generate mockgen -source=interface.go -destination=mock_writer.go -package=writer

// Writer is implemented by every backend.
type Writer interface {
	// Config merges the overrides into the writer's configuration and
	// returns the result. Without overrides it only returns the current
	// configuration.
	Config(overrides ...Config) Config

	// Write formats and emits one record and reports whether it succeeded.
	// It must not panic on expected failures.
	Write(component, message string, l level.Level, fields Context) bool
}
