package writer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Aleph-Alpha/reqlog/v1/level"
)

// Interpolate replaces every {key} in message whose key exists in fields
// with the string form of the value. The message is scanned once; when two
// placeholders start at the same position the longer one wins.
func Interpolate(message string, fields Context) string {
	if len(fields) == 0 || !strings.Contains(message, "{") {
		return message
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", ValueString(fields[k]))
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

// ValueString renders a context value for interpolation. nil renders empty.
func ValueString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

// Envelope is the JSON document published by the broker and database
// writers.
type Envelope struct {
	Component  string                 `json:"component"`
	Level      string                 `json:"level"`
	Timestamp  time.Time              `json:"timestamp"`
	RequestID  interface{}            `json:"reqid"`
	TraceID    string                 `json:"trace_id,omitempty"`
	SpanID     string                 `json:"span_id,omitempty"`
	StackTrace interface{}            `json:"stack_trace"`
	Message    string                 `json:"message"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

var reserved = map[string]struct{}{
	KeyRequestID:  {},
	KeyStackTrace: {},
	KeyTraceID:    {},
	KeySpanID:     {},
}

// NewEnvelope builds the envelope for one record. The message is
// interpolated; reserved keys are lifted to top-level fields and all other
// keys are kept under Fields. Values that cannot be encoded as JSON are
// replaced by their string form.
func NewEnvelope(component, message string, l level.Level, fields Context, now time.Time) Envelope {
	e := Envelope{
		Component:  component,
		Level:      l.String(),
		Timestamp:  now.UTC(),
		RequestID:  fields[KeyRequestID],
		StackTrace: fields[KeyStackTrace],
		Message:    Interpolate(message, fields),
	}
	e.TraceID, _ = fields.String(KeyTraceID)
	e.SpanID, _ = fields.String(KeySpanID)

	for k, v := range fields {
		if _, skip := reserved[k]; skip {
			continue
		}
		if e.Fields == nil {
			e.Fields = make(map[string]interface{}, len(fields))
		}
		e.Fields[k] = jsonSafe(v)
	}
	return e
}

// Marshal encodes the envelope without HTML escaping.
func (e Envelope) Marshal() ([]byte, error) {
	return MarshalJSON(e)
}

// MarshalJSON encodes v without HTML escaping and without the trailing
// newline json.Encoder adds.
func MarshalJSON(v interface{}) ([]byte, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(b.String(), "\n")), nil
}

func jsonSafe(v interface{}) interface{} {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if _, err := json.Marshal(v); err != nil {
		return fmt.Sprint(v)
	}
	return v
}
