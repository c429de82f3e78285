package logger

import (
	"time"

	"github.com/Aleph-Alpha/reqlog/v1/level"
)

// Outcome classifies what happened to one logging call.
type Outcome string

const (
	// OutcomeWritten means the writer reported success.
	OutcomeWritten Outcome = "written"
	// OutcomeFailed means the writer reported failure.
	OutcomeFailed Outcome = "failed"
	// OutcomeDisabled means the severity was filtered out.
	OutcomeDisabled Outcome = "disabled"
	// OutcomeInvalid means the severity was not recognized.
	OutcomeInvalid Outcome = "invalid"
)

// RecordEvent describes one logging call.
type RecordEvent struct {
	Component string
	Level     level.Level
	Outcome   Outcome
	// Duration is the time spent in the writer; zero when it was not called.
	Duration time.Duration
}

// Observer receives a RecordEvent for every logging call. Implementations
// must be safe for concurrent use and must not call back into the Logger.
type Observer interface {
	ObserveRecord(event RecordEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(RecordEvent)

// ObserveRecord calls f(event).
func (f ObserverFunc) ObserveRecord(event RecordEvent) {
	f(event)
}
