package logger

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// Log writes a record at lvl. Unrecognized or disabled severities are
// dropped silently.
func (l *Logger) Log(lvl level.Level, message string, fields writer.Context) {
	l.log(context.Background(), lvl, message, fields)
}

// LogContext is Log with a context from which trace and span ids are taken
// when tracing is enabled.
func (l *Logger) LogContext(ctx context.Context, lvl level.Level, message string, fields writer.Context) {
	l.log(ctx, lvl, message, fields)
}

// LogNamed is Log with the severity given by name, case-insensitively.
func (l *Logger) LogNamed(name, message string, fields writer.Context) {
	lvl, _ := level.Parse(name)
	l.log(context.Background(), lvl, message, fields)
}

// Emergency logs at level.Emergency.
func (l *Logger) Emergency(message string, fields writer.Context) {
	l.log(context.Background(), level.Emergency, message, fields)
}

// Alert logs at level.Alert.
func (l *Logger) Alert(message string, fields writer.Context) {
	l.log(context.Background(), level.Alert, message, fields)
}

// Critical logs at level.Critical.
func (l *Logger) Critical(message string, fields writer.Context) {
	l.log(context.Background(), level.Critical, message, fields)
}

// Error logs at level.Error.
func (l *Logger) Error(message string, fields writer.Context) {
	l.log(context.Background(), level.Error, message, fields)
}

// Warning logs at level.Warning.
func (l *Logger) Warning(message string, fields writer.Context) {
	l.log(context.Background(), level.Warning, message, fields)
}

// Notice logs at level.Notice.
func (l *Logger) Notice(message string, fields writer.Context) {
	l.log(context.Background(), level.Notice, message, fields)
}

// Info logs at level.Info.
func (l *Logger) Info(message string, fields writer.Context) {
	l.log(context.Background(), level.Info, message, fields)
}

// Debug logs at level.Debug.
func (l *Logger) Debug(message string, fields writer.Context) {
	l.log(context.Background(), level.Debug, message, fields)
}

// Enabled reports whether records at lvl would be handed to the writer.
func (l *Logger) Enabled(lvl level.Level) bool {
	return lvl.Valid() && l.cfg.LogLevels.Enabled(lvl)
}

func (l *Logger) log(ctx context.Context, lvl level.Level, message string, fields writer.Context) {
	if !lvl.Valid() {
		l.observe(lvl, OutcomeInvalid, 0)
		return
	}
	if !l.cfg.LogLevels.Enabled(lvl) {
		l.observe(lvl, OutcomeDisabled, 0)
		return
	}

	if l.writer == nil {
		l.observe(lvl, OutcomeFailed, 0)
		return
	}

	fields = fields.Clone()

	if exc, ok := fields[writer.KeyException]; ok && exc != nil {
		if err, isErr := exc.(error); isErr {
			fields[writer.KeyStackTrace] = errorTrace(err)
		}
	} else if lvl == level.Debug {
		fields[writer.KeyStackTrace] = callerTrace()
	}

	fields[writer.KeyRequestID] = l.id

	if l.cfg.EnableTracing {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields[writer.KeyTraceID] = sc.TraceID().String()
			fields[writer.KeySpanID] = sc.SpanID().String()
		}
	}

	start := time.Now()
	l.writer.Config(l.cfg.writerConfig())
	ok := l.writer.Write(l.component, message, lvl, fields)

	outcome := OutcomeWritten
	if !ok {
		outcome = OutcomeFailed
	}
	l.observe(lvl, outcome, time.Since(start))
}

func (l *Logger) observe(lvl level.Level, outcome Outcome, d time.Duration) {
	if l.observer == nil {
		return
	}
	l.observer.ObserveRecord(RecordEvent{
		Component: l.component,
		Level:     lvl,
		Outcome:   outcome,
		Duration:  d,
	})
}
