//go:build !windows && !plan9

package syslog

import (
	stdsyslog "log/syslog"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

var severities = map[level.Level]stdsyslog.Priority{
	level.Emergency: stdsyslog.LOG_EMERG,
	level.Alert:     stdsyslog.LOG_ALERT,
	level.Critical:  stdsyslog.LOG_CRIT,
	level.Error:     stdsyslog.LOG_ERR,
	level.Warning:   stdsyslog.LOG_WARNING,
	level.Notice:    stdsyslog.LOG_NOTICE,
	level.Info:      stdsyslog.LOG_INFO,
	level.Debug:     stdsyslog.LOG_DEBUG,
}

var priorities = map[level.Level]func(conn, string) error{
	level.Emergency: conn.Emerg,
	level.Alert:     conn.Alert,
	level.Critical:  conn.Crit,
	level.Error:     conn.Err,
	level.Warning:   conn.Warning,
	level.Notice:    conn.Notice,
	level.Info:      conn.Info,
	level.Debug:     conn.Debug,
}

// Priority returns the syslog severity for l, LOG_DEBUG for unknown levels.
func Priority(l level.Level) stdsyslog.Priority {
	if p, ok := severities[l]; ok {
		return p
	}
	return stdsyslog.LOG_DEBUG
}

// message is the syslog payload; field order is part of the format.
type message struct {
	RequestID  interface{} `json:"reqid"`
	StackTrace interface{} `json:"stack_trace"`
	Message    string      `json:"message"`
}

// FormatMessage builds the JSON payload for one record.
func FormatMessage(msg string, fields writer.Context) ([]byte, error) {
	return writer.MarshalJSON(message{
		RequestID:  fields[writer.KeyRequestID],
		StackTrace: fields[writer.KeyStackTrace],
		Message:    writer.Interpolate(msg, fields),
	})
}
