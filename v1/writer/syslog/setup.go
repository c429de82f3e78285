//go:build !windows && !plan9

package syslog

import (
	"fmt"
	stdsyslog "log/syslog"

	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// conn is the part of *log/syslog.Writer used by the writer.
type conn interface {
	Emerg(m string) error
	Alert(m string) error
	Crit(m string) error
	Err(m string) error
	Warning(m string) error
	Notice(m string) error
	Info(m string) error
	Debug(m string) error
	Close() error
}

type dialFunc func(network, raddr string, priority stdsyslog.Priority, tag string) (conn, error)

func dialSyslog(network, raddr string, priority stdsyslog.Priority, tag string) (conn, error) {
	w, err := stdsyslog.Dial(network, raddr, priority, tag)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Writer sends records to syslog. It implements writer.Writer.
type Writer struct {
	*writer.Base

	cfg  Config
	dial dialFunc
	log  *zap.Logger
}

// NewWriter creates a syslog writer. No connection is opened until the
// first Write.
func NewWriter(cfg Config) *Writer {
	return &Writer{
		Base: writer.NewBase(writer.Config{}),
		cfg:  cfg,
		dial: dialSyslog,
		log:  zap.NewNop(),
	}
}

// WithDiagnostics sets the logger that receives write failures.
func (w *Writer) WithDiagnostics(log *zap.Logger) *Writer {
	if log != nil {
		w.log = log
	}
	return w
}

// Write sends one record. It returns false if the connection could not be
// opened or the daemon rejected the record.
func (w *Writer) Write(component, message string, l level.Level, fields writer.Context) bool {
	if err := w.write(component, message, l, fields); err != nil {
		w.log.Debug("syslog writer: record dropped",
			zap.String("component", component),
			zap.String("level", l.String()),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (w *Writer) write(component, message string, l level.Level, fields writer.Context) error {
	emit, ok := priorities[l]
	if !ok {
		return fmt.Errorf("%w: unsupported level %d", writer.ErrWriteFailed, l)
	}

	body, err := FormatMessage(message, fields)
	if err != nil {
		return fmt.Errorf("failed to encode syslog message: %w", err)
	}

	c, err := w.dial(w.cfg.Network, w.cfg.Address, Facility|Priority(l), component)
	if err != nil {
		return fmt.Errorf("%w: %v", writer.ErrConnectionFailed, err)
	}
	defer c.Close()

	if err := emit(c, string(body)); err != nil {
		return fmt.Errorf("%w: %v", writer.ErrWriteFailed, err)
	}
	return nil
}
