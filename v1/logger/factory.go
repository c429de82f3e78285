package logger

import "github.com/Aleph-Alpha/reqlog/v1/writer"

// Factory creates request-scoped Loggers that share a component, a
// configuration, a writer and an optional observer.
type Factory struct {
	cfg      Config
	writer   writer.Writer
	observer Observer
}

// NewFactory returns a Factory for cfg.Component writing to w.
func NewFactory(cfg Config, w writer.Writer) *Factory {
	return &Factory{
		cfg:    DefaultConfig().merge(cfg),
		writer: w,
	}
}

// WithObserver sets the observer attached to every Logger the factory
// creates.
func (f *Factory) WithObserver(o Observer) *Factory {
	f.observer = o
	return f
}

// New returns a Logger for one unit of work. An empty requestID generates
// one.
func (f *Factory) New(requestID string) *Logger {
	l := New(f.cfg.Component, requestID, f.cfg, f.writer)
	l.observer = f.observer
	return l
}
