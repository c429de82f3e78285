//go:build !windows && !plan9

package syslog

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// FXModule defines the Fx module for the syslog writer.
// It provides the writer both as *Writer and as writer.Writer. Connections
// are opened per write, so no lifecycle hook is registered.
//
// Usage:
//
//	app := fx.New(
//		syslog.FXModule,
//		logger.FXModule,
//		fx.Provide(func() syslog.Config { return syslog.Config{} }), // local daemon
//		fx.Provide(func() logger.Config { return logger.Config{Component: "api"} }),
//	)
//
// Dependencies required by this module:
//   - a syslog.Config
//   - optionally a *zap.Logger for write diagnostics
var FXModule = fx.Module("syslog_writer",
	fx.Provide(
		NewWriterWithDI,
		func(w *Writer) writer.Writer { return w },
	),
)

// WriterParams groups the dependencies of NewWriterWithDI.
type WriterParams struct {
	fx.In

	Config Config
	Log    *zap.Logger `optional:"true"`
}

// NewWriterWithDI builds a Writer from fx-injected dependencies.
func NewWriterWithDI(p WriterParams) *Writer {
	return NewWriter(p.Config).WithDiagnostics(p.Log)
}
