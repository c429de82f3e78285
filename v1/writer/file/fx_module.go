package file

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// FXModule defines the Fx module for the file writer.
// It provides the writer both as *Writer and as writer.Writer so that
// logger.FXModule picks it up without further wiring. Files are opened per
// write, so there is nothing to close on shutdown.
//
// Usage:
//
//	app := fx.New(
//		file.FXModule,
//		logger.FXModule,
//		fx.Provide(func() file.Config { return file.Config{Path: "/var/log/app"} }),
//		fx.Provide(func() logger.Config { return logger.Config{Component: "api"} }),
//	)
//
// Dependencies required by this module:
//   - a file.Config
//   - optionally a *zap.Logger for write diagnostics
var FXModule = fx.Module("file_writer",
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
