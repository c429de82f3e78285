package postgres

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// FXModule defines the Fx module for the PostgreSQL writer.
//
// The module:
//  1. Provides NewWriterWithDI, which opens the pool, pings the server and
//     creates the table when Config.CreateTable is set
//  2. Exposes the writer as writer.Writer
//  3. Invokes RegisterWriterLifecycle to close the pool on shutdown
//
// Usage:
//
//	app := fx.New(
//		postgres.FXModule,
//		logger.FXModule,
//		fx.Provide(func() postgres.Config {
//			return postgres.Config{DSN: os.Getenv("LOG_DSN"), CreateTable: true}
//		}),
//		fx.Provide(func() logger.Config { return logger.Config{Component: "api"} }),
//	)
//
// Dependencies required by this module:
//   - a postgres.Config
//   - optionally a *zap.Logger for write diagnostics
var FXModule = fx.Module("postgres_writer",
	fx.Provide(
		NewWriterWithDI,
		func(w *Writer) writer.Writer { return w },
	),
	fx.Invoke(RegisterWriterLifecycle),
)

// WriterParams groups the dependencies of NewWriterWithDI.
type WriterParams struct {
	fx.In

	Config    Config
	Log       *zap.Logger `optional:"true"`
}

// NewWriterWithDI builds a Writer from fx-injected dependencies.
func NewWriterWithDI(p WriterParams) (*Writer, error) {
	w, err := NewWriter(context.Background(), p.Config)
	if err != nil {
		return nil, err
	}
	return w.WithDiagnostics(p.Log), nil
}

// RegisterWriterLifecycle closes the pool on shutdown.
func RegisterWriterLifecycle(lc fx.Lifecycle, w *Writer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return w.Close()
		},
	})
}
