package zapwriter

import (
	"context"
	"errors"
	"syscall"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// FXModule defines the Fx module for the zap writer.
//
// The module:
//  1. Provides NewWriterWithDI, which builds a JSON *zap.Logger from a
//     zapwriter.Config and wraps it
//  2. Exposes the writer as writer.Writer
//  3. Invokes RegisterWriterLifecycle to flush buffered entries on shutdown
//
// Usage:
//
//	app := fx.New(
//		zapwriter.FXModule,
//		logger.FXModule,
//		fx.Provide(func() zapwriter.Config { return zapwriter.Config{ServiceName: "api"} }),
//		fx.Provide(func() logger.Config { return logger.Config{Component: "api"} }),
//	)
var FXModule = fx.Module("zap_writer",
	fx.Provide(
		NewWriterWithDI,
		func(w *Writer) writer.Writer { return w },
	),
	fx.Invoke(RegisterWriterLifecycle),
)

// NewWriterWithDI builds the zap logger and wraps it.
func NewWriterWithDI(cfg Config) (*Writer, error) {
	zl, err := NewZap(cfg)
	if err != nil {
		return nil, err
	}
	return NewWriter(zl), nil
}

// RegisterWriterLifecycle syncs the logger on shutdown.
func RegisterWriterLifecycle(lc fx.Lifecycle, w *Writer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			err := w.Sync()
			// stderr cannot be synced on most terminals
			if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
				return nil
			}
			return err
		},
	})
}
