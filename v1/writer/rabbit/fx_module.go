package rabbit

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// FXModule defines the Fx module for the RabbitMQ writer.
//
// The module:
//  1. Provides NewWriterWithDI, which connects, opens a channel and
//     declares the exchange when Config.Exchange.Declare is set
//  2. Exposes the writer as writer.Writer
//  3. Invokes RegisterWriterLifecycle to close channel and connection on
//     shutdown
//
// Dependencies required by this module:
//   - a rabbit.Config
//   - optionally a *zap.Logger for write diagnostics
var FXModule = fx.Module("rabbit_writer",
	fx.Provide(
		NewWriterWithDI,
		func(w *Writer) writer.Writer { return w },
	),
	fx.Invoke(RegisterWriterLifecycle),
)

// WriterParams groups the dependencies of NewWriterWithDI.
type WriterParams struct {
	fx.In

	Config Config
	Log    *zap.Logger `optional:"true"`
}

// NewWriterWithDI builds a Writer from fx-injected dependencies.
func NewWriterWithDI(p WriterParams) (*Writer, error) {
	w, err := NewWriter(p.Config)
	if err != nil {
		return nil, err
	}
	return w.WithDiagnostics(p.Log), nil
}

// RegisterWriterLifecycle closes the writer on shutdown.
func RegisterWriterLifecycle(lc fx.Lifecycle, w *Writer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return w.Close()
		},
	})
}
