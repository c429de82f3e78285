package kafka

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// FXModule defines the Fx module for the Kafka writer.
//
// The module:
//  1. Provides NewWriterWithDI, which validates the Config and builds a
//     synchronous producer; brokers are contacted on the first Write
//  2. Exposes the writer as writer.Writer
//  3. Invokes RegisterWriterLifecycle to flush and close the producer on
//     shutdown
//
// Usage:
//
//	app := fx.New(
//		kafka.FXModule,
//		logger.FXModule,
//		fx.Provide(func() kafka.Config {
//			return kafka.Config{Brokers: []string{"kafka:9092"}, Topic: "logs", RequiredAcks: kafka.AcksAll}
//		}),
//		fx.Provide(func() logger.Config { return logger.Config{Component: "api"} }),
//	)
//
// Dependencies required by this module:
//   - a kafka.Config
//   - optionally a *zap.Logger for diagnostics
var FXModule = fx.Module("kafka_writer",
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

// RegisterWriterLifecycle closes the producer on shutdown so buffered
// messages are flushed.
func RegisterWriterLifecycle(lc fx.Lifecycle, w *Writer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return w.Close()
		},
	})
}
