package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/logger"
)

// FXModule defines the Fx module for the metrics package.
// This module integrates the Prometheus metrics server into an Fx-based
// application.
//
// The module:
//  1. Provides NewMetrics, and exposes the result as Collector and as
//     logger.Observer, so logger.FXModule attaches it to every Logger
//  2. Invokes RegisterMetricsLifecycle to start the /metrics server with
//     the application and shut it down gracefully on stop
//
// Usage:
//
//	app := fx.New(
//		metrics.FXModule,
//		logger.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{Address: ":9090", EnableDefaultCollectors: true}
//		}),
//		// writer module and logger.Config...
//	)
//
// Dependencies required by this module:
//   - a metrics.Config
//   - optionally a *zap.Logger for server start and stop messages
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) Collector { return m },
		func(m *Metrics) logger.Observer { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// LifecycleParams groups the dependencies of RegisterMetricsLifecycle.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Log       *zap.Logger `optional:"true"`
}

// RegisterMetricsLifecycle starts the server on application start and shuts
// it down gracefully on stop.
func RegisterMetricsLifecycle(p LifecycleParams) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	m := p.Metrics

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting Prometheus metrics server", zap.String("address", m.Server.Addr))

				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Error starting Prometheus metrics server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Prometheus metrics server")
			return m.Server.Shutdown(ctx)
		},
	})
}
