package logger

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// FXModule defines the Fx module for the logger package.
// This module integrates request-scoped logging into an Fx-based application
// by providing a *Factory that components use to create one Logger per
// request.
//
// The module:
//  1. Provides NewFactoryWithDI, which builds the Factory from the
//     logger.Config and the writer.Writer found in the container
//  2. Attaches a logger.Observer to the Factory when one is provided
//
// The module registers no lifecycle hooks of its own; closing the writer is
// the job of the writer's module.
//
// Dependencies required by this module:
//   - a logger.Config
//   - a writer.Writer, e.g. from file.FXModule or syslog.FXModule
//   - optionally a logger.Observer, e.g. from metrics.FXModule
//
// Usage:
//
//	app := fx.New(
//		syslog.FXModule,
//		logger.FXModule,
//		fx.Provide(func() syslog.Config { return syslog.Config{} }),
//		fx.Provide(func() logger.Config { return logger.Config{Component: "api"} }),
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewFactoryWithDI,
	),
)

// FactoryParams groups the dependencies of NewFactoryWithDI.
type FactoryParams struct {
	fx.In

	Config   Config
	Writer   writer.Writer
	Observer Observer `optional:"true"`
}

// NewFactoryWithDI builds a Factory from fx-injected dependencies.
func NewFactoryWithDI(p FactoryParams) *Factory {
	return NewFactory(p.Config, p.Writer).WithObserver(p.Observer)
}
