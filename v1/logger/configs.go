package logger

import (
	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// IDLength is the length of generated request ids.
const IDLength = 32

// idAlphabet is the character set of generated request ids.
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Config configures a Logger.
type Config struct {
	// Component names the emitting part of the application. New takes the
	// component explicitly; Factory uses this field.
	Component string `yaml:"component" envconfig:"LOG_COMPONENT"`

	// LogLevels selects the severities that are written. Nil keeps the
	// default, which is "off".
	LogLevels *level.Set `yaml:"log_levels" envconfig:"LOG_LEVELS"`

	// Options are pushed into the writer before every write, e.g. "path"
	// for the file writer.
	Options writer.Options `yaml:"options"`

	// EnableTracing adds trace_id and span_id from the OpenTelemetry span
	// passed to LogContext.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOG_ENABLE_TRACING"`
}

// DefaultConfig returns the configuration every Logger starts from.
func DefaultConfig() Config {
	return Config{LogLevels: level.OffLevels()}
}

// merge applies o over c. LogLevels and Component are replaced when set in
// o; options are overwritten key by key. EnableTracing is always taken
// from o.
func (c Config) merge(o Config) Config {
	wc := c.writerConfig().Merge(o.writerConfig())
	out := Config{
		Component:     c.Component,
		LogLevels:     wc.LogLevels,
		Options:       wc.Options,
		EnableTracing: o.EnableTracing,
	}
	if o.Component != "" {
		out.Component = o.Component
	}
	return out
}

func (c Config) writerConfig() writer.Config {
	return writer.Config{LogLevels: c.LogLevels, Options: c.Options}
}
