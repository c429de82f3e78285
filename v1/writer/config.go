package writer

import (
	"fmt"
	"sync"
	"time"

	"github.com/Aleph-Alpha/reqlog/v1/level"
)

// Options holds writer specific settings such as the file writer's path.
type Options map[string]interface{}

// String returns the option as a string. Non-string values are formatted
// with fmt.Sprint; a missing or empty value reports false.
func (o Options) String(key string) (string, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", false
	}
	s, isString := v.(string)
	if !isString {
		s = fmt.Sprint(v)
	}
	return s, s != ""
}

// Duration returns the option as a time.Duration. Strings are parsed with
// time.ParseDuration and integers are taken as milliseconds.
func (o Options) Duration(key string) (time.Duration, bool) {
	switch v := o[key].(type) {
	case time.Duration:
		return v, true
	case string:
		d, err := time.ParseDuration(v)
		return d, err == nil
	case int:
		return time.Duration(v) * time.Millisecond, true
	case int64:
		return time.Duration(v) * time.Millisecond, true
	default:
		return 0, false
	}
}

// Config is the configuration shared between a logger and its writer.
type Config struct {
	// LogLevels selects the severities that are written. Nil means unset,
	// which enables nothing.
	LogLevels *level.Set `yaml:"log_levels" envconfig:"LOG_LEVELS"`

	// Options carries writer specific keys, e.g. "path" for the file writer.
	Options Options `yaml:",inline"`
}

// Merge returns c with the overrides applied in order. LogLevels is
// replaced when an override sets it; Options are overwritten key by key.
// Neither c nor the overrides are modified.
func (c Config) Merge(overrides ...Config) Config {
	out := Config{
		LogLevels: c.LogLevels.Clone(),
		Options:   make(Options, len(c.Options)),
	}
	for k, v := range c.Options {
		out.Options[k] = v
	}
	for _, o := range overrides {
		if o.LogLevels != nil {
			out.LogLevels = o.LogLevels.Clone()
		}
		for k, v := range o.Options {
			out.Options[k] = v
		}
	}
	return out
}

// Base implements the Config half of Writer and is embedded by backends.
type Base struct {
	mu  sync.RWMutex
	cfg Config
}

// NewBase returns a Base seeded with cfg.
func NewBase(cfg Config) *Base {
	return &Base{cfg: Config{}.Merge(cfg)}
}

// Config merges overrides into the stored configuration and returns a copy
// of the result.
func (b *Base) Config(overrides ...Config) Config {
	if len(overrides) == 0 {
		b.mu.RLock()
		defer b.mu.RUnlock()
		return b.cfg.Merge()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg = b.cfg.Merge(overrides...)
	return b.cfg.Merge()
}

// Option returns a single option from the stored configuration.
func (b *Base) Option(key string) (interface{}, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.cfg.Options[key]
	return v, ok
}

// StringOption is Option for string values, see Options.String.
func (b *Base) StringOption(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cfg.Options.String(key)
}
