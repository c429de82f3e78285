package zapwriter

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// Writer forwards records to a *zap.Logger. It implements writer.Writer.
type Writer struct {
	*writer.Base

	zap *zap.Logger
}

// NewWriter wraps zl. A nil zl yields a writer that discards everything.
func NewWriter(zl *zap.Logger) *Writer {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &Writer{
		Base: writer.NewBase(writer.Config{}),
		zap:  zl,
	}
}

// Zap returns the underlying logger.
func (w *Writer) Zap() *zap.Logger {
	return w.zap
}

// Write emits one entry. Entries below the zap logger's own level are
// skipped and still count as written.
func (w *Writer) Write(component, message string, l level.Level, fields writer.Context) bool {
	if !l.Valid() {
		return false
	}

	ce := w.zap.Check(ZapLevel(l), writer.Interpolate(message, fields))
	if ce == nil {
		return true
	}
	ce.Write(Fields(component, l, fields)...)
	return true
}

// Sync flushes buffered entries.
func (w *Writer) Sync() error {
	return w.zap.Sync()
}

// ZapLevel maps a severity onto a zap level.
func ZapLevel(l level.Level) zapcore.Level {
	switch l {
	case level.Emergency, level.Alert, level.Critical, level.Error:
		return zapcore.ErrorLevel
	case level.Warning:
		return zapcore.WarnLevel
	case level.Debug:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// Fields converts a record's context into zap fields. Keys are emitted in
// sorted order after component and severity.
func Fields(component string, l level.Level, fields writer.Context) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+2)
	out = append(out,
		zap.String("component", component),
		zap.String("severity", l.String()),
	)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := fields[k].(type) {
		case string:
			out = append(out, zap.String(k, v))
		case error:
			out = append(out, zap.NamedError(k, v))
		default:
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}

// NewZap builds a JSON *zap.Logger with ISO8601 timestamps.
func NewZap(cfg Config) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	lvl := zap.DebugLevel
	if cfg.Level != "" {
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid zap level %q: %w", cfg.Level, err)
		}
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{DefaultOutput}
	}

	initial := map[string]interface{}{"pid": os.Getpid()}
	if cfg.ServiceName != "" {
		initial["service"] = cfg.ServiceName
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{DefaultOutput},
		InitialFields:     initial,
	}

	zl, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return zl, nil
}
