package logger_test

import (
	"context"
	stderrors "errors"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/logger"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// recorder is a writer.Writer that keeps every record it receives.
type recorder struct {
	*writer.Base

	mu      sync.Mutex
	records []record
	fail    bool
}

type record struct {
	component string
	message   string
	level     level.Level
	fields    writer.Context
}

func newRecorder() *recorder {
	return &recorder{Base: writer.NewBase(writer.Config{})}
}

func (r *recorder) Write(component, message string, l level.Level, fields writer.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record{component, message, l, fields})
	return !r.fail
}

func (r *recorder) last(t *testing.T) record {
	t.Helper()
	require.NotEmpty(t, r.records)
	return r.records[len(r.records)-1]
}

func newLogger(w writer.Writer, levels ...level.Level) *logger.Logger {
	return logger.New("billing", "req-1", logger.Config{LogLevels: level.NewSet(levels...)}, w)
}

var framePattern = regexp.MustCompile(`^#\d+ .*\(\d*\): .+\(.*\)$`)

func TestInvalidLevelIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mw := writer.NewMockWriter(ctrl)

	l := logger.New("billing", "", logger.Config{LogLevels: level.AllLevels()}, mw)
	l.Log(level.Level(0), "m", nil)
	l.Log(level.Level(99), "m", nil)
	l.LogNamed("verbose", "m", nil)
	l.LogNamed("all", "m", nil)
	l.LogNamed("off", "m", nil)
}

func TestDefaultIsOff(t *testing.T) {
	ctrl := gomock.NewController(t)
	mw := writer.NewMockWriter(ctrl)

	l := logger.New("billing", "", logger.Config{}, mw)
	for _, lvl := range level.All() {
		l.Log(lvl, "m", nil)
	}
	assert.True(t, l.Config().LogLevels.Off)
}

func TestAllWritesEverySeverity(t *testing.T) {
	ctrl := gomock.NewController(t)
	mw := writer.NewMockWriter(ctrl)

	l := logger.New("billing", "", logger.Config{LogLevels: level.AllLevels()}, mw)

	for _, lvl := range level.All() {
		lvl := lvl
		mw.EXPECT().Config(gomock.Any()).Return(writer.Config{})
		mw.EXPECT().Write("billing", "msg", lvl, gomock.Any()).
			DoAndReturn(func(_, _ string, _ level.Level, fields writer.Context) bool {
				assert.Equal(t, l.RequestID(), fields[writer.KeyRequestID])
				return true
			})
		l.Log(lvl, "msg", nil)
	}
}

func TestSpecificLevelOnly(t *testing.T) {
	w := newRecorder()
	l := newLogger(w, level.Warning)

	for _, lvl := range level.All() {
		l.Log(lvl, "m", nil)
	}
	require.Len(t, w.records, 1)
	assert.Equal(t, level.Warning, w.records[0].level)
}

func TestOffDominates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mw := writer.NewMockWriter(ctrl)

	levels, err := level.ParseSet("off", "debug", "all")
	require.NoError(t, err)

	l := logger.New("billing", "", logger.Config{LogLevels: levels}, mw)
	for _, lvl := range level.All() {
		l.Log(lvl, "m", nil)
	}
}

func TestWrappersDelegate(t *testing.T) {
	w := newRecorder()
	l := logger.New("billing", "", logger.Config{LogLevels: level.AllLevels()}, w)

	l.Emergency("m", nil)
	l.Alert("m", nil)
	l.Critical("m", nil)
	l.Error("m", nil)
	l.Warning("m", nil)
	l.Notice("m", nil)
	l.Info("m", nil)
	l.Debug("m", nil)
	l.LogNamed("WARNING", "m", nil)

	got := make([]level.Level, 0, len(w.records))
	for _, r := range w.records {
		assert.Equal(t, "billing", r.component)
		got = append(got, r.level)
	}
	assert.Equal(t, append(level.All(), level.Warning), got)
}

func TestDebugSynthesizesTrace(t *testing.T) {
	w := newRecorder()
	l := newLogger(w, level.Debug)

	l.Debug("m", nil)

	trace, ok := w.last(t).fields[writer.KeyStackTrace].(string)
	require.True(t, ok)
	require.NotEmpty(t, trace)
	require.True(t, strings.HasSuffix(trace, "\n"))

	lines := strings.Split(strings.TrimSuffix(trace, "\n"), "\n")
	for _, line := range lines {
		assert.Regexp(t, framePattern, line)
		assert.NotContains(t, line, "reqlog/v1/logger.")
	}
	assert.True(t, strings.HasPrefix(lines[0], "#0 "))
	assert.Contains(t, lines[0], "logger_test.TestDebugSynthesizesTrace")
}

func TestNoTraceBelowDebug(t *testing.T) {
	w := newRecorder()
	l := newLogger(w, level.Info)

	l.Info("m", nil)
	_, ok := w.last(t).fields[writer.KeyStackTrace]
	assert.False(t, ok)
}

func newFailure() error {
	return errors.New("card declined")
}

func TestExceptionTrace(t *testing.T) {
	w := newRecorder()
	l := newLogger(w, level.Error, level.Debug)

	err := errors.Wrap(newFailure(), "charge")
	l.Error("failed", writer.Context{writer.KeyException: err})

	trace := w.last(t).fields[writer.KeyStackTrace].(string)
	lines := strings.Split(strings.TrimSuffix(trace, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "logger_test.newFailure")
	for _, line := range lines {
		assert.Regexp(t, framePattern, line)
	}

	// the exception wins over the synthesized debug trace
	l.Debug("failed", writer.Context{writer.KeyException: err})
	assert.Equal(t, trace, w.last(t).fields[writer.KeyStackTrace])
}

func TestExceptionWithoutRecordedStack(t *testing.T) {
	w := newRecorder()
	l := newLogger(w, level.Error, level.Debug)

	l.Error("failed", writer.Context{writer.KeyException: stderrors.New("boom")})
	assert.Equal(t, "boom\n", w.last(t).fields[writer.KeyStackTrace])

	// a non-error exception suppresses the debug trace
	l.Debug("m", writer.Context{writer.KeyException: "not an error"})
	_, ok := w.last(t).fields[writer.KeyStackTrace]
	assert.False(t, ok)

	// a nil exception does not
	l.Debug("m", writer.Context{writer.KeyException: nil})
	assert.NotEmpty(t, w.last(t).fields[writer.KeyStackTrace])
}

func TestCallerFieldsAreNotModified(t *testing.T) {
	w := newRecorder()
	l := newLogger(w, level.Debug)

	fields := writer.Context{"user": "u-1", writer.KeyRequestID: "caller-id"}
	l.Debug("m", fields)

	assert.Equal(t, writer.Context{"user": "u-1", writer.KeyRequestID: "caller-id"}, fields)

	got := w.last(t).fields
	assert.Equal(t, "req-1", got[writer.KeyRequestID])
	assert.Equal(t, "u-1", got["user"])
}

func TestConfigIsPushedIntoWriter(t *testing.T) {
	w := newRecorder()
	w.Config(writer.Config{Options: writer.Options{"own": "kept"}})

	l := logger.New("billing", "", logger.Config{
		LogLevels: level.NewSet(level.Info),
		Options:   writer.Options{"path": "/var/log/app"},
	}, w)
	l.Info("m", nil)

	cfg := w.Config()
	assert.Equal(t, "kept", cfg.Options["own"])
	assert.Equal(t, "/var/log/app", cfg.Options["path"])
	assert.True(t, cfg.LogLevels.Has(level.Info))
}

func TestLogLevelsReplaceDefault(t *testing.T) {
	l := logger.New("billing", "", logger.Config{LogLevels: level.NewSet(level.Error)}, newRecorder())

	levels := l.Config().LogLevels
	assert.False(t, levels.Off)
	assert.True(t, levels.Enabled(level.Error))
	assert.False(t, levels.Enabled(level.Info))
}

func TestRequestID(t *testing.T) {
	l := logger.New("billing", "abc-123", logger.Config{}, newRecorder())
	assert.Equal(t, "abc-123", l.RequestID())
	assert.Equal(t, "billing", l.Component())

	idPattern := regexp.MustCompile(`^[a-z0-9]{32}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := logger.New("billing", "", logger.Config{}, newRecorder()).RequestID()
		assert.Regexp(t, idPattern, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestTraceCorrelation(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "charge")
	defer span.End()
	sc := span.SpanContext()

	w := newRecorder()
	l := logger.New("billing", "", logger.Config{
		LogLevels:     level.AllLevels(),
		EnableTracing: true,
	}, w)

	l.LogContext(ctx, level.Info, "m", nil)
	fields := w.last(t).fields
	assert.Equal(t, sc.TraceID().String(), fields[writer.KeyTraceID])
	assert.Equal(t, sc.SpanID().String(), fields[writer.KeySpanID])

	l.LogContext(context.Background(), level.Info, "m", nil)
	_, ok := w.last(t).fields[writer.KeyTraceID]
	assert.False(t, ok)

	untraced := logger.New("billing", "", logger.Config{LogLevels: level.AllLevels()}, w)
	untraced.LogContext(ctx, level.Info, "m", nil)
	_, ok = w.last(t).fields[writer.KeyTraceID]
	assert.False(t, ok)
}

func TestObserver(t *testing.T) {
	var events []logger.RecordEvent
	obs := logger.ObserverFunc(func(e logger.RecordEvent) { events = append(events, e) })

	w := newRecorder()
	l := newLogger(w, level.Info, level.Error).WithObserver(obs)

	l.Info("m", nil)
	l.Debug("m", nil)
	l.LogNamed("verbose", "m", nil)
	w.fail = true
	l.Error("m", nil)

	require.Len(t, events, 4)
	assert.Equal(t, logger.OutcomeWritten, events[0].Outcome)
	assert.Equal(t, logger.OutcomeDisabled, events[1].Outcome)
	assert.Equal(t, logger.OutcomeInvalid, events[2].Outcome)
	assert.Equal(t, logger.OutcomeFailed, events[3].Outcome)
	assert.Equal(t, level.Error, events[3].Level)
	assert.Equal(t, "billing", events[3].Component)
	assert.Zero(t, events[1].Duration)
}

func TestFactory(t *testing.T) {
	var events int
	w := newRecorder()
	f := logger.NewFactory(logger.Config{
		Component: "api",
		LogLevels: level.AllLevels(),
	}, w).WithObserver(logger.ObserverFunc(func(logger.RecordEvent) { events++ }))

	a, b := f.New(""), f.New("fixed")
	assert.NotEqual(t, a.RequestID(), b.RequestID())
	assert.Equal(t, "fixed", b.RequestID())

	a.Info("from a", nil)
	b.Info("from b", nil)

	require.Len(t, w.records, 2)
	assert.Equal(t, "api", w.records[0].component)
	assert.Equal(t, a.RequestID(), w.records[0].fields[writer.KeyRequestID])
	assert.Equal(t, "fixed", w.records[1].fields[writer.KeyRequestID])
	assert.Equal(t, 2, events)
}

func TestFXModule(t *testing.T) {
	w := newRecorder()
	var f *logger.Factory
	app := fxtest.New(t,
		logger.FXModule,
		fx.Provide(
			func() logger.Config { return logger.Config{Component: "api", LogLevels: level.AllLevels()} },
			func() writer.Writer { return w },
		),
		fx.Populate(&f),
	)
	app.RequireStart()
	defer app.RequireStop()

	f.New("").Notice("started", nil)
	require.Len(t, w.records, 1)
	assert.Equal(t, "api", w.records[0].component)
}

func TestNilWriterDoesNotPanic(t *testing.T) {
	var events []logger.RecordEvent
	l := logger.New("billing", "", logger.Config{LogLevels: level.AllLevels()}, nil).
		WithObserver(logger.ObserverFunc(func(e logger.RecordEvent) { events = append(events, e) }))

	assert.NotPanics(t, func() {
		l.Info("m", nil)
		l.Debug("m", nil)
	})
	require.Len(t, events, 2)
	assert.Equal(t, logger.OutcomeFailed, events[0].Outcome)
	assert.Equal(t, logger.OutcomeFailed, events[1].Outcome)
}

func TestTracingCanBeTurnedOff(t *testing.T) {
	f := logger.NewFactory(logger.Config{Component: "api", EnableTracing: true}, newRecorder())
	assert.True(t, f.New("").Config().EnableTracing)

	l := logger.New("api", "", logger.Config{EnableTracing: false}, newRecorder())
	assert.False(t, l.Config().EnableTracing)
}
