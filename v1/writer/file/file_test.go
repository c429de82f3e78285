package file

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

var fixedNow = time.Date(2024, 3, 1, 23, 30, 5, 0, time.FixedZone("EST", -5*3600))

func newTestWriter(path string) *Writer {
	w := NewWriter(Config{Path: path})
	w.now = func() time.Time { return fixedNow }
	return w
}

func TestWriteWithoutPath(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	w := NewWriter(Config{}).WithDiagnostics(zap.New(core))

	ok := w.Write("billing", "hello", level.Info, writer.Context{})
	assert.False(t, ok)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "file writer: record dropped", entry.Message)
	assert.Contains(t, entry.ContextMap()["error"], writer.ErrNotConfigured.Error())
}

func TestWriteCreatesDailyFile(t *testing.T) {
	root := t.TempDir()
	w := newTestWriter(root + "/")

	ok := w.Write("billing", "charged {amount}", level.Error, writer.Context{
		writer.KeyRequestID: "abc123",
		"amount":            42,
	})
	require.True(t, ok)

	// 23:30 EST is already the next day in UTC.
	name := filepath.Join(root, "billing", "2024-03-02.log")
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "abc123-2024-03-02T04:30:05+0000-[ERROR]-charged 42\n", string(data))

	info, err := os.Stat(filepath.Join(root, "billing"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteAppends(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(Config{Path: root})

	require.True(t, w.Write("api", "first", level.Info, writer.Context{writer.KeyRequestID: "r1"}))
	require.True(t, w.Write("api", "second", level.Warning, writer.Context{}))

	name := filepath.Join(root, "api", time.Now().UTC().Format(DateLayout)+".log")
	data, err := os.ReadFile(name)
	require.NoError(t, err)

	line := regexp.MustCompile(`^r1-\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\+0000-\[INFO\]-first\nno_id-\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\+0000-\[WARNING\]-second\n$`)
	assert.Regexp(t, line, string(data))
}

func TestWriteStackTrace(t *testing.T) {
	root := t.TempDir()
	w := newTestWriter(root)

	require.True(t, w.Write("api", "dbg", level.Debug, writer.Context{
		writer.KeyRequestID:  "r1",
		writer.KeyStackTrace: "#0 /a.go(1): main.main()\n",
	}))

	data, err := os.ReadFile(filepath.Join(root, "api", "2024-03-02.log"))
	require.NoError(t, err)
	assert.Equal(t, "r1-2024-03-02T04:30:05+0000-[DEBUG]-dbg\n#0 /a.go(1): main.main()\n\n", string(data))
}

func TestWriteDirectoryFailure(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	w := NewWriter(Config{Path: blocker})
	assert.False(t, w.Write("api", "msg", level.Info, writer.Context{}))
}

func TestPathOptionOverride(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	w := newTestWriter(first)

	w.Config(writer.Config{Options: writer.Options{OptionPath: second}})
	require.True(t, w.Write("api", "msg", level.Info, writer.Context{}))

	_, err := os.Stat(filepath.Join(second, "api", "2024-03-02.log"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(first, "api"))
	assert.True(t, os.IsNotExist(err))
}

func TestDir(t *testing.T) {
	assert.Equal(t, "/var/log/api/", Dir("/var/log///", "api"))
	assert.Equal(t, "/var/log/api/", Dir("/var/log", "api"))
}

func TestFXModule(t *testing.T) {
	var w writer.Writer
	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config { return Config{Path: t.TempDir()} }),
		fx.Populate(&w),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, w)
	assert.True(t, w.Write("fx", "started", level.Notice, writer.Context{}))
}
