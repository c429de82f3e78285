package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// Writer appends records to daily files. It implements writer.Writer.
type Writer struct {
	*writer.Base

	dirMode  os.FileMode
	fileMode os.FileMode

	// now is the clock, replaced in tests
	now func() time.Time

	log *zap.Logger
}

// NewWriter creates a file writer.
//
// Parameters:
//   - cfg: Root directory and permissions. An empty Path leaves the "path"
//     option unset, so every Write returns false until a Logger pushes a
//     "path" option or Config is called with one. Zero modes fall back to
//     DefaultDirMode and DefaultFileMode
//
// Returns:
//   - *Writer: A writer that appends to <path>/<component>/<YYYY-MM-DD>.log
//
// No file is opened here; each Write opens, locks, appends and closes.
//
// Example:
//
//	w := file.NewWriter(file.Config{Path: "/var/log/app"})
//	log := logger.New("billing", "", logger.Config{LogLevels: level.AllLevels()}, w)
//	log.Info("started", nil) // /var/log/app/billing/2024-03-01.log
func NewWriter(cfg Config) *Writer {
	base := writer.Config{Options: writer.Options{}}
	if cfg.Path != "" {
		base.Options[OptionPath] = cfg.Path
	}
	if cfg.DirMode == 0 {
		cfg.DirMode = DefaultDirMode
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = DefaultFileMode
	}

	return &Writer{
		Base:     writer.NewBase(base),
		dirMode:  cfg.DirMode,
		fileMode: cfg.FileMode,
		now:      time.Now,
		log:      zap.NewNop(),
	}
}

// WithDiagnostics sets the logger that receives write failures.
func (w *Writer) WithDiagnostics(log *zap.Logger) *Writer {
	if log != nil {
		w.log = log
	}
	return w
}

// Write appends one record and reports whether it reached the file.
func (w *Writer) Write(component, message string, l level.Level, fields writer.Context) bool {
	if err := w.write(component, message, l, fields); err != nil {
		w.log.Debug("file writer: record dropped",
			zap.String("component", component),
			zap.String("level", l.String()),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (w *Writer) write(component, message string, l level.Level, fields writer.Context) error {
	root, ok := w.StringOption(OptionPath)
	if !ok {
		return ErrPathNotConfigured
	}

	now := w.now().UTC()
	dir := Dir(root, component)
	if err := os.MkdirAll(dir, w.dirMode); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	name := filepath.Join(dir, now.Format(DateLayout)+".log")
	return w.appendLocked(name, FormatRecord(now, message, l, fields))
}

func (w *Writer) appendLocked(name string, record []byte) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, w.fileMode)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", name, err)
	}
	defer f.Close()

	if err := lock(f); err != nil {
		return fmt.Errorf("failed to lock log file %s: %w", name, err)
	}
	defer unlock(f)

	if _, err := f.Write(record); err != nil {
		return fmt.Errorf("%w: %s: %v", writer.ErrWriteFailed, name, err)
	}
	return nil
}

// Dir returns the directory records of component are written to.
func Dir(root, component string) string {
	return strings.TrimRight(root, "/") + "/" + component + "/"
}

// FormatRecord renders one record as written to the file.
func FormatRecord(now time.Time, message string, l level.Level, fields writer.Context) []byte {
	reqID := "no_id"
	if v, ok := fields[writer.KeyRequestID]; ok && v != nil {
		reqID = writer.ValueString(v)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s-%s-[%s]-%s\n",
		reqID,
		now.Format(TimestampLayout),
		l.Upper(),
		writer.Interpolate(message, fields),
	)
	if st, ok := fields[writer.KeyStackTrace]; ok && st != nil {
		b.WriteString(writer.ValueString(st))
		b.WriteString("\n")
	}
	return []byte(b.String())
}
