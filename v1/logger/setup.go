package logger

import (
	"crypto/rand"
	"reflect"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// pkgPath is excluded from synthesized debug traces.
var pkgPath = reflect.TypeOf(Logger{}).PkgPath()

// Logger filters records by severity and hands them to a writer.
type Logger struct {
	component string
	id        string
	cfg       Config
	writer    writer.Writer
	observer  Observer
}

// New creates a Logger for one logical unit of work.
//
// Parameters:
//   - component: Name of the emitting component, passed to the writer with
//     every record (the file writer uses it as a directory name, the syslog
//     writer as the tag)
//   - requestID: Identifier carried by every record as "reqid"; an empty
//     string is replaced by RandomID()
//   - cfg: Configuration merged over DefaultConfig; a nil LogLevels keeps
//     the default "off"
//   - w: The writer records are handed to. There is no fallback writer;
//     with a nil w every enabled call is reported as OutcomeFailed and
//     nothing is written
//
// Returns:
//   - *Logger: A logger ready for use from several goroutines
//
// Example:
//
//	w := syslog.NewWriter(syslog.Config{})
//	log := logger.New("billing", r.Header.Get("X-Request-Id"), logger.Config{
//		LogLevels: level.NewSet(level.Error, level.Warning),
//	}, w)
//	log.Warning("retrying charge for {customer}", writer.Context{"customer": id})
func New(component, requestID string, cfg Config, w writer.Writer) *Logger {
	if requestID == "" {
		requestID = RandomID()
	}
	return &Logger{
		component: component,
		id:        requestID,
		cfg:       DefaultConfig().merge(cfg),
		writer:    w,
	}
}

// WithObserver returns a copy of l that reports every call to o.
func (l *Logger) WithObserver(o Observer) *Logger {
	c := *l
	c.observer = o
	return &c
}

// RequestID returns the request id carried by every record.
func (l *Logger) RequestID() string {
	return l.id
}

// Component returns the component name.
func (l *Logger) Component() string {
	return l.component
}

// Config returns a copy of the effective configuration.
func (l *Logger) Config() Config {
	return Config{}.merge(l.cfg)
}

// Writer returns the writer records are handed to.
func (l *Logger) Writer() writer.Writer {
	return l.writer
}

// RandomID returns IDLength characters drawn uniformly from [a-z0-9].
func RandomID() string {
	const limit = 256 - 256%len(idAlphabet)

	id := make([]byte, 0, IDLength)
	buf := make([]byte, IDLength*2)
	for len(id) < IDLength {
		// crypto/rand.Read does not fail on supported platforms
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			id = append(id, idAlphabet[int(b)%len(idAlphabet)])
			if len(id) == IDLength {
				break
			}
		}
	}
	return string(id)
}
