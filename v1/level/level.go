package level

import "strings"

// Level is a log severity. The zero value is not a valid severity.
type Level int

// Recognized severities, most severe first.
const (
	Emergency Level = iota + 1
	Alert
	Critical
	Error
	Warning
	Notice
	Info
	Debug
)

const (
	// AllName is the log_levels sentinel that enables every severity.
	AllName = "all"

	// OffName is the log_levels sentinel that disables every severity.
	// It wins over AllName and over named severities.
	OffName = "off"
)

var names = map[Level]string{
	Emergency: "emergency",
	Alert:     "alert",
	Critical:  "critical",
	Error:     "error",
	Warning:   "warning",
	Notice:    "notice",
	Info:      "info",
	Debug:     "debug",
}

var byName = func() map[string]Level {
	m := make(map[string]Level, len(names))
	for l, n := range names {
		m[n] = l
	}
	return m
}()

// All returns every recognized severity, most severe first.
func All() []Level {
	return []Level{Emergency, Alert, Critical, Error, Warning, Notice, Info, Debug}
}

// Parse looks up a severity by name, ignoring case and surrounding space.
// It reports false for anything that is not one of the eight severities,
// including the all/off sentinels.
func Parse(name string) (Level, bool) {
	l, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// Valid reports whether l is one of the recognized severities.
func (l Level) Valid() bool {
	_, ok := names[l]
	return ok
}

// String returns the lowercase name of the severity, or "unknown".
func (l Level) String() string {
	if n, ok := names[l]; ok {
		return n
	}
	return "unknown"
}

// Upper returns the uppercase name used in plain-text output.
func (l Level) Upper() string {
	return strings.ToUpper(l.String())
}
