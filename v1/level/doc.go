// Package level defines the closed set of severities understood by reqlog
// and the log_levels filter built on top of them.
//
// The eight severities follow PSR-3 / RFC 5424 naming: emergency, alert,
// critical, error, warning, notice, info and debug. Names are matched
// case-insensitively on input:
//
//	l, ok := level.Parse("WARNING") // level.Warning, true
//	_, ok = level.Parse("verbose")  // ok == false
//
// # Filters
//
// A Set is the typed form of the log_levels option. It holds individual
// severities plus two sentinels:
//
//   - all: every severity is enabled
//   - off: nothing is enabled, even if all or named severities are present
//
// Sets decode from YAML and from comma-separated text:
//
//	log_levels: [error, critical]
//
//	LOG_LEVELS=error,critical
package level
