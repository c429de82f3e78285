// Package writer defines the contract every reqlog backend implements and
// the pieces backends share.
//
// # Architecture
//
// A Writer formats and emits one record per Write call. The logger pushes
// its own Config into the writer before every write, so a writer always sees
// the caller's log_levels and options merged over whatever was set on it
// directly:
//
//	w := file.NewWriter(file.Config{Path: "/var/log/app"})
//	w.Config(writer.Config{Options: writer.Options{"path": "/srv/log"}})
//	w.Write("billing", "charged {amount}", level.Info, writer.Context{"amount": 10})
//
// Backends live in sub-packages:
//   - file: one plain-text file per component and day
//   - syslog: JSON payload sent to the local or a remote syslog daemon
//   - kafka, rabbit: JSON Envelope published to a topic or an exchange
//   - postgres: one row per record
//   - zapwriter: records forwarded to a *zap.Logger
//
// # Config Merging
//
// Merging is shallow: a non-nil LogLevels replaces the current value
// wholesale and each Options key overwrites the previous value for that key.
// Supplying log_levels never unions with an earlier set.
//
// # Interpolation
//
// Messages may contain {key} placeholders that are replaced with the
// matching Context values:
//
//	writer.Interpolate("user {id} logged in", writer.Context{"id": 7})
//	// "user 7 logged in"
//
// Placeholders without a matching key are left as they are.
//
// # Failure Reporting
//
// Write never panics on expected failures such as missing configuration or
// an unreachable destination. It returns false instead; the cause is logged
// on the writer's diagnostic *zap.Logger at debug level.
package writer
