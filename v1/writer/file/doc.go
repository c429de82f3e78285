// Package file provides a reqlog writer that appends plain-text records to
// one file per component and UTC day:
//
//	<path>/<component>/<YYYY-MM-DD>.log
//
// Each record is a single line, followed by the stack trace when the record
// carries one:
//
//	3f9c...e1-2024-03-01T12:00:00+0000-[ERROR]-payment 42 declined
//
// The request id is replaced by "no_id" when the record has none. Missing
// directories are created with mode 0755. Appends take an exclusive flock
// for the duration of the single write, so several processes may share a
// log directory.
//
// # Configuration
//
// The destination comes from the "path" option. Config.Path seeds it and a
// logger may override it through its own options:
//
//	w := file.NewWriter(file.Config{Path: "/var/log/app"})
//
// Without a path every Write returns false and nothing is created.
//
// # FX Module Integration
//
//	app := fx.New(
//	    file.FXModule, // provides *file.Writer and writer.Writer
//	    fx.Provide(func() file.Config { return file.Config{Path: "/var/log/app"} }),
//	)
package file
