// Package syslog provides a reqlog writer that sends each record to syslog
// as a small JSON document:
//
//	{"reqid":"3f9c...e1","stack_trace":null,"message":"payment 42 declined"}
//
// Only the request id, the stack trace and the interpolated message are
// sent; other context keys are used for interpolation only. Records are
// tagged with the component name, use the "user" facility and map the
// severities one to one onto syslog priorities (emergency → LOG_EMERG …
// debug → LOG_DEBUG).
//
// A connection is opened for every record and closed right after it, so the
// writer holds no state between calls. An empty Config targets the local
// syslog daemon; Network and Address select a remote one:
//
//	w := syslog.NewWriter(syslog.Config{Network: "udp", Address: "logs:514"})
//
// The package is not available on Windows and Plan 9.
package syslog
