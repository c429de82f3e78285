package writer

import "errors"

// Errors shared by the backends. They are never returned from Write, which
// only reports success; backends log them on their diagnostic logger.
var (
	// ErrNotConfigured is reported when a required option is missing.
	ErrNotConfigured = errors.New("writer not configured")

	// ErrConnectionFailed is reported when the destination cannot be reached.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrWriteFailed is reported when the destination rejects a record.
	ErrWriteFailed = errors.New("write failed")
)
