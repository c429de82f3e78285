package logger

import "github.com/Aleph-Alpha/reqlog/v1/stacktrace"

// callerTrace formats the current stack without this package's frames.
func callerTrace() string {
	return stacktrace.Format(stacktrace.Exclude(stacktrace.Capture(0), pkgPath))
}

// errorTrace formats the stack recorded in err. Errors without a recorded
// stack contribute their message.
func errorTrace(err error) string {
	if frames, ok := stacktrace.FromError(err); ok {
		return stacktrace.Format(frames)
	}
	return err.Error() + "\n"
}
