// Package stacktrace captures call stacks as plain frames and renders them
// in the numbered one-line-per-frame layout used for the stack_trace field:
//
//	#0 /src/app/handler.go(42): github.com/acme/app.(*Handler).Serve()
//	#1 /usr/local/go/src/net/http/server.go(2166): net/http.HandlerFunc.ServeHTTP()
//
// Capturing and formatting are separate so the formatter can be fed frames
// from any source, including errors created with github.com/pkg/errors.
package stacktrace

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

const maxDepth = 64

// Frame is one entry of a call stack.
type Frame struct {
	File     string
	Line     int
	Function string
	// Args holds already rendered arguments, see RenderArg.
	Args []string
}

// Capture returns the stack of the calling goroutine. skip is the number of
// frames to drop above the caller of Capture; 0 starts at the caller.
func Capture(skip int) []Frame {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	return FromPCs(pcs[:n])
}

// FromPCs resolves program counters as returned by runtime.Callers.
func FromPCs(pcs []uintptr) []Frame {
	if len(pcs) == 0 {
		return nil
	}
	frames := make([]Frame, 0, len(pcs))
	it := runtime.CallersFrames(pcs)
	for {
		f, more := it.Next()
		frames = append(frames, Frame{
			File:     f.File,
			Line:     f.Line,
			Function: f.Function,
		})
		if !more {
			break
		}
	}
	return frames
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FromError returns the frames recorded by the deepest error in err's
// chain that carries a github.com/pkg/errors stack trace.
func FromError(err error) ([]Frame, bool) {
	var st errors.StackTrace
	for e := err; e != nil; e = errors.Unwrap(e) {
		if t, ok := e.(stackTracer); ok {
			st = t.StackTrace()
		}
	}
	if len(st) == 0 {
		return nil, false
	}
	pcs := make([]uintptr, len(st))
	for i, f := range st {
		pcs[i] = uintptr(f)
	}
	return FromPCs(pcs), true
}

// Exclude drops frames whose function lives in one of the given packages.
// Packages are import paths, e.g. "github.com/acme/app/log".
func Exclude(frames []Frame, packages ...string) []Frame {
	out := frames[:0:0]
	for _, f := range frames {
		if !inPackage(f.Function, packages) {
			out = append(out, f)
		}
	}
	return out
}

func inPackage(function string, packages []string) bool {
	for _, p := range packages {
		if strings.HasPrefix(function, p+".") {
			return true
		}
	}
	return false
}

// Format renders frames one per line, each terminated by a newline.
func Format(frames []Frame) string {
	var b strings.Builder
	for i, f := range frames {
		line := ""
		if f.Line > 0 {
			line = fmt.Sprint(f.Line)
		}
		fmt.Fprintf(&b, "#%d %s(%s): %s(%s)\n", i, f.File, line, f.Function, strings.Join(f.Args, ","))
	}
	return b.String()
}
