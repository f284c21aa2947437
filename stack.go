// stack.go - stack capture and trace rendering.
//
// Capture uses runtime.Callers + runtime.CallersFrames so inlined frames are
// resolved correctly. Every instance captures once, at construction, bounded
// by defaultMaxDepth.
//
// Trace layout:
//
//	NotFoundError: user 42 not found
//	  main.lookup /src/app/main.go:31
//	  main.main /src/app/main.go:12
//	Caused by:
//	  StoreError: connection reset
//	    store.(*DB).Get /src/store/db.go:88
package xgxkind

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const defaultMaxDepth = 32

// captureStackDefault captures a stack skipping 'skip' frames beyond its
// caller, with the default depth bound.
//
// With skip=0 the first recorded frame is the caller of captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames. The +3 skips runtime.Callers,
// captureStack and captureStackDefault.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// String renders one frame per line, most recent first.
func (s Stack) String() string {
	var sb strings.Builder
	for i, fr := range s {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s %s:%d", fr.Function, fr.File, fr.Line)
	}
	return sb.String()
}

// stackTracer is the interface github.com/pkg/errors values satisfy.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// renderTrace builds the instance's trace text: a header line, its own
// frames, then the cause's trace (if it has any) indented under "Caused by:".
func renderTrace(e *instance) string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	for _, fr := range e.stk {
		fmt.Fprintf(&sb, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
	}
	if ct := causeTrace(e.cause); ct != "" {
		sb.WriteString("\nCaused by:\n")
		sb.WriteString(indent(ct, "  "))
	}
	return sb.String()
}

// causeTrace returns the trace text a cause carries, or "" if none.
// Instances expose their own rendered trace; errors from github.com/pkg/errors
// expose frames through StackTrace.
func causeTrace(cause error) string {
	switch c := cause.(type) {
	case nil:
		return ""
	case Error:
		return c.Trace()
	case stackTracer:
		frames := strings.TrimLeft(fmt.Sprintf("%+v", c.StackTrace()), "\n")
		if frames == "" {
			return ""
		}
		return cause.Error() + "\n" + indent(strings.ReplaceAll(frames, "\t", "  "), "  ")
	default:
		return ""
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
