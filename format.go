// format.go - fmt.Formatter for instances.
//
// Behavior:
//
//	%s, %v  concise string (Error()).
//	%q      quoted Error().
//	%+v     verbose, multi-line:
//	          tag=<tag> msg="<message>"
//	          fields: key1=val1 key2=val2 ...
//	          stack:
//	            funcA file.go:123
//	          cause: <next node, same layout>
//
// The cause chain is rendered iteratively with a visited set rather than by
// recursing through fmt, so a cyclic chain still prints once per node.
// Foreign causes are handed to fmt with %+v and end the chain.
package xgxkind

import (
	"fmt"
	"io"
)

func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

// formatNode writes the verbose block for a single instance (no cause).
func formatNode(w io.Writer, e Error) {
	_, _ = fmt.Fprintf(w, "tag=%s msg=%q", e.Tag(), e.Message())

	var fs fields
	if in, ok := e.(*instance); ok {
		fs = in.ctx
	} else {
		for k, v := range e.Fields() {
			fs = append(fs, Field{Key: k, Val: v})
		}
	}
	if len(fs) > 0 {
		_, _ = io.WriteString(w, "\nfields:")
		for _, f := range fs {
			_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
		}
	}

	if stk := e.Stack(); len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func formatVerbose(w io.Writer, e Error) {
	seen := newVisited()
	seen.mark(e)
	formatNode(w, e)

	cause := e.Cause()
	for depth := 0; cause != nil && depth < maxChainDepth; depth++ {
		next, ok := cause.(Error)
		if !ok {
			_, _ = fmt.Fprintf(w, "\ncause: %+v", cause)
			return
		}
		if !seen.mark(next) {
			return
		}
		_, _ = io.WriteString(w, "\ncause: ")
		formatNode(w, next)
		cause = next.Cause()
	}
}

func (e *instance) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
