// structured.go - serializable projection of an instance and its causes.
//
// Shape:
//
//	{kind, message, fields, cause, trace, opaque}
//
// Causes that are Errors are projected recursively. Foreign causes become an
// opaque node with best-effort extraction: the Go type name as kind, Error()
// as message, a github.com/pkg/errors stack trace when present, and their own
// Unwrap() error chain projected the same way. A node seen twice is omitted,
// so cyclic chains terminate.
package xgxkind

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Structured is the externally observable data shape of an instance.
type Structured struct {
	Kind    string         `json:"kind" yaml:"kind"`
	Message string         `json:"message" yaml:"message"`
	Fields  map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
	Cause   *Structured    `json:"cause,omitempty" yaml:"cause,omitempty"`
	Trace   string         `json:"trace,omitempty" yaml:"trace,omitempty"`
	// Opaque marks a node projected from a foreign (non-Error) error.
	Opaque bool `json:"opaque,omitempty" yaml:"opaque,omitempty"`
}

// JSON encodes s.
func (s Structured) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// Depth returns the number of nodes in the cause chain, including s.
func (s Structured) Depth() int {
	n := 1
	for c := s.Cause; c != nil; c = c.Cause {
		n++
	}
	return n
}

// StructuredOf projects any error. Errors that are not instances produce an
// opaque root node; nil yields nil.
func StructuredOf(err error) *Structured {
	if err == nil {
		return nil
	}
	return project(err, newVisited(), 0)
}

func project(err error, seen *visited, depth int) *Structured {
	seen.mark(err)

	var (
		s    *Structured
		next error
	)
	if e, ok := err.(Error); ok {
		s = &Structured{
			Kind:    e.Tag(),
			Message: e.Message(),
			Fields:  e.Fields(),
			Trace:   e.Trace(),
		}
		next = e.Cause()
	} else {
		s = &Structured{
			Kind:    fmt.Sprintf("%T", err),
			Message: err.Error(),
			Trace:   causeTrace(err),
			Opaque:  true,
		}
		if u, ok := err.(singleUnwrapper); ok {
			next = u.Unwrap()
		}
	}
	if next != nil && depth < maxChainDepth && seen.mark(next) {
		s.Cause = project(next, seen, depth+1)
	}
	return s
}
