// instance.go - the concrete value behind Error.
package xgxkind

// instance is immutable after construct returns. relabel is the only
// operation that derives a new instance from an existing one, and it copies.
type instance struct {
	kind     *Kind
	msg      string
	ctx      fields
	cause    error
	stk      Stack
	trace    string
	behavior any
}

func (e *instance) Error() string {
	if e.msg == "" {
		return e.kind.tag
	}
	return e.kind.tag + ": " + e.msg
}

func (e *instance) Tag() string                   { return e.kind.tag }
func (e *instance) Kind() *Kind                   { return e.kind }
func (e *instance) Message() string               { return e.msg }
func (e *instance) Fields() map[string]any        { return ctxToMap(e.ctx) }
func (e *instance) Field(name string) (any, bool) { return e.ctx.lookup(name) }
func (e *instance) Cause() error                  { return e.cause }
func (e *instance) Unwrap() error                 { return e.cause }
func (e *instance) Trace() string                 { return e.trace }
func (e *instance) Stack() Stack                  { return e.stk }
func (e *instance) Behavior() any                 { return e.behavior }

func (e *instance) FindCause(target *Kind) (Error, bool) {
	return FindCause(e, target)
}

func (e *instance) Structured() Structured {
	return *project(e, newVisited(), 0)
}

// relabel returns a copy of e with its message replaced. Tag, fields, cause
// and stack are kept; the trace header is re-rendered.
func (e *instance) relabel(msg string) *instance {
	n := *e
	n.msg = msg
	n.trace = renderTrace(&n)
	return &n
}

var _ Error = (*instance)(nil)
