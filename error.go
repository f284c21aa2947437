// Package xgxkind defines closed, tagged error kinds for xgx projects. A kind
// is registered once from a message template; instances are built at failure
// sites and travel as ordinary return values.
//
// Design tenets:
//   - Interop-first: every instance is a Go error and unwraps to its cause.
//   - Registration-time checks: templates are parsed and validated once.
//   - Immutable instances: nothing mutates an instance after construction.
//   - No policy: no logging, transport or persistence in core.
package xgxkind

// Error is the root behavior shared by every instance produced by a Kind.
//
// Code that only needs to tell failures apart from successes, or that handles
// "any recognized error" in a fallback, works against this interface. The
// concrete type is unexported; construct instances with (*Kind).New or
// (*Kind).Wrap.
type Error interface {
	error

	// Tag returns the permanent kind tag (the Spec's Tag).
	Tag() string

	// Kind returns the kind that produced this instance.
	Kind() *Kind

	// Message returns the interpolated message, without the tag prefix.
	Message() string

	// Fields returns a COPY of the supplied template fields.
	Fields() map[string]any

	// Field returns a single field value.
	Field(name string) (any, bool)

	// Cause returns the wrapped error, or nil.
	Cause() error

	// Unwrap mirrors Cause for errors.Is/As traversal.
	Unwrap() error

	// Trace returns the diagnostic trace captured at construction, including
	// the cause's trace under a "Caused by:" section.
	Trace() string

	// Stack returns the frames captured at construction.
	Stack() Stack

	// Behavior returns the value attached by the kind's Base, or nil.
	Behavior() any

	// FindCause searches this instance and its cause chain for target.
	FindCause(target *Kind) (Error, bool)

	// Structured projects the instance into a serializable shape.
	Structured() Structured
}

// Base attaches caller-defined behavior to instances of a kind. It is invoked
// once per construction, after the instance is fully built, and its result is
// exposed through Error.Behavior and BehaviorOf.
type Base func(Error) any

// BehaviorOf returns the first behavior of type T attached to an instance in
// err's unwrap graph.
func BehaviorOf[T any](err error) (T, bool) {
	var (
		out   T
		found bool
	)
	Walk(err, func(cur error) bool {
		if e, ok := cur.(Error); ok {
			if b, ok := e.Behavior().(T); ok {
				out, found = b, true
				return false
			}
		}
		return true
	})
	return out, found
}
