// outcome.go - the error-or-payload value and its combinators.
//
// An Outcome[T] holds either a payload of type T or an Error, never both.
// Combinators are package functions because Go methods cannot introduce type
// parameters.
//
// Unwrap is the only combinator that panics: it is the way back from values
// to panics at boundaries that do not use Outcome.
package xgxkind

// Outcome holds a payload or an Error.
type Outcome[T any] struct {
	val T
	err Error
}

// Ok wraps a payload.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{val: v}
}

// Fail wraps an error. A nil e is replaced by an Unhandled instance so the
// outcome is still a failure.
func Fail[T any](e Error) Outcome[T] {
	if e == nil {
		e = Unhandled.construct(nil, Args{"reason": "nil error"}, 1)
	}
	return Outcome[T]{err: e}
}

// From adapts a Go (value, error) pair. A nil err gives Ok(v); an Error is
// kept as is; a foreign error is wrapped by Unhandled.
func From[T any](v T, err error) Outcome[T] {
	switch e := err.(type) {
	case nil:
		return Ok(v)
	case Error:
		return Fail[T](e)
	default:
		return Fail[T](Unhandled.construct(err, Args{"reason": err.Error()}, 1))
	}
}

// IsOk reports whether o holds a payload.
func (o Outcome[T]) IsOk() bool { return o.err == nil }

// IsError reports whether o holds an Error.
func (o Outcome[T]) IsError() bool { return o.err != nil }

// Value returns the payload, or T's zero value for a failure.
func (o Outcome[T]) Value() T { return o.val }

// Err returns the Error, or nil for a success.
func (o Outcome[T]) Err() Error { return o.err }

// Get returns both halves in Go's (value, error) order.
func (o Outcome[T]) Get() (T, Error) { return o.val, o.err }

// Result returns the outcome as (T, error), with a nil error interface on
// success.
func (o Outcome[T]) Result() (T, error) {
	if o.err == nil {
		return o.val, nil
	}
	return o.val, o.err
}

// Map applies fn to a payload. Errors pass through unchanged.
func Map[T, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	if o.err != nil {
		return Outcome[U]{err: o.err}
	}
	return Ok(fn(o.val))
}

// MapError applies fn to an Error. Payloads pass through unchanged.
func MapError[T any](o Outcome[T], fn func(Error) Error) Outcome[T] {
	if o.err == nil {
		return o
	}
	return Fail[T](fn(o.err))
}

// AndThen chains a fallible step. Errors pass through without calling fn.
func AndThen[T, U any](o Outcome[T], fn func(T) Outcome[U]) Outcome[U] {
	if o.err != nil {
		return Outcome[U]{err: o.err}
	}
	return fn(o.val)
}

// Tap calls fn with a payload for its side effect and returns o unchanged.
// fn is not called for errors.
func Tap[T any](o Outcome[T], fn func(T)) Outcome[T] {
	if o.err == nil {
		fn(o.val)
	}
	return o
}

// Unwrap returns the payload, or panics with the Error. A non-empty msg
// relabels the panicked instance: same tag, fields, cause and stack, with msg
// as its message.
func Unwrap[T any](o Outcome[T], msg ...string) T {
	if o.err == nil {
		return o.val
	}
	if len(msg) > 0 && msg[0] != "" {
		panic(relabel(o.err, msg[0]))
	}
	panic(o.err)
}

func relabel(e Error, msg string) Error {
	if in, ok := e.(*instance); ok {
		return in.relabel(msg)
	}
	return Unhandled.construct(e, Args{"reason": msg}, 2).(*instance).relabel(msg)
}

// UnwrapOr returns the payload, or fallback for an error.
func UnwrapOr[T any](o Outcome[T], fallback T) T {
	if o.err != nil {
		return fallback
	}
	return o.val
}

// Fold calls onOk or onErr and returns its result.
func Fold[T, R any](o Outcome[T], onOk func(T) R, onErr func(Error) R) R {
	if o.err != nil {
		return onErr(o.err)
	}
	return onOk(o.val)
}

// Partition splits outcomes into payloads and errors, keeping the relative
// order within each side.
func Partition[T any](outcomes []Outcome[T]) ([]T, []Error) {
	vals := make([]T, 0, len(outcomes))
	errs := make([]Error, 0)
	for _, o := range outcomes {
		if o.err != nil {
			errs = append(errs, o.err)
			continue
		}
		vals = append(vals, o.val)
	}
	return vals, errs
}
