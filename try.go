// try.go - the boundary between panicking code and Outcome values.
//
// Panics play the role of raised exceptions:
//   - A panic whose value is an Error is caught and becomes a failed Outcome,
//     either through the OnCaught mapping or wrapped by Unhandled.
//   - Any other panic value, including foreign errors, is re-panicked
//     unchanged. Try never converts a value it does not recognize.
//
// TryAsync runs the operation on its own goroutine. The panic (if any) is
// carried back and re-raised on the goroutine that calls Await, so a foreign
// panic surfaces where the caller can handle it. There is no cancellation:
// callers that need it close over a context inside op.
package xgxkind

// TryOption configures Try, TryResult and TryAsync.
type TryOption func(*tryConfig)

type tryConfig struct {
	onCaught func(Error) Error
}

func applyTryOpts(opts ...TryOption) *tryConfig {
	cfg := new(tryConfig)
	for _, f := range opts {
		if f != nil {
			f(cfg)
		}
	}
	return cfg
}

// OnCaught maps a caught Error to the Error the Outcome will carry. If fn
// returns nil, the default Unhandled wrapping applies.
func OnCaught(fn func(Error) Error) TryOption {
	return func(c *tryConfig) {
		c.onCaught = fn
	}
}

func (c *tryConfig) catch(e Error) Error {
	if c.onCaught != nil {
		if mapped := c.onCaught(e); mapped != nil {
			return mapped
		}
	}
	return Unhandled.construct(e, Args{"reason": e.Message()}, 3)
}

// run executes op. A recognized panic becomes a failed Outcome; any other
// panic value, including a typed-nil Error, is returned in foreign with
// panicked set.
func run[T any](op func() T, cfg *tryConfig) (out Outcome[T], foreign any, panicked bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(Error); ok && !isNilError(e) {
			out = Fail[T](cfg.catch(e))
			return
		}
		foreign, panicked = r, true
	}()
	return Ok(op()), nil, false
}

// Try calls op and returns its result as an Outcome.
func Try[T any](op func() T, opts ...TryOption) Outcome[T] {
	out, foreign, panicked := run(op, applyTryOpts(opts...))
	if panicked {
		panic(foreign)
	}
	return out
}

// TryResult adapts a Go (T, error) function. A returned Error is caught like a
// panicked one; a returned foreign error is re-panicked unchanged.
func TryResult[T any](op func() (T, error), opts ...TryOption) Outcome[T] {
	return Try(func() T {
		v, err := op()
		if err != nil {
			panic(err)
		}
		return v
	}, opts...)
}

// Future is the pending result of TryAsync.
type Future[T any] struct {
	done     chan struct{}
	out      Outcome[T]
	foreign  any
	panicked bool
}

// TryAsync starts op on a new goroutine and returns immediately.
func TryAsync[T any](op func() T, opts ...TryOption) *Future[T] {
	cfg := applyTryOpts(opts...)
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.out, f.foreign, f.panicked = run(op, cfg)
	}()
	return f
}

// Done is closed once the operation has finished.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until the operation finishes and returns its Outcome. If op
// panicked with a value that is not an Error, Await re-panics with it on the
// calling goroutine. Await may be called more than once.
func (f *Future[T]) Await() Outcome[T] {
	<-f.done
	if f.panicked {
		panic(f.foreign)
	}
	return f.out
}
