// cause.go - cycle-safe traversal of cause chains and unwrap graphs.
//
// Instances are immutable, so a cycle cannot be built through the public
// constructors. A foreign Error implementation (or a test reaching into an
// instance) can still produce one, so every walk here keeps a visited set and
// a depth bound.
//
// We must NOT use map[error] as a blanket "seen" set: interface values whose
// dynamic type is not comparable panic as map keys. visited uses a dual guard:
//   - errs (map[error]struct{})   for comparable dynamic types
//   - ptrs (map[uintptr]struct{}) for pointer identity of the rest
//
// Non-comparable, non-pointer dynamics are treated as acyclic and bounded by
// maxChainDepth.
package xgxkind

import (
	"reflect"
)

const maxChainDepth = 1 << 12

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

type visited struct {
	errs map[error]struct{}
	ptrs map[uintptr]struct{}
}

func newVisited() *visited {
	return &visited{
		errs: make(map[error]struct{}, 8),
		ptrs: make(map[uintptr]struct{}, 4),
	}
}

// mark returns true if err was newly marked; false if already seen or nil.
func (v *visited) mark(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := err.(*instance); ok || reflect.TypeOf(err).Comparable() {
		if _, dup := v.errs[err]; dup {
			return false
		}
		v.errs[err] = struct{}{}
		return true
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := v.ptrs[id]; dup {
			return false
		}
		v.ptrs[id] = struct{}{}
	}
	return true
}

// isNilError reports whether e is nil or an interface holding a nil pointer.
func isNilError(e Error) bool {
	if e == nil {
		return true
	}
	rv := reflect.ValueOf(e)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// FindCause returns the first instance of target found in err or its chain
// of recognized causes. The walk follows Cause() only while the cause is an
// Error; a foreign cause ends it. Revisiting an instance ends the walk with
// (nil, false).
func FindCause(err error, target *Kind) (Error, bool) {
	if target == nil {
		return nil, false
	}
	for _, e := range Chain(err) {
		if target.Is(e) {
			return e, true
		}
	}
	return nil, false
}

// Chain returns err followed by each recognized cause, stopping at the first
// foreign or nil cause, or at the first instance seen twice. It returns nil
// when err is not an Error.
func Chain(err error) []Error {
	cur, ok := err.(Error)
	if !ok || cur == nil {
		return nil
	}
	seen := newVisited()
	seen.mark(cur)
	out := make([]Error, 0, 4)
	for depth := 0; depth < maxChainDepth; depth++ {
		out = append(out, cur)
		next, ok := cur.Cause().(Error)
		if !ok || next == nil || !seen.mark(next) {
			break
		}
		cur = next
	}
	return out
}

// Walk traverses an error graph depth-first and calls visit for each DISTINCT
// node in pre-order. It follows both Unwrap() error and Unwrap() []error, so
// it sees through foreign wrappers and joined errors. If visit returns false,
// traversal stops. Safe on cycles; nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	stack := make([]error, 0, 8)
	seen := newVisited()

	stack = append(stack, err)
	seen.mark(err)

	for steps := 0; len(stack) > 0 && steps < maxChainDepth; steps++ {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// Children: multi first, pushed in reverse for left-to-right order.
		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if seen.mark(kids[i]) {
					stack = append(stack, kids[i])
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); seen.mark(u) {
				stack = append(stack, u)
			}
		}
	}
}
