// match.go - dispatch on an instance's tag.
//
// Two forms:
//   - Exhaustive: a Union names the closed set of kinds a value can be.
//     Exhaustive builds a Table only if every kind in the Union has a case,
//     plus a fallback for unlisted instances. Completeness is checked when
//     the Table is built; Match never re-validates.
//   - Partial: MatchPartial takes any subset of cases and a fallback.
//
// Both look up the instance's Tag() and call the matching handler, or the
// fallback when the tag is not listed.
package xgxkind

import (
	"sort"
	"strings"
)

// Case pairs a kind with its handler.
type Case[R any] struct {
	kind *Kind
	fn   func(Error) R
}

// On builds a Case for k.
func On[R any](k *Kind, fn func(Error) R) Case[R] {
	return Case[R]{kind: k, fn: fn}
}

// Union is a closed set of kinds with distinct tags.
type Union struct {
	kinds []*Kind
	byTag map[string]*Kind
}

// NewUnion returns a union of kinds. Nil kinds and duplicate tags are
// rejected with InvalidSpec.
func NewUnion(kinds ...*Kind) (*Union, error) {
	u := &Union{
		kinds: make([]*Kind, 0, len(kinds)),
		byTag: make(map[string]*Kind, len(kinds)),
	}
	for _, k := range kinds {
		if k == nil {
			return nil, InvalidSpec.New(Args{"tag": "<nil>", "reason": "nil kind in union"})
		}
		if _, dup := u.byTag[k.tag]; dup {
			return nil, InvalidSpec.New(Args{"tag": k.tag, "reason": "tag appears twice in union"})
		}
		u.byTag[k.tag] = k
		u.kinds = append(u.kinds, k)
	}
	return u, nil
}

// MustUnion is like NewUnion but panics on error.
func MustUnion(kinds ...*Kind) *Union {
	u, err := NewUnion(kinds...)
	if err != nil {
		panic(err)
	}
	return u
}

// Kinds returns the union's kinds in the order given.
func (u *Union) Kinds() []*Kind {
	out := make([]*Kind, len(u.kinds))
	copy(out, u.kinds)
	return out
}

// Lookup returns the kind with tag.
func (u *Union) Lookup(tag string) (*Kind, bool) {
	k, ok := u.byTag[tag]
	return k, ok
}

// Contains reports whether k belongs to the union.
func (u *Union) Contains(k *Kind) bool {
	if k == nil {
		return false
	}
	got, ok := u.byTag[k.tag]
	return ok && got == k
}

// Table is a verified exhaustive handler table over a Union.
type Table[R any] struct {
	union    *Union
	handlers map[string]func(Error) R
	fallback func(Error) R
}

// Exhaustive builds a Table. It fails with IncompleteMatch if the fallback is
// nil, a case handler is nil, a case names a kind outside u, two cases share
// a kind, or any kind in u has no case.
func Exhaustive[R any](u *Union, fallback func(Error) R, cases ...Case[R]) (*Table[R], error) {
	if u == nil {
		return nil, IncompleteMatch.New(Args{"problem": "has no union", "tag": "*"})
	}
	if fallback == nil {
		return nil, IncompleteMatch.New(Args{"problem": "has no fallback", "tag": "*"})
	}
	handlers := make(map[string]func(Error) R, len(cases))
	for _, c := range cases {
		if c.kind == nil || c.fn == nil {
			return nil, IncompleteMatch.New(Args{"problem": "has an empty case", "tag": kindTag(c.kind)})
		}
		if !u.Contains(c.kind) {
			return nil, IncompleteMatch.New(Args{"problem": "handles a kind outside its union", "tag": c.kind.tag})
		}
		if _, dup := handlers[c.kind.tag]; dup {
			return nil, IncompleteMatch.New(Args{"problem": "handles a kind twice", "tag": c.kind.tag})
		}
		handlers[c.kind.tag] = c.fn
	}
	var missing []string
	for _, k := range u.kinds {
		if _, ok := handlers[k.tag]; !ok {
			missing = append(missing, k.tag)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, IncompleteMatch.New(Args{"problem": "is missing a case", "tag": strings.Join(missing, ", ")})
	}
	return &Table[R]{union: u, handlers: handlers, fallback: fallback}, nil
}

// MustExhaustive is like Exhaustive but panics on error. Intended for
// package-level tables, so an incomplete table fails at program start.
func MustExhaustive[R any](u *Union, fallback func(Error) R, cases ...Case[R]) *Table[R] {
	t, err := Exhaustive(u, fallback, cases...)
	if err != nil {
		panic(err)
	}
	return t
}

// Union returns the union the table was verified against.
func (t *Table[R]) Union() *Union { return t.union }

// Match dispatches e through t. The handler is chosen by tag and used only
// when e was built by that union member itself; an instance of another kind
// sharing the tag, an unlisted tag and a nil e all go to the fallback.
func Match[R any](e Error, t *Table[R]) R {
	if !isNilError(e) && t.union.Contains(e.Kind()) {
		if fn, ok := t.handlers[e.Tag()]; ok {
			return fn(e)
		}
	}
	return t.fallback(e)
}

// MatchPartial dispatches e to the first case built for e's kind, or to
// fallback. Cases may omit any kinds.
func MatchPartial[R any](e Error, fallback func(Error) R, cases ...Case[R]) R {
	if !isNilError(e) {
		k := e.Kind()
		for _, c := range cases {
			if c.kind != nil && c.fn != nil && c.kind == k {
				return c.fn(e)
			}
		}
	}
	return fallback(e)
}

func kindTag(k *Kind) string {
	if k == nil {
		return "<nil>"
	}
	return k.tag
}
