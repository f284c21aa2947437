// context.go - ordered, immutable field storage for instances.
//
// Design:
//   - Internal representation: []Field in the kind's declared field order, so
//     verbose formatting and structured output are deterministic.
//   - Public view for callers: copy-on-read map[string]any.
//
// Rationale:
//   - Go map iteration order is unspecified; the slice keeps declaration order.
//   - Instances never expose the slice, so no caller can alias it.
package xgxkind

// Field is a single named template value carried by an instance.
type Field struct {
	Key string
	Val any
}

// fields is the internal immutable representation.
// Never modify elements in place once published.
type fields []Field

var emptyFields = make(fields, 0)

// fieldsFromArgs picks the declared names present in args, in declared order.
// Keys in args that are not declared are ignored.
func fieldsFromArgs(declared []string, args Args) fields {
	if len(args) == 0 || len(declared) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(declared))
	for _, name := range declared {
		if v, ok := args[name]; ok {
			out = append(out, Field{Key: name, Val: v})
		}
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// lookup returns the value stored under key.
func (fs fields) lookup(key string) (any, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f.Val, true
		}
	}
	return nil, false
}

// toArgs rebuilds an Args map; used when re-rendering a message.
func (fs fields) toArgs() Args {
	a := make(Args, len(fs))
	for _, f := range fs {
		a[f.Key] = f.Val
	}
	return a
}

// ctxToMap creates a NEW map from fields (copy-on-read).
// An instance with no fields yields an empty, non-nil map.
func ctxToMap(fs fields) map[string]any {
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
