// builtin.go - kinds the package itself defines and uses.
//
// These are declared through newKind rather than Define: Define reports its
// own failures with InvalidSpec and UndeclaredField, so routing their
// declaration through it would form an initialization cycle. The specs below
// are valid by inspection and covered by tests.
package xgxkind

// Builtin tags.
const (
	TagUnhandled       = "UnhandledError"
	TagInvalidSpec     = "InvalidSpecError"
	TagUndeclaredField = "UndeclaredFieldError"
	TagIncompleteMatch = "IncompleteMatchError"
)

var (
	// Unhandled is the default wrapper used by Try when no OnCaught mapping is
	// supplied, and by From for foreign errors.
	Unhandled = newKind(Spec{
		Tag:      TagUnhandled,
		Template: "unhandled error: $reason",
		Fields:   []string{"reason"},
	}, nil)

	// InvalidSpec reports a malformed Spec passed to Define.
	InvalidSpec = newKind(Spec{
		Tag:      TagInvalidSpec,
		Template: "invalid kind spec $tag: $reason",
		Fields:   []string{"tag", "reason"},
	}, nil)

	// UndeclaredField reports a template placeholder missing from Spec.Fields.
	UndeclaredField = newKind(Spec{
		Tag:      TagUndeclaredField,
		Template: "template of $tag references undeclared field $field",
		Fields:   []string{"tag", "field"},
	}, nil)

	// IncompleteMatch reports a match table that fails its exhaustiveness
	// check.
	IncompleteMatch = newKind(Spec{
		Tag:      TagIncompleteMatch,
		Template: "match table $problem: $tag",
		Fields:   []string{"problem", "tag"},
	}, nil)
)

// builtinKinds is the ordered set of kinds the core ships with.
var builtinKinds = []*Kind{Unhandled, InvalidSpec, UndeclaredField, IncompleteMatch}

// BuiltinKinds returns a copy of the builtin kinds in a stable order.
func BuiltinKinds() []*Kind {
	out := make([]*Kind, len(builtinKinds))
	copy(out, builtinKinds)
	return out
}
