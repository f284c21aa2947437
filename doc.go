// doc.go - package documentation for xgx-kind
//
// Package xgxkind turns error conditions into closed, tagged kinds whose
// instances are ordinary values: they carry named fields, an interpolated
// message, an optional cause, and a trace captured where they were built.
//
// # Defining kinds
//
// Kinds are registered once, usually at package scope. The template is parsed
// at that point; every `$name` placeholder must be listed in Fields (or Fields
// is left nil and derived from the template).
//
//	var UserNotFound = xgxkind.MustDefine(xgxkind.Spec{
//	    Tag:      "UserNotFoundError",
//	    Template: "user $id not found",
//	    Fields:   []string{"id"},
//	})
//
//	err := UserNotFound.New(xgxkind.Args{"id": "123"})
//	err.Message()       // "user 123 not found"
//	err.Tag()           // "UserNotFoundError"
//	err.Field("id")     // "123", true
//
// A declared field that is not supplied at construction leaves its `$name`
// placeholder in the message. Construction never fails.
//
// # Base behavior
//
// Spec.Base attaches extra behavior to every instance of a kind, in place of
// subclassing:
//
//	type httpStatus int
//	func (s httpStatus) Status() int { return int(s) }
//
//	var NotFound = xgxkind.MustDefine(xgxkind.Spec{
//	    Tag:      "NotFoundError",
//	    Template: "$what not found",
//	    Base:     func(xgxkind.Error) any { return httpStatus(404) },
//	})
//
//	s, ok := xgxkind.BehaviorOf[interface{ Status() int }](err)
//
// # Matching
//
// A Union names the closed set of kinds a value can be; Exhaustive refuses to
// build a Table unless every kind has a case. The fallback receives any
// instance whose tag is not listed.
//
//	var storeErrors = xgxkind.MustUnion(UserNotFound, Conflict)
//
//	var toStatus = xgxkind.MustExhaustive(storeErrors,
//	    func(xgxkind.Error) int { return 500 },
//	    xgxkind.On(UserNotFound, func(xgxkind.Error) int { return 404 }),
//	    xgxkind.On(Conflict, func(xgxkind.Error) int { return 409 }),
//	)
//
//	status := xgxkind.Match(err, toStatus)
//
// MatchPartial takes any subset of cases plus a fallback.
//
// # Causes
//
// Wrap records a cause. FindCause walks the chain of recognized causes and
// returns the first instance of a kind; it terminates on cyclic chains.
// Trace() of a wrapping instance ends with a "Caused by:" section holding the
// cause's indented trace.
//
// # Panics and Outcomes
//
// Code that panics with Error values can be brought into value style with Try,
// TryResult or TryAsync. Only Error panics are caught; every other panic value
// is re-panicked untouched. Outcome[T] holds a payload or an Error, and Map,
// MapError, AndThen, Tap, UnwrapOr, Fold and Partition operate on it. Unwrap
// is the way back: it panics with the Error.
//
// # Interop
//
//   - Every instance is an error; Unwrap() exposes the cause to errors.Is/As.
//   - %v prints "Tag: message"; %+v prints tag, message, fields, stack and
//     the cause chain.
//   - Structured() is the serializable shape; Structured.JSON encodes it.
//
// Adapters live in subpackages: catalog (kinds from YAML/TOML) and zlog
// (zerolog fields).
package xgxkind
