// predicates.go - small classification helpers.
//
// IsError, Kind.Is and IsA look at the value itself. TagOf and HasTag use
// Walk, so they also see instances wrapped by foreign errors (fmt.Errorf with
// %w, errors.Join, JoinErrors).
package xgxkind

// IsError reports whether err is itself a recognized instance (the root
// behavior), as opposed to a foreign error, nil or a typed-nil instance.
func IsError(err error) bool {
	e, ok := err.(Error)
	return ok && !isNilError(e)
}

// AsError returns the first recognized instance in err's unwrap graph.
func AsError(err error) (Error, bool) {
	var found Error
	Walk(err, func(cur error) bool {
		if e, ok := cur.(Error); ok {
			found = e
			return false
		}
		return true
	})
	return found, found != nil
}

// TagOf returns the tag of the first instance in err's unwrap graph, or "".
func TagOf(err error) string {
	if e, ok := AsError(err); ok {
		return e.Tag()
	}
	return ""
}

// HasTag reports whether any instance in err's unwrap graph carries tag.
func HasTag(err error, tag string) bool {
	found := false
	Walk(err, func(cur error) bool {
		if e, ok := cur.(Error); ok && e.Tag() == tag {
			found = true
			return false
		}
		return true
	})
	return found
}

// HasKind reports whether any node in err's unwrap graph is an instance of k.
// Unlike FindCause it follows foreign wrappers and joins.
func HasKind(err error, k *Kind) bool {
	found := false
	Walk(err, func(cur error) bool {
		if k.Is(cur) {
			found = true
			return false
		}
		return true
	})
	return found
}
