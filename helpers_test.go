// helpers_test.go - kinds shared by the package tests.
package xgxkind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	kNotFound = MustDefine(Spec{
		Tag:      "NotFoundError",
		Template: "User $id not found",
		Fields:   []string{"id"},
	})
	kConflict = MustDefine(Spec{
		Tag:      "ConflictError",
		Template: "$entity $id already exists",
	})
	kStore = MustDefine(Spec{
		Tag:      "StoreError",
		Template: "store unavailable",
	})
	kTimeout = MustDefine(Spec{
		Tag:      "TimeoutError",
		Template: "timed out after $ms ms",
		Fields:   []string{"ms"},
	})
)

// asInstance extracts the concrete type in tests.
func asInstance(t *testing.T, e error) *instance {
	t.Helper()
	in, ok := e.(*instance)
	require.Truef(t, ok, "expected *instance, got %T", e)
	return in
}

// setCause reaches into an instance to build shapes the public API forbids,
// such as cycles.
func setCause(t *testing.T, e Error, cause error) {
	t.Helper()
	asInstance(t, e).cause = cause
}
