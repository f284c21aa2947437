// format_test.go - fmt verbs on instances.
package xgxkind

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Concise(t *testing.T) {
	t.Parallel()

	e := kNotFound.New(Args{"id": "1"})
	assert.Equal(t, "NotFoundError: User 1 not found", fmt.Sprintf("%v", e))
	assert.Equal(t, "NotFoundError: User 1 not found", fmt.Sprintf("%s", e))
	assert.Equal(t, `"NotFoundError: User 1 not found"`, fmt.Sprintf("%q", e))

	empty := MustDefine(Spec{Tag: "EmptyError", Template: ""})
	assert.Equal(t, "EmptyError", empty.New(nil).Error())
}

func TestFormat_Verbose(t *testing.T) {
	t.Parallel()

	e := kConflict.Wrap(kStore.Wrap(errors.New("socket closed"), nil), Args{"entity": "user", "id": 3})
	out := fmt.Sprintf("%+v", e)

	require.True(t, strings.HasPrefix(out, `tag=ConflictError msg="user 3 already exists"`))
	assert.Contains(t, out, "\nfields: entity=user id=3")
	assert.Contains(t, out, "\nstack:\n  ")
	assert.Contains(t, out, "\ncause: tag=StoreError msg=\"store unavailable\"")
	assert.True(t, strings.HasSuffix(out, "\ncause: socket closed"))

	// Field order follows the kind's declaration.
	assert.Less(t, strings.Index(out, "entity="), strings.Index(out, "id="))
}

func TestFormat_VerboseCycle(t *testing.T) {
	t.Parallel()

	a, _, c := chainABC()
	setCause(t, c, a)
	out := fmt.Sprintf("%+v", a)
	assert.Equal(t, 2, strings.Count(out, "\ncause: "))
	assert.Equal(t, 1, strings.Count(out, "tag=NotFoundError"))
}
