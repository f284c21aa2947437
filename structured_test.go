// structured_test.go - Structured projection and JSON encoding.
package xgxkind

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructured_FaithfulProjection(t *testing.T) {
	t.Parallel()

	e := kConflict.New(Args{"entity": "user", "id": 42})
	s := e.Structured()

	assert.Equal(t, e.Tag(), s.Kind)
	assert.Equal(t, e.Message(), s.Message)
	assert.Equal(t, e.Fields(), s.Fields)
	assert.Equal(t, e.Trace(), s.Trace)
	assert.False(t, s.Opaque)
	assert.Nil(t, s.Cause)

	// Re-deriving the instance from the projection reproduces it.
	k := MustDefine(Spec{Tag: s.Kind, Template: kConflict.Template()})
	again := k.New(Args(s.Fields))
	assert.Equal(t, e.Message(), again.Message())
	assert.Equal(t, e.Fields(), again.Fields())
}

func TestStructured_RecursiveCauses(t *testing.T) {
	t.Parallel()

	a, _, _ := chainABC()
	s := a.Structured()

	require.Equal(t, 3, s.Depth())
	assert.Equal(t, "NotFoundError", s.Kind)
	assert.Equal(t, "StoreError", s.Cause.Kind)
	assert.Equal(t, "TimeoutError", s.Cause.Cause.Kind)
	assert.Equal(t, map[string]any{"ms": 30}, s.Cause.Cause.Fields)
}

func TestStructured_OpaqueCause(t *testing.T) {
	t.Parallel()

	t.Run("plain error", func(t *testing.T) {
		e := kStore.Wrap(errors.New("connection reset"), nil)
		s := e.Structured()
		require.NotNil(t, s.Cause)
		assert.True(t, s.Cause.Opaque)
		assert.Equal(t, "*errors.errorString", s.Cause.Kind)
		assert.Equal(t, "connection reset", s.Cause.Message)
		assert.Empty(t, s.Cause.Trace)
	})

	t.Run("foreign chain is followed", func(t *testing.T) {
		inner := kTimeout.New(Args{"ms": 9})
		e := kStore.Wrap(fmt.Errorf("dial: %w", inner), nil)
		s := e.Structured()
		require.Equal(t, 3, s.Depth())
		assert.True(t, s.Cause.Opaque)
		assert.Equal(t, "TimeoutError", s.Cause.Cause.Kind)
		assert.False(t, s.Cause.Cause.Opaque)
	})

	t.Run("pkg/errors trace is extracted", func(t *testing.T) {
		e := kStore.Wrap(pkgerrors.New("disk full"), nil)
		s := e.Structured()
		assert.True(t, strings.HasPrefix(s.Cause.Trace, "disk full\n"))
	})
}

func TestStructured_Cycle(t *testing.T) {
	t.Parallel()

	a, _, c := chainABC()
	setCause(t, c, a)
	s := a.Structured()
	assert.Equal(t, 3, s.Depth())
	assert.Nil(t, s.Cause.Cause.Cause)
}

func TestStructuredOf(t *testing.T) {
	t.Parallel()

	assert.Nil(t, StructuredOf(nil))

	s := StructuredOf(errors.New("x"))
	require.NotNil(t, s)
	assert.True(t, s.Opaque)

	e := kStore.New(nil)
	assert.Equal(t, e.Structured(), *StructuredOf(e))
}

func TestStructured_JSON(t *testing.T) {
	t.Parallel()

	e := kNotFound.Wrap(errors.New("no rows"), Args{"id": "123"})
	raw, err := e.Structured().JSON()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "NotFoundError", got["kind"])
	assert.Equal(t, "User 123 not found", got["message"])
	assert.Equal(t, map[string]any{"id": "123"}, got["fields"])
	assert.NotEmpty(t, got["trace"])
	_, hasOpaque := got["opaque"]
	assert.False(t, hasOpaque)

	cause, ok := got["cause"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, cause["opaque"])
	assert.Equal(t, "no rows", cause["message"])
	_, hasCause := cause["cause"]
	assert.False(t, hasCause)
}
