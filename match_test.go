// match_test.go - exhaustive and partial dispatch.
package xgxkind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func name(label string) func(Error) string {
	return func(Error) string { return label }
}

func TestExhaustive_Dispatch(t *testing.T) {
	t.Parallel()

	u := MustUnion(kNotFound, kConflict)
	tbl, err := Exhaustive(u, name("fallback"),
		On(kNotFound, func(e Error) string {
			id, _ := e.Field("id")
			return "not found " + id.(string)
		}),
		On(kConflict, name("conflict")),
	)
	require.NoError(t, err)
	assert.Same(t, u, tbl.Union())

	assert.Equal(t, "not found 7", Match(kNotFound.New(Args{"id": "7"}), tbl))
	assert.Equal(t, "conflict", Match(kConflict.New(nil), tbl))
	assert.Equal(t, "fallback", Match(Unhandled.New(Args{"reason": "x"}), tbl))
	assert.Equal(t, "fallback", Match(kStore.New(nil), tbl))
	assert.Equal(t, "fallback", Match[string](nil, tbl))
}

func TestExhaustive_FallbackReceivesInstance(t *testing.T) {
	t.Parallel()

	tbl := MustExhaustive(MustUnion(kStore), func(e Error) Error { return e },
		On(kStore, func(Error) Error { return nil }),
	)
	plain := kTimeout.New(Args{"ms": 1})
	assert.Same(t, plain, Match(plain, tbl))
}

func TestExhaustive_RejectsIncompleteTables(t *testing.T) {
	t.Parallel()

	u := MustUnion(kNotFound, kConflict)

	cases := []struct {
		name  string
		build func() (*Table[int], error)
	}{
		{"missing case", func() (*Table[int], error) {
			return Exhaustive(u, func(Error) int { return 0 }, On(kNotFound, func(Error) int { return 1 }))
		}},
		{"nil fallback", func() (*Table[int], error) {
			return Exhaustive(u, nil, On(kNotFound, func(Error) int { return 1 }), On(kConflict, func(Error) int { return 2 }))
		}},
		{"kind outside union", func() (*Table[int], error) {
			return Exhaustive(u, func(Error) int { return 0 },
				On(kNotFound, func(Error) int { return 1 }),
				On(kConflict, func(Error) int { return 2 }),
				On(kStore, func(Error) int { return 3 }))
		}},
		{"duplicate case", func() (*Table[int], error) {
			return Exhaustive(u, func(Error) int { return 0 },
				On(kNotFound, func(Error) int { return 1 }),
				On(kNotFound, func(Error) int { return 1 }),
				On(kConflict, func(Error) int { return 2 }))
		}},
		{"nil handler", func() (*Table[int], error) {
			return Exhaustive(u, func(Error) int { return 0 },
				On[int](kNotFound, nil),
				On(kConflict, func(Error) int { return 2 }))
		}},
		{"nil union", func() (*Table[int], error) {
			return Exhaustive(nil, func(Error) int { return 0 })
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := tc.build()
			assert.Nil(t, tbl)
			require.Error(t, err)
			assert.True(t, IncompleteMatch.Is(err), "got %v", err)
		})
	}
}

func TestExhaustive_MissingCaseNamesTags(t *testing.T) {
	t.Parallel()

	_, err := Exhaustive(MustUnion(kTimeout, kNotFound, kConflict), name("x"),
		On(kNotFound, name("n")))
	require.Error(t, err)
	assert.Equal(t, "match table is missing a case: ConflictError, TimeoutError", asInstance(t, err).Message())
}

func TestMustExhaustive_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustExhaustive(MustUnion(kNotFound), name("x"))
	})
}

func TestUnion(t *testing.T) {
	t.Parallel()

	u, err := NewUnion(kNotFound, kStore)
	require.NoError(t, err)
	assert.Equal(t, []*Kind{kNotFound, kStore}, u.Kinds())
	assert.True(t, u.Contains(kStore))
	assert.False(t, u.Contains(kTimeout))

	k, ok := u.Lookup("StoreError")
	require.True(t, ok)
	assert.Same(t, kStore, k)

	twin := MustDefine(Spec{Tag: "StoreError", Template: "other"})
	assert.False(t, u.Contains(twin), "same tag, different kind")

	_, err = NewUnion(kStore, twin)
	assert.True(t, InvalidSpec.Is(err))

	_, err = NewUnion(kStore, nil)
	assert.True(t, InvalidSpec.Is(err))

	assert.Panics(t, func() { MustUnion(kStore, kStore) })
}

func TestMatchPartial(t *testing.T) {
	t.Parallel()

	fallback := name("fallback")

	assert.Equal(t, "nf", MatchPartial(kNotFound.New(Args{"id": "1"}), fallback, On(kNotFound, name("nf"))))
	assert.Equal(t, "fallback", MatchPartial(kConflict.New(nil), fallback, On(kNotFound, name("nf"))))
	assert.Equal(t, "fallback", MatchPartial(kConflict.New(nil), fallback))
	assert.Equal(t, "fallback", MatchPartial(Unhandled.New(nil), fallback, On(kNotFound, name("nf"))))
	assert.Equal(t, "fallback", MatchPartial(nil, fallback, On(kNotFound, name("nf"))))
	assert.Equal(t, "first", MatchPartial(kStore.New(nil), fallback, On(kStore, name("first")), On(kStore, name("second"))))
}

func TestMatch_SameTagOtherKindGoesToFallback(t *testing.T) {
	t.Parallel()

	impostor := MustDefine(Spec{Tag: kNotFound.Tag(), Template: "other $thing"})
	tbl := MustExhaustive(MustUnion(kNotFound), name("fallback"), On(kNotFound, name("nf")))

	assert.Equal(t, "nf", Match(kNotFound.New(Args{"id": "1"}), tbl))
	assert.Equal(t, "fallback", Match(impostor.New(Args{"thing": "x"}), tbl))
	assert.Equal(t, "fallback", MatchPartial(impostor.New(nil), name("fallback"), On(kNotFound, name("nf"))))
	assert.Equal(t, "fallback", Match[string]((*instance)(nil), tbl))
}
