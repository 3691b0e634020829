package rulekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit"
)

func TestGroup_Apply(t *testing.T) {
	t.Run("passes when every child passes", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value("hello"), "greeting",
			rulekit.Use(rulekit.NonEmptyString),
			rulekit.Use(rulekit.MinLen(3)),
			rulekit.Use(rulekit.MaxLen(10)),
		)
		assert.True(t, group.Apply())
		assert.Equal(t, "greeting", group.Label())
	})

	t.Run("fails with the first failing child's message", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value("hi"), "greeting",
			rulekit.Use(rulekit.NonEmptyString),
			rulekit.Use(rulekit.MinLen(5)),
			rulekit.Use(rulekit.MaxLen(1)),
		)
		require.False(t, group.Apply())
		assert.Equal(t, "must have a length of at least 5", group.ErrorMessage())
	})

	t.Run("short-circuits after the first failure", func(t *testing.T) {
		evaluated := 0
		counting := func(pass bool) rulekit.Builder {
			return func(target rulekit.Target, label string) rulekit.Rule {
				return &rulekit.Check{
					Target: target,
					Field:  label,
					Test: func(any) bool {
						evaluated++
						return pass
					},
				}
			}
		}

		group := rulekit.NewGroup(rulekit.Value("x"), "field",
			rulekit.Use(counting(true)),
			rulekit.Use(counting(false)),
			rulekit.Use(counting(true)),
		)
		require.False(t, group.Apply())
		assert.Equal(t, 2, evaluated)
	})

	t.Run("panicking child fails the group with its message", func(t *testing.T) {
		exploding := func(target rulekit.Target, label string) rulekit.Rule {
			return &rulekit.Check{
				Target:  target,
				Field:   label,
				Test:    func(any) bool { panic("boom") },
				Message: "exploded",
			}
		}

		group := rulekit.NewGroup(rulekit.Value("x"), "field",
			rulekit.Use(exploding),
			rulekit.Use(rulekit.NonEmptyString),
		)
		require.False(t, group.Apply())
		assert.Equal(t, "exploded", group.ErrorMessage())
	})

	t.Run("groups nest arbitrarily", func(t *testing.T) {
		inner := func(target rulekit.Target, label string) rulekit.Rule {
			return rulekit.NewGroup(target, label,
				rulekit.Use(rulekit.NonEmptyString),
				rulekit.Use(rulekit.MinLen(3)),
			)
		}
		outer := rulekit.NewGroup(rulekit.Value("hey"), "field",
			rulekit.Use(inner),
			rulekit.Use(rulekit.MaxLen(10)),
		)
		assert.True(t, outer.Apply())
	})

	t.Run("a passing group after a failure reports the default message", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value("hello"), "field",
			rulekit.Use(rulekit.NonEmptyString),
		)
		require.True(t, group.Apply())
		assert.Equal(t, "data is invalid", group.ErrorMessage())
	})
}

func TestGroup_Options(t *testing.T) {
	t.Run("message override replaces the child's message", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value(""), "name",
			rulekit.UseWith(rulekit.NonEmptyString, rulekit.Options{"message": "name is required"}),
		)
		require.False(t, group.Apply())
		assert.Equal(t, "name is required", group.ErrorMessage())
	})

	t.Run("halt marks the child as short-circuiting", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value(""), "name",
			rulekit.UseWith(rulekit.NonEmptyString, rulekit.Options{"halt": true}),
		)
		require.False(t, group.Apply())
	})
}

func TestGroup_MalformedSpecs(t *testing.T) {
	specError := func(t *testing.T, fn func()) *rulekit.SpecError {
		t.Helper()
		var spec *rulekit.SpecError
		func() {
			defer func() {
				rec := recover()
				require.NotNil(t, rec, "expected a panic")
				var ok bool
				spec, ok = rec.(*rulekit.SpecError)
				require.True(t, ok, "expected *rulekit.SpecError, got %T", rec)
			}()
			fn()
		}()
		return spec
	}

	t.Run("nil constructor", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value("x"), "field", rulekit.Use(nil))
		err := specError(t, func() { group.Apply() })
		assert.Contains(t, err.Error(), "has no constructor")
	})

	t.Run("zero spec value", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value("x"), "field", rulekit.Spec{})
		specError(t, func() { group.Apply() })
	})

	t.Run("constructor building a nil rule", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value("x"), "field",
			rulekit.Use(func(rulekit.Target, string) rulekit.Rule { return nil }),
		)
		err := specError(t, func() { group.Apply() })
		assert.Contains(t, err.Error(), "nil rule")
	})

	t.Run("unknown option key", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value("x"), "field",
			rulekit.UseWith(rulekit.NonEmptyString, rulekit.Options{"min_length": 3}),
		)
		err := specError(t, func() { group.Apply() })
		assert.Contains(t, err.Error(), "unknown option")
	})

	t.Run("mistyped option value", func(t *testing.T) {
		group := rulekit.NewGroup(rulekit.Value("x"), "field",
			rulekit.UseWith(rulekit.NonEmptyString, rulekit.Options{"message": 42}),
		)
		err := specError(t, func() { group.Apply() })
		assert.Contains(t, err.Error(), "wants a string")
	})

	t.Run("panics regardless of the target value", func(t *testing.T) {
		for _, target := range []rulekit.Target{
			rulekit.Value("valid string"),
			rulekit.Value(nil),
			rulekit.Deferred(func() any { return 42 }),
		} {
			group := rulekit.NewGroup(target, "field", rulekit.Use(nil))
			specError(t, func() { group.Apply() })
		}
	})

	t.Run("spec error escapes a validation pass", func(t *testing.T) {
		v := rulekit.NewFunc(func() ([]rulekit.Rule, error) {
			return []rulekit.Rule{
				rulekit.NewGroup(rulekit.Value("x"), "field", rulekit.Use(nil)),
			}, nil
		})
		specError(t, func() { v.Validate() })
	})
}
