package rulekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit"
)

func TestFields_Grammar(t *testing.T) {
	t.Run("pipe separates rules for one field", func(t *testing.T) {
		bag, err := rulekit.New(nil).Validate(map[string]any{},
			rulekit.Fields{"age": "required|numeric"})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"The age field is required.",
			"age must be a numeric",
		}, bag.Get("age"))
	})

	t.Run("colon introduces positional arguments", func(t *testing.T) {
		bag, err := rulekit.New(nil).Validate(map[string]any{"age": 30},
			rulekit.Fields{"age": "in_range:25,72"})

		require.NoError(t, err)
		assert.True(t, bag.IsEmpty())
	})

	t.Run("range list syntax expands into min and max", func(t *testing.T) {
		rec := map[string]any{"name": "this is a really long string"}

		viaRange, err := rulekit.New(nil).Validate(rec,
			rulekit.Fields{"name": "length:1..10"})
		require.NoError(t, err)

		viaPair, err := rulekit.New(nil).Validate(rec,
			rulekit.Fields{"name": "length:1,10"})
		require.NoError(t, err)

		assert.Equal(t, viaPair.All(), viaRange.All())
		assert.Equal(t, []string{"name length must be between 1 and 10"}, viaRange.Get("name"))
	})

	t.Run("multi-value arguments reach list rules", func(t *testing.T) {
		bag, err := rulekit.New(nil).Validate(map[string]any{"color": "teal"},
			rulekit.Fields{"color": "is_in:red,green,blue"})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"color must contain an element in [red, green, blue]",
		}, bag.Get("color"))
	})

	t.Run("equals round-trips through the grammar", func(t *testing.T) {
		rec := map[string]any{"plan": "pro"}

		viaString, err := rulekit.New(nil).Validate(rec,
			rulekit.Fields{"plan": "equals:pro"})
		require.NoError(t, err)
		assert.True(t, viaString.IsEmpty())
	})

	t.Run("multiple fields evaluate in sorted field order", func(t *testing.T) {
		bag, err := rulekit.New(nil).Validate(map[string]any{},
			rulekit.Fields{
				"zeta":  "required",
				"alpha": "required",
			})

		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "zeta"}, bag.Fields())
	})
}

func TestFields_ConfigurationErrors(t *testing.T) {
	t.Run("unknown rule name", func(t *testing.T) {
		_, err := rulekit.New(nil).Validate(map[string]any{},
			rulekit.Fields{"age": "required|levitates"})

		var cfg *rulekit.ConfigurationError
		require.ErrorAs(t, err, &cfg)
		assert.Equal(t, "levitates", cfg.Rule)
		assert.ErrorIs(t, err, rulekit.ErrUnknownRule)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := rulekit.New(nil).Validate(map[string]any{},
			rulekit.Fields{"age": "required||numeric"})

		assert.ErrorIs(t, err, rulekit.ErrInvalidRuleString)
	})

	t.Run("non-numeric argument for a numeric rule", func(t *testing.T) {
		_, err := rulekit.New(nil).Validate(map[string]any{},
			rulekit.Fields{"age": "greater_than:old"})

		assert.ErrorIs(t, err, rulekit.ErrInvalidArgument)
	})

	t.Run("wrong argument count", func(t *testing.T) {
		_, err := rulekit.New(nil).Validate(map[string]any{},
			rulekit.Fields{"age": "in_range:10"})

		assert.ErrorIs(t, err, rulekit.ErrInvalidArgument)
	})

	t.Run("malformed regex pattern", func(t *testing.T) {
		_, err := rulekit.New(nil).Validate(map[string]any{},
			rulekit.Fields{"slug": "matches:(["})

		assert.ErrorIs(t, err, rulekit.ErrInvalidArgument)
	})

	t.Run("unknown timezone argument", func(t *testing.T) {
		_, err := rulekit.New(nil).Validate(map[string]any{},
			rulekit.Fields{"when": "is_past:Mars/Olympus_Mons"})

		assert.ErrorIs(t, err, rulekit.ErrInvalidArgument)
	})

	t.Run("arguments on a rule that takes none", func(t *testing.T) {
		_, err := rulekit.New(nil).Validate(map[string]any{},
			rulekit.Fields{"age": "required:yes"})

		assert.ErrorIs(t, err, rulekit.ErrInvalidArgument)
	})
}
