package rulekit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit"
)

func TestIsString(t *testing.T) {
	t.Run("string passes", func(t *testing.T) {
		bag := validate(t, map[string]any{"text": "hey"},
			rulekit.IsString([]string{"text"}))

		assert.True(t, bag.IsEmpty())
	})

	t.Run("number fails", func(t *testing.T) {
		bag := validate(t, map[string]any{"text": 1},
			rulekit.IsString([]string{"text"}))

		assert.Equal(t, map[string][]string{"text": {"text must be a string"}}, bag.All())
	})
}

func TestJSON(t *testing.T) {
	t.Run("plain word fails", func(t *testing.T) {
		bag := validate(t, map[string]any{"json": "hey"},
			rulekit.JSON([]string{"json"}))

		assert.Equal(t, map[string][]string{"json": {"json must be json"}}, bag.All())
	})

	t.Run("serialized object passes", func(t *testing.T) {
		payload, err := json.Marshal(map[string]string{"test": "key"})
		require.NoError(t, err)

		bag := validate(t, map[string]any{"json": string(payload)},
			rulekit.JSON([]string{"json"}))

		assert.True(t, bag.IsEmpty())
	})

	t.Run("dot notation", func(t *testing.T) {
		bag := validate(t, map[string]any{
			"user": map[string]any{"id": "hey"},
		}, rulekit.JSON([]string{"user.id"}))

		assert.Equal(t, map[string][]string{"user.id": {"user.id must be json"}}, bag.All())
	})

	t.Run("numbers are valid json literals", func(t *testing.T) {
		bag := validate(t, map[string]any{
			"user": map[string]any{"id": 1},
		}, rulekit.JSON([]string{"user.id"}))

		assert.True(t, bag.IsEmpty())
	})
}

func TestContains(t *testing.T) {
	t.Run("substring passes", func(t *testing.T) {
		bag := validate(t, map[string]any{"test": "this is a sentence"},
			rulekit.Contains([]string{"test"}, "this"))

		assert.True(t, bag.IsEmpty())
	})

	t.Run("missing substring fails", func(t *testing.T) {
		bag := validate(t, map[string]any{"test": "this is a not sentence"},
			rulekit.Contains([]string{"test"}, "test"))

		assert.Equal(t, map[string][]string{"test": {"test must contain test"}}, bag.All())
	})

	t.Run("sequence element passes", func(t *testing.T) {
		bag := validate(t, map[string]any{"items": []any{1, 2, 3}},
			rulekit.Contains([]string{"items"}, 2))

		assert.True(t, bag.IsEmpty())
	})
}

func TestIsIn(t *testing.T) {
	t.Run("member passes", func(t *testing.T) {
		bag := validate(t, map[string]any{"test": 1},
			rulekit.IsIn([]string{"test"}, []any{1, 2, 3}))

		assert.True(t, bag.IsEmpty())
	})

	t.Run("non-member fails with choices in message", func(t *testing.T) {
		bag := validate(t, map[string]any{"test": 1},
			rulekit.IsIn([]string{"test"}, []any{4, 2, 3}))

		assert.Equal(t, map[string][]string{
			"test": {"test must contain an element in [4, 2, 3]"},
		}, bag.All())
	})
}

func TestMatches(t *testing.T) {
	t.Run("matching value passes", func(t *testing.T) {
		bag := validate(t, map[string]any{"slug": "my-page-2"},
			rulekit.Matches([]string{"slug"}, `^[a-z0-9-]+$`))

		assert.True(t, bag.IsEmpty())
	})

	t.Run("non-matching value fails", func(t *testing.T) {
		bag := validate(t, map[string]any{"slug": "My Page"},
			rulekit.Matches([]string{"slug"}, `^[a-z0-9-]+$`))

		assert.Equal(t, map[string][]string{
			"slug": {"slug must match pattern ^[a-z0-9-]+$"},
		}, bag.All())
	})

	t.Run("invalid pattern panics like MustCompile", func(t *testing.T) {
		assert.Panics(t, func() {
			rulekit.Matches([]string{"slug"}, `([`)
		})
	})
}
