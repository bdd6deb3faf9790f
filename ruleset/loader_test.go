package ruleset_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit"
	"github.com/dmitrymomot/rulekit/ruleset"
)

func TestLoad(t *testing.T) {
	want := rulekit.Fields{
		"user.email": "required|email",
		"user.age":   "required|greater_than:18",
		"user.name":  "length:1..50",
	}

	t.Run("yaml file", func(t *testing.T) {
		fields, err := ruleset.Load(filepath.Join("testdata", "signup.yaml"))
		require.NoError(t, err)
		assert.Equal(t, want, fields)
	})

	t.Run("json file", func(t *testing.T) {
		fields, err := ruleset.Load(filepath.Join("testdata", "signup.json"))
		require.NoError(t, err)
		assert.Equal(t, want, fields)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ruleset.Load(filepath.Join("testdata", "signup.toml"))
		assert.ErrorIs(t, err, ruleset.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ruleset.Load(filepath.Join("testdata", "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("nested values are rejected", func(t *testing.T) {
		_, err := ruleset.Load(filepath.Join("testdata", "nested.yaml"))
		assert.ErrorIs(t, err, ruleset.ErrInvalidRuleSet)
	})
}

func TestParse(t *testing.T) {
	t.Run("yaml content", func(t *testing.T) {
		fields, err := ruleset.ParseYAML([]byte("age: required|numeric\n"))
		require.NoError(t, err)
		assert.Equal(t, rulekit.Fields{"age": "required|numeric"}, fields)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ruleset.ParseYAML([]byte("age: [unclosed"))
		assert.ErrorIs(t, err, ruleset.ErrInvalidRuleSet)
	})

	t.Run("json content", func(t *testing.T) {
		fields, err := ruleset.ParseJSON([]byte(`{"age": "required|numeric"}`))
		require.NoError(t, err)
		assert.Equal(t, rulekit.Fields{"age": "required|numeric"}, fields)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ruleset.ParseJSON([]byte(`{"age":`))
		assert.ErrorIs(t, err, ruleset.ErrInvalidRuleSet)
	})
}

func TestLoadedFieldsValidate(t *testing.T) {
	fields, err := ruleset.Load(filepath.Join("testdata", "signup.yaml"))
	require.NoError(t, err)

	t.Run("valid record passes", func(t *testing.T) {
		bag, err := rulekit.New(nil).Validate(map[string]any{
			"user": map[string]any{
				"email": "user@example.com",
				"age":   30,
				"name":  "Joe",
			},
		}, fields)

		require.NoError(t, err)
		assert.True(t, bag.IsEmpty())
	})

	t.Run("violations report under dotted paths", func(t *testing.T) {
		bag, err := rulekit.New(nil).Validate(map[string]any{
			"user": map[string]any{
				"email": "nope",
				"age":   12,
				"name":  "Joe",
			},
		}, fields)

		require.NoError(t, err)
		assert.Equal(t, map[string][]string{
			"user.email": {"user.email must be a valid email address"},
			"user.age":   {"user.age must be greater than 18"},
		}, bag.All())
	})
}
