package rulekit

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// String and structure rules. These evaluate each wildcard-expanded
// element individually.

// IsString validates that the value is a string.
func IsString(fields []string, opts ...Option) Rule {
	return newRule("string", fields, true,
		func(value any, _ bool) bool {
			_, ok := value.(string)
			return ok
		},
		func(field string) string { return field + " must be a string" },
		func(field string) string { return field + " must not be a string" },
		opts)
}

// JSON validates that a string value parses as JSON. Numbers and booleans
// pass (their literal form is valid JSON); other types fail.
func JSON(fields []string, opts ...Option) Rule {
	return newRule("json", fields, true,
		func(value any, _ bool) bool {
			switch v := value.(type) {
			case string:
				return json.Valid([]byte(v))
			case []byte:
				return json.Valid(v)
			case bool, int, int8, int16, int32, int64,
				uint, uint8, uint16, uint32, uint64, float32, float64:
				return true
			default:
				return false
			}
		},
		func(field string) string { return field + " must be json" },
		func(field string) string { return field + " must not be json" },
		opts)
}

// Contains validates that a string value contains the needle as a
// substring, or that a sequence value contains it as an element.
func Contains(fields []string, needle any, opts ...Option) Rule {
	return newRule("contains", fields, true,
		func(value any, _ bool) bool {
			switch v := value.(type) {
			case string:
				s, ok := needle.(string)
				return ok && strings.Contains(v, s)
			case []any:
				for _, elem := range v {
					if looseEqual(elem, needle) {
						return true
					}
				}
				return false
			default:
				return false
			}
		},
		func(field string) string {
			return fmt.Sprintf("%s must contain %v", field, needle)
		},
		func(field string) string {
			return fmt.Sprintf("%s must not contain %v", field, needle)
		},
		opts)
}

// IsIn validates that the value equals one of the allowed choices.
func IsIn(fields []string, choices []any, opts ...Option) Rule {
	rendered := renderChoices(choices)
	return newRule("is_in", fields, true,
		func(value any, _ bool) bool {
			for _, choice := range choices {
				if looseEqual(value, choice) {
					return true
				}
			}
			return false
		},
		func(field string) string {
			return fmt.Sprintf("%s must contain an element in %s", field, rendered)
		},
		func(field string) string {
			return fmt.Sprintf("%s must not contain an element in %s", field, rendered)
		},
		opts)
}

func renderChoices(choices []any) string {
	parts := make([]string, len(choices))
	for i, choice := range choices {
		parts[i] = fmt.Sprint(choice)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Matches validates a string value against a regular expression. The
// pattern is compiled at construction and panics when invalid, matching
// regexp.MustCompile; the string grammar validates patterns up front and
// reports a ConfigurationError instead.
func Matches(fields []string, pattern string, opts ...Option) Rule {
	re := regexp.MustCompile(pattern)
	return newRule("matches", fields, true,
		func(value any, _ bool) bool {
			s, ok := value.(string)
			return ok && re.MatchString(s)
		},
		func(field string) string {
			return fmt.Sprintf("%s must match pattern %s", field, pattern)
		},
		func(field string) string {
			return fmt.Sprintf("%s must not match pattern %s", field, pattern)
		},
		opts)
}
