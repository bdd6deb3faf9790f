package rulekit

import "fmt"

// Presence and identity rules. All rules in this file evaluate a
// wildcard-expanded path as one collection under the literal path: a
// missing "user.addresses.*.id" fails once, without enumerating elements.

// Required validates that every target path resolves to an existing key.
// A present key holding nil or an empty value still passes; emptiness is
// the business of other rules.
func Required(fields []string, opts ...Option) Rule {
	return newRule("required", fields, false,
		func(_ any, exists bool) bool { return exists },
		func(field string) string {
			return fmt.Sprintf("The %s field is required.", field)
		},
		func(field string) string {
			return fmt.Sprintf("The %s field must not be present.", field)
		},
		opts)
}

// Exists validates that the target path resolves to an existing key. Same
// predicate as Required with a message suited for conditional gating.
func Exists(fields []string, opts ...Option) Rule {
	return newRule("exists", fields, false,
		func(_ any, exists bool) bool { return exists },
		func(field string) string { return field + " must exist" },
		func(field string) string { return field + " must not exist" },
		opts)
}

// Accepted validates consent-style inputs: yes, on, 1 or true.
func Accepted(fields []string, opts ...Option) Rule {
	return newRule("accepted", fields, false,
		func(value any, _ bool) bool {
			switch v := value.(type) {
			case bool:
				return v
			case string:
				return v == "yes" || v == "on" || v == "1" || v == "true"
			default:
				f, ok := asFloat(value)
				return ok && f == 1
			}
		},
		func(field string) string { return field + " must be yes, on, 1 or true" },
		func(field string) string { return field + " must not be yes, on, 1 or true" },
		opts)
}

// Truthy validates that the value is truthy in the dynamic-language sense:
// non-nil, non-false, non-zero, non-empty.
func Truthy(fields []string, opts ...Option) Rule {
	return newRule("truthy", fields, false,
		func(value any, _ bool) bool { return isTruthy(value) },
		func(field string) string { return field + " must be a truthy value" },
		func(field string) string { return field + " must not be a truthy value" },
		opts)
}

// IsNil validates that the key exists and holds nil.
func IsNil(fields []string, opts ...Option) Rule {
	return newRule("none", fields, false,
		func(value any, exists bool) bool { return exists && value == nil },
		func(field string) string { return field + " must be null" },
		func(field string) string { return field + " must not be null" },
		opts)
}

// Equals validates that the resolved value equals the expected one.
// Numeric values compare numerically, so "25" equals 25; everything else
// compares by string form. A wildcard path compares the whole matched
// collection at once.
func Equals(fields []string, expected any, opts ...Option) Rule {
	return newRule("equals", fields, false,
		func(value any, _ bool) bool { return looseEqual(value, expected) },
		func(field string) string {
			return fmt.Sprintf("%s must be equal to %v", field, expected)
		},
		func(field string) string {
			return fmt.Sprintf("%s must not be equal to %v", field, expected)
		},
		opts)
}
