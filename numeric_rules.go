package rulekit

import "fmt"

// Numeric comparison rules. These evaluate each wildcard-expanded element
// individually, failing once per violating element under the literal path.

// Numeric validates that the value is a number or a numeric string.
func Numeric(fields []string, opts ...Option) Rule {
	return newRule("numeric", fields, true,
		func(value any, _ bool) bool {
			_, ok := asFloat(value)
			return ok
		},
		func(field string) string { return field + " must be a numeric" },
		func(field string) string { return field + " must not be a numeric" },
		opts)
}

// GreaterThan validates that the value is strictly greater than limit.
func GreaterThan(fields []string, limit float64, opts ...Option) Rule {
	return newRule("greater_than", fields, true,
		func(value any, _ bool) bool {
			f, ok := asFloat(value)
			return ok && f > limit
		},
		func(field string) string {
			return fmt.Sprintf("%s must be greater than %v", field, limit)
		},
		func(field string) string {
			return fmt.Sprintf("%s must not be greater than %v", field, limit)
		},
		opts)
}

// LessThan validates that the value is strictly less than limit.
func LessThan(fields []string, limit float64, opts ...Option) Rule {
	return newRule("less_than", fields, true,
		func(value any, _ bool) bool {
			f, ok := asFloat(value)
			return ok && f < limit
		},
		func(field string) string {
			return fmt.Sprintf("%s must be less than %v", field, limit)
		},
		func(field string) string {
			return fmt.Sprintf("%s must not be less than %v", field, limit)
		},
		opts)
}

// InRange validates that the value lies in [min, max].
func InRange(fields []string, min, max float64, opts ...Option) Rule {
	return newRule("in_range", fields, true,
		func(value any, _ bool) bool {
			f, ok := asFloat(value)
			return ok && f >= min && f <= max
		},
		func(field string) string {
			return fmt.Sprintf("%s must be between %v and %v", field, min, max)
		},
		func(field string) string {
			return fmt.Sprintf("%s must not be between %v and %v", field, min, max)
		},
		opts)
}

// Length validates that the value's length lies in [min, max]: elements
// for sequences and mappings, characters of the string form otherwise.
func Length(fields []string, min, max int, opts ...Option) Rule {
	return newRule("length", fields, true,
		func(value any, _ bool) bool {
			n := valueLen(value)
			return n >= min && n <= max
		},
		func(field string) string {
			return fmt.Sprintf("%s length must be between %d and %d", field, min, max)
		},
		func(field string) string {
			return fmt.Sprintf("%s length must not be between %d and %d", field, min, max)
		},
		opts)
}
