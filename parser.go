package rulekit

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Fields declares rule sets as data: a mapping from field path to a
// pipe-separated rule string, expanded per field into the equivalent
// constructed rules.
//
//	rulekit.Fields{
//	    "user.age":  "required|greater_than:18",
//	    "user.name": "required|length:1..50",
//	}
type Fields map[string]string

// nodes expands every field's rule string. Fields are processed in sorted
// order so evaluation stays deterministic across runs.
func (f Fields) nodes(reg *Registry) ([]node, error) {
	var out []node
	for _, field := range slices.Sorted(maps.Keys(f)) {
		rules, err := parseRuleString(reg, field, f[field])
		if err != nil {
			return nil, err
		}
		for _, r := range rules {
			out = append(out, r)
		}
	}
	return out, nil
}

// parseRuleString expands one field's rule string into constructed rules
// targeting that field. Grammar: tokens separated by "|", each token
// "name" or "name:arg1,arg2"; an argument of the form "a..b" expands into
// the two positional arguments a and b.
func parseRuleString(reg *Registry, field, expr string) ([]Rule, error) {
	var rules []Rule
	for _, token := range strings.Split(expr, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, &ConfigurationError{
				Detail: fmt.Sprintf("empty rule token in %q", expr),
				Err:    ErrInvalidRuleString,
			}
		}
		name, rawArgs, hasArgs := strings.Cut(token, ":")
		name = strings.TrimSpace(name)
		ctor, err := reg.Resolve(name)
		if err != nil {
			return nil, err
		}
		var args []string
		if hasArgs {
			args = splitArgs(rawArgs)
		}
		rule, err := ctor([]string{field}, args...)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// splitArgs splits comma-separated arguments and expands the "a..b" range
// list form ("length:1..10" ≡ "length:1,10").
func splitArgs(raw string) []string {
	var args []string
	for _, arg := range strings.Split(raw, ",") {
		arg = strings.TrimSpace(arg)
		if lo, hi, found := strings.Cut(arg, ".."); found && lo != "" && hi != "" {
			args = append(args, lo, hi)
			continue
		}
		args = append(args, arg)
	}
	return args
}
