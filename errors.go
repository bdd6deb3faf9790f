package rulekit

import (
	"errors"
	"fmt"
)

// Configuration problems that can be detected before any data is evaluated.
var (
	// ErrUnknownRule is returned when a rule name is not present in the registry.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidRuleString is returned when a rule string cannot be parsed.
	ErrInvalidRuleString = errors.New("invalid rule string")

	// ErrInvalidArgument is returned when a rule argument does not fit the
	// parameter the constructor expects.
	ErrInvalidArgument = errors.New("invalid rule argument")
)

// ConfigurationError reports a malformed rule declaration: an unknown rule
// name, bad rule-string grammar, or an argument of the wrong shape. It is
// produced at construction/parse time and never ends up in an ErrorBag.
type ConfigurationError struct {
	Rule   string // rule name, empty when the token itself is malformed
	Detail string
	Err    error // one of the sentinel errors above
}

func (e *ConfigurationError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("rulekit: rule %q: %s", e.Rule, e.Detail)
	}
	return "rulekit: " + e.Detail
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// RaisedError is returned from Validate when a failing rule carries a raise
// policy. The call is aborted: no further rules run and no ErrorBag is
// produced.
type RaisedError struct {
	Field   string
	Message string
	Kind    error // caller-supplied kind from WithRaiseFor, nil for WithRaise
}

// Error returns the rendered failure message, without any prefix, so the
// raised condition reads exactly like the ErrorBag entry it replaced.
func (e *RaisedError) Error() string { return e.Message }

func (e *RaisedError) Unwrap() error { return e.Kind }
