// Package rulekit is a declarative validation engine for nested records.
// Given a record (a nested map) and a set of composable rules it reports
// which field paths violate which constraints as an ordered ErrorBag of
// human-readable messages.
//
// Field paths use dot notation and may contain "*" wildcard segments that
// address every element of a sequence ("user.addresses.*.id"). Rules are
// pure values built by constructor functions; combinators (When, DoesNot,
// Isnt, OneOf) compose them as data, and rule sets can equally be declared
// as compact strings ("required|greater_than:18") resolved through an
// extensible registry.
//
// # Architecture
//
// Each source file groups a family of built-in rules for a specific domain
// (basic_rules.go, numeric_rules.go, date_rules.go, ...). Every exported
// rule function constructs and returns a Rule value; there is no hidden
// global state, so rules can be built once and reused across goroutines.
// The only long-lived component is the Registry, which must be extended
// during setup, before validation starts.
//
// Core building blocks:
//   - Rule      – a named predicate bound to target field paths
//   - Source    – anything Validate accepts: rules, combinators, Fields
//     maps, enclosed providers
//   - Registry  – the name-to-constructor table behind the string grammar
//   - ErrorBag  – ordered field-to-messages output of one Validate call
//
// # Usage
//
//	v := rulekit.New(nil)
//	bag, err := v.Validate(record,
//	    rulekit.Required([]string{"user.email"}),
//	    rulekit.InRange([]string{"user.age"}, 18, 99),
//	    rulekit.Fields{"user.name": "required|length:1..50"},
//	)
//	if err != nil {
//	    // *ConfigurationError or *RaisedError
//	}
//	if bag.Any() {
//	    // bag.All() is the map[string][]string boundary shape
//	}
//
// # Error Handling
//
// Normal validation failures are never returned as errors: they aggregate
// into the ErrorBag. Validate returns a non-nil error only for a
// *ConfigurationError (malformed rule declaration, detected before any
// data is evaluated) or a *RaisedError (a failing rule constructed with
// WithRaise or WithRaiseFor, which aborts the call).
//
// # Performance Considerations
//
// Evaluation is a single synchronous pass with no I/O of its own. Rules
// whose predicates consult external systems (ActiveDomain) accept the
// lookup as a plain function so callers control batching and caching.
package rulekit
