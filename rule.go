package rulekit

// Source is anything Validate can evaluate: a Rule, a combinator node, a
// Fields rule-string map, or an enclosed RuleProvider. Sources resolve
// themselves into evaluable nodes against a registry, so configuration
// problems surface before any data is touched.
type Source interface {
	nodes(reg *Registry) ([]node, error)
}

// node is a compiled, registry-independent evaluable unit.
type node interface {
	eval(rec map[string]any, bag *ErrorBag) error
}

// Rule binds a named predicate to one or more target field paths together
// with per-field message overrides and a raise policy. Rules are pure
// values with no mutable state: construct once, reuse across calls and
// goroutines.
type Rule struct {
	name       string
	fields     []string
	messages   map[string]string
	raiseAll   bool
	raiseKinds map[string]error

	// perElement controls the wildcard contract: when true the predicate
	// tests every expanded match individually; when false the resolved
	// collection is tested as one value. Both report failures under the
	// literal path. Each built-in documents its mode.
	perElement bool

	check   func(value any, exists bool) bool
	message func(field string) string
	negated func(field string) string
}

// Name returns the registry name of the rule.
func (r Rule) Name() string { return r.name }

// Option configures a rule at construction time.
type Option func(*Rule)

// WithMessages overrides the rendered message for specific field paths.
// Overrides are used verbatim, replacing the default template entirely.
func WithMessages(messages map[string]string) Option {
	return func(r *Rule) { r.messages = messages }
}

// WithRaise converts this rule's first failure into a *RaisedError
// returned from Validate, aborting the whole call.
func WithRaise() Option {
	return func(r *Rule) { r.raiseAll = true }
}

// WithRaiseFor raises only when the given field fails; the raised error
// unwraps to kind, so errors.Is(err, kind) holds. Failures on other
// fields keep aggregating normally.
func WithRaiseFor(field string, kind error) Option {
	return func(r *Rule) {
		if r.raiseKinds == nil {
			r.raiseKinds = make(map[string]error)
		}
		r.raiseKinds[field] = kind
	}
}

// newRule assembles a rule and applies its options.
func newRule(name string, fields []string, perElement bool, check func(any, bool) bool, message, negated func(string) string, opts []Option) Rule {
	r := Rule{
		name:       name,
		fields:     fields,
		perElement: perElement,
		check:      check,
		message:    message,
		negated:    negated,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r Rule) nodes(*Registry) ([]node, error) {
	return []node{r}, nil
}

// eval runs the rule against a record, appending failures to the bag. A
// non-nil error is a raised failure that aborts validation.
func (r Rule) eval(rec map[string]any, bag *ErrorBag) error {
	return r.run(rec, bag, false)
}

// run is the shared evaluation path; inverted flips pass and fail per
// match, which is how Isnt reuses the rule machinery.
func (r Rule) run(rec map[string]any, bag *ErrorBag, inverted bool) error {
	for _, field := range r.fields {
		for _, pass := range r.outcomes(rec, field) {
			if pass != inverted {
				continue
			}
			message := r.render(field, inverted)
			if err := r.raised(field, message); err != nil {
				return err
			}
			bag.Add(field, message)
		}
	}
	return nil
}

// outcomes resolves one field path and applies the predicate per the
// rule's wildcard mode.
func (r Rule) outcomes(rec map[string]any, field string) []bool {
	matches := resolvePath(rec, field)
	if r.perElement {
		out := make([]bool, len(matches))
		for i, m := range matches {
			out[i] = r.check(m.value, m.exists)
		}
		return out
	}
	value, exists := collapse(matches)
	return []bool{r.check(value, exists)}
}

// collapse merges wildcard matches into a single value for
// whole-collection rules: one match keeps its value, several become the
// ordered sequence of matched values.
func collapse(matches []resolvedField) (any, bool) {
	if len(matches) == 1 {
		return matches[0].value, matches[0].exists
	}
	values := make([]any, 0, len(matches))
	exists := false
	for _, m := range matches {
		values = append(values, m.value)
		exists = exists || m.exists
	}
	return values, exists
}

func (r Rule) render(field string, inverted bool) string {
	if override, ok := r.messages[field]; ok {
		return override
	}
	if inverted && r.negated != nil {
		return r.negated(field)
	}
	return r.message(field)
}

func (r Rule) raised(field, message string) error {
	if r.raiseAll {
		return &RaisedError{Field: field, Message: message}
	}
	if kind, ok := r.raiseKinds[field]; ok {
		return &RaisedError{Field: field, Message: message, Kind: kind}
	}
	return nil
}
