package rulekit

import "strings"

// Combinators are data: each wraps rule sources into a node the validator
// interprets like any other rule. Building one performs no evaluation.

// WhenClause is a conditional combinator waiting for its body.
type WhenClause struct {
	condition Source
	inverted  bool
}

// When gates a rule body on a condition producing no errors. The
// condition is itself a rule or combinator; its own errors are always
// discarded, never surfaced.
func When(condition Source) *WhenClause {
	return &WhenClause{condition: condition}
}

// DoesNot gates a rule body on a condition producing errors: the body
// runs exactly when the condition fails. The negation of When.
func DoesNot(condition Source) *WhenClause {
	return &WhenClause{condition: condition, inverted: true}
}

// Then attaches the body and completes the combinator.
func (w *WhenClause) Then(body ...Source) Source {
	return conditionalSource{condition: w.condition, body: body, inverted: w.inverted}
}

type conditionalSource struct {
	condition Source
	body      []Source
	inverted  bool
}

func (c conditionalSource) nodes(reg *Registry) ([]node, error) {
	condition, err := c.condition.nodes(reg)
	if err != nil {
		return nil, err
	}
	body, err := resolveSources(reg, c.body)
	if err != nil {
		return nil, err
	}
	return []node{conditionalNode{condition: condition, body: body, inverted: c.inverted}}, nil
}

type conditionalNode struct {
	condition []node
	body      []node
	inverted  bool
}

func (n conditionalNode) eval(rec map[string]any, bag *ErrorBag) error {
	scratch := NewErrorBag()
	for _, cond := range n.condition {
		if err := cond.eval(rec, scratch); err != nil {
			return err
		}
	}
	if scratch.Any() != n.inverted {
		return nil
	}
	for _, b := range n.body {
		if err := b.eval(rec, bag); err != nil {
			return err
		}
	}
	return nil
}

// Isnt inverts pass and fail for each wrapped rule independently: a rule
// that would have passed now fails with its negated message, a rule that
// would have failed now passes silently.
func Isnt(rules ...Rule) Source {
	return isntSource(rules)
}

type isntSource []Rule

func (s isntSource) nodes(*Registry) ([]node, error) {
	nodes := make([]node, len(s))
	for i, r := range s {
		nodes[i] = invertedNode{rule: r}
	}
	return nodes, nil
}

type invertedNode struct {
	rule Rule
}

func (n invertedNode) eval(rec map[string]any, bag *ErrorBag) error {
	return n.rule.run(rec, bag, true)
}

// OneOf passes when at least one listed field resolves to an existing
// value. On failure a single combined message is keyed under the first
// field: "a or b is required" for two fields, a comma-joined list for
// more.
func OneOf(fields ...string) Source {
	return oneOfSource(fields)
}

type oneOfSource []string

func (s oneOfSource) nodes(*Registry) ([]node, error) {
	return []node{oneOfNode(s)}, nil
}

type oneOfNode []string

func (n oneOfNode) eval(rec map[string]any, bag *ErrorBag) error {
	if len(n) == 0 {
		return nil
	}
	for _, field := range n {
		for _, m := range resolvePath(rec, field) {
			if m.exists {
				return nil
			}
		}
	}
	bag.Add(n[0], oneOfMessage(n))
	return nil
}

func oneOfMessage(fields []string) string {
	switch len(fields) {
	case 1:
		return fields[0] + " is required"
	case 2:
		return fields[0] + " or " + fields[1] + " is required"
	default:
		return strings.Join(fields, ", ") + " is required"
	}
}
