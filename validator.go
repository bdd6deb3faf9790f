package rulekit

// Validator evaluates rule sources against records. It carries only a
// registry, so one validator can be shared for the life of the process;
// all per-call state lives in the ErrorBag it returns.
type Validator struct {
	registry *Registry
}

// New returns a validator backed by the given registry, or a fresh
// default registry when nil.
func New(registry *Registry) *Validator {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Validator{registry: registry}
}

// Registry exposes the validator's registry for setup-time extension.
func (v *Validator) Registry() *Registry { return v.registry }

// Extend registers a project-specific rule constructor on the validator's
// registry. Call during setup, never concurrently with Validate.
func (v *Validator) Extend(name string, ctor Constructor) {
	v.registry.Extend(name, ctor)
}

// Rule builds a rule by registry name with positional string arguments.
// This is the dispatch surface behind the string grammar, usable directly:
//
//	r, err := v.Rule("greater_than", []string{"age"}, "18")
func (v *Validator) Rule(name string, fields []string, args ...string) (Rule, error) {
	ctor, err := v.registry.Resolve(name)
	if err != nil {
		return Rule{}, err
	}
	return ctor(fields, args...)
}

// Validate evaluates every source in order against the record and returns
// the aggregated ErrorBag. The record is never mutated. Evaluation is
// deterministic: identical inputs produce identical bags.
//
// A non-nil error means no bag was produced: either a *ConfigurationError
// (malformed rule declaration, detected before any rule runs) or a
// *RaisedError (a failing rule carried a raise policy, aborting the call).
func (v *Validator) Validate(rec map[string]any, sources ...Source) (*ErrorBag, error) {
	nodes, err := resolveSources(v.registry, sources)
	if err != nil {
		return nil, err
	}
	bag := NewErrorBag()
	for _, n := range nodes {
		if err := n.eval(rec, bag); err != nil {
			return nil, err
		}
	}
	return bag, nil
}

// resolveSources flattens sources into evaluable nodes, surfacing any
// configuration error before data is touched.
func resolveSources(reg *Registry, sources []Source) ([]node, error) {
	var out []node
	for _, src := range sources {
		nodes, err := src.nodes(reg)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}
