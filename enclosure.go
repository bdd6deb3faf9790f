package rulekit

// RuleProvider supplies a reusable, ordered bundle of rule sources that
// can be validated as one unit. Any value type may implement it; no
// embedding or registration is needed.
//
//	type SignupRules struct{}
//
//	func (SignupRules) Rules() []rulekit.Source {
//	    return []rulekit.Source{
//	        rulekit.Required([]string{"username", "email"}),
//	        rulekit.Accepted([]string{"terms"}),
//	    }
//	}
type RuleProvider interface {
	Rules() []Source
}

// Enclose adapts a RuleProvider for Validate. The provider's rules are
// expanded in order, exactly as if they had been passed individually.
func Enclose(p RuleProvider) Source {
	return enclosureSource{provider: p}
}

type enclosureSource struct {
	provider RuleProvider
}

func (e enclosureSource) nodes(reg *Registry) ([]node, error) {
	return resolveSources(reg, e.provider.Rules())
}
