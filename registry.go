package rulekit

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"time"
)

// Constructor builds a rule from target fields and positional string
// arguments, as produced by the rule-string grammar. Implementations
// convert arguments to their parameter types and return a
// *ConfigurationError when they do not fit.
type Constructor func(fields []string, args ...string) (Rule, error)

// Registry maps rule names to constructors. Built-in rules are installed
// at construction; Extend adds project-specific rules during setup. A
// registry must be treated as immutable once validation starts: Extend is
// not safe to call concurrently with Validate.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry returns a registry pre-loaded with every built-in rule.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]Constructor, len(builtins))}
	maps.Copy(r.ctors, builtins)
	return r
}

// Extend registers a constructor under a name, replacing any previous
// registration with that name.
func (r *Registry) Extend(name string, ctor Constructor) {
	r.ctors[name] = ctor
}

// Resolve returns the constructor registered under a name.
func (r *Registry) Resolve(name string) (Constructor, error) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, &ConfigurationError{Rule: name, Detail: "not registered", Err: ErrUnknownRule}
	}
	return ctor, nil
}

// Names returns every registered rule name, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.ctors))
}

// builtins is the generated lookup table binding grammar names to typed
// constructors. Argument conversion lives in the small adapters below so
// each rule constructor keeps its natural Go signature.
var builtins = map[string]Constructor{
	"required":      noArgs("required", Required),
	"exists":        noArgs("exists", Exists),
	"accepted":      noArgs("accepted", Accepted),
	"truthy":        noArgs("truthy", Truthy),
	"none":          noArgs("none", IsNil),
	"numeric":       noArgs("numeric", Numeric),
	"string":        noArgs("string", IsString),
	"json":          noArgs("json", JSON),
	"email":         noArgs("email", Email),
	"ip":            noArgs("ip", IP),
	"uuid":          noArgs("uuid", UUID),
	"date":          noArgs("date", Date),
	"before_today":  noArgs("before_today", BeforeToday),
	"after_today":   noArgs("after_today", AfterToday),
	"is_past":       zoned("is_past", IsPast, IsPastIn),
	"is_future":     zoned("is_future", IsFuture, IsFutureIn),
	"timezone":      makeTimezone,
	"active_domain": makeActiveDomain,
	"equals":        oneString("equals", func(fields []string, arg string, opts ...Option) Rule { return Equals(fields, arg, opts...) }),
	"contains":      oneString("contains", func(fields []string, arg string, opts ...Option) Rule { return Contains(fields, arg, opts...) }),
	"phone":         oneString("phone", Phone),
	"matches":       makeMatches,
	"greater_than":  oneNumber("greater_than", GreaterThan),
	"less_than":     oneNumber("less_than", LessThan),
	"in_range":      numberRange("in_range", InRange),
	"length":        intRange("length", Length),
	"is_in":         makeIsIn,
}

func badArgs(name, detail string) error {
	return &ConfigurationError{Rule: name, Detail: detail, Err: ErrInvalidArgument}
}

func noArgs(name string, ctor func([]string, ...Option) Rule) Constructor {
	return func(fields []string, args ...string) (Rule, error) {
		if len(args) != 0 {
			return Rule{}, badArgs(name, "takes no arguments")
		}
		return ctor(fields), nil
	}
}

func oneString(name string, ctor func([]string, string, ...Option) Rule) Constructor {
	return func(fields []string, args ...string) (Rule, error) {
		if len(args) != 1 {
			return Rule{}, badArgs(name, "expects exactly one argument")
		}
		return ctor(fields, args[0]), nil
	}
}

func oneNumber(name string, ctor func([]string, float64, ...Option) Rule) Constructor {
	return func(fields []string, args ...string) (Rule, error) {
		if len(args) != 1 {
			return Rule{}, badArgs(name, "expects exactly one numeric argument")
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Rule{}, badArgs(name, fmt.Sprintf("argument %q is not numeric", args[0]))
		}
		return ctor(fields, v), nil
	}
}

func numberRange(name string, ctor func([]string, float64, float64, ...Option) Rule) Constructor {
	return func(fields []string, args ...string) (Rule, error) {
		if len(args) != 2 {
			return Rule{}, badArgs(name, "expects a min and max argument")
		}
		min, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Rule{}, badArgs(name, fmt.Sprintf("min %q is not numeric", args[0]))
		}
		max, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Rule{}, badArgs(name, fmt.Sprintf("max %q is not numeric", args[1]))
		}
		return ctor(fields, min, max), nil
	}
}

func intRange(name string, ctor func([]string, int, int, ...Option) Rule) Constructor {
	return func(fields []string, args ...string) (Rule, error) {
		if len(args) != 2 {
			return Rule{}, badArgs(name, "expects a min and max argument")
		}
		min, err := strconv.Atoi(args[0])
		if err != nil {
			return Rule{}, badArgs(name, fmt.Sprintf("min %q is not an integer", args[0]))
		}
		max, err := strconv.Atoi(args[1])
		if err != nil {
			return Rule{}, badArgs(name, fmt.Sprintf("max %q is not an integer", args[1]))
		}
		return ctor(fields, min, max), nil
	}
}

// zoned adapts the past/future pair: no argument means UTC, one argument
// names an IANA timezone validated up front.
func zoned(name string, plain func([]string, ...Option) Rule, in func([]string, string, ...Option) Rule) Constructor {
	return func(fields []string, args ...string) (Rule, error) {
		switch len(args) {
		case 0:
			return plain(fields), nil
		case 1:
			if _, err := time.LoadLocation(args[0]); err != nil {
				return Rule{}, badArgs(name, fmt.Sprintf("unknown timezone %q", args[0]))
			}
			return in(fields, args[0]), nil
		default:
			return Rule{}, badArgs(name, "expects at most one timezone argument")
		}
	}
}

func makeTimezone(fields []string, args ...string) (Rule, error) {
	if len(args) != 0 {
		return Rule{}, badArgs("timezone", "takes no arguments")
	}
	return Timezone(fields, nil), nil
}

func makeActiveDomain(fields []string, args ...string) (Rule, error) {
	if len(args) != 0 {
		return Rule{}, badArgs("active_domain", "takes no arguments")
	}
	return ActiveDomain(fields, nil), nil
}

func makeMatches(fields []string, args ...string) (Rule, error) {
	if len(args) != 1 {
		return Rule{}, badArgs("matches", "expects exactly one pattern argument")
	}
	if _, err := regexp.Compile(args[0]); err != nil {
		return Rule{}, badArgs("matches", fmt.Sprintf("invalid pattern %q: %v", args[0], err))
	}
	return Matches(fields, args[0]), nil
}

func makeIsIn(fields []string, args ...string) (Rule, error) {
	if len(args) == 0 {
		return Rule{}, badArgs("is_in", "expects at least one choice")
	}
	choices := make([]any, len(args))
	for i, arg := range args {
		choices[i] = arg
	}
	return IsIn(fields, choices), nil
}
