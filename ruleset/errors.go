package ruleset

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .yaml, .yml, or .json.
	ErrUnsupportedFormat = errors.New("ruleset: unsupported file format")

	// ErrInvalidRuleSet is returned when the file parses but is not a flat
	// mapping from field path to rule string.
	ErrInvalidRuleSet = errors.New("ruleset: invalid rule set")
)
