package ruleset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit"
)

// Load reads a rule-set file and returns its field-to-rule-string map.
// The format is chosen by extension: .yaml/.yml or .json.
func Load(path string) (rulekit.Fields, error) {
	var parse func([]byte) (rulekit.Fields, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".json":
		parse = ParseJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read %s: %w", path, err)
	}
	return parse(data)
}

// ParseYAML parses YAML rule-set content.
func ParseYAML(data []byte) (rulekit.Fields, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	return toFields(raw)
}

// ParseJSON parses JSON rule-set content.
func ParseJSON(data []byte) (rulekit.Fields, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	return toFields(raw)
}

// toFields checks the parsed shape: every value must be a rule string.
func toFields(raw map[string]any) (rulekit.Fields, error) {
	fields := make(rulekit.Fields, len(raw))
	for field, value := range raw {
		expr, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: field %q must map to a rule string, got %T", ErrInvalidRuleSet, field, value)
		}
		fields[field] = expr
	}
	return fields, nil
}
