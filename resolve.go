package rulekit

import "strings"

// wildcard is the path segment addressing every element of a sequence.
const wildcard = "*"

// resolvedField is one outcome of resolving a field path against a record.
// Wildcard expansion keeps the literal path as written: error messages
// always address "user.addresses.*.id", never an index-substituted form.
type resolvedField struct {
	path   string
	value  any
	exists bool
}

// resolvePath walks a dot-separated path through a nested record.
//
// A missing key stops the walk and reports non-existence under the original
// full path, not the prefix that failed. A present key holding nil still
// counts as existing: absence is about the key, not emptiness of the value.
// A "*" segment expects a []any sequence and resolves the remaining
// segments against every element; an empty or absent sequence yields a
// single non-existent result keyed by the literal wildcard path.
func resolvePath(rec map[string]any, path string) []resolvedField {
	return resolveSegments(rec, strings.Split(path, "."), path)
}

func resolveSegments(current any, segments []string, full string) []resolvedField {
	if len(segments) == 0 {
		return []resolvedField{{path: full, value: current, exists: true}}
	}

	if segments[0] == wildcard {
		seq, ok := current.([]any)
		if !ok || len(seq) == 0 {
			return []resolvedField{{path: full}}
		}
		out := make([]resolvedField, 0, len(seq))
		for _, elem := range seq {
			out = append(out, resolveSegments(elem, segments[1:], full)...)
		}
		return out
	}

	container, ok := current.(map[string]any)
	if !ok {
		return []resolvedField{{path: full}}
	}
	value, ok := container[segments[0]]
	if !ok {
		return []resolvedField{{path: full}}
	}
	return resolveSegments(value, segments[1:], full)
}
