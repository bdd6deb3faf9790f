package rulekit

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// ErrorBag is the ordered field-to-messages container produced by one
// Validate call. Fields appear in the order their first message was added;
// messages within a field keep rule-evaluation order and duplicates are
// preserved. A field is present only while it holds at least one message.
type ErrorBag struct {
	order []string
	items map[string][]string
}

// NewErrorBag returns an empty bag.
func NewErrorBag() *ErrorBag {
	return &ErrorBag{items: make(map[string][]string)}
}

// Add appends a message under a field path.
func (b *ErrorBag) Add(field, message string) {
	if b.items == nil {
		b.items = make(map[string][]string)
	}
	if _, ok := b.items[field]; !ok {
		b.order = append(b.order, field)
	}
	b.items[field] = append(b.items[field], message)
}

// Get returns the messages collected for a field, nil when it has none.
func (b *ErrorBag) Get(field string) []string { return b.items[field] }

// Has reports whether a field collected at least one message.
func (b *ErrorBag) Has(field string) bool { return len(b.items[field]) > 0 }

// All returns the full field-to-messages mapping. This is the boundary
// shape consumers serialize or display.
func (b *ErrorBag) All() map[string][]string {
	out := make(map[string][]string, len(b.items))
	maps.Copy(out, b.items)
	return out
}

// First returns the earliest-failing field with its messages, or nil when
// the bag is empty.
func (b *ErrorBag) First() map[string][]string {
	if len(b.order) == 0 {
		return nil
	}
	field := b.order[0]
	return map[string][]string{field: b.items[field]}
}

// Fields returns the field paths in insertion order.
func (b *ErrorBag) Fields() []string {
	return slices.Clone(b.order)
}

// Messages returns every message in insertion order, flattened across
// fields.
func (b *ErrorBag) Messages() []string {
	var out []string
	for _, field := range b.order {
		out = append(out, b.items[field]...)
	}
	return out
}

// Amount returns the number of messages collected for one field.
func (b *ErrorBag) Amount(field string) int { return len(b.items[field]) }

// Count returns the number of fields holding at least one message.
func (b *ErrorBag) Count() int { return len(b.order) }

// Any reports whether the bag holds any message.
func (b *ErrorBag) Any() bool { return len(b.order) > 0 }

// IsEmpty reports whether the bag is empty.
func (b *ErrorBag) IsEmpty() bool { return len(b.order) == 0 }

// Merge appends an external field-to-messages mapping into the bag. Fields
// are merged in sorted order so the result is deterministic regardless of
// map iteration.
func (b *ErrorBag) Merge(items map[string][]string) {
	for _, field := range slices.Sorted(maps.Keys(items)) {
		for _, message := range items[field] {
			b.Add(field, message)
		}
	}
}

// JSON renders the bag as a JSON object preserving field insertion order,
// which encoding/json would otherwise sort away.
func (b *ErrorBag) JSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		messages, err := json.Marshal(b.items[field])
		if err != nil {
			return nil, err
		}
		buf.Write(messages)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
