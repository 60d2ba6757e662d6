// Package ordered provides an insertion-ordered string-keyed map that
// marshals to JSON with its keys in the order they were set. Field and widget
// dictionaries rely on it so remote clients receive keys in a stable,
// meaningful order (title first, widget last) instead of Go's randomized map
// iteration.
package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is a string-keyed map that remembers insertion order. The zero value is
// not usable; construct instances with NewMap. Setting an existing key
// replaces its value in place without changing its position.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Set stores value under key, appending the key when unseen.
func (m *Map) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether it is present.
func (m *Map) Get(key string) (any, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether key has been set.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of stored keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// MarshalJSON emits the map as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyPayload, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("ordered: marshal key %q: %w", key, err)
		}
		valuePayload, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("ordered: marshal value for %q: %w", key, err)
		}
		buf.Write(keyPayload)
		buf.WriteByte(':')
		buf.Write(valuePayload)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
