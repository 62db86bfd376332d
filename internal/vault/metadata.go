// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vault

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field is a single metadata entry. Values are kept as whatever YAML
// decoded them to (strings, lists), so category-specific extras like
// task lists survive a parse/serialize round trip.
type Field struct {
	Key   string
	Value interface{}
}

// Metadata is the ordered key/value header of a note. It is always
// parsed and re-serialized wholesale; individual fields are never
// patched in place inside the file text.
type Metadata struct {
	fields []Field
}

// Set updates an existing key in place or appends a new one.
func (m *Metadata) Set(key string, value interface{}) {
	for i := range m.fields {
		if m.fields[i].Key == key {
			m.fields[i].Value = value
			return
		}
	}
	m.fields = append(m.fields, Field{Key: key, Value: value})
}

// Get returns the raw value for a key.
func (m *Metadata) Get(key string) (interface{}, bool) {
	for _, f := range m.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// GetString returns the value for a key if it is a scalar string.
func (m *Metadata) GetString(key string) string {
	v, ok := m.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Keys returns the metadata keys in order.
func (m *Metadata) Keys() []string {
	keys := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Len returns the number of metadata fields.
func (m *Metadata) Len() int {
	return len(m.fields)
}

// MarshalYAML renders the metadata as a mapping that preserves field order.
func (m Metadata) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range m.fields {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: f.Key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("failed to encode metadata value %q: %w", f.Key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping node keeping the on-disk field order.
func (m *Metadata) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("metadata block must be a mapping, got %v", node.Kind)
	}
	m.fields = nil
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		var value interface{}
		if err := valNode.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode metadata value %q: %w", keyNode.Value, err)
		}
		m.fields = append(m.fields, Field{Key: keyNode.Value, Value: value})
	}
	return nil
}
