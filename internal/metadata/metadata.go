// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package metadata

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Metadata is the insertion-ordered tag map of one source.
// The zero value is not usable; use New or Parse.
type Metadata struct {
	tags *orderedmap.OrderedMap[string, string]
}

// New returns empty metadata.
func New() *Metadata {
	return &Metadata{tags: orderedmap.New[string, string]()}
}

// set stores value under key. An existing key keeps its position.
func (m *Metadata) set(key, value string) {
	m.tags.Set(key, value)
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return m.tags.Len()
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, m.tags.Len())
	for pair := m.tags.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the text stored under key.
func (m *Metadata) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	return m.tags.Get(key)
}

// Description returns the @description text, if any.
func (m *Metadata) Description() string {
	v, _ := m.Get(string(TagDescription))
	return v
}

// Prerequisites returns the @prerequisites text, if any.
func (m *Metadata) Prerequisites() string {
	v, _ := m.Get(string(TagPrerequisites))
	return v
}

// Entry is one named tag, e.g. `@input host: the host name`.
type Entry struct {
	Name string
	Text string
}

// Entries returns the named entries of a category in insertion order, with
// the keyword stripped from the name: `@input host` yields Name "host".
func (m *Metadata) Entries(category Tag) []Entry {
	if m == nil {
		return nil
	}
	var entries []Entry
	for pair := m.tags.Oldest(); pair != nil; pair = pair.Next() {
		tag, ok := containedTag(pair.Key)
		if !ok || tag != category {
			continue
		}
		entries = append(entries, Entry{Name: entryName(pair.Key, tag), Text: pair.Value})
	}
	return entries
}

// MarshalJSON encodes the tags as a JSON object in insertion order.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.tags)
}

// MarshalYAML encodes the tags as a YAML mapping in insertion order.
func (m *Metadata) MarshalYAML() (interface{}, error) {
	if m == nil {
		return map[string]string{}, nil
	}
	return m.tags, nil
}
