package models

import (
	"sort"
	"strings"
)

// Mapping is a parsed YAML or JSON document keyed by section and field name
type Mapping map[string]interface{}

// Get walks a dotted key such as "data_ingestion.root_dir" through nested mappings
func (m Mapping) Get(key string) (interface{}, bool) {
	var cur interface{} = m
	for _, part := range strings.Split(key, ".") {
		next, ok := cur.(Mapping)
		if !ok {
			return nil, false
		}
		cur, ok = next[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// GetString returns the value at key when it is a string
func (m Mapping) GetString(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Keys returns the top-level keys in sorted order
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
