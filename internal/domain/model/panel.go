// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PanelRecord is one survey panel member as delivered by the search store.
// Fields mirror the OpenAPI schema for /panels.
type PanelRecord struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Age      int      `json:"age,omitempty" yaml:"age,omitempty"`
	Gender   string   `json:"gender,omitempty" yaml:"gender,omitempty"`
	Region   string   `json:"region,omitempty" yaml:"region,omitempty"`
	Income   string   `json:"income,omitempty" yaml:"income,omitempty"` // optional free-text income
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Metadata maps a survey field label to its answer. Labels are in the
// survey's language and most records only answer a subset of them.
type Metadata map[string]any

// Text returns the answer stored under key as text. The second result is
// false when the key is absent, nil, or holds a structured value (map or
// list) that has no single text form. The returned text is not trimmed.
func (m Metadata) Text(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	default:
		return "", false
	}
}

// TrimmedText is Text with surrounding whitespace removed. A value that is
// blank after trimming is reported as missing.
func (m Metadata) TrimmedText(key string) (string, bool) {
	s, ok := m.Text(key)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Clone returns a shallow copy of the record with its own metadata map, so
// stores can hand records out without sharing the map with callers.
func (r PanelRecord) Clone() PanelRecord {
	if r.Metadata == nil {
		return r
	}
	md := make(Metadata, len(r.Metadata))
	for k, v := range r.Metadata {
		md[k] = v
	}
	r.Metadata = md
	return r
}
