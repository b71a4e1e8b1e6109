// Package specdoc loads an OpenAPI YAML document into an immutable nested
// mapping/sequence tree and exposes read-only navigation helpers over it.
//
// The tree is deliberately kept raw (no reference resolution): contract
// checks assert literal document structure, including unresolved $ref
// strings, so resolving references would erase exactly what they test.
package specdoc

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ParseError indicates the document could not be read or parsed. It is an
// infrastructure failure, distinct from a contract violation.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse spec document: %v", e.Err)
	}
	return fmt.Sprintf("parse spec document %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Document is a read-only view over a parsed OpenAPI YAML file. Checks must
// never mutate it; load it once per session and share it freely.
type Document struct {
	root Map
}

// Load reads and parses the YAML document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse parses an in-memory YAML document.
func Parse(data []byte) (*Document, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Err: err}
	}
	if root == nil {
		return nil, &ParseError{Err: errors.New("document is empty")}
	}
	return &Document{root: Map(root)}, nil
}

// Root returns the top-level mapping of the document.
func (d *Document) Root() Map { return d.root }

// At walks nested mappings by key and returns the mapping at the end of the
// path, or nil if any segment is absent or not a mapping.
func (d *Document) At(path ...string) Map {
	m := d.root
	for _, key := range path {
		m = m.Map(key)
		if m == nil {
			return nil
		}
	}
	return m
}

// Info returns the document's info object.
func (d *Document) Info() Map { return d.root.Map("info") }

// Paths returns the document's paths object.
func (d *Document) Paths() Map { return d.root.Map("paths") }

// Schemas returns the components.schemas object.
func (d *Document) Schemas() Map { return d.At("components", "schemas") }

// Schema returns a named entry under components.schemas, or nil.
func (d *Document) Schema(name string) Map { return d.Schemas().Map(name) }

// Map is a read-only view of a YAML mapping node.
type Map map[string]any

// asMap coerces a decoded YAML value to a Map. yaml.v3 produces
// map[string]any for string-keyed mappings; non-string keys (for example an
// unquoted status code) fall back to map[any]any and are stringified here.
func asMap(v any) Map {
	switch m := v.(type) {
	case Map:
		return m
	case map[string]any:
		return m
	case map[any]any:
		out := make(Map, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	default:
		return nil
	}
}

// AsMap coerces an arbitrary decoded YAML value to a Map, or nil. It is the
// way into elements of a sequence returned by Slice.
func AsMap(v any) Map { return asMap(v) }

// Has reports whether key is present, regardless of its value.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Map returns the mapping stored under key, or nil.
func (m Map) Map(key string) Map {
	if m == nil {
		return nil
	}
	return asMap(m[key])
}

// String returns the scalar string stored under key, or "".
func (m Map) String(key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// Slice returns the sequence stored under key, or nil.
func (m Map) Slice(key string) []any {
	if m == nil {
		return nil
	}
	s, _ := m[key].([]any)
	return s
}

// Strings returns the sequence stored under key with every element rendered
// as a string. Non-sequence values yield nil.
func (m Map) Strings(key string) []string {
	seq := m.Slice(key)
	if seq == nil {
		return nil
	}
	out := make([]string, 0, len(seq))
	for _, v := range seq {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

// Keys returns the mapping's keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
