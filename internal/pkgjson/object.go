package pkgjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/iancoleman/orderedmap"
)

// Object is a JSON object that remembers key insertion order.
//
// Nested objects are held as *orderedmap.OrderedMap. Other values are []any,
// string, float64, bool or nil.
type Object struct {
	m *orderedmap.OrderedMap
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{m: newMap()}
}

// newMap returns an ordered map that encodes "<", ">" and "&" verbatim so
// scripts survive a rewrite unchanged.
func newMap() *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	return m
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.m.Keys()...)
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.m.Keys()) }

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	return o.m.Get(key)
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.m.Get(key)
	return ok
}

// GetString returns the value under key if it is a string.
func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetObject returns the value under key if it is a nested object. The
// returned Object shares storage with o.
func (o *Object) GetObject(key string) (*Object, bool) {
	v, ok := o.m.Get(key)
	if !ok {
		return nil, false
	}
	m, ok := v.(*orderedmap.OrderedMap)
	if !ok {
		return nil, false
	}
	return &Object{m: m}, true
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (o *Object) Set(key string, value any) {
	if obj, ok := value.(*Object); ok {
		value = obj.m
	}
	o.m.Set(key, value)
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	o.m.Delete(key)
}

// SortKeys reorders the keys ascending. Sorting an already sorted object is a
// no-op.
func (o *Object) SortKeys() {
	o.m.SortKeys(sort.Strings)
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	return &Object{m: cloneMap(o.m)}
}

func cloneMap(m *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	out := newMap()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out.Set(k, cloneValue(v))
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}

// Parse decodes a JSON document whose top-level value is an object.
func Parse(data []byte) (*Object, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, errors.New("top-level JSON value is not an object")
	}
	m := newMap()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	return &Object{m: adopt(m)}, nil
}

// adopt rewrites the nested objects the decoder stores by value into
// pointers, so GetObject can hand out shared storage, and turns off HTML
// escaping throughout.
func adopt(m *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	m.SetEscapeHTML(false)
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		m.Set(k, adoptValue(v))
	}
	return m
}

func adoptValue(v any) any {
	switch val := v.(type) {
	case orderedmap.OrderedMap:
		return adopt(&val)
	case *orderedmap.OrderedMap:
		return adopt(val)
	case []any:
		for i, item := range val {
			val[i] = adoptValue(item)
		}
		return val
	default:
		return val
	}
}

// Marshal encodes o with two-space indentation and a trailing newline.
func (o *Object) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o.m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
