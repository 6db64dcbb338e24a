package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Item is one element of a header value list: a primary value plus zero or
// more parameters.
//
// Value holds the decoded text of the element, with any quoting already
// stripped and escapes resolved. Params holds the decoded parameters in
// the order they appeared. An Item does not remember whether its pieces
// were originally quoted; Build re-decides quoting from the text itself.
type Item struct {
	Value  string `json:"value"`
	Params Params `json:"params"`
}

// New creates an Item with the given primary value and no parameters.
func New(value string) Item {
	return Item{Value: value}
}

// Param returns the value of the named parameter, or the empty string when
// the parameter is absent. Use Params.Lookup to tell the two apart.
func (it Item) Param(name string) string {
	v, _ := it.Params.Lookup(name)
	return v
}

// Clone returns a deep copy of the Item. Mutating the copy's parameters
// leaves the original untouched.
func (it Item) Clone() Item {
	return Item{Value: it.Value, Params: it.Params.Clone()}
}

// Params is a mapping from parameter name to parameter value that
// remembers insertion order. The zero value is an empty, ready-to-use
// mapping.
//
// Order matters here: serializing an Item must be able to reproduce the
// parameters in the order they were parsed, so Params is a small ordered
// map rather than a plain map[string]string.
type Params struct {
	keys []string
	vals map[string]string
}

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p.keys)
}

// Keys returns the parameter names in insertion order. The returned slice
// is a copy; callers may reorder it freely.
func (p Params) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Get returns the value of the named parameter, or the empty string when
// it is absent.
func (p Params) Get(name string) string {
	return p.vals[name]
}

// Lookup returns the value of the named parameter and whether it is
// present. A parameter set to the empty string (k="") is present.
func (p Params) Lookup(name string) (string, bool) {
	v, ok := p.vals[name]
	return v, ok
}

// Set sets the named parameter. A new name is appended after the existing
// parameters; setting an existing name replaces its value in place.
func (p *Params) Set(name, value string) {
	if p.vals == nil {
		p.vals = make(map[string]string)
	}
	if _, ok := p.vals[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.vals[name] = value
}

// Delete removes the named parameter if present.
func (p *Params) Delete(name string) {
	if _, ok := p.vals[name]; !ok {
		return
	}
	delete(p.vals, name)
	for i, k := range p.keys {
		if k == name {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy of the mapping.
func (p Params) Clone() Params {
	if len(p.keys) == 0 {
		return Params{}
	}
	c := Params{
		keys: make([]string, len(p.keys)),
		vals: make(map[string]string, len(p.vals)),
	}
	copy(c.keys, p.keys)
	for k, v := range p.vals {
		c.vals[k] = v
	}
	return c
}

// Equal reports whether two mappings hold the same parameters in the same
// order.
func (p Params) Equal(o Params) bool {
	if len(p.keys) != len(o.keys) {
		return false
	}
	for i, k := range p.keys {
		if o.keys[i] != k || p.vals[k] != o.vals[k] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the mapping as a JSON object whose members appear in
// insertion order.
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string members, preserving the
// order of its keys.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("parameters must be a JSON object, got %v", tok)
	}
	*p = Params{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("parameter name must be a JSON string, got %v", tok)
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("parameter %q: %w", key, err)
		}
		p.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
