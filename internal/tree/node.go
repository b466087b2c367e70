// Package tree provides the immutable configuration tree produced by the input parsers.
//
// A Node is exactly one of Scalar, Sequence or *Mapping. Consumers switch on the
// concrete type; no other implementations exist outside this package.
package tree

import (
	"github.com/iancoleman/orderedmap"
)

// Node is a value in a parsed configuration document.
type Node interface {
	isNode()
}

// Kind identifies the type of a Scalar.
type Kind int

const (
	Null Kind = iota
	String
	Integer
	Float
	Bool
	// Number is a numeral kept as written, for values no Go numeric type holds exactly.
	Number
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Number:
		return "number"
	}
	return "unknown"
}

// Scalar is a leaf value.
type Scalar struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

func (Scalar) isNode() {}

// NullValue returns the null scalar.
func NullValue() Scalar { return Scalar{kind: Null} }

// StringValue returns a string scalar.
func StringValue(s string) Scalar { return Scalar{kind: String, s: s} }

// IntValue returns an integer scalar.
func IntValue(i int64) Scalar { return Scalar{kind: Integer, i: i} }

// FloatValue returns a floating point scalar.
func FloatValue(f float64) Scalar { return Scalar{kind: Float, f: f} }

// BoolValue returns a boolean scalar.
func BoolValue(b bool) Scalar { return Scalar{kind: Bool, b: b} }

// NumberValue returns a numeral scalar that renders exactly as text.
func NumberValue(text string) Scalar { return Scalar{kind: Number, s: text} }

// Kind returns the scalar's type.
func (s Scalar) Kind() Kind { return s.kind }

// Str returns the string value and whether the scalar is a string.
func (s Scalar) Str() (string, bool) { return s.s, s.kind == String }

// Int returns the integer value and whether the scalar is an integer.
func (s Scalar) Int() (int64, bool) { return s.i, s.kind == Integer }

// Float returns the float value and whether the scalar is a float.
func (s Scalar) Float() (float64, bool) { return s.f, s.kind == Float }

// Numeral returns the literal text and whether the scalar is a Number.
func (s Scalar) Numeral() (string, bool) { return s.s, s.kind == Number }

// Bool returns the boolean value and whether the scalar is a boolean.
func (s Scalar) Bool() (bool, bool) { return s.b, s.kind == Bool }

// Sequence is an ordered list of nodes.
type Sequence []Node

func (Sequence) isNode() {}

// Mapping is a string-keyed map that remembers insertion order.
type Mapping struct {
	om *orderedmap.OrderedMap
}

func (*Mapping) isNode() {}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{om: orderedmap.New()}
}

// Set adds or replaces key. A new key is appended to the key order.
// Set is only used while a tree is being built.
func (m *Mapping) Set(key string, value Node) {
	m.om.Set(key, value)
}

// Get returns the node stored under key.
func (m *Mapping) Get(key string) (Node, bool) {
	v, ok := m.om.Get(key)
	if !ok {
		return nil, false
	}
	n, ok := v.(Node)
	return n, ok
}

// Keys returns the keys in document order.
func (m *Mapping) Keys() []string {
	return m.om.Keys()
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.om.Keys())
}

// Field returns the value under key as an Optional. Missing keys, null values and
// empty strings are absent; false and 0 are present.
func (m *Mapping) Field(key string) Optional[Node] {
	n, ok := m.Get(key)
	if !ok || IsEmpty(n) {
		return None[Node]()
	}
	return Some(n)
}

// FirstField returns the first present field among keys.
func (m *Mapping) FirstField(keys ...string) Optional[Node] {
	for _, k := range keys {
		if f := m.Field(k); f.Present() {
			return f
		}
	}
	return None[Node]()
}

// IsEmpty reports whether n is null or the empty string.
func IsEmpty(n Node) bool {
	s, ok := n.(Scalar)
	if !ok {
		return n == nil
	}
	switch s.kind {
	case Null:
		return true
	case String:
		return s.s == ""
	}
	return false
}
