// Package toon implements the TOON (Token-Oriented Object Notation) v3.0
// codec: a general JSON value model plus an exact bidirectional converter
// between that model and TOON's compact indentation-based text form.
package toon

import (
	"fmt"
	"math"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the JSON value model shared by the encoder and decoder: a tagged
// union over Null, Bool, Int (signed 64-bit), Float (binary64), String,
// Array and Object. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a signed 64-bit Int value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a Float value. NaN and ±Infinity are mapped to Null, per
// the encoder's number-normalization rule (spec §4.1 rule 4).
func Float(f float64) Value {
	if isNonFinite(f) {
		return Null()
	}
	return Value{kind: KindFloat, f: f}
}

// String returns a String value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an Array value owning the given elements in order.
func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: items}
}

// ObjectValue returns an Object value wrapping o. A nil o is treated as empty.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() bool { return v.b }

func (v Value) Int() int64 { return v.i }

func (v Value) Float() float64 { return v.f }

func (v Value) Str() string { return v.s }

func (v Value) Array() []Value { return v.arr }

func (v Value) Obj() *Object {
	if v.obj == nil {
		return NewObject()
	}
	return v.obj
}

// IsPrimitive reports whether v is anything other than Array or Object.
func (v Value) IsPrimitive() bool {
	return v.kind != KindArray && v.kind != KindObject
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Object is an insertion-ordered mapping from unique string keys to Values,
// matching spec §3's "Object keys unique; insertion order preserved"
// invariant. It is implemented as a parallel key slice plus an index map so
// that both iteration order and O(1) lookup are available.
type Object struct {
	keys   []string
	index  map[string]int
	values []Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts or replaces the value for key, preserving the key's original
// insertion position on replacement.
func (o *Object) Set(key string, v Value) {
	if idx, ok := o.index[key]; ok {
		o.values[idx] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	idx, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.values[idx], true
}

// Delete removes key if present, preserving the relative order of the
// remaining keys.
func (o *Object) Delete(key string) {
	idx, ok := o.index[key]
	if !ok {
		return
	}
	o.keys = append(o.keys[:idx], o.keys[idx+1:]...)
	o.values = append(o.values[:idx], o.values[idx+1:]...)
	delete(o.index, key)
	for i := idx; i < len(o.keys); i++ {
		o.index[o.keys[i]] = i
	}
}

// Keys returns the keys in insertion order. The caller must not mutate it.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of fields.
func (o *Object) Len() int { return len(o.keys) }

// Values returns the values in insertion (= key) order. The caller must not
// mutate it.
func (o *Object) Values() []Value { return o.values }

// ValueAt returns the key/value pair at position i.
func (o *Object) ValueAt(i int) (string, Value) { return o.keys[i], o.values[i] }

func (v Value) String() string {
	return fmt.Sprintf("Value{%s}", v.kind)
}
