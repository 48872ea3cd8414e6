// Package ast defines the tree a UNI document parses into.
//
// A Document holds top-level Elements. Each Element carries an ordered
// list of Attributes and an ordered list of child Elements. Trees built by
// the parser are not modified afterwards and may be read concurrently.
package ast

import "slices"

// ValueKind tells which form a Value takes.
type ValueKind int

const (
	NoValue     ValueKind = iota // flag attribute
	ScalarValue                  // name=value
	ListValue                    // name=(a b c)
)

// Value is the optional value of an Attribute. The zero Value is absent.
type Value struct {
	kind   ValueKind
	scalar string
	list   []string
}

// Scalar returns a single text value.
func Scalar(s string) Value {
	return Value{kind: ScalarValue, scalar: s}
}

// List returns a list value holding items in order. Lists do not nest.
func List(items ...string) Value {
	return Value{kind: ListValue, list: append([]string{}, items...)}
}

// Kind returns the form of the value.
func (v Value) Kind() ValueKind { return v.kind }

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool { return v.kind == NoValue }

// Scalar returns the text of a scalar value, or "" for other kinds.
func (v Value) Scalar() string { return v.scalar }

// List returns a copy of the items of a list value, or nil for other kinds.
func (v Value) List() []string {
	if v.kind != ListValue {
		return nil
	}
	return slices.Clone(v.list)
}

// Len returns the number of items of a list value.
func (v Value) Len() int { return len(v.list) }

// Equal reports whether two values have the same kind and text.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.scalar == o.scalar && slices.Equal(v.list, o.list)
}

// Attribute is a name with an optional value.
type Attribute struct {
	Name  string
	Value Value
}

// Flag returns an attribute without a value.
func Flag(name string) Attribute {
	return Attribute{Name: name}
}

// Attr returns an attribute carrying value.
func Attr(name string, value Value) Attribute {
	return Attribute{Name: name, Value: value}
}

// Element is a node of the tree.
type Element struct {
	Attributes []Attribute
	Children   []*Element
}

// Lookup returns the first attribute called name.
func (e *Element) Lookup(name string) (Attribute, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Has reports whether the element carries an attribute called name.
func (e *Element) Has(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// Document is the root of a parsed UNI text: the elements at depth 0.
type Document struct {
	Elements []*Element
}

// Equal reports whether two documents have the same structure: the same
// attributes in the same order and the same children in the same order.
func Equal(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	return equalElements(a.Elements, b.Elements)
}

func equalElements(a, b []*Element) bool {
	return slices.EqualFunc(a, b, func(x, y *Element) bool {
		return slices.EqualFunc(x.Attributes, y.Attributes, func(p, q Attribute) bool {
			return p.Name == q.Name && p.Value.Equal(q.Value)
		}) && equalElements(x.Children, y.Children)
	})
}
