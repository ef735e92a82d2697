// Package types holds the shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// the reporter and the config loader both import types without depending
// on each other.
package types

import (
	"fmt"
	"slices"

	"github.com/aanand-mishra/onboard/internal/utils/validation"
)

// Kind tells which of the three optional value shapes a Value holds.
type Kind int

const (
	KindText Kind = iota
	KindBool
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an optional profile value: text, a boolean, or a list of text.
// The zero Value is empty text.
type Value struct {
	kind Kind
	text string
	flag bool
	list []string
}

// Text wraps a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// List wraps an ordered list of text. The items are copied.
func List(items ...string) Value {
	return Value{kind: KindList, list: copyList(items)}
}

func (v Value) Kind() Kind { return v.kind }

// AsText returns the text and whether the value is text.
func (v Value) AsText() (string, bool) { return v.text, v.kind == KindText }

// AsBool returns the boolean and whether the value is a boolean.
func (v Value) AsBool() (bool, bool) { return v.flag, v.kind == KindBool }

// AsList returns a copy of the items and whether the value is a list.
func (v Value) AsList() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return copyList(v.list), true
}

// copyList never returns nil, so an empty list still renders as [].
func copyList(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// Attribute is one optional, named profile field.
//
// validate:"..." tags are checked by the go-playground/validator package
// when a Profile is built. "name" and "age" are reserved for the required
// fields.
type Attribute struct {
	Key   string `json:"key" validate:"required,ne=name,ne=age"`
	Value Value  `json:"-"`
}

// Field is one rendered entry of a profile: the two required fields
// followed by every attribute, in insertion order.
type Field struct {
	Key   string
	Value any // string, int, bool or []string
}

// Profile is a named record of a user's display attributes.
//
// Name and Age are required by convention; everything else lives in
// Attributes, which keeps the order the caller supplied. A Profile is
// built once through NewProfile and never mutated afterwards.
type Profile struct {
	Name       string      `json:"name"       validate:"required"`
	Age        int         `json:"age"        validate:"gte=0"`
	Attributes []Attribute `json:"attributes" validate:"unique=Key,dive"`
}

var validate = validation.New()

// NewProfile validates its input and returns a ready-to-use Profile.
//
// Rules:
//   - name must be non-empty and age must not be negative;
//   - attribute keys must be non-empty, unique, and not "name" or "age";
//   - an "email" attribute holding text must be a valid email address.
func NewProfile(name string, age int, attrs ...Attribute) (Profile, error) {
	p := Profile{
		Name:       name,
		Age:        age,
		Attributes: slices.Clone(attrs),
	}

	if err := validate.Struct(p); err != nil {
		return Profile{}, fmt.Errorf("types.NewProfile: %w", validation.FromValidator(err))
	}

	if v, ok := p.Attr("email"); ok {
		if s, ok := v.AsText(); ok {
			if err := validate.Var(s, "email"); err != nil {
				return Profile{}, fmt.Errorf("types.NewProfile: %w",
					validation.ForField("email", err))
			}
		}
	}

	return p, nil
}

// Attr returns the attribute stored under key.
func (p Profile) Attr(key string) (Value, bool) {
	for _, a := range p.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return Value{}, false
}

// Fields lists name, age and then every attribute, in insertion order.
func (p Profile) Fields() []Field {
	fields := make([]Field, 0, 2+len(p.Attributes))
	fields = append(fields,
		Field{Key: "name", Value: p.Name},
		Field{Key: "age", Value: p.Age},
	)

	for _, a := range p.Attributes {
		var v any
		switch a.Value.Kind() {
		case KindBool:
			v, _ = a.Value.AsBool()
		case KindList:
			v, _ = a.Value.AsList()
		default:
			v, _ = a.Value.AsText()
		}
		fields = append(fields, Field{Key: a.Key, Value: v})
	}

	return fields
}
