// Package validation turns go-playground/validator failures into one
// human-readable error.
//
// The validator returns one FieldError per failing struct field. Callers
// (the profile constructor, the config loader) do not want to inspect that
// slice, they want a sentence they can print:
//
//	field name is required, field age must be 0 or greater
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json tag name
// ("name", "attributes[0].key") instead of the Go field name.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Error is a validation failure with one message per failing field.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

// FromValidator converts err into an *Error when it carries
// validator.ValidationErrors. Any other error is returned unchanged.
func FromValidator(err error) error {
	return convert("", err)
}

// ForField is FromValidator for errors produced by validator.Var, which
// carry no field name of their own.
func ForField(field string, err error) error {
	return convert(field, err)
}

func convert(field string, err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		name := field
		if name == "" {
			name = fieldPath(e)
		}
		messages = append(messages, message(name, e))
	}

	return &Error{Messages: messages}
}

// fieldPath drops the leading struct name from the namespace:
// "Profile.attributes[1].key" becomes "attributes[1].key".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	if ns != "" {
		return ns
	}
	return e.Field()
}

func message(name string, e validator.FieldError) string {
	switch e.ActualTag() {
	// "required" tag: field was missing or zero-valued
	case "required":
		return fmt.Sprintf("field %s is required", name)
	case "email":
		return fmt.Sprintf("field %s must be a valid email address", name)
	case "gte":
		return fmt.Sprintf("field %s must be %s or greater", name, e.Param())
	case "ne":
		return fmt.Sprintf("field %s must not be %q", name, e.Param())
	case "unique":
		return fmt.Sprintf("field %s must not repeat %s", name, strings.ToLower(e.Param()))
	case "oneof":
		return fmt.Sprintf("field %s must be one of: %s", name, e.Param())
	default:
		return fmt.Sprintf("field %s is invalid", name)
	}
}
