package servicing

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Serializable is implemented by every domain object that can be sent to the
// servicing API. A type declares the attribute names eligible for wire
// output, a fixed list of validators, and a lookup from attribute name to
// current value.
type Serializable interface {
	// Attributes names the fields that make up the object's JSON structure.
	// The set is fixed for the lifetime of the type.
	Attributes() []string

	// Validators returns the object's validators in evaluation order.
	Validators() []Validator

	// Attribute returns the current value of a wire field, or nil when the
	// field is unset.
	Attribute(name string) any
}

// Validator pairs a predicate with the message reported when it fails.
type Validator struct {
	Message string
	Valid   func() bool
}

// Required builds a presence validator for the named attribute.
func Required(attribute string, present func() bool) Validator {
	return Validator{
		Message: fmt.Sprintf("%s attribute is required", attribute),
		Valid:   present,
	}
}

// OneOf builds an enumeration validator: the attribute's wire string must be
// one of the allowed values.
func OneOf(attribute string, allowed []string, value func() string) Validator {
	return Validator{
		Message: fmt.Sprintf(
			"%s attribute must be one of the following values: %s",
			attribute, strings.Join(allowed, ", "),
		),
		Valid: func() bool {
			current := value()
			for _, candidate := range allowed {
				if current == candidate {
					return true
				}
			}

			return false
		},
	}
}

// Validate runs the object's validators in declaration order and reports the
// first failure as a *FormationError.
func Validate(s Serializable) error {
	for _, validator := range s.Validators() {
		if !validator.Valid() {
			return &FormationError{Message: validator.Message}
		}
	}

	return nil
}

// ToWireFormat validates s and converts it into a JSON-compatible mapping.
// Attributes are visited in lexicographic order; nil and empty sized values
// are elided because the servicing API treats an absent key differently from
// an explicit null or empty container. Nested Serializable values and slices
// of Serializable values are converted recursively, re-validating each one.
func ToWireFormat(s Serializable) (map[string]any, error) {
	err := Validate(s)
	if err != nil {
		return nil, err
	}

	names := append([]string(nil), s.Attributes()...)
	sort.Strings(names)

	out := make(map[string]any, len(names))

	for _, name := range names {
		value, err := wireValue(s.Attribute(name))
		if err != nil {
			return nil, err
		}

		if isEmpty(value) {
			continue
		}

		out[name] = value
	}

	return out, nil
}

func wireValue(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Serializable:
		return ToWireFormat(v)
	case []Serializable:
		converted := make([]any, 0, len(v))

		for _, item := range v {
			itemValue, err := ToWireFormat(item)
			if err != nil {
				return nil, err
			}

			converted = append(converted, itemValue)
		}

		return converted, nil
	default:
		return value, nil
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case json.Number:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
