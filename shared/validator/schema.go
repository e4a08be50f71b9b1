package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"hotel/shared/failure"
)

// Kind is the JSON type a schema field must carry.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindInteger
	KindBoolean
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "a string"
	case KindNumber:
		return "a number"
	case KindInteger:
		return "an integer"
	case KindBoolean:
		return "a boolean"
	case KindArray:
		return "an array"
	default:
		return "valid"
	}
}

var errNotObject = errors.New("request body must be a JSON object")

// Field declares one input key. Rules is a validator tag applied to the typed
// value once the kind matches, e.g. "email" or "min=1".
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Rules    string
}

// Schema is an ordered, closed set of input fields.
type Schema []Field

// Check validates input against the schema. Every field is checked and
// violations follow schema order. On success the returned map holds only the
// schema's fields. A null value counts as absent, a required string must not
// be blank and values are never coerced between kinds.
func (s Schema) Check(input map[string]any) (map[string]any, []failure.Violation) {
	clean := make(map[string]any, len(s))
	result := []failure.Violation{}

	for _, field := range s {
		raw, present := input[field.Name]
		if raw == nil {
			present = false
		}

		if !present {
			if field.Required {
				result = append(result, failure.Violation{Field: field.Name, Message: render("required", field.Name, "")})
			}

			continue
		}

		typed, ok := field.typed(raw)
		if !ok {
			result = append(result, failure.Violation{Field: field.Name, Message: render("type", field.Name, field.Kind.String())})

			continue
		}

		if str, isString := typed.(string); isString && field.Required && strings.TrimSpace(str) == "" {
			result = append(result, failure.Violation{Field: field.Name, Message: render("required", field.Name, "")})

			continue
		}

		if field.Rules != "" {
			if err := validate.Var(typed, field.Rules); err != nil {
				result = append(result, violations(err, field.Name)[0])

				continue
			}
		}

		clean[field.Name] = raw
	}

	if len(result) > 0 {
		return nil, result
	}

	return clean, nil
}

func (f Field) typed(raw any) (any, bool) {
	switch f.Kind {
	case KindString:
		v, ok := raw.(string)

		return v, ok
	case KindNumber:
		num, ok := raw.(json.Number)
		if !ok {
			return nil, false
		}

		v, err := num.Float64()

		return v, err == nil
	case KindInteger:
		num, ok := raw.(json.Number)
		if !ok {
			return nil, false
		}

		v, err := num.Int64()

		return v, err == nil
	case KindBoolean:
		v, ok := raw.(bool)

		return v, ok
	case KindArray:
		v, ok := raw.([]any)

		return v, ok
	default:
		return nil, false
	}
}

// Decode reads a JSON object from r, checks it and fills data with the
// schema's fields. A body that is not a JSON object is returned as a plain
// error; rule violations as a validation failure.
func (s Schema) Decode(r io.Reader, data any) error {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var input map[string]any
	if err := decoder.Decode(&input); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	if input == nil {
		return errNotObject
	}

	clean, problems := s.Check(input)
	if len(problems) > 0 {
		return failure.Validation(problems) //nolint:wrapcheck
	}

	encoded, err := json.Marshal(clean)
	if err != nil {
		return fmt.Errorf("failed to encode validated input: %w", err)
	}

	decoder = json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()

	if err = decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to decode validated input: %w", err)
	}

	return nil
}

// ValidateSchema is Decode with a typed destination.
func ValidateSchema[T any](r io.Reader, schema Schema, data *T) error {
	return schema.Decode(r, data)
}
