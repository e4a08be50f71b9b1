package validator

import (
	"errors"
	"strings"

	"hotel/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"notblank":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"gt":          "{field} must be greater than {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		"url":         "{field} must be a valid URL",
		"datetime":    "{field} must be a valid date in format {param}",
		"slug":        "{field} must contain only lowercase letters, digits and dashes",
		"hexcolor":    "{field} must be a hex color",
		"mimetypes":   "{field} type is not allowed, allowed types: {param}",
		"maxfilesize": "{field} exceeds the maximum size of {param}MB",
		"type":        "{field} must be {param}",
	}
)

func render(tag, field, param string) string {
	msg := messages[tag]
	if msg == "" {
		return ""
	}

	msg = strings.ReplaceAll(msg, "{field}", field)

	return strings.ReplaceAll(msg, "{param}", param)
}

// message returns the text of the first failing rule.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if msg := render(valErr.Tag(), valErr.Field(), valErr.Param()); msg != "" {
				return msg
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

// violations converts validator errors into one violation per field, in the
// order the validator reported them. A non-empty field overrides the reported
// name, which is how single value checks get named.
func violations(err error, field string) []failure.Violation {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return []failure.Violation{{Field: field, Message: err.Error()}}
	}

	result := make([]failure.Violation, 0, len(valErrors))
	seen := map[string]bool{}

	for _, valErr := range valErrors {
		name := field
		if name == "" {
			name = valErr.Field()
		}

		if seen[name] {
			continue
		}
		seen[name] = true

		msg := render(valErr.Tag(), name, valErr.Param())
		if msg == "" {
			msg = name + " is invalid"
		}

		result = append(result, failure.Violation{Field: name, Message: msg})
	}

	return result
}
