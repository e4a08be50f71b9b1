package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"hotel/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	validate    *val.Validate
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// registerMimetypeValidation checks a detected content type against a space
// separated allow-list.
func registerMimetypeValidation(field val.FieldLevel) bool {
	contentType, ok := field.Field().Interface().(string)
	if !ok || contentType == "" {
		return false
	}

	return slices.Contains(strings.Split(field.Param(), " "), contentType)
}

// registerFileSizeValidation accepts a byte count or a file header and checks it
// against a limit expressed in MB.
func registerFileSizeValidation(field val.FieldLevel) bool {
	var fileSize int64

	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = v.Size
	case int64:
		fileSize = v
	case int:
		fileSize = int64(v)
	default:
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

func registerNotBlankValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return !field.Field().IsZero()
	}

	return strings.TrimSpace(str) != ""
}

func registerSlugValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)

	return ok && slugPattern.MatchString(str)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return fld.Name
		}

		return name
	})

	registrations := map[string]val.Func{
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"notblank":    registerNotBlankValidation,
		"slug":        registerSlugValidation,
	}

	for tag, fn := range registrations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes the JSON body into data and validates it with its struct
// tags. A body that cannot be decoded is returned as a plain error so it
// surfaces as a server failure; rule violations come back as a validation
// failure listing every offending field.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.Validation(violations(err, "")) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateField checks a single value and names it in the error message.
func ValidateField(name string, field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(violations(err, name)[0].Message) //nolint:wrapcheck
	}

	return nil
}
