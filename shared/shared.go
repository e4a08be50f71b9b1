package shared

import (
	"context"
	"fmt"
	"maps"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToInt returns nil for an empty or non numeric value.
func ConvertStringToInt(value string) *int64 {
	if value == "" {
		return nil
	}

	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}

	return &intValue
}

// ParseID parses a path identifier. Anything that is not a positive integer is
// rejected with "Invalid <entity> ID".
func ParseID(raw, entity string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("Invalid %s ID", entity))
	}

	return id, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Slugify lowercases s and joins alphanumeric runs with a dash.
func Slugify(s string) string {
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// TransformFields turns an update request into a column patch. Only fields
// carrying a `db` tag are eligible, zero values are skipped and non-nil
// pointers are dereferenced. updated_at and updated_by are always set.
func TransformFields(data any, username string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()
	updatedFields[constant.FieldUpdatedBy] = username

	return updatedFields
}

// ApplyFields writes a column patch onto the struct target points to, matching
// keys against `db` tags including those of embedded structs. Keys without a
// matching field, or with a value that cannot be converted, are left alone.
func ApplyFields(target any, fields map[string]any) {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return
	}

	applyFields(val.Elem(), fields)
}

func applyFields(val reflect.Value, fields map[string]any) {
	typ := val.Type()

	for index := range val.NumField() {
		structField := typ.Field(index)
		field := val.Field(index)

		if structField.Anonymous && field.Kind() == reflect.Struct {
			applyFields(field, fields)

			continue
		}

		value, ok := fields[structField.Tag.Get("db")]
		if !ok || !field.CanSet() {
			continue
		}

		setValue(field, value)
	}
}

func setValue(field reflect.Value, value any) {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))

		return
	}

	src := reflect.ValueOf(value)

	switch {
	case src.Type().AssignableTo(field.Type()):
		field.Set(src)
	case field.Kind() == reflect.Pointer && src.Type().AssignableTo(field.Type().Elem()):
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(src)
		field.Set(ptr)
	case field.Kind() == reflect.Pointer && src.Type().ConvertibleTo(field.Type().Elem()):
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(src.Convert(field.Type().Elem()))
		field.Set(ptr)
	case src.Type().ConvertibleTo(field.Type()):
		field.Set(src.Convert(field.Type()))
	}
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.NewFilterGroup(dto.Filter{
		Field:    fieldID,
		Value:    id,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	})
}

func FilterBySlug(slug, table string) dto.FilterGroup {
	return dto.NewFilterGroup(dto.Filter{
		Field:    constant.FieldSlug,
		Value:    slug,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	})
}

// BuildCacheKey joins prefix and parts with ":".
func BuildCacheKey(prefix string, parts ...any) string {
	var builder strings.Builder

	builder.WriteString(prefix)

	for _, part := range parts {
		builder.WriteString(":")
		builder.WriteString(fmt.Sprint(part))
	}

	return builder.String()
}

// BuildCacheKeyWithQuery derives a stable key from the list parameters and
// the bound filter arguments.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	parts := []any{params.Page, params.Limit, params.OrderBy(), where}
	for _, key := range slices.Sorted(maps.Keys(args)) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, args[key]))
	}

	return BuildCacheKey(prefix, parts...)
}

// InvalidateCaches clears every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
