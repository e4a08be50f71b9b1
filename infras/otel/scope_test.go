package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "span")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func attributeValue(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestScopeTraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int64
		wantStatus codes.Code
	}{
		{name: "not found stays unset", err: failure.NotFound("Room"), wantCode: 404, wantStatus: codes.Unset},
		{name: "validation stays unset", err: failure.BadRequestFromString("Invalid booking ID"), wantCode: 400, wantStatus: codes.Unset},
		{name: "upstream failure marks error", err: errors.New("connection refused"), wantCode: 500, wantStatus: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := record(t, func(scope otel.Scope) {
				scope.TraceError(tt.err)
			})

			assert.Equal(t, tt.wantStatus, span.Status().Code)

			value, ok := attributeValue(span, constant.OtelFailureCodeAttributeKey)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, value.AsInt64())
			assert.NotEmpty(t, span.Events())
		})
	}
}

func TestScopeTraceIfErrorNil(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceIfError(nil)
	})

	assert.Equal(t, codes.Unset, span.Status().Code)
	assert.Empty(t, span.Events())
}

func TestScopeSetAttributes(t *testing.T) {
	checkIn := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	span := record(t, func(scope otel.Scope) {
		scope.SetAttribute("booking.id", int64(42))
		scope.SetAttributes(map[string]any{
			"room.slug":        "deluxe-suite",
			"booking.check_in": checkIn,
			"booking.guests":   2,
		})
	})

	id, _ := attributeValue(span, "booking.id")
	assert.Equal(t, int64(42), id.AsInt64())

	slug, _ := attributeValue(span, "room.slug")
	assert.Equal(t, "deluxe-suite", slug.AsString())

	date, _ := attributeValue(span, "booking.check_in")
	assert.Equal(t, "2026-03-14T00:00:00Z", date.AsString())

	guests, _ := attributeValue(span, "booking.guests")
	assert.Equal(t, int64(2), guests.AsInt64())
}
