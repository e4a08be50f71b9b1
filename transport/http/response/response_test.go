package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithData(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithData(rec, http.StatusCreated, map[string]any{"id": 1})

	body := decode(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": float64(1)}, body["data"])
	assert.NotContains(t, body, "count")
	assert.NotContains(t, body, "error")
}

func TestWithDataMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithDataMessage(rec, http.StatusOK, map[string]string{"status": "confirmed"}, "Booking confirmed successfully")

	body := decode(t, rec)
	assert.Equal(t, "Booking confirmed successfully", body["message"])
	assert.Equal(t, map[string]any{"status": "confirmed"}, body["data"])
}

func TestWithList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		count float64
	}{
		{name: "items", items: []string{"a", "b", "c"}, count: 3},
		{name: "nil list", items: nil, count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithList(rec, tt.items)

			body := decode(t, rec)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.count, body["count"])

			data, ok := body["data"].([]any)
			assert.True(t, ok)
			assert.Len(t, data, int(tt.count))
		})
	}
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantError   string
		wantDetails int
	}{
		{
			name: "validation failure",
			err: failure.Validation([]failure.Violation{
				{Field: "guestEmail", Message: "guestEmail must be a valid email address"},
			}),
			wantCode:    http.StatusBadRequest,
			wantError:   "Validation failed",
			wantDetails: 1,
		},
		{
			name:      "not found",
			err:       fmt.Errorf("get room: %w", failure.NotFound("Room")),
			wantCode:  http.StatusNotFound,
			wantError: "Room not found",
		},
		{
			name:      "bad request",
			err:       failure.BadRequestFromString("Invalid booking ID"),
			wantCode:  http.StatusBadRequest,
			wantError: "Invalid booking ID",
		},
		{
			name:      "server failure hides cause",
			err:       errors.New("pq: connection refused"),
			wantCode:  http.StatusInternalServerError,
			wantError: "Internal server error",
		},
		{
			name:      "internal failure hides message",
			err:       failure.InternalError(errors.New("disk full")),
			wantCode:  http.StatusInternalServerError,
			wantError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			body := decode(t, rec)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
			assert.NotContains(t, body, "data")

			if tt.wantDetails == 0 {
				assert.NotContains(t, body, "details")

				return
			}

			details, ok := body["details"].([]any)
			assert.True(t, ok)
			assert.Len(t, details, tt.wantDetails)
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "REQUEST LIMIT EXCEEDED", decode(t, rec)["error"])
}
