package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/handlers/health"

	"github.com/stretchr/testify/assert"
)

func up(context.Context) error { return nil }

func down(context.Context) error { return errors.New("connection refused") }

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]health.Check
		wantCode   int
		wantStatus string
		wantChecks map[string]any
	}{
		{
			name:       "all up",
			checks:     map[string]health.Check{"postgres": up, "redis": up},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantChecks: map[string]any{"postgres": "up", "redis": "up"},
		},
		{
			name:       "redis down",
			checks:     map[string]health.Check{"postgres": up, "redis": down},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
			wantChecks: map[string]any{"postgres": "up", "redis": "down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := health.New(tt.checks, otelMocks.NewOtel())

			rec := httptest.NewRecorder()
			handler.Health(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			data := body["data"].(map[string]any)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantStatus, data["status"])
			assert.Equal(t, tt.wantChecks, data["checks"])
		})
	}
}
