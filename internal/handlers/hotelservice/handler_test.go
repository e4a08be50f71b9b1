package hotelservice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/hotelservice/mocks"
	"hotel/internal/domains/hotelservice/model/dto"
	"hotel/internal/handlers/hotelservice"
	gDto "hotel/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockHotelService(ctrl)
	handler := hotelservice.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Get("/v1/services", handler.GetServices)

	tests := []struct {
		name        string
		query       string
		wantFilters int
	}{
		{name: "no flag lists every service", query: "", wantFilters: 0},
		{name: "only the literal true filters", query: "?active=yes", wantFilters: 0},
		{name: "active true", query: "?active=true", wantFilters: 1},
		{name: "active and category", query: "?active=true&category=dining", wantFilters: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := 12.5
			mockService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]dto.ServiceResponse, error) {
					assert.Len(t, filter.Filters, tt.wantFilters)

					return []dto.ServiceResponse{{ID: 1, Category: "dining", Price: &price, PriceCurrency: "USD", IsActive: true}}, nil
				})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/services"+tt.query, nil))

			var body struct {
				Count int              `json:"count"`
				Data  []map[string]any `json:"data"`
			}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, body.Count)
			assert.Equal(t, "dining", body.Data[0]["category"])
			assert.Equal(t, "USD", body.Data[0]["price_currency"])
			assert.Equal(t, true, body.Data[0]["is_active"])
			assert.Contains(t, body.Data[0], "created_at")
			assert.Contains(t, body.Data[0], "updated_at")
			assert.NotContains(t, body.Data[0], "type")
			assert.NotContains(t, body.Data[0], "created_by")
		})
	}
}
