package virtualtour_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/virtualtour/mocks"
	"hotel/internal/domains/virtualtour/model"
	"hotel/internal/domains/virtualtour/model/dto"
	"hotel/internal/handlers/virtualtour"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func filterFields(filter gDto.FilterGroup) map[string]any {
	fields := map[string]any{}

	for _, item := range filter.Filters {
		if f, ok := item.(gDto.Filter); ok {
			fields[f.Field] = f.Value
		}
	}

	return fields
}

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockVirtualTour) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockVirtualTour(ctrl)
	handler := virtualtour.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Get("/v1/virtual-tours", handler.GetVirtualTours)
	router.Get("/v1/virtual-tours/{id}", handler.GetVirtualTourByID)

	return router, mockService
}

func serve(router http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var envelope map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)

	return rec, envelope
}

func TestGetVirtualTours(t *testing.T) {
	router, mockService := newRouter(t)

	tests := []struct {
		name       string
		query      string
		wantFields map[string]any
	}{
		{name: "default lists active tours", query: "", wantFields: map[string]any{model.FieldIsActive: true}},
		{name: "active false lists every tour", query: "?active=false", wantFields: map[string]any{}},
		{
			name:       "room filter",
			query:      "?room_id=4",
			wantFields: map[string]any{model.FieldIsActive: true, model.FieldRoomID: int64(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]dto.VirtualTourResponse, error) {
					assert.Equal(t, tt.wantFields, filterFields(filter))

					return []dto.VirtualTourResponse{{ID: 1}}, nil
				})

			rec, body := serve(router, "/v1/virtual-tours"+tt.query)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, float64(1), body["count"])
			assert.Nil(t, body["data"].([]any)[0].(map[string]any)["room"])
		})
	}

	t.Run("malformed room id", func(t *testing.T) {
		rec, body := serve(router, "/v1/virtual-tours?room_id=abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"success": false, "error": "Invalid room ID"}, body)
	})
}

func TestGetVirtualTourByID(t *testing.T) {
	router, mockService := newRouter(t)

	t.Run("invalid id", func(t *testing.T) {
		rec, body := serve(router, "/v1/virtual-tours/abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid virtual tour ID", body["error"])
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().Get(gomock.Any(), int64(7)).Return(dto.VirtualTourResponse{}, failure.NotFound(model.EntityLabel))

		rec, body := serve(router, "/v1/virtual-tours/7")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Virtual tour not found", body["error"])
	})

	t.Run("room projection", func(t *testing.T) {
		roomID := int64(2)
		mockService.EXPECT().Get(gomock.Any(), int64(7)).Return(dto.VirtualTourResponse{
			ID: 7, RoomID: &roomID, Room: &dto.RoomSummary{ID: 2, Name: "Suite", Slug: "suite"},
		}, nil)

		rec, body := serve(router, "/v1/virtual-tours/7")

		data := body["data"].(map[string]any)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), data["room_id"])
		assert.Equal(t, map[string]any{"id": float64(2), "name": "Suite", "slug": "suite"}, data["room"])
	})
}
