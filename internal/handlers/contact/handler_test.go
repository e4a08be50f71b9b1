package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/contact/mocks"
	"hotel/internal/domains/contact/model"
	"hotel/internal/domains/contact/model/dto"
	"hotel/internal/handlers/contact"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockContact) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockContact(ctrl)
	handler := contact.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Post("/v1/contact", handler.CreateContact)
	router.Patch("/v1/contact/{id}", handler.UpdateContactStatus)

	return router, mockService
}

func TestCreateContact(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantFields []string
	}{
		{
			name:       "every missing field is reported",
			body:       `{"phone":"1"}`,
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"name", "email", "subject", "message"},
		},
		{
			name:       "bad email",
			body:       `{"name":"Ada","email":"nope","subject":"Hi","message":"Hello"}`,
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"email"},
		},
		{
			name:     "valid message without phone",
			body:     `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`,
			wantCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.wantCode == http.StatusCreated {
				mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error) {
						assert.Nil(t, req.Phone)

						return dto.ContactResponse{ID: 1, Status: model.StatusUnread}, nil
					})
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(tt.body)))

			var body struct {
				Success bool `json:"success"`
				Details []struct {
					Field string `json:"field"`
				} `json:"details"`
				Data map[string]any `json:"data"`
			}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, rec.Code)

			fields := []string{}
			for _, d := range body.Details {
				fields = append(fields, d.Field)
			}

			if len(tt.wantFields) > 0 {
				assert.Equal(t, tt.wantFields, fields)
			} else {
				assert.True(t, body.Success)
				assert.Nil(t, body.Data["phone"])
				assert.Contains(t, body.Data, "phone")
			}
		})
	}
}

func TestUpdateContactStatus(t *testing.T) {
	router, mockService := newRouter(t)

	t.Run("unknown status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/v1/contact/1", strings.NewReader(`{"status":"spam"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "status must be one of unread read replied archived")
	})

	t.Run("status updated", func(t *testing.T) {
		mockService.EXPECT().UpdateStatus(gomock.Any(), int64(1), dto.UpdateContactStatusRequest{Status: model.StatusRead}).
			Return(dto.ContactResponse{ID: 1, Status: model.StatusRead}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/v1/contact/1", strings.NewReader(`{"status":"read"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"read"`)
	})
}
