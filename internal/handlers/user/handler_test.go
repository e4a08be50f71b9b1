package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/handlers/user"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockUser(ctrl)
	handler := user.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Get("/v1/users", handler.GetUsers)
	router.Post("/v1/users", handler.CreateUser)
	router.Get("/v1/users/{id}", handler.GetUserByID)
	router.Patch("/v1/users/{id}", handler.UpdateUser)
	router.Delete("/v1/users/{id}", handler.DeleteUser)

	return router, mockService
}

func serve(router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var envelope map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)

	return rec, envelope
}

func filterFields(filter gDto.FilterGroup) map[string]any {
	fields := map[string]any{}

	for _, item := range filter.Filters {
		if f, ok := item.(gDto.Filter); ok {
			fields[f.Field] = f.Value
		}
	}

	return fields
}

func TestGetUsers(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFields map[string]any
	}{
		{name: "no filters", query: "", wantFields: map[string]any{}},
		{name: "active only", query: "?active=true", wantFields: map[string]any{constant.FieldIsActive: true}},
		{name: "by role", query: "?role=staff", wantFields: map[string]any{model.FieldRole: "staff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			mockService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]dto.UserResponse, error) {
					assert.Equal(t, tt.wantFields, filterFields(filter))

					return []dto.UserResponse{{ID: 1, Email: "admin@hotel.test", Role: constant.RoleAdmin}}, nil
				})

			rec, body := serve(router, http.MethodGet, "/v1/users"+tt.query, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, float64(1), body["count"])
		})
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		router, _ := newRouter(t)

		rec, body := serve(router, http.MethodPost, "/v1/users", `{"email":"nope","password":"long-enough","name":"Staff"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", body["error"])
	})

	t.Run("email taken", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(dto.UserResponse{}, failure.Conflict("Email already registered"))

		rec, body := serve(router, http.MethodPost, "/v1/users", `{"email":"staff@hotel.test","password":"long-enough","name":"Staff"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Email already registered", body["error"])
	})

	t.Run("created", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Create(gomock.Any(), dto.CreateUserRequest{Email: "staff@hotel.test", Password: "long-enough", Name: "Staff"}).
			Return(dto.UserResponse{ID: 2, Email: "staff@hotel.test", Name: "Staff", Role: constant.RoleStaff, IsActive: true}, nil)

		rec, body := serve(router, http.MethodPost, "/v1/users", `{"email":"staff@hotel.test","password":"long-enough","name":"Staff"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "User created successfully", body["message"])
		assert.NotContains(t, body["data"].(map[string]any), "password")
	})
}

func TestUserByIDRoutes(t *testing.T) {
	t.Run("non numeric id", func(t *testing.T) {
		router, _ := newRouter(t)

		rec, body := serve(router, http.MethodGet, "/v1/users/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid user ID", body["error"])
	})

	t.Run("update own account", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).
			Return(dto.UserResponse{}, failure.BadRequestFromString("You cannot deactivate your own account"))

		rec, body := serve(router, http.MethodPatch, "/v1/users/3", `{"is_active":false}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "You cannot deactivate your own account", body["error"])
	})

	t.Run("deleted", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

		rec, body := serve(router, http.MethodDelete, "/v1/users/4", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User deleted successfully", body["message"])
	})
}
