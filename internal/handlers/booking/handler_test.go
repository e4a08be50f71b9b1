package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/handlers/booking"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockBooking(ctrl)
	handler := booking.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Post("/v1/bookings", handler.CreateBooking)
	router.Get("/v1/bookings", handler.GetBookings)
	router.Get("/v1/bookings/{id}", handler.GetBookingByID)
	router.Post("/v1/bookings/{id}/confirm", handler.ConfirmBooking)
	router.Post("/v1/bookings/{id}/cancel", handler.CancelBooking)
	router.Delete("/v1/bookings/{id}", handler.DeleteBooking)

	return router, mockService
}

func serve(router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var envelope map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)

	return rec, envelope
}

func TestCreateBooking(t *testing.T) {
	router, mockService := newRouter(t)

	t.Run("bad email is the only violation", func(t *testing.T) {
		body := `{"guestName":"A","guestEmail":"bad","guestPhone":"1","checkIn":"2024-01-01","checkOut":"2024-01-03","roomId":"r1","guests":2}`

		rec, envelope := serve(router, http.MethodPost, "/v1/bookings", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "Validation failed", envelope["error"])

		details, _ := envelope["details"].([]any)
		assert.Len(t, details, 1)
		assert.Equal(t, "guestEmail", details[0].(map[string]any)["field"])
	})

	t.Run("malformed body is a generic server failure", func(t *testing.T) {
		rec, envelope := serve(router, http.MethodPost, "/v1/bookings", `{"guestName":`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"success": false, "error": "Internal server error"}, envelope)
	})

	t.Run("valid request", func(t *testing.T) {
		body := `{"guestName":"A","guestEmail":"a@example.com","guestPhone":"1","checkIn":"2024-01-01","checkOut":"2024-01-03","roomId":"3","guests":2,"status":"confirmed"}`

		mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
				assert.Equal(t, "3", req.RoomID)
				assert.Equal(t, 2, req.Guests)
				assert.Nil(t, req.Message)

				return dto.BookingResponse{ID: 1, Status: model.StatusPending}, nil
			})

		rec, envelope := serve(router, http.MethodPost, "/v1/bookings", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "pending", envelope["data"].(map[string]any)["status"])
	})
}

func TestGetBookings(t *testing.T) {
	router, mockService := newRouter(t)

	t.Run("filters by room and status", func(t *testing.T) {
		mockService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BookingResponse, error) {
				assert.Len(t, filter.Filters, 2)
				assert.Equal(t, "bookings.created_at DESC", params.OrderBy())

				return []dto.BookingResponse{{ID: 1}, {ID: 2}}, nil
			})

		rec, envelope := serve(router, http.MethodGet, "/v1/bookings?room_id=3&status=pending", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), envelope["count"])
	})

	t.Run("non numeric room filter", func(t *testing.T) {
		rec, envelope := serve(router, http.MethodGet, "/v1/bookings?room_id=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid room ID", envelope["error"])
	})
}

func TestConfirmBooking(t *testing.T) {
	router, mockService := newRouter(t)

	t.Run("non numeric id", func(t *testing.T) {
		rec, envelope := serve(router, http.MethodPost, "/v1/bookings/abc/confirm", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"success": false, "error": "Invalid booking ID"}, envelope)
	})

	t.Run("confirmed with message", func(t *testing.T) {
		nights, total := 2, 200.0
		mockService.EXPECT().Confirm(gomock.Any(), int64(5)).Return(dto.BookingResponse{
			ID:         5,
			Status:     model.StatusConfirmed,
			Nights:     &nights,
			TotalPrice: &total,
		}, nil)

		rec, envelope := serve(router, http.MethodPost, "/v1/bookings/5/confirm", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "Booking confirmed successfully", envelope["message"])
		assert.Equal(t, float64(200), envelope["data"].(map[string]any)["total_price"])
		assert.NotContains(t, envelope, "count")
	})

	t.Run("missing booking", func(t *testing.T) {
		mockService.EXPECT().Confirm(gomock.Any(), int64(6)).Return(dto.BookingResponse{}, failure.NotFound("Booking"))

		rec, envelope := serve(router, http.MethodPost, "/v1/bookings/6/confirm", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Booking not found", envelope["error"])
	})

	t.Run("persistence failure is not leaked", func(t *testing.T) {
		mockService.EXPECT().Confirm(gomock.Any(), int64(8)).Return(dto.BookingResponse{}, errors.New("pq: connection refused"))

		rec, envelope := serve(router, http.MethodPost, "/v1/bookings/8/confirm", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", envelope["error"])
	})
}

func TestCancelAndDeleteBooking(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().Cancel(gomock.Any(), int64(4)).Return(dto.BookingResponse{ID: 4, Status: model.StatusCancelled}, nil)

	rec, envelope := serve(router, http.MethodPost, "/v1/bookings/4/cancel", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking cancelled successfully", envelope["message"])

	mockService.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	rec, envelope = serve(router, http.MethodDelete, "/v1/bookings/4", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking deleted successfully", envelope["message"])

	rec, _ = serve(router, http.MethodGet, "/v1/bookings/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
