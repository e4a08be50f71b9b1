package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	notificationModel "hotel/internal/domains/notification/model"
	notificationService "hotel/internal/domains/notification/service"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	MessageConfirmed = "Booking confirmed successfully"
	MessageCancelled = "Booking cancelled successfully"
	MessageCreated   = "Booking request submitted successfully"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id int64) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id int64) (dto.BookingResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	notification notificationService.Notification
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, notification notificationService.Notification, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		notification: notification,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomID, err := shared.ParseID(req.RoomID, roomModel.EntityName)
	if err != nil {
		return res, err
	}

	checkIn, err := timezone.ParseDate(req.CheckIn)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	checkOut, err := timezone.ParseDate(req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if !checkOut.After(checkIn) {
		return res, failure.Validation([]failure.Violation{{Field: "checkOut", Message: "checkOut must be after checkIn"}})
	}

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return res, err
	}

	if !room.IsActive {
		return res, failure.BadRequestFromString("Room is not available for booking")
	}

	if req.Guests > room.Capacity {
		return res, failure.Validation([]failure.Violation{
			{Field: "guests", Message: fmt.Sprintf("guests must be less than or equal to %d", room.Capacity)},
		})
	}

	booking := req.ToModel(roomID, checkIn, checkOut)
	booking.RoomName = &room.Name
	booking.RoomSlug = &room.Slug

	booking.ID, err = s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Confirm prices the stay with the room's current rate and marks the booking
// confirmed in one update. The guest notification that follows is best effort:
// its failure is logged and never undoes the confirmation.
func (s *serviceImpl) Confirm(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status == model.StatusCancelled {
		return res, failure.BadRequestFromString("Cancelled booking cannot be confirmed")
	}

	room, err := s.getRoom(ctx, booking.RoomID)
	if err != nil {
		return res, err
	}

	nights := timezone.Nights(booking.CheckIn, booking.CheckOut)
	totalPrice := room.Price * float64(nights)

	updatedFields := map[string]any{
		model.FieldStatus:       model.StatusConfirmed,
		model.FieldNights:       nights,
		model.FieldTotalPrice:   totalPrice,
		constant.FieldUpdatedAt: timezone.Now(),
		constant.FieldUpdatedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to confirm booking")

		return res, fmt.Errorf("failed to confirm booking: %w", err)
	}

	shared.ApplyFields(&booking, updatedFields)
	res.FromModel(booking)

	event := notificationModel.BookingConfirmation{
		BookingID:  booking.ID,
		GuestName:  booking.GuestName,
		GuestEmail: booking.GuestEmail,
		RoomName:   room.Name,
		CheckIn:    res.CheckIn,
		CheckOut:   res.CheckOut,
		Guests:     booking.Guests,
		Nights:     nights,
		TotalPrice: totalPrice,
	}

	if notifyErr := s.notification.BookingConfirmed(ctx, event); notifyErr != nil {
		log.Error().Err(notifyErr).Int64("booking_id", booking.ID).Msg("failed to notify guest of confirmation")
	}

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status == model.StatusCancelled {
		return res, failure.BadRequestFromString("Booking is already cancelled")
	}

	updatedFields := map[string]any{
		model.FieldStatus:       model.StatusCancelled,
		constant.FieldUpdatedAt: timezone.Now(),
		constant.FieldUpdatedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	shared.ApplyFields(&booking, updatedFields)
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound(model.EntityLabel)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return booking, failure.NotFound(model.EntityLabel)
	}

	return booking, nil
}

func (s *serviceImpl) getRoom(ctx context.Context, id int64) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return room, failure.NotFound(roomModel.EntityLabel)
	}

	return room, nil
}
