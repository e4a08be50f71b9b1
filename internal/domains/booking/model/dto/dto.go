package dto

import (
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"hotel/shared/validator"
)

// CreateBookingSchema is the public booking form. Keys are camelCase as sent
// by the website.
var CreateBookingSchema = validator.Schema{
	{Name: "guestName", Kind: validator.KindString, Required: true},
	{Name: "guestEmail", Kind: validator.KindString, Required: true, Rules: "email"},
	{Name: "guestPhone", Kind: validator.KindString, Required: true},
	{Name: "checkIn", Kind: validator.KindString, Required: true, Rules: "datetime=" + constant.DayFormat},
	{Name: "checkOut", Kind: validator.KindString, Required: true, Rules: "datetime=" + constant.DayFormat},
	{Name: "roomId", Kind: validator.KindString, Required: true},
	{Name: "guests", Kind: validator.KindInteger, Required: true, Rules: "min=1"},
	{Name: "message", Kind: validator.KindString},
}

type CreateBookingRequest struct {
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone string  `json:"guestPhone"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	RoomID     string  `json:"roomId"`
	Guests     int     `json:"guests"`
	Message    *string `json:"message"`
}

// ToModel builds a pending booking. Dates are already validated by the schema.
func (c *CreateBookingRequest) ToModel(roomID int64, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		RoomID:     roomID,
		GuestName:  c.GuestName,
		GuestEmail: c.GuestEmail,
		GuestPhone: c.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     c.Guests,
		Message:    c.Message,
		Status:     model.StatusPending,
		Metadata:   gModel.NewMetadata(timezone.Now(), c.GuestEmail),
	}
}

type RoomSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type BookingResponse struct {
	ID         int64        `json:"id"`
	RoomID     int64        `json:"room_id"`
	GuestName  string       `json:"guest_name"`
	GuestEmail string       `json:"guest_email"`
	GuestPhone string       `json:"guest_phone"`
	CheckIn    string       `json:"check_in"`
	CheckOut   string       `json:"check_out"`
	Guests     int          `json:"guests"`
	Message    *string      `json:"message"`
	Status     model.Status `json:"status"`
	Nights     *int         `json:"nights"`
	TotalPrice *float64     `json:"total_price"`
	Room       *RoomSummary `json:"room"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckIn = model.CheckIn.Format(constant.DayFormat)
	r.CheckOut = model.CheckOut.Format(constant.DayFormat)
	r.Guests = model.Guests
	r.Message = model.Message
	r.Status = model.Status
	r.Nights = model.Nights
	r.TotalPrice = model.TotalPrice
	r.Room = nil

	if model.RoomName != nil && model.RoomSlug != nil {
		r.Room = &RoomSummary{ID: model.RoomID, Name: *model.RoomName, Slug: *model.RoomSlug}
	}

	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
