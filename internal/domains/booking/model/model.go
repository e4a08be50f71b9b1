package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName   = "bookings"
	EntityName  = "booking"
	EntityLabel = "Booking"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldGuestName  = "guest_name"
	FieldGuestEmail = "guest_email"
	FieldGuestPhone = "guest_phone"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldGuests     = "guests"
	FieldMessage    = "message"
	FieldStatus     = "status"
	FieldNights     = "nights"
	FieldTotalPrice = "total_price"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID         int64     `db:"id"          generated:"true"`
	RoomID     int64     `db:"room_id"`
	GuestName  string    `db:"guest_name"`
	GuestEmail string    `db:"guest_email"`
	GuestPhone string    `db:"guest_phone"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Guests     int       `db:"guests"`
	Message    *string   `db:"message"`
	Status     Status    `db:"status"`
	Nights     *int      `db:"nights"`
	TotalPrice *float64  `db:"total_price"`
	RoomName   *string   `db:"room_name"   table:"rooms" column:"name"`
	RoomSlug   *string   `db:"room_slug"   table:"rooms" column:"slug"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = bookings.room_id"
}
