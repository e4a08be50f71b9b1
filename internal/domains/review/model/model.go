package model

import "hotel/shared/model"

const (
	TableName   = "reviews"
	EntityName  = "review"
	EntityLabel = "Review"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldGuestName  = "guest_name"
	FieldGuestEmail = "guest_email"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldIsApproved = "is_approved"
	FieldIsFeatured = "is_featured"
)

type Review struct {
	ID         int64   `db:"id"          generated:"true"`
	RoomID     *int64  `db:"room_id"`
	GuestName  string  `db:"guest_name"`
	GuestEmail *string `db:"guest_email"`
	Rating     int     `db:"rating"`
	Comment    string  `db:"comment"`
	IsApproved bool    `db:"is_approved"`
	IsFeatured bool    `db:"is_featured"`
	model.Metadata
}
