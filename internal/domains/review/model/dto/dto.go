package dto

import (
	"hotel/internal/domains/review/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"hotel/shared/validator"
)

// CreateReviewSchema is the public review form.
var CreateReviewSchema = validator.Schema{
	{Name: "guestName", Kind: validator.KindString, Required: true, Rules: "max=120"},
	{Name: "guestEmail", Kind: validator.KindString, Rules: "omitempty,email"},
	{Name: "rating", Kind: validator.KindInteger, Required: true, Rules: "min=1,max=5"},
	{Name: "comment", Kind: validator.KindString, Required: true},
	{Name: "roomId", Kind: validator.KindString},
}

type CreateReviewRequest struct {
	GuestName  string  `json:"guestName"`
	GuestEmail *string `json:"guestEmail"`
	Rating     int     `json:"rating"`
	Comment    string  `json:"comment"`
	RoomID     *string `json:"roomId"`
}

// ToModel builds a review waiting for moderation.
func (c *CreateReviewRequest) ToModel(roomID *int64) model.Review {
	actor := c.GuestName
	if c.GuestEmail != nil && *c.GuestEmail != "" {
		actor = *c.GuestEmail
	}

	return model.Review{
		RoomID:     roomID,
		GuestName:  c.GuestName,
		GuestEmail: c.GuestEmail,
		Rating:     c.Rating,
		Comment:    c.Comment,
		Metadata:   gModel.NewMetadata(timezone.Now(), actor),
	}
}

type UpdateReviewRequest struct {
	IsApproved *bool `db:"is_approved" json:"is_approved"`
	IsFeatured *bool `db:"is_featured" json:"is_featured"`
}

type ReviewResponse struct {
	ID         int64  `json:"id"`
	RoomID     *int64 `json:"room_id"`
	GuestName  string `json:"guest_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	IsApproved bool   `json:"is_approved"`
	IsFeatured bool   `json:"is_featured"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.IsApproved = model.IsApproved
	r.IsFeatured = model.IsFeatured
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Review) []ReviewResponse {
	res := make([]ReviewResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
