package dto

import (
	"hotel/internal/domains/virtualtour/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"gorm.io/datatypes"
)

type CreateVirtualTourRequest struct {
	RoomID       *int64         `json:"room_id"       validate:"omitempty,gt=0"`
	Title        string         `json:"title"         validate:"required,notblank,max=200"`
	Description  *string        `json:"description"`
	TourType     string         `json:"tour_type"     validate:"required,oneof=panorama video 3d"`
	TourURL      string         `json:"tour_url"      validate:"required,url"`
	TourData     datatypes.JSON `json:"tour_data"`
	ThumbnailURL *string        `json:"thumbnail_url" validate:"omitempty,url"`
	IsActive     *bool          `json:"is_active"`
	SortOrder    int            `json:"sort_order"    validate:"omitempty,gte=0"`
}

func (c *CreateVirtualTourRequest) ToModel(user string) model.VirtualTour {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.VirtualTour{
		RoomID:       c.RoomID,
		Title:        c.Title,
		Description:  c.Description,
		TourType:     c.TourType,
		TourURL:      c.TourURL,
		TourData:     c.TourData,
		ThumbnailURL: c.ThumbnailURL,
		IsActive:     active,
		SortOrder:    c.SortOrder,
		Metadata:     gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateVirtualTourRequest struct {
	RoomID       *int64         `db:"room_id"       json:"room_id"       validate:"omitempty,gt=0"`
	Title        string         `db:"title"         json:"title"         validate:"omitempty,notblank,max=200"`
	Description  *string        `db:"description"   json:"description"`
	TourType     string         `db:"tour_type"     json:"tour_type"     validate:"omitempty,oneof=panorama video 3d"`
	TourURL      string         `db:"tour_url"      json:"tour_url"      validate:"omitempty,url"`
	TourData     datatypes.JSON `db:"tour_data"     json:"tour_data"`
	ThumbnailURL *string        `db:"thumbnail_url" json:"thumbnail_url" validate:"omitempty,url"`
	IsActive     *bool          `db:"is_active"     json:"is_active"`
	SortOrder    *int           `db:"sort_order"    json:"sort_order"    validate:"omitempty,gte=0"`
}

type RoomSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type VirtualTourResponse struct {
	ID           int64          `json:"id"`
	RoomID       *int64         `json:"room_id"`
	Title        string         `json:"title"`
	Description  *string        `json:"description"`
	TourType     string         `json:"tour_type"`
	TourURL      string         `json:"tour_url"`
	TourData     datatypes.JSON `json:"tour_data"`
	ThumbnailURL *string        `json:"thumbnail_url"`
	IsActive     bool           `json:"is_active"`
	SortOrder    int            `json:"sort_order"`
	Room         *RoomSummary   `json:"room"`
	gDto.Metadata
}

func (r *VirtualTourResponse) FromModel(model model.VirtualTour) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Title = model.Title
	r.Description = model.Description
	r.TourType = model.TourType
	r.TourURL = model.TourURL
	r.TourData = model.TourData
	r.ThumbnailURL = model.ThumbnailURL
	r.IsActive = model.IsActive
	r.SortOrder = model.SortOrder
	r.Room = nil

	if model.RoomID != nil && model.RoomName != nil && model.RoomSlug != nil {
		r.Room = &RoomSummary{ID: *model.RoomID, Name: *model.RoomName, Slug: *model.RoomSlug}
	}

	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.VirtualTour) []VirtualTourResponse {
	res := make([]VirtualTourResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
