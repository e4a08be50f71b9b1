package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	Slug             string   `json:"slug"              validate:"omitempty,slug,max=120"`
	Name             string   `json:"name"              validate:"required,notblank,max=120"`
	ShortDescription string   `json:"short_description" validate:"omitempty,max=500"`
	LongDescription  string   `json:"long_description"`
	Capacity         int      `json:"capacity"          validate:"required,min=1"`
	Beds             string   `json:"beds"              validate:"omitempty,max=120"`
	Amenities        []string `json:"amenities"`
	Price            float64  `json:"price"             validate:"required,gt=0"`
	Images           []string `json:"images"            validate:"omitempty,dive,url"`
	IsActive         *bool    `json:"is_active"`
	SortOrder        int      `json:"sort_order"        validate:"omitempty,gte=0"`
}

// ToModel builds the room to insert. A missing slug is derived from the name
// and rooms are active unless stated otherwise.
func (c *CreateRoomRequest) ToModel(user string) model.Room {
	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Name)
	}

	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Room{
		Slug:             slug,
		Name:             c.Name,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		Capacity:         c.Capacity,
		Beds:             c.Beds,
		Amenities:        pq.StringArray(c.Amenities),
		Price:            c.Price,
		Images:           pq.StringArray(c.Images),
		IsActive:         active,
		SortOrder:        c.SortOrder,
		Metadata:         gModel.NewMetadata(timezone.Now(), user),
	}
}

// UpdateRoomRequest is the allow-list of an update. Only fields with a db tag
// reach the column patch.
type UpdateRoomRequest struct {
	Slug             string         `db:"slug"              json:"slug"              validate:"omitempty,slug,max=120"`
	Name             string         `db:"name"              json:"name"              validate:"omitempty,notblank,max=120"`
	ShortDescription *string        `db:"short_description" json:"short_description" validate:"omitempty,max=500"`
	LongDescription  *string        `db:"long_description"  json:"long_description"`
	Capacity         *int           `db:"capacity"          json:"capacity"          validate:"omitempty,min=1"`
	Beds             *string        `db:"beds"              json:"beds"              validate:"omitempty,max=120"`
	Amenities        pq.StringArray `db:"amenities"         json:"amenities"`
	Price            *float64       `db:"price"             json:"price"             validate:"omitempty,gt=0"`
	Images           pq.StringArray `db:"images"            json:"images"            validate:"omitempty,dive,url"`
	IsActive         *bool          `db:"is_active"         json:"is_active"`
	SortOrder        *int           `db:"sort_order"        json:"sort_order"        validate:"omitempty,gte=0"`
}

type RoomResponse struct {
	ID               int64    `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description"`
	Capacity         int      `json:"capacity"`
	Beds             string   `json:"beds"`
	Amenities        []string `json:"amenities"`
	Price            float64  `json:"price"`
	Images           []string `json:"images"`
	IsActive         bool     `json:"is_active"`
	SortOrder        int      `json:"sort_order"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Name = model.Name
	r.ShortDescription = model.ShortDescription
	r.LongDescription = model.LongDescription
	r.Capacity = model.Capacity
	r.Beds = model.Beds
	r.Amenities = nonNil(model.Amenities)
	r.Price = model.Price
	r.Images = nonNil(model.Images)
	r.IsActive = model.IsActive
	r.SortOrder = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
