package model

import (
	"hotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName   = "rooms"
	EntityName  = "room"
	EntityLabel = "Room"

	FieldID               = "id"
	FieldSlug             = "slug"
	FieldName             = "name"
	FieldShortDescription = "short_description"
	FieldLongDescription  = "long_description"
	FieldCapacity         = "capacity"
	FieldBeds             = "beds"
	FieldAmenities        = "amenities"
	FieldPrice            = "price"
	FieldImages           = "images"
	FieldIsActive         = "is_active"
	FieldSortOrder        = "sort_order"
)

type Room struct {
	ID               int64          `db:"id"                generated:"true"`
	Slug             string         `db:"slug"`
	Name             string         `db:"name"`
	ShortDescription string         `db:"short_description"`
	LongDescription  string         `db:"long_description"`
	Capacity         int            `db:"capacity"`
	Beds             string         `db:"beds"`
	Amenities        pq.StringArray `db:"amenities"`
	Price            float64        `db:"price"`
	Images           pq.StringArray `db:"images"`
	IsActive         bool           `db:"is_active"`
	SortOrder        int            `db:"sort_order"`
	model.Metadata
}
