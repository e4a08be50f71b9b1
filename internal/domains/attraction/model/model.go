package model

import "hotel/shared/model"

const (
	TableName   = "attractions"
	EntityName  = "attraction"
	EntityLabel = "Attraction"

	FieldID              = "id"
	FieldSlug            = "slug"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldLongDescription = "long_description"
	FieldCategory        = "category"
	FieldDistance        = "distance"
	FieldAddress         = "address"
	FieldOpeningHours    = "opening_hours"
	FieldPriceRange      = "price_range"
	FieldImageURL        = "image_url"
	FieldWebsite         = "website"
	FieldIsActive        = "is_active"
	FieldIsFeatured      = "is_featured"
	FieldSortOrder       = "sort_order"
)

type Attraction struct {
	ID              int64   `db:"id"               generated:"true"`
	Slug            string  `db:"slug"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	LongDescription *string `db:"long_description"`
	Category        *string `db:"category"`
	Distance        *string `db:"distance"`
	Address         *string `db:"address"`
	OpeningHours    *string `db:"opening_hours"`
	PriceRange      *string `db:"price_range"`
	ImageURL        *string `db:"image_url"`
	Website         *string `db:"website"`
	IsActive        bool    `db:"is_active"`
	IsFeatured      bool    `db:"is_featured"`
	SortOrder       int     `db:"sort_order"`
	model.Metadata
}
