package model

import "hotel/shared/model"

const (
	TableName   = "gallery_images"
	EntityName  = "gallery image"
	EntityLabel = "Gallery image"

	FieldID           = "id"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldImageURL     = "image_url"
	FieldThumbnailURL = "thumbnail_url"
	FieldAltText      = "alt_text"
	FieldCategory     = "category"
	FieldIsFeatured   = "is_featured"
	FieldIsActive     = "is_active"
	FieldSortOrder    = "sort_order"
)

type GalleryImage struct {
	ID           int64   `db:"id"            generated:"true"`
	Title        string  `db:"title"`
	Description  *string `db:"description"`
	ImageURL     string  `db:"image_url"`
	ThumbnailURL *string `db:"thumbnail_url"`
	AltText      *string `db:"alt_text"`
	Category     *string `db:"category"`
	IsFeatured   bool    `db:"is_featured"`
	IsActive     bool    `db:"is_active"`
	SortOrder    int     `db:"sort_order"`
	model.Metadata
}
