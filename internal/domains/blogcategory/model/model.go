package model

import "hotel/shared/model"

const (
	TableName   = "blog_categories"
	EntityName  = "blog category"
	EntityLabel = "Blog category"

	FieldID          = "id"
	FieldSlug        = "slug"
	FieldName        = "name"
	FieldDescription = "description"
	FieldColor       = "color"
)

type BlogCategory struct {
	ID          int64   `db:"id"          generated:"true"`
	Slug        string  `db:"slug"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Color       *string `db:"color"`
	model.Metadata
}
