package model

import "hotel/shared/model"

const (
	TableName   = "services"
	EntityName  = "service"
	EntityLabel = "Service"

	FieldID            = "id"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldType          = "type"
	FieldPrice         = "price"
	FieldPriceCurrency = "price_currency"
	FieldIcon          = "icon"
	FieldImageURL      = "image_url"
	FieldIsActive      = "is_active"
	FieldSortOrder     = "sort_order"

	DefaultCurrency = "USD"
)

// Service is an amenity or paid extra offered by the hotel. Type is exposed
// to clients as "category".
type Service struct {
	ID            int64    `db:"id"             generated:"true"`
	Name          string   `db:"name"`
	Description   string   `db:"description"`
	Type          string   `db:"type"`
	Price         *float64 `db:"price"`
	PriceCurrency string   `db:"price_currency"`
	Icon          *string  `db:"icon"`
	ImageURL      *string  `db:"image_url"`
	IsActive      bool     `db:"is_active"`
	SortOrder     int      `db:"sort_order"`
	model.Metadata
}
