package dto

import (
	"hotel/internal/domains/attraction/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

type CreateAttractionRequest struct {
	Slug            string  `json:"slug"             validate:"omitempty,slug,max=120"`
	Name            string  `json:"name"             validate:"required,notblank,max=120"`
	Description     string  `json:"description"      validate:"required,notblank,max=500"`
	LongDescription *string `json:"long_description"`
	Category        *string `json:"category"         validate:"omitempty,max=60"`
	Distance        *string `json:"distance"         validate:"omitempty,max=60"`
	Address         *string `json:"address"          validate:"omitempty,max=255"`
	OpeningHours    *string `json:"opening_hours"    validate:"omitempty,max=120"`
	PriceRange      *string `json:"price_range"      validate:"omitempty,max=60"`
	ImageURL        *string `json:"image_url"        validate:"omitempty,url"`
	Website         *string `json:"website"          validate:"omitempty,url"`
	IsActive        *bool   `json:"is_active"`
	IsFeatured      bool    `json:"is_featured"`
	SortOrder       int     `json:"sort_order"       validate:"omitempty,gte=0"`
}

// ToModel derives a missing slug from the name. Attractions are active unless
// stated otherwise.
func (c *CreateAttractionRequest) ToModel(user string) model.Attraction {
	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Name)
	}

	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Attraction{
		Slug:            slug,
		Name:            c.Name,
		Description:     c.Description,
		LongDescription: c.LongDescription,
		Category:        c.Category,
		Distance:        c.Distance,
		Address:         c.Address,
		OpeningHours:    c.OpeningHours,
		PriceRange:      c.PriceRange,
		ImageURL:        c.ImageURL,
		Website:         c.Website,
		IsActive:        active,
		IsFeatured:      c.IsFeatured,
		SortOrder:       c.SortOrder,
		Metadata:        gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateAttractionRequest struct {
	Slug            string  `db:"slug"             json:"slug"             validate:"omitempty,slug,max=120"`
	Name            string  `db:"name"             json:"name"             validate:"omitempty,notblank,max=120"`
	Description     string  `db:"description"      json:"description"      validate:"omitempty,notblank,max=500"`
	LongDescription *string `db:"long_description" json:"long_description"`
	Category        *string `db:"category"         json:"category"         validate:"omitempty,max=60"`
	Distance        *string `db:"distance"         json:"distance"         validate:"omitempty,max=60"`
	Address         *string `db:"address"          json:"address"          validate:"omitempty,max=255"`
	OpeningHours    *string `db:"opening_hours"    json:"opening_hours"    validate:"omitempty,max=120"`
	PriceRange      *string `db:"price_range"      json:"price_range"      validate:"omitempty,max=60"`
	ImageURL        *string `db:"image_url"        json:"image_url"        validate:"omitempty,url"`
	Website         *string `db:"website"          json:"website"          validate:"omitempty,url"`
	IsActive        *bool   `db:"is_active"        json:"is_active"`
	IsFeatured      *bool   `db:"is_featured"      json:"is_featured"`
	SortOrder       *int    `db:"sort_order"       json:"sort_order"       validate:"omitempty,gte=0"`
}

type AttractionResponse struct {
	ID              int64   `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	LongDescription *string `json:"long_description"`
	Category        *string `json:"category"`
	Distance        *string `json:"distance"`
	Address         *string `json:"address"`
	OpeningHours    *string `json:"opening_hours"`
	PriceRange      *string `json:"price_range"`
	ImageURL        *string `json:"image_url"`
	Website         *string `json:"website"`
	IsActive        bool    `json:"is_active"`
	IsFeatured      bool    `json:"is_featured"`
	SortOrder       int     `json:"sort_order"`
	gDto.Metadata
}

func (r *AttractionResponse) FromModel(model model.Attraction) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Name = model.Name
	r.Description = model.Description
	r.LongDescription = model.LongDescription
	r.Category = model.Category
	r.Distance = model.Distance
	r.Address = model.Address
	r.OpeningHours = model.OpeningHours
	r.PriceRange = model.PriceRange
	r.ImageURL = model.ImageURL
	r.Website = model.Website
	r.IsActive = model.IsActive
	r.IsFeatured = model.IsFeatured
	r.SortOrder = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Attraction) []AttractionResponse {
	res := make([]AttractionResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
