package dto

import (
	"hotel/internal/domains/gallery/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

type CreateGalleryImageRequest struct {
	Title        string  `json:"title"         validate:"required,notblank,max=200"`
	Description  *string `json:"description"`
	ImageURL     string  `json:"image_url"     validate:"required,url"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
	AltText      *string `json:"alt_text"      validate:"omitempty,max=200"`
	Category     *string `json:"category"      validate:"omitempty,max=60"`
	IsFeatured   bool    `json:"is_featured"`
	IsActive     *bool   `json:"is_active"`
	SortOrder    int     `json:"sort_order"    validate:"omitempty,gte=0"`
}

func (c *CreateGalleryImageRequest) ToModel(user string) model.GalleryImage {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.GalleryImage{
		Title:        c.Title,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		ThumbnailURL: c.ThumbnailURL,
		AltText:      c.AltText,
		Category:     c.Category,
		IsFeatured:   c.IsFeatured,
		IsActive:     active,
		SortOrder:    c.SortOrder,
		Metadata:     gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateGalleryImageRequest struct {
	Title        string  `db:"title"         json:"title"         validate:"omitempty,notblank,max=200"`
	Description  *string `db:"description"   json:"description"`
	ImageURL     string  `db:"image_url"     json:"image_url"     validate:"omitempty,url"`
	ThumbnailURL *string `db:"thumbnail_url" json:"thumbnail_url" validate:"omitempty,url"`
	AltText      *string `db:"alt_text"      json:"alt_text"      validate:"omitempty,max=200"`
	Category     *string `db:"category"      json:"category"      validate:"omitempty,max=60"`
	IsFeatured   *bool   `db:"is_featured"   json:"is_featured"`
	IsActive     *bool   `db:"is_active"     json:"is_active"`
	SortOrder    *int    `db:"sort_order"    json:"sort_order"    validate:"omitempty,gte=0"`
}

type GalleryImageResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	ImageURL     string  `json:"image_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	AltText      *string `json:"alt_text"`
	Category     *string `json:"category"`
	IsFeatured   bool    `json:"is_featured"`
	IsActive     bool    `json:"is_active"`
	SortOrder    int     `json:"sort_order"`
	gDto.Metadata
}

func (r *GalleryImageResponse) FromModel(model model.GalleryImage) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.ThumbnailURL = model.ThumbnailURL
	r.AltText = model.AltText
	r.Category = model.Category
	r.IsFeatured = model.IsFeatured
	r.IsActive = model.IsActive
	r.SortOrder = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.GalleryImage) []GalleryImageResponse {
	res := make([]GalleryImageResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
