package dto

import (
	"hotel/internal/domains/blogcategory/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

type CreateBlogCategoryRequest struct {
	Slug        string  `json:"slug"        validate:"omitempty,slug,max=120"`
	Name        string  `json:"name"        validate:"required,notblank,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color"       validate:"omitempty,hexcolor"`
}

// ToModel derives a missing slug from the name.
func (c *CreateBlogCategoryRequest) ToModel(user string) model.BlogCategory {
	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Name)
	}

	return model.BlogCategory{
		Slug:        slug,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateBlogCategoryRequest struct {
	Slug        string  `db:"slug"        json:"slug"        validate:"omitempty,slug,max=120"`
	Name        string  `db:"name"        json:"name"        validate:"omitempty,notblank,max=120"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=500"`
	Color       *string `db:"color"       json:"color"       validate:"omitempty,hexcolor"`
}

type BlogCategoryResponse struct {
	ID          int64   `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	gDto.Metadata
}

func (r *BlogCategoryResponse) FromModel(model model.BlogCategory) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Name = model.Name
	r.Description = model.Description
	r.Color = model.Color
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.BlogCategory) []BlogCategoryResponse {
	res := make([]BlogCategoryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
