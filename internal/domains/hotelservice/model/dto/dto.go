package dto

import (
	"strings"

	"hotel/internal/domains/hotelservice/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

type CreateServiceRequest struct {
	Name          string   `json:"name"           validate:"required,notblank,max=120"`
	Description   string   `json:"description"`
	Category      string   `json:"category"       validate:"required,notblank,max=60"`
	Price         *float64 `json:"price"          validate:"omitempty,gte=0"`
	PriceCurrency string   `json:"price_currency" validate:"omitempty,len=3,alpha"`
	Icon          *string  `json:"icon"           validate:"omitempty,max=60"`
	ImageURL      *string  `json:"image_url"      validate:"omitempty,url"`
	IsActive      *bool    `json:"is_active"`
	SortOrder     int      `json:"sort_order"     validate:"omitempty,gte=0"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	currency := strings.ToUpper(c.PriceCurrency)
	if currency == "" {
		currency = model.DefaultCurrency
	}

	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Service{
		Name:          c.Name,
		Description:   c.Description,
		Type:          c.Category,
		Price:         c.Price,
		PriceCurrency: currency,
		Icon:          c.Icon,
		ImageURL:      c.ImageURL,
		IsActive:      active,
		SortOrder:     c.SortOrder,
		Metadata:      gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateServiceRequest struct {
	Name          string   `db:"name"           json:"name"           validate:"omitempty,notblank,max=120"`
	Description   *string  `db:"description"    json:"description"`
	Category      string   `db:"type"           json:"category"       validate:"omitempty,notblank,max=60"`
	Price         *float64 `db:"price"          json:"price"          validate:"omitempty,gte=0"`
	PriceCurrency string   `db:"price_currency" json:"price_currency" validate:"omitempty,len=3,alpha"`
	Icon          *string  `db:"icon"           json:"icon"           validate:"omitempty,max=60"`
	ImageURL      *string  `db:"image_url"      json:"image_url"      validate:"omitempty,url"`
	IsActive      *bool    `db:"is_active"      json:"is_active"`
	SortOrder     *int     `db:"sort_order"     json:"sort_order"     validate:"omitempty,gte=0"`
}

type ServiceResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         *float64 `json:"price"`
	PriceCurrency string   `json:"price_currency"`
	Icon          *string  `json:"icon"`
	ImageURL      *string  `json:"image_url"`
	IsActive      bool     `json:"is_active"`
	SortOrder     int      `json:"sort_order"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Category = model.Type
	r.Price = model.Price
	r.PriceCurrency = model.PriceCurrency
	r.Icon = model.Icon
	r.ImageURL = model.ImageURL
	r.IsActive = model.IsActive
	r.SortOrder = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Service) []ServiceResponse {
	res := make([]ServiceResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
