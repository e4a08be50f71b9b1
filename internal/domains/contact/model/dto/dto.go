package dto

import (
	"hotel/internal/domains/contact/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"hotel/shared/validator"
)

var CreateContactSchema = validator.Schema{
	{Name: "name", Kind: validator.KindString, Required: true},
	{Name: "email", Kind: validator.KindString, Required: true, Rules: "email"},
	{Name: "phone", Kind: validator.KindString},
	{Name: "subject", Kind: validator.KindString, Required: true},
	{Name: "message", Kind: validator.KindString, Required: true},
}

type CreateContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

func (c *CreateContactRequest) ToModel() model.ContactMessage {
	return model.ContactMessage{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Subject:  c.Subject,
		Message:  c.Message,
		Status:   model.StatusUnread,
		Metadata: gModel.NewMetadata(timezone.Now(), c.Email),
	}
}

// UpdateContactStatusRequest only ever touches the status column.
type UpdateContactStatusRequest struct {
	Status model.Status `db:"status" json:"status" validate:"required,oneof=unread read replied archived"`
}

type ContactResponse struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Phone   *string      `json:"phone"`
	Subject string       `json:"subject"`
	Message string       `json:"message"`
	Status  model.Status `json:"status"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.ContactMessage) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Subject = model.Subject
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.ContactMessage) []ContactResponse {
	res := make([]ContactResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
