package model

import "hotel/shared/model"

const (
	TableName   = "contact_messages"
	EntityName  = "contact message"
	EntityLabel = "Contact message"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldStatus  = "status"
)

type Status string

const (
	StatusUnread   Status = "unread"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

type ContactMessage struct {
	ID      int64   `db:"id"      generated:"true"`
	Name    string  `db:"name"`
	Email   string  `db:"email"`
	Phone   *string `db:"phone"`
	Subject string  `db:"subject"`
	Message string  `db:"message"`
	Status  Status  `db:"status"`
	model.Metadata
}
