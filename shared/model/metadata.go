package model

import "time"

// Metadata holds bookkeeping columns shared by every table.
// CreatedBy and UpdatedBy never leave the service.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	CreatedBy string    `db:"created_by"`
	UpdatedBy string    `db:"updated_by"`
}

func NewMetadata(now time.Time, actor string) Metadata {
	return Metadata{
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actor,
		UpdatedBy: actor,
	}
}
