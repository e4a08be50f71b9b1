package repository

import (
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/contact/model"
	gRepo "hotel/shared/repository"
)

type Contact interface {
	gRepo.Store[model.ContactMessage]
}

type repositoryImpl struct {
	gRepo.Repository[model.ContactMessage]
}

func New(db *postgres.Connection, otel otel.Otel) Contact {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContactMessage](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
