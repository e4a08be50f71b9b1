package repository

import (
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/attraction/model"
	gRepo "hotel/shared/repository"
)

type Attraction interface {
	gRepo.Store[model.Attraction]
}

type repositoryImpl struct {
	gRepo.Repository[model.Attraction]
}

func New(db *postgres.Connection, otel otel.Otel) Attraction {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Attraction](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
