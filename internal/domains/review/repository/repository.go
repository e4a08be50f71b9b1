package repository

import (
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/review/model"
	gRepo "hotel/shared/repository"
)

type Review interface {
	gRepo.Store[model.Review]
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
