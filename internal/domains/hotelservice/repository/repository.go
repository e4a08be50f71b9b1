package repository

import (
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/hotelservice/model"
	gRepo "hotel/shared/repository"
)

type Service interface {
	gRepo.Store[model.Service]
}

type repositoryImpl struct {
	gRepo.Repository[model.Service]
}

func New(db *postgres.Connection, otel otel.Otel) Service {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Service](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
