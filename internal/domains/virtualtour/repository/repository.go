package repository

import (
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/virtualtour/model"
	gRepo "hotel/shared/repository"
)

type VirtualTour interface {
	gRepo.Store[model.VirtualTour]
}

type repositoryImpl struct {
	gRepo.Repository[model.VirtualTour]
}

func New(db *postgres.Connection, otel otel.Otel) VirtualTour {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.VirtualTour](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
