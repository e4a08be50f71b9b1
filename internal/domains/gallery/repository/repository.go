package repository

import (
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/gallery/model"
	gRepo "hotel/shared/repository"
)

type Gallery interface {
	gRepo.Store[model.GalleryImage]
}

type repositoryImpl struct {
	gRepo.Repository[model.GalleryImage]
}

func New(db *postgres.Connection, otel otel.Otel) Gallery {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GalleryImage](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
