package repository

import (
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/blogcategory/model"
	gRepo "hotel/shared/repository"
)

type BlogCategory interface {
	gRepo.Store[model.BlogCategory]
}

type repositoryImpl struct {
	gRepo.Repository[model.BlogCategory]
}

func New(db *postgres.Connection, otel otel.Otel) BlogCategory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BlogCategory](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
