package repository

import (
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/blogpost/model"
	gRepo "hotel/shared/repository"
)

type BlogPost interface {
	gRepo.Store[model.BlogPost]
}

type repositoryImpl struct {
	gRepo.Repository[model.BlogPost]
}

func New(db *postgres.Connection, otel otel.Otel) BlogPost {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BlogPost](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
