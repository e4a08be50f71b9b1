package repository

import (
	"strings"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/user/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type User interface {
	gRepo.Store[model.User]
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// FilterByEmail matches an account by its email. Emails are stored lower-cased.
func FilterByEmail(email string) gDto.FilterGroup {
	return gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldEmail,
		Value:    strings.ToLower(strings.TrimSpace(email)),
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})
}
