package repository

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"

	"hotel/shared/dto"
)

// Store is the persistence contract every domain repository exposes.
type Store[T any] interface {
	Insert(ctx context.Context, model T) (int64, error)
	Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error)
	GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error)
	Exist(ctx context.Context, filter dto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter dto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error
	Delete(ctx context.Context, filter dto.FilterGroup) error
}
