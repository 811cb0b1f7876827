package category

import (
	"context"

	"github.com/peeky-app/peeky-service/internal/category/dto"
	"github.com/peeky-app/peeky-service/internal/model"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/usecase_mock.go github.com/peeky-app/peeky-service/internal/category UseCase

type UseCase interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ReorderCategories(ctx context.Context, ids []int64) error
}
