package item

import (
	"context"

	"github.com/peeky-app/peeky-service/internal/item/dto"
	"github.com/peeky-app/peeky-service/internal/model"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/usecase_mock.go github.com/peeky-app/peeky-service/internal/item UseCase

type UseCase interface {
	ListItems(ctx context.Context, categoryID int64) ([]model.Item, error)
	ListAllItems(ctx context.Context) ([]model.ItemWithCategory, error)
	CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error)
	UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	ReorderItems(ctx context.Context, categoryID int64, ids []int64) error
}
