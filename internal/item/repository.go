package item

import (
	"context"
	"time"

	"github.com/peeky-app/peeky-service/internal/model"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/repository_mock.go github.com/peeky-app/peeky-service/internal/item Repository

type Repository interface {
	// Create appends it to its category and sets ID and SortOrder.
	Create(ctx context.Context, it *model.Item) error
	// FindByID returns nil, nil when no item has the id.
	FindByID(ctx context.Context, id int64) (*model.Item, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]model.Item, error)
	FindAllWithCategory(ctx context.Context) ([]model.ItemWithCategory, error)
	Update(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id int64) (bool, error)
	Reorder(ctx context.Context, categoryID int64, ids []int64, updatedAt time.Time) error
}
