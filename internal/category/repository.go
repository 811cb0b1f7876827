package category

import (
	"context"
	"time"

	"github.com/peeky-app/peeky-service/internal/model"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/repository_mock.go github.com/peeky-app/peeky-service/internal/category Repository

type Repository interface {
	// Create inserts c at the end of the category list and sets its ID and SortOrder.
	Create(ctx context.Context, c *model.Category) error
	// FindByID returns nil, nil when no category has the id.
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	Reorder(ctx context.Context, ids []int64, updatedAt time.Time) error
}
