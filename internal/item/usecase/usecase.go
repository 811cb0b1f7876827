package usecase

import (
	"context"
	"time"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/peeky-app/peeky-service/internal/item"
	"github.com/peeky-app/peeky-service/internal/item/dto"
	"github.com/peeky-app/peeky-service/internal/model"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
)

type itemUseCase struct {
	repo   item.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewItemUseCase(repo item.Repository, log logger.ZapLogger) item.UseCase {
	return &itemUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *itemUseCase) ListItems(ctx context.Context, categoryID int64) ([]model.Item, error) {
	return uc.repo.FindByCategory(ctx, categoryID)
}

func (uc *itemUseCase) ListAllItems(ctx context.Context) ([]model.ItemWithCategory, error) {
	return uc.repo.FindAllWithCategory(ctx)
}

// CreateItem does not check the category itself; a missing parent fails on
// the store's foreign key.
func (uc *itemUseCase) CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error) {
	var value string
	if input.Value != nil {
		value = *input.Value
	}

	now := uc.timestamp()
	it := &model.Item{
		BaseModel: model.BaseModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID: input.CategoryID,
		Label:      input.Label,
		Value:      value,
	}
	if err := uc.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	uc.logger.Debug("item created",
		zap.Int64("item_id", it.ID),
		zap.Int64("category_id", it.CategoryID),
		zap.Int64("sort_order", it.SortOrder),
	)
	return it, nil
}

func (uc *itemUseCase) UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.Item, error) {
	it, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, errors.NotFoundf("Item %d", input.ID)
	}

	if input.Label != nil {
		it.Label = *input.Label
	}
	if input.Value != nil {
		it.Value = *input.Value
	}
	if input.SortOrder != nil {
		it.SortOrder = *input.SortOrder
	}
	it.UpdatedAt = uc.timestamp()

	if err := uc.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (uc *itemUseCase) DeleteItem(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.NotFoundf("Item %d", id)
	}
	uc.logger.Debug("item deleted", zap.Int64("item_id", id))
	return nil
}

func (uc *itemUseCase) ReorderItems(ctx context.Context, categoryID int64, ids []int64) error {
	return uc.repo.Reorder(ctx, categoryID, ids, uc.timestamp())
}

func (uc *itemUseCase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Millisecond)
}
