package usecase

import (
	"context"
	"time"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/peeky-app/peeky-service/internal/category"
	"github.com/peeky-app/peeky-service/internal/category/dto"
	"github.com/peeky-app/peeky-service/internal/model"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, errors.NotFoundf("Category %d", id)
	}
	return cat, nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	now := uc.timestamp()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: input.Name,
	}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	uc.logger.Debug("category created", zap.Int64("category_id", cat.ID), zap.Int64("sort_order", cat.SortOrder))
	return cat, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.GetCategory(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		cat.Name = *input.Name
	}
	if input.SortOrder != nil {
		cat.SortOrder = *input.SortOrder
	}
	cat.UpdatedAt = uc.timestamp()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.NotFoundf("Category %d", id)
	}
	uc.logger.Debug("category deleted", zap.Int64("category_id", id))
	return nil
}

func (uc *categoryUseCase) ReorderCategories(ctx context.Context, ids []int64) error {
	return uc.repo.Reorder(ctx, ids, uc.timestamp())
}

// timestamp is truncated to the millisecond precision the store keeps.
func (uc *categoryUseCase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Millisecond)
}
