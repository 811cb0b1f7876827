package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/juju/errors"
	"go.uber.org/mock/gomock"

	"github.com/peeky-app/peeky-service/internal/item/dto"
	"github.com/peeky-app/peeky-service/internal/item/mocks"
	"github.com/peeky-app/peeky-service/internal/model"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
)

var fixedNow = time.Date(2026, time.April, 3, 8, 30, 15, 0, time.UTC)

func newTestUseCase(t *testing.T) (*itemUseCase, *mocks.MockRepository) {
	t.Helper()
	repo := mocks.NewMockRepository(gomock.NewController(t))
	uc := NewItemUseCase(repo, logger.NewNop()).(*itemUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func strPtr(s string) *string { return &s }

func TestCreateItemDefaultsValue(t *testing.T) {
	uc, repo := newTestUseCase(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, it *model.Item) error {
		if it.Value != "" {
			t.Fatalf("value = %q, want empty", it.Value)
		}
		if it.CategoryID != 2 || it.Label != " Copy" {
			t.Fatalf("unexpected item %+v", it)
		}
		it.ID = 1
		return nil
	})

	it, err := uc.CreateItem(context.Background(), &dto.CreateItemInput{CategoryID: 2, Label: " Copy"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !it.CreatedAt.Equal(fixedNow) {
		t.Fatalf("created_at = %v, want %v", it.CreatedAt, fixedNow)
	}
}

func TestCreateItemKeepsValueVerbatim(t *testing.T) {
	uc, repo := newTestUseCase(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	it, err := uc.CreateItem(context.Background(), &dto.CreateItemInput{CategoryID: 2, Label: "Indent", Value: strPtr("  Tab ")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if it.Value != "  Tab " {
		t.Fatalf("value = %q, want untrimmed", it.Value)
	}
}

func TestCreateItemAcceptsEmptyLabel(t *testing.T) {
	uc, repo := newTestUseCase(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	it, err := uc.CreateItem(context.Background(), &dto.CreateItemInput{CategoryID: 2, Label: ""})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if it.Label != "" {
		t.Fatalf("label = %q, want empty", it.Label)
	}
}

func TestUpdateItemKeepsOmittedFields(t *testing.T) {
	uc, repo := newTestUseCase(t)
	current := &model.Item{BaseModel: model.BaseModel{ID: 3}, CategoryID: 1, Label: "Old", Value: "val", SortOrder: 5}
	repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.UpdateItem(context.Background(), &dto.UpdateItemInput{ID: 3, Label: strPtr("New")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Label != "New" || got.Value != "val" || got.SortOrder != 5 {
		t.Fatalf("unexpected item %+v", got)
	}
}

func TestUpdateItemCanClearValue(t *testing.T) {
	uc, repo := newTestUseCase(t)
	current := &model.Item{BaseModel: model.BaseModel{ID: 3}, Label: "L", Value: "something"}
	repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.UpdateItem(context.Background(), &dto.UpdateItemInput{ID: 3, Value: strPtr("")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Value != "" {
		t.Fatalf("value = %q, want cleared", got.Value)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	uc, repo := newTestUseCase(t)
	repo.EXPECT().FindByID(gomock.Any(), int64(77)).Return(nil, nil)

	_, err := uc.UpdateItem(context.Background(), &dto.UpdateItemInput{ID: 77})
	if !errors.Is(err, errors.NotFound) || err.Error() != "Item 77 not found" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestUpdateItemDeletedConcurrently(t *testing.T) {
	uc, repo := newTestUseCase(t)
	current := &model.Item{BaseModel: model.BaseModel{ID: 3}, Label: "L"}
	repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.NotFoundf("Item %d", 3))

	got, err := uc.UpdateItem(context.Background(), &dto.UpdateItemInput{ID: 3, Value: strPtr("v")})
	if !errors.Is(err, errors.NotFound) || got != nil {
		t.Fatalf("expected not found and no item, got %+v, %v", got, err)
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	uc, repo := newTestUseCase(t)
	repo.EXPECT().Delete(gomock.Any(), int64(999)).Return(false, nil)

	if err := uc.DeleteItem(context.Background(), 999); !errors.Is(err, errors.NotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReorderItemsForwardsScope(t *testing.T) {
	uc, repo := newTestUseCase(t)
	repo.EXPECT().Reorder(gomock.Any(), int64(4), []int64{9, 8}, fixedNow).Return(nil)

	if err := uc.ReorderItems(context.Background(), 4, []int64{9, 8}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
}

func TestListAllItemsPassesThrough(t *testing.T) {
	uc, repo := newTestUseCase(t)
	rows := []model.ItemWithCategory{{ID: 1, Label: "Copy", CategoryName: "Shortcuts"}}
	repo.EXPECT().FindAllWithCategory(gomock.Any()).Return(rows, nil)

	got, err := uc.ListAllItems(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(got) != 1 || got[0].CategoryName != "Shortcuts" {
		t.Fatalf("unexpected rows %+v", got)
	}
}
