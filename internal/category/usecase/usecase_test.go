package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/juju/errors"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/peeky-app/peeky-service/internal/category/dto"
	"github.com/peeky-app/peeky-service/internal/category/mocks"
	"github.com/peeky-app/peeky-service/internal/model"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
)

var fixedNow = time.Date(2026, time.April, 3, 8, 30, 15, 123456789, time.UTC)

func newTestUseCase(t *testing.T) (*categoryUseCase, *mocks.MockRepository, *observer.ObservedLogs) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	core, logs := observer.New(zapcore.DebugLevel)

	uc := NewCategoryUseCase(repo, logger.NewFromZap(zap.New(core))).(*categoryUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, logs
}

func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }

func TestCreateCategoryStoresNameVerbatimAndStamps(t *testing.T) {
	uc, repo, logs := newTestUseCase(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *model.Category) error {
		if c.Name != "  Shortcuts " {
			t.Fatalf("name = %q, want %q unchanged", c.Name, "  Shortcuts ")
		}
		c.ID = 11
		c.SortOrder = 2
		return nil
	})

	cat, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: "  Shortcuts "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := fixedNow.Truncate(time.Millisecond)
	if !cat.CreatedAt.Equal(want) || !cat.UpdatedAt.Equal(want) {
		t.Fatalf("timestamps = %v/%v, want %v", cat.CreatedAt, cat.UpdatedAt, want)
	}
	if cat.ID != 11 || cat.SortOrder != 2 {
		t.Fatalf("unexpected category %+v", cat)
	}
	if logs.FilterMessage("category created").Len() != 1 {
		t.Fatal("expected a creation log entry")
	}
}

func TestCreateCategoryAcceptsEmptyName(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	cat, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: ""})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cat.Name != "" {
		t.Fatalf("name = %q, want empty", cat.Name)
	}
}

func TestUpdateCategoryKeepsOmittedFields(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	current := &model.Category{BaseModel: model.BaseModel{ID: 5}, Name: "Old", SortOrder: 4}

	repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: 5, Name: strPtr("New")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "New" {
		t.Fatalf("name = %q, want New", got.Name)
	}
	if got.SortOrder != 4 {
		t.Fatalf("sort_order = %d, want unchanged 4", got.SortOrder)
	}
	if !got.UpdatedAt.Equal(fixedNow.Truncate(time.Millisecond)) {
		t.Fatalf("updated_at not refreshed: %v", got.UpdatedAt)
	}
}

func TestUpdateCategorySortOrderOnly(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	current := &model.Category{BaseModel: model.BaseModel{ID: 5}, Name: "Keep", SortOrder: 0}

	repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: 5, SortOrder: int64Ptr(9)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Keep" || got.SortOrder != 9 {
		t.Fatalf("unexpected category %+v", got)
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, nil)

	_, err := uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: 42, Name: strPtr("x")})
	if !errors.Is(err, errors.NotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Category 42 not found" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestUpdateCategoryDeletedConcurrently(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	current := &model.Category{BaseModel: model.BaseModel{ID: 6}, Name: "Gone"}

	repo.EXPECT().FindByID(gomock.Any(), int64(6)).Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.NotFoundf("Category %d", 6))

	got, err := uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: 6, Name: strPtr("x")})
	if !errors.Is(err, errors.NotFound) || got != nil {
		t.Fatalf("expected not found and no category, got %+v, %v", got, err)
	}
}

func TestUpdateCategoryPassesStoreErrorThrough(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	storeErr := errors.New("database is locked")
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, storeErr)

	_, err := uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: 1})
	if err != storeErr {
		t.Fatalf("expected store error unchanged, got %v", err)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	repo.EXPECT().Delete(gomock.Any(), int64(999)).Return(false, nil)

	err := uc.DeleteCategory(context.Background(), 999)
	if !errors.Is(err, errors.NotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(true, nil)

	if err := uc.DeleteCategory(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestReorderCategoriesForwardsIDs(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	ids := []int64{3, 1, 2}
	repo.EXPECT().Reorder(gomock.Any(), ids, fixedNow.Truncate(time.Millisecond)).Return(nil)

	if err := uc.ReorderCategories(context.Background(), ids); err != nil {
		t.Fatalf("reorder: %v", err)
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(nil, nil)

	if _, err := uc.GetCategory(context.Background(), 8); !errors.Is(err, errors.NotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
