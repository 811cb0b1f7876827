package handler

import (
	"context"
	"testing"

	"github.com/juju/errors"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/peeky-app/peeky-service/api/peekyv1"
	"github.com/peeky-app/peeky-service/internal/item/dto"
	"github.com/peeky-app/peeky-service/internal/item/mocks"
	"github.com/peeky-app/peeky-service/internal/model"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
)

func newTestHandler(t *testing.T) (*ItemHandler, *mocks.MockUseCase) {
	t.Helper()
	uc := mocks.NewMockUseCase(gomock.NewController(t))
	return NewItemHandler(uc, logger.NewNop()), uc
}

func TestCreateItemForwardsOptionalValue(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().CreateItem(gomock.Any(), &dto.CreateItemInput{CategoryID: 2, Label: "Copy"}).
		Return(&model.Item{BaseModel: model.BaseModel{ID: 10}, CategoryID: 2, Label: "Copy"}, nil)

	resp, err := h.CreateItem(context.Background(), &pb.CreateItemRequest{CategoryId: 2, Label: "Copy"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Item.Id != 10 || resp.Item.Value != "" {
		t.Fatalf("unexpected item %+v", resp.Item)
	}
}

func TestListAllItemsMapsJoinedRows(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().ListAllItems(gomock.Any()).Return([]model.ItemWithCategory{
		{ID: 1, CategoryID: 2, Label: "Copy", Value: "Cmd+C", CategoryName: "Shortcuts", CategorySortOrder: 3},
	}, nil)

	resp, err := h.ListAllItems(context.Background(), &pb.ListAllItemsRequest{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].CategoryName != "Shortcuts" || resp.Items[0].CategorySortOrder != 3 {
		t.Fatalf("unexpected rows %+v", resp.Items)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(nil, errors.NotFoundf("Item %d", 5))

	_, err := h.UpdateItem(context.Background(), &pb.UpdateItemRequest{Id: 5})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %s, want NotFound", status.Code(err))
	}
}

func TestReorderItemsForwardsCategory(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().ReorderItems(gomock.Any(), int64(6), []int64{3, 2, 1}).Return(nil)

	if _, err := h.ReorderItems(context.Background(), &pb.ReorderItemsRequest{CategoryId: 6, Ids: []int64{3, 2, 1}}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
}

func TestDeleteItemStoreErrorIsInternal(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().DeleteItem(gomock.Any(), int64(1)).Return(errors.New("database is locked"))

	_, err := h.DeleteItem(context.Background(), &pb.DeleteItemRequest{Id: 1})
	st, _ := status.FromError(err)
	if st.Code() != codes.Internal || st.Message() != "database is locked" {
		t.Fatalf("unexpected status %v", st)
	}
}
