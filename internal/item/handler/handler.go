package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/peeky-app/peeky-service/api/peekyv1"
	"github.com/peeky-app/peeky-service/internal/item"
	"github.com/peeky-app/peeky-service/internal/item/dto"
	"github.com/peeky-app/peeky-service/internal/model"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
	"github.com/peeky-app/peeky-service/internal/pkg/rpcerr"
)

var _ pb.ItemServiceServer = (*ItemHandler)(nil)

type ItemHandler struct {
	pb.UnimplementedItemServiceServer
	uc     item.UseCase
	logger logger.ZapLogger
}

func NewItemHandler(uc item.UseCase, log logger.ZapLogger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ItemHandler) ListItems(ctx context.Context, req *pb.ListItemsRequest) (*pb.ListItemsResponse, error) {
	items, err := h.uc.ListItems(ctx, req.CategoryId)
	if err != nil {
		h.logger.Error("failed to list items", zap.Int64("category_id", req.CategoryId), zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}

	out := make([]*pb.Item, len(items))
	for i := range items {
		out[i] = MapModelToProto(&items[i])
	}
	return &pb.ListItemsResponse{Items: out}, nil
}

func (h *ItemHandler) ListAllItems(ctx context.Context, _ *pb.ListAllItemsRequest) (*pb.ListAllItemsResponse, error) {
	items, err := h.uc.ListAllItems(ctx)
	if err != nil {
		h.logger.Error("failed to list all items", zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}

	out := make([]*pb.ItemWithCategory, len(items))
	for i, it := range items {
		out[i] = &pb.ItemWithCategory{
			Id:                it.ID,
			CategoryId:        it.CategoryID,
			Label:             it.Label,
			Value:             it.Value,
			SortOrder:         it.SortOrder,
			CategoryName:      it.CategoryName,
			CategorySortOrder: it.CategorySortOrder,
		}
	}
	return &pb.ListAllItemsResponse{Items: out}, nil
}

func (h *ItemHandler) CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.CreateItemResponse, error) {
	it, err := h.uc.CreateItem(ctx, &dto.CreateItemInput{
		CategoryID: req.CategoryId,
		Label:      req.Label,
		Value:      req.Value,
	})
	if err != nil {
		h.logger.Error("failed to create item", zap.Int64("category_id", req.CategoryId), zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}
	return &pb.CreateItemResponse{Item: MapModelToProto(it)}, nil
}

func (h *ItemHandler) UpdateItem(ctx context.Context, req *pb.UpdateItemRequest) (*pb.UpdateItemResponse, error) {
	it, err := h.uc.UpdateItem(ctx, &dto.UpdateItemInput{
		ID:        req.Id,
		Label:     req.Label,
		Value:     req.Value,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.logger.Error("failed to update item", zap.Int64("item_id", req.Id), zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}
	return &pb.UpdateItemResponse{Item: MapModelToProto(it)}, nil
}

func (h *ItemHandler) DeleteItem(ctx context.Context, req *pb.DeleteItemRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteItem(ctx, req.Id); err != nil {
		h.logger.Error("failed to delete item", zap.Int64("item_id", req.Id), zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *ItemHandler) ReorderItems(ctx context.Context, req *pb.ReorderItemsRequest) (*emptypb.Empty, error) {
	if err := h.uc.ReorderItems(ctx, req.CategoryId, req.Ids); err != nil {
		h.logger.Error("failed to reorder items", zap.Int64("category_id", req.CategoryId), zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func MapModelToProto(m *model.Item) *pb.Item {
	if m == nil {
		return nil
	}
	return &pb.Item{
		Id:         m.ID,
		CategoryId: m.CategoryID,
		Label:      m.Label,
		Value:      m.Value,
		SortOrder:  m.SortOrder,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
