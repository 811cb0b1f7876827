package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/peeky-app/peeky-service/api/peekyv1"
	"github.com/peeky-app/peeky-service/internal/category"
	"github.com/peeky-app/peeky-service/internal/category/dto"
	"github.com/peeky-app/peeky-service/internal/model"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
	"github.com/peeky-app/peeky-service/internal/pkg/rpcerr"
)

var _ pb.CategoryServiceServer = (*CategoryHandler)(nil)

type CategoryHandler struct {
	pb.UnimplementedCategoryServiceServer
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) ListCategories(ctx context.Context, _ *pb.ListCategoriesRequest) (*pb.ListCategoriesResponse, error) {
	cats, err := h.uc.ListCategories(ctx)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}

	protoCats := make([]*pb.Category, len(cats))
	for i := range cats {
		protoCats[i] = MapModelToProto(&cats[i])
	}
	return &pb.ListCategoriesResponse{Categories: protoCats}, nil
}

func (h *CategoryHandler) GetCategory(ctx context.Context, req *pb.GetCategoryRequest) (*pb.GetCategoryResponse, error) {
	cat, err := h.uc.GetCategory(ctx, req.Id)
	if err != nil {
		return nil, rpcerr.ToStatus(err)
	}
	return &pb.GetCategoryResponse{Category: MapModelToProto(cat)}, nil
}

func (h *CategoryHandler) CreateCategory(ctx context.Context, req *pb.CreateCategoryRequest) (*pb.CreateCategoryResponse, error) {
	cat, err := h.uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: req.Name})
	if err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}
	return &pb.CreateCategoryResponse{Category: MapModelToProto(cat)}, nil
}

func (h *CategoryHandler) UpdateCategory(ctx context.Context, req *pb.UpdateCategoryRequest) (*pb.UpdateCategoryResponse, error) {
	cat, err := h.uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{
		ID:        req.Id,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.logger.Error("failed to update category", zap.Int64("category_id", req.Id), zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}
	return &pb.UpdateCategoryResponse{Category: MapModelToProto(cat)}, nil
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, req *pb.DeleteCategoryRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteCategory(ctx, req.Id); err != nil {
		h.logger.Error("failed to delete category", zap.Int64("category_id", req.Id), zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *CategoryHandler) ReorderCategories(ctx context.Context, req *pb.ReorderCategoriesRequest) (*emptypb.Empty, error) {
	if err := h.uc.ReorderCategories(ctx, req.Ids); err != nil {
		h.logger.Error("failed to reorder categories", zap.Int("count", len(req.Ids)), zap.Error(err))
		return nil, rpcerr.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func MapModelToProto(m *model.Category) *pb.Category {
	if m == nil {
		return nil
	}
	return &pb.Category{
		Id:        m.ID,
		Name:      m.Name,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
