package peekyv1

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type Item struct {
	Id         int64     `json:"id"`
	CategoryId int64     `json:"category_id"`
	Label      string    `json:"label"`
	Value      string    `json:"value"`
	SortOrder  int64     `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ItemWithCategory struct {
	Id                int64  `json:"id"`
	CategoryId        int64  `json:"category_id"`
	Label             string `json:"label"`
	Value             string `json:"value"`
	SortOrder         int64  `json:"sort_order"`
	CategoryName      string `json:"category_name"`
	CategorySortOrder int64  `json:"category_sort_order"`
}

type ListItemsRequest struct {
	CategoryId int64 `json:"category_id"`
}

type ListItemsResponse struct {
	Items []*Item `json:"items"`
}

type ListAllItemsRequest struct{}

type ListAllItemsResponse struct {
	Items []*ItemWithCategory `json:"items"`
}

// CreateItemRequest stores an empty value when Value is nil.
type CreateItemRequest struct {
	CategoryId int64   `json:"category_id"`
	Label      string  `json:"label"`
	Value      *string `json:"value,omitempty"`
}

type CreateItemResponse struct {
	Item *Item `json:"item"`
}

type UpdateItemRequest struct {
	Id        int64   `json:"id"`
	Label     *string `json:"label,omitempty"`
	Value     *string `json:"value,omitempty"`
	SortOrder *int64  `json:"sort_order,omitempty"`
}

type UpdateItemResponse struct {
	Item *Item `json:"item"`
}

type DeleteItemRequest struct {
	Id int64 `json:"id"`
}

type ReorderItemsRequest struct {
	CategoryId int64   `json:"category_id"`
	Ids        []int64 `json:"ids"`
}

const (
	ItemService_ListItems_FullMethodName    = "/peeky.v1.ItemService/ListItems"
	ItemService_ListAllItems_FullMethodName = "/peeky.v1.ItemService/ListAllItems"
	ItemService_CreateItem_FullMethodName   = "/peeky.v1.ItemService/CreateItem"
	ItemService_UpdateItem_FullMethodName   = "/peeky.v1.ItemService/UpdateItem"
	ItemService_DeleteItem_FullMethodName   = "/peeky.v1.ItemService/DeleteItem"
	ItemService_ReorderItems_FullMethodName = "/peeky.v1.ItemService/ReorderItems"
)

type ItemServiceClient interface {
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	ListAllItems(ctx context.Context, in *ListAllItemsRequest, opts ...grpc.CallOption) (*ListAllItemsResponse, error)
	CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*CreateItemResponse, error)
	UpdateItem(ctx context.Context, in *UpdateItemRequest, opts ...grpc.CallOption) (*UpdateItemResponse, error)
	DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ReorderItems(ctx context.Context, in *ReorderItemsRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type itemServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewItemServiceClient(cc grpc.ClientConnInterface) ItemServiceClient {
	return &itemServiceClient{cc}
}

func (c *itemServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	out := new(ListItemsResponse)
	if err := c.cc.Invoke(ctx, ItemService_ListItems_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *itemServiceClient) ListAllItems(ctx context.Context, in *ListAllItemsRequest, opts ...grpc.CallOption) (*ListAllItemsResponse, error) {
	out := new(ListAllItemsResponse)
	if err := c.cc.Invoke(ctx, ItemService_ListAllItems_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *itemServiceClient) CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*CreateItemResponse, error) {
	out := new(CreateItemResponse)
	if err := c.cc.Invoke(ctx, ItemService_CreateItem_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *itemServiceClient) UpdateItem(ctx context.Context, in *UpdateItemRequest, opts ...grpc.CallOption) (*UpdateItemResponse, error) {
	out := new(UpdateItemResponse)
	if err := c.cc.Invoke(ctx, ItemService_UpdateItem_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *itemServiceClient) DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, ItemService_DeleteItem_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *itemServiceClient) ReorderItems(ctx context.Context, in *ReorderItemsRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, ItemService_ReorderItems_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type ItemServiceServer interface {
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	ListAllItems(context.Context, *ListAllItemsRequest) (*ListAllItemsResponse, error)
	CreateItem(context.Context, *CreateItemRequest) (*CreateItemResponse, error)
	UpdateItem(context.Context, *UpdateItemRequest) (*UpdateItemResponse, error)
	DeleteItem(context.Context, *DeleteItemRequest) (*emptypb.Empty, error)
	ReorderItems(context.Context, *ReorderItemsRequest) (*emptypb.Empty, error)
}

type UnimplementedItemServiceServer struct{}

func (UnimplementedItemServiceServer) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListItems not implemented")
}
func (UnimplementedItemServiceServer) ListAllItems(context.Context, *ListAllItemsRequest) (*ListAllItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAllItems not implemented")
}
func (UnimplementedItemServiceServer) CreateItem(context.Context, *CreateItemRequest) (*CreateItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateItem not implemented")
}
func (UnimplementedItemServiceServer) UpdateItem(context.Context, *UpdateItemRequest) (*UpdateItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateItem not implemented")
}
func (UnimplementedItemServiceServer) DeleteItem(context.Context, *DeleteItemRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteItem not implemented")
}
func (UnimplementedItemServiceServer) ReorderItems(context.Context, *ReorderItemsRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method ReorderItems not implemented")
}

func RegisterItemServiceServer(s grpc.ServiceRegistrar, srv ItemServiceServer) {
	s.RegisterService(&ItemService_ServiceDesc, srv)
}

func _ItemService_ListItems_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemServiceServer).ListItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ItemService_ListItems_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ItemServiceServer).ListItems(ctx, req.(*ListItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ItemService_ListAllItems_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListAllItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemServiceServer).ListAllItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ItemService_ListAllItems_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ItemServiceServer).ListAllItems(ctx, req.(*ListAllItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ItemService_CreateItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemServiceServer).CreateItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ItemService_CreateItem_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ItemServiceServer).CreateItem(ctx, req.(*CreateItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ItemService_UpdateItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemServiceServer).UpdateItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ItemService_UpdateItem_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ItemServiceServer).UpdateItem(ctx, req.(*UpdateItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ItemService_DeleteItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemServiceServer).DeleteItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ItemService_DeleteItem_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ItemServiceServer).DeleteItem(ctx, req.(*DeleteItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ItemService_ReorderItems_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReorderItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemServiceServer).ReorderItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ItemService_ReorderItems_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ItemServiceServer).ReorderItems(ctx, req.(*ReorderItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ItemService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "peeky.v1.ItemService",
	HandlerType: (*ItemServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListItems", Handler: _ItemService_ListItems_Handler},
		{MethodName: "ListAllItems", Handler: _ItemService_ListAllItems_Handler},
		{MethodName: "CreateItem", Handler: _ItemService_CreateItem_Handler},
		{MethodName: "UpdateItem", Handler: _ItemService_UpdateItem_Handler},
		{MethodName: "DeleteItem", Handler: _ItemService_DeleteItem_Handler},
		{MethodName: "ReorderItems", Handler: _ItemService_ReorderItems_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/peekyv1/item.go",
}
