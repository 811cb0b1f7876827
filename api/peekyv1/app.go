package peekyv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type PingResponse struct {
	Message string `json:"message"`
}

type AppInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

const (
	AppService_Ping_FullMethodName       = "/peeky.v1.AppService/Ping"
	AppService_GetAppInfo_FullMethodName = "/peeky.v1.AppService/GetAppInfo"
)

type AppServiceClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)
	GetAppInfo(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*AppInfo, error)
}

type appServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAppServiceClient(cc grpc.ClientConnInterface) AppServiceClient {
	return &appServiceClient{cc}
}

func (c *appServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.cc.Invoke(ctx, AppService_Ping_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *appServiceClient) GetAppInfo(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*AppInfo, error) {
	out := new(AppInfo)
	if err := c.cc.Invoke(ctx, AppService_GetAppInfo_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type AppServiceServer interface {
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)
	GetAppInfo(context.Context, *emptypb.Empty) (*AppInfo, error)
}

type UnimplementedAppServiceServer struct{}

func (UnimplementedAppServiceServer) Ping(context.Context, *emptypb.Empty) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedAppServiceServer) GetAppInfo(context.Context, *emptypb.Empty) (*AppInfo, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAppInfo not implemented")
}

func RegisterAppServiceServer(s grpc.ServiceRegistrar, srv AppServiceServer) {
	s.RegisterService(&AppService_ServiceDesc, srv)
}

func _AppService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AppServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AppService_Ping_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AppServiceServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _AppService_GetAppInfo_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AppServiceServer).GetAppInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AppService_GetAppInfo_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AppServiceServer).GetAppInfo(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var AppService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "peeky.v1.AppService",
	HandlerType: (*AppServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: _AppService_Ping_Handler},
		{MethodName: "GetAppInfo", Handler: _AppService_GetAppInfo_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/peekyv1/app.go",
}
