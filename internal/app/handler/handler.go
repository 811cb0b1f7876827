package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/peeky-app/peeky-service/api/peekyv1"
	"github.com/peeky-app/peeky-service/internal/app"
)

var _ pb.AppServiceServer = (*AppHandler)(nil)

type AppHandler struct {
	pb.UnimplementedAppServiceServer
}

func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

func (h *AppHandler) Ping(context.Context, *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Message: "pong"}, nil
}

func (h *AppHandler) GetAppInfo(context.Context, *emptypb.Empty) (*pb.AppInfo, error) {
	info := app.CurrentInfo()
	return &pb.AppInfo{
		Name:        info.Name,
		Version:     info.Version,
		Description: info.Description,
	}, nil
}
