// Package server wires the SQLite store, use cases and handlers into the gRPC
// server and the local HTTP command bridge.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/peeky-app/peeky-service/api/peekyv1"
	appH "github.com/peeky-app/peeky-service/internal/app/handler"
	catH "github.com/peeky-app/peeky-service/internal/category/handler"
	catRepoPkg "github.com/peeky-app/peeky-service/internal/category/repository"
	catUCPkg "github.com/peeky-app/peeky-service/internal/category/usecase"
	"github.com/peeky-app/peeky-service/internal/invoke"
	itemH "github.com/peeky-app/peeky-service/internal/item/handler"
	itemRepoPkg "github.com/peeky-app/peeky-service/internal/item/repository"
	itemUCPkg "github.com/peeky-app/peeky-service/internal/item/usecase"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
	"github.com/peeky-app/peeky-service/internal/pkg/middleware"
)

type Server struct {
	GRPC   *grpc.Server
	HTTP   *http.Server
	health *health.Server
	logger logger.ZapLogger
}

func New(db *sqlx.DB, httpAddr string, log logger.ZapLogger) *Server {
	catUC := catUCPkg.NewCategoryUseCase(catRepoPkg.NewSQLiteRepository(db), log)
	itemUC := itemUCPkg.NewItemUseCase(itemRepoPkg.NewSQLiteRepository(db), log)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.RecoveryInterceptor(log),
			middleware.ContextInterceptor(log),
		),
	)
	pb.RegisterCategoryServiceServer(grpcServer, catH.NewCategoryHandler(catUC, log))
	pb.RegisterItemServiceServer(grpcServer, itemH.NewItemHandler(itemUC, log))
	pb.RegisterAppServiceServer(grpcServer, appH.NewAppHandler())

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &Server{
		GRPC: grpcServer,
		HTTP: &http.Server{
			Addr:              httpAddr,
			Handler:           invoke.NewHandler(catUC, itemUC, log).Router(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		health: healthServer,
		logger: log,
	}
}

// ServeGRPC blocks serving gRPC on lis and marks the server healthy.
func (s *Server) ServeGRPC(lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.logger.Info("Starting gRPC server", zap.String("addr", lis.Addr().String()))
	return s.GRPC.Serve(lis)
}

// ServeHTTP blocks serving the command bridge on lis.
func (s *Server) ServeHTTP(lis net.Listener) error {
	s.logger.Info("Starting HTTP command bridge", zap.String("addr", lis.Addr().String()))
	if err := s.HTTP.Serve(lis); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.health.Shutdown()
	err := s.HTTP.Shutdown(ctx)

	stopped := make(chan struct{})
	go func() {
		s.GRPC.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		s.GRPC.Stop()
		<-stopped
	}
	return err
}
