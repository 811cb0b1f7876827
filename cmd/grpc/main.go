package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/peeky-app/peeky-service/config"
	"github.com/peeky-app/peeky-service/internal/app"
	"github.com/peeky-app/peeky-service/internal/pkg/database/sqlite"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
	"github.com/peeky-app/peeky-service/internal/server"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		FilePath:          cfg.Logger.File,
		FileMaxSizeMB:     cfg.Logger.MaxSizeMB,
		FileMaxBackups:    cfg.Logger.MaxBackups,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()
	appLogger.Info("Starting", zap.String("app", app.Name), zap.String("version", app.Version))

	// 3. Open Database
	dbPath, err := cfg.SQLite.DatabasePath()
	if err != nil {
		appLogger.Fatal("Could not resolve database path", zap.Error(err))
	}

	db, err := sqlite.NewSQLite(context.Background(), &sqlite.Config{
		Path:            dbPath,
		MaxOpenConns:    cfg.SQLite.MaxOpenConns,
		MaxIdleConns:    cfg.SQLite.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.SQLite.ConnMaxLifetime) * time.Second,
		BusyTimeout:     time.Duration(cfg.SQLite.BusyTimeoutMS) * time.Millisecond,
	})
	if err != nil {
		appLogger.Fatal("Could not open database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Opened SQLite database", zap.String("path", dbPath))

	// 4. Wire Repositories, UseCases and Handlers
	srv := server.New(db, cfg.Server.HTTPAddr, appLogger)

	// 5. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.Contains(port, ":") {
		port = ":" + port
	}

	grpcLis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		if err := srv.ServeGRPC(grpcLis); err != nil {
			appLogger.Fatal("failed to serve gRPC", zap.Error(err))
		}
	}()

	// 6. Start HTTP command bridge
	httpLis, err := net.Listen("tcp", cfg.Server.HTTPAddr)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("addr", cfg.Server.HTTPAddr), zap.Error(err))
	}

	go func() {
		if err := srv.ServeHTTP(httpLis); err != nil {
			appLogger.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Warn("Shutdown incomplete", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
