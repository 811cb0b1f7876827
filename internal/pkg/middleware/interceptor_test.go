package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/peeky-app/peeky-service/internal/pkg/logger"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/peeky.v1.CategoryService/ListCategories"}

func TestContextInterceptorGeneratesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	intercept := ContextInterceptor(logger.NewFromZap(zap.New(core)))

	var seen string
	_, err := intercept(context.Background(), nil, testInfo, func(ctx context.Context, _ any) (any, error) {
		seen = GetRequestID(ctx)
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("intercept: %v", err)
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("request id %q is not a uuid: %v", seen, err)
	}
	entries := logs.FilterMessage("rpc handled").All()
	if len(entries) != 1 || entries[0].ContextMap()["request_id"] != seen {
		t.Fatalf("expected one log entry carrying the request id, got %+v", entries)
	}
}

func TestContextInterceptorKeepsIncomingRequestID(t *testing.T) {
	intercept := ContextInterceptor(logger.NewNop())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-1"))

	var seen string
	_, _ = intercept(ctx, nil, testInfo, func(ctx context.Context, _ any) (any, error) {
		seen = GetRequestID(ctx)
		return nil, nil
	})
	if seen != "req-1" {
		t.Fatalf("request id = %q, want req-1", seen)
	}
}

func TestContextInterceptorLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	intercept := ContextInterceptor(logger.NewFromZap(zap.New(core)))

	_, err := intercept(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "category 1 not found")
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %s, want NotFound", status.Code(err))
	}
	entries := logs.FilterMessage("rpc failed").All()
	if len(entries) != 1 || entries[0].ContextMap()["code"] != "NotFound" {
		t.Fatalf("expected failure log with code, got %+v", entries)
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	intercept := RecoveryInterceptor(logger.NewNop())

	_, err := intercept(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %s, want Internal", status.Code(err))
	}
}
