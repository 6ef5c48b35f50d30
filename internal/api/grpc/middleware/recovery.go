package middleware

import (
	"context"
	"runtime/debug"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/rewards-server/internal/logger"
)

// RecoveryHandler turns a handler panic into codes.Internal.
func RecoveryHandler(logger *logger.Logger) func(ctx context.Context, p any) error {
	return func(ctx context.Context, p any) error {
		logger.Error("gRPC handler panicked", "panic", p, "stack", string(debug.Stack()))
		return status.Error(codes.Internal, "internal server error")
	}
}
