package server

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/ttbcheck/labelverify/internal/common"
)

const (
	sessionTokenKey = "session-token"
	specialistIDKey = "specialist-id"
)

// SessionInterceptor rejects any call that does not carry a valid
// session-token in its metadata. Health checks are exempt so probes work
// without credentials.
func SessionInterceptor(token string, logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if info.FullMethod == "/grpc.health.v1.Health/Check" ||
			info.FullMethod == "/grpc.health.v1.Health/Watch" {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			logger.Warn("call without metadata", "method", info.FullMethod)
			return nil, common.UnauthenticatedError("session token required")
		}
		values := md.Get(sessionTokenKey)
		if len(values) == 0 {
			logger.Warn("call without session token", "method", info.FullMethod)
			return nil, common.UnauthenticatedError("session token required")
		}
		if subtle.ConstantTimeCompare([]byte(values[0]), []byte(token)) != 1 {
			logger.Warn("call with invalid session token", "method", info.FullMethod)
			return nil, common.UnauthenticatedError("session token invalid")
		}

		ctx = common.WithRequestID(ctx, uuid.NewString())
		if specialists := md.Get(specialistIDKey); len(specialists) > 0 {
			ctx = common.WithSpecialist(ctx, specialists[0])
		}
		return handler(ctx, req)
	}
}
