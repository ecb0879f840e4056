package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-playground/assert/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/ttbcheck/labelverify/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func callWithMD(t *testing.T, interceptor grpc.UnaryServerInterceptor, md metadata.MD, method string) error {
	t.Helper()
	ctx := context.Background()
	if md != nil {
		ctx = metadata.NewIncomingContext(ctx, md)
	}
	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)
	return err
}

func TestSessionInterceptorAcceptsValidToken(t *testing.T) {
	ic := SessionInterceptor("hunter2", testLogger())
	err := callWithMD(t, ic, metadata.Pairs(sessionTokenKey, "hunter2"), "/labelverify.v1.LabelsService/GetLabel")
	assert.Equal(t, err, nil)
}

func TestSessionInterceptorRejectsMissingToken(t *testing.T) {
	ic := SessionInterceptor("hunter2", testLogger())

	err := callWithMD(t, ic, nil, "/labelverify.v1.LabelsService/GetLabel")
	assert.Equal(t, grpcstatus.Code(err), codes.Unauthenticated)

	err = callWithMD(t, ic, metadata.Pairs("other-key", "x"), "/labelverify.v1.LabelsService/GetLabel")
	assert.Equal(t, grpcstatus.Code(err), codes.Unauthenticated)
}

func TestSessionInterceptorRejectsWrongToken(t *testing.T) {
	ic := SessionInterceptor("hunter2", testLogger())
	err := callWithMD(t, ic, metadata.Pairs(sessionTokenKey, "nope"), "/labelverify.v1.LabelsService/GetLabel")
	assert.Equal(t, grpcstatus.Code(err), codes.Unauthenticated)
}

func TestSessionInterceptorTagsContext(t *testing.T) {
	ic := SessionInterceptor("hunter2", testLogger())

	var requestID, specialist string
	handler := func(ctx context.Context, req any) (any, error) {
		requestID = common.RequestIDFromContext(ctx)
		specialist = common.SpecialistFromContext(ctx)
		return "ok", nil
	}

	md := metadata.Pairs(sessionTokenKey, "hunter2", specialistIDKey, "j.alvarez")
	ctx := metadata.NewIncomingContext(context.Background(), md)
	_, err := ic(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/labelverify.v1.LabelsService/SubmitDecision"}, handler)
	assert.Equal(t, err, nil)
	assert.NotEqual(t, requestID, "")
	assert.Equal(t, specialist, "j.alvarez")
}

func TestSessionInterceptorExemptsHealthChecks(t *testing.T) {
	ic := SessionInterceptor("hunter2", testLogger())
	err := callWithMD(t, ic, nil, "/grpc.health.v1.Health/Check")
	assert.Equal(t, err, nil)
}
