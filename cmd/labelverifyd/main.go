package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	labelverifypb "github.com/ttbcheck/labelverify/gen/proto/labelverify/v1"
	"github.com/ttbcheck/labelverify/internal/analysis/openai"
	"github.com/ttbcheck/labelverify/internal/batch"
	"github.com/ttbcheck/labelverify/internal/common"
	"github.com/ttbcheck/labelverify/internal/export"
	repo "github.com/ttbcheck/labelverify/internal/repository"
	svc "github.com/ttbcheck/labelverify/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	if cfg.Server.SessionToken == "" {
		logger.Error("SESSION_TOKEN env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	db, err := repo.InitDatabase(ctx, dbCfg, false, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.SessionInterceptor(cfg.Server.SessionToken, logger)),
	)

	labelsRepo := repo.NewLabelRepository(db.Client, logger)
	batchesRepo := repo.NewBatchRepository(db.Client, logger)

	analyzer := openai.NewClient(openai.Config{
		Model:       cfg.Analysis.Model,
		APIKey:      cfg.Analysis.APIKey,
		Temperature: cfg.Analysis.Temperature,
		Timeout:     cfg.Analysis.Timeout,
	}, logger)
	processor := batch.NewItemProcessor(labelsRepo, batchesRepo, analyzer, logger)
	exporter := export.NewService(labelsRepo, logger)

	labelService := svc.NewLabelService(labelsRepo, batchesRepo, processor, exporter, logger)
	labelverifypb.RegisterLabelsServiceServer(grpcServer, labelService)
	batchService := svc.NewBatchService(batchesRepo, labelsRepo, logger)
	labelverifypb.RegisterBatchesServiceServer(grpcServer, batchService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("labelverifyd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
