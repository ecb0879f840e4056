package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ttbcheck/labelverify/internal/analysis/openai"
	"github.com/ttbcheck/labelverify/internal/batch"
	"github.com/ttbcheck/labelverify/internal/common"
	"github.com/ttbcheck/labelverify/internal/entity"
	"github.com/ttbcheck/labelverify/internal/export"
	"github.com/ttbcheck/labelverify/internal/ingest"
	repo "github.com/ttbcheck/labelverify/internal/repository"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory of label images to process (required)")
		name  = flag.String("name", "", "batch name (defaults to directory name)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "labels.xlsx")
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.Analysis.APIKey == "" {
		printError("Error: OPENAI_API_KEY env var is required\n")
		os.Exit(2)
	}

	dbCfg := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	db, err := repo.InitDatabase(ctx, dbCfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	applicantsRepo := repo.NewApplicantRepository(db.Client, logger)
	labelsRepo := repo.NewLabelRepository(db.Client, logger)
	batchesRepo := repo.NewBatchRepository(db.Client, logger)

	applicant, err := applicantsRepo.GetOrCreateByEmail(ctx, "Local Batch", "local-batch@labelverify.dev", "")
	if err != nil {
		logger.Error("failed to get or create applicant", "error", err)
		os.Exit(1)
	}
	logger.Info("using applicant", "id", applicant.ID, "email", applicant.Email)

	ingestor := ingest.NewFSIngestor(applicantsRepo, batchesRepo, labelsRepo, logger)
	logger.Info("starting ingestion", "dir", *dir)
	b, _, stats, err := ingestor.IngestDirectory(ctx, applicant.ID, *dir, *name, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"batch_id", b.ID,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)

	analyzer := openai.NewClient(openai.Config{
		Model:       cfg.Analysis.Model,
		APIKey:      cfg.Analysis.APIKey,
		Temperature: cfg.Analysis.Temperature,
		Timeout:     cfg.Analysis.Timeout,
	}, logger)
	processor := batch.NewItemProcessor(labelsRepo, batchesRepo, analyzer, logger)

	limiter := batch.NewLimiter(logger, batch.WithConcurrency(cfg.Batch.Concurrency))
	poller := batch.NewPoller(batchesRepo, logger,
		batch.WithInterval(cfg.Batch.PollInterval),
		batch.WithUpdateFunc(func(snap *entity.BatchSnapshot) {
			logger.Info("batch progress",
				"batch_id", snap.ID,
				"processed", snap.ProcessedCount,
				"total", snap.TotalLabels,
			)
		}),
	)
	controller := batch.NewController(limiter, poller, processor.ProcessLabel, nil, logger)

	snap, err := batchesRepo.Snapshot(ctx, b.ID)
	if err != nil {
		logger.Error("failed to snapshot batch", "error", err)
		os.Exit(1)
	}
	if !controller.Start(ctx, snap) {
		logger.Error("batch processing already started")
		os.Exit(1)
	}
	<-controller.Done()
	logger.Info("batch processing finished", "state", string(controller.State()))

	exporter := export.NewService(labelsRepo, logger)
	xlsxBytes, err := exporter.ExportLabelsXLSX(ctx, applicant.ID, nil, nil)
	if err != nil {
		logger.Error("failed to export labels", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	final, err := batchesRepo.GetByID(ctx, b.ID)
	if err != nil {
		logger.Error("failed to reload batch", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Labels submitted: %d\n", final.TotalLabels)
	fmt.Printf("- Labels attempted: %d\n", final.ProcessedCount)
	fmt.Printf("- Batch status: %s\n", final.Status)
	fmt.Printf("- Output: %s\n", *out)
}
