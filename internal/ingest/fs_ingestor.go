package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/entity"
	"github.com/ttbcheck/labelverify/internal/repository"
)

// FSIngestor reads label images from the local filesystem.
type FSIngestor struct {
	applicants repository.ApplicantRepository
	batches    repository.BatchRepository
	labels     repository.LabelRepository
	logger     *slog.Logger
}

func NewFSIngestor(
	applicants repository.ApplicantRepository,
	batches repository.BatchRepository,
	labels repository.LabelRepository,
	logger *slog.Logger,
) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		applicants: applicants,
		batches:    batches,
		labels:     labels,
		logger:     logger,
	}
}

// IngestDirectory walks root, collects the allowed image files, then registers
// a batch sized to the match count and one pending label per image. A label
// that fails to register is counted as an attempted item so the batch can
// still complete; if every registration fails the batch is marked failed
// instead.
func (i *FSIngestor) IngestDirectory(ctx context.Context, applicantID uuid.UUID, root, batchName string, skipHidden bool) (*entity.Batch, []FileResult, DirStats, error) {
	var stats DirStats

	if strings.TrimSpace(root) == "" {
		return nil, nil, stats, errors.New("root path is required")
	}
	if _, err := i.applicants.GetByID(ctx, applicantID); err != nil {
		return nil, nil, stats, err
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			i.logger.Warn("walk error, skipping entry", "path", path, "error", walkErr)
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !allowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, nil, stats, err
	}
	if len(paths) == 0 {
		return nil, nil, stats, errors.New("no label images found under root")
	}

	if batchName == "" {
		batchName = filepath.Base(root)
	}
	b, err := i.batches.Create(ctx, &repository.CreateBatchRequest{
		ApplicantID: applicantID,
		Name:        batchName,
		TotalLabels: len(paths),
	})
	if err != nil {
		return nil, nil, stats, err
	}

	results := make([]FileResult, 0, len(paths))
	lostSlots := 0
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		l, err := i.labels.CreatePending(ctx, &repository.CreateLabelRequest{
			ApplicantID: &applicantID,
			BatchID:     &b.ID,
			ImagePath:   abs,
		})
		if err != nil {
			i.logger.Error("register label failed", "batch_id", b.ID, "path", abs, "error", err)
			stats.Failed++
			lostSlots++
			results = append(results, FileResult{SourcePath: abs, Err: err.Error()})
			continue
		}
		stats.Succeeded++
		results = append(results, FileResult{SourcePath: abs, LabelID: l.ID.String()})
	}

	if stats.Succeeded == 0 {
		// nothing registered, so nothing will ever drive the batch to
		// completion; fail it outright rather than counting empty slots
		if ferr := i.batches.MarkFailed(ctx, b.ID, "no labels could be registered"); ferr != nil {
			i.logger.Error("mark batch failed failed", "batch_id", b.ID, "error", ferr)
		}
		return b, results, stats, errors.New("no labels could be registered")
	}

	// count the lost slots so the remaining labels can still complete the
	// batch
	for n := 0; n < lostSlots; n++ {
		if oerr := i.batches.RecordItemOutcome(ctx, b.ID); oerr != nil {
			i.logger.Error("record lost slot failed", "batch_id", b.ID, "error", oerr)
		}
	}

	i.logger.Info("directory ingested",
		"batch_id", b.ID,
		"root", root,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)
	return b, results, stats, nil
}

func allowedExt(ext string) bool {
	_, ok := constants.AllowedImageExtensions[constants.NormalizeExt(ext)]
	return ok
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
