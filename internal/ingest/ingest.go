package ingest

import (
	"context"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/internal/entity"
)

// FileResult is the per-image ingest outcome.
type FileResult struct {
	SourcePath string
	LabelID    string
	Err        string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Ingestor registers label images as a pending batch submission.
type Ingestor interface {
	// IngestDirectory registers every matching image under root as a pending
	// label in a new batch for the applicant.
	IngestDirectory(ctx context.Context, applicantID uuid.UUID, root, batchName string, skipHidden bool) (*entity.Batch, []FileResult, DirStats, error)
}
