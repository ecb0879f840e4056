package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	labelverifypb "github.com/ttbcheck/labelverify/gen/proto/labelverify/v1"
	"github.com/ttbcheck/labelverify/internal/common"
	"github.com/ttbcheck/labelverify/internal/repository"
	"github.com/ttbcheck/labelverify/internal/status"
	"github.com/ttbcheck/labelverify/internal/utils"
)

type BatchService struct {
	labelverifypb.UnimplementedBatchesServiceServer
	batchRepo repository.BatchRepository
	labelRepo repository.LabelRepository
	logger    *slog.Logger
}

func NewBatchService(batchRepo repository.BatchRepository, labelRepo repository.LabelRepository, logger *slog.Logger) *BatchService {
	return &BatchService{
		batchRepo: batchRepo,
		labelRepo: labelRepo,
		logger:    logger,
	}
}

// GetBatchStatus returns the aggregate record plus a per-label projection.
// Projected statuses are effective statuses at read time; any expired
// deadlines encountered are written back in the background.
func (s *BatchService) GetBatchStatus(ctx context.Context, req *labelverifypb.GetBatchStatusRequest) (*labelverifypb.GetBatchStatusResponse, error) {
	batchID, err := parseUUID(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}

	b, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundErrorf("batch %s not found", batchID)
		}
		s.logger.Error("failed to get batch", "batch_id", batchID, "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "get batch: %v", err)
	}

	labels, err := s.labelRepo.ListByBatch(ctx, batchID)
	if err != nil {
		s.logger.Error("failed to list batch labels", "batch_id", batchID, "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "list batch labels: %v", err)
	}

	now := time.Now().UTC()
	out := make([]*labelverifypb.BatchLabel, 0, len(labels))
	for _, l := range labels {
		pb := &labelverifypb.BatchLabel{
			Id:     l.ID.String(),
			Status: string(status.ResolveLabel(l, now)),
		}
		if l.OverallConfidence != nil {
			pb.OverallConfidence = *l.OverallConfidence
		}
		out = append(out, pb)
		writeBackIfExpired(s.labelRepo, s.logger, l, now)
	}

	return &labelverifypb.GetBatchStatusResponse{
		Batch:  utils.ToPBBatch(b),
		Labels: out,
	}, nil
}
