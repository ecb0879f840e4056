package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/ttbcheck/labelverify/constants"
	labelverifypb "github.com/ttbcheck/labelverify/gen/proto/labelverify/v1"
	"github.com/ttbcheck/labelverify/internal/batch"
	"github.com/ttbcheck/labelverify/internal/common"
	"github.com/ttbcheck/labelverify/internal/entity"
	"github.com/ttbcheck/labelverify/internal/export"
	"github.com/ttbcheck/labelverify/internal/repository"
	"github.com/ttbcheck/labelverify/internal/status"
	"github.com/ttbcheck/labelverify/internal/utils"
)

const writeBackTimeout = 5 * time.Second

type LabelService struct {
	labelverifypb.UnimplementedLabelsServiceServer
	labelRepo repository.LabelRepository
	batchRepo repository.BatchRepository
	processor *batch.ItemProcessor
	exporter  *export.Service
	logger    *slog.Logger
}

func NewLabelService(
	labelRepo repository.LabelRepository,
	batchRepo repository.BatchRepository,
	processor *batch.ItemProcessor,
	exporter *export.Service,
	logger *slog.Logger,
) *LabelService {
	return &LabelService{
		labelRepo: labelRepo,
		batchRepo: batchRepo,
		processor: processor,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *LabelService) ListLabels(ctx context.Context, req *labelverifypb.ListLabelsRequest) (*labelverifypb.ListLabelsResponse, error) {
	applicantID, err := parseUUID(req.GetApplicantId(), "applicant_id")
	if err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	labels, err := s.labelRepo.ListByApplicant(ctx, applicantID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list labels", "applicant_id", applicantID, "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "list labels: %v", err)
	}

	now := time.Now().UTC()
	out := make([]*labelverifypb.Label, 0, len(labels))
	for _, l := range labels {
		out = append(out, utils.ToPBLabel(l, now))
		writeBackIfExpired(s.labelRepo, s.logger, l, now)
	}
	return &labelverifypb.ListLabelsResponse{Labels: out}, nil
}

func (s *LabelService) GetLabel(ctx context.Context, req *labelverifypb.GetLabelRequest) (*labelverifypb.GetLabelResponse, error) {
	labelID, err := parseUUID(req.GetLabelId(), "label_id")
	if err != nil {
		return nil, err
	}

	l, err := s.labelRepo.GetByID(ctx, labelID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundErrorf("label %s not found", labelID)
		}
		return nil, grpcstatus.Errorf(codes.Internal, "get label: %v", err)
	}

	now := time.Now().UTC()
	writeBackIfExpired(s.labelRepo, s.logger, l, now)
	return &labelverifypb.GetLabelResponse{Label: utils.ToPBLabel(l, now)}, nil
}

func (s *LabelService) SubmitDecision(ctx context.Context, req *labelverifypb.SubmitDecisionRequest) (*labelverifypb.SubmitDecisionResponse, error) {
	labelID, err := parseUUID(req.GetLabelId(), "label_id")
	if err != nil {
		return nil, err
	}
	decision := constants.LabelStatus(strings.TrimSpace(req.GetDecision()))
	if !decision.IsDecision() {
		return nil, grpcstatus.Errorf(codes.InvalidArgument,
			"decision must be one of approved, conditionally_approved, needs_correction, rejected")
	}

	specialist := strings.TrimSpace(req.GetSpecialist())
	if specialist == "" {
		// authenticated callers may identify themselves once, via metadata,
		// instead of repeating the reviewer on every request
		specialist = common.SpecialistFromContext(ctx)
	}

	now := time.Now().UTC()
	l, err := s.labelRepo.Decide(ctx, labelID, decision, specialist, now)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundErrorf("label %s not found", labelID)
		}
		s.logger.Error("failed to record decision", "label_id", labelID, "decision", decision, "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "record decision: %v", err)
	}

	if l.BatchID != nil {
		if err := s.batchRepo.RecordDecision(ctx, *l.BatchID, decision); err != nil {
			// the decision itself stands; the counter drift is logged
			s.logger.Error("failed to bump batch decision counter", "batch_id", *l.BatchID, "error", err)
		}
	}

	s.logger.Info("decision submitted",
		"request_id", common.RequestIDFromContext(ctx),
		"label_id", labelID,
		"decision", decision,
		"specialist", specialist,
	)
	return &labelverifypb.SubmitDecisionResponse{Label: utils.ToPBLabel(l, now)}, nil
}

func (s *LabelService) ProcessLabel(ctx context.Context, req *labelverifypb.ProcessLabelRequest) (*labelverifypb.ProcessLabelResponse, error) {
	labelID, err := parseUUID(req.GetLabelId(), "label_id")
	if err != nil {
		return nil, err
	}

	if err := s.processor.ProcessLabel(ctx, labelID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundErrorf("label %s not found", labelID)
		}
		// the failed attempt is already persisted on the label
		return nil, grpcstatus.Errorf(codes.Internal, "process label: %v", err)
	}

	l, err := s.labelRepo.GetByID(ctx, labelID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "reload label: %v", err)
	}
	return &labelverifypb.ProcessLabelResponse{Label: utils.ToPBLabel(l, time.Now().UTC())}, nil
}

func (s *LabelService) ExportReport(ctx context.Context, req *labelverifypb.ExportReportRequest) (*labelverifypb.ExportReportResponse, error) {
	applicantID, err := parseUUID(req.GetApplicantId(), "applicant_id")
	if err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportLabelsXLSX(ctx, applicantID, fromDate, toDate)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "applicant_id", applicantID, "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "export report: %v", err)
	}
	return &labelverifypb.ExportReportResponse{Xlsx: xlsx}, nil
}

// writeBackIfExpired persists a deadline-driven effective-status transition
// in the background. Display correctness never waits on it; a lost write is
// recomputed on the next read.
func writeBackIfExpired(repo repository.LabelRepository, logger *slog.Logger, l *entity.Label, now time.Time) {
	if !l.Status.HasDeadline() {
		return
	}
	eff := status.ResolveLabel(l, now)
	if eff == l.Status {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeBackTimeout)
		defer cancel()
		if err := repo.ApplyDeadlineTransition(ctx, l.ID, eff, now); err != nil {
			logger.Warn("deadline write-back failed", "label_id", l.ID, "to", eff, "error", err)
		}
	}()
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, grpcstatus.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, grpcstatus.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func parseDateWindow(fromRaw, toRaw string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(fromRaw); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, grpcstatus.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(toRaw); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, grpcstatus.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}
	return fromDate, toDate, nil
}
