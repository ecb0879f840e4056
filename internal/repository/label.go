package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/gen/ent"
	"github.com/ttbcheck/labelverify/gen/ent/label"
	"github.com/ttbcheck/labelverify/internal/analysis"
	"github.com/ttbcheck/labelverify/internal/common"
	"github.com/ttbcheck/labelverify/internal/entity"
	"github.com/ttbcheck/labelverify/internal/status"
	"github.com/ttbcheck/labelverify/internal/utils"
)

// CreateLabelRequest wraps parameters for registering a submitted label.
type CreateLabelRequest struct {
	ApplicantID  *uuid.UUID
	BatchID      *uuid.UUID
	ImagePath    string
	BrandName    string // declared on the application form
	BeverageType string
}

type LabelRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Label, error)
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.Label, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, from, to *time.Time) ([]*entity.Label, error)
	CreatePending(ctx context.Context, req *CreateLabelRequest) (*entity.Label, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	RecordAnalysis(ctx context.Context, id uuid.UUID, fields analysis.LabelFields, raw []byte) error
	RecordFailure(ctx context.Context, id uuid.UUID, message string) error
	Decide(ctx context.Context, id uuid.UUID, decision constants.LabelStatus, specialist string, decidedAt time.Time) (*entity.Label, error)
	ApplyDeadlineTransition(ctx context.Context, id uuid.UUID, to constants.LabelStatus, now time.Time) error
}

type labelRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewLabelRepository(client *ent.Client, logger *slog.Logger) LabelRepository {
	return &labelRepo{client: client, logger: logger}
}

func (r *labelRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Label, error) {
	row, err := r.client.Label.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: label %s", common.ErrNotFound, id)
		}
		r.logger.Error("get label failed", "label_id", id, "error", err)
		return nil, err
	}
	return utils.ToLabel(row), nil
}

func (r *labelRepo) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.Label, error) {
	rows, err := r.client.Label.Query().
		Where(label.BatchID(batchID)).
		Order(label.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("list labels by batch failed", "batch_id", batchID, "error", err)
		return nil, err
	}
	out := make([]*entity.Label, len(rows))
	for i, row := range rows {
		out[i] = utils.ToLabel(row)
	}
	return out, nil
}

func (r *labelRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID, from, to *time.Time) ([]*entity.Label, error) {
	q := r.client.Label.Query().Where(label.ApplicantID(applicantID))
	if from != nil {
		q = q.Where(label.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(label.CreatedAtLTE(*to))
	}
	rows, err := q.Order(label.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("list labels by applicant failed", "applicant_id", applicantID, "error", err)
		return nil, err
	}
	out := make([]*entity.Label, len(rows))
	for i, row := range rows {
		out[i] = utils.ToLabel(row)
	}
	return out, nil
}

func (r *labelRepo) CreatePending(ctx context.Context, req *CreateLabelRequest) (*entity.Label, error) {
	builder := r.client.Label.Create().
		SetImagePath(req.ImagePath).
		SetStatus(string(constants.LabelStatusPending))
	if req.ApplicantID != nil {
		builder = builder.SetApplicantID(*req.ApplicantID)
	}
	if req.BatchID != nil {
		builder = builder.SetBatchID(*req.BatchID)
	}
	if req.BrandName != "" {
		builder = builder.SetBrandName(req.BrandName)
	}
	if req.BeverageType != "" {
		builder = builder.SetBeverageType(req.BeverageType)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("create label failed", "image_path", req.ImagePath, "error", err)
		return nil, err
	}
	r.logger.Info("label registered", "label_id", row.ID, "image_path", req.ImagePath)
	return utils.ToLabel(row), nil
}

func (r *labelRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Label.UpdateOneID(id).
		SetStatus(string(constants.LabelStatusProcessing)).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("mark processing failed", "label_id", id, "error", err)
		return err
	}
	return nil
}

func (r *labelRepo) RecordAnalysis(ctx context.Context, id uuid.UUID, fields analysis.LabelFields, raw []byte) error {
	canon, known := constants.CanonicalizeBeverageType(fields.BeverageType)
	if !known {
		r.logger.Warn("beverage type unknown", "label_id", id, "beverage_type", fields.BeverageType)
	}

	builder := r.client.Label.UpdateOneID(id).
		SetStatus(string(constants.LabelStatusPendingReview)).
		SetBrandName(fields.BrandName).
		SetBeverageType(string(canon)).
		SetExtractedJSON(raw).
		ClearErrorMessage()
	if fields.AlcoholContent != "" {
		if abv, err := strconv.ParseFloat(fields.AlcoholContent, 64); err == nil {
			builder = builder.SetAlcoholContent(abv)
		}
	}
	if fields.ModelConfidence > 0 {
		builder = builder.SetOverallConfidence(fields.ModelConfidence)
	}

	if _, err := builder.Save(ctx); err != nil {
		r.logger.Error("record analysis failed", "label_id", id, "error", err)
		return err
	}
	r.logger.Info("analysis recorded", "label_id", id, "brand", fields.BrandName, "beverage_type", string(canon))
	return nil
}

func (r *labelRepo) RecordFailure(ctx context.Context, id uuid.UUID, message string) error {
	// back to pending: the attempt failed, the label stays visible and
	// eligible for a retry
	_, err := r.client.Label.UpdateOneID(id).
		SetStatus(string(constants.LabelStatusPending)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("record failure failed", "label_id", id, "error", err)
		return err
	}
	r.logger.Warn("label attempt failed", "label_id", id, "error", message)
	return nil
}

func (r *labelRepo) Decide(ctx context.Context, id uuid.UUID, decision constants.LabelStatus, specialist string, decidedAt time.Time) (*entity.Label, error) {
	if !decision.IsDecision() {
		return nil, fmt.Errorf("%w: %q is not a valid decision", common.ErrInvalidInput, decision)
	}

	builder := r.client.Label.UpdateOneID(id).
		SetStatus(string(decision)).
		SetDeadlineExpired(false)
	if specialist != "" {
		builder = builder.SetAssignedSpecialist(specialist)
	}
	if deadline := status.DeadlineFor(decision, decidedAt); deadline != nil {
		builder = builder.SetCorrectionDeadline(*deadline)
	} else {
		builder = builder.ClearCorrectionDeadline()
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: label %s", common.ErrNotFound, id)
		}
		r.logger.Error("record decision failed", "label_id", id, "decision", decision, "error", err)
		return nil, err
	}
	r.logger.Info("decision recorded", "label_id", id, "decision", decision, "specialist", specialist)
	return utils.ToLabel(row), nil
}

// ApplyDeadlineTransition is the lazy write-back for an expired deadline.
// A downgrade to needs_correction opens a fresh correction window; an
// implicit rejection marks the lapsed deadline as applied. Display
// correctness never depends on this write having happened.
func (r *labelRepo) ApplyDeadlineTransition(ctx context.Context, id uuid.UUID, to constants.LabelStatus, now time.Time) error {
	builder := r.client.Label.UpdateOneID(id).SetStatus(string(to))
	switch to {
	case constants.LabelStatusNeedsCorrection:
		builder = builder.
			SetCorrectionDeadline(now.Add(constants.CorrectionWindow)).
			SetDeadlineExpired(false)
	default:
		builder = builder.SetDeadlineExpired(true)
	}
	if _, err := builder.Save(ctx); err != nil {
		r.logger.Error("deadline write-back failed", "label_id", id, "to", to, "error", err)
		return err
	}
	r.logger.Info("deadline transition applied", "label_id", id, "to", to)
	return nil
}
