package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/gen/ent"
	"github.com/ttbcheck/labelverify/gen/ent/batch"
	"github.com/ttbcheck/labelverify/gen/ent/label"
	"github.com/ttbcheck/labelverify/internal/common"
	"github.com/ttbcheck/labelverify/internal/entity"
	"github.com/ttbcheck/labelverify/internal/utils"
)

// CreateBatchRequest wraps parameters for registering a batch submission.
type CreateBatchRequest struct {
	ApplicantID uuid.UUID
	Name        string
	TotalLabels int
}

type BatchRepository interface {
	Create(ctx context.Context, req *CreateBatchRequest) (*entity.Batch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error)
	Snapshot(ctx context.Context, batchID uuid.UUID) (*entity.BatchSnapshot, error)
	RecordItemOutcome(ctx context.Context, batchID uuid.UUID) error
	RecordDecision(ctx context.Context, batchID uuid.UUID, decision constants.LabelStatus) error
	MarkFailed(ctx context.Context, batchID uuid.UUID, message string) error
}

type batchRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBatchRepository(client *ent.Client, logger *slog.Logger) BatchRepository {
	return &batchRepo{client: client, logger: logger}
}

func (r *batchRepo) Create(ctx context.Context, req *CreateBatchRequest) (*entity.Batch, error) {
	row, err := r.client.Batch.Create().
		SetApplicantID(req.ApplicantID).
		SetName(req.Name).
		SetTotalLabels(req.TotalLabels).
		SetStatus(string(constants.BatchStatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("create batch failed", "name", req.Name, "error", err)
		return nil, err
	}
	r.logger.Info("batch registered", "batch_id", row.ID, "name", req.Name, "total_labels", req.TotalLabels)
	return utils.ToBatch(row), nil
}

func (r *batchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error) {
	row, err := r.client.Batch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: batch %s", common.ErrNotFound, id)
		}
		r.logger.Error("get batch failed", "batch_id", id, "error", err)
		return nil, err
	}
	return utils.ToBatch(row), nil
}

// Snapshot re-reads the aggregate record plus a minimal projection of its
// constituent labels. This is what the poller fetches on every tick.
func (r *batchRepo) Snapshot(ctx context.Context, batchID uuid.UUID) (*entity.BatchSnapshot, error) {
	row, err := r.client.Batch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: batch %s", common.ErrNotFound, batchID)
		}
		r.logger.Error("get batch failed", "batch_id", batchID, "error", err)
		return nil, err
	}

	rows, err := r.client.Label.Query().
		Where(label.BatchID(batchID)).
		Order(label.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("list batch labels failed", "batch_id", batchID, "error", err)
		return nil, err
	}

	snap := &entity.BatchSnapshot{
		Batch:  *utils.ToBatch(row),
		Labels: make([]entity.BatchLabel, len(rows)),
	}
	for i, l := range rows {
		snap.Labels[i] = entity.BatchLabel{
			ID:                l.ID,
			Status:            constants.LabelStatus(l.Status),
			OverallConfidence: l.OverallConfidence,
		}
	}
	return snap, nil
}

// RecordItemOutcome counts one attempted label against the batch. The first
// attempt moves the batch to processing; the last one completes it. Counters
// on a terminal batch are frozen.
func (r *batchRepo) RecordItemOutcome(ctx context.Context, batchID uuid.UUID) error {
	row, err := r.client.Batch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: batch %s", common.ErrNotFound, batchID)
		}
		return err
	}
	if constants.BatchStatus(row.Status).IsTerminal() {
		r.logger.Warn("outcome recorded against terminal batch, ignoring", "batch_id", batchID, "status", row.Status)
		return nil
	}

	builder := r.client.Batch.UpdateOneID(batchID).AddProcessedCount(1)
	if constants.BatchStatus(row.Status) == constants.BatchStatusPending {
		builder = builder.SetStatus(string(constants.BatchStatusProcessing))
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("record item outcome failed", "batch_id", batchID, "error", err)
		return err
	}

	// Completion is decided from the post-increment count. Concurrent
	// recorders each see their own incremented value, so the flip runs as a
	// separate conditional update that only one of them needs to win.
	if updated.ProcessedCount >= updated.TotalLabels {
		n, err := r.client.Batch.Update().
			Where(
				batch.IDEQ(batchID),
				batch.StatusIn(
					string(constants.BatchStatusPending),
					string(constants.BatchStatusProcessing),
				),
			).
			SetStatus(string(constants.BatchStatusCompleted)).
			Save(ctx)
		if err != nil {
			r.logger.Error("complete batch failed", "batch_id", batchID, "error", err)
			return err
		}
		if n > 0 {
			r.logger.Info("batch completed", "batch_id", batchID, "processed", updated.ProcessedCount, "total", updated.TotalLabels)
		}
	}
	return nil
}

// RecordDecision bumps the batch counter matching a specialist decision.
func (r *batchRepo) RecordDecision(ctx context.Context, batchID uuid.UUID, decision constants.LabelStatus) error {
	builder := r.client.Batch.UpdateOneID(batchID)
	switch decision {
	case constants.LabelStatusApproved:
		builder = builder.AddApprovedCount(1)
	case constants.LabelStatusConditionallyApproved:
		builder = builder.AddConditionallyApprovedCount(1)
	case constants.LabelStatusRejected:
		builder = builder.AddRejectedCount(1)
	case constants.LabelStatusNeedsCorrection:
		builder = builder.AddNeedsCorrectionCount(1)
	default:
		return fmt.Errorf("%w: %q is not a valid decision", common.ErrInvalidInput, decision)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: batch %s", common.ErrNotFound, batchID)
		}
		r.logger.Error("record decision failed", "batch_id", batchID, "decision", decision, "error", err)
		return err
	}
	return nil
}

func (r *batchRepo) MarkFailed(ctx context.Context, batchID uuid.UUID, message string) error {
	_, err := r.client.Batch.UpdateOneID(batchID).
		SetStatus(string(constants.BatchStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("mark batch failed failed", "batch_id", batchID, "error", err)
		return err
	}
	r.logger.Warn("batch marked failed", "batch_id", batchID, "error", message)
	return nil
}
