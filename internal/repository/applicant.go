package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/gen/ent"
	"github.com/ttbcheck/labelverify/gen/ent/applicant"
	"github.com/ttbcheck/labelverify/internal/common"
	"github.com/ttbcheck/labelverify/internal/entity"
	"github.com/ttbcheck/labelverify/internal/utils"
)

type ApplicantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Applicant, error)
	GetOrCreateByEmail(ctx context.Context, name, email, company string) (*entity.Applicant, error)
}

type applicantRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewApplicantRepository(client *ent.Client, logger *slog.Logger) ApplicantRepository {
	return &applicantRepo{client: client, logger: logger}
}

func (r *applicantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Applicant, error) {
	row, err := r.client.Applicant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: applicant %s", common.ErrNotFound, id)
		}
		r.logger.Error("get applicant failed", "applicant_id", id, "error", err)
		return nil, err
	}
	return utils.ToApplicant(row), nil
}

// GetOrCreateByEmail reuses the applicant record keyed by email, creating it
// on first contact. Name and company are only written on creation.
func (r *applicantRepo) GetOrCreateByEmail(ctx context.Context, name, email, company string) (*entity.Applicant, error) {
	row, err := r.client.Applicant.Query().
		Where(applicant.EmailEQ(email)).
		Only(ctx)
	if err == nil {
		return utils.ToApplicant(row), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("query applicant failed", "email", email, "error", err)
		return nil, err
	}

	builder := r.client.Applicant.Create().
		SetName(name).
		SetEmail(email)
	if company != "" {
		builder = builder.SetCompany(company)
	}
	row, err = builder.Save(ctx)
	if err != nil {
		r.logger.Error("create applicant failed", "email", email, "error", err)
		return nil, err
	}
	r.logger.Info("applicant registered", "applicant_id", row.ID, "email", email)
	return utils.ToApplicant(row), nil
}
