package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/entity"
	"github.com/ttbcheck/labelverify/internal/repository"
)

type fakeLabelRepo struct {
	repository.LabelRepository
	labels []*entity.Label
}

func (f *fakeLabelRepo) ListByApplicant(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Label, error) {
	return f.labels, nil
}

func strPtr(s string) *string { return &s }

func TestExportLabelsXLSXWritesEffectiveStatuses(t *testing.T) {
	expired := time.Now().UTC().Add(-48 * time.Hour)
	repo := &fakeLabelRepo{labels: []*entity.Label{
		{
			ID:        uuid.New(),
			ImagePath: "/images/approved.png",
			Status:    constants.LabelStatusApproved,
			BrandName: strPtr("Old Cellar"),
			CreatedAt: time.Now().UTC(),
		},
		{
			ID:                 uuid.New(),
			ImagePath:          "/images/lapsed.png",
			Status:             constants.LabelStatusNeedsCorrection,
			BrandName:          strPtr("Hop Federation"),
			CorrectionDeadline: &expired,
			CreatedAt:          time.Now().UTC(),
		},
	}}

	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	out, err := svc.ExportLabelsXLSX(context.Background(), uuid.New(), nil, nil)
	assert.Equal(t, err, nil)
	assert.NotEqual(t, len(out), 0)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	assert.Equal(t, err, nil)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue("Labels", "E1")
	assert.Equal(t, err, nil)
	assert.Equal(t, header, "Status")

	first, err := f.GetCellValue("Labels", "E2")
	assert.Equal(t, err, nil)
	assert.Equal(t, first, string(constants.LabelStatusApproved))

	// the lapsed correction window reads as rejected, regardless of the
	// stored status
	second, err := f.GetCellValue("Labels", "E3")
	assert.Equal(t, err, nil)
	assert.Equal(t, second, string(constants.LabelStatusRejected))

	brand, err := f.GetCellValue("Labels", "B3")
	assert.Equal(t, err, nil)
	assert.Equal(t, brand, "Hop Federation")
}

func TestExportLabelsXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeLabelRepo{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	out, err := svc.ExportLabelsXLSX(context.Background(), uuid.New(), nil, nil)
	assert.Equal(t, err, nil)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	assert.Equal(t, err, nil)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Labels")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(rows), 1) // header only
}
