package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ttbcheck/labelverify/internal/repository"
	"github.com/ttbcheck/labelverify/internal/status"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// review reports.
type Service struct {
	labelsRepo repository.LabelRepository
	logger     *slog.Logger
}

func NewService(labelsRepo repository.LabelRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{labelsRepo: labelsRepo, logger: logger}
}

// ExportLabelsXLSX returns an XLSX workbook (as bytes) for the given applicant
// and submission window. Statuses in the report are effective statuses at
// export time, the same view the review queue shows.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all labels for the applicant.
func (s *Service) ExportLabelsXLSX(ctx context.Context, applicantID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	labels, err := s.labelsRepo.ListByApplicant(ctx, applicantID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query labels: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Labels"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Submitted",
		"Brand Name",
		"Beverage Type",
		"ABV %",
		"Status",
		"Correction Deadline",
		"Days Remaining",
		"Urgency",
		"Confidence",
		"Image Path",
		"Last Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	now := time.Now().UTC()
	row := 2
	for _, l := range labels {
		eff := status.ResolveLabel(l, now)

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, l.CreatedAt.UTC().Format("2006-01-02"))
		write(2, deref(l.BrandName))
		write(3, deref(l.BeverageType))
		if l.AlcoholContent != nil {
			write(4, fmt.Sprintf("%.2f", *l.AlcoholContent))
		} else {
			write(4, "")
		}
		write(5, string(eff))
		if l.CorrectionDeadline != nil && eff.HasDeadline() {
			write(6, l.CorrectionDeadline.UTC().Format("2006-01-02"))
			write(7, status.DaysRemaining(*l.CorrectionDeadline, now))
			write(8, string(status.UrgencyFor(*l.CorrectionDeadline, now)))
		} else {
			write(6, "")
			write(7, "")
			write(8, "")
		}
		if l.OverallConfidence != nil {
			write(9, fmt.Sprintf("%.2f", *l.OverallConfidence))
		} else {
			write(9, "")
		}
		write(10, l.ImagePath)
		write(11, truncate(deref(l.ErrorMessage), 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // brand
	_ = f.SetColWidth(sheet, "C", "C", 18) // beverage type
	_ = f.SetColWidth(sheet, "D", "D", 8)  // abv
	_ = f.SetColWidth(sheet, "E", "E", 22) // status
	_ = f.SetColWidth(sheet, "F", "H", 16) // deadline fields
	_ = f.SetColWidth(sheet, "J", "J", 60) // path
	_ = f.SetColWidth(sheet, "K", "K", 48) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"applicant_id", applicantID.String(),
		"rows", len(labels),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
