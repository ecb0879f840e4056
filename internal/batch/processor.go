package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/analysis"
	"github.com/ttbcheck/labelverify/internal/entity"
)

// LabelStore is the slice of the label repository the processor needs.
type LabelStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Label, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	RecordAnalysis(ctx context.Context, id uuid.UUID, fields analysis.LabelFields, raw []byte) error
	RecordFailure(ctx context.Context, id uuid.UUID, message string) error
}

// BatchStore is the slice of the batch repository the processor needs.
// RecordItemOutcome advances processed_count and flips the batch to
// completed once every constituent label has been attempted.
type BatchStore interface {
	RecordItemOutcome(ctx context.Context, batchID uuid.UUID) error
}

// ItemProcessor runs the AI analysis for a single label and persists the
// outcome. Analyzer failures are translated into a recorded failed attempt;
// they never propagate as panics.
type ItemProcessor struct {
	labels   LabelStore
	batches  BatchStore
	analyzer analysis.Analyzer
	logger   *slog.Logger
}

func NewItemProcessor(labels LabelStore, batches BatchStore, analyzer analysis.Analyzer, logger *slog.Logger) *ItemProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemProcessor{
		labels:   labels,
		batches:  batches,
		analyzer: analyzer,
		logger:   logger,
	}
}

// ProcessLabel analyzes one label end to end. The returned error is the
// failure signal the drain tallies; by the time it returns, the failure has
// already been persisted for later visibility.
func (p *ItemProcessor) ProcessLabel(ctx context.Context, labelID uuid.UUID) error {
	label, err := p.labels.GetByID(ctx, labelID)
	if err != nil {
		// Without the row there is no batch ID to count the attempt
		// against; the drain still reports it through FailedIDs.
		p.logger.Error("load label failed", "label_id", labelID, "error", err)
		return fmt.Errorf("load label: %w", err)
	}

	if err := p.labels.MarkProcessing(ctx, labelID); err != nil {
		p.logger.Error("mark processing failed", "label_id", labelID, "error", err)
		p.recordOutcome(ctx, label)
		return fmt.Errorf("mark processing: %w", err)
	}

	fields, raw, err := p.analyzer.AnalyzeLabel(ctx, analysis.AnalyzeRequest{
		ImagePath:            label.ImagePath,
		AllowedBeverageTypes: constants.BeverageTypesAsStrings(),
		Application: analysis.ApplicationContext{
			BrandName:    strOrEmpty(label.BrandName),
			BeverageType: strOrEmpty(label.BeverageType),
		},
	})
	if err != nil {
		p.logger.Error("label analysis failed", "label_id", labelID, "error", err)
		if rerr := p.labels.RecordFailure(ctx, labelID, err.Error()); rerr != nil {
			p.logger.Error("record failure failed", "label_id", labelID, "error", rerr)
		}
		p.recordOutcome(ctx, label)
		return fmt.Errorf("analyze label: %w", err)
	}

	if err := p.labels.RecordAnalysis(ctx, labelID, fields, raw); err != nil {
		p.logger.Error("record analysis failed", "label_id", labelID, "error", err)
		p.recordOutcome(ctx, label)
		return fmt.Errorf("record analysis: %w", err)
	}

	p.recordOutcome(ctx, label)
	p.logger.Info("label analysis recorded",
		"label_id", labelID,
		"brand", fields.BrandName,
		"beverage_type", fields.BeverageType,
		"confidence", fields.ModelConfidence,
	)
	return nil
}

// recordOutcome counts the attempt against the parent batch, success or
// failure alike: a batch is done once every label has been attempted.
func (p *ItemProcessor) recordOutcome(ctx context.Context, label *entity.Label) {
	if label.BatchID == nil {
		return
	}
	if err := p.batches.RecordItemOutcome(ctx, *label.BatchID); err != nil {
		p.logger.Error("record batch outcome failed", "batch_id", *label.BatchID, "label_id", label.ID, "error", err)
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
