package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
)

// Batch represents a batch submission for data transfer between layers.
type Batch struct {
	ID                         uuid.UUID             `json:"id"`
	ApplicantID                uuid.UUID             `json:"applicant_id"`
	Name                       string                `json:"name"`
	Status                     constants.BatchStatus `json:"status"`
	TotalLabels                int                   `json:"total_labels"`
	ProcessedCount             int                   `json:"processed_count"`
	ApprovedCount              int                   `json:"approved_count"`
	ConditionallyApprovedCount int                   `json:"conditionally_approved_count"`
	RejectedCount              int                   `json:"rejected_count"`
	NeedsCorrectionCount       int                   `json:"needs_correction_count"`
	ErrorMessage               *string               `json:"error_message,omitempty"`
	CreatedAt                  time.Time             `json:"created_at"`
	UpdatedAt                  time.Time             `json:"updated_at"`
}

// BatchLabel is the minimal per-label projection carried by a snapshot.
type BatchLabel struct {
	ID                uuid.UUID             `json:"id"`
	Status            constants.LabelStatus `json:"status"`
	OverallConfidence *float32              `json:"overall_confidence,omitempty"`
}

// BatchSnapshot is what the poller re-fetches on every tick: the aggregate
// record plus a minimal status projection of its constituent labels.
type BatchSnapshot struct {
	Batch
	Labels []BatchLabel `json:"labels"`
}

// PendingLabelIDs returns the IDs of constituent labels still awaiting
// analysis, in snapshot order.
func (s *BatchSnapshot) PendingLabelIDs() []uuid.UUID {
	var ids []uuid.UUID
	for _, l := range s.Labels {
		if l.Status == constants.LabelStatusPending {
			ids = append(ids, l.ID)
		}
	}
	return ids
}
