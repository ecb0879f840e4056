// Package status derives the status a label should currently present from
// its persisted fields and the wall clock. There is no background sweep:
// every read path calls Resolve and may lazily write the result back.
package status

import (
	"time"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/entity"
)

// Snapshot is the minimal field set Resolve needs. Any caller that can
// supply these four fields can resolve an effective status.
type Snapshot struct {
	Status             constants.LabelStatus
	CorrectionDeadline *time.Time
	DeadlineExpired    bool
	UpdatedAt          *time.Time
}

// Resolve returns the effective status for a label at the given instant.
// Rules are evaluated in fixed order; the first match wins:
//
//  1. processing for longer than the staleness threshold -> pending_review,
//     so a label orphaned by a crashed analysis run stays actionable.
//  2. no correction deadline -> stored status unchanged.
//  3. deadline in the future and not flagged expired -> stored status unchanged.
//  4. deadline passed (flag OR live comparison; a deadline equal to now
//     counts as passed):
//     needs_correction -> rejected,
//     conditionally_approved -> needs_correction,
//     anything else -> stored status unchanged.
//
// Pure function: same input and instant always yield the same result.
func Resolve(s Snapshot, now time.Time) constants.LabelStatus {
	if s.Status == constants.LabelStatusProcessing && s.UpdatedAt != nil &&
		now.Sub(*s.UpdatedAt) > constants.ProcessingStaleAfter {
		return constants.LabelStatusPendingReview
	}

	if s.CorrectionDeadline == nil {
		return s.Status
	}

	expired := s.DeadlineExpired || !s.CorrectionDeadline.After(now)
	if !expired {
		return s.Status
	}

	switch s.Status {
	case constants.LabelStatusNeedsCorrection:
		// the 30-day correction window lapsed: implicit rejection
		return constants.LabelStatusRejected
	case constants.LabelStatusConditionallyApproved:
		// the 7-day conditional window lapsed: downgrade to a correction
		// requirement
		return constants.LabelStatusNeedsCorrection
	default:
		return s.Status
	}
}

// ResolveLabel resolves the effective status for a full label row.
func ResolveLabel(l *entity.Label, now time.Time) constants.LabelStatus {
	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		updatedAt = &l.UpdatedAt
	}
	return Resolve(Snapshot{
		Status:             l.Status,
		CorrectionDeadline: l.CorrectionDeadline,
		DeadlineExpired:    l.DeadlineExpired,
		UpdatedAt:          updatedAt,
	}, now)
}
