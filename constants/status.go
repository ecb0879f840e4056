package constants

// LabelStatus is the canonical status for rows in labels.
type LabelStatus string

// Stable values (store these exact strings in DB).
const (
	LabelStatusPending               LabelStatus = "pending"                // submitted, analysis not started
	LabelStatusProcessing            LabelStatus = "processing"             // AI analysis in flight
	LabelStatusPendingReview         LabelStatus = "pending_review"         // analysis done, waiting on a specialist
	LabelStatusApproved              LabelStatus = "approved"               // terminal
	LabelStatusConditionallyApproved LabelStatus = "conditionally_approved" // approved pending minor corrections (7-day window)
	LabelStatusNeedsCorrection       LabelStatus = "needs_correction"       // applicant must resubmit (30-day window)
	LabelStatusRejected              LabelStatus = "rejected"               // terminal
)

var allLabelStatuses = []LabelStatus{
	LabelStatusPending,
	LabelStatusProcessing,
	LabelStatusPendingReview,
	LabelStatusApproved,
	LabelStatusConditionallyApproved,
	LabelStatusNeedsCorrection,
	LabelStatusRejected,
}

func (s LabelStatus) String() string { return string(s) }

func (s LabelStatus) IsValid() bool {
	for _, v := range allLabelStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status can never change again.
// Deadline-carrying statuses are not terminal: they downgrade when the
// correction deadline lapses.
func (s LabelStatus) IsTerminal() bool {
	return s == LabelStatusApproved || s == LabelStatusRejected
}

// HasDeadline reports whether the status keeps a correction window open.
func (s LabelStatus) HasDeadline() bool {
	return s == LabelStatusConditionallyApproved || s == LabelStatusNeedsCorrection
}

// IsDecision reports whether the status is one a specialist can assign.
func (s LabelStatus) IsDecision() bool {
	switch s {
	case LabelStatusApproved, LabelStatusConditionallyApproved,
		LabelStatusNeedsCorrection, LabelStatusRejected:
		return true
	}
	return false
}

// BatchStatus is the coarse lifecycle status for rows in batches.
type BatchStatus string

const (
	BatchStatusPending    BatchStatus = "pending"
	BatchStatusProcessing BatchStatus = "processing"
	BatchStatusCompleted  BatchStatus = "completed"
	BatchStatusFailed     BatchStatus = "failed"
)

func (s BatchStatus) String() string { return string(s) }

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusPending, BatchStatusProcessing, BatchStatusCompleted, BatchStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the batch will never be re-opened.
func (s BatchStatus) IsTerminal() bool {
	return s == BatchStatusCompleted || s == BatchStatusFailed
}
