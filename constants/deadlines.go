package constants

import "time"

// Deadline windows attached to specialist decisions.
const (
	// ConditionalApprovalWindow is how long an applicant has to address the
	// conditions on a conditionally approved label before it downgrades to
	// needs_correction.
	ConditionalApprovalWindow = 7 * 24 * time.Hour

	// CorrectionWindow is how long an applicant has to resubmit a corrected
	// label before it is implicitly rejected.
	CorrectionWindow = 30 * 24 * time.Hour

	// ProcessingStaleAfter is how long a label may sit in processing before
	// it is presumed orphaned by a crashed analysis run and surfaced as
	// pending_review.
	ProcessingStaleAfter = 5 * time.Minute
)

// Batch-processing tuning. Hand-tuned values from the original workflow,
// overridable via BATCH_CONCURRENCY / BATCH_POLL_INTERVAL.
const (
	DefaultBatchConcurrency = 2
	DefaultPollInterval     = 2000 * time.Millisecond
)

// UrgencyAmberDays is the days-remaining cutoff at which an unexpired
// deadline stops being green.
const UrgencyAmberDays = 7
