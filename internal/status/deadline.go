package status

import (
	"math"
	"time"

	"github.com/ttbcheck/labelverify/constants"
)

// DeadlineFor computes the correction deadline a decision carries.
// It is invoked by the decision write path, never by Resolve.
func DeadlineFor(s constants.LabelStatus, now time.Time) *time.Time {
	switch s {
	case constants.LabelStatusConditionallyApproved:
		d := now.Add(constants.ConditionalApprovalWindow)
		return &d
	case constants.LabelStatusNeedsCorrection:
		d := now.Add(constants.CorrectionWindow)
		return &d
	default:
		return nil
	}
}

// DaysRemaining returns the whole days left until the deadline, rounding
// partial days up. A deadline at or before now yields zero or less.
func DaysRemaining(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// Urgency is the display tier for an active correction deadline.
type Urgency string

const (
	UrgencyExpired Urgency = "expired"
	UrgencyRed     Urgency = "red"   // less than 24 hours remain
	UrgencyAmber   Urgency = "amber" // a week or less remains
	UrgencyGreen   Urgency = "green"
)

// UrgencyFor classifies a non-nil deadline against the current instant.
// A deadline exactly equal to now is expired.
func UrgencyFor(deadline, now time.Time) Urgency {
	if !deadline.After(now) {
		return UrgencyExpired
	}
	if deadline.Sub(now) < 24*time.Hour {
		return UrgencyRed
	}
	if DaysRemaining(deadline, now) <= constants.UrgencyAmberDays {
		return UrgencyAmber
	}
	return UrgencyGreen
}
