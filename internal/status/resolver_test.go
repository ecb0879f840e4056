package status

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/ttbcheck/labelverify/constants"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func tp(t time.Time) *time.Time { return &t }

func TestResolve_StaleProcessingRecovers(t *testing.T) {
	stale := now.Add(-6 * time.Minute)

	// the stale rule wins regardless of deadline fields
	cases := []Snapshot{
		{Status: constants.LabelStatusProcessing, UpdatedAt: &stale},
		{Status: constants.LabelStatusProcessing, UpdatedAt: &stale,
			CorrectionDeadline: tp(now.Add(-time.Hour)), DeadlineExpired: true},
		{Status: constants.LabelStatusProcessing, UpdatedAt: &stale,
			CorrectionDeadline: tp(now.Add(time.Hour))},
	}
	for _, s := range cases {
		assert.Equal(t, constants.LabelStatusPendingReview, Resolve(s, now))
	}
}

func TestResolve_FreshProcessingUnchanged(t *testing.T) {
	fresh := now.Add(-4 * time.Minute)
	s := Snapshot{Status: constants.LabelStatusProcessing, UpdatedAt: &fresh}
	assert.Equal(t, constants.LabelStatusProcessing, Resolve(s, now))
}

func TestResolve_ProcessingWithoutUpdatedAtUnchanged(t *testing.T) {
	s := Snapshot{Status: constants.LabelStatusProcessing}
	assert.Equal(t, constants.LabelStatusProcessing, Resolve(s, now))
}

func TestResolve_NoDeadlinePassthrough(t *testing.T) {
	for _, st := range []constants.LabelStatus{
		constants.LabelStatusPending,
		constants.LabelStatusPendingReview,
		constants.LabelStatusApproved,
		constants.LabelStatusConditionallyApproved,
		constants.LabelStatusNeedsCorrection,
		constants.LabelStatusRejected,
	} {
		assert.Equal(t, st, Resolve(Snapshot{Status: st}, now))
	}
}

func TestResolve_UnexpiredDeadlinePassthrough(t *testing.T) {
	s := Snapshot{
		Status:             constants.LabelStatusNeedsCorrection,
		CorrectionDeadline: tp(now.Add(48 * time.Hour)),
	}
	assert.Equal(t, constants.LabelStatusNeedsCorrection, Resolve(s, now))
}

func TestResolve_NeedsCorrectionExpiryRejects(t *testing.T) {
	s := Snapshot{
		Status:             constants.LabelStatusNeedsCorrection,
		CorrectionDeadline: tp(now.Add(-time.Minute)),
	}
	assert.Equal(t, constants.LabelStatusRejected, Resolve(s, now))
}

func TestResolve_ConditionalExpiryDowngrades(t *testing.T) {
	s := Snapshot{
		Status:             constants.LabelStatusConditionallyApproved,
		CorrectionDeadline: tp(now.Add(-time.Minute)),
	}
	assert.Equal(t, constants.LabelStatusNeedsCorrection, Resolve(s, now))
}

func TestResolve_DeadlineEqualToNowIsPassed(t *testing.T) {
	s := Snapshot{
		Status:             constants.LabelStatusNeedsCorrection,
		CorrectionDeadline: tp(now),
	}
	assert.Equal(t, constants.LabelStatusRejected, Resolve(s, now))
}

func TestResolve_ExpiredFlagAloneTriggersTransition(t *testing.T) {
	// flag set by a prior write-back, deadline still in the future
	s := Snapshot{
		Status:             constants.LabelStatusConditionallyApproved,
		CorrectionDeadline: tp(now.Add(time.Hour)),
		DeadlineExpired:    true,
	}
	assert.Equal(t, constants.LabelStatusNeedsCorrection, Resolve(s, now))
}

func TestResolve_TerminalStatusesIdempotentUnderExpiry(t *testing.T) {
	for _, st := range []constants.LabelStatus{
		constants.LabelStatusApproved,
		constants.LabelStatusRejected,
	} {
		s := Snapshot{
			Status:             st,
			CorrectionDeadline: tp(now.Add(-time.Hour)),
			DeadlineExpired:    true,
		}
		assert.Equal(t, st, Resolve(s, now))
	}
}

func TestResolve_Pure(t *testing.T) {
	s := Snapshot{
		Status:             constants.LabelStatusNeedsCorrection,
		CorrectionDeadline: tp(now.Add(-time.Hour)),
	}
	first := Resolve(s, now)
	second := Resolve(s, now)
	assert.Equal(t, first, second)
}
