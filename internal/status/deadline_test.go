package status

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/ttbcheck/labelverify/constants"
)

func TestDeadlineFor(t *testing.T) {
	if d := DeadlineFor(constants.LabelStatusConditionallyApproved, now); d == nil || !d.Equal(now.Add(7*24*time.Hour)) {
		t.Fatalf("conditional approval deadline = %v, want now+7d", d)
	}
	if d := DeadlineFor(constants.LabelStatusNeedsCorrection, now); d == nil || !d.Equal(now.Add(30*24*time.Hour)) {
		t.Fatalf("needs correction deadline = %v, want now+30d", d)
	}
	for _, st := range []constants.LabelStatus{
		constants.LabelStatusPending,
		constants.LabelStatusProcessing,
		constants.LabelStatusPendingReview,
		constants.LabelStatusApproved,
		constants.LabelStatusRejected,
	} {
		if d := DeadlineFor(st, now); d != nil {
			t.Fatalf("DeadlineFor(%s) = %v, want nil", st, d)
		}
	}
}

func TestDaysRemaining(t *testing.T) {
	assert.Equal(t, 1, DaysRemaining(now.Add(time.Hour), now))
	assert.Equal(t, 1, DaysRemaining(now.Add(24*time.Hour), now))
	assert.Equal(t, 2, DaysRemaining(now.Add(25*time.Hour), now))
	assert.Equal(t, 7, DaysRemaining(now.Add(7*24*time.Hour), now))
	assert.Equal(t, 0, DaysRemaining(now, now))
}

func TestUrgencyBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		deadline time.Time
		want     Urgency
	}{
		{"at now", now, UrgencyExpired},
		{"in the past", now.Add(-time.Minute), UrgencyExpired},
		{"23h59m away", now.Add(23*time.Hour + 59*time.Minute), UrgencyRed},
		{"exactly 24h away", now.Add(24 * time.Hour), UrgencyAmber},
		{"exactly 7 days away", now.Add(7 * 24 * time.Hour), UrgencyAmber},
		{"8 days away", now.Add(8 * 24 * time.Hour), UrgencyGreen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UrgencyFor(tc.deadline, now))
		})
	}
}
