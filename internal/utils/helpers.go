package utils

import (
	"fmt"
	"time"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/gen/ent"
	labelverifypb "github.com/ttbcheck/labelverify/gen/proto/labelverify/v1"
	"github.com/ttbcheck/labelverify/internal/entity"
	"github.com/ttbcheck/labelverify/internal/status"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToLabel(e *ent.Label) *entity.Label {
	return &entity.Label{
		ID:                 e.ID,
		ApplicantID:        e.ApplicantID,
		BatchID:            e.BatchID,
		AssignedSpecialist: e.AssignedSpecialist,
		ImagePath:          e.ImagePath,
		Status:             constants.LabelStatus(e.Status),
		CorrectionDeadline: e.CorrectionDeadline,
		DeadlineExpired:    e.DeadlineExpired,
		BrandName:          e.BrandName,
		BeverageType:       e.BeverageType,
		AlcoholContent:     e.AlcoholContent,
		OverallConfidence:  e.OverallConfidence,
		ExtractedJSON:      e.ExtractedJSON,
		ErrorMessage:       e.ErrorMessage,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToBatch(e *ent.Batch) *entity.Batch {
	return &entity.Batch{
		ID:                         e.ID,
		ApplicantID:                e.ApplicantID,
		Name:                       e.Name,
		Status:                     constants.BatchStatus(e.Status),
		TotalLabels:                e.TotalLabels,
		ProcessedCount:             e.ProcessedCount,
		ApprovedCount:              e.ApprovedCount,
		ConditionallyApprovedCount: e.ConditionallyApprovedCount,
		RejectedCount:              e.RejectedCount,
		NeedsCorrectionCount:       e.NeedsCorrectionCount,
		ErrorMessage:               e.ErrorMessage,
		CreatedAt:                  e.CreatedAt,
		UpdatedAt:                  e.UpdatedAt,
	}
}

func ToApplicant(e *ent.Applicant) *entity.Applicant {
	return &entity.Applicant{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Company:   e.Company,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToPBLabel renders a label for the wire. Status is the effective status at
// now, not the stored one; deadline fields are included only while the
// effective status keeps a correction window open.
func ToPBLabel(l *entity.Label, now time.Time) *labelverifypb.Label {
	eff := status.ResolveLabel(l, now)
	pb := &labelverifypb.Label{
		Id:                 l.ID.String(),
		ImagePath:          l.ImagePath,
		Status:             string(eff),
		StoredStatus:       string(l.Status),
		BrandName:          strOrEmpty(l.BrandName),
		BeverageType:       strOrEmpty(l.BeverageType),
		AssignedSpecialist: strOrEmpty(l.AssignedSpecialist),
		ErrorMessage:       strOrEmpty(l.ErrorMessage),
		CreatedAt:          l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          l.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if l.ApplicantID != nil {
		pb.ApplicantId = l.ApplicantID.String()
	}
	if l.BatchID != nil {
		pb.BatchId = l.BatchID.String()
	}
	if l.AlcoholContent != nil {
		pb.AlcoholContent = fmt.Sprintf("%.2f", *l.AlcoholContent)
	}
	if l.OverallConfidence != nil {
		pb.OverallConfidence = *l.OverallConfidence
	}
	if l.CorrectionDeadline != nil && eff.HasDeadline() {
		pb.CorrectionDeadline = l.CorrectionDeadline.UTC().Format(time.RFC3339)
		pb.DaysRemaining = int32(status.DaysRemaining(*l.CorrectionDeadline, now))
		pb.Urgency = string(status.UrgencyFor(*l.CorrectionDeadline, now))
	}
	return pb
}

func ToPBBatch(b *entity.Batch) *labelverifypb.Batch {
	return &labelverifypb.Batch{
		Id:                         b.ID.String(),
		ApplicantId:                b.ApplicantID.String(),
		Name:                       b.Name,
		Status:                     string(b.Status),
		TotalLabels:                int32(b.TotalLabels),
		ProcessedCount:             int32(b.ProcessedCount),
		ApprovedCount:              int32(b.ApprovedCount),
		ConditionallyApprovedCount: int32(b.ConditionallyApprovedCount),
		RejectedCount:              int32(b.RejectedCount),
		NeedsCorrectionCount:       int32(b.NeedsCorrectionCount),
		ErrorMessage:               strOrEmpty(b.ErrorMessage),
		CreatedAt:                  b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:                  b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBApplicant(a *entity.Applicant) *labelverifypb.Applicant {
	return &labelverifypb.Applicant{
		Id:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Company:   strOrEmpty(a.Company),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
