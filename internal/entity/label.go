package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
)

// Label represents a submitted label for data transfer between layers.
type Label struct {
	ID                 uuid.UUID             `json:"id"`
	ApplicantID        *uuid.UUID            `json:"applicant_id,omitempty"`
	BatchID            *uuid.UUID            `json:"batch_id,omitempty"`
	AssignedSpecialist *string               `json:"assigned_specialist,omitempty"`
	ImagePath          string                `json:"image_path"`
	Status             constants.LabelStatus `json:"status"`
	CorrectionDeadline *time.Time            `json:"correction_deadline,omitempty"`
	DeadlineExpired    bool                  `json:"deadline_expired"`
	BrandName          *string               `json:"brand_name,omitempty"`
	BeverageType       *string               `json:"beverage_type,omitempty"`
	AlcoholContent     *float64              `json:"alcohol_content,omitempty"`
	OverallConfidence  *float32              `json:"overall_confidence,omitempty"`
	ExtractedJSON      json.RawMessage       `json:"extracted_json,omitempty"`
	ErrorMessage       *string               `json:"error_message,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}
