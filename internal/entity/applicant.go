package entity

import (
	"time"

	"github.com/google/uuid"
)

// Applicant represents a submitting party for data transfer between layers.
type Applicant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
