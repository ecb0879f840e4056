// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/gen/ent/applicant"
	"github.com/ttbcheck/labelverify/gen/ent/batch"
)

// Batch is the model entity for the Batch schema.
type Batch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicantID holds the value of the "applicant_id" field.
	ApplicantID uuid.UUID `json:"applicant_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TotalLabels holds the value of the "total_labels" field.
	TotalLabels int `json:"total_labels,omitempty"`
	// ProcessedCount holds the value of the "processed_count" field.
	ProcessedCount int `json:"processed_count,omitempty"`
	// ApprovedCount holds the value of the "approved_count" field.
	ApprovedCount int `json:"approved_count,omitempty"`
	// ConditionallyApprovedCount holds the value of the "conditionally_approved_count" field.
	ConditionallyApprovedCount int `json:"conditionally_approved_count,omitempty"`
	// RejectedCount holds the value of the "rejected_count" field.
	RejectedCount int `json:"rejected_count,omitempty"`
	// NeedsCorrectionCount holds the value of the "needs_correction_count" field.
	NeedsCorrectionCount int `json:"needs_correction_count,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BatchQuery when eager-loading is set.
	Edges        BatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BatchEdges holds the relations/edges for other nodes in the graph.
type BatchEdges struct {
	// Applicant holds the value of the applicant edge.
	Applicant *Applicant `json:"applicant,omitempty"`
	// Labels holds the value of the labels edge.
	Labels []*Label `json:"labels,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ApplicantOrErr returns the Applicant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BatchEdges) ApplicantOrErr() (*Applicant, error) {
	if e.Applicant != nil {
		return e.Applicant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: applicant.Label}
	}
	return nil, &NotLoadedError{edge: "applicant"}
}

// LabelsOrErr returns the Labels value or an error if the edge
// was not loaded in eager-loading.
func (e BatchEdges) LabelsOrErr() ([]*Label, error) {
	if e.loadedTypes[1] {
		return e.Labels, nil
	}
	return nil, &NotLoadedError{edge: "labels"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Batch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batch.FieldTotalLabels, batch.FieldProcessedCount, batch.FieldApprovedCount, batch.FieldConditionallyApprovedCount, batch.FieldRejectedCount, batch.FieldNeedsCorrectionCount:
			values[i] = new(sql.NullInt64)
		case batch.FieldName, batch.FieldStatus, batch.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case batch.FieldCreatedAt, batch.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case batch.FieldID, batch.FieldApplicantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Batch fields.
func (_m *Batch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case batch.FieldApplicantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field applicant_id", values[i])
			} else if value != nil {
				_m.ApplicantID = *value
			}
		case batch.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case batch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case batch.FieldTotalLabels:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_labels", values[i])
			} else if value.Valid {
				_m.TotalLabels = int(value.Int64)
			}
		case batch.FieldProcessedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_count", values[i])
			} else if value.Valid {
				_m.ProcessedCount = int(value.Int64)
			}
		case batch.FieldApprovedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field approved_count", values[i])
			} else if value.Valid {
				_m.ApprovedCount = int(value.Int64)
			}
		case batch.FieldConditionallyApprovedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conditionally_approved_count", values[i])
			} else if value.Valid {
				_m.ConditionallyApprovedCount = int(value.Int64)
			}
		case batch.FieldRejectedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_count", values[i])
			} else if value.Valid {
				_m.RejectedCount = int(value.Int64)
			}
		case batch.FieldNeedsCorrectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field needs_correction_count", values[i])
			} else if value.Valid {
				_m.NeedsCorrectionCount = int(value.Int64)
			}
		case batch.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case batch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case batch.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Batch.
// This includes values selected through modifiers, order, etc.
func (_m *Batch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplicant queries the "applicant" edge of the Batch entity.
func (_m *Batch) QueryApplicant() *ApplicantQuery {
	return NewBatchClient(_m.config).QueryApplicant(_m)
}

// QueryLabels queries the "labels" edge of the Batch entity.
func (_m *Batch) QueryLabels() *LabelQuery {
	return NewBatchClient(_m.config).QueryLabels(_m)
}

// Update returns a builder for updating this Batch.
// Note that you need to call Batch.Unwrap() before calling this method if this Batch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Batch) Update() *BatchUpdateOne {
	return NewBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Batch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Batch) Unwrap() *Batch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Batch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Batch) String() string {
	var builder strings.Builder
	builder.WriteString("Batch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("applicant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicantID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("total_labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLabels))
	builder.WriteString(", ")
	builder.WriteString("processed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedCount))
	builder.WriteString(", ")
	builder.WriteString("approved_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovedCount))
	builder.WriteString(", ")
	builder.WriteString("conditionally_approved_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConditionallyApprovedCount))
	builder.WriteString(", ")
	builder.WriteString("rejected_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RejectedCount))
	builder.WriteString(", ")
	builder.WriteString("needs_correction_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsCorrectionCount))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Batches is a parsable slice of Batch.
type Batches []*Batch
