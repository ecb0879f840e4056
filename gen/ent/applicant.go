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
)

// Applicant is the model entity for the Applicant schema.
type Applicant struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Company holds the value of the "company" field.
	Company *string `json:"company,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicantQuery when eager-loading is set.
	Edges        ApplicantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicantEdges holds the relations/edges for other nodes in the graph.
type ApplicantEdges struct {
	// Labels holds the value of the labels edge.
	Labels []*Label `json:"labels,omitempty"`
	// Batches holds the value of the batches edge.
	Batches []*Batch `json:"batches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LabelsOrErr returns the Labels value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicantEdges) LabelsOrErr() ([]*Label, error) {
	if e.loadedTypes[0] {
		return e.Labels, nil
	}
	return nil, &NotLoadedError{edge: "labels"}
}

// BatchesOrErr returns the Batches value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicantEdges) BatchesOrErr() ([]*Batch, error) {
	if e.loadedTypes[1] {
		return e.Batches, nil
	}
	return nil, &NotLoadedError{edge: "batches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Applicant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case applicant.FieldName, applicant.FieldEmail, applicant.FieldCompany:
			values[i] = new(sql.NullString)
		case applicant.FieldCreatedAt, applicant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case applicant.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Applicant fields.
func (_m *Applicant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case applicant.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case applicant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case applicant.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case applicant.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = new(string)
				*_m.Company = value.String
			}
		case applicant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case applicant.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Applicant.
// This includes values selected through modifiers, order, etc.
func (_m *Applicant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLabels queries the "labels" edge of the Applicant entity.
func (_m *Applicant) QueryLabels() *LabelQuery {
	return NewApplicantClient(_m.config).QueryLabels(_m)
}

// QueryBatches queries the "batches" edge of the Applicant entity.
func (_m *Applicant) QueryBatches() *BatchQuery {
	return NewApplicantClient(_m.config).QueryBatches(_m)
}

// Update returns a builder for updating this Applicant.
// Note that you need to call Applicant.Unwrap() before calling this method if this Applicant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Applicant) Update() *ApplicantUpdateOne {
	return NewApplicantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Applicant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Applicant) Unwrap() *Applicant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Applicant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Applicant) String() string {
	var builder strings.Builder
	builder.WriteString("Applicant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	if v := _m.Company; v != nil {
		builder.WriteString("company=")
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

// Applicants is a parsable slice of Applicant.
type Applicants []*Applicant
