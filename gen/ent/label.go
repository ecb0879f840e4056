// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/gen/ent/applicant"
	"github.com/ttbcheck/labelverify/gen/ent/batch"
	"github.com/ttbcheck/labelverify/gen/ent/label"
)

// Label is the model entity for the Label schema.
type Label struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicantID holds the value of the "applicant_id" field.
	ApplicantID *uuid.UUID `json:"applicant_id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID *uuid.UUID `json:"batch_id,omitempty"`
	// AssignedSpecialist holds the value of the "assigned_specialist" field.
	AssignedSpecialist *string `json:"assigned_specialist,omitempty"`
	// ImagePath holds the value of the "image_path" field.
	ImagePath string `json:"image_path,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CorrectionDeadline holds the value of the "correction_deadline" field.
	CorrectionDeadline *time.Time `json:"correction_deadline,omitempty"`
	// DeadlineExpired holds the value of the "deadline_expired" field.
	DeadlineExpired bool `json:"deadline_expired,omitempty"`
	// BrandName holds the value of the "brand_name" field.
	BrandName *string `json:"brand_name,omitempty"`
	// BeverageType holds the value of the "beverage_type" field.
	BeverageType *string `json:"beverage_type,omitempty"`
	// AlcoholContent holds the value of the "alcohol_content" field.
	AlcoholContent *float64 `json:"alcohol_content,omitempty"`
	// OverallConfidence holds the value of the "overall_confidence" field.
	OverallConfidence *float32 `json:"overall_confidence,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LabelQuery when eager-loading is set.
	Edges        LabelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LabelEdges holds the relations/edges for other nodes in the graph.
type LabelEdges struct {
	// Applicant holds the value of the applicant edge.
	Applicant *Applicant `json:"applicant,omitempty"`
	// Batch holds the value of the batch edge.
	Batch *Batch `json:"batch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ApplicantOrErr returns the Applicant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabelEdges) ApplicantOrErr() (*Applicant, error) {
	if e.Applicant != nil {
		return e.Applicant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: applicant.Label}
	}
	return nil, &NotLoadedError{edge: "applicant"}
}

// BatchOrErr returns the Batch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabelEdges) BatchOrErr() (*Batch, error) {
	if e.Batch != nil {
		return e.Batch, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: batch.Label}
	}
	return nil, &NotLoadedError{edge: "batch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Label) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case label.FieldApplicantID, label.FieldBatchID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case label.FieldExtractedJSON:
			values[i] = new([]byte)
		case label.FieldDeadlineExpired:
			values[i] = new(sql.NullBool)
		case label.FieldAlcoholContent, label.FieldOverallConfidence:
			values[i] = new(sql.NullFloat64)
		case label.FieldAssignedSpecialist, label.FieldImagePath, label.FieldStatus, label.FieldBrandName, label.FieldBeverageType, label.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case label.FieldCorrectionDeadline, label.FieldCreatedAt, label.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case label.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Label fields.
func (_m *Label) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case label.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case label.FieldApplicantID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field applicant_id", values[i])
			} else if value.Valid {
				_m.ApplicantID = new(uuid.UUID)
				*_m.ApplicantID = *value.S.(*uuid.UUID)
			}
		case label.FieldBatchID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = new(uuid.UUID)
				*_m.BatchID = *value.S.(*uuid.UUID)
			}
		case label.FieldAssignedSpecialist:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_specialist", values[i])
			} else if value.Valid {
				_m.AssignedSpecialist = new(string)
				*_m.AssignedSpecialist = value.String
			}
		case label.FieldImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_path", values[i])
			} else if value.Valid {
				_m.ImagePath = value.String
			}
		case label.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case label.FieldCorrectionDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field correction_deadline", values[i])
			} else if value.Valid {
				_m.CorrectionDeadline = new(time.Time)
				*_m.CorrectionDeadline = value.Time
			}
		case label.FieldDeadlineExpired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deadline_expired", values[i])
			} else if value.Valid {
				_m.DeadlineExpired = value.Bool
			}
		case label.FieldBrandName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_name", values[i])
			} else if value.Valid {
				_m.BrandName = new(string)
				*_m.BrandName = value.String
			}
		case label.FieldBeverageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field beverage_type", values[i])
			} else if value.Valid {
				_m.BeverageType = new(string)
				*_m.BeverageType = value.String
			}
		case label.FieldAlcoholContent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field alcohol_content", values[i])
			} else if value.Valid {
				_m.AlcoholContent = new(float64)
				*_m.AlcoholContent = value.Float64
			}
		case label.FieldOverallConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_confidence", values[i])
			} else if value.Valid {
				_m.OverallConfidence = new(float32)
				*_m.OverallConfidence = float32(value.Float64)
			}
		case label.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case label.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case label.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case label.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Label.
// This includes values selected through modifiers, order, etc.
func (_m *Label) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplicant queries the "applicant" edge of the Label entity.
func (_m *Label) QueryApplicant() *ApplicantQuery {
	return NewLabelClient(_m.config).QueryApplicant(_m)
}

// QueryBatch queries the "batch" edge of the Label entity.
func (_m *Label) QueryBatch() *BatchQuery {
	return NewLabelClient(_m.config).QueryBatch(_m)
}

// Update returns a builder for updating this Label.
// Note that you need to call Label.Unwrap() before calling this method if this Label
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Label) Update() *LabelUpdateOne {
	return NewLabelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Label entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Label) Unwrap() *Label {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Label is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Label) String() string {
	var builder strings.Builder
	builder.WriteString("Label(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ApplicantID; v != nil {
		builder.WriteString("applicant_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BatchID; v != nil {
		builder.WriteString("batch_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AssignedSpecialist; v != nil {
		builder.WriteString("assigned_specialist=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("image_path=")
	builder.WriteString(_m.ImagePath)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.CorrectionDeadline; v != nil {
		builder.WriteString("correction_deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("deadline_expired=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeadlineExpired))
	builder.WriteString(", ")
	if v := _m.BrandName; v != nil {
		builder.WriteString("brand_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BeverageType; v != nil {
		builder.WriteString("beverage_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AlcoholContent; v != nil {
		builder.WriteString("alcohol_content=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OverallConfidence; v != nil {
		builder.WriteString("overall_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedJSON))
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

// Labels is a parsable slice of Label.
type Labels []*Label
