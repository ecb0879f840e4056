// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/gen/ent/applicant"
	"github.com/ttbcheck/labelverify/gen/ent/batch"
	"github.com/ttbcheck/labelverify/gen/ent/label"
	"github.com/ttbcheck/labelverify/gen/ent/predicate"
)

// LabelUpdate is the builder for updating Label entities.
type LabelUpdate struct {
	config
	hooks    []Hook
	mutation *LabelMutation
}

// Where appends a list predicates to the LabelUpdate builder.
func (_u *LabelUpdate) Where(ps ...predicate.Label) *LabelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicantID sets the "applicant_id" field.
func (_u *LabelUpdate) SetApplicantID(v uuid.UUID) *LabelUpdate {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableApplicantID(v *uuid.UUID) *LabelUpdate {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// ClearApplicantID clears the value of the "applicant_id" field.
func (_u *LabelUpdate) ClearApplicantID() *LabelUpdate {
	_u.mutation.ClearApplicantID()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *LabelUpdate) SetBatchID(v uuid.UUID) *LabelUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableBatchID(v *uuid.UUID) *LabelUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *LabelUpdate) ClearBatchID() *LabelUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetAssignedSpecialist sets the "assigned_specialist" field.
func (_u *LabelUpdate) SetAssignedSpecialist(v string) *LabelUpdate {
	_u.mutation.SetAssignedSpecialist(v)
	return _u
}

// SetNillableAssignedSpecialist sets the "assigned_specialist" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableAssignedSpecialist(v *string) *LabelUpdate {
	if v != nil {
		_u.SetAssignedSpecialist(*v)
	}
	return _u
}

// ClearAssignedSpecialist clears the value of the "assigned_specialist" field.
func (_u *LabelUpdate) ClearAssignedSpecialist() *LabelUpdate {
	_u.mutation.ClearAssignedSpecialist()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *LabelUpdate) SetImagePath(v string) *LabelUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableImagePath(v *string) *LabelUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabelUpdate) SetStatus(v string) *LabelUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableStatus(v *string) *LabelUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrectionDeadline sets the "correction_deadline" field.
func (_u *LabelUpdate) SetCorrectionDeadline(v time.Time) *LabelUpdate {
	_u.mutation.SetCorrectionDeadline(v)
	return _u
}

// SetNillableCorrectionDeadline sets the "correction_deadline" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableCorrectionDeadline(v *time.Time) *LabelUpdate {
	if v != nil {
		_u.SetCorrectionDeadline(*v)
	}
	return _u
}

// ClearCorrectionDeadline clears the value of the "correction_deadline" field.
func (_u *LabelUpdate) ClearCorrectionDeadline() *LabelUpdate {
	_u.mutation.ClearCorrectionDeadline()
	return _u
}

// SetDeadlineExpired sets the "deadline_expired" field.
func (_u *LabelUpdate) SetDeadlineExpired(v bool) *LabelUpdate {
	_u.mutation.SetDeadlineExpired(v)
	return _u
}

// SetNillableDeadlineExpired sets the "deadline_expired" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableDeadlineExpired(v *bool) *LabelUpdate {
	if v != nil {
		_u.SetDeadlineExpired(*v)
	}
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *LabelUpdate) SetBrandName(v string) *LabelUpdate {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableBrandName(v *string) *LabelUpdate {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// ClearBrandName clears the value of the "brand_name" field.
func (_u *LabelUpdate) ClearBrandName() *LabelUpdate {
	_u.mutation.ClearBrandName()
	return _u
}

// SetBeverageType sets the "beverage_type" field.
func (_u *LabelUpdate) SetBeverageType(v string) *LabelUpdate {
	_u.mutation.SetBeverageType(v)
	return _u
}

// SetNillableBeverageType sets the "beverage_type" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableBeverageType(v *string) *LabelUpdate {
	if v != nil {
		_u.SetBeverageType(*v)
	}
	return _u
}

// ClearBeverageType clears the value of the "beverage_type" field.
func (_u *LabelUpdate) ClearBeverageType() *LabelUpdate {
	_u.mutation.ClearBeverageType()
	return _u
}

// SetAlcoholContent sets the "alcohol_content" field.
func (_u *LabelUpdate) SetAlcoholContent(v float64) *LabelUpdate {
	_u.mutation.ResetAlcoholContent()
	_u.mutation.SetAlcoholContent(v)
	return _u
}

// SetNillableAlcoholContent sets the "alcohol_content" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableAlcoholContent(v *float64) *LabelUpdate {
	if v != nil {
		_u.SetAlcoholContent(*v)
	}
	return _u
}

// AddAlcoholContent adds value to the "alcohol_content" field.
func (_u *LabelUpdate) AddAlcoholContent(v float64) *LabelUpdate {
	_u.mutation.AddAlcoholContent(v)
	return _u
}

// ClearAlcoholContent clears the value of the "alcohol_content" field.
func (_u *LabelUpdate) ClearAlcoholContent() *LabelUpdate {
	_u.mutation.ClearAlcoholContent()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *LabelUpdate) SetOverallConfidence(v float32) *LabelUpdate {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableOverallConfidence(v *float32) *LabelUpdate {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *LabelUpdate) AddOverallConfidence(v float32) *LabelUpdate {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (_u *LabelUpdate) ClearOverallConfidence() *LabelUpdate {
	_u.mutation.ClearOverallConfidence()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *LabelUpdate) SetExtractedJSON(v json.RawMessage) *LabelUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *LabelUpdate) AppendExtractedJSON(v json.RawMessage) *LabelUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *LabelUpdate) ClearExtractedJSON() *LabelUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LabelUpdate) SetErrorMessage(v string) *LabelUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableErrorMessage(v *string) *LabelUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LabelUpdate) ClearErrorMessage() *LabelUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LabelUpdate) SetCreatedAt(v time.Time) *LabelUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableCreatedAt(v *time.Time) *LabelUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabelUpdate) SetUpdatedAt(v time.Time) *LabelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *LabelUpdate) SetApplicant(v *Applicant) *LabelUpdate {
	return _u.SetApplicantID(v.ID)
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *LabelUpdate) SetBatch(v *Batch) *LabelUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the LabelMutation object of the builder.
func (_u *LabelUpdate) Mutation() *LabelMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *LabelUpdate) ClearApplicant() *LabelUpdate {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *LabelUpdate) ClearBatch() *LabelUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := label.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelUpdate) check() error {
	if v, ok := _u.mutation.ImagePath(); ok {
		if err := label.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "Label.image_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := label.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Label.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(label.Table, label.Columns, sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssignedSpecialist(); ok {
		_spec.SetField(label.FieldAssignedSpecialist, field.TypeString, value)
	}
	if _u.mutation.AssignedSpecialistCleared() {
		_spec.ClearField(label.FieldAssignedSpecialist, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(label.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(label.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectionDeadline(); ok {
		_spec.SetField(label.FieldCorrectionDeadline, field.TypeTime, value)
	}
	if _u.mutation.CorrectionDeadlineCleared() {
		_spec.ClearField(label.FieldCorrectionDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.DeadlineExpired(); ok {
		_spec.SetField(label.FieldDeadlineExpired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(label.FieldBrandName, field.TypeString, value)
	}
	if _u.mutation.BrandNameCleared() {
		_spec.ClearField(label.FieldBrandName, field.TypeString)
	}
	if value, ok := _u.mutation.BeverageType(); ok {
		_spec.SetField(label.FieldBeverageType, field.TypeString, value)
	}
	if _u.mutation.BeverageTypeCleared() {
		_spec.ClearField(label.FieldBeverageType, field.TypeString)
	}
	if value, ok := _u.mutation.AlcoholContent(); ok {
		_spec.SetField(label.FieldAlcoholContent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAlcoholContent(); ok {
		_spec.AddField(label.FieldAlcoholContent, field.TypeFloat64, value)
	}
	if _u.mutation.AlcoholContentCleared() {
		_spec.ClearField(label.FieldAlcoholContent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(label.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(label.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(label.FieldOverallConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(label.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, label.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(label.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(label.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(label.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(label.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(label.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   label.ApplicantTable,
			Columns: []string{label.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   label.ApplicantTable,
			Columns: []string{label.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   label.BatchTable,
			Columns: []string{label.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   label.BatchTable,
			Columns: []string{label.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{label.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabelUpdateOne is the builder for updating a single Label entity.
type LabelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabelMutation
}

// SetApplicantID sets the "applicant_id" field.
func (_u *LabelUpdateOne) SetApplicantID(v uuid.UUID) *LabelUpdateOne {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableApplicantID(v *uuid.UUID) *LabelUpdateOne {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// ClearApplicantID clears the value of the "applicant_id" field.
func (_u *LabelUpdateOne) ClearApplicantID() *LabelUpdateOne {
	_u.mutation.ClearApplicantID()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *LabelUpdateOne) SetBatchID(v uuid.UUID) *LabelUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableBatchID(v *uuid.UUID) *LabelUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *LabelUpdateOne) ClearBatchID() *LabelUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetAssignedSpecialist sets the "assigned_specialist" field.
func (_u *LabelUpdateOne) SetAssignedSpecialist(v string) *LabelUpdateOne {
	_u.mutation.SetAssignedSpecialist(v)
	return _u
}

// SetNillableAssignedSpecialist sets the "assigned_specialist" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableAssignedSpecialist(v *string) *LabelUpdateOne {
	if v != nil {
		_u.SetAssignedSpecialist(*v)
	}
	return _u
}

// ClearAssignedSpecialist clears the value of the "assigned_specialist" field.
func (_u *LabelUpdateOne) ClearAssignedSpecialist() *LabelUpdateOne {
	_u.mutation.ClearAssignedSpecialist()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *LabelUpdateOne) SetImagePath(v string) *LabelUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableImagePath(v *string) *LabelUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabelUpdateOne) SetStatus(v string) *LabelUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableStatus(v *string) *LabelUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrectionDeadline sets the "correction_deadline" field.
func (_u *LabelUpdateOne) SetCorrectionDeadline(v time.Time) *LabelUpdateOne {
	_u.mutation.SetCorrectionDeadline(v)
	return _u
}

// SetNillableCorrectionDeadline sets the "correction_deadline" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableCorrectionDeadline(v *time.Time) *LabelUpdateOne {
	if v != nil {
		_u.SetCorrectionDeadline(*v)
	}
	return _u
}

// ClearCorrectionDeadline clears the value of the "correction_deadline" field.
func (_u *LabelUpdateOne) ClearCorrectionDeadline() *LabelUpdateOne {
	_u.mutation.ClearCorrectionDeadline()
	return _u
}

// SetDeadlineExpired sets the "deadline_expired" field.
func (_u *LabelUpdateOne) SetDeadlineExpired(v bool) *LabelUpdateOne {
	_u.mutation.SetDeadlineExpired(v)
	return _u
}

// SetNillableDeadlineExpired sets the "deadline_expired" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableDeadlineExpired(v *bool) *LabelUpdateOne {
	if v != nil {
		_u.SetDeadlineExpired(*v)
	}
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *LabelUpdateOne) SetBrandName(v string) *LabelUpdateOne {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableBrandName(v *string) *LabelUpdateOne {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// ClearBrandName clears the value of the "brand_name" field.
func (_u *LabelUpdateOne) ClearBrandName() *LabelUpdateOne {
	_u.mutation.ClearBrandName()
	return _u
}

// SetBeverageType sets the "beverage_type" field.
func (_u *LabelUpdateOne) SetBeverageType(v string) *LabelUpdateOne {
	_u.mutation.SetBeverageType(v)
	return _u
}

// SetNillableBeverageType sets the "beverage_type" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableBeverageType(v *string) *LabelUpdateOne {
	if v != nil {
		_u.SetBeverageType(*v)
	}
	return _u
}

// ClearBeverageType clears the value of the "beverage_type" field.
func (_u *LabelUpdateOne) ClearBeverageType() *LabelUpdateOne {
	_u.mutation.ClearBeverageType()
	return _u
}

// SetAlcoholContent sets the "alcohol_content" field.
func (_u *LabelUpdateOne) SetAlcoholContent(v float64) *LabelUpdateOne {
	_u.mutation.ResetAlcoholContent()
	_u.mutation.SetAlcoholContent(v)
	return _u
}

// SetNillableAlcoholContent sets the "alcohol_content" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableAlcoholContent(v *float64) *LabelUpdateOne {
	if v != nil {
		_u.SetAlcoholContent(*v)
	}
	return _u
}

// AddAlcoholContent adds value to the "alcohol_content" field.
func (_u *LabelUpdateOne) AddAlcoholContent(v float64) *LabelUpdateOne {
	_u.mutation.AddAlcoholContent(v)
	return _u
}

// ClearAlcoholContent clears the value of the "alcohol_content" field.
func (_u *LabelUpdateOne) ClearAlcoholContent() *LabelUpdateOne {
	_u.mutation.ClearAlcoholContent()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *LabelUpdateOne) SetOverallConfidence(v float32) *LabelUpdateOne {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableOverallConfidence(v *float32) *LabelUpdateOne {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *LabelUpdateOne) AddOverallConfidence(v float32) *LabelUpdateOne {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (_u *LabelUpdateOne) ClearOverallConfidence() *LabelUpdateOne {
	_u.mutation.ClearOverallConfidence()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *LabelUpdateOne) SetExtractedJSON(v json.RawMessage) *LabelUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *LabelUpdateOne) AppendExtractedJSON(v json.RawMessage) *LabelUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *LabelUpdateOne) ClearExtractedJSON() *LabelUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LabelUpdateOne) SetErrorMessage(v string) *LabelUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableErrorMessage(v *string) *LabelUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LabelUpdateOne) ClearErrorMessage() *LabelUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LabelUpdateOne) SetCreatedAt(v time.Time) *LabelUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableCreatedAt(v *time.Time) *LabelUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabelUpdateOne) SetUpdatedAt(v time.Time) *LabelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *LabelUpdateOne) SetApplicant(v *Applicant) *LabelUpdateOne {
	return _u.SetApplicantID(v.ID)
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *LabelUpdateOne) SetBatch(v *Batch) *LabelUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the LabelMutation object of the builder.
func (_u *LabelUpdateOne) Mutation() *LabelMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *LabelUpdateOne) ClearApplicant() *LabelUpdateOne {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *LabelUpdateOne) ClearBatch() *LabelUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the LabelUpdate builder.
func (_u *LabelUpdateOne) Where(ps ...predicate.Label) *LabelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabelUpdateOne) Select(field string, fields ...string) *LabelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Label entity.
func (_u *LabelUpdateOne) Save(ctx context.Context) (*Label, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelUpdateOne) SaveX(ctx context.Context) *Label {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := label.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelUpdateOne) check() error {
	if v, ok := _u.mutation.ImagePath(); ok {
		if err := label.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "Label.image_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := label.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Label.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabelUpdateOne) sqlSave(ctx context.Context) (_node *Label, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(label.Table, label.Columns, sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Label.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, label.FieldID)
		for _, f := range fields {
			if !label.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != label.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssignedSpecialist(); ok {
		_spec.SetField(label.FieldAssignedSpecialist, field.TypeString, value)
	}
	if _u.mutation.AssignedSpecialistCleared() {
		_spec.ClearField(label.FieldAssignedSpecialist, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(label.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(label.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectionDeadline(); ok {
		_spec.SetField(label.FieldCorrectionDeadline, field.TypeTime, value)
	}
	if _u.mutation.CorrectionDeadlineCleared() {
		_spec.ClearField(label.FieldCorrectionDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.DeadlineExpired(); ok {
		_spec.SetField(label.FieldDeadlineExpired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(label.FieldBrandName, field.TypeString, value)
	}
	if _u.mutation.BrandNameCleared() {
		_spec.ClearField(label.FieldBrandName, field.TypeString)
	}
	if value, ok := _u.mutation.BeverageType(); ok {
		_spec.SetField(label.FieldBeverageType, field.TypeString, value)
	}
	if _u.mutation.BeverageTypeCleared() {
		_spec.ClearField(label.FieldBeverageType, field.TypeString)
	}
	if value, ok := _u.mutation.AlcoholContent(); ok {
		_spec.SetField(label.FieldAlcoholContent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAlcoholContent(); ok {
		_spec.AddField(label.FieldAlcoholContent, field.TypeFloat64, value)
	}
	if _u.mutation.AlcoholContentCleared() {
		_spec.ClearField(label.FieldAlcoholContent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(label.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(label.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(label.FieldOverallConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(label.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, label.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(label.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(label.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(label.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(label.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(label.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   label.ApplicantTable,
			Columns: []string{label.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   label.ApplicantTable,
			Columns: []string{label.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   label.BatchTable,
			Columns: []string{label.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   label.BatchTable,
			Columns: []string{label.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Label{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{label.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
