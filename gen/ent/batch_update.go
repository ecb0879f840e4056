// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/gen/ent/applicant"
	"github.com/ttbcheck/labelverify/gen/ent/batch"
	"github.com/ttbcheck/labelverify/gen/ent/label"
	"github.com/ttbcheck/labelverify/gen/ent/predicate"
)

// BatchUpdate is the builder for updating Batch entities.
type BatchUpdate struct {
	config
	hooks    []Hook
	mutation *BatchMutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdate) Where(ps ...predicate.Batch) *BatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicantID sets the "applicant_id" field.
func (_u *BatchUpdate) SetApplicantID(v uuid.UUID) *BatchUpdate {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableApplicantID(v *uuid.UUID) *BatchUpdate {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BatchUpdate) SetName(v string) *BatchUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableName(v *string) *BatchUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdate) SetStatus(v string) *BatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableStatus(v *string) *BatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalLabels sets the "total_labels" field.
func (_u *BatchUpdate) SetTotalLabels(v int) *BatchUpdate {
	_u.mutation.ResetTotalLabels()
	_u.mutation.SetTotalLabels(v)
	return _u
}

// SetNillableTotalLabels sets the "total_labels" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTotalLabels(v *int) *BatchUpdate {
	if v != nil {
		_u.SetTotalLabels(*v)
	}
	return _u
}

// AddTotalLabels adds value to the "total_labels" field.
func (_u *BatchUpdate) AddTotalLabels(v int) *BatchUpdate {
	_u.mutation.AddTotalLabels(v)
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *BatchUpdate) SetProcessedCount(v int) *BatchUpdate {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableProcessedCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *BatchUpdate) AddProcessedCount(v int) *BatchUpdate {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// SetApprovedCount sets the "approved_count" field.
func (_u *BatchUpdate) SetApprovedCount(v int) *BatchUpdate {
	_u.mutation.ResetApprovedCount()
	_u.mutation.SetApprovedCount(v)
	return _u
}

// SetNillableApprovedCount sets the "approved_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableApprovedCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetApprovedCount(*v)
	}
	return _u
}

// AddApprovedCount adds value to the "approved_count" field.
func (_u *BatchUpdate) AddApprovedCount(v int) *BatchUpdate {
	_u.mutation.AddApprovedCount(v)
	return _u
}

// SetConditionallyApprovedCount sets the "conditionally_approved_count" field.
func (_u *BatchUpdate) SetConditionallyApprovedCount(v int) *BatchUpdate {
	_u.mutation.ResetConditionallyApprovedCount()
	_u.mutation.SetConditionallyApprovedCount(v)
	return _u
}

// SetNillableConditionallyApprovedCount sets the "conditionally_approved_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableConditionallyApprovedCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetConditionallyApprovedCount(*v)
	}
	return _u
}

// AddConditionallyApprovedCount adds value to the "conditionally_approved_count" field.
func (_u *BatchUpdate) AddConditionallyApprovedCount(v int) *BatchUpdate {
	_u.mutation.AddConditionallyApprovedCount(v)
	return _u
}

// SetRejectedCount sets the "rejected_count" field.
func (_u *BatchUpdate) SetRejectedCount(v int) *BatchUpdate {
	_u.mutation.ResetRejectedCount()
	_u.mutation.SetRejectedCount(v)
	return _u
}

// SetNillableRejectedCount sets the "rejected_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableRejectedCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetRejectedCount(*v)
	}
	return _u
}

// AddRejectedCount adds value to the "rejected_count" field.
func (_u *BatchUpdate) AddRejectedCount(v int) *BatchUpdate {
	_u.mutation.AddRejectedCount(v)
	return _u
}

// SetNeedsCorrectionCount sets the "needs_correction_count" field.
func (_u *BatchUpdate) SetNeedsCorrectionCount(v int) *BatchUpdate {
	_u.mutation.ResetNeedsCorrectionCount()
	_u.mutation.SetNeedsCorrectionCount(v)
	return _u
}

// SetNillableNeedsCorrectionCount sets the "needs_correction_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableNeedsCorrectionCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetNeedsCorrectionCount(*v)
	}
	return _u
}

// AddNeedsCorrectionCount adds value to the "needs_correction_count" field.
func (_u *BatchUpdate) AddNeedsCorrectionCount(v int) *BatchUpdate {
	_u.mutation.AddNeedsCorrectionCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchUpdate) SetErrorMessage(v string) *BatchUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableErrorMessage(v *string) *BatchUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchUpdate) ClearErrorMessage() *BatchUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BatchUpdate) SetCreatedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCreatedAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchUpdate) SetUpdatedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *BatchUpdate) SetApplicant(v *Applicant) *BatchUpdate {
	return _u.SetApplicantID(v.ID)
}

// AddLabelIDs adds the "labels" edge to the Label entity by IDs.
func (_u *BatchUpdate) AddLabelIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.AddLabelIDs(ids...)
	return _u
}

// AddLabels adds the "labels" edges to the Label entity.
func (_u *BatchUpdate) AddLabels(v ...*Label) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLabelIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdate) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *BatchUpdate) ClearApplicant() *BatchUpdate {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearLabels clears all "labels" edges to the Label entity.
func (_u *BatchUpdate) ClearLabels() *BatchUpdate {
	_u.mutation.ClearLabels()
	return _u
}

// RemoveLabelIDs removes the "labels" edge to Label entities by IDs.
func (_u *BatchUpdate) RemoveLabelIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.RemoveLabelIDs(ids...)
	return _u
}

// RemoveLabels removes "labels" edges to Label entities.
func (_u *BatchUpdate) RemoveLabels(v ...*Label) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLabelIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := batch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Batch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLabels(); ok {
		if err := batch.TotalLabelsValidator(v); err != nil {
			return &ValidationError{Name: "total_labels", err: fmt.Errorf(`ent: validator failed for field "Batch.total_labels": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := batch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.processed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovedCount(); ok {
		if err := batch.ApprovedCountValidator(v); err != nil {
			return &ValidationError{Name: "approved_count", err: fmt.Errorf(`ent: validator failed for field "Batch.approved_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConditionallyApprovedCount(); ok {
		if err := batch.ConditionallyApprovedCountValidator(v); err != nil {
			return &ValidationError{Name: "conditionally_approved_count", err: fmt.Errorf(`ent: validator failed for field "Batch.conditionally_approved_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RejectedCount(); ok {
		if err := batch.RejectedCountValidator(v); err != nil {
			return &ValidationError{Name: "rejected_count", err: fmt.Errorf(`ent: validator failed for field "Batch.rejected_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NeedsCorrectionCount(); ok {
		if err := batch.NeedsCorrectionCountValidator(v); err != nil {
			return &ValidationError{Name: "needs_correction_count", err: fmt.Errorf(`ent: validator failed for field "Batch.needs_correction_count": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Batch.applicant"`)
	}
	return nil
}

func (_u *BatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalLabels(); ok {
		_spec.SetField(batch.FieldTotalLabels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLabels(); ok {
		_spec.AddField(batch.FieldTotalLabels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(batch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(batch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApprovedCount(); ok {
		_spec.SetField(batch.FieldApprovedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovedCount(); ok {
		_spec.AddField(batch.FieldApprovedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConditionallyApprovedCount(); ok {
		_spec.SetField(batch.FieldConditionallyApprovedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConditionallyApprovedCount(); ok {
		_spec.AddField(batch.FieldConditionallyApprovedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectedCount(); ok {
		_spec.SetField(batch.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectedCount(); ok {
		_spec.AddField(batch.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsCorrectionCount(); ok {
		_spec.SetField(batch.FieldNeedsCorrectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNeedsCorrectionCount(); ok {
		_spec.AddField(batch.FieldNeedsCorrectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batch.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batch.ApplicantTable,
			Columns: []string{batch.ApplicantColumn},
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
			Table:   batch.ApplicantTable,
			Columns: []string{batch.ApplicantColumn},
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
	if _u.mutation.LabelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.LabelsTable,
			Columns: []string{batch.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLabelsIDs(); len(nodes) > 0 && !_u.mutation.LabelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.LabelsTable,
			Columns: []string{batch.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.LabelsTable,
			Columns: []string{batch.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchUpdateOne is the builder for updating a single Batch entity.
type BatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchMutation
}

// SetApplicantID sets the "applicant_id" field.
func (_u *BatchUpdateOne) SetApplicantID(v uuid.UUID) *BatchUpdateOne {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableApplicantID(v *uuid.UUID) *BatchUpdateOne {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BatchUpdateOne) SetName(v string) *BatchUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableName(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdateOne) SetStatus(v string) *BatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableStatus(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalLabels sets the "total_labels" field.
func (_u *BatchUpdateOne) SetTotalLabels(v int) *BatchUpdateOne {
	_u.mutation.ResetTotalLabels()
	_u.mutation.SetTotalLabels(v)
	return _u
}

// SetNillableTotalLabels sets the "total_labels" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTotalLabels(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetTotalLabels(*v)
	}
	return _u
}

// AddTotalLabels adds value to the "total_labels" field.
func (_u *BatchUpdateOne) AddTotalLabels(v int) *BatchUpdateOne {
	_u.mutation.AddTotalLabels(v)
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *BatchUpdateOne) SetProcessedCount(v int) *BatchUpdateOne {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableProcessedCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *BatchUpdateOne) AddProcessedCount(v int) *BatchUpdateOne {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// SetApprovedCount sets the "approved_count" field.
func (_u *BatchUpdateOne) SetApprovedCount(v int) *BatchUpdateOne {
	_u.mutation.ResetApprovedCount()
	_u.mutation.SetApprovedCount(v)
	return _u
}

// SetNillableApprovedCount sets the "approved_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableApprovedCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetApprovedCount(*v)
	}
	return _u
}

// AddApprovedCount adds value to the "approved_count" field.
func (_u *BatchUpdateOne) AddApprovedCount(v int) *BatchUpdateOne {
	_u.mutation.AddApprovedCount(v)
	return _u
}

// SetConditionallyApprovedCount sets the "conditionally_approved_count" field.
func (_u *BatchUpdateOne) SetConditionallyApprovedCount(v int) *BatchUpdateOne {
	_u.mutation.ResetConditionallyApprovedCount()
	_u.mutation.SetConditionallyApprovedCount(v)
	return _u
}

// SetNillableConditionallyApprovedCount sets the "conditionally_approved_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableConditionallyApprovedCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetConditionallyApprovedCount(*v)
	}
	return _u
}

// AddConditionallyApprovedCount adds value to the "conditionally_approved_count" field.
func (_u *BatchUpdateOne) AddConditionallyApprovedCount(v int) *BatchUpdateOne {
	_u.mutation.AddConditionallyApprovedCount(v)
	return _u
}

// SetRejectedCount sets the "rejected_count" field.
func (_u *BatchUpdateOne) SetRejectedCount(v int) *BatchUpdateOne {
	_u.mutation.ResetRejectedCount()
	_u.mutation.SetRejectedCount(v)
	return _u
}

// SetNillableRejectedCount sets the "rejected_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableRejectedCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetRejectedCount(*v)
	}
	return _u
}

// AddRejectedCount adds value to the "rejected_count" field.
func (_u *BatchUpdateOne) AddRejectedCount(v int) *BatchUpdateOne {
	_u.mutation.AddRejectedCount(v)
	return _u
}

// SetNeedsCorrectionCount sets the "needs_correction_count" field.
func (_u *BatchUpdateOne) SetNeedsCorrectionCount(v int) *BatchUpdateOne {
	_u.mutation.ResetNeedsCorrectionCount()
	_u.mutation.SetNeedsCorrectionCount(v)
	return _u
}

// SetNillableNeedsCorrectionCount sets the "needs_correction_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableNeedsCorrectionCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetNeedsCorrectionCount(*v)
	}
	return _u
}

// AddNeedsCorrectionCount adds value to the "needs_correction_count" field.
func (_u *BatchUpdateOne) AddNeedsCorrectionCount(v int) *BatchUpdateOne {
	_u.mutation.AddNeedsCorrectionCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchUpdateOne) SetErrorMessage(v string) *BatchUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableErrorMessage(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchUpdateOne) ClearErrorMessage() *BatchUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BatchUpdateOne) SetCreatedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCreatedAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchUpdateOne) SetUpdatedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *BatchUpdateOne) SetApplicant(v *Applicant) *BatchUpdateOne {
	return _u.SetApplicantID(v.ID)
}

// AddLabelIDs adds the "labels" edge to the Label entity by IDs.
func (_u *BatchUpdateOne) AddLabelIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.AddLabelIDs(ids...)
	return _u
}

// AddLabels adds the "labels" edges to the Label entity.
func (_u *BatchUpdateOne) AddLabels(v ...*Label) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLabelIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdateOne) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *BatchUpdateOne) ClearApplicant() *BatchUpdateOne {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearLabels clears all "labels" edges to the Label entity.
func (_u *BatchUpdateOne) ClearLabels() *BatchUpdateOne {
	_u.mutation.ClearLabels()
	return _u
}

// RemoveLabelIDs removes the "labels" edge to Label entities by IDs.
func (_u *BatchUpdateOne) RemoveLabelIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.RemoveLabelIDs(ids...)
	return _u
}

// RemoveLabels removes "labels" edges to Label entities.
func (_u *BatchUpdateOne) RemoveLabels(v ...*Label) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLabelIDs(ids...)
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdateOne) Where(ps ...predicate.Batch) *BatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchUpdateOne) Select(field string, fields ...string) *BatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Batch entity.
func (_u *BatchUpdateOne) Save(ctx context.Context) (*Batch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdateOne) SaveX(ctx context.Context) *Batch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := batch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Batch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLabels(); ok {
		if err := batch.TotalLabelsValidator(v); err != nil {
			return &ValidationError{Name: "total_labels", err: fmt.Errorf(`ent: validator failed for field "Batch.total_labels": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := batch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.processed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovedCount(); ok {
		if err := batch.ApprovedCountValidator(v); err != nil {
			return &ValidationError{Name: "approved_count", err: fmt.Errorf(`ent: validator failed for field "Batch.approved_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConditionallyApprovedCount(); ok {
		if err := batch.ConditionallyApprovedCountValidator(v); err != nil {
			return &ValidationError{Name: "conditionally_approved_count", err: fmt.Errorf(`ent: validator failed for field "Batch.conditionally_approved_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RejectedCount(); ok {
		if err := batch.RejectedCountValidator(v); err != nil {
			return &ValidationError{Name: "rejected_count", err: fmt.Errorf(`ent: validator failed for field "Batch.rejected_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NeedsCorrectionCount(); ok {
		if err := batch.NeedsCorrectionCountValidator(v); err != nil {
			return &ValidationError{Name: "needs_correction_count", err: fmt.Errorf(`ent: validator failed for field "Batch.needs_correction_count": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Batch.applicant"`)
	}
	return nil
}

func (_u *BatchUpdateOne) sqlSave(ctx context.Context) (_node *Batch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Batch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batch.FieldID)
		for _, f := range fields {
			if !batch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batch.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalLabels(); ok {
		_spec.SetField(batch.FieldTotalLabels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLabels(); ok {
		_spec.AddField(batch.FieldTotalLabels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(batch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(batch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApprovedCount(); ok {
		_spec.SetField(batch.FieldApprovedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovedCount(); ok {
		_spec.AddField(batch.FieldApprovedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConditionallyApprovedCount(); ok {
		_spec.SetField(batch.FieldConditionallyApprovedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConditionallyApprovedCount(); ok {
		_spec.AddField(batch.FieldConditionallyApprovedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectedCount(); ok {
		_spec.SetField(batch.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectedCount(); ok {
		_spec.AddField(batch.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsCorrectionCount(); ok {
		_spec.SetField(batch.FieldNeedsCorrectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNeedsCorrectionCount(); ok {
		_spec.AddField(batch.FieldNeedsCorrectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batch.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batch.ApplicantTable,
			Columns: []string{batch.ApplicantColumn},
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
			Table:   batch.ApplicantTable,
			Columns: []string{batch.ApplicantColumn},
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
	if _u.mutation.LabelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.LabelsTable,
			Columns: []string{batch.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLabelsIDs(); len(nodes) > 0 && !_u.mutation.LabelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.LabelsTable,
			Columns: []string{batch.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.LabelsTable,
			Columns: []string{batch.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Batch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
