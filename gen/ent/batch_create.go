// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/gen/ent/applicant"
	"github.com/ttbcheck/labelverify/gen/ent/batch"
	"github.com/ttbcheck/labelverify/gen/ent/label"
)

// BatchCreate is the builder for creating a Batch entity.
type BatchCreate struct {
	config
	mutation *BatchMutation
	hooks    []Hook
}

// SetApplicantID sets the "applicant_id" field.
func (_c *BatchCreate) SetApplicantID(v uuid.UUID) *BatchCreate {
	_c.mutation.SetApplicantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BatchCreate) SetName(v string) *BatchCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchCreate) SetStatus(v string) *BatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BatchCreate) SetNillableStatus(v *string) *BatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalLabels sets the "total_labels" field.
func (_c *BatchCreate) SetTotalLabels(v int) *BatchCreate {
	_c.mutation.SetTotalLabels(v)
	return _c
}

// SetProcessedCount sets the "processed_count" field.
func (_c *BatchCreate) SetProcessedCount(v int) *BatchCreate {
	_c.mutation.SetProcessedCount(v)
	return _c
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_c *BatchCreate) SetNillableProcessedCount(v *int) *BatchCreate {
	if v != nil {
		_c.SetProcessedCount(*v)
	}
	return _c
}

// SetApprovedCount sets the "approved_count" field.
func (_c *BatchCreate) SetApprovedCount(v int) *BatchCreate {
	_c.mutation.SetApprovedCount(v)
	return _c
}

// SetNillableApprovedCount sets the "approved_count" field if the given value is not nil.
func (_c *BatchCreate) SetNillableApprovedCount(v *int) *BatchCreate {
	if v != nil {
		_c.SetApprovedCount(*v)
	}
	return _c
}

// SetConditionallyApprovedCount sets the "conditionally_approved_count" field.
func (_c *BatchCreate) SetConditionallyApprovedCount(v int) *BatchCreate {
	_c.mutation.SetConditionallyApprovedCount(v)
	return _c
}

// SetNillableConditionallyApprovedCount sets the "conditionally_approved_count" field if the given value is not nil.
func (_c *BatchCreate) SetNillableConditionallyApprovedCount(v *int) *BatchCreate {
	if v != nil {
		_c.SetConditionallyApprovedCount(*v)
	}
	return _c
}

// SetRejectedCount sets the "rejected_count" field.
func (_c *BatchCreate) SetRejectedCount(v int) *BatchCreate {
	_c.mutation.SetRejectedCount(v)
	return _c
}

// SetNillableRejectedCount sets the "rejected_count" field if the given value is not nil.
func (_c *BatchCreate) SetNillableRejectedCount(v *int) *BatchCreate {
	if v != nil {
		_c.SetRejectedCount(*v)
	}
	return _c
}

// SetNeedsCorrectionCount sets the "needs_correction_count" field.
func (_c *BatchCreate) SetNeedsCorrectionCount(v int) *BatchCreate {
	_c.mutation.SetNeedsCorrectionCount(v)
	return _c
}

// SetNillableNeedsCorrectionCount sets the "needs_correction_count" field if the given value is not nil.
func (_c *BatchCreate) SetNillableNeedsCorrectionCount(v *int) *BatchCreate {
	if v != nil {
		_c.SetNeedsCorrectionCount(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BatchCreate) SetErrorMessage(v string) *BatchCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BatchCreate) SetNillableErrorMessage(v *string) *BatchCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchCreate) SetCreatedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCreatedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BatchCreate) SetUpdatedAt(v time.Time) *BatchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableUpdatedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchCreate) SetID(v uuid.UUID) *BatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchCreate) SetNillableID(v *uuid.UUID) *BatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_c *BatchCreate) SetApplicant(v *Applicant) *BatchCreate {
	return _c.SetApplicantID(v.ID)
}

// AddLabelIDs adds the "labels" edge to the Label entity by IDs.
func (_c *BatchCreate) AddLabelIDs(ids ...uuid.UUID) *BatchCreate {
	_c.mutation.AddLabelIDs(ids...)
	return _c
}

// AddLabels adds the "labels" edges to the Label entity.
func (_c *BatchCreate) AddLabels(v ...*Label) *BatchCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLabelIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_c *BatchCreate) Mutation() *BatchMutation {
	return _c.mutation
}

// Save creates the Batch in the database.
func (_c *BatchCreate) Save(ctx context.Context) (*Batch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchCreate) SaveX(ctx context.Context) *Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := batch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProcessedCount(); !ok {
		v := batch.DefaultProcessedCount
		_c.mutation.SetProcessedCount(v)
	}
	if _, ok := _c.mutation.ApprovedCount(); !ok {
		v := batch.DefaultApprovedCount
		_c.mutation.SetApprovedCount(v)
	}
	if _, ok := _c.mutation.ConditionallyApprovedCount(); !ok {
		v := batch.DefaultConditionallyApprovedCount
		_c.mutation.SetConditionallyApprovedCount(v)
	}
	if _, ok := _c.mutation.RejectedCount(); !ok {
		v := batch.DefaultRejectedCount
		_c.mutation.SetRejectedCount(v)
	}
	if _, ok := _c.mutation.NeedsCorrectionCount(); !ok {
		v := batch.DefaultNeedsCorrectionCount
		_c.mutation.SetNeedsCorrectionCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := batch.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := batch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchCreate) check() error {
	if _, ok := _c.mutation.ApplicantID(); !ok {
		return &ValidationError{Name: "applicant_id", err: errors.New(`ent: missing required field "Batch.applicant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Batch.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := batch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Batch.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Batch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalLabels(); !ok {
		return &ValidationError{Name: "total_labels", err: errors.New(`ent: missing required field "Batch.total_labels"`)}
	}
	if v, ok := _c.mutation.TotalLabels(); ok {
		if err := batch.TotalLabelsValidator(v); err != nil {
			return &ValidationError{Name: "total_labels", err: fmt.Errorf(`ent: validator failed for field "Batch.total_labels": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedCount(); !ok {
		return &ValidationError{Name: "processed_count", err: errors.New(`ent: missing required field "Batch.processed_count"`)}
	}
	if v, ok := _c.mutation.ProcessedCount(); ok {
		if err := batch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.processed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedCount(); !ok {
		return &ValidationError{Name: "approved_count", err: errors.New(`ent: missing required field "Batch.approved_count"`)}
	}
	if v, ok := _c.mutation.ApprovedCount(); ok {
		if err := batch.ApprovedCountValidator(v); err != nil {
			return &ValidationError{Name: "approved_count", err: fmt.Errorf(`ent: validator failed for field "Batch.approved_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConditionallyApprovedCount(); !ok {
		return &ValidationError{Name: "conditionally_approved_count", err: errors.New(`ent: missing required field "Batch.conditionally_approved_count"`)}
	}
	if v, ok := _c.mutation.ConditionallyApprovedCount(); ok {
		if err := batch.ConditionallyApprovedCountValidator(v); err != nil {
			return &ValidationError{Name: "conditionally_approved_count", err: fmt.Errorf(`ent: validator failed for field "Batch.conditionally_approved_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RejectedCount(); !ok {
		return &ValidationError{Name: "rejected_count", err: errors.New(`ent: missing required field "Batch.rejected_count"`)}
	}
	if v, ok := _c.mutation.RejectedCount(); ok {
		if err := batch.RejectedCountValidator(v); err != nil {
			return &ValidationError{Name: "rejected_count", err: fmt.Errorf(`ent: validator failed for field "Batch.rejected_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsCorrectionCount(); !ok {
		return &ValidationError{Name: "needs_correction_count", err: errors.New(`ent: missing required field "Batch.needs_correction_count"`)}
	}
	if v, ok := _c.mutation.NeedsCorrectionCount(); ok {
		if err := batch.NeedsCorrectionCountValidator(v); err != nil {
			return &ValidationError{Name: "needs_correction_count", err: fmt.Errorf(`ent: validator failed for field "Batch.needs_correction_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Batch.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Batch.updated_at"`)}
	}
	if len(_c.mutation.ApplicantIDs()) == 0 {
		return &ValidationError{Name: "applicant", err: errors.New(`ent: missing required edge "Batch.applicant"`)}
	}
	return nil
}

func (_c *BatchCreate) sqlSave(ctx context.Context) (*Batch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchCreate) createSpec() (*Batch, *sqlgraph.CreateSpec) {
	var (
		_node = &Batch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batch.Table, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalLabels(); ok {
		_spec.SetField(batch.FieldTotalLabels, field.TypeInt, value)
		_node.TotalLabels = value
	}
	if value, ok := _c.mutation.ProcessedCount(); ok {
		_spec.SetField(batch.FieldProcessedCount, field.TypeInt, value)
		_node.ProcessedCount = value
	}
	if value, ok := _c.mutation.ApprovedCount(); ok {
		_spec.SetField(batch.FieldApprovedCount, field.TypeInt, value)
		_node.ApprovedCount = value
	}
	if value, ok := _c.mutation.ConditionallyApprovedCount(); ok {
		_spec.SetField(batch.FieldConditionallyApprovedCount, field.TypeInt, value)
		_node.ConditionallyApprovedCount = value
	}
	if value, ok := _c.mutation.RejectedCount(); ok {
		_spec.SetField(batch.FieldRejectedCount, field.TypeInt, value)
		_node.RejectedCount = value
	}
	if value, ok := _c.mutation.NeedsCorrectionCount(); ok {
		_spec.SetField(batch.FieldNeedsCorrectionCount, field.TypeInt, value)
		_node.NeedsCorrectionCount = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicantIDs(); len(nodes) > 0 {
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
		_node.ApplicantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LabelsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchCreateBulk is the builder for creating many Batch entities in bulk.
type BatchCreateBulk struct {
	config
	err      error
	builders []*BatchCreate
}

// Save creates the Batch entities in the database.
func (_c *BatchCreateBulk) Save(ctx context.Context) ([]*Batch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Batch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BatchCreateBulk) SaveX(ctx context.Context) []*Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
