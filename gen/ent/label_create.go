// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// LabelCreate is the builder for creating a Label entity.
type LabelCreate struct {
	config
	mutation *LabelMutation
	hooks    []Hook
}

// SetApplicantID sets the "applicant_id" field.
func (_c *LabelCreate) SetApplicantID(v uuid.UUID) *LabelCreate {
	_c.mutation.SetApplicantID(v)
	return _c
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_c *LabelCreate) SetNillableApplicantID(v *uuid.UUID) *LabelCreate {
	if v != nil {
		_c.SetApplicantID(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *LabelCreate) SetBatchID(v uuid.UUID) *LabelCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *LabelCreate) SetNillableBatchID(v *uuid.UUID) *LabelCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetAssignedSpecialist sets the "assigned_specialist" field.
func (_c *LabelCreate) SetAssignedSpecialist(v string) *LabelCreate {
	_c.mutation.SetAssignedSpecialist(v)
	return _c
}

// SetNillableAssignedSpecialist sets the "assigned_specialist" field if the given value is not nil.
func (_c *LabelCreate) SetNillableAssignedSpecialist(v *string) *LabelCreate {
	if v != nil {
		_c.SetAssignedSpecialist(*v)
	}
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *LabelCreate) SetImagePath(v string) *LabelCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LabelCreate) SetStatus(v string) *LabelCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LabelCreate) SetNillableStatus(v *string) *LabelCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCorrectionDeadline sets the "correction_deadline" field.
func (_c *LabelCreate) SetCorrectionDeadline(v time.Time) *LabelCreate {
	_c.mutation.SetCorrectionDeadline(v)
	return _c
}

// SetNillableCorrectionDeadline sets the "correction_deadline" field if the given value is not nil.
func (_c *LabelCreate) SetNillableCorrectionDeadline(v *time.Time) *LabelCreate {
	if v != nil {
		_c.SetCorrectionDeadline(*v)
	}
	return _c
}

// SetDeadlineExpired sets the "deadline_expired" field.
func (_c *LabelCreate) SetDeadlineExpired(v bool) *LabelCreate {
	_c.mutation.SetDeadlineExpired(v)
	return _c
}

// SetNillableDeadlineExpired sets the "deadline_expired" field if the given value is not nil.
func (_c *LabelCreate) SetNillableDeadlineExpired(v *bool) *LabelCreate {
	if v != nil {
		_c.SetDeadlineExpired(*v)
	}
	return _c
}

// SetBrandName sets the "brand_name" field.
func (_c *LabelCreate) SetBrandName(v string) *LabelCreate {
	_c.mutation.SetBrandName(v)
	return _c
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_c *LabelCreate) SetNillableBrandName(v *string) *LabelCreate {
	if v != nil {
		_c.SetBrandName(*v)
	}
	return _c
}

// SetBeverageType sets the "beverage_type" field.
func (_c *LabelCreate) SetBeverageType(v string) *LabelCreate {
	_c.mutation.SetBeverageType(v)
	return _c
}

// SetNillableBeverageType sets the "beverage_type" field if the given value is not nil.
func (_c *LabelCreate) SetNillableBeverageType(v *string) *LabelCreate {
	if v != nil {
		_c.SetBeverageType(*v)
	}
	return _c
}

// SetAlcoholContent sets the "alcohol_content" field.
func (_c *LabelCreate) SetAlcoholContent(v float64) *LabelCreate {
	_c.mutation.SetAlcoholContent(v)
	return _c
}

// SetNillableAlcoholContent sets the "alcohol_content" field if the given value is not nil.
func (_c *LabelCreate) SetNillableAlcoholContent(v *float64) *LabelCreate {
	if v != nil {
		_c.SetAlcoholContent(*v)
	}
	return _c
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_c *LabelCreate) SetOverallConfidence(v float32) *LabelCreate {
	_c.mutation.SetOverallConfidence(v)
	return _c
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_c *LabelCreate) SetNillableOverallConfidence(v *float32) *LabelCreate {
	if v != nil {
		_c.SetOverallConfidence(*v)
	}
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *LabelCreate) SetExtractedJSON(v json.RawMessage) *LabelCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LabelCreate) SetErrorMessage(v string) *LabelCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LabelCreate) SetNillableErrorMessage(v *string) *LabelCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabelCreate) SetCreatedAt(v time.Time) *LabelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabelCreate) SetNillableCreatedAt(v *time.Time) *LabelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LabelCreate) SetUpdatedAt(v time.Time) *LabelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LabelCreate) SetNillableUpdatedAt(v *time.Time) *LabelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabelCreate) SetID(v uuid.UUID) *LabelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabelCreate) SetNillableID(v *uuid.UUID) *LabelCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_c *LabelCreate) SetApplicant(v *Applicant) *LabelCreate {
	return _c.SetApplicantID(v.ID)
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_c *LabelCreate) SetBatch(v *Batch) *LabelCreate {
	return _c.SetBatchID(v.ID)
}

// Mutation returns the LabelMutation object of the builder.
func (_c *LabelCreate) Mutation() *LabelMutation {
	return _c.mutation
}

// Save creates the Label in the database.
func (_c *LabelCreate) Save(ctx context.Context) (*Label, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabelCreate) SaveX(ctx context.Context) *Label {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabelCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := label.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DeadlineExpired(); !ok {
		v := label.DefaultDeadlineExpired
		_c.mutation.SetDeadlineExpired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := label.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := label.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := label.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabelCreate) check() error {
	if _, ok := _c.mutation.ImagePath(); !ok {
		return &ValidationError{Name: "image_path", err: errors.New(`ent: missing required field "Label.image_path"`)}
	}
	if v, ok := _c.mutation.ImagePath(); ok {
		if err := label.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "Label.image_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Label.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := label.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Label.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeadlineExpired(); !ok {
		return &ValidationError{Name: "deadline_expired", err: errors.New(`ent: missing required field "Label.deadline_expired"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Label.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Label.updated_at"`)}
	}
	return nil
}

func (_c *LabelCreate) sqlSave(ctx context.Context) (*Label, error) {
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

func (_c *LabelCreate) createSpec() (*Label, *sqlgraph.CreateSpec) {
	var (
		_node = &Label{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(label.Table, sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.AssignedSpecialist(); ok {
		_spec.SetField(label.FieldAssignedSpecialist, field.TypeString, value)
		_node.AssignedSpecialist = &value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(label.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(label.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CorrectionDeadline(); ok {
		_spec.SetField(label.FieldCorrectionDeadline, field.TypeTime, value)
		_node.CorrectionDeadline = &value
	}
	if value, ok := _c.mutation.DeadlineExpired(); ok {
		_spec.SetField(label.FieldDeadlineExpired, field.TypeBool, value)
		_node.DeadlineExpired = value
	}
	if value, ok := _c.mutation.BrandName(); ok {
		_spec.SetField(label.FieldBrandName, field.TypeString, value)
		_node.BrandName = &value
	}
	if value, ok := _c.mutation.BeverageType(); ok {
		_spec.SetField(label.FieldBeverageType, field.TypeString, value)
		_node.BeverageType = &value
	}
	if value, ok := _c.mutation.AlcoholContent(); ok {
		_spec.SetField(label.FieldAlcoholContent, field.TypeFloat64, value)
		_node.AlcoholContent = &value
	}
	if value, ok := _c.mutation.OverallConfidence(); ok {
		_spec.SetField(label.FieldOverallConfidence, field.TypeFloat32, value)
		_node.OverallConfidence = &value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(label.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(label.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(label.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(label.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicantIDs(); len(nodes) > 0 {
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
		_node.ApplicantID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
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
		_node.BatchID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LabelCreateBulk is the builder for creating many Label entities in bulk.
type LabelCreateBulk struct {
	config
	err      error
	builders []*LabelCreate
}

// Save creates the Label entities in the database.
func (_c *LabelCreateBulk) Save(ctx context.Context) ([]*Label, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Label, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabelMutation)
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
func (_c *LabelCreateBulk) SaveX(ctx context.Context) []*Label {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
