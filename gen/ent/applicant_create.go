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

// ApplicantCreate is the builder for creating a Applicant entity.
type ApplicantCreate struct {
	config
	mutation *ApplicantMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ApplicantCreate) SetName(v string) *ApplicantCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ApplicantCreate) SetEmail(v string) *ApplicantCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetCompany sets the "company" field.
func (_c *ApplicantCreate) SetCompany(v string) *ApplicantCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ApplicantCreate) SetNillableCompany(v *string) *ApplicantCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicantCreate) SetCreatedAt(v time.Time) *ApplicantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicantCreate) SetNillableCreatedAt(v *time.Time) *ApplicantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicantCreate) SetUpdatedAt(v time.Time) *ApplicantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicantCreate) SetNillableUpdatedAt(v *time.Time) *ApplicantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicantCreate) SetID(v uuid.UUID) *ApplicantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ApplicantCreate) SetNillableID(v *uuid.UUID) *ApplicantCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddLabelIDs adds the "labels" edge to the Label entity by IDs.
func (_c *ApplicantCreate) AddLabelIDs(ids ...uuid.UUID) *ApplicantCreate {
	_c.mutation.AddLabelIDs(ids...)
	return _c
}

// AddLabels adds the "labels" edges to the Label entity.
func (_c *ApplicantCreate) AddLabels(v ...*Label) *ApplicantCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLabelIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_c *ApplicantCreate) AddBatchIDs(ids ...uuid.UUID) *ApplicantCreate {
	_c.mutation.AddBatchIDs(ids...)
	return _c
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_c *ApplicantCreate) AddBatches(v ...*Batch) *ApplicantCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBatchIDs(ids...)
}

// Mutation returns the ApplicantMutation object of the builder.
func (_c *ApplicantCreate) Mutation() *ApplicantMutation {
	return _c.mutation
}

// Save creates the Applicant in the database.
func (_c *ApplicantCreate) Save(ctx context.Context) (*Applicant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicantCreate) SaveX(ctx context.Context) *Applicant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := applicant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := applicant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := applicant.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicantCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Applicant.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := applicant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Applicant.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Applicant.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := applicant.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Applicant.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Applicant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Applicant.updated_at"`)}
	}
	return nil
}

func (_c *ApplicantCreate) sqlSave(ctx context.Context) (*Applicant, error) {
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

func (_c *ApplicantCreate) createSpec() (*Applicant, *sqlgraph.CreateSpec) {
	var (
		_node = &Applicant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(applicant.Table, sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(applicant.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(applicant.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(applicant.FieldCompany, field.TypeString, value)
		_node.Company = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(applicant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(applicant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LabelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.LabelsTable,
			Columns: []string{applicant.LabelsColumn},
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
	if nodes := _c.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.BatchesTable,
			Columns: []string{applicant.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicantCreateBulk is the builder for creating many Applicant entities in bulk.
type ApplicantCreateBulk struct {
	config
	err      error
	builders []*ApplicantCreate
}

// Save creates the Applicant entities in the database.
func (_c *ApplicantCreateBulk) Save(ctx context.Context) ([]*Applicant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Applicant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicantMutation)
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
func (_c *ApplicantCreateBulk) SaveX(ctx context.Context) []*Applicant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
