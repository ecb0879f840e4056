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

// ApplicantUpdate is the builder for updating Applicant entities.
type ApplicantUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicantMutation
}

// Where appends a list predicates to the ApplicantUpdate builder.
func (_u *ApplicantUpdate) Where(ps ...predicate.Applicant) *ApplicantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ApplicantUpdate) SetName(v string) *ApplicantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApplicantUpdate) SetNillableName(v *string) *ApplicantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ApplicantUpdate) SetEmail(v string) *ApplicantUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ApplicantUpdate) SetNillableEmail(v *string) *ApplicantUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *ApplicantUpdate) SetCompany(v string) *ApplicantUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ApplicantUpdate) SetNillableCompany(v *string) *ApplicantUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ApplicantUpdate) ClearCompany() *ApplicantUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicantUpdate) SetCreatedAt(v time.Time) *ApplicantUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicantUpdate) SetNillableCreatedAt(v *time.Time) *ApplicantUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicantUpdate) SetUpdatedAt(v time.Time) *ApplicantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLabelIDs adds the "labels" edge to the Label entity by IDs.
func (_u *ApplicantUpdate) AddLabelIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.AddLabelIDs(ids...)
	return _u
}

// AddLabels adds the "labels" edges to the Label entity.
func (_u *ApplicantUpdate) AddLabels(v ...*Label) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLabelIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_u *ApplicantUpdate) AddBatchIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_u *ApplicantUpdate) AddBatches(v ...*Batch) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the ApplicantMutation object of the builder.
func (_u *ApplicantUpdate) Mutation() *ApplicantMutation {
	return _u.mutation
}

// ClearLabels clears all "labels" edges to the Label entity.
func (_u *ApplicantUpdate) ClearLabels() *ApplicantUpdate {
	_u.mutation.ClearLabels()
	return _u
}

// RemoveLabelIDs removes the "labels" edge to Label entities by IDs.
func (_u *ApplicantUpdate) RemoveLabelIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.RemoveLabelIDs(ids...)
	return _u
}

// RemoveLabels removes "labels" edges to Label entities.
func (_u *ApplicantUpdate) RemoveLabels(v ...*Label) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLabelIDs(ids...)
}

// ClearBatches clears all "batches" edges to the Batch entity.
func (_u *ApplicantUpdate) ClearBatches() *ApplicantUpdate {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to Batch entities by IDs.
func (_u *ApplicantUpdate) RemoveBatchIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to Batch entities.
func (_u *ApplicantUpdate) RemoveBatches(v ...*Batch) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicantUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := applicant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Applicant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := applicant.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Applicant.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicant.Table, applicant.Columns, sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(applicant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(applicant.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(applicant.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(applicant.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(applicant.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LabelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLabelsIDs(); len(nodes) > 0 && !_u.mutation.LabelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicantUpdateOne is the builder for updating a single Applicant entity.
type ApplicantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicantMutation
}

// SetName sets the "name" field.
func (_u *ApplicantUpdateOne) SetName(v string) *ApplicantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApplicantUpdateOne) SetNillableName(v *string) *ApplicantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ApplicantUpdateOne) SetEmail(v string) *ApplicantUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ApplicantUpdateOne) SetNillableEmail(v *string) *ApplicantUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *ApplicantUpdateOne) SetCompany(v string) *ApplicantUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ApplicantUpdateOne) SetNillableCompany(v *string) *ApplicantUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ApplicantUpdateOne) ClearCompany() *ApplicantUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicantUpdateOne) SetCreatedAt(v time.Time) *ApplicantUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicantUpdateOne) SetNillableCreatedAt(v *time.Time) *ApplicantUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicantUpdateOne) SetUpdatedAt(v time.Time) *ApplicantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLabelIDs adds the "labels" edge to the Label entity by IDs.
func (_u *ApplicantUpdateOne) AddLabelIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.AddLabelIDs(ids...)
	return _u
}

// AddLabels adds the "labels" edges to the Label entity.
func (_u *ApplicantUpdateOne) AddLabels(v ...*Label) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLabelIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_u *ApplicantUpdateOne) AddBatchIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_u *ApplicantUpdateOne) AddBatches(v ...*Batch) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the ApplicantMutation object of the builder.
func (_u *ApplicantUpdateOne) Mutation() *ApplicantMutation {
	return _u.mutation
}

// ClearLabels clears all "labels" edges to the Label entity.
func (_u *ApplicantUpdateOne) ClearLabels() *ApplicantUpdateOne {
	_u.mutation.ClearLabels()
	return _u
}

// RemoveLabelIDs removes the "labels" edge to Label entities by IDs.
func (_u *ApplicantUpdateOne) RemoveLabelIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.RemoveLabelIDs(ids...)
	return _u
}

// RemoveLabels removes "labels" edges to Label entities.
func (_u *ApplicantUpdateOne) RemoveLabels(v ...*Label) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLabelIDs(ids...)
}

// ClearBatches clears all "batches" edges to the Batch entity.
func (_u *ApplicantUpdateOne) ClearBatches() *ApplicantUpdateOne {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to Batch entities by IDs.
func (_u *ApplicantUpdateOne) RemoveBatchIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to Batch entities.
func (_u *ApplicantUpdateOne) RemoveBatches(v ...*Batch) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Where appends a list predicates to the ApplicantUpdate builder.
func (_u *ApplicantUpdateOne) Where(ps ...predicate.Applicant) *ApplicantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicantUpdateOne) Select(field string, fields ...string) *ApplicantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Applicant entity.
func (_u *ApplicantUpdateOne) Save(ctx context.Context) (*Applicant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicantUpdateOne) SaveX(ctx context.Context) *Applicant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicantUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := applicant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Applicant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := applicant.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Applicant.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicantUpdateOne) sqlSave(ctx context.Context) (_node *Applicant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicant.Table, applicant.Columns, sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Applicant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicant.FieldID)
		for _, f := range fields {
			if !applicant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicant.FieldID {
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
		_spec.SetField(applicant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(applicant.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(applicant.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(applicant.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(applicant.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LabelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLabelsIDs(); len(nodes) > 0 && !_u.mutation.LabelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Applicant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
