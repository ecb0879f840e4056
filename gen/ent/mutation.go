// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/gen/ent/applicant"
	"github.com/ttbcheck/labelverify/gen/ent/batch"
	"github.com/ttbcheck/labelverify/gen/ent/label"
	"github.com/ttbcheck/labelverify/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplicant = "Applicant"
	TypeBatch     = "Batch"
	TypeLabel     = "Label"
)

// ApplicantMutation represents an operation that mutates the Applicant nodes in the graph.
type ApplicantMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	email          *string
	company        *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	labels         map[uuid.UUID]struct{}
	removedlabels  map[uuid.UUID]struct{}
	clearedlabels  bool
	batches        map[uuid.UUID]struct{}
	removedbatches map[uuid.UUID]struct{}
	clearedbatches bool
	done           bool
	oldValue       func(context.Context) (*Applicant, error)
	predicates     []predicate.Applicant
}

var _ ent.Mutation = (*ApplicantMutation)(nil)

// applicantOption allows management of the mutation configuration using functional options.
type applicantOption func(*ApplicantMutation)

// newApplicantMutation creates new mutation for the Applicant entity.
func newApplicantMutation(c config, op Op, opts ...applicantOption) *ApplicantMutation {
	m := &ApplicantMutation{
		config:        c,
		op:            op,
		typ:           TypeApplicant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicantID sets the ID field of the mutation.
func withApplicantID(id uuid.UUID) applicantOption {
	return func(m *ApplicantMutation) {
		var (
			err   error
			once  sync.Once
			value *Applicant
		)
		m.oldValue = func(ctx context.Context) (*Applicant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Applicant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplicant sets the old Applicant of the mutation.
func withApplicant(node *Applicant) applicantOption {
	return func(m *ApplicantMutation) {
		m.oldValue = func(context.Context) (*Applicant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Applicant entities.
func (m *ApplicantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Applicant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ApplicantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ApplicantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ApplicantMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *ApplicantMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ApplicantMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ApplicantMutation) ResetEmail() {
	m.email = nil
}

// SetCompany sets the "company" field.
func (m *ApplicantMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *ApplicantMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldCompany(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *ApplicantMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[applicant.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *ApplicantMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[applicant.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *ApplicantMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, applicant.FieldCompany)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddLabelIDs adds the "labels" edge to the Label entity by ids.
func (m *ApplicantMutation) AddLabelIDs(ids ...uuid.UUID) {
	if m.labels == nil {
		m.labels = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.labels[ids[i]] = struct{}{}
	}
}

// ClearLabels clears the "labels" edge to the Label entity.
func (m *ApplicantMutation) ClearLabels() {
	m.clearedlabels = true
}

// LabelsCleared reports if the "labels" edge to the Label entity was cleared.
func (m *ApplicantMutation) LabelsCleared() bool {
	return m.clearedlabels
}

// RemoveLabelIDs removes the "labels" edge to the Label entity by IDs.
func (m *ApplicantMutation) RemoveLabelIDs(ids ...uuid.UUID) {
	if m.removedlabels == nil {
		m.removedlabels = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.labels, ids[i])
		m.removedlabels[ids[i]] = struct{}{}
	}
}

// RemovedLabels returns the removed IDs of the "labels" edge to the Label entity.
func (m *ApplicantMutation) RemovedLabelsIDs() (ids []uuid.UUID) {
	for id := range m.removedlabels {
		ids = append(ids, id)
	}
	return
}

// LabelsIDs returns the "labels" edge IDs in the mutation.
func (m *ApplicantMutation) LabelsIDs() (ids []uuid.UUID) {
	for id := range m.labels {
		ids = append(ids, id)
	}
	return
}

// ResetLabels resets all changes to the "labels" edge.
func (m *ApplicantMutation) ResetLabels() {
	m.labels = nil
	m.clearedlabels = false
	m.removedlabels = nil
}

// AddBatchIDs adds the "batches" edge to the Batch entity by ids.
func (m *ApplicantMutation) AddBatchIDs(ids ...uuid.UUID) {
	if m.batches == nil {
		m.batches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.batches[ids[i]] = struct{}{}
	}
}

// ClearBatches clears the "batches" edge to the Batch entity.
func (m *ApplicantMutation) ClearBatches() {
	m.clearedbatches = true
}

// BatchesCleared reports if the "batches" edge to the Batch entity was cleared.
func (m *ApplicantMutation) BatchesCleared() bool {
	return m.clearedbatches
}

// RemoveBatchIDs removes the "batches" edge to the Batch entity by IDs.
func (m *ApplicantMutation) RemoveBatchIDs(ids ...uuid.UUID) {
	if m.removedbatches == nil {
		m.removedbatches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.batches, ids[i])
		m.removedbatches[ids[i]] = struct{}{}
	}
}

// RemovedBatches returns the removed IDs of the "batches" edge to the Batch entity.
func (m *ApplicantMutation) RemovedBatchesIDs() (ids []uuid.UUID) {
	for id := range m.removedbatches {
		ids = append(ids, id)
	}
	return
}

// BatchesIDs returns the "batches" edge IDs in the mutation.
func (m *ApplicantMutation) BatchesIDs() (ids []uuid.UUID) {
	for id := range m.batches {
		ids = append(ids, id)
	}
	return
}

// ResetBatches resets all changes to the "batches" edge.
func (m *ApplicantMutation) ResetBatches() {
	m.batches = nil
	m.clearedbatches = false
	m.removedbatches = nil
}

// Where appends a list predicates to the ApplicantMutation builder.
func (m *ApplicantMutation) Where(ps ...predicate.Applicant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Applicant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Applicant).
func (m *ApplicantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicantMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, applicant.FieldName)
	}
	if m.email != nil {
		fields = append(fields, applicant.FieldEmail)
	}
	if m.company != nil {
		fields = append(fields, applicant.FieldCompany)
	}
	if m.created_at != nil {
		fields = append(fields, applicant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, applicant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case applicant.FieldName:
		return m.Name()
	case applicant.FieldEmail:
		return m.Email()
	case applicant.FieldCompany:
		return m.Company()
	case applicant.FieldCreatedAt:
		return m.CreatedAt()
	case applicant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case applicant.FieldName:
		return m.OldName(ctx)
	case applicant.FieldEmail:
		return m.OldEmail(ctx)
	case applicant.FieldCompany:
		return m.OldCompany(ctx)
	case applicant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case applicant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Applicant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case applicant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case applicant.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case applicant.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case applicant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case applicant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Applicant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Applicant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(applicant.FieldCompany) {
		fields = append(fields, applicant.FieldCompany)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicantMutation) ClearField(name string) error {
	switch name {
	case applicant.FieldCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Applicant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicantMutation) ResetField(name string) error {
	switch name {
	case applicant.FieldName:
		m.ResetName()
		return nil
	case applicant.FieldEmail:
		m.ResetEmail()
		return nil
	case applicant.FieldCompany:
		m.ResetCompany()
		return nil
	case applicant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case applicant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Applicant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicantMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.labels != nil {
		edges = append(edges, applicant.EdgeLabels)
	}
	if m.batches != nil {
		edges = append(edges, applicant.EdgeBatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case applicant.EdgeLabels:
		ids := make([]ent.Value, 0, len(m.labels))
		for id := range m.labels {
			ids = append(ids, id)
		}
		return ids
	case applicant.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.batches))
		for id := range m.batches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlabels != nil {
		edges = append(edges, applicant.EdgeLabels)
	}
	if m.removedbatches != nil {
		edges = append(edges, applicant.EdgeBatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case applicant.EdgeLabels:
		ids := make([]ent.Value, 0, len(m.removedlabels))
		for id := range m.removedlabels {
			ids = append(ids, id)
		}
		return ids
	case applicant.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.removedbatches))
		for id := range m.removedbatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlabels {
		edges = append(edges, applicant.EdgeLabels)
	}
	if m.clearedbatches {
		edges = append(edges, applicant.EdgeBatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicantMutation) EdgeCleared(name string) bool {
	switch name {
	case applicant.EdgeLabels:
		return m.clearedlabels
	case applicant.EdgeBatches:
		return m.clearedbatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Applicant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicantMutation) ResetEdge(name string) error {
	switch name {
	case applicant.EdgeLabels:
		m.ResetLabels()
		return nil
	case applicant.EdgeBatches:
		m.ResetBatches()
		return nil
	}
	return fmt.Errorf("unknown Applicant edge %s", name)
}

// BatchMutation represents an operation that mutates the Batch nodes in the graph.
type BatchMutation struct {
	config
	op                              Op
	typ                             string
	id                              *uuid.UUID
	name                            *string
	status                          *string
	total_labels                    *int
	addtotal_labels                 *int
	processed_count                 *int
	addprocessed_count              *int
	approved_count                  *int
	addapproved_count               *int
	conditionally_approved_count    *int
	addconditionally_approved_count *int
	rejected_count                  *int
	addrejected_count               *int
	needs_correction_count          *int
	addneeds_correction_count       *int
	error_message                   *string
	created_at                      *time.Time
	updated_at                      *time.Time
	clearedFields                   map[string]struct{}
	applicant                       *uuid.UUID
	clearedapplicant                bool
	labels                          map[uuid.UUID]struct{}
	removedlabels                   map[uuid.UUID]struct{}
	clearedlabels                   bool
	done                            bool
	oldValue                        func(context.Context) (*Batch, error)
	predicates                      []predicate.Batch
}

var _ ent.Mutation = (*BatchMutation)(nil)

// batchOption allows management of the mutation configuration using functional options.
type batchOption func(*BatchMutation)

// newBatchMutation creates new mutation for the Batch entity.
func newBatchMutation(c config, op Op, opts ...batchOption) *BatchMutation {
	m := &BatchMutation{
		config:        c,
		op:            op,
		typ:           TypeBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchID sets the ID field of the mutation.
func withBatchID(id uuid.UUID) batchOption {
	return func(m *BatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Batch
		)
		m.oldValue = func(ctx context.Context) (*Batch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Batch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatch sets the old Batch of the mutation.
func withBatch(node *Batch) batchOption {
	return func(m *BatchMutation) {
		m.oldValue = func(context.Context) (*Batch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Batch entities.
func (m *BatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Batch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicantID sets the "applicant_id" field.
func (m *BatchMutation) SetApplicantID(u uuid.UUID) {
	m.applicant = &u
}

// ApplicantID returns the value of the "applicant_id" field in the mutation.
func (m *BatchMutation) ApplicantID() (r uuid.UUID, exists bool) {
	v := m.applicant
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicantID returns the old "applicant_id" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldApplicantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicantID: %w", err)
	}
	return oldValue.ApplicantID, nil
}

// ResetApplicantID resets all changes to the "applicant_id" field.
func (m *BatchMutation) ResetApplicantID() {
	m.applicant = nil
}

// SetName sets the "name" field.
func (m *BatchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BatchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BatchMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *BatchMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchMutation) ResetStatus() {
	m.status = nil
}

// SetTotalLabels sets the "total_labels" field.
func (m *BatchMutation) SetTotalLabels(i int) {
	m.total_labels = &i
	m.addtotal_labels = nil
}

// TotalLabels returns the value of the "total_labels" field in the mutation.
func (m *BatchMutation) TotalLabels() (r int, exists bool) {
	v := m.total_labels
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLabels returns the old "total_labels" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotalLabels(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLabels: %w", err)
	}
	return oldValue.TotalLabels, nil
}

// AddTotalLabels adds i to the "total_labels" field.
func (m *BatchMutation) AddTotalLabels(i int) {
	if m.addtotal_labels != nil {
		*m.addtotal_labels += i
	} else {
		m.addtotal_labels = &i
	}
}

// AddedTotalLabels returns the value that was added to the "total_labels" field in this mutation.
func (m *BatchMutation) AddedTotalLabels() (r int, exists bool) {
	v := m.addtotal_labels
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLabels resets all changes to the "total_labels" field.
func (m *BatchMutation) ResetTotalLabels() {
	m.total_labels = nil
	m.addtotal_labels = nil
}

// SetProcessedCount sets the "processed_count" field.
func (m *BatchMutation) SetProcessedCount(i int) {
	m.processed_count = &i
	m.addprocessed_count = nil
}

// ProcessedCount returns the value of the "processed_count" field in the mutation.
func (m *BatchMutation) ProcessedCount() (r int, exists bool) {
	v := m.processed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedCount returns the old "processed_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldProcessedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedCount: %w", err)
	}
	return oldValue.ProcessedCount, nil
}

// AddProcessedCount adds i to the "processed_count" field.
func (m *BatchMutation) AddProcessedCount(i int) {
	if m.addprocessed_count != nil {
		*m.addprocessed_count += i
	} else {
		m.addprocessed_count = &i
	}
}

// AddedProcessedCount returns the value that was added to the "processed_count" field in this mutation.
func (m *BatchMutation) AddedProcessedCount() (r int, exists bool) {
	v := m.addprocessed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedCount resets all changes to the "processed_count" field.
func (m *BatchMutation) ResetProcessedCount() {
	m.processed_count = nil
	m.addprocessed_count = nil
}

// SetApprovedCount sets the "approved_count" field.
func (m *BatchMutation) SetApprovedCount(i int) {
	m.approved_count = &i
	m.addapproved_count = nil
}

// ApprovedCount returns the value of the "approved_count" field in the mutation.
func (m *BatchMutation) ApprovedCount() (r int, exists bool) {
	v := m.approved_count
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedCount returns the old "approved_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldApprovedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedCount: %w", err)
	}
	return oldValue.ApprovedCount, nil
}

// AddApprovedCount adds i to the "approved_count" field.
func (m *BatchMutation) AddApprovedCount(i int) {
	if m.addapproved_count != nil {
		*m.addapproved_count += i
	} else {
		m.addapproved_count = &i
	}
}

// AddedApprovedCount returns the value that was added to the "approved_count" field in this mutation.
func (m *BatchMutation) AddedApprovedCount() (r int, exists bool) {
	v := m.addapproved_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetApprovedCount resets all changes to the "approved_count" field.
func (m *BatchMutation) ResetApprovedCount() {
	m.approved_count = nil
	m.addapproved_count = nil
}

// SetConditionallyApprovedCount sets the "conditionally_approved_count" field.
func (m *BatchMutation) SetConditionallyApprovedCount(i int) {
	m.conditionally_approved_count = &i
	m.addconditionally_approved_count = nil
}

// ConditionallyApprovedCount returns the value of the "conditionally_approved_count" field in the mutation.
func (m *BatchMutation) ConditionallyApprovedCount() (r int, exists bool) {
	v := m.conditionally_approved_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionallyApprovedCount returns the old "conditionally_approved_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldConditionallyApprovedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionallyApprovedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionallyApprovedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionallyApprovedCount: %w", err)
	}
	return oldValue.ConditionallyApprovedCount, nil
}

// AddConditionallyApprovedCount adds i to the "conditionally_approved_count" field.
func (m *BatchMutation) AddConditionallyApprovedCount(i int) {
	if m.addconditionally_approved_count != nil {
		*m.addconditionally_approved_count += i
	} else {
		m.addconditionally_approved_count = &i
	}
}

// AddedConditionallyApprovedCount returns the value that was added to the "conditionally_approved_count" field in this mutation.
func (m *BatchMutation) AddedConditionallyApprovedCount() (r int, exists bool) {
	v := m.addconditionally_approved_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConditionallyApprovedCount resets all changes to the "conditionally_approved_count" field.
func (m *BatchMutation) ResetConditionallyApprovedCount() {
	m.conditionally_approved_count = nil
	m.addconditionally_approved_count = nil
}

// SetRejectedCount sets the "rejected_count" field.
func (m *BatchMutation) SetRejectedCount(i int) {
	m.rejected_count = &i
	m.addrejected_count = nil
}

// RejectedCount returns the value of the "rejected_count" field in the mutation.
func (m *BatchMutation) RejectedCount() (r int, exists bool) {
	v := m.rejected_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectedCount returns the old "rejected_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldRejectedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectedCount: %w", err)
	}
	return oldValue.RejectedCount, nil
}

// AddRejectedCount adds i to the "rejected_count" field.
func (m *BatchMutation) AddRejectedCount(i int) {
	if m.addrejected_count != nil {
		*m.addrejected_count += i
	} else {
		m.addrejected_count = &i
	}
}

// AddedRejectedCount returns the value that was added to the "rejected_count" field in this mutation.
func (m *BatchMutation) AddedRejectedCount() (r int, exists bool) {
	v := m.addrejected_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejectedCount resets all changes to the "rejected_count" field.
func (m *BatchMutation) ResetRejectedCount() {
	m.rejected_count = nil
	m.addrejected_count = nil
}

// SetNeedsCorrectionCount sets the "needs_correction_count" field.
func (m *BatchMutation) SetNeedsCorrectionCount(i int) {
	m.needs_correction_count = &i
	m.addneeds_correction_count = nil
}

// NeedsCorrectionCount returns the value of the "needs_correction_count" field in the mutation.
func (m *BatchMutation) NeedsCorrectionCount() (r int, exists bool) {
	v := m.needs_correction_count
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsCorrectionCount returns the old "needs_correction_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldNeedsCorrectionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsCorrectionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsCorrectionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsCorrectionCount: %w", err)
	}
	return oldValue.NeedsCorrectionCount, nil
}

// AddNeedsCorrectionCount adds i to the "needs_correction_count" field.
func (m *BatchMutation) AddNeedsCorrectionCount(i int) {
	if m.addneeds_correction_count != nil {
		*m.addneeds_correction_count += i
	} else {
		m.addneeds_correction_count = &i
	}
}

// AddedNeedsCorrectionCount returns the value that was added to the "needs_correction_count" field in this mutation.
func (m *BatchMutation) AddedNeedsCorrectionCount() (r int, exists bool) {
	v := m.addneeds_correction_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetNeedsCorrectionCount resets all changes to the "needs_correction_count" field.
func (m *BatchMutation) ResetNeedsCorrectionCount() {
	m.needs_correction_count = nil
	m.addneeds_correction_count = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *BatchMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BatchMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BatchMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[batch.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BatchMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[batch.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BatchMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, batch.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (m *BatchMutation) ClearApplicant() {
	m.clearedapplicant = true
	m.clearedFields[batch.FieldApplicantID] = struct{}{}
}

// ApplicantCleared reports if the "applicant" edge to the Applicant entity was cleared.
func (m *BatchMutation) ApplicantCleared() bool {
	return m.clearedapplicant
}

// ApplicantIDs returns the "applicant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicantID instead. It exists only for internal usage by the builders.
func (m *BatchMutation) ApplicantIDs() (ids []uuid.UUID) {
	if id := m.applicant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplicant resets all changes to the "applicant" edge.
func (m *BatchMutation) ResetApplicant() {
	m.applicant = nil
	m.clearedapplicant = false
}

// AddLabelIDs adds the "labels" edge to the Label entity by ids.
func (m *BatchMutation) AddLabelIDs(ids ...uuid.UUID) {
	if m.labels == nil {
		m.labels = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.labels[ids[i]] = struct{}{}
	}
}

// ClearLabels clears the "labels" edge to the Label entity.
func (m *BatchMutation) ClearLabels() {
	m.clearedlabels = true
}

// LabelsCleared reports if the "labels" edge to the Label entity was cleared.
func (m *BatchMutation) LabelsCleared() bool {
	return m.clearedlabels
}

// RemoveLabelIDs removes the "labels" edge to the Label entity by IDs.
func (m *BatchMutation) RemoveLabelIDs(ids ...uuid.UUID) {
	if m.removedlabels == nil {
		m.removedlabels = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.labels, ids[i])
		m.removedlabels[ids[i]] = struct{}{}
	}
}

// RemovedLabels returns the removed IDs of the "labels" edge to the Label entity.
func (m *BatchMutation) RemovedLabelsIDs() (ids []uuid.UUID) {
	for id := range m.removedlabels {
		ids = append(ids, id)
	}
	return
}

// LabelsIDs returns the "labels" edge IDs in the mutation.
func (m *BatchMutation) LabelsIDs() (ids []uuid.UUID) {
	for id := range m.labels {
		ids = append(ids, id)
	}
	return
}

// ResetLabels resets all changes to the "labels" edge.
func (m *BatchMutation) ResetLabels() {
	m.labels = nil
	m.clearedlabels = false
	m.removedlabels = nil
}

// Where appends a list predicates to the BatchMutation builder.
func (m *BatchMutation) Where(ps ...predicate.Batch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Batch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Batch).
func (m *BatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.applicant != nil {
		fields = append(fields, batch.FieldApplicantID)
	}
	if m.name != nil {
		fields = append(fields, batch.FieldName)
	}
	if m.status != nil {
		fields = append(fields, batch.FieldStatus)
	}
	if m.total_labels != nil {
		fields = append(fields, batch.FieldTotalLabels)
	}
	if m.processed_count != nil {
		fields = append(fields, batch.FieldProcessedCount)
	}
	if m.approved_count != nil {
		fields = append(fields, batch.FieldApprovedCount)
	}
	if m.conditionally_approved_count != nil {
		fields = append(fields, batch.FieldConditionallyApprovedCount)
	}
	if m.rejected_count != nil {
		fields = append(fields, batch.FieldRejectedCount)
	}
	if m.needs_correction_count != nil {
		fields = append(fields, batch.FieldNeedsCorrectionCount)
	}
	if m.error_message != nil {
		fields = append(fields, batch.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, batch.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, batch.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldApplicantID:
		return m.ApplicantID()
	case batch.FieldName:
		return m.Name()
	case batch.FieldStatus:
		return m.Status()
	case batch.FieldTotalLabels:
		return m.TotalLabels()
	case batch.FieldProcessedCount:
		return m.ProcessedCount()
	case batch.FieldApprovedCount:
		return m.ApprovedCount()
	case batch.FieldConditionallyApprovedCount:
		return m.ConditionallyApprovedCount()
	case batch.FieldRejectedCount:
		return m.RejectedCount()
	case batch.FieldNeedsCorrectionCount:
		return m.NeedsCorrectionCount()
	case batch.FieldErrorMessage:
		return m.ErrorMessage()
	case batch.FieldCreatedAt:
		return m.CreatedAt()
	case batch.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batch.FieldApplicantID:
		return m.OldApplicantID(ctx)
	case batch.FieldName:
		return m.OldName(ctx)
	case batch.FieldStatus:
		return m.OldStatus(ctx)
	case batch.FieldTotalLabels:
		return m.OldTotalLabels(ctx)
	case batch.FieldProcessedCount:
		return m.OldProcessedCount(ctx)
	case batch.FieldApprovedCount:
		return m.OldApprovedCount(ctx)
	case batch.FieldConditionallyApprovedCount:
		return m.OldConditionallyApprovedCount(ctx)
	case batch.FieldRejectedCount:
		return m.OldRejectedCount(ctx)
	case batch.FieldNeedsCorrectionCount:
		return m.OldNeedsCorrectionCount(ctx)
	case batch.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case batch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case batch.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Batch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batch.FieldApplicantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicantID(v)
		return nil
	case batch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case batch.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batch.FieldTotalLabels:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLabels(v)
		return nil
	case batch.FieldProcessedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedCount(v)
		return nil
	case batch.FieldApprovedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedCount(v)
		return nil
	case batch.FieldConditionallyApprovedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionallyApprovedCount(v)
		return nil
	case batch.FieldRejectedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectedCount(v)
		return nil
	case batch.FieldNeedsCorrectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsCorrectionCount(v)
		return nil
	case batch.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case batch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case batch.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_labels != nil {
		fields = append(fields, batch.FieldTotalLabels)
	}
	if m.addprocessed_count != nil {
		fields = append(fields, batch.FieldProcessedCount)
	}
	if m.addapproved_count != nil {
		fields = append(fields, batch.FieldApprovedCount)
	}
	if m.addconditionally_approved_count != nil {
		fields = append(fields, batch.FieldConditionallyApprovedCount)
	}
	if m.addrejected_count != nil {
		fields = append(fields, batch.FieldRejectedCount)
	}
	if m.addneeds_correction_count != nil {
		fields = append(fields, batch.FieldNeedsCorrectionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldTotalLabels:
		return m.AddedTotalLabels()
	case batch.FieldProcessedCount:
		return m.AddedProcessedCount()
	case batch.FieldApprovedCount:
		return m.AddedApprovedCount()
	case batch.FieldConditionallyApprovedCount:
		return m.AddedConditionallyApprovedCount()
	case batch.FieldRejectedCount:
		return m.AddedRejectedCount()
	case batch.FieldNeedsCorrectionCount:
		return m.AddedNeedsCorrectionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batch.FieldTotalLabels:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLabels(v)
		return nil
	case batch.FieldProcessedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedCount(v)
		return nil
	case batch.FieldApprovedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddApprovedCount(v)
		return nil
	case batch.FieldConditionallyApprovedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConditionallyApprovedCount(v)
		return nil
	case batch.FieldRejectedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejectedCount(v)
		return nil
	case batch.FieldNeedsCorrectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNeedsCorrectionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Batch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batch.FieldErrorMessage) {
		fields = append(fields, batch.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchMutation) ClearField(name string) error {
	switch name {
	case batch.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Batch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchMutation) ResetField(name string) error {
	switch name {
	case batch.FieldApplicantID:
		m.ResetApplicantID()
		return nil
	case batch.FieldName:
		m.ResetName()
		return nil
	case batch.FieldStatus:
		m.ResetStatus()
		return nil
	case batch.FieldTotalLabels:
		m.ResetTotalLabels()
		return nil
	case batch.FieldProcessedCount:
		m.ResetProcessedCount()
		return nil
	case batch.FieldApprovedCount:
		m.ResetApprovedCount()
		return nil
	case batch.FieldConditionallyApprovedCount:
		m.ResetConditionallyApprovedCount()
		return nil
	case batch.FieldRejectedCount:
		m.ResetRejectedCount()
		return nil
	case batch.FieldNeedsCorrectionCount:
		m.ResetNeedsCorrectionCount()
		return nil
	case batch.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case batch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case batch.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.applicant != nil {
		edges = append(edges, batch.EdgeApplicant)
	}
	if m.labels != nil {
		edges = append(edges, batch.EdgeLabels)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeApplicant:
		if id := m.applicant; id != nil {
			return []ent.Value{*id}
		}
	case batch.EdgeLabels:
		ids := make([]ent.Value, 0, len(m.labels))
		for id := range m.labels {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlabels != nil {
		edges = append(edges, batch.EdgeLabels)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeLabels:
		ids := make([]ent.Value, 0, len(m.removedlabels))
		for id := range m.removedlabels {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapplicant {
		edges = append(edges, batch.EdgeApplicant)
	}
	if m.clearedlabels {
		edges = append(edges, batch.EdgeLabels)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchMutation) EdgeCleared(name string) bool {
	switch name {
	case batch.EdgeApplicant:
		return m.clearedapplicant
	case batch.EdgeLabels:
		return m.clearedlabels
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchMutation) ClearEdge(name string) error {
	switch name {
	case batch.EdgeApplicant:
		m.ClearApplicant()
		return nil
	}
	return fmt.Errorf("unknown Batch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchMutation) ResetEdge(name string) error {
	switch name {
	case batch.EdgeApplicant:
		m.ResetApplicant()
		return nil
	case batch.EdgeLabels:
		m.ResetLabels()
		return nil
	}
	return fmt.Errorf("unknown Batch edge %s", name)
}

// LabelMutation represents an operation that mutates the Label nodes in the graph.
type LabelMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	assigned_specialist   *string
	image_path            *string
	status                *string
	correction_deadline   *time.Time
	deadline_expired      *bool
	brand_name            *string
	beverage_type         *string
	alcohol_content       *float64
	addalcohol_content    *float64
	overall_confidence    *float32
	addoverall_confidence *float32
	extracted_json        *json.RawMessage
	appendextracted_json  json.RawMessage
	error_message         *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	applicant             *uuid.UUID
	clearedapplicant      bool
	batch                 *uuid.UUID
	clearedbatch          bool
	done                  bool
	oldValue              func(context.Context) (*Label, error)
	predicates            []predicate.Label
}

var _ ent.Mutation = (*LabelMutation)(nil)

// labelOption allows management of the mutation configuration using functional options.
type labelOption func(*LabelMutation)

// newLabelMutation creates new mutation for the Label entity.
func newLabelMutation(c config, op Op, opts ...labelOption) *LabelMutation {
	m := &LabelMutation{
		config:        c,
		op:            op,
		typ:           TypeLabel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabelID sets the ID field of the mutation.
func withLabelID(id uuid.UUID) labelOption {
	return func(m *LabelMutation) {
		var (
			err   error
			once  sync.Once
			value *Label
		)
		m.oldValue = func(ctx context.Context) (*Label, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Label.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabel sets the old Label of the mutation.
func withLabel(node *Label) labelOption {
	return func(m *LabelMutation) {
		m.oldValue = func(context.Context) (*Label, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Label entities.
func (m *LabelMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabelMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabelMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Label.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicantID sets the "applicant_id" field.
func (m *LabelMutation) SetApplicantID(u uuid.UUID) {
	m.applicant = &u
}

// ApplicantID returns the value of the "applicant_id" field in the mutation.
func (m *LabelMutation) ApplicantID() (r uuid.UUID, exists bool) {
	v := m.applicant
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicantID returns the old "applicant_id" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldApplicantID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicantID: %w", err)
	}
	return oldValue.ApplicantID, nil
}

// ClearApplicantID clears the value of the "applicant_id" field.
func (m *LabelMutation) ClearApplicantID() {
	m.applicant = nil
	m.clearedFields[label.FieldApplicantID] = struct{}{}
}

// ApplicantIDCleared returns if the "applicant_id" field was cleared in this mutation.
func (m *LabelMutation) ApplicantIDCleared() bool {
	_, ok := m.clearedFields[label.FieldApplicantID]
	return ok
}

// ResetApplicantID resets all changes to the "applicant_id" field.
func (m *LabelMutation) ResetApplicantID() {
	m.applicant = nil
	delete(m.clearedFields, label.FieldApplicantID)
}

// SetBatchID sets the "batch_id" field.
func (m *LabelMutation) SetBatchID(u uuid.UUID) {
	m.batch = &u
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *LabelMutation) BatchID() (r uuid.UUID, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldBatchID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ClearBatchID clears the value of the "batch_id" field.
func (m *LabelMutation) ClearBatchID() {
	m.batch = nil
	m.clearedFields[label.FieldBatchID] = struct{}{}
}

// BatchIDCleared returns if the "batch_id" field was cleared in this mutation.
func (m *LabelMutation) BatchIDCleared() bool {
	_, ok := m.clearedFields[label.FieldBatchID]
	return ok
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *LabelMutation) ResetBatchID() {
	m.batch = nil
	delete(m.clearedFields, label.FieldBatchID)
}

// SetAssignedSpecialist sets the "assigned_specialist" field.
func (m *LabelMutation) SetAssignedSpecialist(s string) {
	m.assigned_specialist = &s
}

// AssignedSpecialist returns the value of the "assigned_specialist" field in the mutation.
func (m *LabelMutation) AssignedSpecialist() (r string, exists bool) {
	v := m.assigned_specialist
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedSpecialist returns the old "assigned_specialist" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldAssignedSpecialist(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedSpecialist is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedSpecialist requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedSpecialist: %w", err)
	}
	return oldValue.AssignedSpecialist, nil
}

// ClearAssignedSpecialist clears the value of the "assigned_specialist" field.
func (m *LabelMutation) ClearAssignedSpecialist() {
	m.assigned_specialist = nil
	m.clearedFields[label.FieldAssignedSpecialist] = struct{}{}
}

// AssignedSpecialistCleared returns if the "assigned_specialist" field was cleared in this mutation.
func (m *LabelMutation) AssignedSpecialistCleared() bool {
	_, ok := m.clearedFields[label.FieldAssignedSpecialist]
	return ok
}

// ResetAssignedSpecialist resets all changes to the "assigned_specialist" field.
func (m *LabelMutation) ResetAssignedSpecialist() {
	m.assigned_specialist = nil
	delete(m.clearedFields, label.FieldAssignedSpecialist)
}

// SetImagePath sets the "image_path" field.
func (m *LabelMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *LabelMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *LabelMutation) ResetImagePath() {
	m.image_path = nil
}

// SetStatus sets the "status" field.
func (m *LabelMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LabelMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LabelMutation) ResetStatus() {
	m.status = nil
}

// SetCorrectionDeadline sets the "correction_deadline" field.
func (m *LabelMutation) SetCorrectionDeadline(t time.Time) {
	m.correction_deadline = &t
}

// CorrectionDeadline returns the value of the "correction_deadline" field in the mutation.
func (m *LabelMutation) CorrectionDeadline() (r time.Time, exists bool) {
	v := m.correction_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectionDeadline returns the old "correction_deadline" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldCorrectionDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectionDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectionDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectionDeadline: %w", err)
	}
	return oldValue.CorrectionDeadline, nil
}

// ClearCorrectionDeadline clears the value of the "correction_deadline" field.
func (m *LabelMutation) ClearCorrectionDeadline() {
	m.correction_deadline = nil
	m.clearedFields[label.FieldCorrectionDeadline] = struct{}{}
}

// CorrectionDeadlineCleared returns if the "correction_deadline" field was cleared in this mutation.
func (m *LabelMutation) CorrectionDeadlineCleared() bool {
	_, ok := m.clearedFields[label.FieldCorrectionDeadline]
	return ok
}

// ResetCorrectionDeadline resets all changes to the "correction_deadline" field.
func (m *LabelMutation) ResetCorrectionDeadline() {
	m.correction_deadline = nil
	delete(m.clearedFields, label.FieldCorrectionDeadline)
}

// SetDeadlineExpired sets the "deadline_expired" field.
func (m *LabelMutation) SetDeadlineExpired(b bool) {
	m.deadline_expired = &b
}

// DeadlineExpired returns the value of the "deadline_expired" field in the mutation.
func (m *LabelMutation) DeadlineExpired() (r bool, exists bool) {
	v := m.deadline_expired
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadlineExpired returns the old "deadline_expired" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldDeadlineExpired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadlineExpired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadlineExpired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadlineExpired: %w", err)
	}
	return oldValue.DeadlineExpired, nil
}

// ResetDeadlineExpired resets all changes to the "deadline_expired" field.
func (m *LabelMutation) ResetDeadlineExpired() {
	m.deadline_expired = nil
}

// SetBrandName sets the "brand_name" field.
func (m *LabelMutation) SetBrandName(s string) {
	m.brand_name = &s
}

// BrandName returns the value of the "brand_name" field in the mutation.
func (m *LabelMutation) BrandName() (r string, exists bool) {
	v := m.brand_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandName returns the old "brand_name" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldBrandName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandName: %w", err)
	}
	return oldValue.BrandName, nil
}

// ClearBrandName clears the value of the "brand_name" field.
func (m *LabelMutation) ClearBrandName() {
	m.brand_name = nil
	m.clearedFields[label.FieldBrandName] = struct{}{}
}

// BrandNameCleared returns if the "brand_name" field was cleared in this mutation.
func (m *LabelMutation) BrandNameCleared() bool {
	_, ok := m.clearedFields[label.FieldBrandName]
	return ok
}

// ResetBrandName resets all changes to the "brand_name" field.
func (m *LabelMutation) ResetBrandName() {
	m.brand_name = nil
	delete(m.clearedFields, label.FieldBrandName)
}

// SetBeverageType sets the "beverage_type" field.
func (m *LabelMutation) SetBeverageType(s string) {
	m.beverage_type = &s
}

// BeverageType returns the value of the "beverage_type" field in the mutation.
func (m *LabelMutation) BeverageType() (r string, exists bool) {
	v := m.beverage_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBeverageType returns the old "beverage_type" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldBeverageType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeverageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeverageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeverageType: %w", err)
	}
	return oldValue.BeverageType, nil
}

// ClearBeverageType clears the value of the "beverage_type" field.
func (m *LabelMutation) ClearBeverageType() {
	m.beverage_type = nil
	m.clearedFields[label.FieldBeverageType] = struct{}{}
}

// BeverageTypeCleared returns if the "beverage_type" field was cleared in this mutation.
func (m *LabelMutation) BeverageTypeCleared() bool {
	_, ok := m.clearedFields[label.FieldBeverageType]
	return ok
}

// ResetBeverageType resets all changes to the "beverage_type" field.
func (m *LabelMutation) ResetBeverageType() {
	m.beverage_type = nil
	delete(m.clearedFields, label.FieldBeverageType)
}

// SetAlcoholContent sets the "alcohol_content" field.
func (m *LabelMutation) SetAlcoholContent(f float64) {
	m.alcohol_content = &f
	m.addalcohol_content = nil
}

// AlcoholContent returns the value of the "alcohol_content" field in the mutation.
func (m *LabelMutation) AlcoholContent() (r float64, exists bool) {
	v := m.alcohol_content
	if v == nil {
		return
	}
	return *v, true
}

// OldAlcoholContent returns the old "alcohol_content" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldAlcoholContent(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlcoholContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlcoholContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlcoholContent: %w", err)
	}
	return oldValue.AlcoholContent, nil
}

// AddAlcoholContent adds f to the "alcohol_content" field.
func (m *LabelMutation) AddAlcoholContent(f float64) {
	if m.addalcohol_content != nil {
		*m.addalcohol_content += f
	} else {
		m.addalcohol_content = &f
	}
}

// AddedAlcoholContent returns the value that was added to the "alcohol_content" field in this mutation.
func (m *LabelMutation) AddedAlcoholContent() (r float64, exists bool) {
	v := m.addalcohol_content
	if v == nil {
		return
	}
	return *v, true
}

// ClearAlcoholContent clears the value of the "alcohol_content" field.
func (m *LabelMutation) ClearAlcoholContent() {
	m.alcohol_content = nil
	m.addalcohol_content = nil
	m.clearedFields[label.FieldAlcoholContent] = struct{}{}
}

// AlcoholContentCleared returns if the "alcohol_content" field was cleared in this mutation.
func (m *LabelMutation) AlcoholContentCleared() bool {
	_, ok := m.clearedFields[label.FieldAlcoholContent]
	return ok
}

// ResetAlcoholContent resets all changes to the "alcohol_content" field.
func (m *LabelMutation) ResetAlcoholContent() {
	m.alcohol_content = nil
	m.addalcohol_content = nil
	delete(m.clearedFields, label.FieldAlcoholContent)
}

// SetOverallConfidence sets the "overall_confidence" field.
func (m *LabelMutation) SetOverallConfidence(f float32) {
	m.overall_confidence = &f
	m.addoverall_confidence = nil
}

// OverallConfidence returns the value of the "overall_confidence" field in the mutation.
func (m *LabelMutation) OverallConfidence() (r float32, exists bool) {
	v := m.overall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallConfidence returns the old "overall_confidence" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldOverallConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallConfidence: %w", err)
	}
	return oldValue.OverallConfidence, nil
}

// AddOverallConfidence adds f to the "overall_confidence" field.
func (m *LabelMutation) AddOverallConfidence(f float32) {
	if m.addoverall_confidence != nil {
		*m.addoverall_confidence += f
	} else {
		m.addoverall_confidence = &f
	}
}

// AddedOverallConfidence returns the value that was added to the "overall_confidence" field in this mutation.
func (m *LabelMutation) AddedOverallConfidence() (r float32, exists bool) {
	v := m.addoverall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (m *LabelMutation) ClearOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	m.clearedFields[label.FieldOverallConfidence] = struct{}{}
}

// OverallConfidenceCleared returns if the "overall_confidence" field was cleared in this mutation.
func (m *LabelMutation) OverallConfidenceCleared() bool {
	_, ok := m.clearedFields[label.FieldOverallConfidence]
	return ok
}

// ResetOverallConfidence resets all changes to the "overall_confidence" field.
func (m *LabelMutation) ResetOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	delete(m.clearedFields, label.FieldOverallConfidence)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *LabelMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *LabelMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *LabelMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *LabelMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *LabelMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[label.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *LabelMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[label.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *LabelMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, label.FieldExtractedJSON)
}

// SetErrorMessage sets the "error_message" field.
func (m *LabelMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LabelMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LabelMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[label.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LabelMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[label.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LabelMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, label.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *LabelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LabelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LabelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LabelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (m *LabelMutation) ClearApplicant() {
	m.clearedapplicant = true
	m.clearedFields[label.FieldApplicantID] = struct{}{}
}

// ApplicantCleared reports if the "applicant" edge to the Applicant entity was cleared.
func (m *LabelMutation) ApplicantCleared() bool {
	return m.ApplicantIDCleared() || m.clearedapplicant
}

// ApplicantIDs returns the "applicant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicantID instead. It exists only for internal usage by the builders.
func (m *LabelMutation) ApplicantIDs() (ids []uuid.UUID) {
	if id := m.applicant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplicant resets all changes to the "applicant" edge.
func (m *LabelMutation) ResetApplicant() {
	m.applicant = nil
	m.clearedapplicant = false
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (m *LabelMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[label.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the Batch entity was cleared.
func (m *LabelMutation) BatchCleared() bool {
	return m.BatchIDCleared() || m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *LabelMutation) BatchIDs() (ids []uuid.UUID) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *LabelMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the LabelMutation builder.
func (m *LabelMutation) Where(ps ...predicate.Label) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Label, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Label).
func (m *LabelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabelMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.applicant != nil {
		fields = append(fields, label.FieldApplicantID)
	}
	if m.batch != nil {
		fields = append(fields, label.FieldBatchID)
	}
	if m.assigned_specialist != nil {
		fields = append(fields, label.FieldAssignedSpecialist)
	}
	if m.image_path != nil {
		fields = append(fields, label.FieldImagePath)
	}
	if m.status != nil {
		fields = append(fields, label.FieldStatus)
	}
	if m.correction_deadline != nil {
		fields = append(fields, label.FieldCorrectionDeadline)
	}
	if m.deadline_expired != nil {
		fields = append(fields, label.FieldDeadlineExpired)
	}
	if m.brand_name != nil {
		fields = append(fields, label.FieldBrandName)
	}
	if m.beverage_type != nil {
		fields = append(fields, label.FieldBeverageType)
	}
	if m.alcohol_content != nil {
		fields = append(fields, label.FieldAlcoholContent)
	}
	if m.overall_confidence != nil {
		fields = append(fields, label.FieldOverallConfidence)
	}
	if m.extracted_json != nil {
		fields = append(fields, label.FieldExtractedJSON)
	}
	if m.error_message != nil {
		fields = append(fields, label.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, label.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, label.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case label.FieldApplicantID:
		return m.ApplicantID()
	case label.FieldBatchID:
		return m.BatchID()
	case label.FieldAssignedSpecialist:
		return m.AssignedSpecialist()
	case label.FieldImagePath:
		return m.ImagePath()
	case label.FieldStatus:
		return m.Status()
	case label.FieldCorrectionDeadline:
		return m.CorrectionDeadline()
	case label.FieldDeadlineExpired:
		return m.DeadlineExpired()
	case label.FieldBrandName:
		return m.BrandName()
	case label.FieldBeverageType:
		return m.BeverageType()
	case label.FieldAlcoholContent:
		return m.AlcoholContent()
	case label.FieldOverallConfidence:
		return m.OverallConfidence()
	case label.FieldExtractedJSON:
		return m.ExtractedJSON()
	case label.FieldErrorMessage:
		return m.ErrorMessage()
	case label.FieldCreatedAt:
		return m.CreatedAt()
	case label.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case label.FieldApplicantID:
		return m.OldApplicantID(ctx)
	case label.FieldBatchID:
		return m.OldBatchID(ctx)
	case label.FieldAssignedSpecialist:
		return m.OldAssignedSpecialist(ctx)
	case label.FieldImagePath:
		return m.OldImagePath(ctx)
	case label.FieldStatus:
		return m.OldStatus(ctx)
	case label.FieldCorrectionDeadline:
		return m.OldCorrectionDeadline(ctx)
	case label.FieldDeadlineExpired:
		return m.OldDeadlineExpired(ctx)
	case label.FieldBrandName:
		return m.OldBrandName(ctx)
	case label.FieldBeverageType:
		return m.OldBeverageType(ctx)
	case label.FieldAlcoholContent:
		return m.OldAlcoholContent(ctx)
	case label.FieldOverallConfidence:
		return m.OldOverallConfidence(ctx)
	case label.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case label.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case label.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case label.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Label field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case label.FieldApplicantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicantID(v)
		return nil
	case label.FieldBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case label.FieldAssignedSpecialist:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedSpecialist(v)
		return nil
	case label.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case label.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case label.FieldCorrectionDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectionDeadline(v)
		return nil
	case label.FieldDeadlineExpired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadlineExpired(v)
		return nil
	case label.FieldBrandName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandName(v)
		return nil
	case label.FieldBeverageType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeverageType(v)
		return nil
	case label.FieldAlcoholContent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlcoholContent(v)
		return nil
	case label.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallConfidence(v)
		return nil
	case label.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case label.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case label.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case label.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Label field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabelMutation) AddedFields() []string {
	var fields []string
	if m.addalcohol_content != nil {
		fields = append(fields, label.FieldAlcoholContent)
	}
	if m.addoverall_confidence != nil {
		fields = append(fields, label.FieldOverallConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case label.FieldAlcoholContent:
		return m.AddedAlcoholContent()
	case label.FieldOverallConfidence:
		return m.AddedOverallConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case label.FieldAlcoholContent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAlcoholContent(v)
		return nil
	case label.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Label numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(label.FieldApplicantID) {
		fields = append(fields, label.FieldApplicantID)
	}
	if m.FieldCleared(label.FieldBatchID) {
		fields = append(fields, label.FieldBatchID)
	}
	if m.FieldCleared(label.FieldAssignedSpecialist) {
		fields = append(fields, label.FieldAssignedSpecialist)
	}
	if m.FieldCleared(label.FieldCorrectionDeadline) {
		fields = append(fields, label.FieldCorrectionDeadline)
	}
	if m.FieldCleared(label.FieldBrandName) {
		fields = append(fields, label.FieldBrandName)
	}
	if m.FieldCleared(label.FieldBeverageType) {
		fields = append(fields, label.FieldBeverageType)
	}
	if m.FieldCleared(label.FieldAlcoholContent) {
		fields = append(fields, label.FieldAlcoholContent)
	}
	if m.FieldCleared(label.FieldOverallConfidence) {
		fields = append(fields, label.FieldOverallConfidence)
	}
	if m.FieldCleared(label.FieldExtractedJSON) {
		fields = append(fields, label.FieldExtractedJSON)
	}
	if m.FieldCleared(label.FieldErrorMessage) {
		fields = append(fields, label.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabelMutation) ClearField(name string) error {
	switch name {
	case label.FieldApplicantID:
		m.ClearApplicantID()
		return nil
	case label.FieldBatchID:
		m.ClearBatchID()
		return nil
	case label.FieldAssignedSpecialist:
		m.ClearAssignedSpecialist()
		return nil
	case label.FieldCorrectionDeadline:
		m.ClearCorrectionDeadline()
		return nil
	case label.FieldBrandName:
		m.ClearBrandName()
		return nil
	case label.FieldBeverageType:
		m.ClearBeverageType()
		return nil
	case label.FieldAlcoholContent:
		m.ClearAlcoholContent()
		return nil
	case label.FieldOverallConfidence:
		m.ClearOverallConfidence()
		return nil
	case label.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case label.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Label nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabelMutation) ResetField(name string) error {
	switch name {
	case label.FieldApplicantID:
		m.ResetApplicantID()
		return nil
	case label.FieldBatchID:
		m.ResetBatchID()
		return nil
	case label.FieldAssignedSpecialist:
		m.ResetAssignedSpecialist()
		return nil
	case label.FieldImagePath:
		m.ResetImagePath()
		return nil
	case label.FieldStatus:
		m.ResetStatus()
		return nil
	case label.FieldCorrectionDeadline:
		m.ResetCorrectionDeadline()
		return nil
	case label.FieldDeadlineExpired:
		m.ResetDeadlineExpired()
		return nil
	case label.FieldBrandName:
		m.ResetBrandName()
		return nil
	case label.FieldBeverageType:
		m.ResetBeverageType()
		return nil
	case label.FieldAlcoholContent:
		m.ResetAlcoholContent()
		return nil
	case label.FieldOverallConfidence:
		m.ResetOverallConfidence()
		return nil
	case label.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case label.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case label.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case label.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Label field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabelMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.applicant != nil {
		edges = append(edges, label.EdgeApplicant)
	}
	if m.batch != nil {
		edges = append(edges, label.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case label.EdgeApplicant:
		if id := m.applicant; id != nil {
			return []ent.Value{*id}
		}
	case label.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapplicant {
		edges = append(edges, label.EdgeApplicant)
	}
	if m.clearedbatch {
		edges = append(edges, label.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabelMutation) EdgeCleared(name string) bool {
	switch name {
	case label.EdgeApplicant:
		return m.clearedapplicant
	case label.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabelMutation) ClearEdge(name string) error {
	switch name {
	case label.EdgeApplicant:
		m.ClearApplicant()
		return nil
	case label.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown Label unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabelMutation) ResetEdge(name string) error {
	switch name {
	case label.EdgeApplicant:
		m.ResetApplicant()
		return nil
	case label.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown Label edge %s", name)
}
