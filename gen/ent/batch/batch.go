// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the batch type in the database.
	Label = "batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldApplicantID holds the string denoting the applicant_id field in the database.
	FieldApplicantID = "applicant_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalLabels holds the string denoting the total_labels field in the database.
	FieldTotalLabels = "total_labels"
	// FieldProcessedCount holds the string denoting the processed_count field in the database.
	FieldProcessedCount = "processed_count"
	// FieldApprovedCount holds the string denoting the approved_count field in the database.
	FieldApprovedCount = "approved_count"
	// FieldConditionallyApprovedCount holds the string denoting the conditionally_approved_count field in the database.
	FieldConditionallyApprovedCount = "conditionally_approved_count"
	// FieldRejectedCount holds the string denoting the rejected_count field in the database.
	FieldRejectedCount = "rejected_count"
	// FieldNeedsCorrectionCount holds the string denoting the needs_correction_count field in the database.
	FieldNeedsCorrectionCount = "needs_correction_count"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeApplicant holds the string denoting the applicant edge name in mutations.
	EdgeApplicant = "applicant"
	// EdgeLabels holds the string denoting the labels edge name in mutations.
	EdgeLabels = "labels"
	// Table holds the table name of the batch in the database.
	Table = "batches"
	// ApplicantTable is the table that holds the applicant relation/edge.
	ApplicantTable = "batches"
	// ApplicantInverseTable is the table name for the Applicant entity.
	// It exists in this package in order to avoid circular dependency with the "applicant" package.
	ApplicantInverseTable = "applicants"
	// ApplicantColumn is the table column denoting the applicant relation/edge.
	ApplicantColumn = "applicant_id"
	// LabelsTable is the table that holds the labels relation/edge.
	LabelsTable = "labels"
	// LabelsInverseTable is the table name for the Label entity.
	// It exists in this package in order to avoid circular dependency with the "label" package.
	LabelsInverseTable = "labels"
	// LabelsColumn is the table column denoting the labels relation/edge.
	LabelsColumn = "batch_id"
)

// Columns holds all SQL columns for batch fields.
var Columns = []string{
	FieldID,
	FieldApplicantID,
	FieldName,
	FieldStatus,
	FieldTotalLabels,
	FieldProcessedCount,
	FieldApprovedCount,
	FieldConditionallyApprovedCount,
	FieldRejectedCount,
	FieldNeedsCorrectionCount,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// TotalLabelsValidator is a validator for the "total_labels" field. It is called by the builders before save.
	TotalLabelsValidator func(int) error
	// DefaultProcessedCount holds the default value on creation for the "processed_count" field.
	DefaultProcessedCount int
	// ProcessedCountValidator is a validator for the "processed_count" field. It is called by the builders before save.
	ProcessedCountValidator func(int) error
	// DefaultApprovedCount holds the default value on creation for the "approved_count" field.
	DefaultApprovedCount int
	// ApprovedCountValidator is a validator for the "approved_count" field. It is called by the builders before save.
	ApprovedCountValidator func(int) error
	// DefaultConditionallyApprovedCount holds the default value on creation for the "conditionally_approved_count" field.
	DefaultConditionallyApprovedCount int
	// ConditionallyApprovedCountValidator is a validator for the "conditionally_approved_count" field. It is called by the builders before save.
	ConditionallyApprovedCountValidator func(int) error
	// DefaultRejectedCount holds the default value on creation for the "rejected_count" field.
	DefaultRejectedCount int
	// RejectedCountValidator is a validator for the "rejected_count" field. It is called by the builders before save.
	RejectedCountValidator func(int) error
	// DefaultNeedsCorrectionCount holds the default value on creation for the "needs_correction_count" field.
	DefaultNeedsCorrectionCount int
	// NeedsCorrectionCountValidator is a validator for the "needs_correction_count" field. It is called by the builders before save.
	NeedsCorrectionCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Batch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByApplicantID orders the results by the applicant_id field.
func ByApplicantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicantID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalLabels orders the results by the total_labels field.
func ByTotalLabels(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLabels, opts...).ToFunc()
}

// ByProcessedCount orders the results by the processed_count field.
func ByProcessedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedCount, opts...).ToFunc()
}

// ByApprovedCount orders the results by the approved_count field.
func ByApprovedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedCount, opts...).ToFunc()
}

// ByConditionallyApprovedCount orders the results by the conditionally_approved_count field.
func ByConditionallyApprovedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConditionallyApprovedCount, opts...).ToFunc()
}

// ByRejectedCount orders the results by the rejected_count field.
func ByRejectedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedCount, opts...).ToFunc()
}

// ByNeedsCorrectionCount orders the results by the needs_correction_count field.
func ByNeedsCorrectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsCorrectionCount, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByApplicantField orders the results by applicant field.
func ByApplicantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicantStep(), sql.OrderByField(field, opts...))
	}
}

// ByLabelsCount orders the results by labels count.
func ByLabelsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLabelsStep(), opts...)
	}
}

// ByLabels orders the results by labels terms.
func ByLabels(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLabelsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newApplicantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ApplicantTable, ApplicantColumn),
	)
}
func newLabelsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LabelsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LabelsTable, LabelsColumn),
	)
}
