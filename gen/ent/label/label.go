// Code generated by ent, DO NOT EDIT.

package label

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the label type in the database.
	Label = "label"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldApplicantID holds the string denoting the applicant_id field in the database.
	FieldApplicantID = "applicant_id"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldAssignedSpecialist holds the string denoting the assigned_specialist field in the database.
	FieldAssignedSpecialist = "assigned_specialist"
	// FieldImagePath holds the string denoting the image_path field in the database.
	FieldImagePath = "image_path"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCorrectionDeadline holds the string denoting the correction_deadline field in the database.
	FieldCorrectionDeadline = "correction_deadline"
	// FieldDeadlineExpired holds the string denoting the deadline_expired field in the database.
	FieldDeadlineExpired = "deadline_expired"
	// FieldBrandName holds the string denoting the brand_name field in the database.
	FieldBrandName = "brand_name"
	// FieldBeverageType holds the string denoting the beverage_type field in the database.
	FieldBeverageType = "beverage_type"
	// FieldAlcoholContent holds the string denoting the alcohol_content field in the database.
	FieldAlcoholContent = "alcohol_content"
	// FieldOverallConfidence holds the string denoting the overall_confidence field in the database.
	FieldOverallConfidence = "overall_confidence"
	// FieldExtractedJSON holds the string denoting the extracted_json field in the database.
	FieldExtractedJSON = "extracted_json"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeApplicant holds the string denoting the applicant edge name in mutations.
	EdgeApplicant = "applicant"
	// EdgeBatch holds the string denoting the batch edge name in mutations.
	EdgeBatch = "batch"
	// Table holds the table name of the label in the database.
	Table = "labels"
	// ApplicantTable is the table that holds the applicant relation/edge.
	ApplicantTable = "labels"
	// ApplicantInverseTable is the table name for the Applicant entity.
	// It exists in this package in order to avoid circular dependency with the "applicant" package.
	ApplicantInverseTable = "applicants"
	// ApplicantColumn is the table column denoting the applicant relation/edge.
	ApplicantColumn = "applicant_id"
	// BatchTable is the table that holds the batch relation/edge.
	BatchTable = "labels"
	// BatchInverseTable is the table name for the Batch entity.
	// It exists in this package in order to avoid circular dependency with the "batch" package.
	BatchInverseTable = "batches"
	// BatchColumn is the table column denoting the batch relation/edge.
	BatchColumn = "batch_id"
)

// Columns holds all SQL columns for label fields.
var Columns = []string{
	FieldID,
	FieldApplicantID,
	FieldBatchID,
	FieldAssignedSpecialist,
	FieldImagePath,
	FieldStatus,
	FieldCorrectionDeadline,
	FieldDeadlineExpired,
	FieldBrandName,
	FieldBeverageType,
	FieldAlcoholContent,
	FieldOverallConfidence,
	FieldExtractedJSON,
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
	// ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	ImagePathValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultDeadlineExpired holds the default value on creation for the "deadline_expired" field.
	DefaultDeadlineExpired bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Label queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByApplicantID orders the results by the applicant_id field.
func ByApplicantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicantID, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByAssignedSpecialist orders the results by the assigned_specialist field.
func ByAssignedSpecialist(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedSpecialist, opts...).ToFunc()
}

// ByImagePath orders the results by the image_path field.
func ByImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagePath, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCorrectionDeadline orders the results by the correction_deadline field.
func ByCorrectionDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectionDeadline, opts...).ToFunc()
}

// ByDeadlineExpired orders the results by the deadline_expired field.
func ByDeadlineExpired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadlineExpired, opts...).ToFunc()
}

// ByBrandName orders the results by the brand_name field.
func ByBrandName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandName, opts...).ToFunc()
}

// ByBeverageType orders the results by the beverage_type field.
func ByBeverageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeverageType, opts...).ToFunc()
}

// ByAlcoholContent orders the results by the alcohol_content field.
func ByAlcoholContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlcoholContent, opts...).ToFunc()
}

// ByOverallConfidence orders the results by the overall_confidence field.
func ByOverallConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallConfidence, opts...).ToFunc()
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

// ByBatchField orders the results by batch field.
func ByBatchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchStep(), sql.OrderByField(field, opts...))
	}
}
func newApplicantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ApplicantTable, ApplicantColumn),
	)
}
func newBatchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
	)
}
