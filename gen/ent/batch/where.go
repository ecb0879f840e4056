// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldID, id))
}

// ApplicantID applies equality check predicate on the "applicant_id" field. It's identical to ApplicantIDEQ.
func ApplicantID(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldApplicantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStatus, v))
}

// TotalLabels applies equality check predicate on the "total_labels" field. It's identical to TotalLabelsEQ.
func TotalLabels(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalLabels, v))
}

// ProcessedCount applies equality check predicate on the "processed_count" field. It's identical to ProcessedCountEQ.
func ProcessedCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProcessedCount, v))
}

// ApprovedCount applies equality check predicate on the "approved_count" field. It's identical to ApprovedCountEQ.
func ApprovedCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldApprovedCount, v))
}

// ConditionallyApprovedCount applies equality check predicate on the "conditionally_approved_count" field. It's identical to ConditionallyApprovedCountEQ.
func ConditionallyApprovedCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldConditionallyApprovedCount, v))
}

// RejectedCount applies equality check predicate on the "rejected_count" field. It's identical to RejectedCountEQ.
func RejectedCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldRejectedCount, v))
}

// NeedsCorrectionCount applies equality check predicate on the "needs_correction_count" field. It's identical to NeedsCorrectionCountEQ.
func NeedsCorrectionCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldNeedsCorrectionCount, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUpdatedAt, v))
}

// ApplicantIDEQ applies the EQ predicate on the "applicant_id" field.
func ApplicantIDEQ(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldApplicantID, v))
}

// ApplicantIDNEQ applies the NEQ predicate on the "applicant_id" field.
func ApplicantIDNEQ(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldApplicantID, v))
}

// ApplicantIDIn applies the In predicate on the "applicant_id" field.
func ApplicantIDIn(vs ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldApplicantID, vs...))
}

// ApplicantIDNotIn applies the NotIn predicate on the "applicant_id" field.
func ApplicantIDNotIn(vs ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldApplicantID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldStatus, v))
}

// TotalLabelsEQ applies the EQ predicate on the "total_labels" field.
func TotalLabelsEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalLabels, v))
}

// TotalLabelsNEQ applies the NEQ predicate on the "total_labels" field.
func TotalLabelsNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalLabels, v))
}

// TotalLabelsIn applies the In predicate on the "total_labels" field.
func TotalLabelsIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalLabels, vs...))
}

// TotalLabelsNotIn applies the NotIn predicate on the "total_labels" field.
func TotalLabelsNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalLabels, vs...))
}

// TotalLabelsGT applies the GT predicate on the "total_labels" field.
func TotalLabelsGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalLabels, v))
}

// TotalLabelsGTE applies the GTE predicate on the "total_labels" field.
func TotalLabelsGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalLabels, v))
}

// TotalLabelsLT applies the LT predicate on the "total_labels" field.
func TotalLabelsLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalLabels, v))
}

// TotalLabelsLTE applies the LTE predicate on the "total_labels" field.
func TotalLabelsLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalLabels, v))
}

// ProcessedCountEQ applies the EQ predicate on the "processed_count" field.
func ProcessedCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProcessedCount, v))
}

// ProcessedCountNEQ applies the NEQ predicate on the "processed_count" field.
func ProcessedCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldProcessedCount, v))
}

// ProcessedCountIn applies the In predicate on the "processed_count" field.
func ProcessedCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldProcessedCount, vs...))
}

// ProcessedCountNotIn applies the NotIn predicate on the "processed_count" field.
func ProcessedCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldProcessedCount, vs...))
}

// ProcessedCountGT applies the GT predicate on the "processed_count" field.
func ProcessedCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldProcessedCount, v))
}

// ProcessedCountGTE applies the GTE predicate on the "processed_count" field.
func ProcessedCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldProcessedCount, v))
}

// ProcessedCountLT applies the LT predicate on the "processed_count" field.
func ProcessedCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldProcessedCount, v))
}

// ProcessedCountLTE applies the LTE predicate on the "processed_count" field.
func ProcessedCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldProcessedCount, v))
}

// ApprovedCountEQ applies the EQ predicate on the "approved_count" field.
func ApprovedCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldApprovedCount, v))
}

// ApprovedCountNEQ applies the NEQ predicate on the "approved_count" field.
func ApprovedCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldApprovedCount, v))
}

// ApprovedCountIn applies the In predicate on the "approved_count" field.
func ApprovedCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldApprovedCount, vs...))
}

// ApprovedCountNotIn applies the NotIn predicate on the "approved_count" field.
func ApprovedCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldApprovedCount, vs...))
}

// ApprovedCountGT applies the GT predicate on the "approved_count" field.
func ApprovedCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldApprovedCount, v))
}

// ApprovedCountGTE applies the GTE predicate on the "approved_count" field.
func ApprovedCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldApprovedCount, v))
}

// ApprovedCountLT applies the LT predicate on the "approved_count" field.
func ApprovedCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldApprovedCount, v))
}

// ApprovedCountLTE applies the LTE predicate on the "approved_count" field.
func ApprovedCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldApprovedCount, v))
}

// ConditionallyApprovedCountEQ applies the EQ predicate on the "conditionally_approved_count" field.
func ConditionallyApprovedCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldConditionallyApprovedCount, v))
}

// ConditionallyApprovedCountNEQ applies the NEQ predicate on the "conditionally_approved_count" field.
func ConditionallyApprovedCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldConditionallyApprovedCount, v))
}

// ConditionallyApprovedCountIn applies the In predicate on the "conditionally_approved_count" field.
func ConditionallyApprovedCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldConditionallyApprovedCount, vs...))
}

// ConditionallyApprovedCountNotIn applies the NotIn predicate on the "conditionally_approved_count" field.
func ConditionallyApprovedCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldConditionallyApprovedCount, vs...))
}

// ConditionallyApprovedCountGT applies the GT predicate on the "conditionally_approved_count" field.
func ConditionallyApprovedCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldConditionallyApprovedCount, v))
}

// ConditionallyApprovedCountGTE applies the GTE predicate on the "conditionally_approved_count" field.
func ConditionallyApprovedCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldConditionallyApprovedCount, v))
}

// ConditionallyApprovedCountLT applies the LT predicate on the "conditionally_approved_count" field.
func ConditionallyApprovedCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldConditionallyApprovedCount, v))
}

// ConditionallyApprovedCountLTE applies the LTE predicate on the "conditionally_approved_count" field.
func ConditionallyApprovedCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldConditionallyApprovedCount, v))
}

// RejectedCountEQ applies the EQ predicate on the "rejected_count" field.
func RejectedCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldRejectedCount, v))
}

// RejectedCountNEQ applies the NEQ predicate on the "rejected_count" field.
func RejectedCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldRejectedCount, v))
}

// RejectedCountIn applies the In predicate on the "rejected_count" field.
func RejectedCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldRejectedCount, vs...))
}

// RejectedCountNotIn applies the NotIn predicate on the "rejected_count" field.
func RejectedCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldRejectedCount, vs...))
}

// RejectedCountGT applies the GT predicate on the "rejected_count" field.
func RejectedCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldRejectedCount, v))
}

// RejectedCountGTE applies the GTE predicate on the "rejected_count" field.
func RejectedCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldRejectedCount, v))
}

// RejectedCountLT applies the LT predicate on the "rejected_count" field.
func RejectedCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldRejectedCount, v))
}

// RejectedCountLTE applies the LTE predicate on the "rejected_count" field.
func RejectedCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldRejectedCount, v))
}

// NeedsCorrectionCountEQ applies the EQ predicate on the "needs_correction_count" field.
func NeedsCorrectionCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldNeedsCorrectionCount, v))
}

// NeedsCorrectionCountNEQ applies the NEQ predicate on the "needs_correction_count" field.
func NeedsCorrectionCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldNeedsCorrectionCount, v))
}

// NeedsCorrectionCountIn applies the In predicate on the "needs_correction_count" field.
func NeedsCorrectionCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldNeedsCorrectionCount, vs...))
}

// NeedsCorrectionCountNotIn applies the NotIn predicate on the "needs_correction_count" field.
func NeedsCorrectionCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldNeedsCorrectionCount, vs...))
}

// NeedsCorrectionCountGT applies the GT predicate on the "needs_correction_count" field.
func NeedsCorrectionCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldNeedsCorrectionCount, v))
}

// NeedsCorrectionCountGTE applies the GTE predicate on the "needs_correction_count" field.
func NeedsCorrectionCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldNeedsCorrectionCount, v))
}

// NeedsCorrectionCountLT applies the LT predicate on the "needs_correction_count" field.
func NeedsCorrectionCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldNeedsCorrectionCount, v))
}

// NeedsCorrectionCountLTE applies the LTE predicate on the "needs_correction_count" field.
func NeedsCorrectionCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldNeedsCorrectionCount, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplicant applies the HasEdge predicate on the "applicant" edge.
func HasApplicant() predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicantTable, ApplicantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicantWith applies the HasEdge predicate on the "applicant" edge with a given conditions (other predicates).
func HasApplicantWith(preds ...predicate.Applicant) predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := newApplicantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLabels applies the HasEdge predicate on the "labels" edge.
func HasLabels() predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LabelsTable, LabelsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLabelsWith applies the HasEdge predicate on the "labels" edge with a given conditions (other predicates).
func HasLabelsWith(preds ...predicate.Label) predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := newLabelsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.NotPredicates(p))
}
