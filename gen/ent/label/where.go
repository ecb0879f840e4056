// Code generated by ent, DO NOT EDIT.

package label

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldID, id))
}

// ApplicantID applies equality check predicate on the "applicant_id" field. It's identical to ApplicantIDEQ.
func ApplicantID(v uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldApplicantID, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldBatchID, v))
}

// AssignedSpecialist applies equality check predicate on the "assigned_specialist" field. It's identical to AssignedSpecialistEQ.
func AssignedSpecialist(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldAssignedSpecialist, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldImagePath, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldStatus, v))
}

// CorrectionDeadline applies equality check predicate on the "correction_deadline" field. It's identical to CorrectionDeadlineEQ.
func CorrectionDeadline(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldCorrectionDeadline, v))
}

// DeadlineExpired applies equality check predicate on the "deadline_expired" field. It's identical to DeadlineExpiredEQ.
func DeadlineExpired(v bool) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldDeadlineExpired, v))
}

// BrandName applies equality check predicate on the "brand_name" field. It's identical to BrandNameEQ.
func BrandName(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldBrandName, v))
}

// BeverageType applies equality check predicate on the "beverage_type" field. It's identical to BeverageTypeEQ.
func BeverageType(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldBeverageType, v))
}

// AlcoholContent applies equality check predicate on the "alcohol_content" field. It's identical to AlcoholContentEQ.
func AlcoholContent(v float64) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldAlcoholContent, v))
}

// OverallConfidence applies equality check predicate on the "overall_confidence" field. It's identical to OverallConfidenceEQ.
func OverallConfidence(v float32) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldOverallConfidence, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldUpdatedAt, v))
}

// ApplicantIDEQ applies the EQ predicate on the "applicant_id" field.
func ApplicantIDEQ(v uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldApplicantID, v))
}

// ApplicantIDNEQ applies the NEQ predicate on the "applicant_id" field.
func ApplicantIDNEQ(v uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldApplicantID, v))
}

// ApplicantIDIn applies the In predicate on the "applicant_id" field.
func ApplicantIDIn(vs ...uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldApplicantID, vs...))
}

// ApplicantIDNotIn applies the NotIn predicate on the "applicant_id" field.
func ApplicantIDNotIn(vs ...uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldApplicantID, vs...))
}

// ApplicantIDIsNil applies the IsNil predicate on the "applicant_id" field.
func ApplicantIDIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldApplicantID))
}

// ApplicantIDNotNil applies the NotNil predicate on the "applicant_id" field.
func ApplicantIDNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldApplicantID))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDIsNil applies the IsNil predicate on the "batch_id" field.
func BatchIDIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldBatchID))
}

// BatchIDNotNil applies the NotNil predicate on the "batch_id" field.
func BatchIDNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldBatchID))
}

// AssignedSpecialistEQ applies the EQ predicate on the "assigned_specialist" field.
func AssignedSpecialistEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldAssignedSpecialist, v))
}

// AssignedSpecialistNEQ applies the NEQ predicate on the "assigned_specialist" field.
func AssignedSpecialistNEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldAssignedSpecialist, v))
}

// AssignedSpecialistIn applies the In predicate on the "assigned_specialist" field.
func AssignedSpecialistIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldAssignedSpecialist, vs...))
}

// AssignedSpecialistNotIn applies the NotIn predicate on the "assigned_specialist" field.
func AssignedSpecialistNotIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldAssignedSpecialist, vs...))
}

// AssignedSpecialistGT applies the GT predicate on the "assigned_specialist" field.
func AssignedSpecialistGT(v string) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldAssignedSpecialist, v))
}

// AssignedSpecialistGTE applies the GTE predicate on the "assigned_specialist" field.
func AssignedSpecialistGTE(v string) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldAssignedSpecialist, v))
}

// AssignedSpecialistLT applies the LT predicate on the "assigned_specialist" field.
func AssignedSpecialistLT(v string) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldAssignedSpecialist, v))
}

// AssignedSpecialistLTE applies the LTE predicate on the "assigned_specialist" field.
func AssignedSpecialistLTE(v string) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldAssignedSpecialist, v))
}

// AssignedSpecialistContains applies the Contains predicate on the "assigned_specialist" field.
func AssignedSpecialistContains(v string) predicate.Label {
	return predicate.Label(sql.FieldContains(FieldAssignedSpecialist, v))
}

// AssignedSpecialistHasPrefix applies the HasPrefix predicate on the "assigned_specialist" field.
func AssignedSpecialistHasPrefix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasPrefix(FieldAssignedSpecialist, v))
}

// AssignedSpecialistHasSuffix applies the HasSuffix predicate on the "assigned_specialist" field.
func AssignedSpecialistHasSuffix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasSuffix(FieldAssignedSpecialist, v))
}

// AssignedSpecialistIsNil applies the IsNil predicate on the "assigned_specialist" field.
func AssignedSpecialistIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldAssignedSpecialist))
}

// AssignedSpecialistNotNil applies the NotNil predicate on the "assigned_specialist" field.
func AssignedSpecialistNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldAssignedSpecialist))
}

// AssignedSpecialistEqualFold applies the EqualFold predicate on the "assigned_specialist" field.
func AssignedSpecialistEqualFold(v string) predicate.Label {
	return predicate.Label(sql.FieldEqualFold(FieldAssignedSpecialist, v))
}

// AssignedSpecialistContainsFold applies the ContainsFold predicate on the "assigned_specialist" field.
func AssignedSpecialistContainsFold(v string) predicate.Label {
	return predicate.Label(sql.FieldContainsFold(FieldAssignedSpecialist, v))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.Label {
	return predicate.Label(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.Label {
	return predicate.Label(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.Label {
	return predicate.Label(sql.FieldContainsFold(FieldImagePath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Label {
	return predicate.Label(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Label {
	return predicate.Label(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Label {
	return predicate.Label(sql.FieldContainsFold(FieldStatus, v))
}

// CorrectionDeadlineEQ applies the EQ predicate on the "correction_deadline" field.
func CorrectionDeadlineEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineNEQ applies the NEQ predicate on the "correction_deadline" field.
func CorrectionDeadlineNEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineIn applies the In predicate on the "correction_deadline" field.
func CorrectionDeadlineIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldCorrectionDeadline, vs...))
}

// CorrectionDeadlineNotIn applies the NotIn predicate on the "correction_deadline" field.
func CorrectionDeadlineNotIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldCorrectionDeadline, vs...))
}

// CorrectionDeadlineGT applies the GT predicate on the "correction_deadline" field.
func CorrectionDeadlineGT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineGTE applies the GTE predicate on the "correction_deadline" field.
func CorrectionDeadlineGTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineLT applies the LT predicate on the "correction_deadline" field.
func CorrectionDeadlineLT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineLTE applies the LTE predicate on the "correction_deadline" field.
func CorrectionDeadlineLTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineIsNil applies the IsNil predicate on the "correction_deadline" field.
func CorrectionDeadlineIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldCorrectionDeadline))
}

// CorrectionDeadlineNotNil applies the NotNil predicate on the "correction_deadline" field.
func CorrectionDeadlineNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldCorrectionDeadline))
}

// DeadlineExpiredEQ applies the EQ predicate on the "deadline_expired" field.
func DeadlineExpiredEQ(v bool) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldDeadlineExpired, v))
}

// DeadlineExpiredNEQ applies the NEQ predicate on the "deadline_expired" field.
func DeadlineExpiredNEQ(v bool) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldDeadlineExpired, v))
}

// BrandNameEQ applies the EQ predicate on the "brand_name" field.
func BrandNameEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldBrandName, v))
}

// BrandNameNEQ applies the NEQ predicate on the "brand_name" field.
func BrandNameNEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldBrandName, v))
}

// BrandNameIn applies the In predicate on the "brand_name" field.
func BrandNameIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldBrandName, vs...))
}

// BrandNameNotIn applies the NotIn predicate on the "brand_name" field.
func BrandNameNotIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldBrandName, vs...))
}

// BrandNameGT applies the GT predicate on the "brand_name" field.
func BrandNameGT(v string) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldBrandName, v))
}

// BrandNameGTE applies the GTE predicate on the "brand_name" field.
func BrandNameGTE(v string) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldBrandName, v))
}

// BrandNameLT applies the LT predicate on the "brand_name" field.
func BrandNameLT(v string) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldBrandName, v))
}

// BrandNameLTE applies the LTE predicate on the "brand_name" field.
func BrandNameLTE(v string) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldBrandName, v))
}

// BrandNameContains applies the Contains predicate on the "brand_name" field.
func BrandNameContains(v string) predicate.Label {
	return predicate.Label(sql.FieldContains(FieldBrandName, v))
}

// BrandNameHasPrefix applies the HasPrefix predicate on the "brand_name" field.
func BrandNameHasPrefix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasPrefix(FieldBrandName, v))
}

// BrandNameHasSuffix applies the HasSuffix predicate on the "brand_name" field.
func BrandNameHasSuffix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasSuffix(FieldBrandName, v))
}

// BrandNameIsNil applies the IsNil predicate on the "brand_name" field.
func BrandNameIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldBrandName))
}

// BrandNameNotNil applies the NotNil predicate on the "brand_name" field.
func BrandNameNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldBrandName))
}

// BrandNameEqualFold applies the EqualFold predicate on the "brand_name" field.
func BrandNameEqualFold(v string) predicate.Label {
	return predicate.Label(sql.FieldEqualFold(FieldBrandName, v))
}

// BrandNameContainsFold applies the ContainsFold predicate on the "brand_name" field.
func BrandNameContainsFold(v string) predicate.Label {
	return predicate.Label(sql.FieldContainsFold(FieldBrandName, v))
}

// BeverageTypeEQ applies the EQ predicate on the "beverage_type" field.
func BeverageTypeEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldBeverageType, v))
}

// BeverageTypeNEQ applies the NEQ predicate on the "beverage_type" field.
func BeverageTypeNEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldBeverageType, v))
}

// BeverageTypeIn applies the In predicate on the "beverage_type" field.
func BeverageTypeIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldBeverageType, vs...))
}

// BeverageTypeNotIn applies the NotIn predicate on the "beverage_type" field.
func BeverageTypeNotIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldBeverageType, vs...))
}

// BeverageTypeGT applies the GT predicate on the "beverage_type" field.
func BeverageTypeGT(v string) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldBeverageType, v))
}

// BeverageTypeGTE applies the GTE predicate on the "beverage_type" field.
func BeverageTypeGTE(v string) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldBeverageType, v))
}

// BeverageTypeLT applies the LT predicate on the "beverage_type" field.
func BeverageTypeLT(v string) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldBeverageType, v))
}

// BeverageTypeLTE applies the LTE predicate on the "beverage_type" field.
func BeverageTypeLTE(v string) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldBeverageType, v))
}

// BeverageTypeContains applies the Contains predicate on the "beverage_type" field.
func BeverageTypeContains(v string) predicate.Label {
	return predicate.Label(sql.FieldContains(FieldBeverageType, v))
}

// BeverageTypeHasPrefix applies the HasPrefix predicate on the "beverage_type" field.
func BeverageTypeHasPrefix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasPrefix(FieldBeverageType, v))
}

// BeverageTypeHasSuffix applies the HasSuffix predicate on the "beverage_type" field.
func BeverageTypeHasSuffix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasSuffix(FieldBeverageType, v))
}

// BeverageTypeIsNil applies the IsNil predicate on the "beverage_type" field.
func BeverageTypeIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldBeverageType))
}

// BeverageTypeNotNil applies the NotNil predicate on the "beverage_type" field.
func BeverageTypeNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldBeverageType))
}

// BeverageTypeEqualFold applies the EqualFold predicate on the "beverage_type" field.
func BeverageTypeEqualFold(v string) predicate.Label {
	return predicate.Label(sql.FieldEqualFold(FieldBeverageType, v))
}

// BeverageTypeContainsFold applies the ContainsFold predicate on the "beverage_type" field.
func BeverageTypeContainsFold(v string) predicate.Label {
	return predicate.Label(sql.FieldContainsFold(FieldBeverageType, v))
}

// AlcoholContentEQ applies the EQ predicate on the "alcohol_content" field.
func AlcoholContentEQ(v float64) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldAlcoholContent, v))
}

// AlcoholContentNEQ applies the NEQ predicate on the "alcohol_content" field.
func AlcoholContentNEQ(v float64) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldAlcoholContent, v))
}

// AlcoholContentIn applies the In predicate on the "alcohol_content" field.
func AlcoholContentIn(vs ...float64) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldAlcoholContent, vs...))
}

// AlcoholContentNotIn applies the NotIn predicate on the "alcohol_content" field.
func AlcoholContentNotIn(vs ...float64) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldAlcoholContent, vs...))
}

// AlcoholContentGT applies the GT predicate on the "alcohol_content" field.
func AlcoholContentGT(v float64) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldAlcoholContent, v))
}

// AlcoholContentGTE applies the GTE predicate on the "alcohol_content" field.
func AlcoholContentGTE(v float64) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldAlcoholContent, v))
}

// AlcoholContentLT applies the LT predicate on the "alcohol_content" field.
func AlcoholContentLT(v float64) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldAlcoholContent, v))
}

// AlcoholContentLTE applies the LTE predicate on the "alcohol_content" field.
func AlcoholContentLTE(v float64) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldAlcoholContent, v))
}

// AlcoholContentIsNil applies the IsNil predicate on the "alcohol_content" field.
func AlcoholContentIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldAlcoholContent))
}

// AlcoholContentNotNil applies the NotNil predicate on the "alcohol_content" field.
func AlcoholContentNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldAlcoholContent))
}

// OverallConfidenceEQ applies the EQ predicate on the "overall_confidence" field.
func OverallConfidenceEQ(v float32) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldOverallConfidence, v))
}

// OverallConfidenceNEQ applies the NEQ predicate on the "overall_confidence" field.
func OverallConfidenceNEQ(v float32) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldOverallConfidence, v))
}

// OverallConfidenceIn applies the In predicate on the "overall_confidence" field.
func OverallConfidenceIn(vs ...float32) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceNotIn applies the NotIn predicate on the "overall_confidence" field.
func OverallConfidenceNotIn(vs ...float32) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceGT applies the GT predicate on the "overall_confidence" field.
func OverallConfidenceGT(v float32) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldOverallConfidence, v))
}

// OverallConfidenceGTE applies the GTE predicate on the "overall_confidence" field.
func OverallConfidenceGTE(v float32) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldOverallConfidence, v))
}

// OverallConfidenceLT applies the LT predicate on the "overall_confidence" field.
func OverallConfidenceLT(v float32) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldOverallConfidence, v))
}

// OverallConfidenceLTE applies the LTE predicate on the "overall_confidence" field.
func OverallConfidenceLTE(v float32) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldOverallConfidence, v))
}

// OverallConfidenceIsNil applies the IsNil predicate on the "overall_confidence" field.
func OverallConfidenceIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldOverallConfidence))
}

// OverallConfidenceNotNil applies the NotNil predicate on the "overall_confidence" field.
func OverallConfidenceNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldOverallConfidence))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldExtractedJSON))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Label {
	return predicate.Label(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Label {
	return predicate.Label(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Label {
	return predicate.Label(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplicant applies the HasEdge predicate on the "applicant" edge.
func HasApplicant() predicate.Label {
	return predicate.Label(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicantTable, ApplicantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicantWith applies the HasEdge predicate on the "applicant" edge with a given conditions (other predicates).
func HasApplicantWith(preds ...predicate.Applicant) predicate.Label {
	return predicate.Label(func(s *sql.Selector) {
		step := newApplicantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.Label {
	return predicate.Label(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.Batch) predicate.Label {
	return predicate.Label(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Label) predicate.Label {
	return predicate.Label(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Label) predicate.Label {
	return predicate.Label(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Label) predicate.Label {
	return predicate.Label(sql.NotPredicates(p))
}
