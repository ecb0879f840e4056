// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/db/ent/schema"
	"github.com/ttbcheck/labelverify/gen/ent/applicant"
	"github.com/ttbcheck/labelverify/gen/ent/batch"
	"github.com/ttbcheck/labelverify/gen/ent/label"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicantFields := schema.Applicant{}.Fields()
	_ = applicantFields
	// applicantDescName is the schema descriptor for name field.
	applicantDescName := applicantFields[1].Descriptor()
	// applicant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	applicant.NameValidator = applicantDescName.Validators[0].(func(string) error)
	// applicantDescEmail is the schema descriptor for email field.
	applicantDescEmail := applicantFields[2].Descriptor()
	// applicant.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	applicant.EmailValidator = applicantDescEmail.Validators[0].(func(string) error)
	// applicantDescCreatedAt is the schema descriptor for created_at field.
	applicantDescCreatedAt := applicantFields[4].Descriptor()
	// applicant.DefaultCreatedAt holds the default value on creation for the created_at field.
	applicant.DefaultCreatedAt = applicantDescCreatedAt.Default.(func() time.Time)
	// applicantDescUpdatedAt is the schema descriptor for updated_at field.
	applicantDescUpdatedAt := applicantFields[5].Descriptor()
	// applicant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	applicant.DefaultUpdatedAt = applicantDescUpdatedAt.Default.(func() time.Time)
	// applicant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	applicant.UpdateDefaultUpdatedAt = applicantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicantDescID is the schema descriptor for id field.
	applicantDescID := applicantFields[0].Descriptor()
	// applicant.DefaultID holds the default value on creation for the id field.
	applicant.DefaultID = applicantDescID.Default.(func() uuid.UUID)
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescName is the schema descriptor for name field.
	batchDescName := batchFields[2].Descriptor()
	// batch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	batch.NameValidator = batchDescName.Validators[0].(func(string) error)
	// batchDescStatus is the schema descriptor for status field.
	batchDescStatus := batchFields[3].Descriptor()
	// batch.DefaultStatus holds the default value on creation for the status field.
	batch.DefaultStatus = batchDescStatus.Default.(string)
	// batch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batch.StatusValidator = batchDescStatus.Validators[0].(func(string) error)
	// batchDescTotalLabels is the schema descriptor for total_labels field.
	batchDescTotalLabels := batchFields[4].Descriptor()
	// batch.TotalLabelsValidator is a validator for the "total_labels" field. It is called by the builders before save.
	batch.TotalLabelsValidator = batchDescTotalLabels.Validators[0].(func(int) error)
	// batchDescProcessedCount is the schema descriptor for processed_count field.
	batchDescProcessedCount := batchFields[5].Descriptor()
	// batch.DefaultProcessedCount holds the default value on creation for the processed_count field.
	batch.DefaultProcessedCount = batchDescProcessedCount.Default.(int)
	// batch.ProcessedCountValidator is a validator for the "processed_count" field. It is called by the builders before save.
	batch.ProcessedCountValidator = batchDescProcessedCount.Validators[0].(func(int) error)
	// batchDescApprovedCount is the schema descriptor for approved_count field.
	batchDescApprovedCount := batchFields[6].Descriptor()
	// batch.DefaultApprovedCount holds the default value on creation for the approved_count field.
	batch.DefaultApprovedCount = batchDescApprovedCount.Default.(int)
	// batch.ApprovedCountValidator is a validator for the "approved_count" field. It is called by the builders before save.
	batch.ApprovedCountValidator = batchDescApprovedCount.Validators[0].(func(int) error)
	// batchDescConditionallyApprovedCount is the schema descriptor for conditionally_approved_count field.
	batchDescConditionallyApprovedCount := batchFields[7].Descriptor()
	// batch.DefaultConditionallyApprovedCount holds the default value on creation for the conditionally_approved_count field.
	batch.DefaultConditionallyApprovedCount = batchDescConditionallyApprovedCount.Default.(int)
	// batch.ConditionallyApprovedCountValidator is a validator for the "conditionally_approved_count" field. It is called by the builders before save.
	batch.ConditionallyApprovedCountValidator = batchDescConditionallyApprovedCount.Validators[0].(func(int) error)
	// batchDescRejectedCount is the schema descriptor for rejected_count field.
	batchDescRejectedCount := batchFields[8].Descriptor()
	// batch.DefaultRejectedCount holds the default value on creation for the rejected_count field.
	batch.DefaultRejectedCount = batchDescRejectedCount.Default.(int)
	// batch.RejectedCountValidator is a validator for the "rejected_count" field. It is called by the builders before save.
	batch.RejectedCountValidator = batchDescRejectedCount.Validators[0].(func(int) error)
	// batchDescNeedsCorrectionCount is the schema descriptor for needs_correction_count field.
	batchDescNeedsCorrectionCount := batchFields[9].Descriptor()
	// batch.DefaultNeedsCorrectionCount holds the default value on creation for the needs_correction_count field.
	batch.DefaultNeedsCorrectionCount = batchDescNeedsCorrectionCount.Default.(int)
	// batch.NeedsCorrectionCountValidator is a validator for the "needs_correction_count" field. It is called by the builders before save.
	batch.NeedsCorrectionCountValidator = batchDescNeedsCorrectionCount.Validators[0].(func(int) error)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[11].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescUpdatedAt is the schema descriptor for updated_at field.
	batchDescUpdatedAt := batchFields[12].Descriptor()
	// batch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	batch.DefaultUpdatedAt = batchDescUpdatedAt.Default.(func() time.Time)
	// batch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	batch.UpdateDefaultUpdatedAt = batchDescUpdatedAt.UpdateDefault.(func() time.Time)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.DefaultID holds the default value on creation for the id field.
	batch.DefaultID = batchDescID.Default.(func() uuid.UUID)
	labelFields := schema.Label{}.Fields()
	_ = labelFields
	// labelDescImagePath is the schema descriptor for image_path field.
	labelDescImagePath := labelFields[4].Descriptor()
	// label.ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	label.ImagePathValidator = labelDescImagePath.Validators[0].(func(string) error)
	// labelDescStatus is the schema descriptor for status field.
	labelDescStatus := labelFields[5].Descriptor()
	// label.DefaultStatus holds the default value on creation for the status field.
	label.DefaultStatus = labelDescStatus.Default.(string)
	// label.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	label.StatusValidator = labelDescStatus.Validators[0].(func(string) error)
	// labelDescDeadlineExpired is the schema descriptor for deadline_expired field.
	labelDescDeadlineExpired := labelFields[7].Descriptor()
	// label.DefaultDeadlineExpired holds the default value on creation for the deadline_expired field.
	label.DefaultDeadlineExpired = labelDescDeadlineExpired.Default.(bool)
	// labelDescCreatedAt is the schema descriptor for created_at field.
	labelDescCreatedAt := labelFields[14].Descriptor()
	// label.DefaultCreatedAt holds the default value on creation for the created_at field.
	label.DefaultCreatedAt = labelDescCreatedAt.Default.(func() time.Time)
	// labelDescUpdatedAt is the schema descriptor for updated_at field.
	labelDescUpdatedAt := labelFields[15].Descriptor()
	// label.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	label.DefaultUpdatedAt = labelDescUpdatedAt.Default.(func() time.Time)
	// label.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	label.UpdateDefaultUpdatedAt = labelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// labelDescID is the schema descriptor for id field.
	labelDescID := labelFields[0].Descriptor()
	// label.DefaultID holds the default value on creation for the id field.
	label.DefaultID = labelDescID.Default.(func() uuid.UUID)
}
