// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicantsColumns holds the columns for the "applicants" table.
	ApplicantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ApplicantsTable holds the schema information for the "applicants" table.
	ApplicantsTable = &schema.Table{
		Name:       "applicants",
		Columns:    ApplicantsColumns,
		PrimaryKey: []*schema.Column{ApplicantsColumns[0]},
	}
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "total_labels", Type: field.TypeInt},
		{Name: "processed_count", Type: field.TypeInt, Default: 0},
		{Name: "approved_count", Type: field.TypeInt, Default: 0},
		{Name: "conditionally_approved_count", Type: field.TypeInt, Default: 0},
		{Name: "rejected_count", Type: field.TypeInt, Default: 0},
		{Name: "needs_correction_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "applicant_id", Type: field.TypeUUID},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "batches_applicants_batches",
				Columns:    []*schema.Column{BatchesColumns[12]},
				RefColumns: []*schema.Column{ApplicantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "batch_applicant_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[12], BatchesColumns[2], BatchesColumns[10]},
			},
		},
	}
	// LabelsColumns holds the columns for the "labels" table.
	LabelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "assigned_specialist", Type: field.TypeString, Nullable: true},
		{Name: "image_path", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "correction_deadline", Type: field.TypeTime, Nullable: true},
		{Name: "deadline_expired", Type: field.TypeBool, Default: false},
		{Name: "brand_name", Type: field.TypeString, Nullable: true},
		{Name: "beverage_type", Type: field.TypeString, Nullable: true},
		{Name: "alcohol_content", Type: field.TypeFloat64, Nullable: true},
		{Name: "overall_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "applicant_id", Type: field.TypeUUID, Nullable: true},
		{Name: "batch_id", Type: field.TypeUUID, Nullable: true},
	}
	// LabelsTable holds the schema information for the "labels" table.
	LabelsTable = &schema.Table{
		Name:       "labels",
		Columns:    LabelsColumns,
		PrimaryKey: []*schema.Column{LabelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "labels_applicants_labels",
				Columns:    []*schema.Column{LabelsColumns[14]},
				RefColumns: []*schema.Column{ApplicantsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "labels_batches_labels",
				Columns:    []*schema.Column{LabelsColumns[15]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "label_batch_id_status",
				Unique:  false,
				Columns: []*schema.Column{LabelsColumns[15], LabelsColumns[3]},
			},
			{
				Name:    "label_applicant_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{LabelsColumns[14], LabelsColumns[3], LabelsColumns[12]},
			},
			{
				Name:    "label_status_correction_deadline",
				Unique:  false,
				Columns: []*schema.Column{LabelsColumns[3], LabelsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicantsTable,
		BatchesTable,
		LabelsTable,
	}
)

func init() {
	ApplicantsTable.Annotation = &entsql.Annotation{
		Table: "applicants",
	}
	BatchesTable.ForeignKeys[0].RefTable = ApplicantsTable
	BatchesTable.Annotation = &entsql.Annotation{
		Table: "batches",
	}
	LabelsTable.ForeignKeys[0].RefTable = ApplicantsTable
	LabelsTable.ForeignKeys[1].RefTable = BatchesTable
	LabelsTable.Annotation = &entsql.Annotation{
		Table: "labels",
	}
}
