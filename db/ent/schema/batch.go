package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/db/ent/schema/utils"
)

type Batch struct{ ent.Schema }

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batches"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("applicant_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("status").Default(string(constants.BatchStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.BatchStatusPending),
				string(constants.BatchStatusProcessing),
				string(constants.BatchStatusCompleted),
				string(constants.BatchStatusFailed),
			)),
		// total_labels is fixed at submission time; counters only grow until
		// the batch reaches a terminal status.
		field.Int("total_labels").NonNegative(),
		field.Int("processed_count").Default(0).NonNegative(),
		field.Int("approved_count").Default(0).NonNegative(),
		field.Int("conditionally_approved_count").Default(0).NonNegative(),
		field.Int("rejected_count").Default(0).NonNegative(),
		field.Int("needs_correction_count").Default(0).NonNegative(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Batch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("applicant", Applicant.Type).
			Ref("batches").
			Field("applicant_id").
			Unique().
			Required(),
		edge.To("labels", Label.Type),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("applicant_id", "status", "created_at"),
	}
}
