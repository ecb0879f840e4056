package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/db/ent/schema/utils"
)

type Label struct{ ent.Schema }

func (Label) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "labels"},
	}
}

func (Label) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs; applicant is absent for specialist-entered labels
		field.UUID("applicant_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("batch_id", uuid.UUID{}).Optional().Nillable(),
		field.String("assigned_specialist").Optional().Nillable(),
		field.String("image_path").NotEmpty(),
		field.String("status").Default(string(constants.LabelStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.LabelStatusPending),
				string(constants.LabelStatusProcessing),
				string(constants.LabelStatusPendingReview),
				string(constants.LabelStatusApproved),
				string(constants.LabelStatusConditionallyApproved),
				string(constants.LabelStatusNeedsCorrection),
				string(constants.LabelStatusRejected),
			)),
		// non-nil only after a conditionally_approved / needs_correction
		// decision computed a window
		field.Time("correction_deadline").Optional().Nillable(),
		// set by the lazy write-back once a deadline transition has been
		// applied; never the sole expiry signal
		field.Bool("deadline_expired").Default(false),
		field.String("brand_name").Optional().Nillable(),
		field.String("beverage_type").Optional().Nillable(),
		field.Float("alcohol_content").Optional().Nillable(),
		field.Float32("overall_confidence").Optional().Nillable(),
		field.JSON("extracted_json", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Label) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("applicant", Applicant.Type).
			Ref("labels").
			Field("applicant_id").
			Unique(),
		edge.From("batch", Batch.Type).
			Ref("labels").
			Field("batch_id").
			Unique(),
	}
}

func (Label) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "status"),
		index.Fields("applicant_id", "status", "created_at"),
		index.Fields("status", "correction_deadline"),
	}
}
