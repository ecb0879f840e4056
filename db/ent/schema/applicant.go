package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Applicant struct{ ent.Schema }

func (Applicant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applicants"},
	}
}

func (Applicant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty().Unique(),
		field.String("company").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Applicant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("labels", Label.Type),
		edge.To("batches", Batch.Type),
	}
}
