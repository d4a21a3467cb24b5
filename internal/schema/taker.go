package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Taker is an individual completing a test within one organization.
type Taker struct {
	ent.Schema
}

func (Taker) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Taker) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("org_id", uuid.UUID{}).
			Comment("FK → organizations.id"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("email").
			MaxLen(255).
			Optional().
			Nillable(),

		field.String("phone").
			MaxLen(20).
			Optional().
			Nillable().
			Comment("E.164, normalized on write"),
	}
}

func (Taker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("takers").
			Unique().
			Required().
			Field("org_id"),
		edge.To("submissions", Submission.Type),
		edge.To("results", TestResult.Type),
	}
}

func (Taker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id"),
	}
}
