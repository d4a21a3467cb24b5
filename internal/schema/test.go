package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Test is a named test definition inside one organization. Its questions are
// the organization's question set; question_count is denormalized so the
// submission recorder can detect completion without an extra count query.
type Test struct {
	ent.Schema
}

func (Test) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Test) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("org_id", uuid.UUID{}).
			Comment("FK → organizations.id"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("question_count").
			Min(0).
			Default(0),

		field.Bool("is_active").
			Default(true),
	}
}

func (Test) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("tests").
			Unique().
			Required().
			Field("org_id"),
		edge.To("links", TestLink.Type),
	}
}

func (Test) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id"),
	}
}
