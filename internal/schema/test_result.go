package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TestResult is the derived, per-taker scoring outcome. Written exactly once
// when a submission completes; report assembly only reads it.
type TestResult struct {
	ent.Schema
}

func (TestResult) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (TestResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("org_id", uuid.UUID{}).
			Comment("FK → organizations.id"),

		field.UUID("taker_id", uuid.UUID{}).
			Comment("FK → takers.id"),

		field.UUID("submission_id", uuid.UUID{}).
			Unique().
			Comment("FK → submissions.id"),

		field.JSON("frequency_totals", map[string]int{}),

		field.Int("total_points").
			Default(0),

		field.String("profile_code").
			MaxLen(50).
			NotEmpty(),

		field.String("profile_name").
			MaxLen(255).
			NotEmpty(),
	}
}

func (TestResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("taker", Taker.Type).
			Ref("results").
			Unique().
			Required().
			Field("taker_id"),
	}
}

func (TestResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id"),
		index.Fields("taker_id"),
	}
}
