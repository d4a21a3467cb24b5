package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/domain"
)

// Submission accumulates a taker's answers and running totals. The version
// field is the optimistic-concurrency token guarding the append; two
// concurrent answer writes for the same submission cannot both succeed
// against the same version.
type Submission struct {
	ent.Schema
}

func (Submission) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("org_id", uuid.UUID{}).
			Comment("FK → organizations.id"),

		field.UUID("taker_id", uuid.UUID{}).
			Comment("FK → takers.id"),

		field.UUID("test_id", uuid.UUID{}).
			Comment("FK → tests.id"),

		field.JSON("answers", []domain.Answer{}).
			Optional(),

		field.JSON("frequency_totals", map[string]int{}).
			Optional(),

		field.Int("total_points").
			Default(0),

		field.Enum("status").
			Values("in_progress", "completed").
			Default("in_progress"),

		field.Int("version").
			Default(0).
			Comment("Bumped on every answer append"),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("taker", Taker.Type).
			Ref("submissions").
			Unique().
			Required().
			Field("taker_id"),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id"),
		index.Fields("taker_id"),
	}
}
