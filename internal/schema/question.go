package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/domain"
)

// Question belongs to an organization's question set. Each option carries
// per-frequency point weights; answer scoring reads this table.
type Question struct {
	ent.Schema
}

func (Question) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("org_id", uuid.UUID{}).
			Comment("FK → organizations.id"),

		field.Int("position").
			Min(1).
			Comment("Ordinal position within the organization's test"),

		field.Text("prompt").
			NotEmpty(),

		field.JSON("options", []domain.Option{}).
			Comment("Weighted options; each maps to per-frequency points"),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("questions").
			Unique().
			Required().
			Field("org_id"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "position").Unique(),
	}
}
