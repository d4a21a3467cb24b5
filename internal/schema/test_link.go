package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TestLink is a shareable capability token granting anonymous access to take
// one test. Deleting the row invalidates the token.
type TestLink struct {
	ent.Schema
}

func (TestLink) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (TestLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("org_id", uuid.UUID{}).
			Comment("FK → organizations.id"),

		field.UUID("test_id", uuid.UUID{}).
			Comment("FK → tests.id"),

		field.String("token").
			MaxLen(32).
			NotEmpty().
			Unique().
			Immutable(),

		field.Int("max_uses").
			Optional().
			Nillable().
			Min(1).
			Comment("NULL means unlimited"),

		field.Int("use_count").
			Default(0).
			Min(0),
	}
}

func (TestLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("test", Test.Type).
			Ref("links").
			Unique().
			Required().
			Field("test_id"),
	}
}

func (TestLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("token"),
		index.Fields("org_id"),
	}
}
