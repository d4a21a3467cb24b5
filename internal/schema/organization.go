package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Organization is a tenant: every other entity is scoped to exactly one.
type Organization struct {
	ent.Schema
}

func (Organization) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Immutable().
			Comment("URL-safe tenant identifier, e.g. 'acme-coaching'"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("brand_primary").
			MaxLen(7).
			Default("#2563eb").
			Comment("Hex color used for report headings"),

		field.String("brand_secondary").
			MaxLen(7).
			Default("#6b7280"),

		field.String("framework").
			MaxLen(50).
			Default("resonance").
			Comment("Key into the bundled scoring framework catalog"),

		field.Bool("is_active").
			Default(true),
	}
}

func (Organization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("members", OrgMember.Type),
		edge.To("questions", Question.Type),
		edge.To("tests", Test.Type),
		edge.To("takers", Taker.Type),
	}
}

func (Organization) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
	}
}
