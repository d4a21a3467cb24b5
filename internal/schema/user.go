package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a portal (admin) account. Takers are not users: they reach tests
// anonymously through links and never authenticate.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			MaxLen(255).
			NotEmpty().
			Unique(),

		field.String("password_hash").
			Sensitive().
			NotEmpty(),

		field.String("name").
			MaxLen(255).
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("memberships", OrgMember.Type),
	}
}
