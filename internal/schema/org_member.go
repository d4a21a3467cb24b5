package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OrgMember links a portal user to an organization with a role.
type OrgMember struct {
	ent.Schema
}

func (OrgMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (OrgMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("org_id", uuid.UUID{}).
			Comment("FK → organizations.id"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Enum("role").
			Values("owner", "admin", "viewer").
			Default("viewer"),

		field.Bool("is_active").
			Default(true),
	}
}

func (OrgMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("members").
			Unique().
			Required().
			Field("org_id"),
		edge.From("user", User.Type).
			Ref("memberships").
			Unique().
			Required().
			Field("user_id"),
	}
}

func (OrgMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "user_id").Unique(),
	}
}
