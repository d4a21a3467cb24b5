package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ReportDraft holds organization-authored narrative overrides keyed by
// profile code. Sections are free-form heading→body pairs; no schema is
// enforced on the content.
type ReportDraft struct {
	ent.Schema
}

func (ReportDraft) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ReportDraft) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("org_id", uuid.UUID{}).
			Comment("FK → organizations.id"),

		field.String("profile_code").
			MaxLen(50).
			NotEmpty(),

		field.JSON("sections", map[string]string{}).
			Optional(),
	}
}

func (ReportDraft) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "profile_code").Unique(),
	}
}
