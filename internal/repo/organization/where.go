// Code generated by ent, DO NOT EDIT.

package organization

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldDeletedAt, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldSlug, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldName, v))
}

// BrandPrimary applies equality check predicate on the "brand_primary" field. It's identical to BrandPrimaryEQ.
func BrandPrimary(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldBrandPrimary, v))
}

// BrandSecondary applies equality check predicate on the "brand_secondary" field. It's identical to BrandSecondaryEQ.
func BrandSecondary(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldBrandSecondary, v))
}

// Framework applies equality check predicate on the "framework" field. It's identical to FrameworkEQ.
func Framework(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldFramework, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Organization {
	return predicate.Organization(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Organization {
	return predicate.Organization(sql.FieldNotNull(FieldDeletedAt))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContainsFold(FieldSlug, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContainsFold(FieldName, v))
}

// BrandPrimaryEQ applies the EQ predicate on the "brand_primary" field.
func BrandPrimaryEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldBrandPrimary, v))
}

// BrandPrimaryNEQ applies the NEQ predicate on the "brand_primary" field.
func BrandPrimaryNEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldBrandPrimary, v))
}

// BrandPrimaryIn applies the In predicate on the "brand_primary" field.
func BrandPrimaryIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldBrandPrimary, vs...))
}

// BrandPrimaryNotIn applies the NotIn predicate on the "brand_primary" field.
func BrandPrimaryNotIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldBrandPrimary, vs...))
}

// BrandPrimaryGT applies the GT predicate on the "brand_primary" field.
func BrandPrimaryGT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldBrandPrimary, v))
}

// BrandPrimaryGTE applies the GTE predicate on the "brand_primary" field.
func BrandPrimaryGTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldBrandPrimary, v))
}

// BrandPrimaryLT applies the LT predicate on the "brand_primary" field.
func BrandPrimaryLT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldBrandPrimary, v))
}

// BrandPrimaryLTE applies the LTE predicate on the "brand_primary" field.
func BrandPrimaryLTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldBrandPrimary, v))
}

// BrandPrimaryContains applies the Contains predicate on the "brand_primary" field.
func BrandPrimaryContains(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContains(FieldBrandPrimary, v))
}

// BrandPrimaryHasPrefix applies the HasPrefix predicate on the "brand_primary" field.
func BrandPrimaryHasPrefix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasPrefix(FieldBrandPrimary, v))
}

// BrandPrimaryHasSuffix applies the HasSuffix predicate on the "brand_primary" field.
func BrandPrimaryHasSuffix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasSuffix(FieldBrandPrimary, v))
}

// BrandPrimaryEqualFold applies the EqualFold predicate on the "brand_primary" field.
func BrandPrimaryEqualFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEqualFold(FieldBrandPrimary, v))
}

// BrandPrimaryContainsFold applies the ContainsFold predicate on the "brand_primary" field.
func BrandPrimaryContainsFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContainsFold(FieldBrandPrimary, v))
}

// BrandSecondaryEQ applies the EQ predicate on the "brand_secondary" field.
func BrandSecondaryEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldBrandSecondary, v))
}

// BrandSecondaryNEQ applies the NEQ predicate on the "brand_secondary" field.
func BrandSecondaryNEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldBrandSecondary, v))
}

// BrandSecondaryIn applies the In predicate on the "brand_secondary" field.
func BrandSecondaryIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldBrandSecondary, vs...))
}

// BrandSecondaryNotIn applies the NotIn predicate on the "brand_secondary" field.
func BrandSecondaryNotIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldBrandSecondary, vs...))
}

// BrandSecondaryGT applies the GT predicate on the "brand_secondary" field.
func BrandSecondaryGT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldBrandSecondary, v))
}

// BrandSecondaryGTE applies the GTE predicate on the "brand_secondary" field.
func BrandSecondaryGTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldBrandSecondary, v))
}

// BrandSecondaryLT applies the LT predicate on the "brand_secondary" field.
func BrandSecondaryLT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldBrandSecondary, v))
}

// BrandSecondaryLTE applies the LTE predicate on the "brand_secondary" field.
func BrandSecondaryLTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldBrandSecondary, v))
}

// BrandSecondaryContains applies the Contains predicate on the "brand_secondary" field.
func BrandSecondaryContains(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContains(FieldBrandSecondary, v))
}

// BrandSecondaryHasPrefix applies the HasPrefix predicate on the "brand_secondary" field.
func BrandSecondaryHasPrefix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasPrefix(FieldBrandSecondary, v))
}

// BrandSecondaryHasSuffix applies the HasSuffix predicate on the "brand_secondary" field.
func BrandSecondaryHasSuffix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasSuffix(FieldBrandSecondary, v))
}

// BrandSecondaryEqualFold applies the EqualFold predicate on the "brand_secondary" field.
func BrandSecondaryEqualFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEqualFold(FieldBrandSecondary, v))
}

// BrandSecondaryContainsFold applies the ContainsFold predicate on the "brand_secondary" field.
func BrandSecondaryContainsFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContainsFold(FieldBrandSecondary, v))
}

// FrameworkEQ applies the EQ predicate on the "framework" field.
func FrameworkEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldFramework, v))
}

// FrameworkNEQ applies the NEQ predicate on the "framework" field.
func FrameworkNEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldFramework, v))
}

// FrameworkIn applies the In predicate on the "framework" field.
func FrameworkIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldFramework, vs...))
}

// FrameworkNotIn applies the NotIn predicate on the "framework" field.
func FrameworkNotIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldFramework, vs...))
}

// FrameworkGT applies the GT predicate on the "framework" field.
func FrameworkGT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldFramework, v))
}

// FrameworkGTE applies the GTE predicate on the "framework" field.
func FrameworkGTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldFramework, v))
}

// FrameworkLT applies the LT predicate on the "framework" field.
func FrameworkLT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldFramework, v))
}

// FrameworkLTE applies the LTE predicate on the "framework" field.
func FrameworkLTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldFramework, v))
}

// FrameworkContains applies the Contains predicate on the "framework" field.
func FrameworkContains(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContains(FieldFramework, v))
}

// FrameworkHasPrefix applies the HasPrefix predicate on the "framework" field.
func FrameworkHasPrefix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasPrefix(FieldFramework, v))
}

// FrameworkHasSuffix applies the HasSuffix predicate on the "framework" field.
func FrameworkHasSuffix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasSuffix(FieldFramework, v))
}

// FrameworkEqualFold applies the EqualFold predicate on the "framework" field.
func FrameworkEqualFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEqualFold(FieldFramework, v))
}

// FrameworkContainsFold applies the ContainsFold predicate on the "framework" field.
func FrameworkContainsFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContainsFold(FieldFramework, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldIsActive, v))
}

// HasMembers applies the HasEdge predicate on the "members" edge.
func HasMembers() predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembersTable, MembersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembersWith applies the HasEdge predicate on the "members" edge with a given conditions (other predicates).
func HasMembersWith(preds ...predicate.OrgMember) predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := newMembersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTests applies the HasEdge predicate on the "tests" edge.
func HasTests() predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TestsTable, TestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestsWith applies the HasEdge predicate on the "tests" edge with a given conditions (other predicates).
func HasTestsWith(preds ...predicate.Test) predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := newTestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTakers applies the HasEdge predicate on the "takers" edge.
func HasTakers() predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TakersTable, TakersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTakersWith applies the HasEdge predicate on the "takers" edge with a given conditions (other predicates).
func HasTakersWith(preds ...predicate.Taker) predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := newTakersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Organization) predicate.Organization {
	return predicate.Organization(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Organization) predicate.Organization {
	return predicate.Organization(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Organization) predicate.Organization {
	return predicate.Organization(sql.NotPredicates(p))
}
