// Code generated by ent, DO NOT EDIT.

package reportdraft

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldOrgID, v))
}

// ProfileCode applies equality check predicate on the "profile_code" field. It's identical to ProfileCodeEQ.
func ProfileCode(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldProfileCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v uuid.UUID) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLTE(FieldOrgID, v))
}

// ProfileCodeEQ applies the EQ predicate on the "profile_code" field.
func ProfileCodeEQ(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEQ(FieldProfileCode, v))
}

// ProfileCodeNEQ applies the NEQ predicate on the "profile_code" field.
func ProfileCodeNEQ(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNEQ(FieldProfileCode, v))
}

// ProfileCodeIn applies the In predicate on the "profile_code" field.
func ProfileCodeIn(vs ...string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldIn(FieldProfileCode, vs...))
}

// ProfileCodeNotIn applies the NotIn predicate on the "profile_code" field.
func ProfileCodeNotIn(vs ...string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNotIn(FieldProfileCode, vs...))
}

// ProfileCodeGT applies the GT predicate on the "profile_code" field.
func ProfileCodeGT(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGT(FieldProfileCode, v))
}

// ProfileCodeGTE applies the GTE predicate on the "profile_code" field.
func ProfileCodeGTE(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldGTE(FieldProfileCode, v))
}

// ProfileCodeLT applies the LT predicate on the "profile_code" field.
func ProfileCodeLT(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLT(FieldProfileCode, v))
}

// ProfileCodeLTE applies the LTE predicate on the "profile_code" field.
func ProfileCodeLTE(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldLTE(FieldProfileCode, v))
}

// ProfileCodeContains applies the Contains predicate on the "profile_code" field.
func ProfileCodeContains(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldContains(FieldProfileCode, v))
}

// ProfileCodeHasPrefix applies the HasPrefix predicate on the "profile_code" field.
func ProfileCodeHasPrefix(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldHasPrefix(FieldProfileCode, v))
}

// ProfileCodeHasSuffix applies the HasSuffix predicate on the "profile_code" field.
func ProfileCodeHasSuffix(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldHasSuffix(FieldProfileCode, v))
}

// ProfileCodeEqualFold applies the EqualFold predicate on the "profile_code" field.
func ProfileCodeEqualFold(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldEqualFold(FieldProfileCode, v))
}

// ProfileCodeContainsFold applies the ContainsFold predicate on the "profile_code" field.
func ProfileCodeContainsFold(v string) predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldContainsFold(FieldProfileCode, v))
}

// SectionsIsNil applies the IsNil predicate on the "sections" field.
func SectionsIsNil() predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldIsNull(FieldSections))
}

// SectionsNotNil applies the NotNil predicate on the "sections" field.
func SectionsNotNil() predicate.ReportDraft {
	return predicate.ReportDraft(sql.FieldNotNull(FieldSections))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportDraft) predicate.ReportDraft {
	return predicate.ReportDraft(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportDraft) predicate.ReportDraft {
	return predicate.ReportDraft(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportDraft) predicate.ReportDraft {
	return predicate.ReportDraft(sql.NotPredicates(p))
}
