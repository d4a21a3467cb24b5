// Code generated by ent, DO NOT EDIT.

package testresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldCreatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldOrgID, v))
}

// TakerID applies equality check predicate on the "taker_id" field. It's identical to TakerIDEQ.
func TakerID(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTakerID, v))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldSubmissionID, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTotalPoints, v))
}

// ProfileCode applies equality check predicate on the "profile_code" field. It's identical to ProfileCodeEQ.
func ProfileCode(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldProfileCode, v))
}

// ProfileName applies equality check predicate on the "profile_name" field. It's identical to ProfileNameEQ.
func ProfileName(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldProfileName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldCreatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldOrgID, v))
}

// TakerIDEQ applies the EQ predicate on the "taker_id" field.
func TakerIDEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTakerID, v))
}

// TakerIDNEQ applies the NEQ predicate on the "taker_id" field.
func TakerIDNEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldTakerID, v))
}

// TakerIDIn applies the In predicate on the "taker_id" field.
func TakerIDIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldTakerID, vs...))
}

// TakerIDNotIn applies the NotIn predicate on the "taker_id" field.
func TakerIDNotIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldTakerID, vs...))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// SubmissionIDGT applies the GT predicate on the "submission_id" field.
func SubmissionIDGT(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldSubmissionID, v))
}

// SubmissionIDGTE applies the GTE predicate on the "submission_id" field.
func SubmissionIDGTE(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldSubmissionID, v))
}

// SubmissionIDLT applies the LT predicate on the "submission_id" field.
func SubmissionIDLT(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldSubmissionID, v))
}

// SubmissionIDLTE applies the LTE predicate on the "submission_id" field.
func SubmissionIDLTE(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldSubmissionID, v))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldTotalPoints, v))
}

// ProfileCodeEQ applies the EQ predicate on the "profile_code" field.
func ProfileCodeEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldProfileCode, v))
}

// ProfileCodeNEQ applies the NEQ predicate on the "profile_code" field.
func ProfileCodeNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldProfileCode, v))
}

// ProfileCodeIn applies the In predicate on the "profile_code" field.
func ProfileCodeIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldProfileCode, vs...))
}

// ProfileCodeNotIn applies the NotIn predicate on the "profile_code" field.
func ProfileCodeNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldProfileCode, vs...))
}

// ProfileCodeGT applies the GT predicate on the "profile_code" field.
func ProfileCodeGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldProfileCode, v))
}

// ProfileCodeGTE applies the GTE predicate on the "profile_code" field.
func ProfileCodeGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldProfileCode, v))
}

// ProfileCodeLT applies the LT predicate on the "profile_code" field.
func ProfileCodeLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldProfileCode, v))
}

// ProfileCodeLTE applies the LTE predicate on the "profile_code" field.
func ProfileCodeLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldProfileCode, v))
}

// ProfileCodeContains applies the Contains predicate on the "profile_code" field.
func ProfileCodeContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldProfileCode, v))
}

// ProfileCodeHasPrefix applies the HasPrefix predicate on the "profile_code" field.
func ProfileCodeHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldProfileCode, v))
}

// ProfileCodeHasSuffix applies the HasSuffix predicate on the "profile_code" field.
func ProfileCodeHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldProfileCode, v))
}

// ProfileCodeEqualFold applies the EqualFold predicate on the "profile_code" field.
func ProfileCodeEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldProfileCode, v))
}

// ProfileCodeContainsFold applies the ContainsFold predicate on the "profile_code" field.
func ProfileCodeContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldProfileCode, v))
}

// ProfileNameEQ applies the EQ predicate on the "profile_name" field.
func ProfileNameEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldProfileName, v))
}

// ProfileNameNEQ applies the NEQ predicate on the "profile_name" field.
func ProfileNameNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldProfileName, v))
}

// ProfileNameIn applies the In predicate on the "profile_name" field.
func ProfileNameIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldProfileName, vs...))
}

// ProfileNameNotIn applies the NotIn predicate on the "profile_name" field.
func ProfileNameNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldProfileName, vs...))
}

// ProfileNameGT applies the GT predicate on the "profile_name" field.
func ProfileNameGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldProfileName, v))
}

// ProfileNameGTE applies the GTE predicate on the "profile_name" field.
func ProfileNameGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldProfileName, v))
}

// ProfileNameLT applies the LT predicate on the "profile_name" field.
func ProfileNameLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldProfileName, v))
}

// ProfileNameLTE applies the LTE predicate on the "profile_name" field.
func ProfileNameLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldProfileName, v))
}

// ProfileNameContains applies the Contains predicate on the "profile_name" field.
func ProfileNameContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldProfileName, v))
}

// ProfileNameHasPrefix applies the HasPrefix predicate on the "profile_name" field.
func ProfileNameHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldProfileName, v))
}

// ProfileNameHasSuffix applies the HasSuffix predicate on the "profile_name" field.
func ProfileNameHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldProfileName, v))
}

// ProfileNameEqualFold applies the EqualFold predicate on the "profile_name" field.
func ProfileNameEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldProfileName, v))
}

// ProfileNameContainsFold applies the ContainsFold predicate on the "profile_name" field.
func ProfileNameContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldProfileName, v))
}

// HasTaker applies the HasEdge predicate on the "taker" edge.
func HasTaker() predicate.TestResult {
	return predicate.TestResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TakerTable, TakerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTakerWith applies the HasEdge predicate on the "taker" edge with a given conditions (other predicates).
func HasTakerWith(preds ...predicate.Taker) predicate.TestResult {
	return predicate.TestResult(func(s *sql.Selector) {
		step := newTakerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.NotPredicates(p))
}
