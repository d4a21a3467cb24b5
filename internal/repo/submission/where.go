// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOrgID, v))
}

// TakerID applies equality check predicate on the "taker_id" field. It's identical to TakerIDEQ.
func TakerID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTakerID, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTestID, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTotalPoints, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldOrgID, v))
}

// TakerIDEQ applies the EQ predicate on the "taker_id" field.
func TakerIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTakerID, v))
}

// TakerIDNEQ applies the NEQ predicate on the "taker_id" field.
func TakerIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTakerID, v))
}

// TakerIDIn applies the In predicate on the "taker_id" field.
func TakerIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTakerID, vs...))
}

// TakerIDNotIn applies the NotIn predicate on the "taker_id" field.
func TakerIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTakerID, vs...))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldTestID, v))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldAnswers))
}

// FrequencyTotalsIsNil applies the IsNil predicate on the "frequency_totals" field.
func FrequencyTotalsIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldFrequencyTotals))
}

// FrequencyTotalsNotNil applies the NotNil predicate on the "frequency_totals" field.
func FrequencyTotalsNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldFrequencyTotals))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldTotalPoints, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldVersion, v))
}

// HasTaker applies the HasEdge predicate on the "taker" edge.
func HasTaker() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TakerTable, TakerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTakerWith applies the HasEdge predicate on the "taker" edge with a given conditions (other predicates).
func HasTakerWith(preds ...predicate.Taker) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newTakerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
