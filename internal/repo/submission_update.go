// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/domain"
	"github.com/resonara/resonara_backend/internal/repo/predicate"
	"github.com/resonara/resonara_backend/internal/repo/submission"
	"github.com/resonara/resonara_backend/internal/repo/taker"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *SubmissionUpdate) SetOrgID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableOrgID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTakerID sets the "taker_id" field.
func (_u *SubmissionUpdate) SetTakerID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetTakerID(v)
	return _u
}

// SetNillableTakerID sets the "taker_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTakerID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetTakerID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *SubmissionUpdate) SetTestID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTestID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SubmissionUpdate) SetAnswers(v []domain.Answer) *SubmissionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *SubmissionUpdate) AppendAnswers(v []domain.Answer) *SubmissionUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *SubmissionUpdate) ClearAnswers() *SubmissionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetFrequencyTotals sets the "frequency_totals" field.
func (_u *SubmissionUpdate) SetFrequencyTotals(v map[string]int) *SubmissionUpdate {
	_u.mutation.SetFrequencyTotals(v)
	return _u
}

// ClearFrequencyTotals clears the value of the "frequency_totals" field.
func (_u *SubmissionUpdate) ClearFrequencyTotals() *SubmissionUpdate {
	_u.mutation.ClearFrequencyTotals()
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *SubmissionUpdate) SetTotalPoints(v int) *SubmissionUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTotalPoints(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *SubmissionUpdate) AddTotalPoints(v int) *SubmissionUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v submission.Status) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *submission.Status) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SubmissionUpdate) SetVersion(v int) *SubmissionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableVersion(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SubmissionUpdate) AddVersion(v int) *SubmissionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTaker sets the "taker" edge to the Taker entity.
func (_u *SubmissionUpdate) SetTaker(v *Taker) *SubmissionUpdate {
	return _u.SetTakerID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearTaker clears the "taker" edge to the Taker entity.
func (_u *SubmissionUpdate) ClearTaker() *SubmissionUpdate {
	_u.mutation.ClearTaker()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _u.mutation.TakerCleared() && len(_u.mutation.TakerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Submission.taker"`)
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(submission.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(submission.FieldTestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(submission.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(submission.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.FrequencyTotals(); ok {
		_spec.SetField(submission.FieldFrequencyTotals, field.TypeJSON, value)
	}
	if _u.mutation.FrequencyTotalsCleared() {
		_spec.ClearField(submission.FieldFrequencyTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(submission.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(submission.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(submission.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(submission.FieldVersion, field.TypeInt, value)
	}
	if _u.mutation.TakerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.TakerTable,
			Columns: []string{submission.TakerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TakerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.TakerTable,
			Columns: []string{submission.TakerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *SubmissionUpdateOne) SetOrgID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableOrgID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTakerID sets the "taker_id" field.
func (_u *SubmissionUpdateOne) SetTakerID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetTakerID(v)
	return _u
}

// SetNillableTakerID sets the "taker_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTakerID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTakerID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *SubmissionUpdateOne) SetTestID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTestID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SubmissionUpdateOne) SetAnswers(v []domain.Answer) *SubmissionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *SubmissionUpdateOne) AppendAnswers(v []domain.Answer) *SubmissionUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *SubmissionUpdateOne) ClearAnswers() *SubmissionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetFrequencyTotals sets the "frequency_totals" field.
func (_u *SubmissionUpdateOne) SetFrequencyTotals(v map[string]int) *SubmissionUpdateOne {
	_u.mutation.SetFrequencyTotals(v)
	return _u
}

// ClearFrequencyTotals clears the value of the "frequency_totals" field.
func (_u *SubmissionUpdateOne) ClearFrequencyTotals() *SubmissionUpdateOne {
	_u.mutation.ClearFrequencyTotals()
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *SubmissionUpdateOne) SetTotalPoints(v int) *SubmissionUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTotalPoints(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *SubmissionUpdateOne) AddTotalPoints(v int) *SubmissionUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v submission.Status) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *submission.Status) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SubmissionUpdateOne) SetVersion(v int) *SubmissionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableVersion(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SubmissionUpdateOne) AddVersion(v int) *SubmissionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTaker sets the "taker" edge to the Taker entity.
func (_u *SubmissionUpdateOne) SetTaker(v *Taker) *SubmissionUpdateOne {
	return _u.SetTakerID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearTaker clears the "taker" edge to the Taker entity.
func (_u *SubmissionUpdateOne) ClearTaker() *SubmissionUpdateOne {
	_u.mutation.ClearTaker()
	return _u
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _u.mutation.TakerCleared() && len(_u.mutation.TakerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Submission.taker"`)
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(submission.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(submission.FieldTestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(submission.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(submission.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.FrequencyTotals(); ok {
		_spec.SetField(submission.FieldFrequencyTotals, field.TypeJSON, value)
	}
	if _u.mutation.FrequencyTotalsCleared() {
		_spec.ClearField(submission.FieldFrequencyTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(submission.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(submission.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(submission.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(submission.FieldVersion, field.TypeInt, value)
	}
	if _u.mutation.TakerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.TakerTable,
			Columns: []string{submission.TakerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TakerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.TakerTable,
			Columns: []string{submission.TakerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
