// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/repo/predicate"
	"github.com/resonara/resonara_backend/internal/repo/taker"
	"github.com/resonara/resonara_backend/internal/repo/testresult"
)

// TestResultUpdate is the builder for updating TestResult entities.
type TestResultUpdate struct {
	config
	hooks    []Hook
	mutation *TestResultMutation
}

// Where appends a list predicates to the TestResultUpdate builder.
func (_u *TestResultUpdate) Where(ps ...predicate.TestResult) *TestResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *TestResultUpdate) SetOrgID(v uuid.UUID) *TestResultUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableOrgID(v *uuid.UUID) *TestResultUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTakerID sets the "taker_id" field.
func (_u *TestResultUpdate) SetTakerID(v uuid.UUID) *TestResultUpdate {
	_u.mutation.SetTakerID(v)
	return _u
}

// SetNillableTakerID sets the "taker_id" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableTakerID(v *uuid.UUID) *TestResultUpdate {
	if v != nil {
		_u.SetTakerID(*v)
	}
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *TestResultUpdate) SetSubmissionID(v uuid.UUID) *TestResultUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableSubmissionID(v *uuid.UUID) *TestResultUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetFrequencyTotals sets the "frequency_totals" field.
func (_u *TestResultUpdate) SetFrequencyTotals(v map[string]int) *TestResultUpdate {
	_u.mutation.SetFrequencyTotals(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *TestResultUpdate) SetTotalPoints(v int) *TestResultUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableTotalPoints(v *int) *TestResultUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *TestResultUpdate) AddTotalPoints(v int) *TestResultUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetProfileCode sets the "profile_code" field.
func (_u *TestResultUpdate) SetProfileCode(v string) *TestResultUpdate {
	_u.mutation.SetProfileCode(v)
	return _u
}

// SetNillableProfileCode sets the "profile_code" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableProfileCode(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetProfileCode(*v)
	}
	return _u
}

// SetProfileName sets the "profile_name" field.
func (_u *TestResultUpdate) SetProfileName(v string) *TestResultUpdate {
	_u.mutation.SetProfileName(v)
	return _u
}

// SetNillableProfileName sets the "profile_name" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableProfileName(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetProfileName(*v)
	}
	return _u
}

// SetTaker sets the "taker" edge to the Taker entity.
func (_u *TestResultUpdate) SetTaker(v *Taker) *TestResultUpdate {
	return _u.SetTakerID(v.ID)
}

// Mutation returns the TestResultMutation object of the builder.
func (_u *TestResultUpdate) Mutation() *TestResultMutation {
	return _u.mutation
}

// ClearTaker clears the "taker" edge to the Taker entity.
func (_u *TestResultUpdate) ClearTaker() *TestResultUpdate {
	_u.mutation.ClearTaker()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestResultUpdate) check() error {
	if v, ok := _u.mutation.ProfileCode(); ok {
		if err := testresult.ProfileCodeValidator(v); err != nil {
			return &ValidationError{Name: "profile_code", err: fmt.Errorf(`repo: validator failed for field "TestResult.profile_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileName(); ok {
		if err := testresult.ProfileNameValidator(v); err != nil {
			return &ValidationError{Name: "profile_name", err: fmt.Errorf(`repo: validator failed for field "TestResult.profile_name": %w`, err)}
		}
	}
	if _u.mutation.TakerCleared() && len(_u.mutation.TakerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TestResult.taker"`)
	}
	return nil
}

func (_u *TestResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testresult.Table, testresult.Columns, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(testresult.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(testresult.FieldSubmissionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FrequencyTotals(); ok {
		_spec.SetField(testresult.FieldFrequencyTotals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(testresult.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(testresult.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProfileCode(); ok {
		_spec.SetField(testresult.FieldProfileCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileName(); ok {
		_spec.SetField(testresult.FieldProfileName, field.TypeString, value)
	}
	if _u.mutation.TakerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testresult.TakerTable,
			Columns: []string{testresult.TakerColumn},
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
			Table:   testresult.TakerTable,
			Columns: []string{testresult.TakerColumn},
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
			err = &NotFoundError{testresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestResultUpdateOne is the builder for updating a single TestResult entity.
type TestResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestResultMutation
}

// SetOrgID sets the "org_id" field.
func (_u *TestResultUpdateOne) SetOrgID(v uuid.UUID) *TestResultUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableOrgID(v *uuid.UUID) *TestResultUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTakerID sets the "taker_id" field.
func (_u *TestResultUpdateOne) SetTakerID(v uuid.UUID) *TestResultUpdateOne {
	_u.mutation.SetTakerID(v)
	return _u
}

// SetNillableTakerID sets the "taker_id" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableTakerID(v *uuid.UUID) *TestResultUpdateOne {
	if v != nil {
		_u.SetTakerID(*v)
	}
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *TestResultUpdateOne) SetSubmissionID(v uuid.UUID) *TestResultUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableSubmissionID(v *uuid.UUID) *TestResultUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetFrequencyTotals sets the "frequency_totals" field.
func (_u *TestResultUpdateOne) SetFrequencyTotals(v map[string]int) *TestResultUpdateOne {
	_u.mutation.SetFrequencyTotals(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *TestResultUpdateOne) SetTotalPoints(v int) *TestResultUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableTotalPoints(v *int) *TestResultUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *TestResultUpdateOne) AddTotalPoints(v int) *TestResultUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetProfileCode sets the "profile_code" field.
func (_u *TestResultUpdateOne) SetProfileCode(v string) *TestResultUpdateOne {
	_u.mutation.SetProfileCode(v)
	return _u
}

// SetNillableProfileCode sets the "profile_code" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableProfileCode(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetProfileCode(*v)
	}
	return _u
}

// SetProfileName sets the "profile_name" field.
func (_u *TestResultUpdateOne) SetProfileName(v string) *TestResultUpdateOne {
	_u.mutation.SetProfileName(v)
	return _u
}

// SetNillableProfileName sets the "profile_name" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableProfileName(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetProfileName(*v)
	}
	return _u
}

// SetTaker sets the "taker" edge to the Taker entity.
func (_u *TestResultUpdateOne) SetTaker(v *Taker) *TestResultUpdateOne {
	return _u.SetTakerID(v.ID)
}

// Mutation returns the TestResultMutation object of the builder.
func (_u *TestResultUpdateOne) Mutation() *TestResultMutation {
	return _u.mutation
}

// ClearTaker clears the "taker" edge to the Taker entity.
func (_u *TestResultUpdateOne) ClearTaker() *TestResultUpdateOne {
	_u.mutation.ClearTaker()
	return _u
}

// Where appends a list predicates to the TestResultUpdate builder.
func (_u *TestResultUpdateOne) Where(ps ...predicate.TestResult) *TestResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestResultUpdateOne) Select(field string, fields ...string) *TestResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestResult entity.
func (_u *TestResultUpdateOne) Save(ctx context.Context) (*TestResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestResultUpdateOne) SaveX(ctx context.Context) *TestResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestResultUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileCode(); ok {
		if err := testresult.ProfileCodeValidator(v); err != nil {
			return &ValidationError{Name: "profile_code", err: fmt.Errorf(`repo: validator failed for field "TestResult.profile_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileName(); ok {
		if err := testresult.ProfileNameValidator(v); err != nil {
			return &ValidationError{Name: "profile_name", err: fmt.Errorf(`repo: validator failed for field "TestResult.profile_name": %w`, err)}
		}
	}
	if _u.mutation.TakerCleared() && len(_u.mutation.TakerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TestResult.taker"`)
	}
	return nil
}

func (_u *TestResultUpdateOne) sqlSave(ctx context.Context) (_node *TestResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testresult.Table, testresult.Columns, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TestResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testresult.FieldID)
		for _, f := range fields {
			if !testresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != testresult.FieldID {
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
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(testresult.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(testresult.FieldSubmissionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FrequencyTotals(); ok {
		_spec.SetField(testresult.FieldFrequencyTotals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(testresult.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(testresult.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProfileCode(); ok {
		_spec.SetField(testresult.FieldProfileCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileName(); ok {
		_spec.SetField(testresult.FieldProfileName, field.TypeString, value)
	}
	if _u.mutation.TakerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testresult.TakerTable,
			Columns: []string{testresult.TakerColumn},
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
			Table:   testresult.TakerTable,
			Columns: []string{testresult.TakerColumn},
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
	_node = &TestResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
