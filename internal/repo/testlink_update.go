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
	"github.com/resonara/resonara_backend/internal/repo/test"
	"github.com/resonara/resonara_backend/internal/repo/testlink"
)

// TestLinkUpdate is the builder for updating TestLink entities.
type TestLinkUpdate struct {
	config
	hooks    []Hook
	mutation *TestLinkMutation
}

// Where appends a list predicates to the TestLinkUpdate builder.
func (_u *TestLinkUpdate) Where(ps ...predicate.TestLink) *TestLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *TestLinkUpdate) SetOrgID(v uuid.UUID) *TestLinkUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TestLinkUpdate) SetNillableOrgID(v *uuid.UUID) *TestLinkUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *TestLinkUpdate) SetTestID(v uuid.UUID) *TestLinkUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestLinkUpdate) SetNillableTestID(v *uuid.UUID) *TestLinkUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *TestLinkUpdate) SetMaxUses(v int) *TestLinkUpdate {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *TestLinkUpdate) SetNillableMaxUses(v *int) *TestLinkUpdate {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *TestLinkUpdate) AddMaxUses(v int) *TestLinkUpdate {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *TestLinkUpdate) ClearMaxUses() *TestLinkUpdate {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *TestLinkUpdate) SetUseCount(v int) *TestLinkUpdate {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *TestLinkUpdate) SetNillableUseCount(v *int) *TestLinkUpdate {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *TestLinkUpdate) AddUseCount(v int) *TestLinkUpdate {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *TestLinkUpdate) SetTest(v *Test) *TestLinkUpdate {
	return _u.SetTestID(v.ID)
}

// Mutation returns the TestLinkMutation object of the builder.
func (_u *TestLinkUpdate) Mutation() *TestLinkMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *TestLinkUpdate) ClearTest() *TestLinkUpdate {
	_u.mutation.ClearTest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestLinkUpdate) check() error {
	if v, ok := _u.mutation.MaxUses(); ok {
		if err := testlink.MaxUsesValidator(v); err != nil {
			return &ValidationError{Name: "max_uses", err: fmt.Errorf(`repo: validator failed for field "TestLink.max_uses": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UseCount(); ok {
		if err := testlink.UseCountValidator(v); err != nil {
			return &ValidationError{Name: "use_count", err: fmt.Errorf(`repo: validator failed for field "TestLink.use_count": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TestLink.test"`)
	}
	return nil
}

func (_u *TestLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testlink.Table, testlink.Columns, sqlgraph.NewFieldSpec(testlink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(testlink.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(testlink.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(testlink.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(testlink.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(testlink.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(testlink.FieldUseCount, field.TypeInt, value)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testlink.TestTable,
			Columns: []string{testlink.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testlink.TestTable,
			Columns: []string{testlink.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestLinkUpdateOne is the builder for updating a single TestLink entity.
type TestLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestLinkMutation
}

// SetOrgID sets the "org_id" field.
func (_u *TestLinkUpdateOne) SetOrgID(v uuid.UUID) *TestLinkUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TestLinkUpdateOne) SetNillableOrgID(v *uuid.UUID) *TestLinkUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *TestLinkUpdateOne) SetTestID(v uuid.UUID) *TestLinkUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestLinkUpdateOne) SetNillableTestID(v *uuid.UUID) *TestLinkUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *TestLinkUpdateOne) SetMaxUses(v int) *TestLinkUpdateOne {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *TestLinkUpdateOne) SetNillableMaxUses(v *int) *TestLinkUpdateOne {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *TestLinkUpdateOne) AddMaxUses(v int) *TestLinkUpdateOne {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *TestLinkUpdateOne) ClearMaxUses() *TestLinkUpdateOne {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *TestLinkUpdateOne) SetUseCount(v int) *TestLinkUpdateOne {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *TestLinkUpdateOne) SetNillableUseCount(v *int) *TestLinkUpdateOne {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *TestLinkUpdateOne) AddUseCount(v int) *TestLinkUpdateOne {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *TestLinkUpdateOne) SetTest(v *Test) *TestLinkUpdateOne {
	return _u.SetTestID(v.ID)
}

// Mutation returns the TestLinkMutation object of the builder.
func (_u *TestLinkUpdateOne) Mutation() *TestLinkMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *TestLinkUpdateOne) ClearTest() *TestLinkUpdateOne {
	_u.mutation.ClearTest()
	return _u
}

// Where appends a list predicates to the TestLinkUpdate builder.
func (_u *TestLinkUpdateOne) Where(ps ...predicate.TestLink) *TestLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestLinkUpdateOne) Select(field string, fields ...string) *TestLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestLink entity.
func (_u *TestLinkUpdateOne) Save(ctx context.Context) (*TestLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestLinkUpdateOne) SaveX(ctx context.Context) *TestLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestLinkUpdateOne) check() error {
	if v, ok := _u.mutation.MaxUses(); ok {
		if err := testlink.MaxUsesValidator(v); err != nil {
			return &ValidationError{Name: "max_uses", err: fmt.Errorf(`repo: validator failed for field "TestLink.max_uses": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UseCount(); ok {
		if err := testlink.UseCountValidator(v); err != nil {
			return &ValidationError{Name: "use_count", err: fmt.Errorf(`repo: validator failed for field "TestLink.use_count": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TestLink.test"`)
	}
	return nil
}

func (_u *TestLinkUpdateOne) sqlSave(ctx context.Context) (_node *TestLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testlink.Table, testlink.Columns, sqlgraph.NewFieldSpec(testlink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TestLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testlink.FieldID)
		for _, f := range fields {
			if !testlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != testlink.FieldID {
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
		_spec.SetField(testlink.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(testlink.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(testlink.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(testlink.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(testlink.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(testlink.FieldUseCount, field.TypeInt, value)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testlink.TestTable,
			Columns: []string{testlink.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testlink.TestTable,
			Columns: []string{testlink.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TestLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
