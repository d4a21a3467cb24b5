// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/repo/taker"
	"github.com/resonara/resonara_backend/internal/repo/testresult"
)

// TestResultCreate is the builder for creating a TestResult entity.
type TestResultCreate struct {
	config
	mutation *TestResultMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestResultCreate) SetCreatedAt(v time.Time) *TestResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableCreatedAt(v *time.Time) *TestResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *TestResultCreate) SetOrgID(v uuid.UUID) *TestResultCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTakerID sets the "taker_id" field.
func (_c *TestResultCreate) SetTakerID(v uuid.UUID) *TestResultCreate {
	_c.mutation.SetTakerID(v)
	return _c
}

// SetSubmissionID sets the "submission_id" field.
func (_c *TestResultCreate) SetSubmissionID(v uuid.UUID) *TestResultCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetFrequencyTotals sets the "frequency_totals" field.
func (_c *TestResultCreate) SetFrequencyTotals(v map[string]int) *TestResultCreate {
	_c.mutation.SetFrequencyTotals(v)
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *TestResultCreate) SetTotalPoints(v int) *TestResultCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableTotalPoints(v *int) *TestResultCreate {
	if v != nil {
		_c.SetTotalPoints(*v)
	}
	return _c
}

// SetProfileCode sets the "profile_code" field.
func (_c *TestResultCreate) SetProfileCode(v string) *TestResultCreate {
	_c.mutation.SetProfileCode(v)
	return _c
}

// SetProfileName sets the "profile_name" field.
func (_c *TestResultCreate) SetProfileName(v string) *TestResultCreate {
	_c.mutation.SetProfileName(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TestResultCreate) SetID(v uuid.UUID) *TestResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableID(v *uuid.UUID) *TestResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTaker sets the "taker" edge to the Taker entity.
func (_c *TestResultCreate) SetTaker(v *Taker) *TestResultCreate {
	return _c.SetTakerID(v.ID)
}

// Mutation returns the TestResultMutation object of the builder.
func (_c *TestResultCreate) Mutation() *TestResultMutation {
	return _c.mutation
}

// Save creates the TestResult in the database.
func (_c *TestResultCreate) Save(ctx context.Context) (*TestResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestResultCreate) SaveX(ctx context.Context) *TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		v := testresult.DefaultTotalPoints
		_c.mutation.SetTotalPoints(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestResultCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TestResult.created_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`repo: missing required field "TestResult.org_id"`)}
	}
	if _, ok := _c.mutation.TakerID(); !ok {
		return &ValidationError{Name: "taker_id", err: errors.New(`repo: missing required field "TestResult.taker_id"`)}
	}
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`repo: missing required field "TestResult.submission_id"`)}
	}
	if _, ok := _c.mutation.FrequencyTotals(); !ok {
		return &ValidationError{Name: "frequency_totals", err: errors.New(`repo: missing required field "TestResult.frequency_totals"`)}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`repo: missing required field "TestResult.total_points"`)}
	}
	if _, ok := _c.mutation.ProfileCode(); !ok {
		return &ValidationError{Name: "profile_code", err: errors.New(`repo: missing required field "TestResult.profile_code"`)}
	}
	if v, ok := _c.mutation.ProfileCode(); ok {
		if err := testresult.ProfileCodeValidator(v); err != nil {
			return &ValidationError{Name: "profile_code", err: fmt.Errorf(`repo: validator failed for field "TestResult.profile_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProfileName(); !ok {
		return &ValidationError{Name: "profile_name", err: errors.New(`repo: missing required field "TestResult.profile_name"`)}
	}
	if v, ok := _c.mutation.ProfileName(); ok {
		if err := testresult.ProfileNameValidator(v); err != nil {
			return &ValidationError{Name: "profile_name", err: fmt.Errorf(`repo: validator failed for field "TestResult.profile_name": %w`, err)}
		}
	}
	if len(_c.mutation.TakerIDs()) == 0 {
		return &ValidationError{Name: "taker", err: errors.New(`repo: missing required edge "TestResult.taker"`)}
	}
	return nil
}

func (_c *TestResultCreate) sqlSave(ctx context.Context) (*TestResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestResultCreate) createSpec() (*TestResult, *sqlgraph.CreateSpec) {
	var (
		_node = &TestResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testresult.Table, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(testresult.FieldOrgID, field.TypeUUID, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.SubmissionID(); ok {
		_spec.SetField(testresult.FieldSubmissionID, field.TypeUUID, value)
		_node.SubmissionID = value
	}
	if value, ok := _c.mutation.FrequencyTotals(); ok {
		_spec.SetField(testresult.FieldFrequencyTotals, field.TypeJSON, value)
		_node.FrequencyTotals = value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(testresult.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.ProfileCode(); ok {
		_spec.SetField(testresult.FieldProfileCode, field.TypeString, value)
		_node.ProfileCode = value
	}
	if value, ok := _c.mutation.ProfileName(); ok {
		_spec.SetField(testresult.FieldProfileName, field.TypeString, value)
		_node.ProfileName = value
	}
	if nodes := _c.mutation.TakerIDs(); len(nodes) > 0 {
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
		_node.TakerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TestResultCreateBulk is the builder for creating many TestResult entities in bulk.
type TestResultCreateBulk struct {
	config
	err      error
	builders []*TestResultCreate
}

// Save creates the TestResult entities in the database.
func (_c *TestResultCreateBulk) Save(ctx context.Context) ([]*TestResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestResultCreateBulk) SaveX(ctx context.Context) []*TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
