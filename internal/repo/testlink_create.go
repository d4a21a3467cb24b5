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
	"github.com/resonara/resonara_backend/internal/repo/test"
	"github.com/resonara/resonara_backend/internal/repo/testlink"
)

// TestLinkCreate is the builder for creating a TestLink entity.
type TestLinkCreate struct {
	config
	mutation *TestLinkMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestLinkCreate) SetCreatedAt(v time.Time) *TestLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestLinkCreate) SetNillableCreatedAt(v *time.Time) *TestLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *TestLinkCreate) SetOrgID(v uuid.UUID) *TestLinkCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *TestLinkCreate) SetTestID(v uuid.UUID) *TestLinkCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetToken sets the "token" field.
func (_c *TestLinkCreate) SetToken(v string) *TestLinkCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetMaxUses sets the "max_uses" field.
func (_c *TestLinkCreate) SetMaxUses(v int) *TestLinkCreate {
	_c.mutation.SetMaxUses(v)
	return _c
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_c *TestLinkCreate) SetNillableMaxUses(v *int) *TestLinkCreate {
	if v != nil {
		_c.SetMaxUses(*v)
	}
	return _c
}

// SetUseCount sets the "use_count" field.
func (_c *TestLinkCreate) SetUseCount(v int) *TestLinkCreate {
	_c.mutation.SetUseCount(v)
	return _c
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_c *TestLinkCreate) SetNillableUseCount(v *int) *TestLinkCreate {
	if v != nil {
		_c.SetUseCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestLinkCreate) SetID(v uuid.UUID) *TestLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestLinkCreate) SetNillableID(v *uuid.UUID) *TestLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTest sets the "test" edge to the Test entity.
func (_c *TestLinkCreate) SetTest(v *Test) *TestLinkCreate {
	return _c.SetTestID(v.ID)
}

// Mutation returns the TestLinkMutation object of the builder.
func (_c *TestLinkCreate) Mutation() *TestLinkMutation {
	return _c.mutation
}

// Save creates the TestLink in the database.
func (_c *TestLinkCreate) Save(ctx context.Context) (*TestLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestLinkCreate) SaveX(ctx context.Context) *TestLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		v := testlink.DefaultUseCount
		_c.mutation.SetUseCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testlink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestLinkCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TestLink.created_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`repo: missing required field "TestLink.org_id"`)}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`repo: missing required field "TestLink.test_id"`)}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`repo: missing required field "TestLink.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := testlink.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`repo: validator failed for field "TestLink.token": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MaxUses(); ok {
		if err := testlink.MaxUsesValidator(v); err != nil {
			return &ValidationError{Name: "max_uses", err: fmt.Errorf(`repo: validator failed for field "TestLink.max_uses": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		return &ValidationError{Name: "use_count", err: errors.New(`repo: missing required field "TestLink.use_count"`)}
	}
	if v, ok := _c.mutation.UseCount(); ok {
		if err := testlink.UseCountValidator(v); err != nil {
			return &ValidationError{Name: "use_count", err: fmt.Errorf(`repo: validator failed for field "TestLink.use_count": %w`, err)}
		}
	}
	if len(_c.mutation.TestIDs()) == 0 {
		return &ValidationError{Name: "test", err: errors.New(`repo: missing required edge "TestLink.test"`)}
	}
	return nil
}

func (_c *TestLinkCreate) sqlSave(ctx context.Context) (*TestLink, error) {
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

func (_c *TestLinkCreate) createSpec() (*TestLink, *sqlgraph.CreateSpec) {
	var (
		_node = &TestLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testlink.Table, sqlgraph.NewFieldSpec(testlink.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(testlink.FieldOrgID, field.TypeUUID, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(testlink.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.MaxUses(); ok {
		_spec.SetField(testlink.FieldMaxUses, field.TypeInt, value)
		_node.MaxUses = &value
	}
	if value, ok := _c.mutation.UseCount(); ok {
		_spec.SetField(testlink.FieldUseCount, field.TypeInt, value)
		_node.UseCount = value
	}
	if nodes := _c.mutation.TestIDs(); len(nodes) > 0 {
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
		_node.TestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TestLinkCreateBulk is the builder for creating many TestLink entities in bulk.
type TestLinkCreateBulk struct {
	config
	err      error
	builders []*TestLinkCreate
}

// Save creates the TestLink entities in the database.
func (_c *TestLinkCreateBulk) Save(ctx context.Context) ([]*TestLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestLinkMutation)
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
func (_c *TestLinkCreateBulk) SaveX(ctx context.Context) []*TestLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
