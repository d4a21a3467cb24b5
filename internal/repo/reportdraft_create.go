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
	"github.com/resonara/resonara_backend/internal/repo/reportdraft"
)

// ReportDraftCreate is the builder for creating a ReportDraft entity.
type ReportDraftCreate struct {
	config
	mutation *ReportDraftMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportDraftCreate) SetCreatedAt(v time.Time) *ReportDraftCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportDraftCreate) SetNillableCreatedAt(v *time.Time) *ReportDraftCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportDraftCreate) SetUpdatedAt(v time.Time) *ReportDraftCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportDraftCreate) SetNillableUpdatedAt(v *time.Time) *ReportDraftCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *ReportDraftCreate) SetOrgID(v uuid.UUID) *ReportDraftCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetProfileCode sets the "profile_code" field.
func (_c *ReportDraftCreate) SetProfileCode(v string) *ReportDraftCreate {
	_c.mutation.SetProfileCode(v)
	return _c
}

// SetSections sets the "sections" field.
func (_c *ReportDraftCreate) SetSections(v map[string]string) *ReportDraftCreate {
	_c.mutation.SetSections(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ReportDraftCreate) SetID(v uuid.UUID) *ReportDraftCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportDraftCreate) SetNillableID(v *uuid.UUID) *ReportDraftCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReportDraftMutation object of the builder.
func (_c *ReportDraftCreate) Mutation() *ReportDraftMutation {
	return _c.mutation
}

// Save creates the ReportDraft in the database.
func (_c *ReportDraftCreate) Save(ctx context.Context) (*ReportDraft, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportDraftCreate) SaveX(ctx context.Context) *ReportDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportDraftCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportDraftCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportDraftCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reportdraft.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reportdraft.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reportdraft.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportDraftCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ReportDraft.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ReportDraft.updated_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`repo: missing required field "ReportDraft.org_id"`)}
	}
	if _, ok := _c.mutation.ProfileCode(); !ok {
		return &ValidationError{Name: "profile_code", err: errors.New(`repo: missing required field "ReportDraft.profile_code"`)}
	}
	if v, ok := _c.mutation.ProfileCode(); ok {
		if err := reportdraft.ProfileCodeValidator(v); err != nil {
			return &ValidationError{Name: "profile_code", err: fmt.Errorf(`repo: validator failed for field "ReportDraft.profile_code": %w`, err)}
		}
	}
	return nil
}

func (_c *ReportDraftCreate) sqlSave(ctx context.Context) (*ReportDraft, error) {
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

func (_c *ReportDraftCreate) createSpec() (*ReportDraft, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportDraft{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportdraft.Table, sqlgraph.NewFieldSpec(reportdraft.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reportdraft.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reportdraft.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(reportdraft.FieldOrgID, field.TypeUUID, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.ProfileCode(); ok {
		_spec.SetField(reportdraft.FieldProfileCode, field.TypeString, value)
		_node.ProfileCode = value
	}
	if value, ok := _c.mutation.Sections(); ok {
		_spec.SetField(reportdraft.FieldSections, field.TypeJSON, value)
		_node.Sections = value
	}
	return _node, _spec
}

// ReportDraftCreateBulk is the builder for creating many ReportDraft entities in bulk.
type ReportDraftCreateBulk struct {
	config
	err      error
	builders []*ReportDraftCreate
}

// Save creates the ReportDraft entities in the database.
func (_c *ReportDraftCreateBulk) Save(ctx context.Context) ([]*ReportDraft, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportDraft, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportDraftMutation)
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
func (_c *ReportDraftCreateBulk) SaveX(ctx context.Context) []*ReportDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportDraftCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportDraftCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
