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
	"github.com/resonara/resonara_backend/internal/repo/organization"
	"github.com/resonara/resonara_backend/internal/repo/submission"
	"github.com/resonara/resonara_backend/internal/repo/taker"
	"github.com/resonara/resonara_backend/internal/repo/testresult"
)

// TakerCreate is the builder for creating a Taker entity.
type TakerCreate struct {
	config
	mutation *TakerMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TakerCreate) SetCreatedAt(v time.Time) *TakerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TakerCreate) SetNillableCreatedAt(v *time.Time) *TakerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *TakerCreate) SetOrgID(v uuid.UUID) *TakerCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TakerCreate) SetName(v string) *TakerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *TakerCreate) SetEmail(v string) *TakerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *TakerCreate) SetNillableEmail(v *string) *TakerCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *TakerCreate) SetPhone(v string) *TakerCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *TakerCreate) SetNillablePhone(v *string) *TakerCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TakerCreate) SetID(v uuid.UUID) *TakerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TakerCreate) SetNillableID(v *uuid.UUID) *TakerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrganizationID sets the "organization" edge to the Organization entity by ID.
func (_c *TakerCreate) SetOrganizationID(id uuid.UUID) *TakerCreate {
	_c.mutation.SetOrganizationID(id)
	return _c
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *TakerCreate) SetOrganization(v *Organization) *TakerCreate {
	return _c.SetOrganizationID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *TakerCreate) AddSubmissionIDs(ids ...uuid.UUID) *TakerCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *TakerCreate) AddSubmissions(v ...*Submission) *TakerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// AddResultIDs adds the "results" edge to the TestResult entity by IDs.
func (_c *TakerCreate) AddResultIDs(ids ...uuid.UUID) *TakerCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the TestResult entity.
func (_c *TakerCreate) AddResults(v ...*TestResult) *TakerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the TakerMutation object of the builder.
func (_c *TakerCreate) Mutation() *TakerMutation {
	return _c.mutation
}

// Save creates the Taker in the database.
func (_c *TakerCreate) Save(ctx context.Context) (*Taker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TakerCreate) SaveX(ctx context.Context) *Taker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TakerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TakerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TakerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taker.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := taker.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TakerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Taker.created_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`repo: missing required field "Taker.org_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Taker.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := taker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Taker.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := taker.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Taker.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := taker.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Taker.phone": %w`, err)}
		}
	}
	if len(_c.mutation.OrganizationIDs()) == 0 {
		return &ValidationError{Name: "organization", err: errors.New(`repo: missing required edge "Taker.organization"`)}
	}
	return nil
}

func (_c *TakerCreate) sqlSave(ctx context.Context) (*Taker, error) {
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

func (_c *TakerCreate) createSpec() (*Taker, *sqlgraph.CreateSpec) {
	var (
		_node = &Taker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taker.Table, sqlgraph.NewFieldSpec(taker.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taker.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(taker.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(taker.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(taker.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taker.OrganizationTable,
			Columns: []string{taker.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OrgID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taker.SubmissionsTable,
			Columns: []string{taker.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taker.ResultsTable,
			Columns: []string{taker.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TakerCreateBulk is the builder for creating many Taker entities in bulk.
type TakerCreateBulk struct {
	config
	err      error
	builders []*TakerCreate
}

// Save creates the Taker entities in the database.
func (_c *TakerCreateBulk) Save(ctx context.Context) ([]*Taker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Taker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TakerMutation)
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
func (_c *TakerCreateBulk) SaveX(ctx context.Context) []*Taker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TakerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TakerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
