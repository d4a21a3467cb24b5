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
	"github.com/resonara/resonara_backend/internal/domain"
	"github.com/resonara/resonara_backend/internal/repo/submission"
	"github.com/resonara/resonara_backend/internal/repo/taker"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionCreate) SetUpdatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *SubmissionCreate) SetOrgID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTakerID sets the "taker_id" field.
func (_c *SubmissionCreate) SetTakerID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetTakerID(v)
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *SubmissionCreate) SetTestID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *SubmissionCreate) SetAnswers(v []domain.Answer) *SubmissionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetFrequencyTotals sets the "frequency_totals" field.
func (_c *SubmissionCreate) SetFrequencyTotals(v map[string]int) *SubmissionCreate {
	_c.mutation.SetFrequencyTotals(v)
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *SubmissionCreate) SetTotalPoints(v int) *SubmissionCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableTotalPoints(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetTotalPoints(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v submission.Status) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStatus(v *submission.Status) *SubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *SubmissionCreate) SetVersion(v int) *SubmissionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableVersion(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableID(v *uuid.UUID) *SubmissionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTaker sets the "taker" edge to the Taker entity.
func (_c *SubmissionCreate) SetTaker(v *Taker) *SubmissionCreate {
	return _c.SetTakerID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		v := submission.DefaultTotalPoints
		_c.mutation.SetTotalPoints(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := submission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := submission.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := submission.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Submission.updated_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`repo: missing required field "Submission.org_id"`)}
	}
	if _, ok := _c.mutation.TakerID(); !ok {
		return &ValidationError{Name: "taker_id", err: errors.New(`repo: missing required field "Submission.taker_id"`)}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`repo: missing required field "Submission.test_id"`)}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`repo: missing required field "Submission.total_points"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Submission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`repo: missing required field "Submission.version"`)}
	}
	if len(_c.mutation.TakerIDs()) == 0 {
		return &ValidationError{Name: "taker", err: errors.New(`repo: missing required edge "Submission.taker"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(submission.FieldOrgID, field.TypeUUID, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(submission.FieldTestID, field.TypeUUID, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(submission.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.FrequencyTotals(); ok {
		_spec.SetField(submission.FieldFrequencyTotals, field.TypeJSON, value)
		_node.FrequencyTotals = value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(submission.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(submission.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if nodes := _c.mutation.TakerIDs(); len(nodes) > 0 {
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
		_node.TakerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
