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
	"github.com/resonara/resonara_backend/internal/repo/orgmember"
	"github.com/resonara/resonara_backend/internal/repo/question"
	"github.com/resonara/resonara_backend/internal/repo/taker"
	"github.com/resonara/resonara_backend/internal/repo/test"
)

// OrganizationCreate is the builder for creating a Organization entity.
type OrganizationCreate struct {
	config
	mutation *OrganizationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrganizationCreate) SetCreatedAt(v time.Time) *OrganizationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableCreatedAt(v *time.Time) *OrganizationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrganizationCreate) SetUpdatedAt(v time.Time) *OrganizationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableUpdatedAt(v *time.Time) *OrganizationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *OrganizationCreate) SetDeletedAt(v time.Time) *OrganizationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableDeletedAt(v *time.Time) *OrganizationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetSlug sets the "slug" field.
func (_c *OrganizationCreate) SetSlug(v string) *OrganizationCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *OrganizationCreate) SetName(v string) *OrganizationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetBrandPrimary sets the "brand_primary" field.
func (_c *OrganizationCreate) SetBrandPrimary(v string) *OrganizationCreate {
	_c.mutation.SetBrandPrimary(v)
	return _c
}

// SetNillableBrandPrimary sets the "brand_primary" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableBrandPrimary(v *string) *OrganizationCreate {
	if v != nil {
		_c.SetBrandPrimary(*v)
	}
	return _c
}

// SetBrandSecondary sets the "brand_secondary" field.
func (_c *OrganizationCreate) SetBrandSecondary(v string) *OrganizationCreate {
	_c.mutation.SetBrandSecondary(v)
	return _c
}

// SetNillableBrandSecondary sets the "brand_secondary" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableBrandSecondary(v *string) *OrganizationCreate {
	if v != nil {
		_c.SetBrandSecondary(*v)
	}
	return _c
}

// SetFramework sets the "framework" field.
func (_c *OrganizationCreate) SetFramework(v string) *OrganizationCreate {
	_c.mutation.SetFramework(v)
	return _c
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableFramework(v *string) *OrganizationCreate {
	if v != nil {
		_c.SetFramework(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *OrganizationCreate) SetIsActive(v bool) *OrganizationCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableIsActive(v *bool) *OrganizationCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrganizationCreate) SetID(v uuid.UUID) *OrganizationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableID(v *uuid.UUID) *OrganizationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddMemberIDs adds the "members" edge to the OrgMember entity by IDs.
func (_c *OrganizationCreate) AddMemberIDs(ids ...uuid.UUID) *OrganizationCreate {
	_c.mutation.AddMemberIDs(ids...)
	return _c
}

// AddMembers adds the "members" edges to the OrgMember entity.
func (_c *OrganizationCreate) AddMembers(v ...*OrgMember) *OrganizationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemberIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *OrganizationCreate) AddQuestionIDs(ids ...uuid.UUID) *OrganizationCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *OrganizationCreate) AddQuestions(v ...*Question) *OrganizationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddTestIDs adds the "tests" edge to the Test entity by IDs.
func (_c *OrganizationCreate) AddTestIDs(ids ...uuid.UUID) *OrganizationCreate {
	_c.mutation.AddTestIDs(ids...)
	return _c
}

// AddTests adds the "tests" edges to the Test entity.
func (_c *OrganizationCreate) AddTests(v ...*Test) *OrganizationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTestIDs(ids...)
}

// AddTakerIDs adds the "takers" edge to the Taker entity by IDs.
func (_c *OrganizationCreate) AddTakerIDs(ids ...uuid.UUID) *OrganizationCreate {
	_c.mutation.AddTakerIDs(ids...)
	return _c
}

// AddTakers adds the "takers" edges to the Taker entity.
func (_c *OrganizationCreate) AddTakers(v ...*Taker) *OrganizationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTakerIDs(ids...)
}

// Mutation returns the OrganizationMutation object of the builder.
func (_c *OrganizationCreate) Mutation() *OrganizationMutation {
	return _c.mutation
}

// Save creates the Organization in the database.
func (_c *OrganizationCreate) Save(ctx context.Context) (*Organization, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrganizationCreate) SaveX(ctx context.Context) *Organization {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrganizationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrganizationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrganizationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := organization.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := organization.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.BrandPrimary(); !ok {
		v := organization.DefaultBrandPrimary
		_c.mutation.SetBrandPrimary(v)
	}
	if _, ok := _c.mutation.BrandSecondary(); !ok {
		v := organization.DefaultBrandSecondary
		_c.mutation.SetBrandSecondary(v)
	}
	if _, ok := _c.mutation.Framework(); !ok {
		v := organization.DefaultFramework
		_c.mutation.SetFramework(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := organization.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := organization.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrganizationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Organization.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Organization.updated_at"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Organization.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := organization.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Organization.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Organization.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := organization.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Organization.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BrandPrimary(); !ok {
		return &ValidationError{Name: "brand_primary", err: errors.New(`repo: missing required field "Organization.brand_primary"`)}
	}
	if v, ok := _c.mutation.BrandPrimary(); ok {
		if err := organization.BrandPrimaryValidator(v); err != nil {
			return &ValidationError{Name: "brand_primary", err: fmt.Errorf(`repo: validator failed for field "Organization.brand_primary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BrandSecondary(); !ok {
		return &ValidationError{Name: "brand_secondary", err: errors.New(`repo: missing required field "Organization.brand_secondary"`)}
	}
	if v, ok := _c.mutation.BrandSecondary(); ok {
		if err := organization.BrandSecondaryValidator(v); err != nil {
			return &ValidationError{Name: "brand_secondary", err: fmt.Errorf(`repo: validator failed for field "Organization.brand_secondary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Framework(); !ok {
		return &ValidationError{Name: "framework", err: errors.New(`repo: missing required field "Organization.framework"`)}
	}
	if v, ok := _c.mutation.Framework(); ok {
		if err := organization.FrameworkValidator(v); err != nil {
			return &ValidationError{Name: "framework", err: fmt.Errorf(`repo: validator failed for field "Organization.framework": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Organization.is_active"`)}
	}
	return nil
}

func (_c *OrganizationCreate) sqlSave(ctx context.Context) (*Organization, error) {
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

func (_c *OrganizationCreate) createSpec() (*Organization, *sqlgraph.CreateSpec) {
	var (
		_node = &Organization{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(organization.Table, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(organization.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(organization.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(organization.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(organization.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.BrandPrimary(); ok {
		_spec.SetField(organization.FieldBrandPrimary, field.TypeString, value)
		_node.BrandPrimary = value
	}
	if value, ok := _c.mutation.BrandSecondary(); ok {
		_spec.SetField(organization.FieldBrandSecondary, field.TypeString, value)
		_node.BrandSecondary = value
	}
	if value, ok := _c.mutation.Framework(); ok {
		_spec.SetField(organization.FieldFramework, field.TypeString, value)
		_node.Framework = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(organization.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.MembersTable,
			Columns: []string{organization.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orgmember.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.QuestionsTable,
			Columns: []string{organization.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.TestsTable,
			Columns: []string{organization.TestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TakersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.TakersTable,
			Columns: []string{organization.TakersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrganizationCreateBulk is the builder for creating many Organization entities in bulk.
type OrganizationCreateBulk struct {
	config
	err      error
	builders []*OrganizationCreate
}

// Save creates the Organization entities in the database.
func (_c *OrganizationCreateBulk) Save(ctx context.Context) ([]*Organization, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Organization, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrganizationMutation)
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
func (_c *OrganizationCreateBulk) SaveX(ctx context.Context) []*Organization {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrganizationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrganizationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
