// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/repo/organization"
	"github.com/resonara/resonara_backend/internal/repo/orgmember"
	"github.com/resonara/resonara_backend/internal/repo/predicate"
	"github.com/resonara/resonara_backend/internal/repo/user"
)

// OrgMemberUpdate is the builder for updating OrgMember entities.
type OrgMemberUpdate struct {
	config
	hooks    []Hook
	mutation *OrgMemberMutation
}

// Where appends a list predicates to the OrgMemberUpdate builder.
func (_u *OrgMemberUpdate) Where(ps ...predicate.OrgMember) *OrgMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrgMemberUpdate) SetUpdatedAt(v time.Time) *OrgMemberUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *OrgMemberUpdate) SetOrgID(v uuid.UUID) *OrgMemberUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *OrgMemberUpdate) SetNillableOrgID(v *uuid.UUID) *OrgMemberUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OrgMemberUpdate) SetUserID(v uuid.UUID) *OrgMemberUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OrgMemberUpdate) SetNillableUserID(v *uuid.UUID) *OrgMemberUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *OrgMemberUpdate) SetRole(v orgmember.Role) *OrgMemberUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *OrgMemberUpdate) SetNillableRole(v *orgmember.Role) *OrgMemberUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *OrgMemberUpdate) SetIsActive(v bool) *OrgMemberUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *OrgMemberUpdate) SetNillableIsActive(v *bool) *OrgMemberUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization" edge to the Organization entity by ID.
func (_u *OrgMemberUpdate) SetOrganizationID(id uuid.UUID) *OrgMemberUpdate {
	_u.mutation.SetOrganizationID(id)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *OrgMemberUpdate) SetOrganization(v *Organization) *OrgMemberUpdate {
	return _u.SetOrganizationID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *OrgMemberUpdate) SetUser(v *User) *OrgMemberUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the OrgMemberMutation object of the builder.
func (_u *OrgMemberUpdate) Mutation() *OrgMemberMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *OrgMemberUpdate) ClearOrganization() *OrgMemberUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OrgMemberUpdate) ClearUser() *OrgMemberUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrgMemberUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrgMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrgMemberUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := orgmember.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrgMemberUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := orgmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "OrgMember.role": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "OrgMember.organization"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "OrgMember.user"`)
	}
	return nil
}

func (_u *OrgMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orgmember.Table, orgmember.Columns, sqlgraph.NewFieldSpec(orgmember.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(orgmember.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(orgmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(orgmember.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgmember.OrganizationTable,
			Columns: []string{orgmember.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgmember.OrganizationTable,
			Columns: []string{orgmember.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgmember.UserTable,
			Columns: []string{orgmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgmember.UserTable,
			Columns: []string{orgmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrgMemberUpdateOne is the builder for updating a single OrgMember entity.
type OrgMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrgMemberMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrgMemberUpdateOne) SetUpdatedAt(v time.Time) *OrgMemberUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *OrgMemberUpdateOne) SetOrgID(v uuid.UUID) *OrgMemberUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *OrgMemberUpdateOne) SetNillableOrgID(v *uuid.UUID) *OrgMemberUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OrgMemberUpdateOne) SetUserID(v uuid.UUID) *OrgMemberUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OrgMemberUpdateOne) SetNillableUserID(v *uuid.UUID) *OrgMemberUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *OrgMemberUpdateOne) SetRole(v orgmember.Role) *OrgMemberUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *OrgMemberUpdateOne) SetNillableRole(v *orgmember.Role) *OrgMemberUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *OrgMemberUpdateOne) SetIsActive(v bool) *OrgMemberUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *OrgMemberUpdateOne) SetNillableIsActive(v *bool) *OrgMemberUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization" edge to the Organization entity by ID.
func (_u *OrgMemberUpdateOne) SetOrganizationID(id uuid.UUID) *OrgMemberUpdateOne {
	_u.mutation.SetOrganizationID(id)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *OrgMemberUpdateOne) SetOrganization(v *Organization) *OrgMemberUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *OrgMemberUpdateOne) SetUser(v *User) *OrgMemberUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the OrgMemberMutation object of the builder.
func (_u *OrgMemberUpdateOne) Mutation() *OrgMemberMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *OrgMemberUpdateOne) ClearOrganization() *OrgMemberUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OrgMemberUpdateOne) ClearUser() *OrgMemberUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the OrgMemberUpdate builder.
func (_u *OrgMemberUpdateOne) Where(ps ...predicate.OrgMember) *OrgMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrgMemberUpdateOne) Select(field string, fields ...string) *OrgMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrgMember entity.
func (_u *OrgMemberUpdateOne) Save(ctx context.Context) (*OrgMember, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgMemberUpdateOne) SaveX(ctx context.Context) *OrgMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrgMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrgMemberUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := orgmember.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrgMemberUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := orgmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "OrgMember.role": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "OrgMember.organization"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "OrgMember.user"`)
	}
	return nil
}

func (_u *OrgMemberUpdateOne) sqlSave(ctx context.Context) (_node *OrgMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orgmember.Table, orgmember.Columns, sqlgraph.NewFieldSpec(orgmember.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "OrgMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orgmember.FieldID)
		for _, f := range fields {
			if !orgmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != orgmember.FieldID {
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
		_spec.SetField(orgmember.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(orgmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(orgmember.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgmember.OrganizationTable,
			Columns: []string{orgmember.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgmember.OrganizationTable,
			Columns: []string{orgmember.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgmember.UserTable,
			Columns: []string{orgmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgmember.UserTable,
			Columns: []string{orgmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OrgMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
