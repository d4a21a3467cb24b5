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
	"github.com/resonara/resonara_backend/internal/repo/predicate"
	"github.com/resonara/resonara_backend/internal/repo/test"
	"github.com/resonara/resonara_backend/internal/repo/testlink"
)

// TestUpdate is the builder for updating Test entities.
type TestUpdate struct {
	config
	hooks    []Hook
	mutation *TestMutation
}

// Where appends a list predicates to the TestUpdate builder.
func (_u *TestUpdate) Where(ps ...predicate.Test) *TestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestUpdate) SetUpdatedAt(v time.Time) *TestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *TestUpdate) SetOrgID(v uuid.UUID) *TestUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TestUpdate) SetNillableOrgID(v *uuid.UUID) *TestUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TestUpdate) SetName(v string) *TestUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestUpdate) SetNillableName(v *string) *TestUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestUpdate) SetDescription(v string) *TestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestUpdate) SetNillableDescription(v *string) *TestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TestUpdate) ClearDescription() *TestUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *TestUpdate) SetQuestionCount(v int) *TestUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *TestUpdate) SetNillableQuestionCount(v *int) *TestUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *TestUpdate) AddQuestionCount(v int) *TestUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TestUpdate) SetIsActive(v bool) *TestUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TestUpdate) SetNillableIsActive(v *bool) *TestUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization" edge to the Organization entity by ID.
func (_u *TestUpdate) SetOrganizationID(id uuid.UUID) *TestUpdate {
	_u.mutation.SetOrganizationID(id)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *TestUpdate) SetOrganization(v *Organization) *TestUpdate {
	return _u.SetOrganizationID(v.ID)
}

// AddLinkIDs adds the "links" edge to the TestLink entity by IDs.
func (_u *TestUpdate) AddLinkIDs(ids ...uuid.UUID) *TestUpdate {
	_u.mutation.AddLinkIDs(ids...)
	return _u
}

// AddLinks adds the "links" edges to the TestLink entity.
func (_u *TestUpdate) AddLinks(v ...*TestLink) *TestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLinkIDs(ids...)
}

// Mutation returns the TestMutation object of the builder.
func (_u *TestUpdate) Mutation() *TestMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *TestUpdate) ClearOrganization() *TestUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearLinks clears all "links" edges to the TestLink entity.
func (_u *TestUpdate) ClearLinks() *TestUpdate {
	_u.mutation.ClearLinks()
	return _u
}

// RemoveLinkIDs removes the "links" edge to TestLink entities by IDs.
func (_u *TestUpdate) RemoveLinkIDs(ids ...uuid.UUID) *TestUpdate {
	_u.mutation.RemoveLinkIDs(ids...)
	return _u
}

// RemoveLinks removes "links" edges to TestLink entities.
func (_u *TestUpdate) RemoveLinks(v ...*TestLink) *TestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := test.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := test.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Test.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionCount(); ok {
		if err := test.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`repo: validator failed for field "Test.question_count": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Test.organization"`)
	}
	return nil
}

func (_u *TestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(test.Table, test.Columns, sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(test.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(test.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(test.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(test.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(test.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(test.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(test.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   test.OrganizationTable,
			Columns: []string{test.OrganizationColumn},
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
			Table:   test.OrganizationTable,
			Columns: []string{test.OrganizationColumn},
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
	if _u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   test.LinksTable,
			Columns: []string{test.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testlink.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinksIDs(); len(nodes) > 0 && !_u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   test.LinksTable,
			Columns: []string{test.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   test.LinksTable,
			Columns: []string{test.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{test.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestUpdateOne is the builder for updating a single Test entity.
type TestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestUpdateOne) SetUpdatedAt(v time.Time) *TestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *TestUpdateOne) SetOrgID(v uuid.UUID) *TestUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableOrgID(v *uuid.UUID) *TestUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TestUpdateOne) SetName(v string) *TestUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableName(v *string) *TestUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestUpdateOne) SetDescription(v string) *TestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableDescription(v *string) *TestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TestUpdateOne) ClearDescription() *TestUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *TestUpdateOne) SetQuestionCount(v int) *TestUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableQuestionCount(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *TestUpdateOne) AddQuestionCount(v int) *TestUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TestUpdateOne) SetIsActive(v bool) *TestUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableIsActive(v *bool) *TestUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization" edge to the Organization entity by ID.
func (_u *TestUpdateOne) SetOrganizationID(id uuid.UUID) *TestUpdateOne {
	_u.mutation.SetOrganizationID(id)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *TestUpdateOne) SetOrganization(v *Organization) *TestUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// AddLinkIDs adds the "links" edge to the TestLink entity by IDs.
func (_u *TestUpdateOne) AddLinkIDs(ids ...uuid.UUID) *TestUpdateOne {
	_u.mutation.AddLinkIDs(ids...)
	return _u
}

// AddLinks adds the "links" edges to the TestLink entity.
func (_u *TestUpdateOne) AddLinks(v ...*TestLink) *TestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLinkIDs(ids...)
}

// Mutation returns the TestMutation object of the builder.
func (_u *TestUpdateOne) Mutation() *TestMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *TestUpdateOne) ClearOrganization() *TestUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearLinks clears all "links" edges to the TestLink entity.
func (_u *TestUpdateOne) ClearLinks() *TestUpdateOne {
	_u.mutation.ClearLinks()
	return _u
}

// RemoveLinkIDs removes the "links" edge to TestLink entities by IDs.
func (_u *TestUpdateOne) RemoveLinkIDs(ids ...uuid.UUID) *TestUpdateOne {
	_u.mutation.RemoveLinkIDs(ids...)
	return _u
}

// RemoveLinks removes "links" edges to TestLink entities.
func (_u *TestUpdateOne) RemoveLinks(v ...*TestLink) *TestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLinkIDs(ids...)
}

// Where appends a list predicates to the TestUpdate builder.
func (_u *TestUpdateOne) Where(ps ...predicate.Test) *TestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestUpdateOne) Select(field string, fields ...string) *TestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Test entity.
func (_u *TestUpdateOne) Save(ctx context.Context) (*Test, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestUpdateOne) SaveX(ctx context.Context) *Test {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := test.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := test.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Test.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionCount(); ok {
		if err := test.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`repo: validator failed for field "Test.question_count": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Test.organization"`)
	}
	return nil
}

func (_u *TestUpdateOne) sqlSave(ctx context.Context) (_node *Test, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(test.Table, test.Columns, sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Test.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, test.FieldID)
		for _, f := range fields {
			if !test.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != test.FieldID {
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
		_spec.SetField(test.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(test.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(test.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(test.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(test.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(test.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(test.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   test.OrganizationTable,
			Columns: []string{test.OrganizationColumn},
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
			Table:   test.OrganizationTable,
			Columns: []string{test.OrganizationColumn},
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
	if _u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   test.LinksTable,
			Columns: []string{test.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testlink.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinksIDs(); len(nodes) > 0 && !_u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   test.LinksTable,
			Columns: []string{test.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   test.LinksTable,
			Columns: []string{test.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Test{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{test.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
