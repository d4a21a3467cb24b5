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
	"github.com/resonara/resonara_backend/internal/repo/predicate"
	"github.com/resonara/resonara_backend/internal/repo/reportdraft"
)

// ReportDraftUpdate is the builder for updating ReportDraft entities.
type ReportDraftUpdate struct {
	config
	hooks    []Hook
	mutation *ReportDraftMutation
}

// Where appends a list predicates to the ReportDraftUpdate builder.
func (_u *ReportDraftUpdate) Where(ps ...predicate.ReportDraft) *ReportDraftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportDraftUpdate) SetUpdatedAt(v time.Time) *ReportDraftUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ReportDraftUpdate) SetOrgID(v uuid.UUID) *ReportDraftUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ReportDraftUpdate) SetNillableOrgID(v *uuid.UUID) *ReportDraftUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProfileCode sets the "profile_code" field.
func (_u *ReportDraftUpdate) SetProfileCode(v string) *ReportDraftUpdate {
	_u.mutation.SetProfileCode(v)
	return _u
}

// SetNillableProfileCode sets the "profile_code" field if the given value is not nil.
func (_u *ReportDraftUpdate) SetNillableProfileCode(v *string) *ReportDraftUpdate {
	if v != nil {
		_u.SetProfileCode(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *ReportDraftUpdate) SetSections(v map[string]string) *ReportDraftUpdate {
	_u.mutation.SetSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *ReportDraftUpdate) ClearSections() *ReportDraftUpdate {
	_u.mutation.ClearSections()
	return _u
}

// Mutation returns the ReportDraftMutation object of the builder.
func (_u *ReportDraftUpdate) Mutation() *ReportDraftMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportDraftUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportDraftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportDraftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportDraftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportDraftUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reportdraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportDraftUpdate) check() error {
	if v, ok := _u.mutation.ProfileCode(); ok {
		if err := reportdraft.ProfileCodeValidator(v); err != nil {
			return &ValidationError{Name: "profile_code", err: fmt.Errorf(`repo: validator failed for field "ReportDraft.profile_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportDraftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportdraft.Table, reportdraft.Columns, sqlgraph.NewFieldSpec(reportdraft.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reportdraft.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(reportdraft.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProfileCode(); ok {
		_spec.SetField(reportdraft.FieldProfileCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(reportdraft.FieldSections, field.TypeJSON, value)
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(reportdraft.FieldSections, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportdraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportDraftUpdateOne is the builder for updating a single ReportDraft entity.
type ReportDraftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportDraftMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportDraftUpdateOne) SetUpdatedAt(v time.Time) *ReportDraftUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ReportDraftUpdateOne) SetOrgID(v uuid.UUID) *ReportDraftUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ReportDraftUpdateOne) SetNillableOrgID(v *uuid.UUID) *ReportDraftUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProfileCode sets the "profile_code" field.
func (_u *ReportDraftUpdateOne) SetProfileCode(v string) *ReportDraftUpdateOne {
	_u.mutation.SetProfileCode(v)
	return _u
}

// SetNillableProfileCode sets the "profile_code" field if the given value is not nil.
func (_u *ReportDraftUpdateOne) SetNillableProfileCode(v *string) *ReportDraftUpdateOne {
	if v != nil {
		_u.SetProfileCode(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *ReportDraftUpdateOne) SetSections(v map[string]string) *ReportDraftUpdateOne {
	_u.mutation.SetSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *ReportDraftUpdateOne) ClearSections() *ReportDraftUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// Mutation returns the ReportDraftMutation object of the builder.
func (_u *ReportDraftUpdateOne) Mutation() *ReportDraftMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportDraftUpdate builder.
func (_u *ReportDraftUpdateOne) Where(ps ...predicate.ReportDraft) *ReportDraftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportDraftUpdateOne) Select(field string, fields ...string) *ReportDraftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportDraft entity.
func (_u *ReportDraftUpdateOne) Save(ctx context.Context) (*ReportDraft, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportDraftUpdateOne) SaveX(ctx context.Context) *ReportDraft {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportDraftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportDraftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportDraftUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reportdraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportDraftUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileCode(); ok {
		if err := reportdraft.ProfileCodeValidator(v); err != nil {
			return &ValidationError{Name: "profile_code", err: fmt.Errorf(`repo: validator failed for field "ReportDraft.profile_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportDraftUpdateOne) sqlSave(ctx context.Context) (_node *ReportDraft, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportdraft.Table, reportdraft.Columns, sqlgraph.NewFieldSpec(reportdraft.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ReportDraft.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportdraft.FieldID)
		for _, f := range fields {
			if !reportdraft.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != reportdraft.FieldID {
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
		_spec.SetField(reportdraft.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(reportdraft.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProfileCode(); ok {
		_spec.SetField(reportdraft.FieldProfileCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(reportdraft.FieldSections, field.TypeJSON, value)
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(reportdraft.FieldSections, field.TypeJSON)
	}
	_node = &ReportDraft{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportdraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
