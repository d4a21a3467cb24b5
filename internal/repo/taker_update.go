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
	"github.com/resonara/resonara_backend/internal/repo/organization"
	"github.com/resonara/resonara_backend/internal/repo/predicate"
	"github.com/resonara/resonara_backend/internal/repo/submission"
	"github.com/resonara/resonara_backend/internal/repo/taker"
	"github.com/resonara/resonara_backend/internal/repo/testresult"
)

// TakerUpdate is the builder for updating Taker entities.
type TakerUpdate struct {
	config
	hooks    []Hook
	mutation *TakerMutation
}

// Where appends a list predicates to the TakerUpdate builder.
func (_u *TakerUpdate) Where(ps ...predicate.Taker) *TakerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *TakerUpdate) SetOrgID(v uuid.UUID) *TakerUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TakerUpdate) SetNillableOrgID(v *uuid.UUID) *TakerUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TakerUpdate) SetName(v string) *TakerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TakerUpdate) SetNillableName(v *string) *TakerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TakerUpdate) SetEmail(v string) *TakerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TakerUpdate) SetNillableEmail(v *string) *TakerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TakerUpdate) ClearEmail() *TakerUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *TakerUpdate) SetPhone(v string) *TakerUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *TakerUpdate) SetNillablePhone(v *string) *TakerUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *TakerUpdate) ClearPhone() *TakerUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetOrganizationID sets the "organization" edge to the Organization entity by ID.
func (_u *TakerUpdate) SetOrganizationID(id uuid.UUID) *TakerUpdate {
	_u.mutation.SetOrganizationID(id)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *TakerUpdate) SetOrganization(v *Organization) *TakerUpdate {
	return _u.SetOrganizationID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *TakerUpdate) AddSubmissionIDs(ids ...uuid.UUID) *TakerUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *TakerUpdate) AddSubmissions(v ...*Submission) *TakerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddResultIDs adds the "results" edge to the TestResult entity by IDs.
func (_u *TakerUpdate) AddResultIDs(ids ...uuid.UUID) *TakerUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the TestResult entity.
func (_u *TakerUpdate) AddResults(v ...*TestResult) *TakerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the TakerMutation object of the builder.
func (_u *TakerUpdate) Mutation() *TakerMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *TakerUpdate) ClearOrganization() *TakerUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *TakerUpdate) ClearSubmissions() *TakerUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *TakerUpdate) RemoveSubmissionIDs(ids ...uuid.UUID) *TakerUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *TakerUpdate) RemoveSubmissions(v ...*Submission) *TakerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearResults clears all "results" edges to the TestResult entity.
func (_u *TakerUpdate) ClearResults() *TakerUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to TestResult entities by IDs.
func (_u *TakerUpdate) RemoveResultIDs(ids ...uuid.UUID) *TakerUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to TestResult entities.
func (_u *TakerUpdate) RemoveResults(v ...*TestResult) *TakerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TakerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TakerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TakerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TakerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TakerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := taker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Taker.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := taker.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Taker.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := taker.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Taker.phone": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Taker.organization"`)
	}
	return nil
}

func (_u *TakerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taker.Table, taker.Columns, sqlgraph.NewFieldSpec(taker.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(taker.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(taker.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(taker.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(taker.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(taker.FieldPhone, field.TypeString)
	}
	if _u.mutation.OrganizationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TakerUpdateOne is the builder for updating a single Taker entity.
type TakerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TakerMutation
}

// SetOrgID sets the "org_id" field.
func (_u *TakerUpdateOne) SetOrgID(v uuid.UUID) *TakerUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TakerUpdateOne) SetNillableOrgID(v *uuid.UUID) *TakerUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TakerUpdateOne) SetName(v string) *TakerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TakerUpdateOne) SetNillableName(v *string) *TakerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TakerUpdateOne) SetEmail(v string) *TakerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TakerUpdateOne) SetNillableEmail(v *string) *TakerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TakerUpdateOne) ClearEmail() *TakerUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *TakerUpdateOne) SetPhone(v string) *TakerUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *TakerUpdateOne) SetNillablePhone(v *string) *TakerUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *TakerUpdateOne) ClearPhone() *TakerUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetOrganizationID sets the "organization" edge to the Organization entity by ID.
func (_u *TakerUpdateOne) SetOrganizationID(id uuid.UUID) *TakerUpdateOne {
	_u.mutation.SetOrganizationID(id)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *TakerUpdateOne) SetOrganization(v *Organization) *TakerUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *TakerUpdateOne) AddSubmissionIDs(ids ...uuid.UUID) *TakerUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *TakerUpdateOne) AddSubmissions(v ...*Submission) *TakerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddResultIDs adds the "results" edge to the TestResult entity by IDs.
func (_u *TakerUpdateOne) AddResultIDs(ids ...uuid.UUID) *TakerUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the TestResult entity.
func (_u *TakerUpdateOne) AddResults(v ...*TestResult) *TakerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the TakerMutation object of the builder.
func (_u *TakerUpdateOne) Mutation() *TakerMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *TakerUpdateOne) ClearOrganization() *TakerUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *TakerUpdateOne) ClearSubmissions() *TakerUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *TakerUpdateOne) RemoveSubmissionIDs(ids ...uuid.UUID) *TakerUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *TakerUpdateOne) RemoveSubmissions(v ...*Submission) *TakerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearResults clears all "results" edges to the TestResult entity.
func (_u *TakerUpdateOne) ClearResults() *TakerUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to TestResult entities by IDs.
func (_u *TakerUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *TakerUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to TestResult entities.
func (_u *TakerUpdateOne) RemoveResults(v ...*TestResult) *TakerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the TakerUpdate builder.
func (_u *TakerUpdateOne) Where(ps ...predicate.Taker) *TakerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TakerUpdateOne) Select(field string, fields ...string) *TakerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Taker entity.
func (_u *TakerUpdateOne) Save(ctx context.Context) (*Taker, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TakerUpdateOne) SaveX(ctx context.Context) *Taker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TakerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TakerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TakerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := taker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Taker.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := taker.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Taker.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := taker.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Taker.phone": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Taker.organization"`)
	}
	return nil
}

func (_u *TakerUpdateOne) sqlSave(ctx context.Context) (_node *Taker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taker.Table, taker.Columns, sqlgraph.NewFieldSpec(taker.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Taker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taker.FieldID)
		for _, f := range fields {
			if !taker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != taker.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(taker.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(taker.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(taker.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(taker.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(taker.FieldPhone, field.TypeString)
	}
	if _u.mutation.OrganizationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Taker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
