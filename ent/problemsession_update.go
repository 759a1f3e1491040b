// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathtutor/ent/predicate"
	"github.com/abhisek/mathtutor/ent/problemsession"
	"github.com/abhisek/mathtutor/ent/submission"
)

// ProblemSessionUpdate is the builder for updating ProblemSession entities.
type ProblemSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemSessionMutation
}

// Where appends a list predicates to the ProblemSessionUpdate builder.
func (_u *ProblemSessionUpdate) Where(ps ...predicate.ProblemSession) *ProblemSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *ProblemSessionUpdate) AddSubmissionIDs(ids ...int) *ProblemSessionUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *ProblemSessionUpdate) AddSubmissions(v ...*Submission) *ProblemSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the ProblemSessionMutation object of the builder.
func (_u *ProblemSessionUpdate) Mutation() *ProblemSessionMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *ProblemSessionUpdate) ClearSubmissions() *ProblemSessionUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *ProblemSessionUpdate) RemoveSubmissionIDs(ids ...int) *ProblemSessionUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *ProblemSessionUpdate) RemoveSubmissions(v ...*Submission) *ProblemSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProblemSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(problemsession.Table, problemsession.Columns, sqlgraph.NewFieldSpec(problemsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   problemsession.SubmissionsTable,
			Columns: []string{problemsession.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   problemsession.SubmissionsTable,
			Columns: []string{problemsession.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
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
			Table:   problemsession.SubmissionsTable,
			Columns: []string{problemsession.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemSessionUpdateOne is the builder for updating a single ProblemSession entity.
type ProblemSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemSessionMutation
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *ProblemSessionUpdateOne) AddSubmissionIDs(ids ...int) *ProblemSessionUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *ProblemSessionUpdateOne) AddSubmissions(v ...*Submission) *ProblemSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the ProblemSessionMutation object of the builder.
func (_u *ProblemSessionUpdateOne) Mutation() *ProblemSessionMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *ProblemSessionUpdateOne) ClearSubmissions() *ProblemSessionUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *ProblemSessionUpdateOne) RemoveSubmissionIDs(ids ...int) *ProblemSessionUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *ProblemSessionUpdateOne) RemoveSubmissions(v ...*Submission) *ProblemSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Where appends a list predicates to the ProblemSessionUpdate builder.
func (_u *ProblemSessionUpdateOne) Where(ps ...predicate.ProblemSession) *ProblemSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemSessionUpdateOne) Select(field string, fields ...string) *ProblemSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProblemSession entity.
func (_u *ProblemSessionUpdateOne) Save(ctx context.Context) (*ProblemSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSessionUpdateOne) SaveX(ctx context.Context) *ProblemSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProblemSessionUpdateOne) sqlSave(ctx context.Context) (_node *ProblemSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(problemsession.Table, problemsession.Columns, sqlgraph.NewFieldSpec(problemsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProblemSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problemsession.FieldID)
		for _, f := range fields {
			if !problemsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problemsession.FieldID {
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
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   problemsession.SubmissionsTable,
			Columns: []string{problemsession.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   problemsession.SubmissionsTable,
			Columns: []string{problemsession.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
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
			Table:   problemsession.SubmissionsTable,
			Columns: []string{problemsession.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProblemSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
