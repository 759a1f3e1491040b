// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathtutor/ent/problemsession"
	"github.com/abhisek/mathtutor/ent/submission"
)

// ProblemSessionCreate is the builder for creating a ProblemSession entity.
type ProblemSessionCreate struct {
	config
	mutation *ProblemSessionMutation
	hooks    []Hook
}

// SetProblemText sets the "problem_text" field.
func (_c *ProblemSessionCreate) SetProblemText(v string) *ProblemSessionCreate {
	_c.mutation.SetProblemText(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ProblemSessionCreate) SetCorrectAnswer(v float64) *ProblemSessionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProblemSessionCreate) SetCreatedAt(v time.Time) *ProblemSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProblemSessionCreate) SetNillableCreatedAt(v *time.Time) *ProblemSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProblemSessionCreate) SetID(v string) *ProblemSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProblemSessionCreate) SetNillableID(v *string) *ProblemSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *ProblemSessionCreate) AddSubmissionIDs(ids ...int) *ProblemSessionCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *ProblemSessionCreate) AddSubmissions(v ...*Submission) *ProblemSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// Mutation returns the ProblemSessionMutation object of the builder.
func (_c *ProblemSessionCreate) Mutation() *ProblemSessionMutation {
	return _c.mutation
}

// Save creates the ProblemSession in the database.
func (_c *ProblemSessionCreate) Save(ctx context.Context) (*ProblemSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemSessionCreate) SaveX(ctx context.Context) *ProblemSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := problemsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := problemsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemSessionCreate) check() error {
	if _, ok := _c.mutation.ProblemText(); !ok {
		return &ValidationError{Name: "problem_text", err: errors.New(`ent: missing required field "ProblemSession.problem_text"`)}
	}
	if v, ok := _c.mutation.ProblemText(); ok {
		if err := problemsession.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "ProblemSession.problem_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "ProblemSession.correct_answer"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProblemSession.created_at"`)}
	}
	return nil
}

func (_c *ProblemSessionCreate) sqlSave(ctx context.Context) (*ProblemSession, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ProblemSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProblemSessionCreate) createSpec() (*ProblemSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ProblemSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problemsession.Table, sqlgraph.NewFieldSpec(problemsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProblemText(); ok {
		_spec.SetField(problemsession.FieldProblemText, field.TypeString, value)
		_node.ProblemText = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(problemsession.FieldCorrectAnswer, field.TypeFloat64, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(problemsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProblemSessionCreateBulk is the builder for creating many ProblemSession entities in bulk.
type ProblemSessionCreateBulk struct {
	config
	err      error
	builders []*ProblemSessionCreate
}

// Save creates the ProblemSession entities in the database.
func (_c *ProblemSessionCreateBulk) Save(ctx context.Context) ([]*ProblemSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProblemSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemSessionMutation)
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
func (_c *ProblemSessionCreateBulk) SaveX(ctx context.Context) []*ProblemSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
