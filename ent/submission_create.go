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

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SubmissionCreate) SetSessionID(v string) *SubmissionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *SubmissionCreate) SetUserAnswer(v float64) *SubmissionCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *SubmissionCreate) SetIsCorrect(v bool) *SubmissionCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetFeedbackText sets the "feedback_text" field.
func (_c *SubmissionCreate) SetFeedbackText(v string) *SubmissionCreate {
	_c.mutation.SetFeedbackText(v)
	return _c
}

// SetIsRevealed sets the "is_revealed" field.
func (_c *SubmissionCreate) SetIsRevealed(v bool) *SubmissionCreate {
	_c.mutation.SetIsRevealed(v)
	return _c
}

// SetNillableIsRevealed sets the "is_revealed" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableIsRevealed(v *bool) *SubmissionCreate {
	if v != nil {
		_c.SetIsRevealed(*v)
	}
	return _c
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

// SetSession sets the "session" edge to the ProblemSession entity.
func (_c *SubmissionCreate) SetSession(v *ProblemSession) *SubmissionCreate {
	return _c.SetSessionID(v.ID)
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
	if _, ok := _c.mutation.IsRevealed(); !ok {
		v := submission.DefaultIsRevealed
		_c.mutation.SetIsRevealed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Submission.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := submission.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Submission.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "Submission.user_answer"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "Submission.is_correct"`)}
	}
	if _, ok := _c.mutation.FeedbackText(); !ok {
		return &ValidationError{Name: "feedback_text", err: errors.New(`ent: missing required field "Submission.feedback_text"`)}
	}
	if _, ok := _c.mutation.IsRevealed(); !ok {
		return &ValidationError{Name: "is_revealed", err: errors.New(`ent: missing required field "Submission.is_revealed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Submission.session"`)}
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(submission.FieldUserAnswer, field.TypeFloat64, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(submission.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.FeedbackText(); ok {
		_spec.SetField(submission.FieldFeedbackText, field.TypeString, value)
		_node.FeedbackText = value
	}
	if value, ok := _c.mutation.IsRevealed(); ok {
		_spec.SetField(submission.FieldIsRevealed, field.TypeBool, value)
		_node.IsRevealed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.SessionTable,
			Columns: []string{submission.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(problemsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
