package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ProblemSession is one generated word problem and its canonical answer.
// Created exactly once by the generator, immutable thereafter.
type ProblemSession struct {
	ent.Schema
}

func (ProblemSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable().
			Comment("Store-generated opaque session identifier"),
		field.Text("problem_text").
			NotEmpty().
			Immutable().
			Comment("The word problem shown to the student"),
		field.Float("correct_answer").
			Immutable().
			Comment("Canonical numeric answer"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ProblemSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("submissions", Submission.Type),
	}
}

func (ProblemSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
