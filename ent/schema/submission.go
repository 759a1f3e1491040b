package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission records one attempt (or reveal) against a ProblemSession.
// A session may accumulate any number of submissions, including several
// correct ones or several reveals.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable().
			Comment("ProblemSession this attempt belongs to"),
		field.Float("user_answer").
			Immutable().
			Comment("What the student entered (the correct answer for reveals)"),
		field.Bool("is_correct").
			Immutable().
			Comment("Within tolerance of the correct answer, or a reveal"),
		field.Text("feedback_text").
			Immutable().
			Comment("LLM-generated feedback shown to the student"),
		field.Bool("is_revealed").
			Default(false).
			Immutable().
			Comment("True when the student gave up and revealed the answer"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ProblemSession.Type).
			Ref("submissions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("created_at"),
	}
}
