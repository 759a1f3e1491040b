// Code generated by ent, DO NOT EDIT.

package problemsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/mathtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldContainsFold(FieldID, id))
}

// ProblemText applies equality check predicate on the "problem_text" field. It's identical to ProblemTextEQ.
func ProblemText(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldProblemText, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldCreatedAt, v))
}

// ProblemTextEQ applies the EQ predicate on the "problem_text" field.
func ProblemTextEQ(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldProblemText, v))
}

// ProblemTextNEQ applies the NEQ predicate on the "problem_text" field.
func ProblemTextNEQ(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldProblemText, v))
}

// ProblemTextIn applies the In predicate on the "problem_text" field.
func ProblemTextIn(vs ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldProblemText, vs...))
}

// ProblemTextNotIn applies the NotIn predicate on the "problem_text" field.
func ProblemTextNotIn(vs ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldProblemText, vs...))
}

// ProblemTextGT applies the GT predicate on the "problem_text" field.
func ProblemTextGT(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldProblemText, v))
}

// ProblemTextGTE applies the GTE predicate on the "problem_text" field.
func ProblemTextGTE(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldProblemText, v))
}

// ProblemTextLT applies the LT predicate on the "problem_text" field.
func ProblemTextLT(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldProblemText, v))
}

// ProblemTextLTE applies the LTE predicate on the "problem_text" field.
func ProblemTextLTE(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldProblemText, v))
}

// ProblemTextContains applies the Contains predicate on the "problem_text" field.
func ProblemTextContains(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldContains(FieldProblemText, v))
}

// ProblemTextHasPrefix applies the HasPrefix predicate on the "problem_text" field.
func ProblemTextHasPrefix(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldHasPrefix(FieldProblemText, v))
}

// ProblemTextHasSuffix applies the HasSuffix predicate on the "problem_text" field.
func ProblemTextHasSuffix(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldHasSuffix(FieldProblemText, v))
}

// ProblemTextEqualFold applies the EqualFold predicate on the "problem_text" field.
func ProblemTextEqualFold(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEqualFold(FieldProblemText, v))
}

// ProblemTextContainsFold applies the ContainsFold predicate on the "problem_text" field.
func ProblemTextContainsFold(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldContainsFold(FieldProblemText, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.ProblemSession {
	return predicate.ProblemSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.ProblemSession {
	return predicate.ProblemSession(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProblemSession) predicate.ProblemSession {
	return predicate.ProblemSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProblemSession) predicate.ProblemSession {
	return predicate.ProblemSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProblemSession) predicate.ProblemSession {
	return predicate.ProblemSession(sql.NotPredicates(p))
}
