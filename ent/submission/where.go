// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/mathtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSessionID, v))
}

// UserAnswer applies equality check predicate on the "user_answer" field. It's identical to UserAnswerEQ.
func UserAnswer(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUserAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldIsCorrect, v))
}

// FeedbackText applies equality check predicate on the "feedback_text" field. It's identical to FeedbackTextEQ.
func FeedbackText(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFeedbackText, v))
}

// IsRevealed applies equality check predicate on the "is_revealed" field. It's identical to IsRevealedEQ.
func IsRevealed(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldIsRevealed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSessionID, v))
}

// UserAnswerEQ applies the EQ predicate on the "user_answer" field.
func UserAnswerEQ(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUserAnswer, v))
}

// UserAnswerNEQ applies the NEQ predicate on the "user_answer" field.
func UserAnswerNEQ(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUserAnswer, v))
}

// UserAnswerIn applies the In predicate on the "user_answer" field.
func UserAnswerIn(vs ...float64) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUserAnswer, vs...))
}

// UserAnswerNotIn applies the NotIn predicate on the "user_answer" field.
func UserAnswerNotIn(vs ...float64) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUserAnswer, vs...))
}

// UserAnswerGT applies the GT predicate on the "user_answer" field.
func UserAnswerGT(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUserAnswer, v))
}

// UserAnswerGTE applies the GTE predicate on the "user_answer" field.
func UserAnswerGTE(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUserAnswer, v))
}

// UserAnswerLT applies the LT predicate on the "user_answer" field.
func UserAnswerLT(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUserAnswer, v))
}

// UserAnswerLTE applies the LTE predicate on the "user_answer" field.
func UserAnswerLTE(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUserAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldIsCorrect, v))
}

// FeedbackTextEQ applies the EQ predicate on the "feedback_text" field.
func FeedbackTextEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFeedbackText, v))
}

// FeedbackTextNEQ applies the NEQ predicate on the "feedback_text" field.
func FeedbackTextNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldFeedbackText, v))
}

// FeedbackTextIn applies the In predicate on the "feedback_text" field.
func FeedbackTextIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldFeedbackText, vs...))
}

// FeedbackTextNotIn applies the NotIn predicate on the "feedback_text" field.
func FeedbackTextNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldFeedbackText, vs...))
}

// FeedbackTextGT applies the GT predicate on the "feedback_text" field.
func FeedbackTextGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldFeedbackText, v))
}

// FeedbackTextGTE applies the GTE predicate on the "feedback_text" field.
func FeedbackTextGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldFeedbackText, v))
}

// FeedbackTextLT applies the LT predicate on the "feedback_text" field.
func FeedbackTextLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldFeedbackText, v))
}

// FeedbackTextLTE applies the LTE predicate on the "feedback_text" field.
func FeedbackTextLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldFeedbackText, v))
}

// FeedbackTextContains applies the Contains predicate on the "feedback_text" field.
func FeedbackTextContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldFeedbackText, v))
}

// FeedbackTextHasPrefix applies the HasPrefix predicate on the "feedback_text" field.
func FeedbackTextHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldFeedbackText, v))
}

// FeedbackTextHasSuffix applies the HasSuffix predicate on the "feedback_text" field.
func FeedbackTextHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldFeedbackText, v))
}

// FeedbackTextEqualFold applies the EqualFold predicate on the "feedback_text" field.
func FeedbackTextEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldFeedbackText, v))
}

// FeedbackTextContainsFold applies the ContainsFold predicate on the "feedback_text" field.
func FeedbackTextContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldFeedbackText, v))
}

// IsRevealedEQ applies the EQ predicate on the "is_revealed" field.
func IsRevealedEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldIsRevealed, v))
}

// IsRevealedNEQ applies the NEQ predicate on the "is_revealed" field.
func IsRevealedNEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldIsRevealed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ProblemSession) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
