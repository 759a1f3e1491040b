// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathtutor/ent/llmrequestevent"
	"github.com/abhisek/mathtutor/ent/problemsession"
	"github.com/abhisek/mathtutor/ent/schema"
	"github.com/abhisek/mathtutor/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	problemsessionFields := schema.ProblemSession{}.Fields()
	_ = problemsessionFields
	// problemsessionDescProblemText is the schema descriptor for problem_text field.
	problemsessionDescProblemText := problemsessionFields[1].Descriptor()
	// problemsession.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	problemsession.ProblemTextValidator = problemsessionDescProblemText.Validators[0].(func(string) error)
	// problemsessionDescCreatedAt is the schema descriptor for created_at field.
	problemsessionDescCreatedAt := problemsessionFields[3].Descriptor()
	// problemsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	problemsession.DefaultCreatedAt = problemsessionDescCreatedAt.Default.(func() time.Time)
	// problemsessionDescID is the schema descriptor for id field.
	problemsessionDescID := problemsessionFields[0].Descriptor()
	// problemsession.DefaultID holds the default value on creation for the id field.
	problemsession.DefaultID = problemsessionDescID.Default.(func() string)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescSessionID is the schema descriptor for session_id field.
	submissionDescSessionID := submissionFields[0].Descriptor()
	// submission.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	submission.SessionIDValidator = submissionDescSessionID.Validators[0].(func(string) error)
	// submissionDescIsRevealed is the schema descriptor for is_revealed field.
	submissionDescIsRevealed := submissionFields[4].Descriptor()
	// submission.DefaultIsRevealed holds the default value on creation for the is_revealed field.
	submission.DefaultIsRevealed = submissionDescIsRevealed.Default.(bool)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[5].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
}
