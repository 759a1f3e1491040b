// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// ProblemSessionsColumns holds the columns for the "problem_sessions" table.
	ProblemSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "problem_text", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProblemSessionsTable holds the schema information for the "problem_sessions" table.
	ProblemSessionsTable = &schema.Table{
		Name:       "problem_sessions",
		Columns:    ProblemSessionsColumns,
		PrimaryKey: []*schema.Column{ProblemSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "problemsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProblemSessionsColumns[3]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_answer", Type: field.TypeFloat64},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "feedback_text", Type: field.TypeString, Size: 2147483647},
		{Name: "is_revealed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_problem_sessions_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[6]},
				RefColumns: []*schema.Column{ProblemSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_session_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[6]},
			},
			{
				Name:    "submission_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		ProblemSessionsTable,
		SubmissionsTable,
	}
)

func init() {
	SubmissionsTable.ForeignKeys[0].RefTable = ProblemSessionsTable
}
