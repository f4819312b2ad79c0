// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "score", Type: field.TypeFloat64},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_skill",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[8]},
			},
		},
	}
	// AttemptItemsColumns holds the columns for the "attempt_items" table.
	AttemptItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_version", Type: field.TypeInt},
		{Name: "skill", Type: field.TypeString},
		{Name: "stem", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_option", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Nullable: true},
		{Name: "hint", Type: field.TypeString, Nullable: true},
		{Name: "answer_option", Type: field.TypeString, Nullable: true},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "is_correct", Type: field.TypeBool, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
	}
	// AttemptItemsTable holds the schema information for the "attempt_items" table.
	AttemptItemsTable = &schema.Table{
		Name:       "attempt_items",
		Columns:    AttemptItemsColumns,
		PrimaryKey: []*schema.Column{AttemptItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptitem_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptItemsColumns[2]},
			},
			{
				Name:    "attemptitem_attempt_id_ordinal",
				Unique:  true,
				Columns: []*schema.Column{AttemptItemsColumns[2], AttemptItemsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
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
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "total_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "mastery_level", Type: field.TypeFloat64, Default: 0},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_user_id_subject_topic_skill",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2], ProgressRecordsColumns[3], ProgressRecordsColumns[4]},
			},
			{
				Name:    "progressrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[1]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "stem", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_option", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Nullable: true},
		{Name: "hint", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeInt, Default: 3},
		{Name: "source", Type: field.TypeString, Default: "seed"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_question_id_version",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2]},
			},
			{
				Name:    "question_subject_topic_skill",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[3], QuestionsColumns[4], QuestionsColumns[5]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "abandoned"}, Default: "in_progress"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "final_score", Type: field.TypeFloat64, Nullable: true},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[2]},
			},
			{
				Name:    "quizattempt_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[2], QuizAttemptsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		AttemptItemsTable,
		LlmRequestEventsTable,
		ProgressRecordsTable,
		QuestionsTable,
		QuizAttemptsTable,
	}
)

func init() {
}
