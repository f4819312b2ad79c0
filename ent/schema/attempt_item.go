package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerOption is one choice shown to the learner, stored inside the
// item's options JSON column. Grading matches on the canonical option
// ID, never on the display text.
type AnswerOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AttemptItem is one question slot inside a QuizAttempt. The question
// content is snapshotted at attempt-start time so later edits to the
// question bank cannot change historical grading.
type AttemptItem struct {
	ent.Schema
}

func (AttemptItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			Unique().
			Immutable().
			Comment("External UUID for the item"),
		field.String("attempt_id").
			NotEmpty().
			Immutable().
			Comment("Links to QuizAttempt.attempt_id"),
		field.Int("ordinal").
			Positive().
			Immutable().
			Comment("1-based position within the attempt"),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.Int("question_version").
			Positive().
			Immutable(),
		field.String("skill").
			NotEmpty().
			Immutable(),
		field.String("stem").
			NotEmpty().
			Immutable().
			Comment("Question text as shown to the learner"),
		field.JSON("options", []AnswerOption{}).
			Comment("Choices as shown, frozen at start time"),
		field.String("correct_option").
			NotEmpty().
			Immutable().
			Comment("Canonical ID of the correct option"),
		field.String("explanation").
			Optional(),
		field.String("hint").
			Optional(),
		field.String("answer_option").
			Optional().
			Nillable().
			Comment("The learner's chosen option ID, set at most once"),
		field.String("idempotency_key").
			Optional().
			Default("").
			Comment("Client token recorded with the accepted answer write"),
		field.Bool("is_correct").
			Optional().
			Nillable(),
		field.Float("score").
			Optional().
			Nillable(),
		field.Int("hints_used").
			Default(0),
		field.Int("attempt_count").
			Default(0).
			Comment("Accepted answer writes; idempotent replays do not count"),
		field.Time("responded_at").
			Optional().
			Nillable(),
	}
}

func (AttemptItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("attempt_id", "ordinal").
			Unique(),
	}
}
