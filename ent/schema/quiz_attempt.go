package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt is one learner's pass through a set of quiz questions.
// Rows are append-only history: status only ever moves forward from
// in_progress to a terminal state, and attempts are never deleted.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			Immutable().
			Comment("External UUID for the attempt"),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owning user"),
		field.String("subject").
			NotEmpty().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Immutable(),
		field.Int("total_questions").
			Positive().
			Immutable(),
		field.Enum("status").
			Values("in_progress", "completed", "abandoned").
			Default("in_progress"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set iff status is completed"),
		field.Float("final_score").
			Optional().
			Nillable().
			Comment("Mean item score over answered items, set on completion"),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "status"),
	}
}
