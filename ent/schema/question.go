package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a bank entry available for attempt selection. Editing a
// question produces a new (question_id, version) row; attempts
// reference the exact version they snapshotted.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.Int("version").
			Positive().
			Default(1).
			Immutable(),
		field.String("subject").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("skill").NotEmpty(),
		field.String("stem").NotEmpty(),
		field.JSON("options", []AnswerOption{}),
		field.String("correct_option").
			NotEmpty().
			Comment("Canonical ID of the correct option"),
		field.String("explanation").
			Optional(),
		field.String("hint").
			Optional(),
		field.Int("difficulty").
			Range(1, 5).
			Default(3),
		field.String("source").
			Default("seed").
			Comment("seed or llm"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id", "version").
			Unique(),
		index.Fields("subject", "topic", "skill"),
	}
}
