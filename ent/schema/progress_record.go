package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord is the running mastery state for one
// (user, subject, topic, skill) tuple. Upserted transactionally on
// every accepted answer; never deleted.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("skill").NotEmpty(),
		field.Int("total_answered").
			Default(0).
			NonNegative(),
		field.Int("correct_answers").
			Default(0).
			NonNegative(),
		field.Float("mastery_level").
			Default(0).
			Comment("Confidence-damped accuracy in [0,1]"),
		field.Int("current_streak").
			Default(0).
			NonNegative(),
		field.Int("best_streak").
			Default(0).
			NonNegative(),
		field.Time("last_practiced").
			Default(time.Now),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject", "topic", "skill").
			Unique(),
		index.Fields("user_id"),
	}
}
