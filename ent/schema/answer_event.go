package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent is the append-only record of one graded answer. The
// progress aggregator derives its daily-activity rollups from this
// table rather than re-reading mutable attempt rows.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("attempt_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("skill").NotEmpty(),
		field.Bool("correct"),
		field.Float("score"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("attempt_id"),
		index.Fields("skill"),
	}
}
