// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solvio/solvio/ent/attemptitem"
	"github.com/solvio/solvio/ent/schema"
)

// AttemptItem is the model entity for the AttemptItem schema.
type AttemptItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External UUID for the item
	ItemID string `json:"item_id,omitempty"`
	// Links to QuizAttempt.attempt_id
	AttemptID string `json:"attempt_id,omitempty"`
	// 1-based position within the attempt
	Ordinal int `json:"ordinal,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// QuestionVersion holds the value of the "question_version" field.
	QuestionVersion int `json:"question_version,omitempty"`
	// Skill holds the value of the "skill" field.
	Skill string `json:"skill,omitempty"`
	// Question text as shown to the learner
	Stem string `json:"stem,omitempty"`
	// Choices as shown, frozen at start time
	Options []schema.AnswerOption `json:"options,omitempty"`
	// Canonical ID of the correct option
	CorrectOption string `json:"correct_option,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// Hint holds the value of the "hint" field.
	Hint string `json:"hint,omitempty"`
	// The learner's chosen option ID, set at most once
	AnswerOption *string `json:"answer_option,omitempty"`
	// Client token recorded with the accepted answer write
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect *bool `json:"is_correct,omitempty"`
	// Score holds the value of the "score" field.
	Score *float64 `json:"score,omitempty"`
	// HintsUsed holds the value of the "hints_used" field.
	HintsUsed int `json:"hints_used,omitempty"`
	// Accepted answer writes; idempotent replays do not count
	AttemptCount int `json:"attempt_count,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptitem.FieldOptions:
			values[i] = new([]byte)
		case attemptitem.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case attemptitem.FieldScore:
			values[i] = new(sql.NullFloat64)
		case attemptitem.FieldID, attemptitem.FieldOrdinal, attemptitem.FieldQuestionVersion, attemptitem.FieldHintsUsed, attemptitem.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case attemptitem.FieldItemID, attemptitem.FieldAttemptID, attemptitem.FieldQuestionID, attemptitem.FieldSkill, attemptitem.FieldStem, attemptitem.FieldCorrectOption, attemptitem.FieldExplanation, attemptitem.FieldHint, attemptitem.FieldAnswerOption, attemptitem.FieldIdempotencyKey:
			values[i] = new(sql.NullString)
		case attemptitem.FieldRespondedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptItem fields.
func (_m *AttemptItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attemptitem.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case attemptitem.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case attemptitem.FieldOrdinal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ordinal", values[i])
			} else if value.Valid {
				_m.Ordinal = int(value.Int64)
			}
		case attemptitem.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case attemptitem.FieldQuestionVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_version", values[i])
			} else if value.Valid {
				_m.QuestionVersion = int(value.Int64)
			}
		case attemptitem.FieldSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill", values[i])
			} else if value.Valid {
				_m.Skill = value.String
			}
		case attemptitem.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case attemptitem.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case attemptitem.FieldCorrectOption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_option", values[i])
			} else if value.Valid {
				_m.CorrectOption = value.String
			}
		case attemptitem.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case attemptitem.FieldHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint", values[i])
			} else if value.Valid {
				_m.Hint = value.String
			}
		case attemptitem.FieldAnswerOption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_option", values[i])
			} else if value.Valid {
				_m.AnswerOption = new(string)
				*_m.AnswerOption = value.String
			}
		case attemptitem.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = value.String
			}
		case attemptitem.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = new(bool)
				*_m.IsCorrect = value.Bool
			}
		case attemptitem.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(float64)
				*_m.Score = value.Float64
			}
		case attemptitem.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		case attemptitem.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case attemptitem.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptItem.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptItem.
// Note that you need to call AttemptItem.Unwrap() before calling this method if this AttemptItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptItem) Update() *AttemptItemUpdateOne {
	return NewAttemptItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptItem) Unwrap() *AttemptItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptItem) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("ordinal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ordinal))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("question_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionVersion))
	builder.WriteString(", ")
	builder.WriteString("skill=")
	builder.WriteString(_m.Skill)
	builder.WriteString(", ")
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("correct_option=")
	builder.WriteString(_m.CorrectOption)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("hint=")
	builder.WriteString(_m.Hint)
	builder.WriteString(", ")
	if v := _m.AnswerOption; v != nil {
		builder.WriteString("answer_option=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("idempotency_key=")
	builder.WriteString(_m.IdempotencyKey)
	builder.WriteString(", ")
	if v := _m.IsCorrect; v != nil {
		builder.WriteString("is_correct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AttemptItems is a parsable slice of AttemptItem.
type AttemptItems []*AttemptItem
