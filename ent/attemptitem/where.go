// Code generated by ent, DO NOT EDIT.

package attemptitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/solvio/solvio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldItemID, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldAttemptID, v))
}

// Ordinal applies equality check predicate on the "ordinal" field. It's identical to OrdinalEQ.
func Ordinal(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldOrdinal, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionVersion applies equality check predicate on the "question_version" field. It's identical to QuestionVersionEQ.
func QuestionVersion(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldQuestionVersion, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldSkill, v))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldStem, v))
}

// CorrectOption applies equality check predicate on the "correct_option" field. It's identical to CorrectOptionEQ.
func CorrectOption(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldCorrectOption, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldExplanation, v))
}

// Hint applies equality check predicate on the "hint" field. It's identical to HintEQ.
func Hint(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldHint, v))
}

// AnswerOption applies equality check predicate on the "answer_option" field. It's identical to AnswerOptionEQ.
func AnswerOption(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldAnswerOption, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldIsCorrect, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldScore, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldHintsUsed, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldAttemptCount, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldRespondedAt, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldItemID, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldAttemptID, v))
}

// OrdinalEQ applies the EQ predicate on the "ordinal" field.
func OrdinalEQ(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldOrdinal, v))
}

// OrdinalNEQ applies the NEQ predicate on the "ordinal" field.
func OrdinalNEQ(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldOrdinal, v))
}

// OrdinalIn applies the In predicate on the "ordinal" field.
func OrdinalIn(vs ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldOrdinal, vs...))
}

// OrdinalNotIn applies the NotIn predicate on the "ordinal" field.
func OrdinalNotIn(vs ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldOrdinal, vs...))
}

// OrdinalGT applies the GT predicate on the "ordinal" field.
func OrdinalGT(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldOrdinal, v))
}

// OrdinalGTE applies the GTE predicate on the "ordinal" field.
func OrdinalGTE(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldOrdinal, v))
}

// OrdinalLT applies the LT predicate on the "ordinal" field.
func OrdinalLT(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldOrdinal, v))
}

// OrdinalLTE applies the LTE predicate on the "ordinal" field.
func OrdinalLTE(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldOrdinal, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldQuestionID, v))
}

// QuestionVersionEQ applies the EQ predicate on the "question_version" field.
func QuestionVersionEQ(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldQuestionVersion, v))
}

// QuestionVersionNEQ applies the NEQ predicate on the "question_version" field.
func QuestionVersionNEQ(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldQuestionVersion, v))
}

// QuestionVersionIn applies the In predicate on the "question_version" field.
func QuestionVersionIn(vs ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldQuestionVersion, vs...))
}

// QuestionVersionNotIn applies the NotIn predicate on the "question_version" field.
func QuestionVersionNotIn(vs ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldQuestionVersion, vs...))
}

// QuestionVersionGT applies the GT predicate on the "question_version" field.
func QuestionVersionGT(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldQuestionVersion, v))
}

// QuestionVersionGTE applies the GTE predicate on the "question_version" field.
func QuestionVersionGTE(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldQuestionVersion, v))
}

// QuestionVersionLT applies the LT predicate on the "question_version" field.
func QuestionVersionLT(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldQuestionVersion, v))
}

// QuestionVersionLTE applies the LTE predicate on the "question_version" field.
func QuestionVersionLTE(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldQuestionVersion, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldSkill, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldStem, v))
}

// CorrectOptionEQ applies the EQ predicate on the "correct_option" field.
func CorrectOptionEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldCorrectOption, v))
}

// CorrectOptionNEQ applies the NEQ predicate on the "correct_option" field.
func CorrectOptionNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldCorrectOption, v))
}

// CorrectOptionIn applies the In predicate on the "correct_option" field.
func CorrectOptionIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldCorrectOption, vs...))
}

// CorrectOptionNotIn applies the NotIn predicate on the "correct_option" field.
func CorrectOptionNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldCorrectOption, vs...))
}

// CorrectOptionGT applies the GT predicate on the "correct_option" field.
func CorrectOptionGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldCorrectOption, v))
}

// CorrectOptionGTE applies the GTE predicate on the "correct_option" field.
func CorrectOptionGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldCorrectOption, v))
}

// CorrectOptionLT applies the LT predicate on the "correct_option" field.
func CorrectOptionLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldCorrectOption, v))
}

// CorrectOptionLTE applies the LTE predicate on the "correct_option" field.
func CorrectOptionLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldCorrectOption, v))
}

// CorrectOptionContains applies the Contains predicate on the "correct_option" field.
func CorrectOptionContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldCorrectOption, v))
}

// CorrectOptionHasPrefix applies the HasPrefix predicate on the "correct_option" field.
func CorrectOptionHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldCorrectOption, v))
}

// CorrectOptionHasSuffix applies the HasSuffix predicate on the "correct_option" field.
func CorrectOptionHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldCorrectOption, v))
}

// CorrectOptionEqualFold applies the EqualFold predicate on the "correct_option" field.
func CorrectOptionEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldCorrectOption, v))
}

// CorrectOptionContainsFold applies the ContainsFold predicate on the "correct_option" field.
func CorrectOptionContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldCorrectOption, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldExplanation, v))
}

// HintEQ applies the EQ predicate on the "hint" field.
func HintEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldHint, v))
}

// HintNEQ applies the NEQ predicate on the "hint" field.
func HintNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldHint, v))
}

// HintIn applies the In predicate on the "hint" field.
func HintIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldHint, vs...))
}

// HintNotIn applies the NotIn predicate on the "hint" field.
func HintNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldHint, vs...))
}

// HintGT applies the GT predicate on the "hint" field.
func HintGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldHint, v))
}

// HintGTE applies the GTE predicate on the "hint" field.
func HintGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldHint, v))
}

// HintLT applies the LT predicate on the "hint" field.
func HintLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldHint, v))
}

// HintLTE applies the LTE predicate on the "hint" field.
func HintLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldHint, v))
}

// HintContains applies the Contains predicate on the "hint" field.
func HintContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldHint, v))
}

// HintHasPrefix applies the HasPrefix predicate on the "hint" field.
func HintHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldHint, v))
}

// HintHasSuffix applies the HasSuffix predicate on the "hint" field.
func HintHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldHint, v))
}

// HintIsNil applies the IsNil predicate on the "hint" field.
func HintIsNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIsNull(FieldHint))
}

// HintNotNil applies the NotNil predicate on the "hint" field.
func HintNotNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotNull(FieldHint))
}

// HintEqualFold applies the EqualFold predicate on the "hint" field.
func HintEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldHint, v))
}

// HintContainsFold applies the ContainsFold predicate on the "hint" field.
func HintContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldHint, v))
}

// AnswerOptionEQ applies the EQ predicate on the "answer_option" field.
func AnswerOptionEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldAnswerOption, v))
}

// AnswerOptionNEQ applies the NEQ predicate on the "answer_option" field.
func AnswerOptionNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldAnswerOption, v))
}

// AnswerOptionIn applies the In predicate on the "answer_option" field.
func AnswerOptionIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldAnswerOption, vs...))
}

// AnswerOptionNotIn applies the NotIn predicate on the "answer_option" field.
func AnswerOptionNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldAnswerOption, vs...))
}

// AnswerOptionGT applies the GT predicate on the "answer_option" field.
func AnswerOptionGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldAnswerOption, v))
}

// AnswerOptionGTE applies the GTE predicate on the "answer_option" field.
func AnswerOptionGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldAnswerOption, v))
}

// AnswerOptionLT applies the LT predicate on the "answer_option" field.
func AnswerOptionLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldAnswerOption, v))
}

// AnswerOptionLTE applies the LTE predicate on the "answer_option" field.
func AnswerOptionLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldAnswerOption, v))
}

// AnswerOptionContains applies the Contains predicate on the "answer_option" field.
func AnswerOptionContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldAnswerOption, v))
}

// AnswerOptionHasPrefix applies the HasPrefix predicate on the "answer_option" field.
func AnswerOptionHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldAnswerOption, v))
}

// AnswerOptionHasSuffix applies the HasSuffix predicate on the "answer_option" field.
func AnswerOptionHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldAnswerOption, v))
}

// AnswerOptionIsNil applies the IsNil predicate on the "answer_option" field.
func AnswerOptionIsNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIsNull(FieldAnswerOption))
}

// AnswerOptionNotNil applies the NotNil predicate on the "answer_option" field.
func AnswerOptionNotNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotNull(FieldAnswerOption))
}

// AnswerOptionEqualFold applies the EqualFold predicate on the "answer_option" field.
func AnswerOptionEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldAnswerOption, v))
}

// AnswerOptionContainsFold applies the ContainsFold predicate on the "answer_option" field.
func AnswerOptionContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldAnswerOption, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldIsCorrect, v))
}

// IsCorrectIsNil applies the IsNil predicate on the "is_correct" field.
func IsCorrectIsNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIsNull(FieldIsCorrect))
}

// IsCorrectNotNil applies the NotNil predicate on the "is_correct" field.
func IsCorrectNotNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotNull(FieldIsCorrect))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotNull(FieldScore))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldHintsUsed, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldAttemptCount, v))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.AttemptItem {
	return predicate.AttemptItem(sql.FieldNotNull(FieldRespondedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttemptItem) predicate.AttemptItem {
	return predicate.AttemptItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttemptItem) predicate.AttemptItem {
	return predicate.AttemptItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttemptItem) predicate.AttemptItem {
	return predicate.AttemptItem(sql.NotPredicates(p))
}
