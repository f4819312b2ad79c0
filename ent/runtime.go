// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/solvio/solvio/ent/answerevent"
	"github.com/solvio/solvio/ent/attemptitem"
	"github.com/solvio/solvio/ent/llmrequestevent"
	"github.com/solvio/solvio/ent/progressrecord"
	"github.com/solvio/solvio/ent/question"
	"github.com/solvio/solvio/ent/quizattempt"
	"github.com/solvio/solvio/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[0].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[1].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescItemID is the schema descriptor for item_id field.
	answereventDescItemID := answereventFields[2].Descriptor()
	// answerevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	answerevent.ItemIDValidator = answereventDescItemID.Validators[0].(func(string) error)
	// answereventDescSubject is the schema descriptor for subject field.
	answereventDescSubject := answereventFields[3].Descriptor()
	// answerevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	answerevent.SubjectValidator = answereventDescSubject.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[4].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescSkill is the schema descriptor for skill field.
	answereventDescSkill := answereventFields[5].Descriptor()
	// answerevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	answerevent.SkillValidator = answereventDescSkill.Validators[0].(func(string) error)
	attemptitemFields := schema.AttemptItem{}.Fields()
	_ = attemptitemFields
	// attemptitemDescAttemptID is the schema descriptor for attempt_id field.
	attemptitemDescAttemptID := attemptitemFields[1].Descriptor()
	// attemptitem.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptitem.AttemptIDValidator = attemptitemDescAttemptID.Validators[0].(func(string) error)
	// attemptitemDescOrdinal is the schema descriptor for ordinal field.
	attemptitemDescOrdinal := attemptitemFields[2].Descriptor()
	// attemptitem.OrdinalValidator is a validator for the "ordinal" field. It is called by the builders before save.
	attemptitem.OrdinalValidator = attemptitemDescOrdinal.Validators[0].(func(int) error)
	// attemptitemDescQuestionID is the schema descriptor for question_id field.
	attemptitemDescQuestionID := attemptitemFields[3].Descriptor()
	// attemptitem.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptitem.QuestionIDValidator = attemptitemDescQuestionID.Validators[0].(func(string) error)
	// attemptitemDescQuestionVersion is the schema descriptor for question_version field.
	attemptitemDescQuestionVersion := attemptitemFields[4].Descriptor()
	// attemptitem.QuestionVersionValidator is a validator for the "question_version" field. It is called by the builders before save.
	attemptitem.QuestionVersionValidator = attemptitemDescQuestionVersion.Validators[0].(func(int) error)
	// attemptitemDescSkill is the schema descriptor for skill field.
	attemptitemDescSkill := attemptitemFields[5].Descriptor()
	// attemptitem.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	attemptitem.SkillValidator = attemptitemDescSkill.Validators[0].(func(string) error)
	// attemptitemDescStem is the schema descriptor for stem field.
	attemptitemDescStem := attemptitemFields[6].Descriptor()
	// attemptitem.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	attemptitem.StemValidator = attemptitemDescStem.Validators[0].(func(string) error)
	// attemptitemDescCorrectOption is the schema descriptor for correct_option field.
	attemptitemDescCorrectOption := attemptitemFields[8].Descriptor()
	// attemptitem.CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	attemptitem.CorrectOptionValidator = attemptitemDescCorrectOption.Validators[0].(func(string) error)
	// attemptitemDescIdempotencyKey is the schema descriptor for idempotency_key field.
	attemptitemDescIdempotencyKey := attemptitemFields[12].Descriptor()
	// attemptitem.DefaultIdempotencyKey holds the default value on creation for the idempotency_key field.
	attemptitem.DefaultIdempotencyKey = attemptitemDescIdempotencyKey.Default.(string)
	// attemptitemDescHintsUsed is the schema descriptor for hints_used field.
	attemptitemDescHintsUsed := attemptitemFields[15].Descriptor()
	// attemptitem.DefaultHintsUsed holds the default value on creation for the hints_used field.
	attemptitem.DefaultHintsUsed = attemptitemDescHintsUsed.Default.(int)
	// attemptitemDescAttemptCount is the schema descriptor for attempt_count field.
	attemptitemDescAttemptCount := attemptitemFields[16].Descriptor()
	// attemptitem.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	attemptitem.DefaultAttemptCount = attemptitemDescAttemptCount.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescUserID is the schema descriptor for user_id field.
	progressrecordDescUserID := progressrecordFields[0].Descriptor()
	// progressrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressrecord.UserIDValidator = progressrecordDescUserID.Validators[0].(func(string) error)
	// progressrecordDescSubject is the schema descriptor for subject field.
	progressrecordDescSubject := progressrecordFields[1].Descriptor()
	// progressrecord.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	progressrecord.SubjectValidator = progressrecordDescSubject.Validators[0].(func(string) error)
	// progressrecordDescTopic is the schema descriptor for topic field.
	progressrecordDescTopic := progressrecordFields[2].Descriptor()
	// progressrecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	progressrecord.TopicValidator = progressrecordDescTopic.Validators[0].(func(string) error)
	// progressrecordDescSkill is the schema descriptor for skill field.
	progressrecordDescSkill := progressrecordFields[3].Descriptor()
	// progressrecord.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	progressrecord.SkillValidator = progressrecordDescSkill.Validators[0].(func(string) error)
	// progressrecordDescTotalAnswered is the schema descriptor for total_answered field.
	progressrecordDescTotalAnswered := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultTotalAnswered holds the default value on creation for the total_answered field.
	progressrecord.DefaultTotalAnswered = progressrecordDescTotalAnswered.Default.(int)
	// progressrecord.TotalAnsweredValidator is a validator for the "total_answered" field. It is called by the builders before save.
	progressrecord.TotalAnsweredValidator = progressrecordDescTotalAnswered.Validators[0].(func(int) error)
	// progressrecordDescCorrectAnswers is the schema descriptor for correct_answers field.
	progressrecordDescCorrectAnswers := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	progressrecord.DefaultCorrectAnswers = progressrecordDescCorrectAnswers.Default.(int)
	// progressrecord.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	progressrecord.CorrectAnswersValidator = progressrecordDescCorrectAnswers.Validators[0].(func(int) error)
	// progressrecordDescMasteryLevel is the schema descriptor for mastery_level field.
	progressrecordDescMasteryLevel := progressrecordFields[6].Descriptor()
	// progressrecord.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	progressrecord.DefaultMasteryLevel = progressrecordDescMasteryLevel.Default.(float64)
	// progressrecordDescCurrentStreak is the schema descriptor for current_streak field.
	progressrecordDescCurrentStreak := progressrecordFields[7].Descriptor()
	// progressrecord.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	progressrecord.DefaultCurrentStreak = progressrecordDescCurrentStreak.Default.(int)
	// progressrecord.CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	progressrecord.CurrentStreakValidator = progressrecordDescCurrentStreak.Validators[0].(func(int) error)
	// progressrecordDescBestStreak is the schema descriptor for best_streak field.
	progressrecordDescBestStreak := progressrecordFields[8].Descriptor()
	// progressrecord.DefaultBestStreak holds the default value on creation for the best_streak field.
	progressrecord.DefaultBestStreak = progressrecordDescBestStreak.Default.(int)
	// progressrecord.BestStreakValidator is a validator for the "best_streak" field. It is called by the builders before save.
	progressrecord.BestStreakValidator = progressrecordDescBestStreak.Validators[0].(func(int) error)
	// progressrecordDescLastPracticed is the schema descriptor for last_practiced field.
	progressrecordDescLastPracticed := progressrecordFields[9].Descriptor()
	// progressrecord.DefaultLastPracticed holds the default value on creation for the last_practiced field.
	progressrecord.DefaultLastPracticed = progressrecordDescLastPracticed.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionID is the schema descriptor for question_id field.
	questionDescQuestionID := questionFields[0].Descriptor()
	// question.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	question.QuestionIDValidator = questionDescQuestionID.Validators[0].(func(string) error)
	// questionDescVersion is the schema descriptor for version field.
	questionDescVersion := questionFields[1].Descriptor()
	// question.DefaultVersion holds the default value on creation for the version field.
	question.DefaultVersion = questionDescVersion.Default.(int)
	// question.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	question.VersionValidator = questionDescVersion.Validators[0].(func(int) error)
	// questionDescSubject is the schema descriptor for subject field.
	questionDescSubject := questionFields[2].Descriptor()
	// question.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	question.SubjectValidator = questionDescSubject.Validators[0].(func(string) error)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[3].Descriptor()
	// question.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	question.TopicValidator = questionDescTopic.Validators[0].(func(string) error)
	// questionDescSkill is the schema descriptor for skill field.
	questionDescSkill := questionFields[4].Descriptor()
	// question.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	question.SkillValidator = questionDescSkill.Validators[0].(func(string) error)
	// questionDescStem is the schema descriptor for stem field.
	questionDescStem := questionFields[5].Descriptor()
	// question.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	question.StemValidator = questionDescStem.Validators[0].(func(string) error)
	// questionDescCorrectOption is the schema descriptor for correct_option field.
	questionDescCorrectOption := questionFields[7].Descriptor()
	// question.CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	question.CorrectOptionValidator = questionDescCorrectOption.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[10].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(int)
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(int) error)
	// questionDescSource is the schema descriptor for source field.
	questionDescSource := questionFields[11].Descriptor()
	// question.DefaultSource holds the default value on creation for the source field.
	question.DefaultSource = questionDescSource.Default.(string)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[12].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescUserID is the schema descriptor for user_id field.
	quizattemptDescUserID := quizattemptFields[1].Descriptor()
	// quizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattempt.UserIDValidator = quizattemptDescUserID.Validators[0].(func(string) error)
	// quizattemptDescSubject is the schema descriptor for subject field.
	quizattemptDescSubject := quizattemptFields[2].Descriptor()
	// quizattempt.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	quizattempt.SubjectValidator = quizattemptDescSubject.Validators[0].(func(string) error)
	// quizattemptDescTopic is the schema descriptor for topic field.
	quizattemptDescTopic := quizattemptFields[3].Descriptor()
	// quizattempt.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizattempt.TopicValidator = quizattemptDescTopic.Validators[0].(func(string) error)
	// quizattemptDescTotalQuestions is the schema descriptor for total_questions field.
	quizattemptDescTotalQuestions := quizattemptFields[4].Descriptor()
	// quizattempt.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	quizattempt.TotalQuestionsValidator = quizattemptDescTotalQuestions.Validators[0].(func(int) error)
	// quizattemptDescStartedAt is the schema descriptor for started_at field.
	quizattemptDescStartedAt := quizattemptFields[6].Descriptor()
	// quizattempt.DefaultStartedAt holds the default value on creation for the started_at field.
	quizattempt.DefaultStartedAt = quizattemptDescStartedAt.Default.(func() time.Time)
}
