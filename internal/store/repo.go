package store

import (
	"context"
	"time"
)

// AttemptStatus is the lifecycle state of a QuizAttempt.
type AttemptStatus string

const (
	StatusInProgress AttemptStatus = "in_progress"
	StatusCompleted  AttemptStatus = "completed"
	StatusAbandoned  AttemptStatus = "abandoned"
)

// Terminal reports whether no further transitions are permitted.
func (s AttemptStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// Option is one answer choice as shown to the learner.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizAttempt is the typed record for one attempt row.
type QuizAttempt struct {
	AttemptID      string
	UserID         string
	Subject        string
	Topic          string
	TotalQuestions int
	Status         AttemptStatus
	StartedAt      time.Time
	CompletedAt    *time.Time
	FinalScore     *float64
}

// AttemptItem is the typed record for one question slot. Question
// content fields are the immutable snapshot taken at start time.
type AttemptItem struct {
	ItemID          string
	AttemptID       string
	Ordinal         int
	QuestionID      string
	QuestionVersion int
	Skill           string
	Stem            string
	Options         []Option
	CorrectOption   string
	Explanation     string
	Hint            string

	AnswerOption   *string
	IdempotencyKey string
	IsCorrect      *bool
	Score          *float64
	HintsUsed      int
	AttemptCount   int
	RespondedAt    *time.Time
}

// Answered reports whether an answer write has been accepted for this item.
func (it *AttemptItem) Answered() bool {
	return it.AnswerOption != nil
}

// ProgressKey identifies one progress record.
type ProgressKey struct {
	UserID  string
	Subject string
	Topic   string
	Skill   string
}

// ProgressRecord is the running mastery state for one key.
type ProgressRecord struct {
	Key            ProgressKey
	TotalAnswered  int
	CorrectAnswers int
	MasteryLevel   float64
	CurrentStreak  int
	BestStreak     int
	LastPracticed  time.Time
}

// Question provenance values for QuestionSnapshot.Source.
const (
	SourceSeed = "seed"
	SourceLLM  = "llm"
)

// QuestionSnapshot is a bank entry, the unit the attempt service copies
// into items at start time.
type QuestionSnapshot struct {
	QuestionID    string
	Version       int
	Subject       string
	Topic         string
	Skill         string
	Stem          string
	Options       []Option
	CorrectOption string
	Explanation   string
	Hint          string
	Difficulty    int
	Source        string
}

// AnswerEventData is the payload appended for every accepted answer.
type AnswerEventData struct {
	UserID    string
	AttemptID string
	ItemID    string
	Subject   string
	Topic     string
	Skill     string
	Correct   bool
	Score     float64
}

// AnswerEvent is a read-side answer event.
type AnswerEvent struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LedgerTx is the transactional view used by the attempt state machine.
// Everything called through one LedgerTx commits or rolls back as a
// unit, which is what makes the idempotency check-and-set and the
// progress read-modify-write race-free.
type LedgerTx interface {
	// Attempt re-reads the attempt row inside the transaction.
	Attempt(ctx context.Context, attemptID string) (*QuizAttempt, error)

	// Item returns the item row, or nil if it does not exist.
	Item(ctx context.Context, itemID string) (*AttemptItem, error)

	// SaveAnswer persists the item's answer fields.
	SaveAnswer(ctx context.Context, item *AttemptItem) error

	// IncrementHints bumps hints_used and returns the new count.
	IncrementHints(ctx context.Context, itemID string) (int, error)

	// Progress returns the record for key, or nil if none exists yet.
	Progress(ctx context.Context, key ProgressKey) (*ProgressRecord, error)

	// SaveProgress upserts the record for its key.
	SaveProgress(ctx context.Context, rec *ProgressRecord) error
}

// Ledger is the attempt/progress store handed to the domain services.
// Implementations must not rely on package-level connection state; the
// caller owns the handle lifecycle.
type Ledger interface {
	// CreateAttempt persists a new attempt and its items atomically.
	CreateAttempt(ctx context.Context, att *QuizAttempt, items []*AttemptItem) error

	// Attempt returns the attempt row, or nil if it does not exist.
	Attempt(ctx context.Context, attemptID string) (*QuizAttempt, error)

	// Items returns all items of an attempt ordered by ordinal.
	Items(ctx context.Context, attemptID string) ([]*AttemptItem, error)

	// CompleteAttempt flips in_progress to completed with the final
	// score. Returns false when the attempt was not in_progress (the
	// compare-and-swap lost or the attempt was already closed).
	CompleteAttempt(ctx context.Context, attemptID string, finalScore float64, at time.Time) (bool, error)

	// AbandonAttempt flips in_progress to abandoned. Returns false
	// when the attempt was not in_progress.
	AbandonAttempt(ctx context.Context, attemptID string) (bool, error)

	// ProgressByUser returns all progress records for a user.
	ProgressByUser(ctx context.Context, userID string) ([]*ProgressRecord, error)

	// ProgressFor returns the record for key, or nil if none exists.
	ProgressFor(ctx context.Context, key ProgressKey) (*ProgressRecord, error)

	// AppendAnswerEvent records a graded answer in the event log.
	// Called after the grading transaction commits; the event log is a
	// rollup source, not the system of record for grading.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AnswerEventsSince returns a user's answer events with
	// timestamp >= from, ordered by sequence.
	AnswerEventsSince(ctx context.Context, userID string, from time.Time) ([]*AnswerEvent, error)

	// WithTx runs fn inside one transaction.
	WithTx(ctx context.Context, fn func(tx LedgerTx) error) error
}

// QuestionRepo manages the question bank.
type QuestionRepo interface {
	// Put stores a bank entry. (question_id, version) must be unique.
	Put(ctx context.Context, q *QuestionSnapshot) error

	// Select returns up to n random questions matching subject and
	// topic. When skills is non-empty, only those skills qualify.
	Select(ctx context.Context, subject, topic string, skills []string, n int) ([]*QuestionSnapshot, error)
}

// EventRepo provides append access for infrastructure events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
