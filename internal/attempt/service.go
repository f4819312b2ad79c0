// Package attempt is the state machine governing a quiz attempt's
// lifecycle: in_progress to completed or abandoned for the attempt,
// unanswered to answered exactly once per idempotency key for each
// item. All grading goes through here; there is no second grading path.
package attempt

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/solvio/solvio/internal/mastery"
	"github.com/solvio/solvio/internal/store"
)

// Role is the caller's authorization level.
type Role string

const (
	RoleLearner Role = "learner"
	RoleAdmin   Role = "admin"
)

// Caller identifies who is invoking an operation.
type Caller struct {
	UserID string
	Role   Role
}

// canMutate reports whether the caller may mutate an attempt owned by
// ownerID.
func (c Caller) canMutate(ownerID string) bool {
	return c.UserID == ownerID || c.Role == RoleAdmin
}

// QuestionSource selects question snapshots for new attempts.
type QuestionSource interface {
	Select(ctx context.Context, subject, topic string, skills []string, n int) ([]*store.QuestionSnapshot, error)
}

// Service runs attempt lifecycle operations against a ledger.
type Service struct {
	ledger store.Ledger
	bank   QuestionSource
	now    func() time.Time
	newID  func() string
}

// NewService creates a Service over the given ledger and question source.
func NewService(ledger store.Ledger, bank QuestionSource) *Service {
	return &Service{
		ledger: ledger,
		bank:   bank,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// StartInput describes a new attempt. The caller becomes the owner.
type StartInput struct {
	Caller         Caller
	Subject        string
	Topic          string
	TotalQuestions int
	SkillFilters   []string
}

// ItemView is an item as shown to the learner: no correct option, no
// explanation.
type ItemView struct {
	ItemID  string
	Ordinal int
	Skill   string
	Stem    string
	Options []store.Option
}

// StartResult is the created attempt and its presentable items.
type StartResult struct {
	AttemptID string
	Subject   string
	Topic     string
	Items     []ItemView
}

// Start selects TotalQuestions immutable question snapshots and creates
// the attempt with one item per snapshot, all in one transaction.
func (s *Service) Start(ctx context.Context, in StartInput) (*StartResult, error) {
	if in.Caller.UserID == "" {
		return nil, fmt.Errorf("start attempt: %w", ErrNotAuthorized)
	}
	if in.TotalQuestions <= 0 {
		return nil, fmt.Errorf("start attempt: total questions must be positive, got %d", in.TotalQuestions)
	}

	snaps, err := s.bank.Select(ctx, in.Subject, in.Topic, in.SkillFilters, in.TotalQuestions)
	if err != nil {
		return nil, fmt.Errorf("select questions: %w", err)
	}
	if len(snaps) < in.TotalQuestions {
		return nil, fmt.Errorf("%s/%s has %d of %d requested questions: %w",
			in.Subject, in.Topic, len(snaps), in.TotalQuestions, ErrInsufficientQuestions)
	}

	att := &store.QuizAttempt{
		AttemptID:      s.newID(),
		UserID:         in.Caller.UserID,
		Subject:        in.Subject,
		Topic:          in.Topic,
		TotalQuestions: in.TotalQuestions,
		Status:         store.StatusInProgress,
		StartedAt:      s.now().UTC(),
	}

	items := make([]*store.AttemptItem, len(snaps))
	views := make([]ItemView, len(snaps))
	for i, q := range snaps {
		items[i] = &store.AttemptItem{
			ItemID:          s.newID(),
			AttemptID:       att.AttemptID,
			Ordinal:         i + 1,
			QuestionID:      q.QuestionID,
			QuestionVersion: q.Version,
			Skill:           q.Skill,
			Stem:            q.Stem,
			Options:         q.Options,
			CorrectOption:   q.CorrectOption,
			Explanation:     q.Explanation,
			Hint:            q.Hint,
		}
		views[i] = ItemView{
			ItemID:  items[i].ItemID,
			Ordinal: items[i].Ordinal,
			Skill:   items[i].Skill,
			Stem:    items[i].Stem,
			Options: items[i].Options,
		}
	}

	if err := s.ledger.CreateAttempt(ctx, att, items); err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}

	return &StartResult{
		AttemptID: att.AttemptID,
		Subject:   att.Subject,
		Topic:     att.Topic,
		Items:     views,
	}, nil
}

// AnswerInput is one answer submission. IdempotencyKey is the client
// token that makes retries safe; empty means the client opted out of
// replay protection.
type AnswerInput struct {
	Caller         Caller
	AttemptID      string
	ItemID         string
	Option         string
	IdempotencyKey string
}

// AnswerResult is the graded outcome. CorrectOption is populated only
// when the answer was incorrect.
type AnswerResult struct {
	ItemID        string
	IsCorrect     bool
	Score         float64
	CorrectOption string
	Explanation   string
}

// SubmitAnswer applies the accept rule for one item:
//
//  1. closed attempt: ErrAttemptClosed
//  2. answered with a matching idempotency key: previously computed
//     result, unchanged, with no counter movement
//  3. answered otherwise: ErrAlreadyAnswered
//  4. unanswered: grade by canonical option ID, persist the item and
//     the updated progress record in the same transaction
func (s *Service) SubmitAnswer(ctx context.Context, in AnswerInput) (*AnswerResult, error) {
	var (
		res      *AnswerResult
		accepted bool
		event    store.AnswerEventData
	)

	err := s.ledger.WithTx(ctx, func(tx store.LedgerTx) error {
		att, err := tx.Attempt(ctx, in.AttemptID)
		if err != nil {
			return err
		}
		if att == nil {
			return fmt.Errorf("attempt %s: %w", in.AttemptID, ErrAttemptNotFound)
		}
		if !in.Caller.canMutate(att.UserID) {
			return fmt.Errorf("attempt %s: %w", in.AttemptID, ErrNotAuthorized)
		}
		if att.Status != store.StatusInProgress {
			return fmt.Errorf("attempt %s is %s: %w", in.AttemptID, att.Status, ErrAttemptClosed)
		}

		item, err := tx.Item(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.AttemptID != in.AttemptID {
			return fmt.Errorf("item %s: %w", in.ItemID, ErrItemNotFound)
		}

		if item.Answered() {
			if in.IdempotencyKey != "" && in.IdempotencyKey == item.IdempotencyKey {
				res = resultFromItem(item)
				return nil
			}
			return fmt.Errorf("item %s: %w", in.ItemID, ErrAlreadyAnswered)
		}

		if item.CorrectOption == "" || len(item.Options) == 0 {
			return fmt.Errorf("item %s has no gradable snapshot: %w", in.ItemID, ErrQuestionNotFound)
		}

		// Grade on the canonical option ID, never on display text.
		correct := in.Option == item.CorrectOption
		weight := 1.0
		score := 0.0
		if correct {
			score = mastery.Round2(100 * weight)
		}
		now := s.now().UTC()

		item.AnswerOption = &in.Option
		item.IsCorrect = &correct
		item.Score = &score
		item.IdempotencyKey = in.IdempotencyKey
		item.AttemptCount++
		item.RespondedAt = &now
		if err := tx.SaveAnswer(ctx, item); err != nil {
			return err
		}

		key := store.ProgressKey{
			UserID:  att.UserID,
			Subject: att.Subject,
			Topic:   att.Topic,
			Skill:   item.Skill,
		}
		prior, err := tx.Progress(ctx, key)
		if err != nil {
			return err
		}
		next := mastery.Accumulate(recordOf(prior), mastery.Outcome{Correct: correct, Weight: weight})
		if err := tx.SaveProgress(ctx, &store.ProgressRecord{
			Key:            key,
			TotalAnswered:  next.TotalAnswered,
			CorrectAnswers: next.CorrectAnswers,
			MasteryLevel:   next.Level,
			CurrentStreak:  next.CurrentStreak,
			BestStreak:     next.BestStreak,
			LastPracticed:  now,
		}); err != nil {
			return err
		}

		accepted = true
		event = store.AnswerEventData{
			UserID:    att.UserID,
			AttemptID: att.AttemptID,
			ItemID:    item.ItemID,
			Subject:   att.Subject,
			Topic:     att.Topic,
			Skill:     item.Skill,
			Correct:   correct,
			Score:     score,
		}
		res = resultFromItem(item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The event log feeds rollups, not grading; losing one event to a
	// crash here is tolerable, failing the graded answer is not.
	if accepted {
		if logErr := s.ledger.AppendAnswerEvent(ctx, event); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log answer event: %v\n", logErr)
		}
	}

	return res, nil
}

// SubmitInput closes an attempt for scoring.
type SubmitInput struct {
	Caller    Caller
	AttemptID string
}

// SubmitResult reports the final score and how much was answered.
type SubmitResult struct {
	FinalScore     float64
	AnsweredCount  int
	TotalQuestions int
}

// Submit transitions in_progress to completed. The final score is the
// mean item score over answered items only; a partially completed
// attempt is graded on what was attempted. Submitting an already
// completed attempt returns the stored score unchanged.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	att, err := s.ledger.Attempt(ctx, in.AttemptID)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, fmt.Errorf("attempt %s: %w", in.AttemptID, ErrAttemptNotFound)
	}
	if !in.Caller.canMutate(att.UserID) {
		return nil, fmt.Errorf("attempt %s: %w", in.AttemptID, ErrNotAuthorized)
	}

	if att.Status == store.StatusCompleted {
		return s.storedResult(ctx, att)
	}
	if att.Status == store.StatusAbandoned {
		return nil, fmt.Errorf("attempt %s is abandoned: %w", in.AttemptID, ErrAttemptClosed)
	}

	// Items are immutable once answered, so scoring can read outside
	// the status flip. Only the flip itself must be a compare-and-swap.
	items, err := s.ledger.Items(ctx, in.AttemptID)
	if err != nil {
		return nil, err
	}
	final, answered := finalScore(items)

	ok, err := s.ledger.CompleteAttempt(ctx, in.AttemptID, final, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race. If a concurrent submit won, honor its score.
		att, err = s.ledger.Attempt(ctx, in.AttemptID)
		if err != nil {
			return nil, err
		}
		if att != nil && att.Status == store.StatusCompleted {
			return s.storedResult(ctx, att)
		}
		return nil, fmt.Errorf("attempt %s: %w", in.AttemptID, ErrAttemptClosed)
	}

	return &SubmitResult{
		FinalScore:     final,
		AnsweredCount:  answered,
		TotalQuestions: att.TotalQuestions,
	}, nil
}

// AbandonInput closes an attempt without scoring.
type AbandonInput struct {
	Caller    Caller
	AttemptID string
}

// Abandon transitions in_progress to abandoned. No score is computed.
func (s *Service) Abandon(ctx context.Context, in AbandonInput) error {
	att, err := s.ledger.Attempt(ctx, in.AttemptID)
	if err != nil {
		return err
	}
	if att == nil {
		return fmt.Errorf("attempt %s: %w", in.AttemptID, ErrAttemptNotFound)
	}
	if !in.Caller.canMutate(att.UserID) {
		return fmt.Errorf("attempt %s: %w", in.AttemptID, ErrNotAuthorized)
	}

	ok, err := s.ledger.AbandonAttempt(ctx, in.AttemptID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("attempt %s: %w", in.AttemptID, ErrAttemptClosed)
	}
	return nil
}

// HintInput requests the snapshot hint for an unanswered item.
type HintInput struct {
	Caller    Caller
	AttemptID string
	ItemID    string
}

// HintResult carries the hint text and the updated usage count.
type HintResult struct {
	Hint      string
	HintsUsed int
}

// UseHint returns the item's hint and counts the usage. Hints are only
// available while the attempt is open and the item unanswered.
func (s *Service) UseHint(ctx context.Context, in HintInput) (*HintResult, error) {
	var res *HintResult
	err := s.ledger.WithTx(ctx, func(tx store.LedgerTx) error {
		att, err := tx.Attempt(ctx, in.AttemptID)
		if err != nil {
			return err
		}
		if att == nil {
			return fmt.Errorf("attempt %s: %w", in.AttemptID, ErrAttemptNotFound)
		}
		if !in.Caller.canMutate(att.UserID) {
			return fmt.Errorf("attempt %s: %w", in.AttemptID, ErrNotAuthorized)
		}
		if att.Status != store.StatusInProgress {
			return fmt.Errorf("attempt %s is %s: %w", in.AttemptID, att.Status, ErrAttemptClosed)
		}

		item, err := tx.Item(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.AttemptID != in.AttemptID {
			return fmt.Errorf("item %s: %w", in.ItemID, ErrItemNotFound)
		}
		if item.Answered() {
			return fmt.Errorf("item %s: %w", in.ItemID, ErrAlreadyAnswered)
		}

		used, err := tx.IncrementHints(ctx, in.ItemID)
		if err != nil {
			return err
		}
		res = &HintResult{Hint: item.Hint, HintsUsed: used}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// storedResult rebuilds a SubmitResult from a completed attempt.
func (s *Service) storedResult(ctx context.Context, att *store.QuizAttempt) (*SubmitResult, error) {
	items, err := s.ledger.Items(ctx, att.AttemptID)
	if err != nil {
		return nil, err
	}
	answered := 0
	for _, it := range items {
		if it.Answered() {
			answered++
		}
	}
	stored := 0.0
	if att.FinalScore != nil {
		stored = *att.FinalScore
	}
	return &SubmitResult{
		FinalScore:     stored,
		AnsweredCount:  answered,
		TotalQuestions: att.TotalQuestions,
	}, nil
}

// finalScore is the mean score over answered items. Zero answered
// items score zero rather than dividing by zero.
func finalScore(items []*store.AttemptItem) (score float64, answered int) {
	sum := 0.0
	for _, it := range items {
		if it.Answered() && it.Score != nil {
			sum += *it.Score
			answered++
		}
	}
	if answered == 0 {
		return 0, 0
	}
	return mastery.Round2(sum / float64(answered)), answered
}

// resultFromItem rebuilds the graded result recorded on an item. Used
// for both fresh grades and idempotent replays so both paths return
// identical payloads.
func resultFromItem(item *store.AttemptItem) *AnswerResult {
	res := &AnswerResult{
		ItemID:      item.ItemID,
		Explanation: item.Explanation,
	}
	if item.IsCorrect != nil {
		res.IsCorrect = *item.IsCorrect
	}
	if item.Score != nil {
		res.Score = *item.Score
	}
	// Reveal the correct option only on a miss.
	if !res.IsCorrect {
		res.CorrectOption = item.CorrectOption
	}
	return res
}

// recordOf converts a stored progress row to a mastery record, zero
// when no row exists yet.
func recordOf(rec *store.ProgressRecord) mastery.Record {
	if rec == nil {
		return mastery.Record{}
	}
	return mastery.Record{
		TotalAnswered:  rec.TotalAnswered,
		CorrectAnswers: rec.CorrectAnswers,
		Level:          rec.MasteryLevel,
		CurrentStreak:  rec.CurrentStreak,
		BestStreak:     rec.BestStreak,
	}
}
