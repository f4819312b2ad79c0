package attempt

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/solvio/solvio/internal/store"
)

// memLedger implements store.Ledger and store.LedgerTx in memory.
// Reads return copies so a caller mutating a record without saving it
// cannot corrupt the "database", matching real store behavior.
type memLedger struct {
	attempts map[string]*store.QuizAttempt
	items    map[string]*store.AttemptItem
	progress map[store.ProgressKey]*store.ProgressRecord
	events   []store.AnswerEventData
	seq      int64
}

func newMemLedger() *memLedger {
	return &memLedger{
		attempts: make(map[string]*store.QuizAttempt),
		items:    make(map[string]*store.AttemptItem),
		progress: make(map[store.ProgressKey]*store.ProgressRecord),
	}
}

func copyAttempt(a *store.QuizAttempt) *store.QuizAttempt {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

func copyItem(it *store.AttemptItem) *store.AttemptItem {
	if it == nil {
		return nil
	}
	cp := *it
	cp.Options = append([]store.Option(nil), it.Options...)
	return &cp
}

func (l *memLedger) CreateAttempt(_ context.Context, att *store.QuizAttempt, items []*store.AttemptItem) error {
	l.attempts[att.AttemptID] = copyAttempt(att)
	for _, it := range items {
		l.items[it.ItemID] = copyItem(it)
	}
	return nil
}

func (l *memLedger) Attempt(_ context.Context, attemptID string) (*store.QuizAttempt, error) {
	return copyAttempt(l.attempts[attemptID]), nil
}

func (l *memLedger) Items(_ context.Context, attemptID string) ([]*store.AttemptItem, error) {
	var out []*store.AttemptItem
	for _, it := range l.items {
		if it.AttemptID == attemptID {
			out = append(out, copyItem(it))
		}
	}
	return out, nil
}

func (l *memLedger) CompleteAttempt(_ context.Context, attemptID string, finalScore float64, at time.Time) (bool, error) {
	att, ok := l.attempts[attemptID]
	if !ok || att.Status != store.StatusInProgress {
		return false, nil
	}
	att.Status = store.StatusCompleted
	att.CompletedAt = &at
	att.FinalScore = &finalScore
	return true, nil
}

func (l *memLedger) AbandonAttempt(_ context.Context, attemptID string) (bool, error) {
	att, ok := l.attempts[attemptID]
	if !ok || att.Status != store.StatusInProgress {
		return false, nil
	}
	att.Status = store.StatusAbandoned
	return true, nil
}

func (l *memLedger) ProgressByUser(_ context.Context, userID string) ([]*store.ProgressRecord, error) {
	var out []*store.ProgressRecord
	for _, rec := range l.progress {
		if rec.Key.UserID == userID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (l *memLedger) ProgressFor(_ context.Context, key store.ProgressKey) (*store.ProgressRecord, error) {
	rec, ok := l.progress[key]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (l *memLedger) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	l.seq++
	l.events = append(l.events, data)
	return nil
}

func (l *memLedger) AnswerEventsSince(_ context.Context, userID string, _ time.Time) ([]*store.AnswerEvent, error) {
	var out []*store.AnswerEvent
	for i, e := range l.events {
		if e.UserID == userID {
			out = append(out, &store.AnswerEvent{Sequence: int64(i + 1), AnswerEventData: e})
		}
	}
	return out, nil
}

func (l *memLedger) WithTx(_ context.Context, fn func(tx store.LedgerTx) error) error {
	return fn(l)
}

// LedgerTx methods (single-goroutine tests: no isolation needed).

func (l *memLedger) Item(_ context.Context, itemID string) (*store.AttemptItem, error) {
	return copyItem(l.items[itemID]), nil
}

func (l *memLedger) SaveAnswer(_ context.Context, item *store.AttemptItem) error {
	stored, ok := l.items[item.ItemID]
	if !ok {
		return fmt.Errorf("no item %s", item.ItemID)
	}
	stored.AnswerOption = item.AnswerOption
	stored.IsCorrect = item.IsCorrect
	stored.Score = item.Score
	stored.IdempotencyKey = item.IdempotencyKey
	stored.AttemptCount = item.AttemptCount
	stored.RespondedAt = item.RespondedAt
	return nil
}

func (l *memLedger) IncrementHints(_ context.Context, itemID string) (int, error) {
	stored, ok := l.items[itemID]
	if !ok {
		return 0, fmt.Errorf("no item %s", itemID)
	}
	stored.HintsUsed++
	return stored.HintsUsed, nil
}

func (l *memLedger) Progress(_ context.Context, key store.ProgressKey) (*store.ProgressRecord, error) {
	rec, ok := l.progress[key]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (l *memLedger) SaveProgress(_ context.Context, rec *store.ProgressRecord) error {
	cp := *rec
	l.progress[rec.Key] = &cp
	return nil
}

// memBank implements QuestionSource over a fixed slice.
type memBank struct {
	qs []*store.QuestionSnapshot
}

func (b *memBank) Select(_ context.Context, subject, topic string, skills []string, n int) ([]*store.QuestionSnapshot, error) {
	allowed := make(map[string]bool)
	for _, s := range skills {
		allowed[s] = true
	}
	var out []*store.QuestionSnapshot
	for _, q := range b.qs {
		if q.Subject != subject || q.Topic != topic {
			continue
		}
		if len(allowed) > 0 && !allowed[q.Skill] {
			continue
		}
		out = append(out, q)
		if len(out) == n {
			break
		}
	}
	return out, nil
}

func bankQuestion(id, skill, correct string) *store.QuestionSnapshot {
	return &store.QuestionSnapshot{
		QuestionID: id,
		Version:    1,
		Subject:    "math",
		Topic:      "fractions",
		Skill:      skill,
		Stem:       "Which fraction is larger?",
		Options: []store.Option{
			{ID: "a", Text: "1/2"},
			{ID: "b", Text: "3/4"},
			{ID: "c", Text: "2/3"},
			{ID: "d", Text: "1/3"},
		},
		CorrectOption: correct,
		Explanation:   "Compare by common denominator.",
		Hint:          "Convert to twelfths.",
		Difficulty:    2,
	}
}

func testService(bank *memBank) (*Service, *memLedger) {
	ledger := newMemLedger()
	svc := NewService(ledger, bank)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
	return svc, ledger
}

func owner() Caller {
	return Caller{UserID: "user-1", Role: RoleLearner}
}

func startTwo(t *testing.T, svc *Service, skills ...string) *StartResult {
	t.Helper()
	if len(skills) != 2 {
		t.Fatal("startTwo wants exactly 2 skills")
	}
	bank := svc.bank.(*memBank)
	bank.qs = []*store.QuestionSnapshot{
		bankQuestion("q1", skills[0], "b"),
		bankQuestion("q2", skills[1], "b"),
	}
	res, err := svc.Start(context.Background(), StartInput{
		Caller:         owner(),
		Subject:        "math",
		Topic:          "fractions",
		TotalQuestions: 2,
	})
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}
	return res
}

func TestStart_InsufficientQuestions(t *testing.T) {
	svc, _ := testService(&memBank{qs: []*store.QuestionSnapshot{bankQuestion("q1", "compare", "b")}})

	_, err := svc.Start(context.Background(), StartInput{
		Caller:         owner(),
		Subject:        "math",
		Topic:          "fractions",
		TotalQuestions: 5,
	})
	if !errors.Is(err, ErrInsufficientQuestions) {
		t.Fatalf("err = %v, want ErrInsufficientQuestions", err)
	}
}

func TestStart_SnapshotsItems(t *testing.T) {
	svc, ledger := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")

	if len(res.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(res.Items))
	}
	for i, v := range res.Items {
		if v.Ordinal != i+1 {
			t.Errorf("item %d ordinal = %d", i, v.Ordinal)
		}
	}

	att := ledger.attempts[res.AttemptID]
	if att == nil || att.Status != store.StatusInProgress {
		t.Fatalf("attempt not stored in_progress: %+v", att)
	}
	stored := ledger.items[res.Items[0].ItemID]
	if stored.CorrectOption != "b" || stored.QuestionVersion != 1 {
		t.Errorf("snapshot not frozen on item: %+v", stored)
	}
}

func TestSubmitAnswer_GradesByOptionID(t *testing.T) {
	svc, _ := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")

	right, err := svc.SubmitAnswer(context.Background(), AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[0].ItemID,
		Option: "b", IdempotencyKey: "k1",
	})
	if err != nil {
		t.Fatalf("submit correct: %v", err)
	}
	if !right.IsCorrect || right.Score != 100 {
		t.Errorf("correct answer graded %+v", right)
	}
	if right.CorrectOption != "" {
		t.Errorf("correct answer leaked CorrectOption %q", right.CorrectOption)
	}

	wrong, err := svc.SubmitAnswer(context.Background(), AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[1].ItemID,
		Option: "c", IdempotencyKey: "k2",
	})
	if err != nil {
		t.Fatalf("submit incorrect: %v", err)
	}
	if wrong.IsCorrect || wrong.Score != 0 {
		t.Errorf("incorrect answer graded %+v", wrong)
	}
	if wrong.CorrectOption != "b" {
		t.Errorf("incorrect answer should reveal the correct option, got %q", wrong.CorrectOption)
	}
	if wrong.Explanation == "" {
		t.Error("explanation missing after answering")
	}
}

func TestSubmitAnswer_IdempotentReplay(t *testing.T) {
	svc, ledger := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")

	in := AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[0].ItemID,
		Option: "b", IdempotencyKey: "k1",
	}

	first, err := svc.SubmitAnswer(context.Background(), in)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.SubmitAnswer(context.Background(), in)
	if err != nil {
		t.Fatalf("replay submit: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("replay result differs:\nfirst  %+v\nsecond %+v", first, second)
	}

	key := store.ProgressKey{UserID: "user-1", Subject: "math", Topic: "fractions", Skill: "compare"}
	rec := ledger.progress[key]
	if rec == nil || rec.TotalAnswered != 1 {
		t.Fatalf("progress counted replay: %+v", rec)
	}
	if got := ledger.items[in.ItemID].AttemptCount; got != 1 {
		t.Errorf("attempt_count = %d, want 1", got)
	}
	if len(ledger.events) != 1 {
		t.Errorf("answer events = %d, want 1", len(ledger.events))
	}
}

func TestSubmitAnswer_DuplicateRejected(t *testing.T) {
	svc, _ := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")

	in := AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[0].ItemID,
		Option: "b", IdempotencyKey: "k1",
	}
	if _, err := svc.SubmitAnswer(context.Background(), in); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// Different key: re-grading is not allowed.
	in.IdempotencyKey = "k9"
	if _, err := svc.SubmitAnswer(context.Background(), in); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("mismatched key err = %v, want ErrAlreadyAnswered", err)
	}

	// No key at all: same rejection.
	in.IdempotencyKey = ""
	if _, err := svc.SubmitAnswer(context.Background(), in); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("missing key err = %v, want ErrAlreadyAnswered", err)
	}
}

func TestSubmitAnswer_Ownership(t *testing.T) {
	svc, _ := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")

	in := AnswerInput{
		Caller:    Caller{UserID: "intruder", Role: RoleLearner},
		AttemptID: res.AttemptID, ItemID: res.Items[0].ItemID, Option: "b",
	}
	if _, err := svc.SubmitAnswer(context.Background(), in); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}

	// Admins may act on any attempt.
	in.Caller = Caller{UserID: "staff-1", Role: RoleAdmin}
	if _, err := svc.SubmitAnswer(context.Background(), in); err != nil {
		t.Fatalf("admin submit: %v", err)
	}
}

func TestSubmitAnswer_UnknownItem(t *testing.T) {
	svc, _ := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")

	_, err := svc.SubmitAnswer(context.Background(), AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: "nope", Option: "b",
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestSubmit_TerminalImmutability(t *testing.T) {
	svc, _ := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")

	if _, err := svc.Submit(context.Background(), SubmitInput{Caller: owner(), AttemptID: res.AttemptID}); err != nil {
		t.Fatalf("submit attempt: %v", err)
	}

	_, err := svc.SubmitAnswer(context.Background(), AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[0].ItemID, Option: "b",
	})
	if !errors.Is(err, ErrAttemptClosed) {
		t.Fatalf("answer after submit err = %v, want ErrAttemptClosed", err)
	}
}

func TestSubmit_MeanOverAnsweredAndDoubleSubmit(t *testing.T) {
	svc, _ := testService(&memBank{qs: []*store.QuestionSnapshot{
		bankQuestion("q1", "compare", "b"),
		bankQuestion("q2", "compare", "b"),
		bankQuestion("q3", "compare", "b"),
	}})
	res, err := svc.Start(context.Background(), StartInput{
		Caller: owner(), Subject: "math", Topic: "fractions", TotalQuestions: 3,
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Answer 2 of 3: one correct, one incorrect. The unanswered item is
	// excluded from the denominator, so the mean is 50, not 33.
	for i, opt := range []string{"b", "c"} {
		if _, err := svc.SubmitAnswer(context.Background(), AnswerInput{
			Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[i].ItemID,
			Option: opt, IdempotencyKey: fmt.Sprintf("k%d", i),
		}); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	first, err := svc.Submit(context.Background(), SubmitInput{Caller: owner(), AttemptID: res.AttemptID})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if first.FinalScore != 50 {
		t.Errorf("FinalScore = %v, want 50", first.FinalScore)
	}
	if first.AnsweredCount != 2 || first.TotalQuestions != 3 {
		t.Errorf("counts = (%d,%d), want (2,3)", first.AnsweredCount, first.TotalQuestions)
	}

	second, err := svc.Submit(context.Background(), SubmitInput{Caller: owner(), AttemptID: res.AttemptID})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.FinalScore != first.FinalScore {
		t.Errorf("second submit drifted: %v != %v", second.FinalScore, first.FinalScore)
	}
}

func TestAbandon(t *testing.T) {
	svc, ledger := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")

	if err := svc.Abandon(context.Background(), AbandonInput{Caller: owner(), AttemptID: res.AttemptID}); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if got := ledger.attempts[res.AttemptID].Status; got != store.StatusAbandoned {
		t.Fatalf("status = %s, want abandoned", got)
	}
	if ledger.attempts[res.AttemptID].FinalScore != nil {
		t.Error("abandoned attempt has a final score")
	}

	// Terminal: no further transitions.
	if err := svc.Abandon(context.Background(), AbandonInput{Caller: owner(), AttemptID: res.AttemptID}); !errors.Is(err, ErrAttemptClosed) {
		t.Errorf("second abandon err = %v, want ErrAttemptClosed", err)
	}
	if _, err := svc.Submit(context.Background(), SubmitInput{Caller: owner(), AttemptID: res.AttemptID}); !errors.Is(err, ErrAttemptClosed) {
		t.Errorf("submit after abandon err = %v, want ErrAttemptClosed", err)
	}
}

func TestUseHint(t *testing.T) {
	svc, _ := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")
	itemID := res.Items[0].ItemID

	h1, err := svc.UseHint(context.Background(), HintInput{Caller: owner(), AttemptID: res.AttemptID, ItemID: itemID})
	if err != nil {
		t.Fatalf("use hint: %v", err)
	}
	if h1.Hint == "" || h1.HintsUsed != 1 {
		t.Errorf("first hint = %+v", h1)
	}

	h2, _ := svc.UseHint(context.Background(), HintInput{Caller: owner(), AttemptID: res.AttemptID, ItemID: itemID})
	if h2.HintsUsed != 2 {
		t.Errorf("HintsUsed = %d, want 2", h2.HintsUsed)
	}

	if _, err := svc.SubmitAnswer(context.Background(), AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: itemID, Option: "b",
	}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := svc.UseHint(context.Background(), HintInput{Caller: owner(), AttemptID: res.AttemptID, ItemID: itemID}); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("hint after answer err = %v, want ErrAlreadyAnswered", err)
	}
}

// TestLifecycleScenario walks one attempt end to end: two items on the
// same skill, one correct then one incorrect, then submit.
func TestLifecycleScenario(t *testing.T) {
	svc, ledger := testService(&memBank{})
	res := startTwo(t, svc, "compare", "compare")
	ctx := context.Background()

	if _, err := svc.SubmitAnswer(ctx, AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[0].ItemID,
		Option: "b", IdempotencyKey: "k1",
	}); err != nil {
		t.Fatalf("answer q1: %v", err)
	}

	key := store.ProgressKey{UserID: "user-1", Subject: "math", Topic: "fractions", Skill: "compare"}
	rec := ledger.progress[key]
	want := store.ProgressRecord{
		Key: key, TotalAnswered: 1, CorrectAnswers: 1, MasteryLevel: 0.05,
		CurrentStreak: 1, BestStreak: 1, LastPracticed: rec.LastPracticed,
	}
	if *rec != want {
		t.Fatalf("after q1: %+v, want %+v", *rec, want)
	}

	if _, err := svc.SubmitAnswer(ctx, AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[1].ItemID,
		Option: "d", IdempotencyKey: "k2",
	}); err != nil {
		t.Fatalf("answer q2: %v", err)
	}

	rec = ledger.progress[key]
	if rec.TotalAnswered != 2 || rec.CorrectAnswers != 1 {
		t.Errorf("counters = (%d,%d), want (2,1)", rec.TotalAnswered, rec.CorrectAnswers)
	}
	if rec.CurrentStreak != 0 || rec.BestStreak != 1 {
		t.Errorf("streaks = (%d,%d), want (0,1)", rec.CurrentStreak, rec.BestStreak)
	}
	// accuracy 0.5 damped by confidence 2/20.
	if rec.MasteryLevel != 0.05 {
		t.Errorf("MasteryLevel = %v, want 0.05", rec.MasteryLevel)
	}

	sub, err := svc.Submit(ctx, SubmitInput{Caller: owner(), AttemptID: res.AttemptID})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sub.FinalScore != 50 || sub.AnsweredCount != 2 || sub.TotalQuestions != 2 {
		t.Errorf("submit = %+v, want {50 2 2}", sub)
	}
}

// TestScenarioDifferentSkills checks skill isolation: an incorrect
// answer on another skill leaves the first skill's record untouched.
func TestScenarioDifferentSkills(t *testing.T) {
	svc, ledger := testService(&memBank{})
	res := startTwo(t, svc, "compare", "simplify")
	ctx := context.Background()

	if _, err := svc.SubmitAnswer(ctx, AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[0].ItemID,
		Option: "b", IdempotencyKey: "k1",
	}); err != nil {
		t.Fatalf("answer q1: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, AnswerInput{
		Caller: owner(), AttemptID: res.AttemptID, ItemID: res.Items[1].ItemID,
		Option: "a", IdempotencyKey: "k2",
	}); err != nil {
		t.Fatalf("answer q2: %v", err)
	}

	compareKey := store.ProgressKey{UserID: "user-1", Subject: "math", Topic: "fractions", Skill: "compare"}
	rec := ledger.progress[compareKey]
	if rec.TotalAnswered != 1 || rec.CurrentStreak != 1 || rec.MasteryLevel != 0.05 {
		t.Errorf("compare skill disturbed by other skill's answer: %+v", rec)
	}

	simplifyKey := store.ProgressKey{UserID: "user-1", Subject: "math", Topic: "fractions", Skill: "simplify"}
	rec = ledger.progress[simplifyKey]
	if rec.TotalAnswered != 1 || rec.CorrectAnswers != 0 || rec.CurrentStreak != 0 {
		t.Errorf("simplify record = %+v", rec)
	}
}
