package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func testAttempt(attemptID string) (*QuizAttempt, []*AttemptItem) {
	now := time.Now().UTC().Truncate(time.Second)
	att := &QuizAttempt{
		AttemptID:      attemptID,
		UserID:         "learner-1",
		Subject:        "math",
		Topic:          "fractions",
		TotalQuestions: 2,
		Status:         StatusInProgress,
		StartedAt:      now,
	}
	items := []*AttemptItem{
		{
			ItemID:          attemptID + "-i1",
			AttemptID:       attemptID,
			Ordinal:         1,
			QuestionID:      "q-1",
			QuestionVersion: 1,
			Skill:           "adding-fractions",
			Stem:            "What is 1/2 + 1/4?",
			Options:         []Option{{ID: "a", Text: "3/4"}, {ID: "b", Text: "2/6"}},
			CorrectOption:   "a",
			Explanation:     "Use a common denominator of 4.",
			Hint:            "Rewrite 1/2 as 2/4.",
		},
		{
			ItemID:          attemptID + "-i2",
			AttemptID:       attemptID,
			Ordinal:         2,
			QuestionID:      "q-2",
			QuestionVersion: 1,
			Skill:           "simplifying-fractions",
			Stem:            "Simplify 4/8.",
			Options:         []Option{{ID: "a", Text: "1/2"}, {ID: "b", Text: "2/3"}},
			CorrectOption:   "a",
		},
	}
	return att, items
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCreateAttemptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	att, items := testAttempt("att-1")
	if err := ledger.CreateAttempt(ctx, att, items); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	got, err := ledger.Attempt(ctx, "att-1")
	if err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if got == nil {
		t.Fatal("expected attempt, got nil")
	}
	if got.Status != StatusInProgress {
		t.Errorf("status = %q, want %q", got.Status, StatusInProgress)
	}
	if got.TotalQuestions != 2 {
		t.Errorf("total_questions = %d, want 2", got.TotalQuestions)
	}

	gotItems, err := ledger.Items(ctx, "att-1")
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(gotItems) != 2 {
		t.Fatalf("items = %d, want 2", len(gotItems))
	}
	for i, it := range gotItems {
		if it.Ordinal != i+1 {
			t.Errorf("item %d ordinal = %d, want %d", i, it.Ordinal, i+1)
		}
		if it.Answered() {
			t.Errorf("item %d answered before any write", i)
		}
	}
	if gotItems[0].CorrectOption != "a" {
		t.Errorf("correct_option = %q, want %q", gotItems[0].CorrectOption, "a")
	}
	if len(gotItems[0].Options) != 2 || gotItems[0].Options[0].Text != "3/4" {
		t.Errorf("options not preserved: %+v", gotItems[0].Options)
	}

	missing, err := ledger.Attempt(ctx, "no-such-attempt")
	if err != nil {
		t.Fatalf("load missing attempt: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown attempt")
	}
}

func TestSaveAnswerPersistsGrade(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	att, items := testAttempt("att-2")
	if err := ledger.CreateAttempt(ctx, att, items); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	respondedAt := time.Now().UTC().Truncate(time.Second)
	err := ledger.WithTx(ctx, func(tx LedgerTx) error {
		item, err := tx.Item(ctx, "att-2-i1")
		if err != nil {
			return err
		}
		if item == nil {
			t.Fatal("expected item inside tx")
		}
		item.AnswerOption = strPtr("a")
		item.IdempotencyKey = "key-1"
		item.IsCorrect = boolPtr(true)
		item.Score = floatPtr(100)
		item.AttemptCount = 1
		item.RespondedAt = &respondedAt
		return tx.SaveAnswer(ctx, item)
	})
	if err != nil {
		t.Fatalf("save answer: %v", err)
	}

	var got *AttemptItem
	err = ledger.WithTx(ctx, func(tx LedgerTx) error {
		var err error
		got, err = tx.Item(ctx, "att-2-i1")
		return err
	})
	if err != nil {
		t.Fatalf("reload item: %v", err)
	}
	if !got.Answered() {
		t.Fatal("expected item to be answered")
	}
	if *got.AnswerOption != "a" {
		t.Errorf("answer_option = %q, want %q", *got.AnswerOption, "a")
	}
	if got.IdempotencyKey != "key-1" {
		t.Errorf("idempotency_key = %q, want %q", got.IdempotencyKey, "key-1")
	}
	if got.IsCorrect == nil || !*got.IsCorrect {
		t.Error("expected is_correct = true")
	}
	if got.Score == nil || *got.Score != 100 {
		t.Errorf("score = %v, want 100", got.Score)
	}
	if got.AttemptCount != 1 {
		t.Errorf("attempt_count = %d, want 1", got.AttemptCount)
	}
}

func TestCompleteAttemptCAS(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	att, items := testAttempt("att-3")
	if err := ledger.CreateAttempt(ctx, att, items); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	at := time.Now().UTC().Truncate(time.Second)
	won, err := ledger.CompleteAttempt(ctx, "att-3", 75, at)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !won {
		t.Fatal("first completion should win the status flip")
	}

	// A second flip must lose: the predicate no longer matches.
	won, err = ledger.CompleteAttempt(ctx, "att-3", 10, at)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if won {
		t.Fatal("second completion must not rewrite the attempt")
	}

	// Abandoning a completed attempt must also lose.
	won, err = ledger.AbandonAttempt(ctx, "att-3")
	if err != nil {
		t.Fatalf("abandon after complete: %v", err)
	}
	if won {
		t.Fatal("abandon must not flip a completed attempt")
	}

	got, err := ledger.Attempt(ctx, "att-3")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("status = %q, want %q", got.Status, StatusCompleted)
	}
	if got.FinalScore == nil || *got.FinalScore != 75 {
		t.Errorf("final_score = %v, want 75 from the winning flip", got.FinalScore)
	}
	if got.CompletedAt == nil {
		t.Error("completed_at not set")
	}
}

func TestAbandonAttemptCAS(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	att, items := testAttempt("att-4")
	if err := ledger.CreateAttempt(ctx, att, items); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	won, err := ledger.AbandonAttempt(ctx, "att-4")
	if err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if !won {
		t.Fatal("abandon of an open attempt should win")
	}

	// Terminal states never transition again.
	won, err = ledger.CompleteAttempt(ctx, "att-4", 100, time.Now())
	if err != nil {
		t.Fatalf("complete after abandon: %v", err)
	}
	if won {
		t.Fatal("complete must not flip an abandoned attempt")
	}

	got, err := ledger.Attempt(ctx, "att-4")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != StatusAbandoned {
		t.Errorf("status = %q, want %q", got.Status, StatusAbandoned)
	}
	if got.FinalScore != nil {
		t.Errorf("final_score = %v, want nil for an abandoned attempt", got.FinalScore)
	}
}

func TestSaveProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	key := ProgressKey{UserID: "learner-1", Subject: "math", Topic: "fractions", Skill: "adding-fractions"}
	first := time.Now().UTC().Truncate(time.Second)

	// First write creates the record.
	err := ledger.WithTx(ctx, func(tx LedgerTx) error {
		prior, err := tx.Progress(ctx, key)
		if err != nil {
			return err
		}
		if prior != nil {
			t.Fatal("expected no record before first write")
		}
		return tx.SaveProgress(ctx, &ProgressRecord{
			Key:            key,
			TotalAnswered:  1,
			CorrectAnswers: 1,
			MasteryLevel:   0.05,
			CurrentStreak:  1,
			BestStreak:     1,
			LastPracticed:  first,
		})
	})
	if err != nil {
		t.Fatalf("create progress: %v", err)
	}

	// Second write updates in place; no duplicate row.
	err = ledger.WithTx(ctx, func(tx LedgerTx) error {
		return tx.SaveProgress(ctx, &ProgressRecord{
			Key:            key,
			TotalAnswered:  2,
			CorrectAnswers: 1,
			MasteryLevel:   0.05,
			CurrentStreak:  0,
			BestStreak:     1,
			LastPracticed:  first.Add(time.Minute),
		})
	})
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}

	got, err := ledger.ProgressFor(ctx, key)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if got == nil {
		t.Fatal("expected a progress record")
	}
	if got.TotalAnswered != 2 || got.CorrectAnswers != 1 {
		t.Errorf("counters = (%d, %d), want (2, 1)", got.TotalAnswered, got.CorrectAnswers)
	}
	if got.CurrentStreak != 0 || got.BestStreak != 1 {
		t.Errorf("streaks = (%d, %d), want (0, 1)", got.CurrentStreak, got.BestStreak)
	}

	all, err := ledger.ProgressByUser(ctx, "learner-1")
	if err != nil {
		t.Fatalf("progress by user: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("records = %d, want 1 (upsert must not duplicate)", len(all))
	}
}

func TestAnswerEventsOrderedBySequence(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	for i, skill := range []string{"adding-fractions", "simplifying-fractions", "adding-fractions"} {
		err := ledger.AppendAnswerEvent(ctx, AnswerEventData{
			UserID:    "learner-1",
			AttemptID: "att-5",
			ItemID:    "att-5-i1",
			Subject:   "math",
			Topic:     "fractions",
			Skill:     skill,
			Correct:   i%2 == 0,
			Score:     float64(100 * (1 - i%2)),
		})
		if err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	events, err := ledger.AnswerEventsSince(ctx, "learner-1", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence <= events[i-1].Sequence {
			t.Errorf("sequence not increasing: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}
	if events[1].Skill != "simplifying-fractions" {
		t.Errorf("event order lost: got skill %q", events[1].Skill)
	}

	// A window starting in the future excludes everything.
	none, err := ledger.AnswerEventsSince(ctx, "learner-1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("query empty window: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("events in future window = %d, want 0", len(none))
	}

	// Other users never see these events.
	other, err := ledger.AnswerEventsSince(ctx, "learner-2", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("query other user: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("events for other user = %d, want 0", len(other))
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	key := ProgressKey{UserID: "learner-1", Subject: "math", Topic: "fractions", Skill: "adding-fractions"}
	boom := errors.New("boom")

	err := ledger.WithTx(ctx, func(tx LedgerTx) error {
		if err := tx.SaveProgress(ctx, &ProgressRecord{
			Key:           key,
			TotalAnswered: 1,
			LastPracticed: time.Now(),
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}

	got, err := ledger.ProgressFor(ctx, key)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if got != nil {
		t.Fatal("progress write survived a rolled-back transaction")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestQuestionRepoSelectsLatestVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	base := QuestionSnapshot{
		QuestionID:    "q-1",
		Subject:       "math",
		Topic:         "fractions",
		Skill:         "adding-fractions",
		Stem:          "What is 1/2 + 1/4?",
		Options:       []Option{{ID: "a", Text: "3/4"}, {ID: "b", Text: "2/6"}, {ID: "c", Text: "1/6"}, {ID: "d", Text: "3/6"}},
		CorrectOption: "a",
		Difficulty:    2,
		Source:        SourceSeed,
	}

	v1 := base
	v1.Version = 1
	v2 := base
	v2.Version = 2
	v2.Stem = "Compute 1/2 + 1/4."
	for _, q := range []*QuestionSnapshot{&v1, &v2} {
		if err := repo.Put(ctx, q); err != nil {
			t.Fatalf("put v%d: %v", q.Version, err)
		}
	}

	got, err := repo.Select(ctx, "math", "fractions", nil, 1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("selected = %d, want 1 (versions of one question collapse)", len(got))
	}
	if got[0].Version != 2 {
		t.Errorf("version = %d, want latest (2)", got[0].Version)
	}
	if got[0].Stem != "Compute 1/2 + 1/4." {
		t.Errorf("stem = %q, want the v2 stem", got[0].Stem)
	}
}
