package store

import (
	"context"
	"fmt"
	"time"

	"github.com/solvio/solvio/ent"
	"github.com/solvio/solvio/ent/answerevent"
	"github.com/solvio/solvio/ent/attemptitem"
	"github.com/solvio/solvio/ent/progressrecord"
	"github.com/solvio/solvio/ent/quizattempt"
	entschema "github.com/solvio/solvio/ent/schema"
)

// entLedger implements Ledger using the ent client.
type entLedger struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (l *entLedger) CreateAttempt(ctx context.Context, att *QuizAttempt, items []*AttemptItem) error {
	return l.WithTx(ctx, func(tx LedgerTx) error {
		etx := tx.(*entLedgerTx).tx

		_, err := etx.QuizAttempt.Create().
			SetAttemptID(att.AttemptID).
			SetUserID(att.UserID).
			SetSubject(att.Subject).
			SetTopic(att.Topic).
			SetTotalQuestions(att.TotalQuestions).
			SetStatus(quizattempt.Status(att.Status)).
			SetStartedAt(att.StartedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create attempt: %w", err)
		}

		builders := make([]*ent.AttemptItemCreate, len(items))
		for i, it := range items {
			builders[i] = etx.AttemptItem.Create().
				SetItemID(it.ItemID).
				SetAttemptID(it.AttemptID).
				SetOrdinal(it.Ordinal).
				SetQuestionID(it.QuestionID).
				SetQuestionVersion(it.QuestionVersion).
				SetSkill(it.Skill).
				SetStem(it.Stem).
				SetOptions(optionsToSchema(it.Options)).
				SetCorrectOption(it.CorrectOption).
				SetExplanation(it.Explanation).
				SetHint(it.Hint)
		}
		if _, err := etx.AttemptItem.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("create items: %w", err)
		}
		return nil
	})
}

func (l *entLedger) Attempt(ctx context.Context, attemptID string) (*QuizAttempt, error) {
	a, err := l.client.QuizAttempt.Query().
		Where(quizattempt.AttemptID(attemptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query attempt: %w", err)
	}
	return attemptFromEnt(a), nil
}

func (l *entLedger) Items(ctx context.Context, attemptID string) ([]*AttemptItem, error) {
	rows, err := l.client.AttemptItem.Query().
		Where(attemptitem.AttemptID(attemptID)).
		Order(ent.Asc(attemptitem.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	items := make([]*AttemptItem, len(rows))
	for i, r := range rows {
		items[i] = itemFromEnt(r)
	}
	return items, nil
}

func (l *entLedger) CompleteAttempt(ctx context.Context, attemptID string, finalScore float64, at time.Time) (bool, error) {
	n, err := l.client.QuizAttempt.Update().
		Where(
			quizattempt.AttemptID(attemptID),
			quizattempt.StatusEQ(quizattempt.StatusInProgress),
		).
		SetStatus(quizattempt.StatusCompleted).
		SetCompletedAt(at).
		SetFinalScore(finalScore).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("complete attempt: %w", err)
	}
	return n > 0, nil
}

func (l *entLedger) AbandonAttempt(ctx context.Context, attemptID string) (bool, error) {
	n, err := l.client.QuizAttempt.Update().
		Where(
			quizattempt.AttemptID(attemptID),
			quizattempt.StatusEQ(quizattempt.StatusInProgress),
		).
		SetStatus(quizattempt.StatusAbandoned).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("abandon attempt: %w", err)
	}
	return n > 0, nil
}

func (l *entLedger) ProgressByUser(ctx context.Context, userID string) ([]*ProgressRecord, error) {
	rows, err := l.client.ProgressRecord.Query().
		Where(progressrecord.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	recs := make([]*ProgressRecord, len(rows))
	for i, r := range rows {
		recs[i] = progressFromEnt(r)
	}
	return recs, nil
}

func (l *entLedger) ProgressFor(ctx context.Context, key ProgressKey) (*ProgressRecord, error) {
	r, err := l.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(key.UserID),
			progressrecord.Subject(key.Subject),
			progressrecord.Topic(key.Topic),
			progressrecord.Skill(key.Skill),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress record: %w", err)
	}
	return progressFromEnt(r), nil
}

func (l *entLedger) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := l.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = l.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetAttemptID(data.AttemptID).
		SetItemID(data.ItemID).
		SetSubject(data.Subject).
		SetTopic(data.Topic).
		SetSkill(data.Skill).
		SetCorrect(data.Correct).
		SetScore(data.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (l *entLedger) AnswerEventsSince(ctx context.Context, userID string, from time.Time) ([]*AnswerEvent, error) {
	rows, err := l.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.TimestampGTE(from),
		).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	events := make([]*AnswerEvent, len(rows))
	for i, r := range rows {
		events[i] = &AnswerEvent{
			Sequence:  r.Sequence,
			Timestamp: r.Timestamp,
			AnswerEventData: AnswerEventData{
				UserID:    r.UserID,
				AttemptID: r.AttemptID,
				ItemID:    r.ItemID,
				Subject:   r.Subject,
				Topic:     r.Topic,
				Skill:     r.Skill,
				Correct:   r.Correct,
				Score:     r.Score,
			},
		}
	}
	return events, nil
}

func (l *entLedger) WithTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	tx, err := l.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(&entLedgerTx{tx: tx}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// entLedgerTx implements LedgerTx over one ent transaction.
type entLedgerTx struct {
	tx *ent.Tx
}

func (t *entLedgerTx) Attempt(ctx context.Context, attemptID string) (*QuizAttempt, error) {
	a, err := t.tx.QuizAttempt.Query().
		Where(quizattempt.AttemptID(attemptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query attempt: %w", err)
	}
	return attemptFromEnt(a), nil
}

func (t *entLedgerTx) Item(ctx context.Context, itemID string) (*AttemptItem, error) {
	r, err := t.tx.AttemptItem.Query().
		Where(attemptitem.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return itemFromEnt(r), nil
}

func (t *entLedgerTx) SaveAnswer(ctx context.Context, item *AttemptItem) error {
	upd := t.tx.AttemptItem.Update().
		Where(attemptitem.ItemID(item.ItemID)).
		SetIdempotencyKey(item.IdempotencyKey).
		SetAttemptCount(item.AttemptCount)

	if item.AnswerOption != nil {
		upd = upd.SetAnswerOption(*item.AnswerOption)
	}
	if item.IsCorrect != nil {
		upd = upd.SetIsCorrect(*item.IsCorrect)
	}
	if item.Score != nil {
		upd = upd.SetScore(*item.Score)
	}
	if item.RespondedAt != nil {
		upd = upd.SetRespondedAt(*item.RespondedAt)
	}

	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func (t *entLedgerTx) IncrementHints(ctx context.Context, itemID string) (int, error) {
	n, err := t.tx.AttemptItem.Update().
		Where(attemptitem.ItemID(itemID)).
		AddHintsUsed(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("increment hints: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("increment hints: item %s not found", itemID)
	}

	r, err := t.tx.AttemptItem.Query().
		Where(attemptitem.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		return 0, fmt.Errorf("reload item: %w", err)
	}
	return r.HintsUsed, nil
}

func (t *entLedgerTx) Progress(ctx context.Context, key ProgressKey) (*ProgressRecord, error) {
	r, err := t.tx.ProgressRecord.Query().
		Where(
			progressrecord.UserID(key.UserID),
			progressrecord.Subject(key.Subject),
			progressrecord.Topic(key.Topic),
			progressrecord.Skill(key.Skill),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress record: %w", err)
	}
	return progressFromEnt(r), nil
}

func (t *entLedgerTx) SaveProgress(ctx context.Context, rec *ProgressRecord) error {
	n, err := t.tx.ProgressRecord.Update().
		Where(
			progressrecord.UserID(rec.Key.UserID),
			progressrecord.Subject(rec.Key.Subject),
			progressrecord.Topic(rec.Key.Topic),
			progressrecord.Skill(rec.Key.Skill),
		).
		SetTotalAnswered(rec.TotalAnswered).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetMasteryLevel(rec.MasteryLevel).
		SetCurrentStreak(rec.CurrentStreak).
		SetBestStreak(rec.BestStreak).
		SetLastPracticed(rec.LastPracticed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress record: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = t.tx.ProgressRecord.Create().
		SetUserID(rec.Key.UserID).
		SetSubject(rec.Key.Subject).
		SetTopic(rec.Key.Topic).
		SetSkill(rec.Key.Skill).
		SetTotalAnswered(rec.TotalAnswered).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetMasteryLevel(rec.MasteryLevel).
		SetCurrentStreak(rec.CurrentStreak).
		SetBestStreak(rec.BestStreak).
		SetLastPracticed(rec.LastPracticed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress record: %w", err)
	}
	return nil
}

func attemptFromEnt(a *ent.QuizAttempt) *QuizAttempt {
	return &QuizAttempt{
		AttemptID:      a.AttemptID,
		UserID:         a.UserID,
		Subject:        a.Subject,
		Topic:          a.Topic,
		TotalQuestions: a.TotalQuestions,
		Status:         AttemptStatus(a.Status),
		StartedAt:      a.StartedAt,
		CompletedAt:    a.CompletedAt,
		FinalScore:     a.FinalScore,
	}
}

func itemFromEnt(r *ent.AttemptItem) *AttemptItem {
	return &AttemptItem{
		ItemID:          r.ItemID,
		AttemptID:       r.AttemptID,
		Ordinal:         r.Ordinal,
		QuestionID:      r.QuestionID,
		QuestionVersion: r.QuestionVersion,
		Skill:           r.Skill,
		Stem:            r.Stem,
		Options:         optionsFromSchema(r.Options),
		CorrectOption:   r.CorrectOption,
		Explanation:     r.Explanation,
		Hint:            r.Hint,
		AnswerOption:    r.AnswerOption,
		IdempotencyKey:  r.IdempotencyKey,
		IsCorrect:       r.IsCorrect,
		Score:           r.Score,
		HintsUsed:       r.HintsUsed,
		AttemptCount:    r.AttemptCount,
		RespondedAt:     r.RespondedAt,
	}
}

func progressFromEnt(r *ent.ProgressRecord) *ProgressRecord {
	return &ProgressRecord{
		Key: ProgressKey{
			UserID:  r.UserID,
			Subject: r.Subject,
			Topic:   r.Topic,
			Skill:   r.Skill,
		},
		TotalAnswered:  r.TotalAnswered,
		CorrectAnswers: r.CorrectAnswers,
		MasteryLevel:   r.MasteryLevel,
		CurrentStreak:  r.CurrentStreak,
		BestStreak:     r.BestStreak,
		LastPracticed:  r.LastPracticed,
	}
}

func optionsToSchema(opts []Option) []entschema.AnswerOption {
	out := make([]entschema.AnswerOption, len(opts))
	for i, o := range opts {
		out[i] = entschema.AnswerOption{ID: o.ID, Text: o.Text}
	}
	return out
}

func optionsFromSchema(opts []entschema.AnswerOption) []Option {
	out := make([]Option, len(opts))
	for i, o := range opts {
		out[i] = Option{ID: o.ID, Text: o.Text}
	}
	return out
}
