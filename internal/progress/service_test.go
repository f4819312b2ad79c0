package progress

import (
	"context"
	"testing"
	"time"

	"github.com/solvio/solvio/internal/store"
)

type fakeReader struct {
	records []*store.ProgressRecord
	events  []*store.AnswerEvent
	gotFrom time.Time
}

func (f *fakeReader) ProgressByUser(_ context.Context, userID string) ([]*store.ProgressRecord, error) {
	var out []*store.ProgressRecord
	for _, rec := range f.records {
		if rec.Key.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeReader) AnswerEventsSince(_ context.Context, userID string, from time.Time) ([]*store.AnswerEvent, error) {
	f.gotFrom = from
	var out []*store.AnswerEvent
	for _, e := range f.events {
		if e.UserID == userID && !e.Timestamp.Before(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

func rec(subject, topic, skill string, answered, correct int, level float64) *store.ProgressRecord {
	return &store.ProgressRecord{
		Key:            store.ProgressKey{UserID: "user-1", Subject: subject, Topic: topic, Skill: skill},
		TotalAnswered:  answered,
		CorrectAnswers: correct,
		MasteryLevel:   level,
		LastPracticed:  time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC),
	}
}

func TestOverview_Empty(t *testing.T) {
	svc := NewService(&fakeReader{})

	ov, err := svc.Overview(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(ov.Subjects) != 0 || ov.TotalAnswered != 0 || ov.Accuracy != 0 {
		t.Errorf("empty history produced %+v", ov)
	}
}

func TestOverview_GroupsAndRollsUp(t *testing.T) {
	svc := NewService(&fakeReader{records: []*store.ProgressRecord{
		rec("math", "fractions", "simplify", 10, 8, 0.4),
		rec("math", "fractions", "compare", 30, 24, 0.8),
		rec("math", "decimals", "rounding", 20, 10, 0.5),
		rec("science", "biology", "cells", 5, 5, 0.25),
	}})

	ov, err := svc.Overview(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if len(ov.Subjects) != 2 {
		t.Fatalf("subjects = %d, want 2", len(ov.Subjects))
	}
	// Sorted: math before science.
	math := ov.Subjects[0]
	if math.Subject != "math" || len(math.Topics) != 2 {
		t.Fatalf("math subject = %+v", math)
	}
	// Sorted: decimals before fractions.
	fractions := math.Topics[1]
	if fractions.Topic != "fractions" {
		t.Fatalf("topic order wrong: %+v", math.Topics)
	}
	if len(fractions.Skills) != 2 || fractions.Skills[0].Skill != "compare" {
		t.Errorf("skills = %+v", fractions.Skills)
	}
	if fractions.TotalAnswered != 40 || fractions.CorrectAnswers != 32 {
		t.Errorf("fractions totals = (%d,%d)", fractions.TotalAnswered, fractions.CorrectAnswers)
	}
	// Weighted: (0.4*10 + 0.8*30) / 40 = 0.7.
	if fractions.MasteryLevel != 0.7 {
		t.Errorf("fractions level = %v, want 0.7", fractions.MasteryLevel)
	}
	// Subject level: (0.7*40 + 0.5*20) / 60 = 0.63 (rounded).
	if math.MasteryLevel != 0.63 {
		t.Errorf("math level = %v, want 0.63", math.MasteryLevel)
	}

	if ov.TotalAnswered != 65 || ov.CorrectAnswers != 47 {
		t.Errorf("overall totals = (%d,%d)", ov.TotalAnswered, ov.CorrectAnswers)
	}
	// 47/65 = 0.7230... rounds to 0.72.
	if ov.Accuracy != 0.72 {
		t.Errorf("accuracy = %v, want 0.72", ov.Accuracy)
	}
}

func event(at time.Time, correct bool, score float64) *store.AnswerEvent {
	return &store.AnswerEvent{
		Timestamp: at,
		AnswerEventData: store.AnswerEventData{
			UserID:  "user-1",
			Correct: correct,
			Score:   score,
		},
	}
}

func TestRecentActivity_BucketsByDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	reader := &fakeReader{events: []*store.AnswerEvent{
		event(now.AddDate(0, 0, -2), true, 100),
		event(now.AddDate(0, 0, -2).Add(time.Hour), false, 0),
		event(now.AddDate(0, 0, -1), true, 100),
		// Outside the window: must not show up.
		event(now.AddDate(0, 0, -40), true, 100),
	}}
	svc := NewService(reader)
	svc.now = func() time.Time { return now }

	days, err := svc.RecentActivity(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("recent activity: %v", err)
	}

	if want := now.AddDate(0, 0, -DefaultActivityWindow); !reader.gotFrom.Equal(want) {
		t.Errorf("window start = %v, want %v", reader.gotFrom, want)
	}
	if len(days) != 2 {
		t.Fatalf("days = %+v, want 2 buckets", days)
	}

	first := days[0]
	if first.Date != "2026-03-08" || first.Answered != 2 || first.Correct != 1 {
		t.Errorf("first day = %+v", first)
	}
	if first.Accuracy != 0.5 || first.MeanScore != 50 {
		t.Errorf("first day stats = %+v", first)
	}

	second := days[1]
	if second.Date != "2026-03-09" || second.Answered != 1 || second.MeanScore != 100 {
		t.Errorf("second day = %+v", second)
	}
}

func TestRecentActivity_CustomWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	reader := &fakeReader{}
	svc := NewService(reader)
	svc.now = func() time.Time { return now }

	days, err := svc.RecentActivity(context.Background(), "user-1", 7)
	if err != nil {
		t.Fatalf("recent activity: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("no events should give no buckets, got %+v", days)
	}
	if want := now.AddDate(0, 0, -7); !reader.gotFrom.Equal(want) {
		t.Errorf("window start = %v, want %v", reader.gotFrom, want)
	}
}
