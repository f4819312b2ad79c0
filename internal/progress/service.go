// Package progress builds read-only rollups from the ledger: the
// per-skill mastery overview and the recent-activity timeline. It never
// writes; all counters are maintained by the attempt state machine.
package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/solvio/solvio/internal/mastery"
	"github.com/solvio/solvio/internal/store"
)

// DefaultActivityWindow is the lookback for RecentActivity when the
// caller does not pick one.
const DefaultActivityWindow = 30

// Reader is the slice of the ledger this package needs.
type Reader interface {
	ProgressByUser(ctx context.Context, userID string) ([]*store.ProgressRecord, error)
	AnswerEventsSince(ctx context.Context, userID string, from time.Time) ([]*store.AnswerEvent, error)
}

// Service answers progress queries for one ledger.
type Service struct {
	ledger Reader
	now    func() time.Time
}

// NewService creates a Service over the given ledger.
func NewService(ledger Reader) *Service {
	return &Service{ledger: ledger, now: time.Now}
}

// SkillProgress is the leaf of the overview tree, one row per
// (subject, topic, skill).
type SkillProgress struct {
	Skill          string
	TotalAnswered  int
	CorrectAnswers int
	MasteryLevel   float64
	CurrentStreak  int
	BestStreak     int
	LastPracticed  time.Time
}

// TopicProgress aggregates the skills of one topic. MasteryLevel is the
// answer-count-weighted mean of the skill levels.
type TopicProgress struct {
	Topic          string
	TotalAnswered  int
	CorrectAnswers int
	MasteryLevel   float64
	Skills         []SkillProgress
}

// SubjectProgress aggregates the topics of one subject.
type SubjectProgress struct {
	Subject        string
	TotalAnswered  int
	CorrectAnswers int
	MasteryLevel   float64
	Topics         []TopicProgress
}

// Overview is the full rollup for one user.
type Overview struct {
	Subjects       []SubjectProgress
	TotalAnswered  int
	CorrectAnswers int
	Accuracy       float64
}

// Overview groups the user's progress records by subject, topic and
// skill, with weighted mastery rollups at each level. A user with no
// history gets an empty overview, not an error.
func (s *Service) Overview(ctx context.Context, userID string) (*Overview, error) {
	records, err := s.ledger.ProgressByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	type topicKey struct{ subject, topic string }
	bySubject := make(map[string][]*store.ProgressRecord)
	byTopic := make(map[topicKey][]*store.ProgressRecord)
	for _, rec := range records {
		bySubject[rec.Key.Subject] = append(bySubject[rec.Key.Subject], rec)
		tk := topicKey{rec.Key.Subject, rec.Key.Topic}
		byTopic[tk] = append(byTopic[tk], rec)
	}

	out := &Overview{}
	for subject, subjectRecs := range bySubject {
		sp := SubjectProgress{Subject: subject}

		topics := make(map[string]bool)
		for _, rec := range subjectRecs {
			topics[rec.Key.Topic] = true
		}
		for topic := range topics {
			tp := TopicProgress{Topic: topic}
			for _, rec := range byTopic[topicKey{subject, topic}] {
				tp.Skills = append(tp.Skills, SkillProgress{
					Skill:          rec.Key.Skill,
					TotalAnswered:  rec.TotalAnswered,
					CorrectAnswers: rec.CorrectAnswers,
					MasteryLevel:   rec.MasteryLevel,
					CurrentStreak:  rec.CurrentStreak,
					BestStreak:     rec.BestStreak,
					LastPracticed:  rec.LastPracticed,
				})
				tp.TotalAnswered += rec.TotalAnswered
				tp.CorrectAnswers += rec.CorrectAnswers
			}
			sort.Slice(tp.Skills, func(i, j int) bool { return tp.Skills[i].Skill < tp.Skills[j].Skill })
			tp.MasteryLevel = weightedLevel(tp.Skills)
			sp.Topics = append(sp.Topics, tp)
			sp.TotalAnswered += tp.TotalAnswered
			sp.CorrectAnswers += tp.CorrectAnswers
		}
		sort.Slice(sp.Topics, func(i, j int) bool { return sp.Topics[i].Topic < sp.Topics[j].Topic })
		sp.MasteryLevel = weightedTopicLevel(sp.Topics)
		out.Subjects = append(out.Subjects, sp)
		out.TotalAnswered += sp.TotalAnswered
		out.CorrectAnswers += sp.CorrectAnswers
	}
	sort.Slice(out.Subjects, func(i, j int) bool { return out.Subjects[i].Subject < out.Subjects[j].Subject })

	if out.TotalAnswered > 0 {
		out.Accuracy = mastery.Round2(float64(out.CorrectAnswers) / float64(out.TotalAnswered))
	}
	return out, nil
}

// DayActivity is one day's answer totals. Date is a calendar day in
// UTC, formatted 2006-01-02.
type DayActivity struct {
	Date      string
	Answered  int
	Correct   int
	Accuracy  float64
	MeanScore float64
}

// RecentActivity buckets the user's answer events from the last `days`
// days by UTC calendar day, oldest first. Days with no answers are
// omitted. days <= 0 selects the default window.
func (s *Service) RecentActivity(ctx context.Context, userID string, days int) ([]DayActivity, error) {
	if days <= 0 {
		days = DefaultActivityWindow
	}
	from := s.now().UTC().AddDate(0, 0, -days)

	events, err := s.ledger.AnswerEventsSince(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("load answer events: %w", err)
	}

	type bucket struct {
		answered int
		correct  int
		scoreSum float64
	}
	byDay := make(map[string]*bucket)
	for _, e := range events {
		day := e.Timestamp.UTC().Format("2006-01-02")
		b, ok := byDay[day]
		if !ok {
			b = &bucket{}
			byDay[day] = b
		}
		b.answered++
		if e.Correct {
			b.correct++
		}
		b.scoreSum += e.Score
	}

	out := make([]DayActivity, 0, len(byDay))
	for day, b := range byDay {
		out = append(out, DayActivity{
			Date:      day,
			Answered:  b.answered,
			Correct:   b.correct,
			Accuracy:  mastery.Round2(float64(b.correct) / float64(b.answered)),
			MeanScore: mastery.Round2(b.scoreSum / float64(b.answered)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// weightedLevel is the mean skill level weighted by answers, so a
// barely practiced skill does not swamp a well established one.
func weightedLevel(skills []SkillProgress) float64 {
	total := 0
	sum := 0.0
	for _, sk := range skills {
		total += sk.TotalAnswered
		sum += sk.MasteryLevel * float64(sk.TotalAnswered)
	}
	if total == 0 {
		return 0
	}
	return mastery.Round2(sum / float64(total))
}

func weightedTopicLevel(topics []TopicProgress) float64 {
	total := 0
	sum := 0.0
	for _, tp := range topics {
		total += tp.TotalAnswered
		sum += tp.MasteryLevel * float64(tp.TotalAnswered)
	}
	if total == 0 {
		return 0
	}
	return mastery.Round2(sum / float64(total))
}
