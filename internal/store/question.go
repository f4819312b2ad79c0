package store

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/solvio/solvio/ent"
	"github.com/solvio/solvio/ent/question"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Put(ctx context.Context, q *QuestionSnapshot) error {
	_, err := r.client.Question.Create().
		SetQuestionID(q.QuestionID).
		SetVersion(q.Version).
		SetSubject(q.Subject).
		SetTopic(q.Topic).
		SetSkill(q.Skill).
		SetStem(q.Stem).
		SetOptions(optionsToSchema(q.Options)).
		SetCorrectOption(q.CorrectOption).
		SetExplanation(q.Explanation).
		SetHint(q.Hint).
		SetDifficulty(q.Difficulty).
		SetSource(q.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save question: %w", err)
	}
	return nil
}

// Select loads the latest version of every matching question and picks
// n at random. Bank sizes here are modest (hundreds per topic), so the
// shuffle happens in Go rather than in SQL.
func (r *questionRepo) Select(ctx context.Context, subject, topic string, skills []string, n int) ([]*QuestionSnapshot, error) {
	q := r.client.Question.Query().
		Where(
			question.Subject(subject),
			question.Topic(topic),
		)
	if len(skills) > 0 {
		q = q.Where(question.SkillIn(skills...))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	latest := latestVersions(rows)
	rand.Shuffle(len(latest), func(i, j int) {
		latest[i], latest[j] = latest[j], latest[i]
	})
	if len(latest) > n {
		latest = latest[:n]
	}

	out := make([]*QuestionSnapshot, len(latest))
	for i, row := range latest {
		out[i] = questionFromEnt(row)
	}
	return out, nil
}

// latestVersions keeps only the highest version per question_id.
func latestVersions(rows []*ent.Question) []*ent.Question {
	byID := make(map[string]*ent.Question, len(rows))
	for _, row := range rows {
		if cur, ok := byID[row.QuestionID]; !ok || row.Version > cur.Version {
			byID[row.QuestionID] = row
		}
	}
	out := make([]*ent.Question, 0, len(byID))
	for _, row := range byID {
		out = append(out, row)
	}
	return out
}

func questionFromEnt(row *ent.Question) *QuestionSnapshot {
	return &QuestionSnapshot{
		QuestionID:    row.QuestionID,
		Version:       row.Version,
		Subject:       row.Subject,
		Topic:         row.Topic,
		Skill:         row.Skill,
		Stem:          row.Stem,
		Options:       optionsFromSchema(row.Options),
		CorrectOption: row.CorrectOption,
		Explanation:   row.Explanation,
		Hint:          row.Hint,
		Difficulty:    row.Difficulty,
		Source:        row.Source,
	}
}
