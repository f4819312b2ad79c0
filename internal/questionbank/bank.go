package questionbank

import (
	"context"
	"fmt"

	"github.com/solvio/solvio/internal/store"
)

// Bank fronts the stored question bank. It is the question source
// attempts draw from.
type Bank struct {
	repo store.QuestionRepo
}

// NewBank creates a Bank over the given repository.
func NewBank(repo store.QuestionRepo) *Bank {
	return &Bank{repo: repo}
}

// Add stores one question. The (question_id, version) pair must be new;
// corrections go in as a new version, never as an overwrite.
func (b *Bank) Add(ctx context.Context, q *store.QuestionSnapshot) error {
	if err := b.repo.Put(ctx, q); err != nil {
		return fmt.Errorf("add question %s v%d: %w", q.QuestionID, q.Version, err)
	}
	return nil
}

// Select returns up to n random questions for the subject and topic,
// restricted to the given skills when non-empty. Only the latest
// version of each question qualifies.
func (b *Bank) Select(ctx context.Context, subject, topic string, skills []string, n int) ([]*store.QuestionSnapshot, error) {
	return b.repo.Select(ctx, subject, topic, skills, n)
}
