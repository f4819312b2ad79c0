package questionbank

import (
	"strings"
	"testing"

	"github.com/solvio/solvio/internal/store"
)

func validQuestion() *store.QuestionSnapshot {
	return &store.QuestionSnapshot{
		QuestionID: "q1",
		Version:    1,
		Subject:    "math",
		Topic:      "fractions",
		Skill:      "compare",
		Stem:       "Which fraction is larger: 3/4 or 2/3?",
		Options: []store.Option{
			{ID: "a", Text: "3/4"},
			{ID: "b", Text: "2/3"},
			{ID: "c", Text: "They are equal"},
			{ID: "d", Text: "Cannot be compared"},
		},
		CorrectOption: "a",
		Explanation:   "3/4 = 9/12 and 2/3 = 8/12.",
		Hint:          "Use a common denominator.",
		Difficulty:    2,
		Source:        store.SourceSeed,
	}
}

func TestStructural_Valid(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion(), GenerateInput{}); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *store.QuestionSnapshot)
		wantMsg string
	}{
		{
			name:    "empty stem",
			mutate:  func(q *store.QuestionSnapshot) { q.Stem = "" },
			wantMsg: "stem is empty",
		},
		{
			name:    "stem too long",
			mutate:  func(q *store.QuestionSnapshot) { q.Stem = strings.Repeat("x", 501) },
			wantMsg: "exceeds 500",
		},
		{
			name:    "too few options",
			mutate:  func(q *store.QuestionSnapshot) { q.Options = q.Options[:3] },
			wantMsg: "exactly 4 options",
		},
		{
			name: "duplicate options",
			mutate: func(q *store.QuestionSnapshot) {
				q.Options[1].Text = q.Options[0].Text
			},
			wantMsg: "distinct",
		},
		{
			name:    "empty option text",
			mutate:  func(q *store.QuestionSnapshot) { q.Options[2].Text = "" },
			wantMsg: "option text is empty",
		},
		{
			name:    "correct option missing",
			mutate:  func(q *store.QuestionSnapshot) { q.CorrectOption = "z" },
			wantMsg: "not among the options",
		},
		{
			name:    "empty explanation",
			mutate:  func(q *store.QuestionSnapshot) { q.Explanation = "" },
			wantMsg: "explanation is empty",
		},
		{
			name:    "difficulty too low",
			mutate:  func(q *store.QuestionSnapshot) { q.Difficulty = 0 },
			wantMsg: "between 1 and 5",
		},
		{
			name:    "difficulty too high",
			mutate:  func(q *store.QuestionSnapshot) { q.Difficulty = 6 },
			wantMsg: "between 1 and 5",
		},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q, GenerateInput{})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", err.Message, tt.wantMsg)
			}
			if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}
