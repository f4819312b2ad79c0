package questionbank

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/solvio/solvio/internal/llm"
)

func testInput() GenerateInput {
	return GenerateInput{
		Subject: "math",
		Topic:   "fractions",
		Skill:   "compare",
	}
}

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"stem": "Which fraction is larger: 3/4 or 2/3?",
		"options": ["3/4", "2/3", "They are equal", "Cannot be compared"],
		"correct_index": 0,
		"explanation": "Convert to twelfths: 3/4 = 9/12 and 2/3 = 8/12, so 3/4 is larger.",
		"hint": "Rewrite both fractions with a common denominator.",
		"difficulty": 2
	}`)
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuestionJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Stem != "Which fraction is larger: 3/4 or 2/3?" {
		t.Errorf("unexpected stem: %q", q.Stem)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if q.Options[0].ID != "a" || q.Options[3].ID != "d" {
		t.Errorf("option IDs not canonical: %+v", q.Options)
	}
	if q.CorrectOption != "a" {
		t.Errorf("expected correct option a, got %q", q.CorrectOption)
	}
	if q.Subject != "math" || q.Topic != "fractions" || q.Skill != "compare" {
		t.Errorf("input context not carried: %+v", q)
	}
	if q.Source != "llm" || q.Version != 1 || q.QuestionID == "" {
		t.Errorf("provenance fields wrong: %+v", q)
	}
}

func TestGenerate_PromptIncludesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuestionJSON(),
	})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.Difficulty = 4
	input.PriorStems = []string{"What is 1/2 + 1/4?"}

	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("request missing the question schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Subject: math", "Skill: compare", "Target difficulty: 4", "What is 1/2 + 1/4?"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerate_CorrectIndexOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"stem": "Pick one",
			"options": ["1", "2", "3", "4"],
			"correct_index": 7,
			"explanation": "n/a",
			"hint": "",
			"difficulty": 1
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !verr.Retryable {
		t.Error("out-of-range index should be retryable")
	}
}

func TestGenerate_WrongOptionCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"stem": "Pick one",
			"options": ["1", "2"],
			"correct_index": 0,
			"explanation": "n/a",
			"hint": "",
			"difficulty": 1
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("provider error not propagated: %v", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected parse error")
	}
}
