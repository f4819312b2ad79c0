package questionbank

import (
	"strings"
	"testing"
)

const seedJSON = `[
	{
		"subject": "math",
		"topic": "fractions",
		"skill": "compare",
		"stem": "Which fraction is larger: 3/4 or 2/3?",
		"options": ["3/4", "2/3", "They are equal", "Cannot be compared"],
		"correct_index": 0,
		"explanation": "3/4 = 9/12 and 2/3 = 8/12.",
		"hint": "Use a common denominator.",
		"difficulty": 2
	},
	{
		"question_id": "frac-simplify-001",
		"subject": "math",
		"topic": "fractions",
		"skill": "simplify",
		"stem": "What is 6/8 in simplest form?",
		"options": ["3/4", "2/3", "6/8", "4/6"],
		"correct_index": 0,
		"explanation": "Divide numerator and denominator by 2.",
		"hint": "Find the greatest common divisor.",
		"difficulty": 1
	}
]`

func TestParseSeed(t *testing.T) {
	qs, err := ParseSeed([]byte(seedJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}

	first := qs[0]
	if first.QuestionID == "" {
		t.Error("missing question_id should be generated")
	}
	if first.CorrectOption != "a" || first.Source != "seed" || first.Version != 1 {
		t.Errorf("first entry mapped wrong: %+v", first)
	}

	second := qs[1]
	if second.QuestionID != "frac-simplify-001" {
		t.Errorf("explicit question_id not kept: %q", second.QuestionID)
	}
}

func TestParseSeed_BadIndex(t *testing.T) {
	bad := strings.Replace(seedJSON, `"correct_index": 0`, `"correct_index": 9`, 1)
	if _, err := ParseSeed([]byte(bad)); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
}

func TestParseSeed_InvalidEntryFailsLoad(t *testing.T) {
	bad := strings.Replace(seedJSON, `"difficulty": 2`, `"difficulty": 9`, 1)
	_, err := ParseSeed([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "seed entry 0") {
		t.Fatalf("expected entry validation error, got %v", err)
	}
}

func TestParseSeed_NotJSON(t *testing.T) {
	if _, err := ParseSeed([]byte("nope")); err == nil {
		t.Fatal("expected parse error")
	}
}
