package questionbank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/solvio/solvio/internal/store"
)

// SeedQuestion is one entry of a seed file: a JSON array of these.
// QuestionID is optional; omitted entries get a fresh one.
type SeedQuestion struct {
	QuestionID   string   `json:"question_id,omitempty"`
	Subject      string   `json:"subject"`
	Topic        string   `json:"topic"`
	Skill        string   `json:"skill"`
	Stem         string   `json:"stem"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Hint         string   `json:"hint"`
	Difficulty   int      `json:"difficulty"`
}

// LoadSeedFile parses a seed file and returns validated bank entries.
// Any invalid entry fails the whole load; seed files are curated
// content and a bad entry means the file needs fixing.
func LoadSeedFile(path string) ([]*store.QuestionSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed converts raw seed JSON into validated bank entries.
func ParseSeed(data []byte) ([]*store.QuestionSnapshot, error) {
	var seeds []SeedQuestion
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	validator := &StructuralValidator{}
	out := make([]*store.QuestionSnapshot, 0, len(seeds))
	for i, s := range seeds {
		if len(s.Options) != len(optionIDs) {
			return nil, fmt.Errorf("seed entry %d: expected %d options, got %d", i, len(optionIDs), len(s.Options))
		}
		if s.CorrectIndex < 0 || s.CorrectIndex >= len(s.Options) {
			return nil, fmt.Errorf("seed entry %d: correct_index %d out of range", i, s.CorrectIndex)
		}

		options := make([]store.Option, len(s.Options))
		for j, text := range s.Options {
			options[j] = store.Option{ID: optionIDs[j], Text: text}
		}

		id := s.QuestionID
		if id == "" {
			id = uuid.NewString()
		}

		q := &store.QuestionSnapshot{
			QuestionID:    id,
			Version:       1,
			Subject:       s.Subject,
			Topic:         s.Topic,
			Skill:         s.Skill,
			Stem:          s.Stem,
			Options:       options,
			CorrectOption: optionIDs[s.CorrectIndex],
			Explanation:   s.Explanation,
			Hint:          s.Hint,
			Difficulty:    s.Difficulty,
			Source:        store.SourceSeed,
		}
		if verr := validator.Validate(q, GenerateInput{}); verr != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, verr)
		}
		out = append(out, q)
	}
	return out, nil
}
