// Package questionbank manages the multiple-choice question bank: LLM
// generation with a validator pipeline, JSON seed import, and random
// selection for new attempts. Bank entries are immutable once stored;
// attempts snapshot them at start time.
package questionbank

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/solvio/solvio/internal/llm"
	"github.com/solvio/solvio/internal/store"
)

// optionIDs are the canonical answer choice identifiers, in display order.
var optionIDs = []string{"a", "b", "c", "d"}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	Subject string
	Topic   string
	Skill   string

	// Difficulty is the target difficulty (1-5). Zero lets the model choose.
	Difficulty int

	// PriorStems contains stems already in the bank for this skill, for
	// deduplication in the prompt.
	PriorStems []string
}

// Generator produces bank questions using an LLM provider.
type Generator interface {
	// Generate produces a single validated question. All configured
	// validators run before returning.
	Generate(ctx context.Context, input GenerateInput) (*store.QuestionSnapshot, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	newID    func() string
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, newID: uuid.NewString}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Stem         string   `json:"stem"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Hint         string   `json:"hint"`
	Difficulty   int      `json:"difficulty"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*store.QuestionSnapshot, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	// Mapping to canonical option IDs needs the index in range; check
	// before building the snapshot.
	if len(raw.Options) != len(optionIDs) {
		return nil, &ValidationError{
			Validator: "structural",
			Message:   fmt.Sprintf("expected %d options, got %d", len(optionIDs), len(raw.Options)),
			Retryable: true,
		}
	}
	if raw.CorrectIndex < 0 || raw.CorrectIndex >= len(raw.Options) {
		return nil, &ValidationError{
			Validator: "structural",
			Message:   fmt.Sprintf("correct_index %d out of range", raw.CorrectIndex),
			Retryable: true,
		}
	}

	options := make([]store.Option, len(raw.Options))
	for i, text := range raw.Options {
		options[i] = store.Option{ID: optionIDs[i], Text: text}
	}

	q := &store.QuestionSnapshot{
		QuestionID:    g.newID(),
		Version:       1,
		Subject:       input.Subject,
		Topic:         input.Topic,
		Skill:         input.Skill,
		Stem:          raw.Stem,
		Options:       options,
		CorrectOption: optionIDs[raw.CorrectIndex],
		Explanation:   raw.Explanation,
		Hint:          raw.Hint,
		Difficulty:    raw.Difficulty,
		Source:        store.SourceLLM,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}
