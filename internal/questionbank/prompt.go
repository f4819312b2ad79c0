package questionbank

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a tutor writing multiple-choice practice questions for an online learning platform.

Rules:
- Generate a single question for the given subject, topic, and skill.
- Use plain ASCII text. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, and standard operators.
- The stem must be clear, self-contained, and answerable from the options alone.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect common mistakes, not random values.
- The explanation should show the solution step by step.
- The hint should point toward the method without revealing the answer.
- Do not repeat any question from the "already in the bank" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Skill: %s\n", input.Skill)
	if input.Difficulty > 0 {
		fmt.Fprintf(&b, "Target difficulty: %d\n", input.Difficulty)
	}

	b.WriteString("\nAlready in the bank for this skill:\n")
	b.WriteString(buildDedup(input.PriorStems, cfg.MaxPriorStems))

	return b.String()
}

// buildDedup formats prior stems for the prompt, respecting the max limit.
// Returns "None" if there are no prior stems.
func buildDedup(priorStems []string, max int) string {
	if len(priorStems) == 0 {
		return "None"
	}

	// Keep only the most recent N stems.
	if max > 0 && len(priorStems) > max {
		priorStems = priorStems[len(priorStems)-max:]
	}

	var b strings.Builder
	for i, stem := range priorStems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, stem)
	}
	return strings.TrimRight(b.String(), "\n")
}
