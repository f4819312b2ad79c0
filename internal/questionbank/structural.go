package questionbank

import "github.com/solvio/solvio/internal/store"

// StructuralValidator checks that required fields are present, within
// length limits, and that the option set is well formed.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *store.QuestionSnapshot, _ GenerateInput) *ValidationError {
	if q.Stem == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "stem is empty",
			Retryable: true,
		}
	}
	if len(q.Stem) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "stem exceeds 500 characters",
			Retryable: true,
		}
	}
	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question must have exactly 4 options",
			Retryable: true,
		}
	}
	texts := make(map[string]bool, len(q.Options))
	correctFound := false
	for _, opt := range q.Options {
		if opt.Text == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option text is empty",
				Retryable: true,
			}
		}
		if len(opt.Text) > 200 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option text exceeds 200 characters",
				Retryable: true,
			}
		}
		if texts[opt.Text] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options must be distinct",
				Retryable: true,
			}
		}
		texts[opt.Text] = true
		if opt.ID == q.CorrectOption {
			correctFound = true
		}
	}
	if !correctFound {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct option is not among the options",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 5",
			Retryable: true,
		}
	}
	return nil
}
