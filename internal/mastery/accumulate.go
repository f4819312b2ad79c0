// Package mastery computes the confidence-damped mastery estimate for
// a skill from its running answer statistics. Everything here is pure:
// the attempt state machine calls Accumulate inside its transaction and
// relies on identical inputs producing identical outputs for idempotent
// replay detection.
package mastery

import "math"

// ConfidenceRamp is the observation count at which mastery reaches full
// confidence. A skill practiced fewer times has its mastery damped
// toward zero even with perfect accuracy, so a single lucky answer
// reads as 0.05, not 1.0.
const ConfidenceRamp = 20

// Record is the running mastery state for one skill key.
type Record struct {
	TotalAnswered  int
	CorrectAnswers int
	// Level is the mastery estimate in [0,1], rounded to two decimals.
	Level         float64
	CurrentStreak int
	BestStreak    int
}

// Outcome is one graded answer.
type Outcome struct {
	Correct bool
	// Weight scales the item score for partial credit. It is reserved
	// in the mastery formula: counters treat any Correct outcome as one
	// full correct observation. Callers pass 1.0 today.
	Weight float64
}

// Accuracy returns the raw correct ratio, 0 for an empty record.
func (r Record) Accuracy() float64 {
	if r.TotalAnswered == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.TotalAnswered)
}

// Confidence returns the ramp factor min(1, total/ConfidenceRamp).
func (r Record) Confidence() float64 {
	return math.Min(1, float64(r.TotalAnswered)/ConfidenceRamp)
}

// Accumulate folds one outcome into a prior record and returns the next
// record. The streak resets to zero on any incorrect answer; the best
// streak is the historical maximum of the current streak.
func Accumulate(prior Record, out Outcome) Record {
	next := Record{
		TotalAnswered:  prior.TotalAnswered + 1,
		CorrectAnswers: prior.CorrectAnswers,
		BestStreak:     prior.BestStreak,
	}

	if out.Correct {
		next.CorrectAnswers++
		next.CurrentStreak = prior.CurrentStreak + 1
	}
	if next.CurrentStreak > next.BestStreak {
		next.BestStreak = next.CurrentStreak
	}

	next.Level = clamp(Round2(next.Accuracy()*next.Confidence()), 0, 1)
	return next
}

// Round2 rounds to two decimal places. Shared with item scoring so
// stored values and replayed results match exactly.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
