package mastery

import "testing"

func TestAccumulate_ConfidenceDamping(t *testing.T) {
	// One correct answer out of one must not read as full mastery.
	next := Accumulate(Record{}, Outcome{Correct: true, Weight: 1})

	if next.TotalAnswered != 1 || next.CorrectAnswers != 1 {
		t.Fatalf("counters = (%d,%d), want (1,1)", next.TotalAnswered, next.CorrectAnswers)
	}
	if next.Level != 0.05 {
		t.Errorf("Level = %v, want 0.05", next.Level)
	}
	if next.CurrentStreak != 1 || next.BestStreak != 1 {
		t.Errorf("streaks = (%d,%d), want (1,1)", next.CurrentStreak, next.BestStreak)
	}
}

func TestAccumulate_MonotonicUnderAllCorrect(t *testing.T) {
	rec := Record{}
	prevLevel := 0.0

	for n := 1; n <= 30; n++ {
		rec = Accumulate(rec, Outcome{Correct: true, Weight: 1})
		if rec.Level < prevLevel {
			t.Fatalf("mastery decreased at n=%d: %v < %v", n, rec.Level, prevLevel)
		}
		if rec.CurrentStreak != n {
			t.Fatalf("CurrentStreak = %d at n=%d", rec.CurrentStreak, n)
		}
		if rec.BestStreak != n {
			t.Fatalf("BestStreak = %d at n=%d", rec.BestStreak, n)
		}
		prevLevel = rec.Level
	}

	// Past the ramp, all-correct means full mastery.
	if rec.Level != 1.0 {
		t.Errorf("Level after 30 correct = %v, want 1.0", rec.Level)
	}
}

func TestAccumulate_StreakResetKeepsBest(t *testing.T) {
	rec := Record{}
	for range 5 {
		rec = Accumulate(rec, Outcome{Correct: true, Weight: 1})
	}

	rec = Accumulate(rec, Outcome{Correct: false, Weight: 1})

	if rec.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", rec.CurrentStreak)
	}
	if rec.BestStreak != 5 {
		t.Errorf("BestStreak = %d, want 5", rec.BestStreak)
	}
	if rec.TotalAnswered != 6 || rec.CorrectAnswers != 5 {
		t.Errorf("counters = (%d,%d), want (6,5)", rec.TotalAnswered, rec.CorrectAnswers)
	}
}

func TestAccumulate_TwoAnswersSameSkill(t *testing.T) {
	// Correct then incorrect on the same skill.
	rec := Accumulate(Record{}, Outcome{Correct: true, Weight: 1})
	rec = Accumulate(rec, Outcome{Correct: false, Weight: 1})

	if rec.TotalAnswered != 2 || rec.CorrectAnswers != 1 {
		t.Fatalf("counters = (%d,%d), want (2,1)", rec.TotalAnswered, rec.CorrectAnswers)
	}
	// accuracy 0.5 * confidence 0.1 = 0.05
	if rec.Level != 0.05 {
		t.Errorf("Level = %v, want 0.05", rec.Level)
	}
	if rec.CurrentStreak != 0 || rec.BestStreak != 1 {
		t.Errorf("streaks = (%d,%d), want (0,1)", rec.CurrentStreak, rec.BestStreak)
	}
}

func TestAccumulate_Deterministic(t *testing.T) {
	prior := Record{TotalAnswered: 7, CorrectAnswers: 4, CurrentStreak: 2, BestStreak: 3}
	a := Accumulate(prior, Outcome{Correct: true, Weight: 1})
	b := Accumulate(prior, Outcome{Correct: true, Weight: 1})
	if a != b {
		t.Errorf("same inputs produced different outputs: %+v vs %+v", a, b)
	}
}

func TestAccumulate_LevelStaysInRange(t *testing.T) {
	rec := Record{}
	outcomes := []bool{true, false, true, true, false, true, true, true, false, true}
	for i := 0; i < 100; i++ {
		rec = Accumulate(rec, Outcome{Correct: outcomes[i%len(outcomes)], Weight: 1})
		if rec.Level < 0 || rec.Level > 1 {
			t.Fatalf("Level out of range after %d answers: %v", i+1, rec.Level)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.0500000001, 0.05},
		{0.125, 0.13},
		{0.999, 1.0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
