package progress

import (
	"testing"

	"github.com/julianstephens/tranquil/internal/models"
)

func completionsOn(dates ...string) []models.Completion {
	out := make([]models.Completion, 0, len(dates))
	for _, d := range dates {
		out = append(out, models.Completion{ExerciseID: "x", Date: d, Duration: 10})
	}
	return out
}

func TestCalculateStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		today string
		want  int
	}{
		{"empty", nil, "2026-03-04", 0},
		{"today only", []string{"2026-03-04"}, "2026-03-04", 1},
		{"no completion today", []string{"2026-03-03", "2026-03-02"}, "2026-03-04", 0},
		{"three days", []string{"2026-03-02", "2026-03-03", "2026-03-04"}, "2026-03-04", 3},
		{"duplicates collapse", []string{"2026-03-04", "2026-03-04", "2026-03-03"}, "2026-03-04", 2},
		{"gap stops walk", []string{"2026-03-04", "2026-03-02", "2026-03-01"}, "2026-03-04", 1},
		{"unordered input", []string{"2026-03-03", "2026-03-04", "2026-03-02"}, "2026-03-04", 3},
		{"across month end", []string{"2026-02-27", "2026-02-28", "2026-03-01"}, "2026-03-01", 3},
		{"future dates ignored", []string{"2026-03-05", "2026-03-04"}, "2026-03-04", 1},
		{"malformed today", []string{"2026-03-04"}, "not-a-date", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateStreak(completionsOn(tt.dates...), tt.today); got != tt.want {
				t.Errorf("CalculateStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeeklyMinutes(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"today", []string{"2026-03-10"}, 10},
		{"six days ago included", []string{"2026-03-04"}, 10},
		{"seven days ago excluded", []string{"2026-03-03"}, 0},
		{"eight days ago excluded", []string{"2026-03-02"}, 0},
		{"same day sums", []string{"2026-03-10", "2026-03-10", "2026-03-09"}, 30},
		{"future excluded", []string{"2026-03-11"}, 0},
		{"malformed skipped", []string{"March 10", "2026-03-10"}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeeklyMinutes(completionsOn(tt.dates...), "2026-03-10"); got != tt.want {
				t.Errorf("WeeklyMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQualifiesAndRemaining(t *testing.T) {
	data := models.StreakData{
		CurrentStreak: 5,
		TotalMinutes:  120,
		Completions:   completionsOn("2026-03-04"),
	}

	tests := []struct {
		milestone models.Milestone
		qualifies bool
		remaining int
	}{
		{models.Milestone{Type: models.MilestoneSessions, Target: 1}, true, 0},
		{models.Milestone{Type: models.MilestoneStreak, Target: 7}, false, 2},
		{models.Milestone{Type: models.MilestoneMinutes, Target: 100}, true, 0},
		{models.Milestone{Type: "unknown", Target: 3}, false, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.milestone.Type), func(t *testing.T) {
			if got := Qualifies(tt.milestone, data); got != tt.qualifies {
				t.Errorf("Qualifies() = %v, want %v", got, tt.qualifies)
			}
			if got := Remaining(tt.milestone, data); got != tt.remaining {
				t.Errorf("Remaining() = %d, want %d", got, tt.remaining)
			}
		})
	}
}

func TestDefaultMilestonesReturnsCopy(t *testing.T) {
	a := DefaultMilestones()
	a[0].Achieved = true
	if DefaultMilestones()[0].Achieved {
		t.Error("DefaultMilestones must not share backing storage")
	}
}
