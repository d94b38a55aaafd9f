package progress

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/tranquil/internal/models"
)

type mapLookup map[string]models.ExerciseCategory

func (m mapLookup) Category(id string) (models.ExerciseCategory, bool) {
	c, ok := m[id]
	return c, ok
}

func TestWeeklyChart(t *testing.T) {
	// 2026-03-04 is a Wednesday; its week starts Sunday 2026-03-01.
	completions := []models.Completion{
		{ExerciseID: "a", Date: "2026-02-28", Duration: 50}, // previous Saturday
		{ExerciseID: "a", Date: "2026-03-01", Duration: 10},
		{ExerciseID: "a", Date: "2026-03-04", Duration: 5},
		{ExerciseID: "b", Date: "2026-03-04", Duration: 15},
		{ExerciseID: "a", Date: "2026-03-07", Duration: 8},
		{ExerciseID: "a", Date: "2026-03-08", Duration: 99}, // next Sunday
	}

	got := WeeklyChart(completions, "2026-03-04")
	want := WeekChart{10, 0, 0, 20, 0, 0, 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WeeklyChart mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeChart(t *testing.T) {
	assert.Equal(t, WeekChart{}, NormalizeChart(WeekChart{}))
	assert.Equal(t, WeekChart{50, 0, 0, 100, 0, 0, 40}, NormalizeChart(WeekChart{10, 0, 0, 20, 0, 0, 8}))
	assert.Equal(t, WeekChart{0, 100, 0, 0, 0, 0, 0}, NormalizeChart(WeekChart{0, 1, 0, 0, 0, 0, 0}))
}

func TestMoodChart(t *testing.T) {
	completions := []models.Completion{
		{Date: "2026-03-04", Feeling: models.FeelingTired},
		{Date: "2026-03-04", Feeling: models.FeelingGreat},
		{Date: "2026-03-04", Feeling: models.FeelingGreat},
		{Date: "2026-03-03", Feeling: models.FeelingGood},
		{Date: "2026-03-03", Feeling: models.FeelingOkay},  // tie, later feeling wins
		{Date: "2026-03-02"},                               // no feeling
		{Date: "2026-02-26", Feeling: models.FeelingGood},  // six days back, first slot
		{Date: "2026-02-25", Feeling: models.FeelingTired}, // outside window
	}

	got := MoodChart(completions, "2026-03-04")
	want := MoodWeek{models.FeelingGood, "", "", "", "", models.FeelingOkay, models.FeelingGreat}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MoodChart mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryCounts(t *testing.T) {
	lookup := mapLookup{
		"walk":    models.CategoryMove,
		"box":     models.CategoryBreathe,
		"body":    models.CategoryMeditate,
		"breath2": models.CategoryBreathe,
	}
	completions := []models.Completion{
		{ExerciseID: "walk"}, {ExerciseID: "box"}, {ExerciseID: "breath2"},
		{ExerciseID: "box"}, {ExerciseID: "unknown"},
	}

	got := CategoryCounts(completions, lookup)
	assert.Equal(t, map[models.ExerciseCategory]int{
		models.CategoryMove:     1,
		models.CategoryBreathe:  3,
		models.CategoryMeditate: 0,
	}, got)

	empty := CategoryCounts(completions, nil)
	assert.Len(t, empty, len(models.Categories))
}
