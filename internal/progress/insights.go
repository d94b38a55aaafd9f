package progress

import (
	"math"
	"time"

	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/utils"
)

// WeekChart holds one value per weekday, indexed by time.Weekday (Sunday first).
type WeekChart [constants.WeekDays]int

// MoodWeek holds the dominant feeling for each of the last seven days, oldest
// first. Days without a recorded feeling are empty.
type MoodWeek [constants.WeekDays]models.Feeling

// CategoryLookup resolves an exercise id to its category.
type CategoryLookup interface {
	Category(exerciseID string) (models.ExerciseCategory, bool)
}

// WeeklyChart sums minutes per weekday for the calendar week (Sunday to
// Saturday) containing today.
func WeeklyChart(completions []models.Completion, today string) WeekChart {
	var chart WeekChart

	t, err := utils.ParseDate(today)
	if err != nil {
		log.Warn("cannot build weekly chart for malformed day", "today", today, "error", err)
		return chart
	}
	weekStart := t.AddDate(0, 0, -int(t.Weekday())).Format(constants.DateFormat)

	for _, c := range completions {
		offset, err := utils.DaysBetween(weekStart, c.Date)
		if err != nil || offset < 0 || offset >= constants.WeekDays {
			continue
		}
		chart[time.Weekday(offset)] += c.Duration
	}
	return chart
}

// NormalizeChart scales chart to percentages of its largest value. An empty week
// stays all zero.
func NormalizeChart(chart WeekChart) WeekChart {
	peak := 1
	for _, v := range chart {
		if v > peak {
			peak = v
		}
	}

	var out WeekChart
	for i, v := range chart {
		out[i] = int(math.Round(float64(v) / float64(peak) * 100))
	}
	return out
}

// MoodChart picks the most frequent feeling for each of the seven days ending on
// today. Ties go to the feeling first recorded later in the day's completions.
func MoodChart(completions []models.Completion, today string) MoodWeek {
	var week MoodWeek

	for i := 0; i < constants.WeekDays; i++ {
		day, err := utils.ShiftDate(today, i-(constants.WeekDays-1))
		if err != nil {
			log.Warn("cannot build mood chart for malformed day", "today", today, "error", err)
			return MoodWeek{}
		}
		week[i] = dominantFeeling(completions, day)
	}
	return week
}

func dominantFeeling(completions []models.Completion, day string) models.Feeling {
	counts := make(map[models.Feeling]int)
	var order []models.Feeling
	for _, c := range completions {
		if c.Date != day || c.Feeling == "" {
			continue
		}
		if _, seen := counts[c.Feeling]; !seen {
			order = append(order, c.Feeling)
		}
		counts[c.Feeling]++
	}

	var best models.Feeling
	for _, f := range order {
		if best == "" || counts[f] >= counts[best] {
			best = f
		}
	}
	return best
}

// CategoryCounts tallies completions per exercise category. Every known
// category is present; completions of unknown exercises are skipped.
func CategoryCounts(completions []models.Completion, lookup CategoryLookup) map[models.ExerciseCategory]int {
	counts := make(map[models.ExerciseCategory]int, len(models.Categories))
	for _, cat := range models.Categories {
		counts[cat] = 0
	}
	if lookup == nil {
		return counts
	}

	for _, c := range completions {
		cat, ok := lookup.Category(c.ExerciseID)
		if !ok {
			continue
		}
		counts[cat]++
	}
	return counts
}
