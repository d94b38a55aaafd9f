package progress

import (
	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/utils"
)

// CalculateStreak counts consecutive calendar days, ending on today, that have at
// least one completion. Several completions on one day count once. A day without
// a completion (today included) ends the walk, so the streak is 0 until something
// is logged today.
func CalculateStreak(completions []models.Completion, today string) int {
	if len(completions) == 0 {
		return 0
	}

	days := make(map[string]struct{}, len(completions))
	for _, c := range completions {
		days[c.Date] = struct{}{}
	}

	day, err := utils.ParseDate(today)
	if err != nil {
		log.Warn("cannot compute streak for malformed day", "today", today, "error", err)
		return 0
	}

	streak := 0
	for {
		if _, ok := days[day.Format(constants.DateFormat)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklyMinutes sums durations of completions dated within the trailing week that
// ends on today (today and the six days before it). Every completion counts, even
// several on one day.
func WeeklyMinutes(completions []models.Completion, today string) int {
	start, err := utils.ShiftDate(today, -(constants.WeekDays - 1))
	if err != nil {
		log.Warn("cannot compute weekly minutes for malformed day", "today", today, "error", err)
		return 0
	}

	total := 0
	for _, c := range completions {
		if !utils.ValidateDate(c.Date) {
			continue
		}
		// YYYY-MM-DD compares correctly as a string.
		if c.Date >= start && c.Date <= today {
			total += c.Duration
		}
	}
	return total
}
