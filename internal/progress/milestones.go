package progress

import "github.com/julianstephens/tranquil/internal/models"

// milestoneMetrics maps a milestone type to the quantity its target is compared with.
// Each quantity only grows between completions, so achievement never needs revoking.
var milestoneMetrics = map[models.MilestoneType]func(models.StreakData) int{
	models.MilestoneSessions: func(d models.StreakData) int { return d.SessionCount() },
	models.MilestoneStreak:   func(d models.StreakData) int { return d.CurrentStreak },
	models.MilestoneMinutes:  func(d models.StreakData) int { return d.TotalMinutes },
}

var defaultMilestones = []models.Milestone{
	{
		ID:          "first-session",
		Type:        models.MilestoneSessions,
		Target:      1,
		Title:       "First Steps",
		Description: "Complete your first exercise",
	},
	{
		ID:          "week-streak",
		Type:        models.MilestoneStreak,
		Target:      7,
		Title:       "7-Day Streak",
		Description: "Practice for 7 consecutive days",
	},
	{
		ID:          "hundred-minutes",
		Type:        models.MilestoneMinutes,
		Target:      100,
		Title:       "Century Club",
		Description: "Complete 100 minutes of practice",
	},
	{
		ID:          "month-streak",
		Type:        models.MilestoneStreak,
		Target:      30,
		Title:       "Consistency Master",
		Description: "Practice for 30 consecutive days",
	},
}

// DefaultMilestones returns a fresh copy of the built-in milestone catalog.
func DefaultMilestones() []models.Milestone {
	out := make([]models.Milestone, len(defaultMilestones))
	copy(out, defaultMilestones)
	return out
}

// Qualifies reports whether data meets m's target. Unknown types never qualify.
func Qualifies(m models.Milestone, data models.StreakData) bool {
	metric, ok := milestoneMetrics[m.Type]
	if !ok {
		return false
	}
	return metric(data) >= m.Target
}

// Remaining returns how far data is from m's target, or 0 once it is met.
func Remaining(m models.Milestone, data models.StreakData) int {
	metric, ok := milestoneMetrics[m.Type]
	if !ok {
		return m.Target
	}
	if left := m.Target - metric(data); left > 0 {
		return left
	}
	return 0
}

// mergeCatalog appends catalog entries whose ids are missing from stored. It
// reports whether anything was added.
func mergeCatalog(stored, catalog []models.Milestone) ([]models.Milestone, bool) {
	seen := make(map[string]struct{}, len(stored))
	for _, m := range stored {
		seen[m.ID] = struct{}{}
	}

	added := false
	for _, m := range catalog {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		stored = append(stored, m)
		added = true
	}
	return stored, added
}
