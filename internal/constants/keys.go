package constants

// Well-known storage keys. Values are JSON documents.
const (
	KeyProgress   = "userProgress"
	KeyMilestones = "userMilestones"
	KeyQuizResult = "quiz_results"
	KeyFavorites  = "favoriteExercises"
	KeySettings   = "settings"

	// KeyLastReminder holds the day (YYYY-MM-DD) the last reminder went out.
	KeyLastReminder = "lastReminderDate"
)

// AllKeys lists every key the application writes.
var AllKeys = []string{
	KeyProgress,
	KeyMilestones,
	KeyQuizResult,
	KeyFavorites,
	KeySettings,
	KeyLastReminder,
}
