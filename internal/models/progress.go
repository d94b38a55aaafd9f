package models

// Feeling is the optional post-exercise mood a user can attach to a completion.
type Feeling string

const (
	FeelingGreat Feeling = "great"
	FeelingGood  Feeling = "good"
	FeelingOkay  Feeling = "okay"
	FeelingTired Feeling = "tired"
)

// Feelings lists the accepted feelings in display order.
var Feelings = []Feeling{FeelingGreat, FeelingGood, FeelingOkay, FeelingTired}

// Valid reports whether f is one of the known feelings.
func (f Feeling) Valid() bool {
	for _, known := range Feelings {
		if f == known {
			return true
		}
	}
	return false
}

// Completion records one finished exercise. Only Feeling may change after creation.
type Completion struct {
	ExerciseID string  `json:"exerciseId"`
	Date       string  `json:"date"`     // YYYY-MM-DD
	Duration   int     `json:"duration"` // minutes
	Feeling    Feeling `json:"feeling,omitempty"`
}

// StreakData is the persisted progress record.
type StreakData struct {
	CurrentStreak      int          `json:"currentStreak"`
	LongestStreak      int          `json:"longestStreak"`
	TotalMinutes       int          `json:"totalMinutes"`
	WeeklyMinutes      int          `json:"weeklyMinutes"`
	Completions        []Completion `json:"completions"`
	LastCompletionDate string       `json:"lastCompletionDate"`
}

// SessionCount is the number of logged completions.
func (s StreakData) SessionCount() int {
	return len(s.Completions)
}

type MilestoneType string

const (
	MilestoneStreak   MilestoneType = "streak"
	MilestoneMinutes  MilestoneType = "minutes"
	MilestoneSessions MilestoneType = "sessions"
)

// Milestone is an achievement that flips to achieved exactly once.
type Milestone struct {
	ID           string        `json:"id"`
	Type         MilestoneType `json:"type"`
	Target       int           `json:"target"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Achieved     bool          `json:"achieved"`
	AchievedDate string        `json:"achievedDate,omitempty"` // YYYY-MM-DD
}
