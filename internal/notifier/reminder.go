package notifier

import (
	"fmt"
	"time"

	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/models"
)

// Reminder is the practice state a reminder decision is made from.
type Reminder struct {
	Settings       models.Settings
	Now            time.Time
	PracticedToday bool
	// Streak is the run of days ending yesterday, lost if today is skipped.
	Streak int
	// LastSent is the day the previous reminder went out, empty if never.
	LastSent string
}

// Due reports whether a reminder should go out now and its text. A reminder is
// due from the configured time until ReminderWindowMin minutes after it, as long
// as notifications are on, nothing was practiced today and no reminder has
// gone out today.
func (r Reminder) Due() (string, bool) {
	if !r.Settings.NotificationsEnabled || r.PracticedToday {
		return "", false
	}
	if r.LastSent == r.Now.Format(constants.DateFormat) {
		return "", false
	}

	target := r.Settings.ReminderHour*60 + r.Settings.ReminderMinute
	now := r.Now.Hour()*60 + r.Now.Minute()
	late := now - target
	if late < 0 || late > constants.ReminderWindowMin {
		return "", false
	}
	return r.Message(), true
}

func (r Reminder) Message() string {
	switch {
	case r.Streak > 1:
		return fmt.Sprintf("Keep your %d-day streak going. A few minutes of practice is all it takes.", r.Streak)
	case r.Streak == 1:
		return "You practiced yesterday. Take a moment today to build your streak."
	default:
		return "Time for your daily practice. Take a few minutes to breathe and reset."
	}
}
