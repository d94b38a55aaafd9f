package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/tranquil/internal/models"
)

func TestReminderDue(t *testing.T) {
	settings := models.Settings{Timezone: "UTC", ReminderHour: 8, ReminderMinute: 0, NotificationsEnabled: true}
	at := func(h, m int) time.Time { return time.Date(2026, 3, 4, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name      string
		reminder  Reminder
		wantDue   bool
		wantMatch string
	}{
		{"on time", Reminder{Settings: settings, Now: at(8, 0)}, true, "daily practice"},
		{"inside window", Reminder{Settings: settings, Now: at(8, 30)}, true, ""},
		{"too early", Reminder{Settings: settings, Now: at(7, 59)}, false, ""},
		{"window closed", Reminder{Settings: settings, Now: at(8, 31)}, false, ""},
		{"already practiced", Reminder{Settings: settings, Now: at(8, 5), PracticedToday: true}, false, ""},
		{"disabled", Reminder{Settings: models.Settings{ReminderHour: 8}, Now: at(8, 5)}, false, ""},
		{"streak at risk", Reminder{Settings: settings, Now: at(8, 5), Streak: 6}, true, "6-day streak"},
		{"one day", Reminder{Settings: settings, Now: at(8, 5), Streak: 1}, true, "yesterday"},
		{"already sent today", Reminder{Settings: settings, Now: at(8, 5), LastSent: "2026-03-04"}, false, ""},
		{"sent yesterday", Reminder{Settings: settings, Now: at(8, 5), LastSent: "2026-03-03"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, due := tt.reminder.Due()
			if due != tt.wantDue {
				t.Fatalf("Due() = %v, want %v", due, tt.wantDue)
			}
			if !strings.Contains(msg, tt.wantMatch) {
				t.Errorf("message %q does not contain %q", msg, tt.wantMatch)
			}
		})
	}
}
