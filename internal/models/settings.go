package models

import "fmt"

type Settings struct {
	Timezone             string `json:"timezone"`
	ReminderHour         int    `json:"reminderHour"`   // 0-23
	ReminderMinute       int    `json:"reminderMinute"` // 0-59
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

// ReminderTime renders the reminder as HH:MM.
func (s Settings) ReminderTime() string {
	return fmt.Sprintf("%02d:%02d", s.ReminderHour, s.ReminderMinute)
}

// DisplayTime renders the reminder on a 12-hour clock, e.g. "08:05 AM".
func (s Settings) DisplayTime() string {
	period := "AM"
	hour := s.ReminderHour
	if hour >= 12 {
		period = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, s.ReminderMinute, period)
}
