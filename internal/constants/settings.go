package constants

const (
	DefaultTimezone             = "Local" // Use system local timezone by default
	DefaultReminderHour         = 8
	DefaultReminderMinute       = 0
	DefaultNotificationsEnabled = true

	// ReminderWindowMin is how far past the reminder time a reminder may still fire.
	ReminderWindowMin = 30
)
