package constants

import "time"

const (
	AppName            = "tranquil"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/tranquil/tranquil.db"
	ConnectionEnvVar   = "TRANQUIL_DB_CONNECTION"
	Version            = "v0.3.0"

	// DateFormat is the calendar-day format used for completions and milestones (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the reminder time format (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tranquil-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "tranquil-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.tranquil"
	TrayAppExecutable      = "tranquil-tray"

	// WeekDays is the number of calendar days counted in weekly minutes, today included.
	WeekDays = 7
)
