package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/logger"
	"github.com/julianstephens/tranquil/internal/notifier"
	"github.com/julianstephens/tranquil/internal/progress"
	"github.com/julianstephens/tranquil/internal/settings"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/utils"
)

// NotifyCmd is meant to run periodically (cron, launchd) and sends at most one
// reminder inside the reminder window.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	s, err := settings.Load(ctx.Store)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !s.NotificationsEnabled {
		if c.DryRun {
			ctx.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	engine := ctx.Engine()
	practiced, err := engine.PracticedToday()
	if err != nil {
		return err
	}
	data, err := engine.GetProgressData()
	if err != nil {
		return err
	}
	today := utils.Today(ctx.Clock)
	yesterday, err := utils.ShiftDate(today, -1)
	if err != nil {
		return err
	}
	lastSent, err := loadLastReminder(ctx.Store)
	if err != nil {
		return err
	}

	reminder := notifier.Reminder{
		Settings:       s,
		Now:            ctx.Clock.Now(),
		PracticedToday: practiced,
		Streak:         progress.CalculateStreak(data.Completions, yesterday),
		LastSent:       lastSent,
	}
	msg, due := reminder.Due()
	if !due {
		if c.DryRun {
			ctx.Printf("No reminder due (reminder time %s, practiced today: %v, last sent: %s).\n",
				s.ReminderTime(), practiced, orNever(lastSent))
		}
		return nil
	}

	if c.DryRun {
		ctx.Printf("[DRY RUN] Notification: %s\n", msg)
		return nil
	}
	if ctx.Notifier == nil {
		return fmt.Errorf("no notifier configured")
	}
	if err := ctx.Notifier.Notify(context.Background(), msg); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	if err := storage.SetJSON(ctx.Store, constants.KeyLastReminder, today); err != nil {
		return fmt.Errorf("failed to record reminder: %w", err)
	}
	return nil
}

func loadLastReminder(kv storage.KV) (string, error) {
	var day string
	if _, err := storage.GetJSON(kv, constants.KeyLastReminder, &day); err != nil {
		var decodeErr *storage.DecodeError
		if !errors.As(err, &decodeErr) {
			return "", fmt.Errorf("failed to read last reminder: %w", err)
		}
		logger.Warn("ignoring unreadable last reminder date", "key", constants.KeyLastReminder, "error", err)
		return "", nil
	}
	return day, nil
}

func orNever(day string) string {
	if day == "" {
		return "never"
	}
	return day
}
