// Package settings persists user preferences in the key-value store.
package settings

import (
	"errors"
	"fmt"

	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/logger"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/utils"
)

var log = logger.For("settings")

func Defaults() models.Settings {
	return models.Settings{
		Timezone:             constants.DefaultTimezone,
		ReminderHour:         constants.DefaultReminderHour,
		ReminderMinute:       constants.DefaultReminderMinute,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
	}
}

// Validate checks the timezone and reminder time.
func Validate(s models.Settings) error {
	if !utils.ValidateTimezone(s.Timezone) {
		return fmt.Errorf("invalid timezone %q", s.Timezone)
	}
	if s.ReminderHour < 0 || s.ReminderHour > 23 {
		return fmt.Errorf("reminder hour must be 0-23, got %d", s.ReminderHour)
	}
	if s.ReminderMinute < 0 || s.ReminderMinute > 59 {
		return fmt.Errorf("reminder minute must be 0-59, got %d", s.ReminderMinute)
	}
	return nil
}

// Load returns the stored settings, or the defaults when none are stored or
// the stored value is unreadable.
func Load(kv storage.KV) (models.Settings, error) {
	s := Defaults()
	if _, err := storage.GetJSON(kv, constants.KeySettings, &s); err != nil {
		var decodeErr *storage.DecodeError
		if !errors.As(err, &decodeErr) {
			return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
		}
		log.Warn("settings are corrupt, using defaults", "key", decodeErr.Key, "error", decodeErr.Err)
		return Defaults(), nil
	}
	if s.Timezone == "" {
		s.Timezone = constants.DefaultTimezone
	}
	return s, nil
}

// Save validates and stores s.
func Save(kv storage.KV, s models.Settings) error {
	if err := Validate(s); err != nil {
		return err
	}
	if err := storage.SetJSON(kv, constants.KeySettings, s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// SetReminderTime parses HH:MM into s.
func SetReminderTime(s *models.Settings, hhmm string) error {
	t, err := utils.ParseTime(hhmm)
	if err != nil {
		return fmt.Errorf("invalid reminder time %q, expected HH:MM: %w", hhmm, err)
	}
	s.ReminderHour = t.Hour()
	s.ReminderMinute = t.Minute()
	return nil
}

// Clock returns a system clock in the settings' timezone.
func Clock(s models.Settings) (utils.SystemClock, error) {
	return utils.NewClockForTimezone(s.Timezone)
}
