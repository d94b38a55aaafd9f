package settings

import (
	"fmt"

	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/settings"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone      *string `help:"IANA timezone used to decide what 'today' is (e.g. Europe/Berlin, or Local)."`
	Reminder      *string `help:"Daily reminder time as HH:MM."`
	Notifications *bool   `help:"Enable or disable practice reminders."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	s, err := settings.Load(ctx.Store)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Timezone:              %s\n", s.Timezone)
		ctx.Printf("  Reminder Time:         %s\n", s.DisplayTime())
		ctx.Printf("  Notifications Enabled: %v\n", s.NotificationsEnabled)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		s.Timezone = *c.Timezone
		updated = true
	}
	if c.Reminder != nil {
		if err := settings.SetReminderTime(&s, *c.Reminder); err != nil {
			return err
		}
		updated = true
	}
	if c.Notifications != nil {
		s.NotificationsEnabled = *c.Notifications
		updated = true
	}

	if updated {
		if err := settings.Save(ctx.Store, s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
