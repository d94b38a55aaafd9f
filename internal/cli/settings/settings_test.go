package settings

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/settings"
	"github.com/julianstephens/tranquil/internal/storage/sqlite"
	"github.com/julianstephens/tranquil/internal/utils"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	var out bytes.Buffer
	ctx := &cli.Context{
		Store: store,
		Clock: utils.SystemClock{},
		Out:   &out,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, &out, cleanup
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSettingsCmd_List(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Fatalf("settings list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Reminder Time:         08:00 AM") {
		t.Errorf("unexpected list output:\n%s", out.String())
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		Timezone:      strPtr("UTC"),
		Reminder:      strPtr("19:45"),
		Notifications: boolPtr(false),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}
	if !strings.Contains(out.String(), "Settings updated successfully.") {
		t.Errorf("unexpected output %q", out.String())
	}

	s, err := settings.Load(ctx.Store)
	if err != nil {
		t.Fatalf("failed to reload settings: %v", err)
	}
	if s.Timezone != "UTC" || s.ReminderHour != 19 || s.ReminderMinute != 45 || s.NotificationsEnabled {
		t.Errorf("settings not persisted: %+v", s)
	}
}

func TestSettingsCmd_InvalidValuesNotSaved(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{Timezone: strPtr("Mars/Olympus")}).Run(ctx); err == nil {
		t.Error("expected invalid timezone error")
	}
	if err := (&SettingsCmd{Reminder: strPtr("25:00")}).Run(ctx); err == nil {
		t.Error("expected invalid reminder error")
	}

	s, err := settings.Load(ctx.Store)
	if err != nil {
		t.Fatal(err)
	}
	if s != settings.Defaults() {
		t.Errorf("invalid input changed settings: %+v", s)
	}
}

func TestSettingsCmd_NoChanges(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No changes specified") {
		t.Errorf("unexpected output %q", out.String())
	}
}
