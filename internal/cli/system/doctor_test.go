package system

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/storage/sqlite"
)

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v\n%s", err, out.String())
	}
}

func TestDoctorCmd_MissingBackupsIsWarning(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor command should not fail on missing backups: %v", err)
	}
	if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
		t.Errorf("expected backup warning:\n%s", out.String())
	}
}

func TestDoctorCmd_WithBackups(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	mgr, _ := ctx.Backups()
	if _, err := mgr.Create(); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "✓ Backups present: OK") {
		t.Errorf("expected backups OK:\n%s", out.String())
	}
}

func TestDoctorCmd_NewerSchema(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	db := ctx.Store.(*sqlite.Store).GetDB()
	if _, err := db.Exec("UPDATE schema_version SET version = 999"); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected doctor to fail with a newer schema")
	}
	if !strings.Contains(out.String(), "❌ Schema version: FAIL") {
		t.Errorf("expected schema failure:\n%s", out.String())
	}
}

func TestDoctorCmd_CorruptData(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	if err := ctx.Store.Set(constants.KeyProgress, "{not json"); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected doctor to fail on corrupt data")
	}
	if !strings.Contains(out.String(), "userProgress") {
		t.Errorf("expected corrupt key to be named:\n%s", out.String())
	}
}

func TestDoctorCmd_InvalidSettings(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	if err := ctx.Store.Set(constants.KeySettings, `{"timezone":"UTC","reminderHour":31}`); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected doctor to fail on invalid settings")
	}
	if !strings.Contains(out.String(), "❌ Settings: FAIL") {
		t.Errorf("expected settings failure:\n%s", out.String())
	}
}

func TestDoctorCmd_MemoryStoreSkipsSchemaChecks(t *testing.T) {
	ctx, out, _ := setupTestDB(t)
	ctx.Store = storage.NewMemoryStore()

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed on memory store: %v\n%s", err, out.String())
	}
	for _, want := range []string{"⊘ Schema version: SKIPPED", "⊘ Backups present: SKIPPED"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q:\n%s", want, out.String())
		}
	}
}

func TestDoctorCmd_UnreachableDatabase(t *testing.T) {
	ctx, out, _ := setupTestDB(t)
	ctx.Store = sqlite.NewStore(t.TempDir() + "/missing.db")

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected failure for missing database")
	}
	if !strings.Contains(out.String(), "⊘ Stored data: SKIPPED (database not reachable)") {
		t.Errorf("expected dependent checks to be skipped:\n%s", out.String())
	}
}

func TestCheckClockTimezone(t *testing.T) {
	ctx, _, clock := setupTestDB(t)

	if err := checkClockTimezone(ctx); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	clock.Set(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := checkClockTimezone(ctx); err == nil {
		t.Error("expected error for implausible clock")
	}
}
