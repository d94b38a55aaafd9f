package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/settings"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/storage/sqlite"
)

// errSkipped marks a check that does not apply to the current store.
var errSkipped = errors.New("not applicable")

type check struct {
	name    string
	run     func(*cli.Context) error
	needsDB bool
	warning bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warning: true},
	{name: "Stored data", run: checkStoredData, needsDB: true},
	{name: "Settings", run: checkSettings, needsDB: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case errors.Is(err, errSkipped):
			ctx.Printf("⊘ %s: SKIPPED (%v)\n", c.name, err)
		case c.warning:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if s, ok := ctx.Store.(*sqlite.Store); ok {
		db := s.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
		return nil
	}

	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	return nil
}

func schemaVersions(ctx *cli.Context) (current, latest int, err error) {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return 0, 0, fmt.Errorf("%w: store has no schema", errSkipped)
	}
	runner, err := m.Migrations()
	if err != nil {
		return 0, 0, err
	}
	if current, err = runner.GetCurrentVersion(); err != nil {
		return 0, 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	if latest, err = runner.GetLatestVersion(); err != nil {
		return 0, 0, fmt.Errorf("failed to get latest schema version: %w", err)
	}
	return current, latest, nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := schemaVersions(ctx)
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, err := schemaVersions(ctx)
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, ok := ctx.Backups()
	if !ok {
		return fmt.Errorf("%w: backups need the SQLite store", errSkipped)
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'tranquil backup create'")
	}
	return nil
}

// storedShapes gives the expected document shape for each well-known key.
var storedShapes = map[string]func() interface{}{
	constants.KeyProgress:     func() interface{} { return &models.StreakData{} },
	constants.KeyMilestones:   func() interface{} { return &[]models.Milestone{} },
	constants.KeyQuizResult:   func() interface{} { return &[]models.QuizResult{} },
	constants.KeyFavorites:    func() interface{} { return &[]models.FavoriteExercise{} },
	constants.KeySettings:     func() interface{} { return &models.Settings{} },
	constants.KeyLastReminder: func() interface{} { return new(string) },
}

// checkStoredData reports every well-known key whose value does not decode.
// The engines fall back to defaults for such keys, so data is silently hidden.
func checkStoredData(ctx *cli.Context) error {
	var corrupt []string
	for _, key := range constants.AllKeys {
		shape, ok := storedShapes[key]
		if !ok {
			continue
		}
		if _, err := storage.GetJSON(ctx.Store, key, shape()); err != nil {
			var decodeErr *storage.DecodeError
			if !errors.As(err, &decodeErr) {
				return err
			}
			corrupt = append(corrupt, key)
		}
	}
	if len(corrupt) > 0 {
		return fmt.Errorf("unreadable values for %v (they are treated as empty)", corrupt)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	s, err := settings.Load(ctx.Store)
	if err != nil {
		return err
	}
	return settings.Validate(s)
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
