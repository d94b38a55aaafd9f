package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tranquil/internal/catalog"
	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/cli/assessments"
	"github.com/julianstephens/tranquil/internal/cli/backups"
	"github.com/julianstephens/tranquil/internal/cli/exercises"
	"github.com/julianstephens/tranquil/internal/cli/practice"
	"github.com/julianstephens/tranquil/internal/cli/reports"
	"github.com/julianstephens/tranquil/internal/cli/settings"
	"github.com/julianstephens/tranquil/internal/cli/system"
	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/errors"
	"github.com/julianstephens/tranquil/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"SQLite database path, JSON file path, PostgreSQL connection string, or 'keyring'. For PostgreSQL, credentials must NOT be embedded in the connection string; use 'tranquil keyring set', TRANQUIL_DB_CONNECTION or .pgpass instead." type:"string" default:"${default_config}"`
	Catalog  string `help:"YAML exercise catalog to use instead of the built-in library."`
	Debug    bool   `help:"Enable debug logging to stderr."`
	LogLevel string `help:"Log level (debug, info, warn, error)." enum:"debug,info,warn,error," default:""`

	Init     system.InitCmd       `cmd:"" help:"Initialize tranquil storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Send a practice reminder if one is due (run from cron)."`
	Practice struct {
		Complete practice.CompleteCmd `cmd:"" help:"Log a finished exercise."`
		Feel     practice.FeelCmd     `cmd:"" help:"Record how you felt after an exercise."`
		History  practice.HistoryCmd  `cmd:"" help:"Show recent sessions."`
	} `cmd:"" help:"Log practice sessions."`
	Progress struct {
		Show       reports.ShowCmd       `cmd:"" help:"Show streaks, totals and the latest assessment." default:"1"`
		Milestones reports.MilestonesCmd `cmd:"" help:"Show milestone progress."`
		Week       reports.WeekCmd       `cmd:"" help:"Show this week's minutes and moods."`
	} `cmd:"" help:"View your progress."`
	Assess struct {
		Take    assessments.TakeCmd    `cmd:"" help:"Take the nervous system assessment." default:"1"`
		Results assessments.ResultsCmd `cmd:"" help:"List past assessments."`
		Show    assessments.ShowCmd    `cmd:"" help:"Show one assessment with its answers."`
		Delete  assessments.DeleteCmd  `cmd:"" help:"Delete an assessment."`
	} `cmd:"" help:"Nervous system assessment."`
	Exercises struct {
		List exercises.ListCmd `cmd:"" help:"List exercises." default:"1"`
		Show exercises.ShowCmd `cmd:"" help:"Show exercise details."`
	} `cmd:"" help:"Browse the exercise library."`
	Favorites struct {
		List   exercises.FavoritesCmd `cmd:"" help:"List favorite exercises." default:"1"`
		Toggle exercises.FavoriteCmd  `cmd:"" help:"Add or remove a favorite."`
	} `cmd:"" help:"Manage favorite exercises."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track breathing, movement and meditation practice and check in on your nervous system."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		Level:     CLI.LogLevel,
		ConfigDir: configDir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	store, err := cli.OpenStore(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx, err := cli.NewContext(store)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Catalog != "" {
		cat, err := catalog.Load(CLI.Catalog)
		if err != nil {
			errors.Fatal(err)
		}
		appCtx.Catalog = cat
	}

	// init creates the store and keyring commands never touch it.
	command := ctx.Command()
	if command != "init" && !strings.HasPrefix(command, "keyring") {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		appCtx.ApplySettings()
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	errors.Fatal(err)
}

// configDir is where logs go: next to a file-backed store, or the user config
// directory for PostgreSQL.
func configDir(config string) string {
	if config != cli.KeyringConfig && !strings.Contains(config, "://") && !strings.Contains(config, "host=") {
		if path, err := cli.ExpandHome(config); err == nil {
			return filepath.Dir(path)
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, constants.AppName)
	}
	return os.TempDir()
}
