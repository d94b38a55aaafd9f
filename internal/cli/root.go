// Package cli holds the state shared by tranquil's commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/tranquil/internal/assessment"
	"github.com/julianstephens/tranquil/internal/backup"
	"github.com/julianstephens/tranquil/internal/catalog"
	"github.com/julianstephens/tranquil/internal/favorites"
	"github.com/julianstephens/tranquil/internal/logger"
	"github.com/julianstephens/tranquil/internal/notifier"
	"github.com/julianstephens/tranquil/internal/progress"
	"github.com/julianstephens/tranquil/internal/settings"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/storage/sqlite"
	"github.com/julianstephens/tranquil/internal/utils"
)

type Context struct {
	Store    storage.Provider
	Clock    utils.Clock
	Catalog  *catalog.Catalog
	Notifier notifier.Sender

	Out io.Writer
	In  io.Reader
}

// NewContext wires a context around store with the embedded catalog, the
// system clock and stdio.
func NewContext(store storage.Provider) (*Context, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return &Context{
		Store:    store,
		Clock:    utils.SystemClock{},
		Catalog:  cat,
		Notifier: notifier.New(),
		Out:      os.Stdout,
		In:       os.Stdin,
	}, nil
}

// ApplySettings points the clock at the stored timezone. An invalid timezone
// keeps the current clock.
func (c *Context) ApplySettings() {
	s, err := settings.Load(c.Store)
	if err != nil {
		logger.Warn("Failed to load settings, using system clock", "error", err)
		return
	}
	clock, err := settings.Clock(s)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using system clock", "timezone", s.Timezone, "error", err)
		return
	}
	c.Clock = clock
}

func (c *Context) Engine() *progress.Engine {
	return progress.NewEngine(c.Store, c.Clock)
}

func (c *Context) Assessor() *assessment.Assessor {
	return assessment.NewAssessor(c.Store, c.Clock)
}

func (c *Context) Favorites() *favorites.Manager {
	return favorites.NewManager(c.Store, c.Clock)
}

// Backups returns a backup manager when the store is a SQLite file.
func (c *Context) Backups() (*backup.Manager, bool) {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return nil, false
	}
	return backup.NewManager(c.Store.GetConfigPath(), c.Clock), true
}

// PerformAutomaticBackup creates a backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	mgr, ok := c.Backups()
	if !ok {
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// Confirm asks a yes/no question on In; anything but y/yes is a no.
func (c *Context) Confirm(prompt string) (bool, error) {
	c.Printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
