package system

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/tranquil/internal/catalog"
	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/storage/sqlite"
	"github.com/julianstephens/tranquil/internal/utils"
)

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, text string) error {
	n.sent = append(n.sent, text)
	return n.err
}

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, *utils.FixedClock) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tranquil.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	clock := &utils.FixedClock{T: time.Date(2026, 3, 4, 8, 10, 0, 0, time.UTC)}
	return &cli.Context{
		Store:    store,
		Clock:    clock,
		Catalog:  cat,
		Notifier: &recordingNotifier{},
		Out:      &out,
	}, &out, clock
}
