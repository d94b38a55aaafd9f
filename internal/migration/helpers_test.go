package migration

import (
	"io/fs"
	"testing"

	"github.com/julianstephens/tranquil/migrations"
)

func fsSub(t *testing.T, dir string) (fs.FS, error) {
	t.Helper()
	return fs.Sub(migrations.FS, dir)
}
