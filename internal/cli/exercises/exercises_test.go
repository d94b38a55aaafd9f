package exercises

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/tranquil/internal/catalog"
	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/utils"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	var out bytes.Buffer
	return &cli.Context{
		Store:   storage.NewMemoryStore(),
		Clock:   &utils.FixedClock{T: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)},
		Catalog: cat,
		Out:     &out,
	}, &out
}

func TestListCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	require.NoError(t, (&ListCmd{}).Run(ctx))
	s := out.String()
	for _, want := range []string{"MOVE", "BREATHE", "MEDITATE", "box-breathing", "yoga-nidra", "[premium]"} {
		assert.Contains(t, s, want)
	}

	out.Reset()
	require.NoError(t, (&ListCmd{Category: "breathe", Free: true}).Run(ctx))
	s = out.String()
	assert.Contains(t, s, "box-breathing")
	assert.NotContains(t, s, "MOVE")
	assert.NotContains(t, s, "coherent-breathing")
}

func TestShowCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	require.NoError(t, (&ShowCmd{ID: "box-breathing"}).Run(ctx))
	s := out.String()
	assert.Contains(t, s, "Box Breathing")
	assert.Contains(t, s, "Vagus Nerve Activation")
	assert.Contains(t, s, "Sarah Williams")
	assert.NotContains(t, s, "favorites")

	assert.ErrorIs(t, (&ShowCmd{ID: "nope"}).Run(ctx), catalog.ErrExerciseNotFound)
}

func TestFavoriteToggle(t *testing.T) {
	ctx, out := setupTestContext(t)

	require.NoError(t, (&FavoritesCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No favorites yet")

	require.NoError(t, (&FavoriteCmd{ID: "body-scan"}).Run(ctx))
	assert.Contains(t, out.String(), "Added Body Scan")

	out.Reset()
	require.NoError(t, (&FavoritesCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "★ body-scan")

	out.Reset()
	require.NoError(t, (&ListCmd{Category: "meditate"}).Run(ctx))
	var favLine string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, "body-scan") {
			favLine = line
		}
	}
	assert.True(t, strings.HasPrefix(favLine, "  ★"), favLine)

	out.Reset()
	require.NoError(t, (&FavoriteCmd{ID: "body-scan"}).Run(ctx))
	assert.Contains(t, out.String(), "Removed Body Scan")
	fav, err := ctx.Favorites().IsFavorite("body-scan")
	require.NoError(t, err)
	assert.False(t, fav)

	assert.ErrorIs(t, (&FavoriteCmd{ID: "nope"}).Run(ctx), catalog.ErrExerciseNotFound)
}
