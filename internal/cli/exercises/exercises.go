package exercises

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/models"
)

type ListCmd struct {
	Category string `help:"Only show one category." enum:"move,breathe,meditate," default:"" short:"c"`
	Free     bool   `help:"Hide premium exercises."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	favs, err := favoriteSet(ctx)
	if err != nil {
		return err
	}

	categories := models.Categories
	if c.Category != "" {
		categories = []models.ExerciseCategory{models.ExerciseCategory(c.Category)}
	}

	for _, cat := range categories {
		var shown []models.Exercise
		for _, ex := range ctx.Catalog.ByCategory(cat) {
			if c.Free && ex.Premium {
				continue
			}
			shown = append(shown, ex)
		}
		if len(shown) == 0 {
			continue
		}

		ctx.Printf("%s\n", strings.ToUpper(string(cat)))
		for _, ex := range shown {
			ctx.Printf("  %s %-20s %-28s %3d min%s\n", marker(favs[ex.ID]), ex.ID, ex.Title, ex.Duration, premiumTag(ex))
		}
		ctx.Println()
	}
	return nil
}

type ShowCmd struct {
	ID string `arg:"" help:"Exercise ID."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	ex, err := ctx.Catalog.Get(c.ID)
	if err != nil {
		return err
	}
	fav, err := ctx.Favorites().IsFavorite(ex.ID)
	if err != nil {
		return err
	}

	ctx.Printf("%s%s\n", ex.Title, premiumTag(ex))
	ctx.Printf("  %s · %s · %d min\n", ex.Category, ctx.Catalog.SectionTitle(ex.Section), ex.Duration)
	if ex.Instructor != "" {
		ctx.Printf("  with %s\n", ex.Instructor)
	}
	if fav {
		ctx.Println("  ★ in your favorites")
	}
	ctx.Printf("\n%s\n", ex.Description)
	if len(ex.Techniques) > 0 {
		ctx.Println("\nTechniques:")
		for _, t := range ex.Techniques {
			ctx.Printf("  - %s\n", t)
		}
	}
	if len(ex.Tags) > 0 {
		ctx.Printf("\nTags: %s\n", strings.Join(ex.Tags, ", "))
	}
	return nil
}

type FavoritesCmd struct{}

func (c *FavoritesCmd) Run(ctx *cli.Context) error {
	favs, err := ctx.Favorites().List()
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		ctx.Println("No favorites yet. Add one with 'tranquil favorites toggle <id>'.")
		return nil
	}
	for _, f := range favs {
		ctx.Printf("  ★ %-20s %-28s %3d min\n", f.ID, f.Title, f.Duration)
	}
	return nil
}

type FavoriteCmd struct {
	ID string `arg:"" help:"Exercise ID to add to or remove from favorites."`
}

func (c *FavoriteCmd) Run(ctx *cli.Context) error {
	ex, err := ctx.Catalog.Get(c.ID)
	if err != nil {
		return err
	}
	added, err := ctx.Favorites().Toggle(ex)
	if err != nil {
		return fmt.Errorf("failed to update favorites: %w", err)
	}
	if added {
		ctx.Printf("★ Added %s to favorites\n", ex.Title)
	} else {
		ctx.Printf("☆ Removed %s from favorites\n", ex.Title)
	}
	return nil
}

func favoriteSet(ctx *cli.Context) (map[string]bool, error) {
	favs, err := ctx.Favorites().List()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(favs))
	for _, f := range favs {
		set[f.ID] = true
	}
	return set, nil
}

func marker(fav bool) string {
	if fav {
		return "★"
	}
	return " "
}

func premiumTag(ex models.Exercise) string {
	if ex.Premium {
		return "  [premium]"
	}
	return ""
}
