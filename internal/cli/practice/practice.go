package practice

import (
	"errors"
	"fmt"

	"github.com/julianstephens/tranquil/internal/catalog"
	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/utils"
)

type CompleteCmd struct {
	ExerciseID string `arg:"" help:"ID of the finished exercise (see 'tranquil exercises list')."`
	Duration   int    `help:"Minutes practiced. Defaults to the exercise's catalog duration." short:"d"`
	Feeling    string `help:"How you feel afterwards (great, good, okay, tired). Applies to the first session of this exercise today." enum:"great,good,okay,tired," default:""`
}

func (c *CompleteCmd) Run(ctx *cli.Context) error {
	duration := c.Duration
	title := c.ExerciseID

	ex, err := ctx.Catalog.Get(c.ExerciseID)
	switch {
	case err == nil:
		title = ex.Title
		if duration == 0 {
			duration = ex.Duration
		}
	case errors.Is(err, catalog.ErrExerciseNotFound):
		if duration == 0 {
			return fmt.Errorf("%w: pass --duration to log a custom exercise", err)
		}
	default:
		return err
	}

	engine := ctx.Engine()
	result, err := engine.CompleteExercise(c.ExerciseID, duration)
	if err != nil {
		return err
	}

	data := result.StreakData
	ctx.Printf("✓ Logged %s (%s)\n", title, cli.FormatMinutes(duration))
	ctx.Printf("  Streak: %d day(s)", data.CurrentStreak)
	if result.IsNewRecord && data.CurrentStreak > 1 {
		ctx.Printf("  🎉 new record!")
	}
	ctx.Println()
	ctx.Printf("  This week: %s  ·  Total: %s\n", cli.FormatMinutes(data.WeeklyMinutes), cli.FormatMinutes(data.TotalMinutes))

	for _, m := range result.NewMilestones {
		ctx.Printf("🏆 Milestone unlocked: %s. %s\n", m.Title, m.Description)
	}

	if c.Feeling != "" {
		if err := engine.UpdateFeeling(c.ExerciseID, data.LastCompletionDate, models.Feeling(c.Feeling)); err != nil {
			return err
		}
		ctx.Printf("  Feeling: %s %s\n", cli.FeelingEmoji(models.Feeling(c.Feeling)), c.Feeling)
		if sessionsOn(data.Completions, c.ExerciseID, data.LastCompletionDate) > 1 {
			ctx.Printf("  Note: recorded on your first %s session today, not the one just logged.\n", title)
		}
	}

	if suggestions, err := ctx.Catalog.Suggest(c.ExerciseID, 3); err == nil && len(suggestions) > 0 {
		ctx.Println("\nTry next:")
		for _, s := range suggestions {
			ctx.Printf("  %-20s %s (%d min)\n", s.ID, s.Title, s.Duration)
		}
	}
	return nil
}

type FeelCmd struct {
	ExerciseID string `arg:"" help:"ID of the completed exercise."`
	Feeling    string `arg:"" help:"great, good, okay or tired." enum:"great,good,okay,tired"`
	Date       string `help:"Completion date (YYYY-MM-DD). Defaults to today."`
}

func (c *FeelCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today(ctx.Clock)
	} else if !utils.ValidateDate(date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	if err := ctx.Engine().UpdateFeeling(c.ExerciseID, date, models.Feeling(c.Feeling)); err != nil {
		return err
	}
	ctx.Printf("✓ Feeling for %s on %s set to %s %s\n", c.ExerciseID, date, cli.FeelingEmoji(models.Feeling(c.Feeling)), c.Feeling)
	return nil
}

type HistoryCmd struct {
	Limit int `help:"Number of recent completions to show." default:"10"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Engine().GetProgressData()
	if err != nil {
		return err
	}
	if len(data.Completions) == 0 {
		ctx.Println("No completions yet. Finish an exercise with 'tranquil practice complete <id>'.")
		return nil
	}

	start := 0
	if c.Limit > 0 && len(data.Completions) > c.Limit {
		start = len(data.Completions) - c.Limit
	}
	for i := len(data.Completions) - 1; i >= start; i-- {
		comp := data.Completions[i]
		title := comp.ExerciseID
		if ex, err := ctx.Catalog.Get(comp.ExerciseID); err == nil {
			title = ex.Title
		}
		ctx.Printf("  %s  %-26s %4d min  %s\n", comp.Date, title, comp.Duration, cli.FeelingEmoji(comp.Feeling))
	}
	return nil
}

// sessionsOn counts the completions of exerciseID logged on date.
func sessionsOn(completions []models.Completion, exerciseID, date string) int {
	n := 0
	for _, c := range completions {
		if c.ExerciseID == exerciseID && c.Date == date {
			n++
		}
	}
	return n
}
