package reports

import (
	"time"

	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/progress"
	"github.com/julianstephens/tranquil/internal/utils"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	engine := ctx.Engine()
	data, err := engine.GetProgressData()
	if err != nil {
		return err
	}
	streak, err := engine.LiveStreak()
	if err != nil {
		return err
	}
	today := utils.Today(ctx.Clock)

	ctx.Println("Progress")
	ctx.Printf("  Current streak:  %d day(s)\n", streak)
	ctx.Printf("  Longest streak:  %d day(s)\n", data.LongestStreak)
	ctx.Printf("  Sessions:        %d\n", data.SessionCount())
	ctx.Printf("  Total practice:  %s\n", cli.FormatMinutes(data.TotalMinutes))
	ctx.Printf("  This week:       %s\n", cli.FormatMinutes(progress.WeeklyMinutes(data.Completions, today)))

	if len(data.Completions) > 0 {
		counts := progress.CategoryCounts(data.Completions, ctx.Catalog)
		ctx.Println("\nBy category")
		for _, cat := range models.Categories {
			ctx.Printf("  %-9s %d\n", cat, counts[cat])
		}
	}

	latest, ok, err := ctx.Assessor().Results().Latest()
	if err != nil {
		return err
	}
	ctx.Println("\nNervous system")
	if !ok {
		ctx.Println("  No assessment yet. Run 'tranquil assess take'.")
		return nil
	}
	ctx.Printf("  %d/100 %s (%s)\n", latest.Score, latest.Category, formatTimestamp(latest.CompletedAt))
	return nil
}

type MilestonesCmd struct{}

func (c *MilestonesCmd) Run(ctx *cli.Context) error {
	engine := ctx.Engine()
	milestones, err := engine.GetMilestoneProgress()
	if err != nil {
		return err
	}
	data, err := engine.GetProgressData()
	if err != nil {
		return err
	}

	achieved := 0
	for _, m := range milestones {
		if m.Achieved {
			achieved++
		}
		ctx.Println("  " + cli.MilestoneStatus(m, progress.Remaining(m, data)))
	}
	ctx.Printf("\n%d of %d milestones achieved\n", achieved, len(milestones))
	return nil
}

type WeekCmd struct {
	Width int `help:"Width of the chart bars." default:"20"`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Engine().GetProgressData()
	if err != nil {
		return err
	}
	today := utils.Today(ctx.Clock)

	minutes := progress.WeeklyChart(data.Completions, today)
	scaled := progress.NormalizeChart(minutes)
	ctx.Println("This week")
	for i, day := range weekdayLabels() {
		ctx.Printf("  %s %s %s\n", day, cli.Bar(scaled[i], c.Width), cli.FormatMinutes(minutes[i]))
	}

	moods := progress.MoodChart(data.Completions, today)
	ctx.Println("\nMood, last 7 days")
	ctx.Printf("  ")
	for _, f := range moods {
		ctx.Printf("%s ", cli.FeelingEmoji(f))
	}
	ctx.Println()
	return nil
}

func weekdayLabels() [7]string {
	var labels [7]string
	for d := time.Sunday; d <= time.Saturday; d++ {
		labels[d] = d.String()[:3]
	}
	return labels
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("Jan 2, 2006")
}
