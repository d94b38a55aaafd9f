package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/progress"
)

const chartWidth = 24

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateProgress:
		content = docStyle.Render(m.viewProgress())
	case StateExercises:
		content = docStyle.Render(m.exerciseList.View())
	case StateMilestones:
		content = docStyle.Render(m.viewMilestones())
	case StateAssessments:
		content = docStyle.Render(m.viewAssessments())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return errorStyle.Render("  Error: " + m.err.Error())
	}
	if m.status != "" {
		return statusStyle.Render("  " + m.status)
	}
	return ""
}

func (m Model) viewProgress() string {
	var b strings.Builder
	today := m.today()

	b.WriteString(headingStyle.Render("Your practice") + "\n\n")
	fmt.Fprintf(&b, "  🔥 Current streak   %d day(s)\n", m.streak)
	fmt.Fprintf(&b, "  🏅 Longest streak   %d day(s)\n", m.data.LongestStreak)
	fmt.Fprintf(&b, "  🧘 Sessions         %d\n", m.data.SessionCount())
	fmt.Fprintf(&b, "  ⏱  Total practice   %s\n", cli.FormatMinutes(m.data.TotalMinutes))
	fmt.Fprintf(&b, "  📅 This week        %s\n\n", cli.FormatMinutes(progress.WeeklyMinutes(m.data.Completions, today)))

	minutes := progress.WeeklyChart(m.data.Completions, today)
	scaled := progress.NormalizeChart(minutes)
	b.WriteString(headingStyle.Render("This week") + "\n")
	for d := time.Sunday; d <= time.Saturday; d++ {
		fmt.Fprintf(&b, "  %s %s %s\n", d.String()[:3], barStyle.Render(cli.Bar(scaled[d], chartWidth)), mutedStyle.Render(cli.FormatMinutes(minutes[d])))
	}

	moods := progress.MoodChart(m.data.Completions, today)
	b.WriteString("\n" + headingStyle.Render("Mood, last 7 days") + "\n  ")
	for _, f := range moods {
		b.WriteString(cli.FeelingEmoji(f) + " ")
	}
	b.WriteString("\n")

	if len(m.data.Completions) > 0 {
		counts := progress.CategoryCounts(m.data.Completions, m.catalog)
		b.WriteString("\n" + headingStyle.Render("By category") + "\n")
		for _, cat := range models.Categories {
			fmt.Fprintf(&b, "  %-9s %d\n", cat, counts[cat])
		}
	}
	return b.String()
}

func (m Model) viewMilestones() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Milestones") + "\n\n")

	achieved := 0
	for _, ms := range m.milestones {
		remaining := progress.Remaining(ms, m.data)
		percent := 100
		if ms.Target > 0 {
			percent = (ms.Target - remaining) * 100 / ms.Target
		}
		if ms.Achieved {
			achieved++
			percent = 100
		}
		fmt.Fprintf(&b, "  %s\n", cli.MilestoneStatus(ms, remaining))
		fmt.Fprintf(&b, "    %s %s\n", barStyle.Render(cli.Bar(percent, chartWidth)), mutedStyle.Render(ms.Description))
	}
	fmt.Fprintf(&b, "\n  %d of %d achieved\n", achieved, len(m.milestones))
	return b.String()
}

func (m Model) viewAssessments() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Nervous system assessments") + "\n\n")

	if len(m.results) == 0 {
		b.WriteString(mutedStyle.Render("  No assessments yet. Run 'tranquil assess take'.") + "\n")
		return b.String()
	}

	latest := m.results[len(m.results)-1]
	fmt.Fprintf(&b, "  Latest: %d/100 %s\n", latest.Score, latest.Category)
	fmt.Fprintf(&b, "  %s\n\n", barStyle.Render(cli.Bar(latest.Score, chartWidth)))

	b.WriteString(headingStyle.Render("History") + "\n")
	shown := 0
	for i := len(m.results) - 1; i >= 0 && shown < 10; i-- {
		r := m.results[i]
		fmt.Fprintf(&b, "  %-12s %3d  %s\n", formatDate(r.CompletedAt), r.Score, r.Category)
		shown++
	}
	return b.String()
}

func formatDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("Jan 2, 2006")
}
