package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tranquil/internal/models"
)

// FormatMinutes renders a minute total as "1h 05m" or "12 min".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// Bar draws a fixed-width bar for a 0-100 percentage.
func Bar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// MilestoneStatus renders a one-line summary of a milestone.
func MilestoneStatus(m models.Milestone, remaining int) string {
	if m.Achieved {
		return fmt.Sprintf("✓ %-20s achieved %s", m.Title, m.AchievedDate)
	}
	return fmt.Sprintf("· %-20s %d to go", m.Title, remaining)
}

// FeelingEmoji decorates a feeling for display.
func FeelingEmoji(f models.Feeling) string {
	switch f {
	case models.FeelingGreat:
		return "😊"
	case models.FeelingGood:
		return "🙂"
	case models.FeelingOkay:
		return "😐"
	case models.FeelingTired:
		return "😴"
	default:
		return "·"
	}
}
