package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tranquil/internal/tui/components/exercises"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.exerciseList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if m.state == StateExercises && m.exerciseList.Filtering() {
			m.exerciseList, cmd = m.exerciseList.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			m.status = "Refreshed"
			return m, nil
		}

	case exercises.CompleteMsg:
		m.complete(msg)
		return m, nil

	case exercises.ToggleFavoriteMsg:
		added, err := m.favorites.Toggle(msg.Exercise)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.exerciseList.SetFavorites(m.favoriteSet())
		if added {
			m.status = fmt.Sprintf("★ Added %s to favorites", msg.Exercise.Title)
		} else {
			m.status = fmt.Sprintf("Removed %s from favorites", msg.Exercise.Title)
		}
		return m, nil
	}

	if m.state == StateExercises {
		m.exerciseList, cmd = m.exerciseList.Update(msg)
	}
	return m, cmd
}

func (m *Model) complete(msg exercises.CompleteMsg) {
	result, err := m.engine.CompleteExercise(msg.Exercise.ID, msg.Exercise.Duration)
	if err != nil {
		m.err = err
		return
	}

	m.status = fmt.Sprintf("✓ Logged %s · streak %d day(s)", msg.Exercise.Title, result.StreakData.CurrentStreak)
	if result.IsNewRecord && result.StreakData.CurrentStreak > 1 {
		m.status += " · new record!"
	}
	for _, ms := range result.NewMilestones {
		m.status += " · 🏆 " + ms.Title
	}
	m.refresh()
}
