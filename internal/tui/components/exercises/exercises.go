package exercises

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tranquil/internal/models"
)

// CompleteMsg asks the dashboard to log the exercise at its catalog duration.
type CompleteMsg struct {
	Exercise models.Exercise
}

type ToggleFavoriteMsg struct {
	Exercise models.Exercise
}

type Item struct {
	Exercise models.Exercise
	Favorite bool
}

func (i Item) Title() string {
	title := i.Exercise.Title
	if i.Favorite {
		title = "★ " + title
	}
	if i.Exercise.Premium {
		title += " (premium)"
	}
	return title
}

func (i Item) Description() string {
	return fmt.Sprintf("%d min | %s | %s", i.Exercise.Duration, i.Exercise.Category, i.Exercise.Instructor)
}

func (i Item) FilterValue() string { return i.Exercise.Title }

type KeyMap struct {
	Complete key.Binding
	Favorite key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Complete: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "log session"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(exercises []models.Exercise, favorites map[string]bool, width, height int) Model {
	l := list.New(items(exercises, favorites), list.NewDefaultDelegate(), width, height)
	l.Title = "Exercises"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Complete, keys.Favorite}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Complete, keys.Favorite}
	}

	return Model{list: l, keys: keys}
}

func items(exercises []models.Exercise, favorites map[string]bool) []list.Item {
	out := make([]list.Item, len(exercises))
	for i, ex := range exercises {
		out[i] = Item{Exercise: ex, Favorite: favorites[ex.ID]}
	}
	return out
}

// SetFavorites refreshes the favorite markers and keeps the selection.
func (m *Model) SetFavorites(favorites map[string]bool) {
	current := m.list.Items()
	updated := make([]list.Item, len(current))
	for i, it := range current {
		item := it.(Item)
		item.Favorite = favorites[item.Exercise.ID]
		updated[i] = item
	}
	m.list.SetItems(updated)
}

func (m Model) Selected() (models.Exercise, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Exercise, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Complete):
			if ex, ok := m.Selected(); ok {
				return m, func() tea.Msg { return CompleteMsg{Exercise: ex} }
			}
		case key.Matches(msg, m.keys.Favorite):
			if ex, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleFavoriteMsg{Exercise: ex} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  The exercise catalog is empty."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the list is capturing keystrokes for its filter.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
