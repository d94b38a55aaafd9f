// Package tui is the interactive dashboard: progress, exercises, milestones and
// assessment history over the same store the CLI uses.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tranquil/internal/assessment"
	"github.com/julianstephens/tranquil/internal/catalog"
	"github.com/julianstephens/tranquil/internal/favorites"
	"github.com/julianstephens/tranquil/internal/logger"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/progress"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/tui/components/exercises"
	"github.com/julianstephens/tranquil/internal/utils"
)

var log = logger.For("tui")

type SessionState int

const (
	StateProgress SessionState = iota
	StateExercises
	StateMilestones
	StateAssessments
)

var tabTitles = []string{"Progress", "Exercises", "Milestones", "Assessments"}

type Model struct {
	engine    *progress.Engine
	assessor  *assessment.Assessor
	favorites *favorites.Manager
	catalog   *catalog.Catalog
	clock     utils.Clock

	state        SessionState
	keys         KeyMap
	help         help.Model
	exerciseList exercises.Model

	data       models.StreakData
	streak     int
	milestones []models.Milestone
	results    []models.QuizResult

	status   string
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(kv storage.KV, clock utils.Clock, cat *catalog.Catalog) Model {
	m := Model{
		engine:    progress.NewEngine(kv, clock),
		assessor:  assessment.NewAssessor(kv, clock),
		favorites: favorites.NewManager(kv, clock),
		catalog:   cat,
		clock:     clock,
		state:     StateProgress,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	m.exerciseList = exercises.New(cat.All(), m.favoriteSet(), 0, 0)
	m.refresh()
	return m
}

// refresh reloads everything shown on the dashboard. The first error is kept
// for display; the remaining data still loads.
func (m *Model) refresh() {
	m.err = nil
	keep := func(err error) {
		if err != nil && m.err == nil {
			log.Error("dashboard refresh failed", "error", err)
			m.err = err
		}
	}

	data, err := m.engine.GetProgressData()
	keep(err)
	m.data = data

	streak, err := m.engine.LiveStreak()
	keep(err)
	m.streak = streak

	milestones, err := m.engine.GetMilestoneProgress()
	keep(err)
	m.milestones = milestones

	results, err := m.assessor.Results().GetAll()
	keep(err)
	m.results = results
}

func (m Model) favoriteSet() map[string]bool {
	favs, err := m.favorites.List()
	if err != nil {
		log.Warn("failed to load favorites", "error", err)
		return nil
	}
	set := make(map[string]bool, len(favs))
	for _, f := range favs {
		set[f.ID] = true
	}
	return set
}

func (m Model) today() string {
	return utils.Today(m.clock)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateExercises {
		keys = append(keys, exercises.DefaultKeyMap().Complete, exercises.DefaultKeyMap().Favorite)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	if m.state == StateExercises {
		ek := exercises.DefaultKeyMap()
		actions = []key.Binding{ek.Complete, ek.Favorite}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
