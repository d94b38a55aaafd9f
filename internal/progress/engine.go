// Package progress tracks exercise completions, streaks and milestones.
package progress

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/logger"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/utils"
)

var log = logger.For("progress")

var (
	ErrEmptyExerciseID = errors.New("exercise id cannot be empty")
	ErrInvalidFeeling  = errors.New("feeling must be one of great, good, okay, tired")
)

// CompletionResult is returned by CompleteExercise.
type CompletionResult struct {
	StreakData    models.StreakData  `json:"streakData"`
	NewMilestones []models.Milestone `json:"newMilestones"`
	IsNewRecord   bool               `json:"isNewRecord"`
}

// Engine owns the streak and milestone records in a key-value store. Each call
// does its own load, compute, store; callers serialize calls.
type Engine struct {
	kv      storage.KV
	clock   utils.Clock
	catalog []models.Milestone
}

type Option func(*Engine)

// WithMilestones replaces the built-in milestone catalog.
func WithMilestones(milestones []models.Milestone) Option {
	return func(e *Engine) {
		e.catalog = append([]models.Milestone(nil), milestones...)
	}
}

func NewEngine(kv storage.KV, clock utils.Clock, opts ...Option) *Engine {
	e := &Engine{
		kv:      kv,
		clock:   clock,
		catalog: DefaultMilestones(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) today() string {
	return utils.Today(e.clock)
}

// loadStreakData reads the progress record. Absent or corrupt records yield the
// zero record; corrupt ones are logged and left in place until the next write.
func (e *Engine) loadStreakData() (models.StreakData, error) {
	var data models.StreakData
	_, err := storage.GetJSON(e.kv, constants.KeyProgress, &data)
	if err != nil {
		var decodeErr *storage.DecodeError
		if !errors.As(err, &decodeErr) {
			return models.StreakData{}, err
		}
		log.Warn("progress record is corrupt, starting from defaults", "key", decodeErr.Key, "error", decodeErr.Err)
		data = models.StreakData{}
	}
	if data.Completions == nil {
		data.Completions = []models.Completion{}
	}
	return data, nil
}

// loadMilestones reads the milestone list, seeding or extending it from the
// catalog. dirty is true when the returned list differs from what is stored.
func (e *Engine) loadMilestones() (milestones []models.Milestone, dirty bool, err error) {
	found, err := storage.GetJSON(e.kv, constants.KeyMilestones, &milestones)
	if err != nil {
		var decodeErr *storage.DecodeError
		if !errors.As(err, &decodeErr) {
			return nil, false, err
		}
		log.Warn("milestone record is corrupt, reseeding catalog", "key", decodeErr.Key, "error", decodeErr.Err)
		found = false
	}
	if !found {
		return append([]models.Milestone(nil), e.catalog...), true, nil
	}

	milestones, added := mergeCatalog(milestones, e.catalog)
	return milestones, added, nil
}

// CompleteExercise logs a completion dated today and updates totals, streaks and
// milestones. duration is taken as given; zero and negative values are folded
// into the totals unchanged.
func (e *Engine) CompleteExercise(exerciseID string, duration int) (CompletionResult, error) {
	if strings.TrimSpace(exerciseID) == "" {
		return CompletionResult{}, ErrEmptyExerciseID
	}
	if duration <= 0 {
		log.Debug("accepting non-positive duration", "exercise", exerciseID, "duration", duration)
	}

	data, err := e.loadStreakData()
	if err != nil {
		return CompletionResult{}, fmt.Errorf("failed to load progress: %w", err)
	}
	milestones, _, err := e.loadMilestones()
	if err != nil {
		return CompletionResult{}, fmt.Errorf("failed to load milestones: %w", err)
	}

	today := e.today()

	data.Completions = append(data.Completions, models.Completion{
		ExerciseID: exerciseID,
		Date:       today,
		Duration:   duration,
	})
	data.TotalMinutes += duration
	data.LastCompletionDate = today

	data.CurrentStreak = CalculateStreak(data.Completions, today)
	isNewRecord := data.CurrentStreak > data.LongestStreak
	if isNewRecord {
		data.LongestStreak = data.CurrentStreak
	}

	data.WeeklyMinutes = WeeklyMinutes(data.Completions, today)

	newMilestones := []models.Milestone{}
	for i := range milestones {
		m := &milestones[i]
		if m.Achieved || !Qualifies(*m, data) {
			continue
		}
		m.Achieved = true
		m.AchievedDate = today
		newMilestones = append(newMilestones, *m)
		log.Info("milestone achieved", "id", m.ID, "date", today)
	}

	if err := storage.SetJSON(e.kv, constants.KeyProgress, data); err != nil {
		return CompletionResult{}, fmt.Errorf("failed to save progress: %w", err)
	}
	if err := storage.SetJSON(e.kv, constants.KeyMilestones, milestones); err != nil {
		return CompletionResult{}, fmt.Errorf("failed to save milestones: %w", err)
	}

	return CompletionResult{
		StreakData:    data,
		NewMilestones: newMilestones,
		IsNewRecord:   isNewRecord,
	}, nil
}

// UpdateFeeling sets the feeling on the first completion matching exerciseID and
// date. Without a match nothing is written.
func (e *Engine) UpdateFeeling(exerciseID, date string, feeling models.Feeling) error {
	if !feeling.Valid() {
		return ErrInvalidFeeling
	}

	data, err := e.loadStreakData()
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	for i := range data.Completions {
		c := &data.Completions[i]
		if c.ExerciseID != exerciseID || c.Date != date {
			continue
		}
		c.Feeling = feeling
		if err := storage.SetJSON(e.kv, constants.KeyProgress, data); err != nil {
			return fmt.Errorf("failed to save progress: %w", err)
		}
		return nil
	}

	log.Debug("no completion to update", "exercise", exerciseID, "date", date)
	return nil
}

// GetProgressData returns the stored progress record, or the zero record.
func (e *Engine) GetProgressData() (models.StreakData, error) {
	return e.loadStreakData()
}

// GetMilestoneProgress returns the milestone list, persisting the catalog on first use.
func (e *Engine) GetMilestoneProgress() ([]models.Milestone, error) {
	milestones, dirty, err := e.loadMilestones()
	if err != nil {
		return nil, fmt.Errorf("failed to load milestones: %w", err)
	}
	if dirty {
		if err := storage.SetJSON(e.kv, constants.KeyMilestones, milestones); err != nil {
			return nil, fmt.Errorf("failed to save milestones: %w", err)
		}
	}
	return milestones, nil
}

// LiveStreak recomputes the current streak against today without writing. The
// stored CurrentStreak only changes on CompleteExercise and can lag behind.
func (e *Engine) LiveStreak() (int, error) {
	data, err := e.loadStreakData()
	if err != nil {
		return 0, fmt.Errorf("failed to load progress: %w", err)
	}
	return CalculateStreak(data.Completions, e.today()), nil
}

// PracticedToday reports whether any completion is dated today.
func (e *Engine) PracticedToday() (bool, error) {
	data, err := e.loadStreakData()
	if err != nil {
		return false, fmt.Errorf("failed to load progress: %w", err)
	}
	today := e.today()
	for _, c := range data.Completions {
		if c.Date == today {
			return true, nil
		}
	}
	return false, nil
}
