// Package favorites keeps the user's bookmarked exercises.
package favorites

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/logger"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/utils"
)

var log = logger.For("favorites")

type Manager struct {
	kv    storage.KV
	clock utils.Clock
}

func NewManager(kv storage.KV, clock utils.Clock) *Manager {
	return &Manager{kv: kv, clock: clock}
}

// List returns favorites in the order they were added.
func (m *Manager) List() ([]models.FavoriteExercise, error) {
	var favs []models.FavoriteExercise
	if _, err := storage.GetJSON(m.kv, constants.KeyFavorites, &favs); err != nil {
		var decodeErr *storage.DecodeError
		if !errors.As(err, &decodeErr) {
			return nil, fmt.Errorf("failed to load favorites: %w", err)
		}
		log.Warn("favorites are corrupt, starting from an empty list", "key", decodeErr.Key, "error", decodeErr.Err)
		favs = nil
	}
	if favs == nil {
		favs = []models.FavoriteExercise{}
	}
	return favs, nil
}

func (m *Manager) IsFavorite(exerciseID string) (bool, error) {
	favs, err := m.List()
	if err != nil {
		return false, err
	}
	return indexOf(favs, exerciseID) >= 0, nil
}

// Add bookmarks ex. Adding an existing favorite leaves it unchanged.
func (m *Manager) Add(ex models.Exercise) error {
	favs, err := m.List()
	if err != nil {
		return err
	}
	if indexOf(favs, ex.ID) >= 0 {
		return nil
	}

	favs = append(favs, models.FavoriteExercise{
		ID:         ex.ID,
		Title:      ex.Title,
		Duration:   ex.Duration,
		Instructor: ex.Instructor,
		AddedAt:    m.clock.Now().Format(time.RFC3339),
	})
	return m.save(favs)
}

func (m *Manager) Remove(exerciseID string) error {
	favs, err := m.List()
	if err != nil {
		return err
	}
	i := indexOf(favs, exerciseID)
	if i < 0 {
		return nil
	}
	return m.save(append(favs[:i], favs[i+1:]...))
}

// Toggle flips ex's favorite status and reports whether it is now a favorite.
func (m *Manager) Toggle(ex models.Exercise) (bool, error) {
	fav, err := m.IsFavorite(ex.ID)
	if err != nil {
		return false, err
	}
	if fav {
		return false, m.Remove(ex.ID)
	}
	return true, m.Add(ex)
}

func (m *Manager) save(favs []models.FavoriteExercise) error {
	if err := storage.SetJSON(m.kv, constants.KeyFavorites, favs); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

func indexOf(favs []models.FavoriteExercise, id string) int {
	for i, f := range favs {
		if f.ID == id {
			return i
		}
	}
	return -1
}
