package assessment

import (
	"errors"
	"fmt"

	"github.com/julianstephens/tranquil/internal/constants"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/storage"
)

var ErrResultNotFound = errors.New("quiz result not found")

// Results stores completed assessments as a list under one key, oldest first.
type Results struct {
	kv storage.KV
}

func NewResults(kv storage.KV) *Results {
	return &Results{kv: kv}
}

func (r *Results) load() ([]models.QuizResult, error) {
	var results []models.QuizResult
	if _, err := storage.GetJSON(r.kv, constants.KeyQuizResult, &results); err != nil {
		var decodeErr *storage.DecodeError
		if !errors.As(err, &decodeErr) {
			return nil, err
		}
		log.Warn("quiz results are corrupt, starting from an empty list", "key", decodeErr.Key, "error", decodeErr.Err)
		results = nil
	}
	if results == nil {
		results = []models.QuizResult{}
	}
	return results, nil
}

func (r *Results) save(results []models.QuizResult) error {
	if err := storage.SetJSON(r.kv, constants.KeyQuizResult, results); err != nil {
		return fmt.Errorf("failed to save quiz results: %w", err)
	}
	return nil
}

// Save appends result.
func (r *Results) Save(result models.QuizResult) error {
	results, err := r.load()
	if err != nil {
		return fmt.Errorf("failed to load quiz results: %w", err)
	}
	return r.save(append(results, result))
}

// GetAll returns every stored result in insertion order.
func (r *Results) GetAll() ([]models.QuizResult, error) {
	results, err := r.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz results: %w", err)
	}
	return results, nil
}

func (r *Results) GetByID(id string) (models.QuizResult, error) {
	results, err := r.GetAll()
	if err != nil {
		return models.QuizResult{}, err
	}
	for _, res := range results {
		if res.ID == id {
			return res, nil
		}
	}
	return models.QuizResult{}, ErrResultNotFound
}

// Latest returns the most recently saved result.
func (r *Results) Latest() (models.QuizResult, bool, error) {
	results, err := r.GetAll()
	if err != nil {
		return models.QuizResult{}, false, err
	}
	if len(results) == 0 {
		return models.QuizResult{}, false, nil
	}
	return results[len(results)-1], true, nil
}

// Update applies fn to the stored result with the given id. fn may not change the id.
func (r *Results) Update(id string, fn func(*models.QuizResult)) error {
	results, err := r.GetAll()
	if err != nil {
		return err
	}
	for i := range results {
		if results[i].ID != id {
			continue
		}
		fn(&results[i])
		results[i].ID = id
		return r.save(results)
	}
	return ErrResultNotFound
}

// Delete removes the result with the given id. Deleting a missing id is not an error.
func (r *Results) Delete(id string) error {
	results, err := r.GetAll()
	if err != nil {
		return err
	}
	kept := results[:0]
	for _, res := range results {
		if res.ID != id {
			kept = append(kept, res)
		}
	}
	if len(kept) == len(results) {
		return nil
	}
	return r.save(kept)
}
