// Package assessment scores the nervous system quiz and keeps its history.
package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tranquil/internal/logger"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/utils"
)

var log = logger.For("assessment")

// Assessor scores an answer set against its questions and records the result.
type Assessor struct {
	questions []models.Question
	scorer    *Scorer
	results   *Results
	clock     utils.Clock
	newID     func() (uuid.UUID, error)
}

type Option func(*Assessor)

// WithQuestions replaces the default question set.
func WithQuestions(questions []models.Question) Option {
	return func(a *Assessor) {
		a.questions = append([]models.Question(nil), questions...)
	}
}

// WithScorer replaces the default scorer (which inverts InvertedQuestions).
func WithScorer(s *Scorer) Option {
	return func(a *Assessor) {
		a.scorer = s
	}
}

func NewAssessor(kv storage.KV, clock utils.Clock, opts ...Option) *Assessor {
	a := &Assessor{
		questions: DefaultQuestions(),
		scorer:    NewScorer(InvertedQuestions...),
		results:   NewResults(kv),
		clock:     clock,
		newID:     uuid.NewV7,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Assessor) Questions() []models.Question {
	return a.questions
}

func (a *Assessor) Results() *Results {
	return a.results
}

// Complete scores answers, stores the result and returns it.
func (a *Assessor) Complete(answers map[int]int) (models.QuizResult, error) {
	id, err := a.newID()
	if err != nil {
		return models.QuizResult{}, fmt.Errorf("failed to generate result id: %w", err)
	}

	recorded := make(map[int]int, len(answers))
	for qid, v := range answers {
		if _, ok := Find(a.questions, qid); !ok {
			log.Debug("dropping answer for unknown question", "question", qid)
			continue
		}
		recorded[qid] = v
	}

	score := a.scorer.CalculateScore(a.questions, recorded)
	result := models.QuizResult{
		ID:          id.String(),
		Score:       score,
		Answers:     recorded,
		CompletedAt: a.clock.Now().Format(time.RFC3339),
		Category:    Category(score),
	}

	if err := a.results.Save(result); err != nil {
		return models.QuizResult{}, err
	}
	log.Info("assessment completed", "id", result.ID, "score", score, "category", result.Category)
	return result, nil
}

// ShareText is the message offered when sharing a result.
func ShareText(result models.QuizResult) string {
	return fmt.Sprintf("I just completed a nervous system assessment and scored %d/100 (%s) on TranquilApp!",
		result.Score, result.Category)
}
