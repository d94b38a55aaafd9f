package assessment

import (
	"math"

	"github.com/julianstephens/tranquil/internal/models"
)

// Scorer turns an answer set into a 0-100 wellness score.
type Scorer struct {
	inverted map[int]struct{}
}

// NewScorer builds a scorer that reverses the scale of the given question ids.
func NewScorer(inverted ...int) *Scorer {
	s := &Scorer{inverted: make(map[int]struct{}, len(inverted))}
	for _, id := range inverted {
		s.inverted[id] = struct{}{}
	}
	return s
}

func (s *Scorer) IsInverted(questionID int) bool {
	_, ok := s.inverted[questionID]
	return ok
}

// normalize maps an answer onto 0-10. ok is false when the question has no
// usable scale.
func (s *Scorer) normalize(q models.Question, answer int) (score float64, ok bool) {
	var value, span int

	switch q.Type {
	case models.QuestionSlider:
		if q.Max <= 0 {
			return 0, false
		}
		span = q.Max
		value = clamp(answer, q.Min, q.Max)
	case models.QuestionChoice:
		if len(q.Options) < 2 {
			return 0, false
		}
		span = len(q.Options) - 1
		value = clamp(answer, 0, span)
	default:
		return 0, false
	}

	if s.IsInverted(q.ID) {
		value = span - value
	}
	return float64(value) / float64(span) * 10, true
}

// CalculateScore returns the weighted average of answered questions scaled to
// 0-100. Unanswered questions are left out. With nothing answered the score is 0.
func (s *Scorer) CalculateScore(questions []models.Question, answers map[int]int) int {
	var total, weights float64

	for _, q := range questions {
		answer, answered := answers[q.ID]
		if !answered {
			continue
		}
		normalized, ok := s.normalize(q, answer)
		if !ok {
			log.Debug("skipping question without a usable scale", "question", q.ID)
			continue
		}
		total += normalized * q.Weight
		weights += q.Weight
	}

	if weights <= 0 {
		return 0
	}
	return clamp(int(math.Round(total/weights*10)), 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
