package assessment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/tranquil/internal/models"
)

func uniformSliders(n int) []models.Question {
	qs := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, models.Question{ID: i, Type: models.QuestionSlider, Min: 0, Max: 10, Step: 1, Weight: 1})
	}
	return qs
}

func allAnswered(n, value int) map[int]int {
	answers := make(map[int]int, n)
	for i := 1; i <= n; i++ {
		answers[i] = value
	}
	return answers
}

func TestCalculateScoreUniformSliders(t *testing.T) {
	s := NewScorer()
	qs := uniformSliders(10)

	assert.Equal(t, 100, s.CalculateScore(qs, allAnswered(10, 10)))
	assert.Equal(t, 0, s.CalculateScore(qs, allAnswered(10, 0)))
	assert.Equal(t, 50, s.CalculateScore(qs, allAnswered(10, 5)))
}

func TestCalculateScoreNoAnswers(t *testing.T) {
	s := NewScorer(InvertedQuestions...)
	assert.Equal(t, 0, s.CalculateScore(DefaultQuestions(), nil))
	assert.Equal(t, 0, s.CalculateScore(DefaultQuestions(), map[int]int{}))
	assert.Equal(t, 0, s.CalculateScore(nil, map[int]int{1: 5}))
}

func TestCalculateScoreDefaultQuestions(t *testing.T) {
	s := NewScorer(InvertedQuestions...)
	qs := DefaultQuestions()

	best := map[int]int{1: 0, 2: 4, 3: 0, 4: 4, 5: 10, 6: 4, 7: 10, 8: 0, 9: 10, 10: 4}
	worst := map[int]int{1: 10, 2: 0, 3: 10, 4: 0, 5: 0, 6: 0, 7: 0, 8: 4, 9: 0, 10: 0}

	assert.Equal(t, 100, s.CalculateScore(qs, best))
	assert.Equal(t, 0, s.CalculateScore(qs, worst))
}

func TestCalculateScoreWeightsOnlyAnswered(t *testing.T) {
	s := NewScorer()
	qs := []models.Question{
		{ID: 1, Type: models.QuestionSlider, Max: 10, Weight: 2},
		{ID: 2, Type: models.QuestionSlider, Max: 10, Weight: 1},
	}

	// Only question 2 answered: its own normalized value, regardless of weight.
	assert.Equal(t, 70, s.CalculateScore(qs, map[int]int{2: 7}))
	// (10*2 + 4*1) / 3 * 10 = 80
	assert.Equal(t, 80, s.CalculateScore(qs, map[int]int{1: 10, 2: 4}))
}

func TestCalculateScoreInvertedChoice(t *testing.T) {
	q := []models.Question{{ID: 8, Type: models.QuestionChoice, Options: []string{"a", "b", "c", "d", "e"}, Weight: 1}}

	assert.Equal(t, 100, NewScorer(8).CalculateScore(q, map[int]int{8: 0}))
	assert.Equal(t, 25, NewScorer(8).CalculateScore(q, map[int]int{8: 3}))
	assert.Equal(t, 75, NewScorer().CalculateScore(q, map[int]int{8: 3}))
}

func TestCalculateScoreClampsOutOfRangeAnswers(t *testing.T) {
	s := NewScorer()
	qs := []models.Question{
		{ID: 1, Type: models.QuestionSlider, Max: 10, Weight: 1},
		{ID: 2, Type: models.QuestionChoice, Options: []string{"a", "b", "c"}, Weight: 1},
	}

	assert.Equal(t, 100, s.CalculateScore(qs, map[int]int{1: 99, 2: 12}))
	assert.Equal(t, 0, s.CalculateScore(qs, map[int]int{1: -5, 2: -1}))
}

func TestCalculateScoreSkipsUnscorableQuestions(t *testing.T) {
	s := NewScorer()
	qs := []models.Question{
		{ID: 1, Type: models.QuestionSlider, Max: 0, Weight: 5},
		{ID: 2, Type: models.QuestionChoice, Options: []string{"only"}, Weight: 5},
		{ID: 3, Type: models.QuestionSlider, Max: 10, Weight: 1},
	}

	assert.Equal(t, 30, s.CalculateScore(qs, map[int]int{1: 0, 2: 0, 3: 3}))
}

func TestCalculateScoreIsDeterministicAndBounded(t *testing.T) {
	s := NewScorer(InvertedQuestions...)
	qs := DefaultQuestions()

	for seed := 0; seed < 50; seed++ {
		answers := make(map[int]int)
		for _, q := range qs {
			if (seed+q.ID)%3 == 0 {
				continue
			}
			answers[q.ID] = (seed * q.ID) % 11
		}
		first := s.CalculateScore(qs, answers)
		assert.Equal(t, first, s.CalculateScore(qs, answers), "seed %d", seed)
		assert.GreaterOrEqual(t, first, 0)
		assert.LessOrEqual(t, first, 100)
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent Regulation"},
		{80, "Excellent Regulation"},
		{79, "Good Regulation"},
		{65, "Good Regulation"},
		{64, "Moderate Regulation"},
		{50, "Moderate Regulation"},
		{49, "Needs Attention"},
		{35, "Needs Attention"},
		{34, "Significant Dysregulation"},
		{0, "Significant Dysregulation"},
		{-3, "Significant Dysregulation"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.score), func(t *testing.T) {
			if got := Category(tt.score); got != tt.want {
				t.Errorf("Category(%d) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}
