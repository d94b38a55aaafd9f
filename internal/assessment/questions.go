package assessment

import (
	"fmt"

	"github.com/julianstephens/tranquil/internal/models"
)

// InvertedQuestions lists question ids where a higher answer means worse
// regulation (stress, anxiety, physical tension).
var InvertedQuestions = []int{1, 3, 8}

func slider(id int, text string, weight float64) models.Question {
	return models.Question{ID: id, Text: text, Type: models.QuestionSlider, Min: 0, Max: 10, Step: 1, Weight: weight}
}

func choice(id int, text string, weight float64, options ...string) models.Question {
	return models.Question{ID: id, Text: text, Type: models.QuestionChoice, Options: options, Weight: weight}
}

// DefaultQuestions returns the nervous system assessment in display order.
func DefaultQuestions() []models.Question {
	return []models.Question{
		slider(1, "How often do you feel overwhelmed by daily stress?", 1.2),
		choice(2, "How well do you sleep at night?", 1.1,
			"Very poorly", "Poorly", "Fair", "Well", "Very well"),
		slider(3, "Rate your current anxiety levels (0 = none, 10 = severe)", 1.3),
		choice(4, "How often do you practice mindfulness or meditation?", 0.9,
			"Never", "Rarely", "Sometimes", "Often", "Daily"),
		slider(5, "Rate your energy levels throughout the day (0 = very low, 10 = very high)", 1.0),
		choice(6, "How well do you handle unexpected changes?", 1.1,
			"Very poorly", "Poorly", "Moderately", "Well", "Very well"),
		slider(7, "Rate your ability to focus and concentrate (0 = very poor, 10 = excellent)", 1.0),
		choice(8, "How often do you experience physical tension or pain?", 1.2,
			"Always", "Often", "Sometimes", "Rarely", "Never"),
		slider(9, "Rate your overall mood stability (0 = very unstable, 10 = very stable)", 1.1),
		choice(10, "How confident do you feel about managing stress?", 1.0,
			"Not confident at all", "Slightly confident", "Moderately confident", "Very confident", "Extremely confident"),
	}
}

// Find returns the question with the given id.
func Find(questions []models.Question, id int) (models.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// Validate checks that a question set can be scored: unique ids, positive
// weights, and a usable range or option list for every question.
func Validate(questions []models.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("question set is empty")
	}

	seen := make(map[int]struct{}, len(questions))
	for _, q := range questions {
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = struct{}{}

		if q.Weight <= 0 {
			return fmt.Errorf("question %d: weight must be positive, got %v", q.ID, q.Weight)
		}

		switch q.Type {
		case models.QuestionSlider:
			if q.Max <= 0 || q.Min < 0 || q.Min >= q.Max {
				return fmt.Errorf("question %d: invalid slider range [%d, %d]", q.ID, q.Min, q.Max)
			}
			if q.Step <= 0 {
				return fmt.Errorf("question %d: slider step must be positive", q.ID)
			}
		case models.QuestionChoice:
			if len(q.Options) < 2 {
				return fmt.Errorf("question %d: choice needs at least 2 options, got %d", q.ID, len(q.Options))
			}
		default:
			return fmt.Errorf("question %d: unknown type %q", q.ID, q.Type)
		}
	}
	return nil
}
