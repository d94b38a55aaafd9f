package models

type QuestionType string

const (
	QuestionSlider QuestionType = "slider"
	QuestionChoice QuestionType = "choice"
)

// Question is one assessment prompt. Sliders use Min/Max/Step, choices use Options.
type Question struct {
	ID      int          `json:"id"`
	Text    string       `json:"question"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
	Min     int          `json:"min,omitempty"`
	Max     int          `json:"max,omitempty"`
	Step    int          `json:"step,omitempty"`
	Weight  float64      `json:"weight"`
}

// QuizResult is a completed assessment. Answers map question id to response.
type QuizResult struct {
	ID          string      `json:"id"`
	Score       int         `json:"score"`
	Answers     map[int]int `json:"answers"`
	CompletedAt string      `json:"completedAt"` // RFC3339
	Category    string      `json:"category"`
}
