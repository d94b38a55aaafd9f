package models

type ExerciseCategory string

const (
	CategoryMove     ExerciseCategory = "move"
	CategoryBreathe  ExerciseCategory = "breathe"
	CategoryMeditate ExerciseCategory = "meditate"
)

// Categories lists exercise categories in display order.
var Categories = []ExerciseCategory{CategoryMove, CategoryBreathe, CategoryMeditate}

func (c ExerciseCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Exercise struct {
	ID          string           `yaml:"id" json:"id"`
	Title       string           `yaml:"title" json:"title"`
	Category    ExerciseCategory `yaml:"category" json:"category"`
	Section     string           `yaml:"section" json:"section"`
	Duration    int              `yaml:"duration" json:"duration"` // minutes
	Instructor  string           `yaml:"instructor" json:"instructor"`
	Description string           `yaml:"description" json:"description"`
	Premium     bool             `yaml:"premium" json:"premium"`
	Tags        []string         `yaml:"tags" json:"tags,omitempty"`
	Techniques  []string         `yaml:"techniques" json:"techniques,omitempty"`
}

// FavoriteExercise is a bookmarked exercise with the display data needed to list it.
type FavoriteExercise struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Duration   int    `json:"duration"`
	Instructor string `json:"instructor"`
	AddedAt    string `json:"addedAt"` // RFC3339
}
