// Package catalog holds the exercise library. The built-in library is embedded;
// a replacement can be loaded from a YAML file.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/tranquil/internal/models"
)

//go:embed exercises.yaml
var defaultData []byte

var ErrExerciseNotFound = errors.New("exercise not found")

type catalogFile struct {
	Sections  map[string]string `yaml:"sections"`
	Exercises []models.Exercise `yaml:"exercises"`
}

// Catalog is a read-only, ordered set of exercises.
type Catalog struct {
	exercises []models.Exercise
	byID      map[string]int
	sections  map[string]string
}

// Default returns the embedded exercise library.
func Default() (*Catalog, error) {
	c, err := Parse(defaultData)
	if err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	c := &Catalog{
		exercises: make([]models.Exercise, 0, len(file.Exercises)),
		byID:      make(map[string]int, len(file.Exercises)),
		sections:  file.Sections,
	}
	if c.sections == nil {
		c.sections = map[string]string{}
	}

	for _, ex := range file.Exercises {
		if strings.TrimSpace(ex.ID) == "" {
			return nil, fmt.Errorf("exercise %q has no id", ex.Title)
		}
		if _, dup := c.byID[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		if !ex.Category.Valid() {
			return nil, fmt.Errorf("exercise %q: unknown category %q", ex.ID, ex.Category)
		}
		if ex.Duration <= 0 {
			return nil, fmt.Errorf("exercise %q: duration must be positive", ex.ID)
		}
		c.byID[ex.ID] = len(c.exercises)
		c.exercises = append(c.exercises, ex)
	}
	return c, nil
}

// All returns every exercise in catalog order.
func (c *Catalog) All() []models.Exercise {
	out := make([]models.Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

func (c *Catalog) Get(id string) (models.Exercise, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Exercise{}, fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
	}
	return c.exercises[i], nil
}

// ByCategory returns exercises in one category, in catalog order.
func (c *Catalog) ByCategory(category models.ExerciseCategory) []models.Exercise {
	var out []models.Exercise
	for _, ex := range c.exercises {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}

// Category resolves an exercise id to its category.
func (c *Catalog) Category(id string) (models.ExerciseCategory, bool) {
	i, ok := c.byID[id]
	if !ok {
		return "", false
	}
	return c.exercises[i].Category, true
}

// SectionTitle returns the display title of a section, or the key itself.
func (c *Catalog) SectionTitle(section string) string {
	if title, ok := c.sections[section]; ok {
		return title
	}
	return section
}

// Suggest returns up to n other exercises sharing id's category or section.
// Free exercises are preferred when there are at least n of them.
func (c *Catalog) Suggest(id string, n int) ([]models.Exercise, error) {
	current, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	var candidates, free []models.Exercise
	for _, ex := range c.exercises {
		if ex.ID == current.ID {
			continue
		}
		if ex.Category != current.Category && ex.Section != current.Section {
			continue
		}
		candidates = append(candidates, ex)
		if !ex.Premium {
			free = append(free, ex)
		}
	}

	suggested := candidates
	if len(free) >= n {
		suggested = free
	}
	if len(suggested) > n {
		suggested = suggested[:n]
	}
	return suggested, nil
}
