package assessments

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tranquil/internal/assessment"
	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/models"
)

// runForm is swapped out in tests.
var runForm = func(form *huh.Form) error { return form.Run() }

type TakeCmd struct {
	Answers string `help:"Answer without prompting, as question=answer pairs (e.g. 1=3,2=7,10=4). Choice answers are zero-based option indexes."`
	Share   bool   `help:"Print a shareable summary of the result."`
}

func (c *TakeCmd) Run(ctx *cli.Context) error {
	assessor := ctx.Assessor()

	var answers map[int]int
	var err error
	if c.Answers != "" {
		answers, err = ParseAnswers(c.Answers)
	} else {
		answers, err = ask(assessor.Questions())
	}
	if err != nil {
		return err
	}

	result, err := assessor.Complete(answers)
	if err != nil {
		return err
	}

	ctx.Printf("Your score: %d/100 %s\n", result.Score, cli.Bar(result.Score, 20))
	ctx.Printf("Category:   %s\n", result.Category)
	ctx.Printf("Saved as %s\n", result.ID)
	if c.Share {
		ctx.Println()
		ctx.Println(assessment.ShareText(result))
	}
	return nil
}

// ParseAnswers reads "id=value" pairs separated by commas.
func ParseAnswers(s string) (map[int]int, error) {
	answers := make(map[int]int)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q, expected question=answer", pair)
		}
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("invalid question id %q: %w", key, err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid answer for question %d: %w", id, err)
		}
		if _, dup := answers[id]; dup {
			return nil, fmt.Errorf("question %d answered twice", id)
		}
		answers[id] = v
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("no answers given")
	}
	return answers, nil
}

func ask(questions []models.Question) (map[int]int, error) {
	form, values := buildForm(questions)
	if err := runForm(form); err != nil {
		return nil, err
	}

	answers := make(map[int]int, len(questions))
	for i, q := range questions {
		answers[q.ID] = values[i]
	}
	return answers, nil
}

// buildForm lays out one page per question. values[i] receives the answer to
// questions[i].
func buildForm(questions []models.Question) (*huh.Form, []int) {
	values := make([]int, len(questions))
	groups := make([]*huh.Group, 0, len(questions))

	for i, q := range questions {
		values[i] = q.Min
		title := fmt.Sprintf("%d/%d  %s", i+1, len(questions), q.Text)
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(questionOptions(q)...).
				Value(&values[i]),
		))
	}

	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula()), values
}

func questionOptions(q models.Question) []huh.Option[int] {
	var opts []huh.Option[int]
	switch q.Type {
	case models.QuestionChoice:
		for i, label := range q.Options {
			opts = append(opts, huh.NewOption(label, i))
		}
	default:
		step := q.Step
		if step <= 0 {
			step = 1
		}
		for v := q.Min; v <= q.Max; v += step {
			label := strconv.Itoa(v)
			switch v {
			case q.Min:
				label += "  (lowest)"
			case q.Max:
				label += "  (highest)"
			}
			opts = append(opts, huh.NewOption(label, v))
		}
	}
	return opts
}

type ResultsCmd struct{}

func (c *ResultsCmd) Run(ctx *cli.Context) error {
	results, err := ctx.Assessor().Results().GetAll()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		ctx.Println("No assessments yet. Run 'tranquil assess take'.")
		return nil
	}

	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		ctx.Printf("  %s  %-14s %3d/100  %s\n", r.ID, formatTimestamp(r.CompletedAt), r.Score, r.Category)
	}
	return nil
}

type ShowCmd struct {
	ID string `arg:"" help:"Result ID. Defaults to the latest result." optional:""`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	assessor := ctx.Assessor()

	var result models.QuizResult
	if c.ID == "" {
		latest, ok, err := assessor.Results().Latest()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no assessments yet")
		}
		result = latest
	} else {
		r, err := assessor.Results().GetByID(c.ID)
		if err != nil {
			return err
		}
		result = r
	}

	ctx.Printf("Assessment %s\n", result.ID)
	ctx.Printf("  Completed: %s\n", formatTimestamp(result.CompletedAt))
	ctx.Printf("  Score:     %d/100 (%s)\n\n", result.Score, result.Category)

	ids := make([]int, 0, len(result.Answers))
	for id := range result.Answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		q, ok := assessment.Find(assessor.Questions(), id)
		if !ok {
			ctx.Printf("  Q%-2d %d\n", id, result.Answers[id])
			continue
		}
		ctx.Printf("  Q%-2d %s\n      → %s\n", id, q.Text, answerLabel(q, result.Answers[id]))
	}
	return nil
}

func answerLabel(q models.Question, answer int) string {
	if q.Type == models.QuestionChoice {
		if answer >= 0 && answer < len(q.Options) {
			return q.Options[answer]
		}
		return strconv.Itoa(answer)
	}
	return fmt.Sprintf("%d of %d", answer, q.Max)
}

type DeleteCmd struct {
	ID  string `arg:"" help:"Result ID to delete."`
	Yes bool   `help:"Skip confirmation." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	results := ctx.Assessor().Results()
	if _, err := results.GetByID(c.ID); err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete assessment %s?", c.ID))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}

	if err := results.Delete(c.ID); err != nil {
		return err
	}
	ctx.Printf("✓ Deleted assessment %s\n", c.ID)
	return nil
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("Jan 2, 2006")
}
