package practice

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/tranquil/internal/catalog"
	"github.com/julianstephens/tranquil/internal/cli"
	"github.com/julianstephens/tranquil/internal/models"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/utils"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer, *utils.FixedClock) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	clock := &utils.FixedClock{T: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)}
	return &cli.Context{
		Store:   storage.NewMemoryStore(),
		Clock:   clock,
		Catalog: cat,
		Out:     &out,
	}, &out, clock
}

func TestCompleteCmdUsesCatalogDuration(t *testing.T) {
	ctx, out, _ := setupTestContext(t)

	cmd := &CompleteCmd{ExerciseID: "box-breathing"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	data, err := ctx.Engine().GetProgressData()
	if err != nil {
		t.Fatal(err)
	}
	if data.TotalMinutes != 5 || data.CurrentStreak != 1 {
		t.Errorf("unexpected progress %+v", data)
	}
	for _, want := range []string{"Logged Box Breathing", "First Steps", "Try next:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCompleteCmdWithFeeling(t *testing.T) {
	ctx, _, _ := setupTestContext(t)

	cmd := &CompleteCmd{ExerciseID: "body-scan", Duration: 12, Feeling: "great"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatal(err)
	}

	data, _ := ctx.Engine().GetProgressData()
	if len(data.Completions) != 1 {
		t.Fatalf("expected one completion, got %d", len(data.Completions))
	}
	c := data.Completions[0]
	if c.Duration != 12 || c.Feeling != models.FeelingGreat {
		t.Errorf("unexpected completion %+v", c)
	}
}

func TestCompleteCmdFeelingOnRepeatSession(t *testing.T) {
	ctx, out, _ := setupTestContext(t)

	if err := (&CompleteCmd{ExerciseID: "body-scan", Feeling: "tired"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Note:") {
		t.Errorf("single session should not carry a note:\n%s", out.String())
	}

	out.Reset()
	if err := (&CompleteCmd{ExerciseID: "body-scan", Feeling: "great"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Note: recorded on your first Body Scan session today") {
		t.Errorf("expected note about the earlier session:\n%s", out.String())
	}

	data, _ := ctx.Engine().GetProgressData()
	if len(data.Completions) != 2 {
		t.Fatalf("expected two completions, got %d", len(data.Completions))
	}
	if data.Completions[0].Feeling != models.FeelingGreat || data.Completions[1].Feeling != "" {
		t.Errorf("unexpected feelings %q, %q", data.Completions[0].Feeling, data.Completions[1].Feeling)
	}
}

func TestCompleteCmdCustomExercise(t *testing.T) {
	ctx, _, _ := setupTestContext(t)

	if err := (&CompleteCmd{ExerciseID: "evening-walk"}).Run(ctx); err == nil {
		t.Error("expected error without duration for unknown exercise")
	}
	if err := (&CompleteCmd{ExerciseID: "evening-walk", Duration: 30}).Run(ctx); err != nil {
		t.Errorf("custom exercise with duration failed: %v", err)
	}
}

func TestFeelCmd(t *testing.T) {
	ctx, _, clock := setupTestContext(t)

	if err := (&CompleteCmd{ExerciseID: "box-breathing"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	clock.AdvanceDays(1)

	if err := (&FeelCmd{ExerciseID: "box-breathing", Feeling: "tired", Date: "2026-03-04"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	data, _ := ctx.Engine().GetProgressData()
	if data.Completions[0].Feeling != models.FeelingTired {
		t.Errorf("feeling not updated: %+v", data.Completions[0])
	}

	if err := (&FeelCmd{ExerciseID: "box-breathing", Feeling: "good", Date: "March 4"}).Run(ctx); err == nil {
		t.Error("expected invalid date error")
	}
}

func TestHistoryCmd(t *testing.T) {
	ctx, out, clock := setupTestContext(t)

	if err := (&HistoryCmd{Limit: 5}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No completions yet") {
		t.Errorf("unexpected empty output %q", out.String())
	}

	for _, id := range []string{"box-breathing", "body-scan", "shaking-reset"} {
		if err := (&CompleteCmd{ExerciseID: id}).Run(ctx); err != nil {
			t.Fatal(err)
		}
		clock.AdvanceDays(1)
	}

	out.Reset()
	if err := (&HistoryCmd{Limit: 2}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "Shaking Reset") {
		t.Errorf("newest completion should come first: %q", lines[0])
	}
}
