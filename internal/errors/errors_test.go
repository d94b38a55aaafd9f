package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "simple error", err: errors.New("store unavailable"), expected: "Error: store unavailable"},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("load progress: %w", errors.New("disk full")),
			expected: "Error: load progress: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("exercise %q not found", "box-breathing")
	want := `Error: exercise "box-breathing" not found`
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}

func TestFatalExitsWithCodeOne(t *testing.T) {
	code := -1
	old := exit
	exit = func(c int) { code = c }
	defer func() { exit = old }()

	Fatal(nil)
	if code != -1 {
		t.Fatalf("Fatal(nil) should not exit, got code %d", code)
	}

	Fatal(errors.New("boom"))
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}

	code = -1
	Fatalf("bad %s", "input")
	if code != 1 {
		t.Errorf("expected exit code 1 from Fatalf, got %d", code)
	}
}

func TestIsUnwrapsChain(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("outer: %w", sentinel)
	if !Is(wrapped, sentinel) {
		t.Error("expected Is to find wrapped sentinel")
	}
}
