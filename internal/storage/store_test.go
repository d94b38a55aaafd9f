package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type progressDoc struct {
	CurrentStreak int `json:"currentStreak"`
}

func TestGetJSONMissingKey(t *testing.T) {
	kv := NewMemoryStore()
	var doc progressDoc
	found, err := GetJSON(kv, "userProgress", &doc)
	if err != nil || found {
		t.Fatalf("expected not found, got found=%v err=%v", found, err)
	}
}

func TestSetJSONRoundTrip(t *testing.T) {
	kv := NewMemoryStore()
	if err := SetJSON(kv, "userProgress", progressDoc{CurrentStreak: 4}); err != nil {
		t.Fatal(err)
	}
	raw, _, _ := kv.Get("userProgress")
	if raw != `{"currentStreak":4}` {
		t.Errorf("unexpected encoding %q", raw)
	}
}

func TestGetJSONCorruptValue(t *testing.T) {
	kv := NewMemoryStore()
	if err := kv.Set("userProgress", "{not json"); err != nil {
		t.Fatal(err)
	}

	var doc progressDoc
	found, err := GetJSON(kv, "userProgress", &doc)
	if !found {
		t.Error("corrupt value should still be reported as found")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Key != "userProgress" {
		t.Errorf("unexpected key %q", decodeErr.Key)
	}
}

func TestJSONStoreLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tranquil.json")

	store := NewJSONStore(path)
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("favoriteExercises", "[]"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("quiz_results", "[]"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("quiz_results"); err != nil {
		t.Fatal(err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	keys, err := reopened.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != "favoriteExercises" {
		t.Errorf("unexpected keys after reopen: %v", keys)
	}

	// Init on an existing file keeps its contents.
	if err := reopened.Init(); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := reopened.Get("favoriteExercises"); !found {
		t.Error("Init discarded existing data")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tranquil.json")
	if err := os.WriteFile(path, []byte("{{{"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := NewJSONStore(path).Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestJSONStoreNotLoaded(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "x.json"))
	if _, _, err := store.Get("k"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
}

func TestMemoryStoreKeysSorted(t *testing.T) {
	kv := NewMemoryStore()
	for _, k := range []string{"userProgress", "favoriteExercises", "settings"} {
		if err := kv.Set(k, "{}"); err != nil {
			t.Fatal(err)
		}
	}
	keys, _ := kv.Keys()
	want := []string{"favoriteExercises", "settings", "userProgress"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
}
