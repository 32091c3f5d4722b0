package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndWords(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	list, err := s.Save(ctx, SaveParams{
		Name: "fruit", Source: "stdin", Words: []string{"Apple", "Banana", "Cherry"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if list.ID == "" {
		t.Error("expected non-empty ID")
	}
	if list.WordCount != 3 {
		t.Errorf("expected word count 3, got %d", list.WordCount)
	}

	words, err := s.Words(ctx, "fruit")
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	// Order must match import order, not alphabetical or insertion luck.
	if words[0] != "Apple" || words[1] != "Banana" || words[2] != "Cherry" {
		t.Errorf("words out of order: %v", words)
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, SaveParams{Name: "l", Words: []string{"One", "Two"}})
	list, err := s.Save(ctx, SaveParams{Name: "l", Words: []string{"Three"}})
	if err != nil {
		t.Fatalf("save replacement: %v", err)
	}
	if list.WordCount != 1 {
		t.Errorf("expected replacement count 1, got %d", list.WordCount)
	}

	words, err := s.Words(ctx, "l")
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if len(words) != 1 || words[0] != "Three" {
		t.Errorf("expected replaced list, got %v", words)
	}

	lists, _ := s.List(ctx)
	if len(lists) != 1 {
		t.Errorf("expected 1 list after replacement, got %d", len(lists))
	}
}

func TestSaveValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Save(ctx, SaveParams{Name: "", Words: []string{"A"}}); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := s.Save(ctx, SaveParams{Name: "empty"}); err == nil {
		t.Error("expected error for empty word list")
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, SaveParams{Name: "b", Words: []string{"One"}})
	s.Save(ctx, SaveParams{Name: "a", Words: []string{"Two", "Three"}})

	lists, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0].Name != "a" || lists[1].Name != "b" {
		t.Errorf("expected name order, got %v", lists)
	}
	if lists[0].WordCount != 2 {
		t.Errorf("expected word count 2, got %d", lists[0].WordCount)
	}
}

func TestRm(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, SaveParams{Name: "gone", Words: []string{"One"}})
	if err := s.Rm(ctx, "gone"); err != nil {
		t.Fatalf("rm: %v", err)
	}

	if _, err := s.Words(ctx, "gone"); err == nil {
		t.Error("expected error after rm")
	}
	if err := s.Rm(ctx, "gone"); err == nil {
		t.Error("expected error removing missing list")
	}
}

func TestWordsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Words(ctx, "nope"); err == nil {
		t.Error("expected error for unknown list")
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, SaveParams{Name: "a", Words: []string{"One", "Two"}})
	s.Save(ctx, SaveParams{Name: "b", Words: []string{"Three"}})

	st, err := s.Stats(ctx, "unused-path")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Lists != 2 {
		t.Errorf("expected 2 lists, got %d", st.Lists)
	}
	if st.TotalWords != 3 {
		t.Errorf("expected 3 words, got %d", st.TotalWords)
	}
	if len(st.PerList) != 2 || st.PerList[0].Words != 2 {
		t.Errorf("unexpected per-list stats: %v", st.PerList)
	}
}
