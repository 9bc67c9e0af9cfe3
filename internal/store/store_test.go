package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/types"
)

var testTime = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// backends returns each BoardStore implementation over a temp directory,
// so every conformance test runs against both.
func backends(t *testing.T) map[string]BoardStore {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}

	sqliteStore, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create sqlite store: %v", err)
	}

	return map[string]BoardStore{
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func sampleBoard(id types.BoardID, name string) *models.Board {
	board := models.NewBoard(id, name, testTime)
	board.Columns = []*models.Column{{ID: "todo", Name: "To Do"}}
	board.Cards["card-1"] = &models.Card{
		ID:       "card-1",
		Title:    "First card",
		Content:  "Some **markdown**",
		ColumnID: "todo",
		Position: 0,
		Tags:     []string{"bug"},
	}
	return board
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()
			ctx := context.Background()

			if err := st.Save(ctx, sampleBoard("board-1", "Sprint")); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			board, err := st.Load(ctx, "board-1")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if board.Name != "Sprint" {
				t.Errorf("expected name Sprint, got %s", board.Name)
			}
			if len(board.Columns) != 1 || board.Columns[0].ID != "todo" {
				t.Errorf("columns did not survive: %+v", board.Columns)
			}
			card := board.Card("card-1")
			if card == nil {
				t.Fatal("card did not survive")
			}
			if card.Title != "First card" || card.Position != 0 || len(card.Tags) != 1 {
				t.Errorf("card fields did not survive: %+v", card)
			}
		})
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()
			ctx := context.Background()

			board := sampleBoard("board-1", "Before")
			if err := st.Save(ctx, board); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			board.Name = "After"
			delete(board.Cards, "card-1")
			if err := st.Save(ctx, board); err != nil {
				t.Fatalf("Second save failed: %v", err)
			}

			loaded, err := st.Load(ctx, "board-1")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if loaded.Name != "After" || len(loaded.Cards) != 0 {
				t.Errorf("overwrite did not take: %s, %d cards", loaded.Name, len(loaded.Cards))
			}
		})
	}
}

func TestLoadMissingBoard(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			_, err := st.Load(context.Background(), "ghost")
			if !errors.Is(err, models.ErrBoardNotFound) {
				t.Errorf("expected ErrBoardNotFound, got %v", err)
			}
		})
	}
}

func TestDeleteBoard(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()
			ctx := context.Background()

			if err := st.Save(ctx, sampleBoard("board-1", "Doomed")); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if err := st.Delete(ctx, "board-1"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, err := st.Load(ctx, "board-1"); !errors.Is(err, models.ErrBoardNotFound) {
				t.Errorf("expected board gone, got %v", err)
			}
			if err := st.Delete(ctx, "board-1"); !errors.Is(err, models.ErrBoardNotFound) {
				t.Errorf("double delete should report not found, got %v", err)
			}
		})
	}
}

func TestListSortsByName(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()
			ctx := context.Background()

			for _, b := range []struct {
				id   types.BoardID
				name string
			}{
				{"board-z", "Zulu"},
				{"board-a", "Alpha"},
				{"board-m", "Mike"},
			} {
				if err := st.Save(ctx, sampleBoard(b.id, b.name)); err != nil {
					t.Fatalf("Save %s failed: %v", b.id, err)
				}
			}

			summaries, err := st.List(ctx)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(summaries) != 3 {
				t.Fatalf("expected 3 summaries, got %d", len(summaries))
			}
			want := []string{"Alpha", "Mike", "Zulu"}
			for i, summary := range summaries {
				if summary.Name != want[i] {
					t.Errorf("position %d: expected %s, got %s", i, want[i], summary.Name)
				}
				if summary.CardCount != 1 {
					t.Errorf("%s: expected 1 card, got %d", summary.Name, summary.CardCount)
				}
			}
		})
	}
}

func TestFileStoreListSkipsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	defer st.Close()
	ctx := context.Background()

	if err := st.Save(ctx, sampleBoard("board-good", "Good")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	bad := filepath.Join(dir, "boards", "board-bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	summaries, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Name != "Good" {
		t.Errorf("expected only the readable board, got %+v", summaries)
	}
}

func TestListEmptyStore(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			summaries, err := st.List(context.Background())
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(summaries) != 0 {
				t.Errorf("expected no summaries, got %d", len(summaries))
			}
		})
	}
}
