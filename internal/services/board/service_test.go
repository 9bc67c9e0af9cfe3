package board

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/store"
)

var testTime = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// setupService builds a board service over a file store in a temp directory.
// The store is returned too, for tests that need to seed state directly.
func setupService(t *testing.T) (Service, store.BoardStore) {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewService(st, store.NewLocker(), nil, WithClock(func() time.Time { return testTime })), st
}

func TestCreateBoardWithColumns(t *testing.T) {
	svc, _ := setupService(t)

	board, err := svc.CreateBoard(context.Background(), "Sprint 12", []string{"Todo", "Doing", "Done"})
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if board.ID == "" {
		t.Error("board should have an id")
	}
	if len(board.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(board.Columns))
	}
	if board.Columns[1].Name != "Doing" {
		t.Errorf("column order not preserved: %+v", board.Columns)
	}
	if !board.CreatedAt.Equal(testTime) {
		t.Errorf("expected CreatedAt %v, got %v", testTime, board.CreatedAt)
	}

	loaded, err := svc.GetBoard(context.Background(), board.ID)
	if err != nil {
		t.Fatalf("GetBoard failed: %v", err)
	}
	if loaded.Name != "Sprint 12" {
		t.Errorf("expected Sprint 12, got %s", loaded.Name)
	}
}

func TestCreateBoardValidation(t *testing.T) {
	svc, _ := setupService(t)

	if _, err := svc.CreateBoard(context.Background(), "  ", nil); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if _, err := svc.CreateBoard(context.Background(), "Ok", []string{"Todo", " "}); !errors.Is(err, ErrEmptyColumnName) {
		t.Errorf("expected ErrEmptyColumnName, got %v", err)
	}
}

func TestListBoards(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateBoard(ctx, "Beta", nil); err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if _, err := svc.CreateBoard(ctx, "Alpha", nil); err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}

	summaries, err := svc.ListBoards(ctx)
	if err != nil {
		t.Fatalf("ListBoards failed: %v", err)
	}
	if len(summaries) != 2 || summaries[0].Name != "Alpha" || summaries[1].Name != "Beta" {
		t.Errorf("unexpected summaries: %+v", summaries)
	}
}

func TestDeleteBoard(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	board, err := svc.CreateBoard(ctx, "Doomed", nil)
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if err := svc.DeleteBoard(ctx, board.ID); err != nil {
		t.Fatalf("DeleteBoard failed: %v", err)
	}
	if _, err := svc.GetBoard(ctx, board.ID); !errors.Is(err, models.ErrBoardNotFound) {
		t.Errorf("expected ErrBoardNotFound, got %v", err)
	}
}

func TestAddColumnRejectsDuplicateName(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	board, err := svc.CreateBoard(ctx, "Board", []string{"Todo"})
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}

	col, err := svc.AddColumn(ctx, board.ID, "Review")
	if err != nil {
		t.Fatalf("AddColumn failed: %v", err)
	}
	if col.ID == "" || col.Name != "Review" {
		t.Errorf("unexpected column: %+v", col)
	}

	// case-insensitive duplicate
	if _, err := svc.AddColumn(ctx, board.ID, "todo"); !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("expected ErrDuplicateColumn, got %v", err)
	}
}

func TestRenameColumn(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	board, err := svc.CreateBoard(ctx, "Board", []string{"Todo"})
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}

	if err := svc.RenameColumn(ctx, board.ID, board.Columns[0].ID, "Backlog"); err != nil {
		t.Fatalf("RenameColumn failed: %v", err)
	}

	loaded, _ := svc.GetBoard(ctx, board.ID)
	if loaded.Columns[0].Name != "Backlog" {
		t.Errorf("rename did not persist: %s", loaded.Columns[0].Name)
	}

	if err := svc.RenameColumn(ctx, board.ID, "ghost", "X"); !errors.Is(err, models.ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestDeleteColumnRefusesNonEmpty(t *testing.T) {
	svc, st := setupService(t)
	ctx := context.Background()

	board, err := svc.CreateBoard(ctx, "Board", []string{"Todo", "Done"})
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	todo := board.Columns[0]

	// seed a card directly so the todo column is non-empty
	board.Cards["card-1"] = &models.Card{ID: "card-1", Title: "X", ColumnID: todo.ID, Position: 0}
	if err := st.Save(ctx, board); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}

	if err := svc.DeleteColumn(ctx, board.ID, todo.ID); !errors.Is(err, ErrColumnNotEmpty) {
		t.Errorf("expected ErrColumnNotEmpty, got %v", err)
	}

	if err := svc.DeleteColumn(ctx, board.ID, board.Columns[1].ID); err != nil {
		t.Fatalf("DeleteColumn on empty column failed: %v", err)
	}

	final, _ := svc.GetBoard(ctx, board.ID)
	if len(final.Columns) != 1 {
		t.Errorf("expected 1 remaining column, got %d", len(final.Columns))
	}
	if err := svc.DeleteColumn(ctx, board.ID, "ghost"); !errors.Is(err, models.ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}
