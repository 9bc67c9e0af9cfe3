package position

import (
	"fmt"
	"testing"
	"time"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/types"
)

// boardWith builds a board with the named columns and count cards per column.
// Card ids follow the pattern <column>-card-<n> with n matching the position.
func boardWith(t *testing.T, columns []string, perColumn int) *models.Board {
	t.Helper()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	board := models.NewBoard("board-1", "Test Board", now)
	for _, name := range columns {
		board.Columns = append(board.Columns, &models.Column{ID: types.ColumnID(name), Name: name})
		for i := 0; i < perColumn; i++ {
			id := types.CardID(fmt.Sprintf("%s-card-%d", name, i))
			board.Cards[id] = &models.Card{
				ID:       id,
				Title:    string(id),
				ColumnID: types.ColumnID(name),
				Position: i,
			}
		}
	}
	return board
}

func assertOrder(t *testing.T, board *models.Board, columnID types.ColumnID, want []types.CardID) {
	t.Helper()
	if err := CheckInvariant(board); err != nil {
		t.Fatalf("position invariant violated: %v", err)
	}
	cards := board.CardsInColumn(columnID)
	if len(cards) != len(want) {
		t.Fatalf("column %s: expected %d cards, got %d", columnID, len(want), len(cards))
	}
	for i, card := range cards {
		if card.ID != want[i] {
			t.Errorf("column %s position %d: expected %s, got %s", columnID, i, want[i], card.ID)
		}
	}
}

func TestInsertAtShiftsLaterCards(t *testing.T) {
	board := boardWith(t, []string{"todo"}, 3)
	ix := NewIndex(board)

	card := &models.Card{ID: "new", Title: "new"}
	ix.InsertAt("todo", 1, card)

	assertOrder(t, board, "todo", []types.CardID{"todo-card-0", "new", "todo-card-1", "todo-card-2"})
}

func TestInsertAtClampsOutOfRange(t *testing.T) {
	board := boardWith(t, []string{"todo"}, 2)
	ix := NewIndex(board)

	// Far past the end clamps to append
	ix.InsertAt("todo", 99, &models.Card{ID: "tail"})
	assertOrder(t, board, "todo", []types.CardID{"todo-card-0", "todo-card-1", "tail"})
}

func TestAppendOnEmptyColumn(t *testing.T) {
	board := boardWith(t, []string{"todo"}, 0)
	ix := NewIndex(board)

	ix.Append("todo", &models.Card{ID: "only"})

	assertOrder(t, board, "todo", []types.CardID{"only"})
}

func TestRemoveClosesGap(t *testing.T) {
	board := boardWith(t, []string{"todo"}, 4)
	ix := NewIndex(board)

	ix.Remove(board.Card("todo-card-1"))

	assertOrder(t, board, "todo", []types.CardID{"todo-card-0", "todo-card-2", "todo-card-3"})
	if board.Card("todo-card-1") != nil {
		t.Error("removed card should be gone from the board")
	}
}

func TestRelocateWithinColumnDown(t *testing.T) {
	board := boardWith(t, []string{"todo"}, 4)
	ix := NewIndex(board)

	ix.RelocateWithinColumn(board.Card("todo-card-0"), 2)

	assertOrder(t, board, "todo", []types.CardID{"todo-card-1", "todo-card-2", "todo-card-0", "todo-card-3"})
}

func TestRelocateWithinColumnUp(t *testing.T) {
	board := boardWith(t, []string{"todo"}, 4)
	ix := NewIndex(board)

	ix.RelocateWithinColumn(board.Card("todo-card-3"), 1)

	assertOrder(t, board, "todo", []types.CardID{"todo-card-0", "todo-card-3", "todo-card-1", "todo-card-2"})
}

func TestRelocateWithinColumnSamePositionIsNoop(t *testing.T) {
	board := boardWith(t, []string{"todo"}, 3)
	ix := NewIndex(board)

	ix.RelocateWithinColumn(board.Card("todo-card-1"), 1)

	assertOrder(t, board, "todo", []types.CardID{"todo-card-0", "todo-card-1", "todo-card-2"})
}

func TestRelocateWithinColumnClampsTarget(t *testing.T) {
	board := boardWith(t, []string{"todo"}, 3)
	ix := NewIndex(board)

	// Past the end clamps to the last slot
	ix.RelocateWithinColumn(board.Card("todo-card-0"), 99)

	assertOrder(t, board, "todo", []types.CardID{"todo-card-1", "todo-card-2", "todo-card-0"})
}

func TestRelocateAcrossColumns(t *testing.T) {
	board := boardWith(t, []string{"todo", "doing"}, 3)
	ix := NewIndex(board)

	ix.RelocateAcrossColumns(board.Card("todo-card-1"), "doing", 0)

	assertOrder(t, board, "todo", []types.CardID{"todo-card-0", "todo-card-2"})
	assertOrder(t, board, "doing", []types.CardID{"todo-card-1", "doing-card-0", "doing-card-1", "doing-card-2"})
}

func TestRelocateAcrossColumnsToEmptyColumn(t *testing.T) {
	board := boardWith(t, []string{"todo", "done"}, 0)
	board.Cards["a"] = &models.Card{ID: "a", ColumnID: "todo", Position: 0}
	ix := NewIndex(board)

	ix.RelocateAcrossColumns(board.Card("a"), "done", 5)

	assertOrder(t, board, "todo", nil)
	assertOrder(t, board, "done", []types.CardID{"a"})
}

func TestCheckInvariantDetectsGaps(t *testing.T) {
	board := boardWith(t, []string{"todo"}, 2)
	board.Card("todo-card-1").Position = 5

	if err := CheckInvariant(board); err == nil {
		t.Error("expected invariant error for sparse positions")
	}
}
