package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/position"
	"github.com/tuckertucker/taskboard/internal/store"
	"github.com/tuckertucker/taskboard/internal/types"
)

var testTime = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// memStore is an in-memory BoardStore recording saves, so tests can assert
// exactly what was persisted.
type memStore struct {
	boards  map[types.BoardID]*models.Board
	saves   int
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{boards: map[types.BoardID]*models.Board{}}
}

func (m *memStore) Load(_ context.Context, id types.BoardID) (*models.Board, error) {
	b, ok := m.boards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrBoardNotFound, id)
	}
	return b.Clone(), nil
}

func (m *memStore) Save(_ context.Context, board *models.Board) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.boards[board.ID] = board.Clone()
	return nil
}

func (m *memStore) Delete(_ context.Context, id types.BoardID) error {
	delete(m.boards, id)
	return nil
}

func (m *memStore) List(_ context.Context) ([]*store.BoardSummary, error) {
	return nil, nil
}

func (m *memStore) Close() error { return nil }

// sequentialIDs returns an IDGenerator yielding card-1, card-2, ...
func sequentialIDs() types.IDGenerator {
	n := 0
	return func() types.CardID {
		n++
		return types.CardID(fmt.Sprintf("card-%d", n))
	}
}

// setupService builds a batch service over a board with todo and done
// columns. The "existing" card sits at todo position 0.
func setupService(t *testing.T, opts ...Option) (Service, *memStore) {
	t.Helper()
	st := newMemStore()
	board := models.NewBoard("board-1", "Test Board", testTime)
	board.Columns = []*models.Column{
		{ID: "todo", Name: "To Do"},
		{ID: "done", Name: "Done"},
	}
	board.Cards["existing"] = &models.Card{ID: "existing", Title: "Existing", ColumnID: "todo", Position: 0}
	st.boards["board-1"] = board

	opts = append([]Option{
		WithIDGenerator(sequentialIDs()),
		WithClock(func() time.Time { return testTime.Add(time.Hour) }),
	}, opts...)
	return NewService(st, store.NewLocker(), nil, opts...), st
}

func mustCreate(reference string, column types.ColumnID, title string, deps ...string) Operation {
	return Operation{Type: OpCreate, Create: &CreateOp{
		Reference: reference,
		ColumnID:  column,
		Data:      CardData{Title: title, Dependencies: deps},
	}}
}

func TestApplyCreateResolvesReferences(t *testing.T) {
	svc, st := setupService(t)

	result, err := svc.Apply(context.Background(), "board-1", []Operation{
		mustCreate("schema", "todo", "Design schema"),
		mustCreate("", "todo", "Implement", "$ref:schema"),
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result.Results)
	}
	if len(result.NewCards) != 2 {
		t.Fatalf("expected 2 new cards, got %d", len(result.NewCards))
	}
	if got := result.ReferenceMap["schema"]; got != "card-1" {
		t.Errorf("expected schema -> card-1, got %s", got)
	}

	board := st.boards["board-1"]
	impl := board.Card("card-2")
	if impl == nil {
		t.Fatal("second created card not persisted")
	}
	if len(impl.Dependencies) != 1 || impl.Dependencies[0] != "card-1" {
		t.Errorf("dependency reference not substituted: %v", impl.Dependencies)
	}
	if err := position.CheckInvariant(board); err != nil {
		t.Errorf("persisted board violates position invariant: %v", err)
	}
}

func TestApplyReferenceMapOmittedWithoutReferences(t *testing.T) {
	svc, _ := setupService(t)

	result, err := svc.Apply(context.Background(), "board-1", []Operation{
		mustCreate("", "todo", "No refs here"),
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if result.ReferenceMap != nil {
		t.Errorf("expected nil reference map, got %v", result.ReferenceMap)
	}
}

func TestApplyForwardReferenceFails(t *testing.T) {
	svc, _ := setupService(t)

	result, err := svc.Apply(context.Background(), "board-1", []Operation{
		{Type: OpMove, Move: &MoveOp{CardID: "$ref:later", ColumnID: "done", Position: position.Keyword(position.First)}},
		mustCreate("later", "todo", "Declared too late"),
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if result.Success {
		t.Fatal("batch with a forward reference should not report success")
	}
	if result.Results[0].Code != CodeUnresolvedReference {
		t.Errorf("expected %s, got %s", CodeUnresolvedReference, result.Results[0].Code)
	}
	// the later create still applied
	if !result.Results[1].Success {
		t.Error("create after the failed operation should still apply")
	}
}

func TestApplyFailedOperationDoesNotAbortBatch(t *testing.T) {
	svc, st := setupService(t)

	result, err := svc.Apply(context.Background(), "board-1", []Operation{
		mustCreate("", "todo", "First"),
		{Type: OpDelete, Delete: &DeleteOp{CardID: "ghost"}},
		mustCreate("", "done", "Third"),
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if result.Success {
		t.Error("expected overall failure with one failed operation")
	}
	if len(result.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(result.Results))
	}
	if !result.Results[0].Success || result.Results[1].Success || !result.Results[2].Success {
		t.Errorf("unexpected per-operation outcomes: %+v", result.Results)
	}
	if result.Results[1].Code != CodeCardNotFound {
		t.Errorf("expected %s, got %s", CodeCardNotFound, result.Results[1].Code)
	}

	// the board is persisted with the operations that did succeed
	if st.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", st.saves)
	}
	board := st.boards["board-1"]
	if board.CountInColumn("todo") != 2 || board.CountInColumn("done") != 1 {
		t.Errorf("persisted board has wrong card counts: todo=%d done=%d",
			board.CountInColumn("todo"), board.CountInColumn("done"))
	}
}

func TestApplyMoveAndUpdateAndDelete(t *testing.T) {
	svc, st := setupService(t)
	title := "Renamed"

	result, err := svc.Apply(context.Background(), "board-1", []Operation{
		mustCreate("a", "todo", "A"),
		{Type: OpUpdate, Update: &UpdateOp{CardID: "$ref:a", Data: CardPatch{Title: &title}}},
		{Type: OpMove, Move: &MoveOp{CardID: "$ref:a", ColumnID: "done", Position: position.Keyword(position.First)}},
		{Type: OpDelete, Delete: &DeleteOp{CardID: "existing"}},
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success: %+v", result.Results)
	}

	board := st.boards["board-1"]
	card := board.Card("card-1")
	if card == nil {
		t.Fatal("created card missing")
	}
	if card.Title != "Renamed" || card.ColumnID != "done" || card.Position != 0 {
		t.Errorf("unexpected card state: %+v", card)
	}
	if board.Card("existing") != nil {
		t.Error("deleted card still present")
	}
}

func TestApplyUpdateRejectsColumnChange(t *testing.T) {
	svc, _ := setupService(t)
	other := "done"

	result, err := svc.Apply(context.Background(), "board-1", []Operation{
		{Type: OpUpdate, Update: &UpdateOp{CardID: "existing", Data: CardPatch{ColumnID: &other}}},
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if result.Success {
		t.Error("column change through update should fail")
	}
	if result.Results[0].Code != CodeValidationError {
		t.Errorf("expected %s, got %s", CodeValidationError, result.Results[0].Code)
	}
}

func TestApplyUpdateSameColumnIDAccepted(t *testing.T) {
	svc, _ := setupService(t)
	same := "todo"

	result, err := svc.Apply(context.Background(), "board-1", []Operation{
		{Type: OpUpdate, Update: &UpdateOp{CardID: "existing", Data: CardPatch{ColumnID: &same}}},
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !result.Success {
		t.Errorf("restating the current column should be accepted: %+v", result.Results)
	}
}

func TestApplyFailedUpdateLeavesCardUntouched(t *testing.T) {
	svc, st := setupService(t)
	title := "Renamed"
	content := "new body"
	deps := []string{"$ref:never-declared"}

	result, err := svc.Apply(context.Background(), "board-1", []Operation{
		{Type: OpUpdate, Update: &UpdateOp{
			CardID: "existing",
			Data:   CardPatch{Title: &title, Content: &content, Dependencies: &deps},
		}},
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if result.Success {
		t.Fatal("update with an undeclared reference should fail")
	}
	if result.Results[0].Code != CodeUnresolvedReference {
		t.Errorf("expected %s, got %s", CodeUnresolvedReference, result.Results[0].Code)
	}

	card := st.boards["board-1"].Card("existing")
	if card.Title != "Existing" {
		t.Errorf("failed update leaked title change: got %q, want %q", card.Title, "Existing")
	}
	if card.Content != "" {
		t.Errorf("failed update leaked content change: got %q", card.Content)
	}
	if card.Dependencies != nil {
		t.Errorf("failed update leaked dependencies: %v", card.Dependencies)
	}
}

func TestApplyEmptyBatchRejected(t *testing.T) {
	svc, st := setupService(t)

	_, err := svc.Apply(context.Background(), "board-1", nil)
	if !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("expected ErrEmptyBatch, got %v", err)
	}
	if st.saves != 0 {
		t.Error("empty batch must not write")
	}
}

func TestApplyTooManyOperationsRejected(t *testing.T) {
	svc, st := setupService(t, WithMaxOperations(2))

	ops := []Operation{
		mustCreate("", "todo", "1"),
		mustCreate("", "todo", "2"),
		mustCreate("", "todo", "3"),
	}
	_, err := svc.Apply(context.Background(), "board-1", ops)
	if !errors.Is(err, ErrTooManyOperations) {
		t.Errorf("expected ErrTooManyOperations, got %v", err)
	}
	if st.saves != 0 {
		t.Error("oversized batch must not write")
	}
}

func TestApplyUnknownBoard(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Apply(context.Background(), "ghost", []Operation{mustCreate("", "todo", "X")})
	if !errors.Is(err, models.ErrBoardNotFound) {
		t.Errorf("expected ErrBoardNotFound, got %v", err)
	}
}

func TestApplyCancelledContextAbortsWithoutWriting(t *testing.T) {
	svc, st := setupService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Apply(ctx, "board-1", []Operation{mustCreate("", "todo", "X")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if st.saves != 0 {
		t.Error("cancelled batch must not write")
	}
}

func TestApplySaveFailureReturnsError(t *testing.T) {
	svc, st := setupService(t)
	st.saveErr = errors.New("disk full")

	_, err := svc.Apply(context.Background(), "board-1", []Operation{mustCreate("", "todo", "X")})
	if err == nil {
		t.Fatal("expected save failure to surface")
	}
	// canonical board untouched
	if st.boards["board-1"].CountInColumn("todo") != 1 {
		t.Error("failed save must not mutate the stored board")
	}
}

func TestApplyValidatesOperations(t *testing.T) {
	svc, _ := setupService(t)

	result, err := svc.Apply(context.Background(), "board-1", []Operation{
		mustCreate("", "todo", ""),            // empty title
		mustCreate("", "", "No column"),       // missing column
		mustCreate("", "ghost", "Bad column"), // unknown column
		{Type: OpUpdate, Update: &UpdateOp{}}, // missing card id
		{Type: OpType("archive")},             // unknown type
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if result.Success {
		t.Fatal("expected overall failure")
	}

	wantCodes := []string{
		CodeValidationError,
		CodeValidationError,
		CodeColumnNotFound,
		CodeValidationError,
		CodeValidationError,
	}
	for i, want := range wantCodes {
		if result.Results[i].Success {
			t.Errorf("operation %d should fail", i)
		}
		if result.Results[i].Code != want {
			t.Errorf("operation %d: expected code %s, got %s", i, want, result.Results[i].Code)
		}
	}
}
