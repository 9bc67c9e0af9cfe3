// Package move translates user-facing position specifications into position
// index calls. It relocates exactly one card per call, same-column or
// cross-column, against an in-memory board working copy.
package move

import (
	"fmt"
	"time"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/position"
	"github.com/tuckertucker/taskboard/internal/types"
)

// Engine resolves position specs and applies single-card moves.
// It is stateless; every call receives the board to mutate.
type Engine struct{}

// NewEngine creates a move engine
func NewEngine() *Engine {
	return &Engine{}
}

// Apply moves the card to the target column at the resolved position and
// bumps the card's UpdatedAt. The board's LastUpdated is the caller's
// responsibility: it is bumped once per request, not once per card.
func (e *Engine) Apply(board *models.Board, cardID types.CardID, columnID types.ColumnID, spec position.Spec, now time.Time) (*models.Card, error) {
	card := board.Card(cardID)
	if card == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}
	if board.Column(columnID) == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrColumnNotFound, columnID)
	}

	sameColumn := columnID == card.ColumnID
	to, err := e.resolve(board, card, columnID, spec, sameColumn)
	if err != nil {
		return nil, err
	}

	ix := position.NewIndex(board)
	if sameColumn {
		ix.RelocateWithinColumn(card, to)
	} else {
		ix.RelocateAcrossColumns(card, columnID, to)
	}

	card.UpdatedAt = now
	return card, nil
}

// resolve turns a Spec into a concrete target index. "last" accounts for the
// card's own removal when it is already in the target column; "up"/"down"
// are only meaningful relative to the card's current column.
func (e *Engine) resolve(board *models.Board, card *models.Card, columnID types.ColumnID, spec position.Spec, sameColumn bool) (int, error) {
	if spec.IsNumeric() {
		return spec.Index(), nil
	}

	switch spec.Word() {
	case position.First:
		return 0, nil
	case position.Last:
		count := board.CountInColumn(columnID)
		if sameColumn {
			count--
		}
		if count < 0 {
			count = 0
		}
		return count, nil
	case position.Up:
		if !sameColumn {
			return 0, fmt.Errorf("%w: %q cannot be combined with a column change", ErrInvalidPositionSpec, spec.Word())
		}
		to := card.Position - 1
		if to < 0 {
			to = 0
		}
		return to, nil
	case position.Down:
		if !sameColumn {
			return 0, fmt.Errorf("%w: %q cannot be combined with a column change", ErrInvalidPositionSpec, spec.Word())
		}
		// clamped by the position index
		return card.Position + 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKeyword, spec.Word())
	}
}
