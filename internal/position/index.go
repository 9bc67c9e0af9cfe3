// Package position maintains the dense per-column ordering of cards on a
// board. Every operation re-establishes the invariant that the positions of
// the cards in a column form the contiguous range 0..n-1.
package position

import (
	"fmt"
	"sort"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/types"
)

// Index wraps a board and exposes position-preserving mutations.
// It operates on the board in place; callers working inside a batch hand it
// the working copy, never the canonical board.
type Index struct {
	board *models.Board
}

// NewIndex creates an Index over the given board
func NewIndex(board *models.Board) *Index {
	return &Index{board: board}
}

// clamp restricts v to [lo, hi]
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InsertAt places card into the column at the given position.
// The position is clamped to [0, count]; existing cards at or after the
// insertion point shift down by one. The card's ColumnID and Position are
// assigned here; the card must not already be present on the board.
func (ix *Index) InsertAt(columnID types.ColumnID, pos int, card *models.Card) {
	count := ix.board.CountInColumn(columnID)
	pos = clamp(pos, 0, count)

	for _, c := range ix.board.Cards {
		if c.ColumnID == columnID && c.Position >= pos {
			c.Position++
		}
	}

	card.ColumnID = columnID
	card.Position = pos
	ix.board.Cards[card.ID] = card
}

// Append places card at the end of the column
func (ix *Index) Append(columnID types.ColumnID, card *models.Card) {
	ix.InsertAt(columnID, ix.board.CountInColumn(columnID), card)
}

// Remove deletes the card from the board and closes the gap it leaves:
// every remaining card in its column past the old position shifts up by one.
func (ix *Index) Remove(card *models.Card) {
	old := card.Position
	delete(ix.board.Cards, card.ID)

	for _, c := range ix.board.Cards {
		if c.ColumnID == card.ColumnID && c.Position > old {
			c.Position--
		}
	}
}

// RelocateWithinColumn moves the card to a new position in its own column.
// The target is clamped to [0, count-1]. Cards between the old and new
// positions shift by one toward the vacated slot. No-op when from == to.
func (ix *Index) RelocateWithinColumn(card *models.Card, to int) {
	count := ix.board.CountInColumn(card.ColumnID)
	from := card.Position
	to = clamp(to, 0, count-1)

	if from == to {
		return
	}

	for _, c := range ix.board.Cards {
		if c.ColumnID != card.ColumnID || c.ID == card.ID {
			continue
		}
		switch {
		case from < to && c.Position > from && c.Position <= to:
			c.Position--
		case from > to && c.Position >= to && c.Position < from:
			c.Position++
		}
	}
	card.Position = to
}

// RelocateAcrossColumns moves the card into another column at the clamped
// target position. The source column's gap is closed first, then the card is
// inserted into the target column; both columns' invariants are
// re-established independently.
func (ix *Index) RelocateAcrossColumns(card *models.Card, columnID types.ColumnID, to int) {
	ix.Remove(card)
	ix.InsertAt(columnID, to, card)
}

// CheckInvariant verifies that every column's positions form the contiguous
// range 0..n-1. It returns an error naming the first violating column.
// Intended for tests and debug assertions.
func CheckInvariant(board *models.Board) error {
	for _, col := range board.Columns {
		var positions []int
		for _, c := range board.Cards {
			if c.ColumnID == col.ID {
				positions = append(positions, c.Position)
			}
		}
		sort.Ints(positions)
		for i, p := range positions {
			if p != i {
				return fmt.Errorf("column %s: positions %v are not dense", col.ID, positions)
			}
		}
	}
	return nil
}
