package converters

import (
	"time"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/types"
)

// BoardView is the nested wire shape of a board: columns carry their cards
// in position order. The stored document keeps cards in a flat map; this
// view is derived for transports that want ready-to-render columns.
type BoardView struct {
	ID          types.BoardID `json:"id"`
	Name        string        `json:"name"`
	Columns     []ColumnView  `json:"columns"`
	CreatedAt   time.Time     `json:"created_at"`
	LastUpdated time.Time     `json:"last_updated"`
}

// ColumnView is a column with its cards in position order
type ColumnView struct {
	ID    types.ColumnID `json:"id"`
	Name  string         `json:"name"`
	Cards []*models.Card `json:"cards"`
}

// ToBoardView derives the nested view from a board document
func ToBoardView(board *models.Board) *BoardView {
	view := &BoardView{
		ID:          board.ID,
		Name:        board.Name,
		Columns:     make([]ColumnView, 0, len(board.Columns)),
		CreatedAt:   board.CreatedAt,
		LastUpdated: board.LastUpdated,
	}
	for _, col := range board.Columns {
		cards := board.CardsInColumn(col.ID)
		if cards == nil {
			cards = []*models.Card{}
		}
		view.Columns = append(view.Columns, ColumnView{
			ID:    col.ID,
			Name:  col.Name,
			Cards: cards,
		})
	}
	return view
}
