package models

import "github.com/tuckertucker/taskboard/internal/types"

// Column represents a kanban board column (e.g., "Todo", "In Progress", "Done").
// Column order on the board is slice order; cards reference their column by id.
type Column struct {
	ID   types.ColumnID `json:"id"`
	Name string         `json:"name"`
}
