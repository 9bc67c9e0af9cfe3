package models

import (
	"time"

	"github.com/tuckertucker/taskboard/internal/types"
)

// Card represents a single card on the kanban board
type Card struct {
	ID           types.CardID   `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content,omitempty"`
	ColumnID     types.ColumnID `json:"columnId"`
	Position     int            `json:"position"`
	Tags         []string       `json:"tags,omitempty"`
	Dependencies []types.CardID `json:"dependencies,omitempty"`
	Subtasks     []string       `json:"subtasks,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Clone returns a deep copy of the card
func (c *Card) Clone() *Card {
	clone := *c
	if c.Tags != nil {
		clone.Tags = append([]string(nil), c.Tags...)
	}
	if c.Dependencies != nil {
		clone.Dependencies = append([]types.CardID(nil), c.Dependencies...)
	}
	if c.Subtasks != nil {
		clone.Subtasks = append([]string(nil), c.Subtasks...)
	}
	return &clone
}
