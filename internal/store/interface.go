// Package store defines board persistence and its implementations.
// The engine treats a store as an atomic load/save boundary for whole board
// documents; a backend may be a JSON file per board or a sqlite database.
package store

import (
	"context"
	"time"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/types"
)

// BoardSummary is a lightweight listing entry for a board
type BoardSummary struct {
	ID          types.BoardID `json:"id"`
	Name        string        `json:"name"`
	CardCount   int           `json:"cardCount"`
	LastUpdated time.Time     `json:"last_updated"`
}

// BoardStore persists whole board documents.
// Load returns models.ErrBoardNotFound (wrapped) for unknown ids.
// This interface enables mocking with testify for unit testing.
type BoardStore interface {
	// Load reads the full board document
	Load(ctx context.Context, id types.BoardID) (*models.Board, error)

	// Save writes the full board document in one atomic store call,
	// creating it if it does not exist
	Save(ctx context.Context, board *models.Board) error

	// Delete removes the board document
	Delete(ctx context.Context, id types.BoardID) error

	// List returns summaries for all stored boards
	List(ctx context.Context) ([]*BoardSummary, error)

	// Close releases backend resources
	Close() error
}
