// Package board handles board and column CRUD. This is thin plumbing over
// the store; the positioning and batch engines carry the real invariants.
package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/store"
	"github.com/tuckertucker/taskboard/internal/types"
	"github.com/tuckertucker/taskboard/internal/webhooks"
)

// Service defines all board-level business operations
type Service interface {
	CreateBoard(ctx context.Context, name string, columnNames []string) (*models.Board, error)
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*store.BoardSummary, error)
	DeleteBoard(ctx context.Context, id types.BoardID) error

	AddColumn(ctx context.Context, boardID types.BoardID, name string) (*models.Column, error)
	RenameColumn(ctx context.Context, boardID types.BoardID, columnID types.ColumnID, name string) error
	// DeleteColumn removes an empty column; columns holding cards are refused
	// so card positions can never be orphaned.
	DeleteColumn(ctx context.Context, boardID types.BoardID, columnID types.ColumnID) error
}

// service implements Service
type service struct {
	store     store.BoardStore
	locker    *store.Locker
	publisher webhooks.Publisher
	now       func() time.Time
}

// Option configures the board service
type Option func(*service)

// WithClock overrides the timestamp source (used by tests)
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a board service
func NewService(st store.BoardStore, locker *store.Locker, publisher webhooks.Publisher, opts ...Option) Service {
	s := &service{
		store:     st,
		locker:    locker,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBoard creates a board with the given columns
func (s *service) CreateBoard(ctx context.Context, name string, columnNames []string) (*models.Board, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	now := s.now()
	board := models.NewBoard(types.NewBoardID(), name, now)
	for _, colName := range columnNames {
		if strings.TrimSpace(colName) == "" {
			return nil, ErrEmptyColumnName
		}
		board.Columns = append(board.Columns, &models.Column{ID: types.NewColumnID(), Name: colName})
	}

	if err := s.store.Save(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	webhooks.Publish(s.publisher, webhooks.Event{
		Type: webhooks.EventBoardCreated, BoardID: board.ID, Timestamp: now,
	})
	return board, nil
}

// GetBoard loads the full board document
func (s *service) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	if id == "" {
		return nil, ErrInvalidBoardID
	}
	return s.store.Load(ctx, id)
}

// ListBoards returns summaries for all boards
func (s *service) ListBoards(ctx context.Context) ([]*store.BoardSummary, error) {
	return s.store.List(ctx)
}

// DeleteBoard removes the board document
func (s *service) DeleteBoard(ctx context.Context, id types.BoardID) error {
	if id == "" {
		return ErrInvalidBoardID
	}

	unlock := s.locker.Lock(id)
	defer unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	webhooks.Publish(s.publisher, webhooks.Event{
		Type: webhooks.EventBoardDeleted, BoardID: id, Timestamp: s.now(),
	})
	return nil
}

// AddColumn appends a new column to the board
func (s *service) AddColumn(ctx context.Context, boardID types.BoardID, name string) (*models.Column, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyColumnName
	}

	unlock := s.locker.Lock(boardID)
	defer unlock()

	board, err := s.store.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}
	for _, col := range board.Columns {
		if strings.EqualFold(col.Name, name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
		}
	}

	column := &models.Column{ID: types.NewColumnID(), Name: name}
	board.Columns = append(board.Columns, column)

	board.LastUpdated = s.now()
	if err := s.store.Save(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to add column: %w", err)
	}

	webhooks.Publish(s.publisher, webhooks.Event{
		Type: webhooks.EventBoardUpdated, BoardID: boardID, Timestamp: board.LastUpdated,
	})
	return column, nil
}

// RenameColumn changes a column's display name
func (s *service) RenameColumn(ctx context.Context, boardID types.BoardID, columnID types.ColumnID, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyColumnName
	}
	if columnID == "" {
		return ErrInvalidColumnID
	}

	unlock := s.locker.Lock(boardID)
	defer unlock()

	board, err := s.store.Load(ctx, boardID)
	if err != nil {
		return err
	}
	column := board.Column(columnID)
	if column == nil {
		return fmt.Errorf("%w: %s", models.ErrColumnNotFound, columnID)
	}
	column.Name = name

	board.LastUpdated = s.now()
	if err := s.store.Save(ctx, board); err != nil {
		return fmt.Errorf("failed to rename column: %w", err)
	}

	webhooks.Publish(s.publisher, webhooks.Event{
		Type: webhooks.EventBoardUpdated, BoardID: boardID, Timestamp: board.LastUpdated,
	})
	return nil
}

// DeleteColumn removes an empty column
func (s *service) DeleteColumn(ctx context.Context, boardID types.BoardID, columnID types.ColumnID) error {
	if columnID == "" {
		return ErrInvalidColumnID
	}

	unlock := s.locker.Lock(boardID)
	defer unlock()

	board, err := s.store.Load(ctx, boardID)
	if err != nil {
		return err
	}
	if board.Column(columnID) == nil {
		return fmt.Errorf("%w: %s", models.ErrColumnNotFound, columnID)
	}
	if board.CountInColumn(columnID) > 0 {
		return fmt.Errorf("%w: %s", ErrColumnNotEmpty, columnID)
	}

	columns := board.Columns[:0]
	for _, col := range board.Columns {
		if col.ID != columnID {
			columns = append(columns, col)
		}
	}
	board.Columns = columns

	board.LastUpdated = s.now()
	if err := s.store.Save(ctx, board); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}

	webhooks.Publish(s.publisher, webhooks.Event{
		Type: webhooks.EventBoardUpdated, BoardID: boardID, Timestamp: board.LastUpdated,
	})
	return nil
}
