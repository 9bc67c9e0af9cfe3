// Package card exposes single-card operations outside of batches. Every
// write holds the board's lock across one load-modify-save cycle and bumps
// the board's last_updated exactly once.
package card

import (
	"context"
	"fmt"
	"time"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/position"
	"github.com/tuckertucker/taskboard/internal/services/move"
	"github.com/tuckertucker/taskboard/internal/store"
	"github.com/tuckertucker/taskboard/internal/types"
	"github.com/tuckertucker/taskboard/internal/webhooks"
)

// Service defines all single-card business operations
type Service interface {
	GetCard(ctx context.Context, boardID types.BoardID, cardID types.CardID) (*models.Card, error)
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, boardID types.BoardID, cardID types.CardID) error

	// MoveCard relocates one card to the column at the resolved position.
	// This backs the single-card move endpoint used outside batches.
	MoveCard(ctx context.Context, boardID types.BoardID, cardID types.CardID, columnID types.ColumnID, spec position.Spec) (*models.Card, error)
}

// CreateCardRequest encapsulates all data needed to create a card.
// A nil Position appends to the end of the column.
type CreateCardRequest struct {
	BoardID      types.BoardID
	ColumnID     types.ColumnID
	Title        string
	Content      string
	Tags         []string
	Dependencies []types.CardID
	Subtasks     []string
	Position     *int
}

// UpdateCardRequest encapsulates all data needed to update a card.
// Fields with pointers are optional - nil means don't update.
type UpdateCardRequest struct {
	BoardID      types.BoardID
	CardID       types.CardID
	Title        *string
	Content      *string
	Tags         *[]string
	Dependencies *[]types.CardID
	Subtasks     *[]string
}

// service implements Service
type service struct {
	store     store.BoardStore
	locker    *store.Locker
	publisher webhooks.Publisher
	engine    *move.Engine
	newID     types.IDGenerator
	now       func() time.Time
}

// Option configures the card service
type Option func(*service)

// WithIDGenerator overrides card id generation (used by tests)
func WithIDGenerator(gen types.IDGenerator) Option {
	return func(s *service) { s.newID = gen }
}

// WithClock overrides the timestamp source (used by tests)
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a card service
func NewService(st store.BoardStore, locker *store.Locker, publisher webhooks.Publisher, opts ...Option) Service {
	s := &service{
		store:     st,
		locker:    locker,
		publisher: publisher,
		engine:    move.NewEngine(),
		newID:     types.NewCardID,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCard retrieves one card
func (s *service) GetCard(ctx context.Context, boardID types.BoardID, cardID types.CardID) (*models.Card, error) {
	board, err := s.store.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}
	card := board.Card(cardID)
	if card == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}
	return card, nil
}

// CreateCard validates the request and appends or inserts the new card
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	if req.Title == "" {
		return nil, ErrEmptyTitle
	}
	if req.ColumnID == "" {
		return nil, ErrInvalidColumnID
	}
	if req.Position != nil && *req.Position < 0 {
		return nil, ErrInvalidPosition
	}

	unlock := s.locker.Lock(req.BoardID)
	defer unlock()

	board, err := s.store.Load(ctx, req.BoardID)
	if err != nil {
		return nil, err
	}
	if board.Column(req.ColumnID) == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrColumnNotFound, req.ColumnID)
	}

	now := s.now()
	card := &models.Card{
		ID:           s.newID(),
		Title:        req.Title,
		Content:      req.Content,
		Tags:         req.Tags,
		Dependencies: req.Dependencies,
		Subtasks:     req.Subtasks,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ix := position.NewIndex(board)
	if req.Position != nil {
		ix.InsertAt(req.ColumnID, *req.Position, card)
	} else {
		ix.Append(req.ColumnID, card)
	}

	board.LastUpdated = now
	if err := s.store.Save(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	webhooks.Publish(s.publisher, webhooks.Event{
		Type: webhooks.EventCardCreated, BoardID: req.BoardID, CardID: card.ID, Timestamp: now,
	})
	return card, nil
}

// UpdateCard merges the provided fields into the card. Column changes are
// not accepted here; MoveCard owns relocation.
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error) {
	if req.CardID == "" {
		return nil, ErrInvalidCardID
	}
	if req.Title != nil && *req.Title == "" {
		return nil, ErrEmptyTitle
	}

	unlock := s.locker.Lock(req.BoardID)
	defer unlock()

	board, err := s.store.Load(ctx, req.BoardID)
	if err != nil {
		return nil, err
	}
	card := board.Card(req.CardID)
	if card == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, req.CardID)
	}

	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Content != nil {
		card.Content = *req.Content
	}
	if req.Tags != nil {
		card.Tags = *req.Tags
	}
	if req.Dependencies != nil {
		card.Dependencies = *req.Dependencies
	}
	if req.Subtasks != nil {
		card.Subtasks = *req.Subtasks
	}

	now := s.now()
	card.UpdatedAt = now
	board.LastUpdated = now
	if err := s.store.Save(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	webhooks.Publish(s.publisher, webhooks.Event{
		Type: webhooks.EventCardUpdated, BoardID: req.BoardID, CardID: card.ID, Timestamp: now,
	})
	return card, nil
}

// DeleteCard removes the card and closes the position gap in its column
func (s *service) DeleteCard(ctx context.Context, boardID types.BoardID, cardID types.CardID) error {
	if cardID == "" {
		return ErrInvalidCardID
	}

	unlock := s.locker.Lock(boardID)
	defer unlock()

	board, err := s.store.Load(ctx, boardID)
	if err != nil {
		return err
	}
	card := board.Card(cardID)
	if card == nil {
		return fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}

	position.NewIndex(board).Remove(card)

	now := s.now()
	board.LastUpdated = now
	if err := s.store.Save(ctx, board); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	webhooks.Publish(s.publisher, webhooks.Event{
		Type: webhooks.EventCardDeleted, BoardID: boardID, CardID: cardID, Timestamp: now,
	})
	return nil
}

// MoveCard relocates one card through the move engine
func (s *service) MoveCard(ctx context.Context, boardID types.BoardID, cardID types.CardID, columnID types.ColumnID, spec position.Spec) (*models.Card, error) {
	if cardID == "" {
		return nil, ErrInvalidCardID
	}
	if columnID == "" {
		return nil, ErrInvalidColumnID
	}

	unlock := s.locker.Lock(boardID)
	defer unlock()

	board, err := s.store.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	card, err := s.engine.Apply(board, cardID, columnID, spec, now)
	if err != nil {
		return nil, err
	}

	board.LastUpdated = now
	if err := s.store.Save(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to move card: %w", err)
	}

	webhooks.Publish(s.publisher, webhooks.Event{
		Type: webhooks.EventCardMoved, BoardID: boardID, CardID: cardID, Timestamp: now,
	})
	return card, nil
}
