// Package batch applies an ordered list of card operations to one board as a
// single persisted unit of work. The board is loaded once, mutated on a
// working copy, and written back in a single save; individual operation
// failures are captured per result and never abort the walk.
package batch

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

// Service defines batch operations against a board
type Service interface {
	// Apply runs the operations in order against the board and persists the
	// outcome. A returned error means nothing was persisted; per-operation
	// failures are reported inside the Result instead.
	Apply(ctx context.Context, boardID types.BoardID, ops []Operation) (*Result, error)
}

// service implements Service
type service struct {
	store     store.BoardStore
	locker    *store.Locker
	publisher webhooks.Publisher
	newID     types.IDGenerator
	now       func() time.Time
	maxOps    int
}

// Option configures the batch service
type Option func(*service)

// WithIDGenerator overrides card id generation (used by tests)
func WithIDGenerator(gen types.IDGenerator) Option {
	return func(s *service) { s.newID = gen }
}

// WithClock overrides the timestamp source (used by tests)
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithMaxOperations overrides the batch size cap
func WithMaxOperations(n int) Option {
	return func(s *service) { s.maxOps = n }
}

// NewService creates a batch service
func NewService(st store.BoardStore, locker *store.Locker, publisher webhooks.Publisher, opts ...Option) Service {
	s := &service{
		store:     st,
		locker:    locker,
		publisher: publisher,
		newID:     types.NewCardID,
		now:       time.Now,
		maxOps:    MaxOperations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply implements the batch state machine: Loaded -> Applying(i) -> Committed.
// Validation and load failures abort before anything is written; cancellation
// between operations aborts likewise. Once the walk finishes, the working copy
// is persisted regardless of how many operations failed.
func (s *service) Apply(ctx context.Context, boardID types.BoardID, ops []Operation) (*Result, error) {
	if len(ops) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(ops) > s.maxOps {
		return nil, fmt.Errorf("%w: %d operations, cap is %d", ErrTooManyOperations, len(ops), s.maxOps)
	}

	unlock := s.locker.Lock(boardID)
	defer unlock()

	board, err := s.store.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}
	working := board.Clone()

	resolver := NewResolver()
	engine := move.NewEngine()
	now := s.now()

	result := &Result{
		Success:  true,
		Results:  make([]OperationResult, 0, len(ops)),
		NewCards: []*models.Card{},
	}

	for i, op := range ops {
		// mid-batch cancellation is a fatal abort, not a partial commit
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cardID, created, opErr := s.applyOne(working, resolver, engine, op, now)

		opResult := OperationResult{Index: i, Type: op.Type, CardID: cardID, Success: opErr == nil}
		if opErr != nil {
			opResult.Error = opErr.Error()
			opResult.Code = ErrorCode(opErr)
			result.Success = false
		} else if created != nil {
			result.NewCards = append(result.NewCards, created)
		}
		result.Results = append(result.Results, opResult)
	}

	// one bump per request, then one write, however many operations failed
	working.LastUpdated = now
	if err := s.store.Save(ctx, working); err != nil {
		return nil, fmt.Errorf("failed to persist batch for board %s: %w", boardID, err)
	}

	result.ReferenceMap = resolver.Map()

	webhooks.Publish(s.publisher, webhooks.Event{
		Type:      webhooks.EventBatchApplied,
		BoardID:   boardID,
		Timestamp: now,
	})

	return result, nil
}

// applyOne dispatches a single operation against the working copy.
// It returns the resolved card id (when one could be determined), the created
// card for create operations, and the operation error if any.
func (s *service) applyOne(working *models.Board, resolver *Resolver, engine *move.Engine, op Operation, now time.Time) (types.CardID, *models.Card, error) {
	switch op.Type {
	case OpCreate:
		return s.applyCreate(working, resolver, op.Create, now)
	case OpUpdate:
		return s.applyUpdate(working, resolver, op.Update, now)
	case OpMove:
		return s.applyMove(working, resolver, engine, op.Move, now)
	case OpDelete:
		return s.applyDelete(working, resolver, op.Delete)
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op.Type)
	}
}

func (s *service) applyCreate(working *models.Board, resolver *Resolver, op *CreateOp, now time.Time) (types.CardID, *models.Card, error) {
	if op.Data.Title == "" {
		return "", nil, ErrEmptyTitle
	}
	if op.ColumnID == "" {
		return "", nil, ErrMissingColumn
	}
	if working.Column(op.ColumnID) == nil {
		return "", nil, fmt.Errorf("%w: %s", models.ErrColumnNotFound, op.ColumnID)
	}

	deps, err := resolver.ResolveIDs(op.Data.Dependencies)
	if err != nil {
		return "", nil, err
	}

	card := &models.Card{
		ID:           s.newID(),
		Title:        op.Data.Title,
		Content:      op.Data.Content,
		Tags:         op.Data.Tags,
		Dependencies: deps,
		Subtasks:     op.Data.Subtasks,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ix := position.NewIndex(working)
	if op.Position != nil {
		ix.InsertAt(op.ColumnID, *op.Position, card)
	} else {
		ix.Append(op.ColumnID, card)
	}

	if op.Reference != "" {
		resolver.Declare(op.Reference, card.ID)
	}
	return card.ID, card, nil
}

func (s *service) applyUpdate(working *models.Board, resolver *Resolver, op *UpdateOp, now time.Time) (types.CardID, *models.Card, error) {
	if op.CardID == "" {
		return "", nil, ErrMissingCardID
	}
	cardID, err := resolver.ResolveID(op.CardID)
	if err != nil {
		return "", nil, err
	}
	card := working.Card(cardID)
	if card == nil {
		return cardID, nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}

	// A column change through update would leave the card's position
	// dangling relative to both columns; moves own column changes.
	if op.Data.ColumnID != nil && types.ColumnID(*op.Data.ColumnID) != card.ColumnID {
		return cardID, nil, ErrColumnChangeOnUpdate
	}

	// Validate and resolve everything before touching the card so a failed
	// update leaves no partial changes behind in the working copy.
	if op.Data.Title != nil && *op.Data.Title == "" {
		return cardID, nil, ErrEmptyTitle
	}
	var deps []types.CardID
	if op.Data.Dependencies != nil {
		deps, err = resolver.ResolveIDs(*op.Data.Dependencies)
		if err != nil {
			return cardID, nil, err
		}
	}

	if op.Data.Title != nil {
		card.Title = *op.Data.Title
	}
	if op.Data.Content != nil {
		card.Content = *op.Data.Content
	}
	if op.Data.Tags != nil {
		card.Tags = *op.Data.Tags
	}
	if op.Data.Dependencies != nil {
		card.Dependencies = deps
	}
	if op.Data.Subtasks != nil {
		card.Subtasks = *op.Data.Subtasks
	}

	card.UpdatedAt = now
	return cardID, nil, nil
}

func (s *service) applyMove(working *models.Board, resolver *Resolver, engine *move.Engine, op *MoveOp, now time.Time) (types.CardID, *models.Card, error) {
	if op.CardID == "" {
		return "", nil, ErrMissingCardID
	}
	cardID, err := resolver.ResolveID(op.CardID)
	if err != nil {
		return "", nil, err
	}
	if op.ColumnID == "" {
		return cardID, nil, ErrMissingColumn
	}
	if _, err := engine.Apply(working, cardID, op.ColumnID, op.Position, now); err != nil {
		return cardID, nil, err
	}
	return cardID, nil, nil
}

func (s *service) applyDelete(working *models.Board, resolver *Resolver, op *DeleteOp) (types.CardID, *models.Card, error) {
	if op.CardID == "" {
		return "", nil, ErrMissingCardID
	}
	cardID, err := resolver.ResolveID(op.CardID)
	if err != nil {
		return "", nil, err
	}
	card := working.Card(cardID)
	if card == nil {
		return cardID, nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}
	position.NewIndex(working).Remove(card)
	return cardID, nil, nil
}
