package webhooks

import (
	"time"

	"github.com/tuckertucker/taskboard/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardCreated EventType = "board.created"
	EventBoardUpdated EventType = "board.updated"
	EventBoardDeleted EventType = "board.deleted"
	EventCardCreated  EventType = "card.created"
	EventCardUpdated  EventType = "card.updated"
	EventCardMoved    EventType = "card.moved"
	EventCardDeleted  EventType = "card.deleted"
	EventBatchApplied EventType = "batch.applied"
)

// Event is the payload delivered to each configured webhook endpoint
type Event struct {
	Type      EventType     `json:"type"`
	BoardID   types.BoardID `json:"boardId"`
	CardID    types.CardID  `json:"cardId,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
