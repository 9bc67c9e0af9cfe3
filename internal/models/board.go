package models

import (
	"sort"
	"time"

	"github.com/tuckertucker/taskboard/internal/types"
)

// Board is the top-level document containing columns and cards.
// Cards are stored in a flat map keyed by id; columns hold no card pointers.
// Ordering within a column is derived from each card's Position field, which
// must stay dense (0..n-1, no gaps or duplicates) per column.
type Board struct {
	ID          types.BoardID            `json:"id"`
	Name        string                   `json:"name"`
	Columns     []*Column                `json:"columns"`
	Cards       map[types.CardID]*Card   `json:"cards"`
	CreatedAt   time.Time                `json:"created_at"`
	LastUpdated time.Time                `json:"last_updated"`
}

// NewBoard creates an empty board with the given id and name
func NewBoard(id types.BoardID, name string, now time.Time) *Board {
	return &Board{
		ID:          id,
		Name:        name,
		Columns:     []*Column{},
		Cards:       map[types.CardID]*Card{},
		CreatedAt:   now,
		LastUpdated: now,
	}
}

// Column returns the column with the given id, or nil if absent
func (b *Board) Column(id types.ColumnID) *Column {
	for _, c := range b.Columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Card returns the card with the given id, or nil if absent
func (b *Board) Card(id types.CardID) *Card {
	return b.Cards[id]
}

// CardsInColumn returns the column's cards ordered by position
func (b *Board) CardsInColumn(columnID types.ColumnID) []*Card {
	var cards []*Card
	for _, c := range b.Cards {
		if c.ColumnID == columnID {
			cards = append(cards, c)
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Position < cards[j].Position })
	return cards
}

// CountInColumn returns the number of cards in the column
func (b *Board) CountInColumn(columnID types.ColumnID) int {
	n := 0
	for _, c := range b.Cards {
		if c.ColumnID == columnID {
			n++
		}
	}
	return n
}

// Clone deep-copies the board for use as a batch working copy.
// The flat card map keeps this cheap and unambiguous: no cyclic
// column<->card pointers to chase.
func (b *Board) Clone() *Board {
	clone := &Board{
		ID:          b.ID,
		Name:        b.Name,
		Columns:     make([]*Column, len(b.Columns)),
		Cards:       make(map[types.CardID]*Card, len(b.Cards)),
		CreatedAt:   b.CreatedAt,
		LastUpdated: b.LastUpdated,
	}
	for i, col := range b.Columns {
		c := *col
		clone.Columns[i] = &c
	}
	for id, card := range b.Cards {
		clone.Cards[id] = card.Clone()
	}
	return clone
}
