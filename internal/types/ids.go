package types

import "github.com/google/uuid"

// ID type aliases provide semantic meaning and reduce repetitive string
// conversions. They document what each identifier represents in the domain
// model and keep function signatures honest about which id they expect.

// BoardID identifies a board document
type BoardID string

// ColumnID identifies a column within a board
type ColumnID string

// CardID identifies a card within a board
type CardID string

// IDGenerator produces new unique card ids. Batch and card services take one
// as an explicit dependency so tests can supply deterministic ids.
type IDGenerator func() CardID

// NewBoardID returns a fresh random board id
func NewBoardID() BoardID {
	return BoardID(uuid.NewString())
}

// NewColumnID returns a fresh random column id
func NewColumnID() ColumnID {
	return ColumnID(uuid.NewString())
}

// NewCardID returns a fresh random card id
func NewCardID() CardID {
	return CardID(uuid.NewString())
}

func (id BoardID) String() string  { return string(id) }
func (id ColumnID) String() string { return string(id) }
func (id CardID) String() string   { return string(id) }
