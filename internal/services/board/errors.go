package board

import "errors"

// Board-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("board name cannot be empty")
	ErrEmptyColumnName = errors.New("column name cannot be empty")
	ErrInvalidBoardID  = errors.New("invalid board ID")
	ErrInvalidColumnID = errors.New("invalid column ID")

	// Business logic errors
	ErrColumnNotEmpty  = errors.New("column still holds cards")
	ErrDuplicateColumn = errors.New("column with that name already exists")
)
