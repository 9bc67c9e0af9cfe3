package card

import "errors"

// Card-related validation errors
var (
	ErrEmptyTitle      = errors.New("card title cannot be empty")
	ErrInvalidCardID   = errors.New("invalid card ID")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrInvalidPosition = errors.New("invalid position: must be >= 0")
)
