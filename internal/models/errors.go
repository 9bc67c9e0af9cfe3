package models

import "errors"

// Domain-specific errors shared across services
var (
	// ErrBoardNotFound indicates the requested board does not exist
	ErrBoardNotFound = errors.New("board not found")

	// ErrColumnNotFound indicates the referenced column does not exist on the board
	ErrColumnNotFound = errors.New("column not found")

	// ErrCardNotFound indicates the referenced card does not exist on the board
	ErrCardNotFound = errors.New("card not found")
)
