package batch

import (
	"errors"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/services/move"
)

// MaxOperations is the documented cap on operations per batch.
// Exceeding it is a validation error raised before any processing begins.
const MaxOperations = 100

// Batch-related errors
var (
	// Validation errors
	ErrEmptyBatch           = errors.New("batch must contain at least one operation")
	ErrTooManyOperations    = errors.New("batch exceeds the maximum operation count")
	ErrUnknownOperation     = errors.New("unknown operation type")
	ErrEmptyTitle           = errors.New("card title cannot be empty")
	ErrMissingColumn        = errors.New("operation requires a columnId")
	ErrMissingCardID        = errors.New("operation requires a cardId")
	ErrColumnChangeOnUpdate = errors.New("update cannot change a card's column: use a move operation")

	// ErrUnresolvedReference indicates a $ref: token whose reference was not
	// declared by an earlier create operation in the same batch
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// Wire error codes surfaced in operation results and API responses
const (
	CodeBoardNotFound       = "BOARD_NOT_FOUND"
	CodeColumnNotFound      = "COLUMN_NOT_FOUND"
	CodeCardNotFound        = "CARD_NOT_FOUND"
	CodeInvalidPositionSpec = "INVALID_POSITION_SPEC"
	CodeUnresolvedReference = "UNRESOLVED_REFERENCE"
	CodeBatchTooLarge       = "BATCH_TOO_LARGE"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeOperationFailed     = "OPERATION_FAILED"
)

// ErrorCode maps an error to its wire code
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrBoardNotFound):
		return CodeBoardNotFound
	case errors.Is(err, models.ErrColumnNotFound):
		return CodeColumnNotFound
	case errors.Is(err, models.ErrCardNotFound):
		return CodeCardNotFound
	case errors.Is(err, move.ErrInvalidPositionSpec), errors.Is(err, move.ErrUnknownKeyword):
		return CodeInvalidPositionSpec
	case errors.Is(err, ErrUnresolvedReference):
		return CodeUnresolvedReference
	case errors.Is(err, ErrTooManyOperations):
		return CodeBatchTooLarge
	case errors.Is(err, ErrEmptyBatch),
		errors.Is(err, ErrUnknownOperation),
		errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrMissingColumn),
		errors.Is(err, ErrMissingCardID),
		errors.Is(err, ErrColumnChangeOnUpdate):
		return CodeValidationError
	default:
		return CodeOperationFailed
	}
}
