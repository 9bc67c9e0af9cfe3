package cli

import (
	"errors"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/services/batch"
	boardservice "github.com/tuckertucker/taskboard/internal/services/board"
	cardservice "github.com/tuckertucker/taskboard/internal/services/card"
	"github.com/tuckertucker/taskboard/internal/services/move"
	templateservice "github.com/tuckertucker/taskboard/internal/services/template"
)

// ExitCodeFor maps a service error to the command's exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, models.ErrBoardNotFound),
		errors.Is(err, models.ErrColumnNotFound),
		errors.Is(err, models.ErrCardNotFound),
		errors.Is(err, templateservice.ErrTemplateNotFound):
		return ExitNotFound
	case errors.Is(err, batch.ErrEmptyBatch),
		errors.Is(err, batch.ErrTooManyOperations),
		errors.Is(err, batch.ErrUnknownOperation),
		errors.Is(err, move.ErrInvalidPositionSpec),
		errors.Is(err, move.ErrUnknownKeyword),
		errors.Is(err, cardservice.ErrEmptyTitle),
		errors.Is(err, cardservice.ErrInvalidCardID),
		errors.Is(err, cardservice.ErrInvalidColumnID),
		errors.Is(err, cardservice.ErrInvalidPosition),
		errors.Is(err, boardservice.ErrEmptyName),
		errors.Is(err, boardservice.ErrEmptyColumnName),
		errors.Is(err, boardservice.ErrColumnNotEmpty),
		errors.Is(err, boardservice.ErrDuplicateColumn):
		return ExitValidation
	default:
		return ExitError
	}
}
