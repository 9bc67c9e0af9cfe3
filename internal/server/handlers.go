package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/tuckertucker/taskboard/internal/converters"
	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/position"
	"github.com/tuckertucker/taskboard/internal/services/batch"
	boardservice "github.com/tuckertucker/taskboard/internal/services/board"
	cardservice "github.com/tuckertucker/taskboard/internal/services/card"
	"github.com/tuckertucker/taskboard/internal/services/move"
	templateservice "github.com/tuckertucker/taskboard/internal/services/template"
	"github.com/tuckertucker/taskboard/internal/types"
)

// maxBodySize bounds request bodies; board documents are small
const maxBodySize = 1 << 20

type createBoardRequest struct {
	Name     string   `json:"name"`
	Columns  []string `json:"columns,omitempty"`
	Template string   `json:"template,omitempty"`
}

type columnRequest struct {
	Name string `json:"name"`
}

type createCardRequest struct {
	ColumnID     types.ColumnID `json:"columnId"`
	Title        string         `json:"title"`
	Content      string         `json:"content,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Dependencies []types.CardID `json:"dependencies,omitempty"`
	Subtasks     []string       `json:"subtasks,omitempty"`
	Position     *int           `json:"position,omitempty"`
}

type updateCardRequest struct {
	Title        *string         `json:"title,omitempty"`
	Content      *string         `json:"content,omitempty"`
	Tags         *[]string       `json:"tags,omitempty"`
	Dependencies *[]types.CardID `json:"dependencies,omitempty"`
	Subtasks     *[]string       `json:"subtasks,omitempty"`
}

type moveCardRequest struct {
	ColumnID types.ColumnID `json:"columnId"`
	Position position.Spec  `json:"position"`
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.app.BoardService.ListBoards(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var board *models.Board
	var err error
	if req.Template != "" {
		board, err = s.app.TemplateService.CreateBoard(r.Context(), req.Template, req.Name)
	} else {
		board, err = s.app.BoardService.CreateBoard(r.Context(), req.Name, req.Columns)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, converters.ToBoardView(board))
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := s.app.BoardService.GetBoard(r.Context(), types.BoardID(r.PathValue("boardID")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, converters.ToBoardView(board))
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := s.app.BoardService.DeleteBoard(r.Context(), types.BoardID(r.PathValue("boardID"))); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddColumn(w http.ResponseWriter, r *http.Request) {
	var req columnRequest
	if !decodeBody(w, r, &req) {
		return
	}
	column, err := s.app.BoardService.AddColumn(r.Context(), types.BoardID(r.PathValue("boardID")), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, column)
}

func (s *Server) handleRenameColumn(w http.ResponseWriter, r *http.Request) {
	var req columnRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := s.app.BoardService.RenameColumn(r.Context(),
		types.BoardID(r.PathValue("boardID")),
		types.ColumnID(r.PathValue("columnID")),
		req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteColumn(w http.ResponseWriter, r *http.Request) {
	err := s.app.BoardService.DeleteColumn(r.Context(),
		types.BoardID(r.PathValue("boardID")),
		types.ColumnID(r.PathValue("columnID")))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if !decodeBody(w, r, &req) {
		return
	}
	card, err := s.app.CardService.CreateCard(r.Context(), cardservice.CreateCardRequest{
		BoardID:      types.BoardID(r.PathValue("boardID")),
		ColumnID:     req.ColumnID,
		Title:        req.Title,
		Content:      req.Content,
		Tags:         req.Tags,
		Dependencies: req.Dependencies,
		Subtasks:     req.Subtasks,
		Position:     req.Position,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	card, err := s.app.CardService.GetCard(r.Context(),
		types.BoardID(r.PathValue("boardID")),
		types.CardID(r.PathValue("cardID")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	var req updateCardRequest
	if !decodeBody(w, r, &req) {
		return
	}
	card, err := s.app.CardService.UpdateCard(r.Context(), cardservice.UpdateCardRequest{
		BoardID:      types.BoardID(r.PathValue("boardID")),
		CardID:       types.CardID(r.PathValue("cardID")),
		Title:        req.Title,
		Content:      req.Content,
		Tags:         req.Tags,
		Dependencies: req.Dependencies,
		Subtasks:     req.Subtasks,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	err := s.app.CardService.DeleteCard(r.Context(),
		types.BoardID(r.PathValue("boardID")),
		types.CardID(r.PathValue("cardID")))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveCard(w http.ResponseWriter, r *http.Request) {
	var req moveCardRequest
	if !decodeBody(w, r, &req) {
		return
	}
	card, err := s.app.CardService.MoveCard(r.Context(),
		types.BoardID(r.PathValue("boardID")),
		types.CardID(r.PathValue("cardID")),
		req.ColumnID,
		req.Position)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, batch.CodeValidationError, err.Error())
		return
	}

	ops, err := converters.DecodeOperations(raw)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, batch.CodeValidationError, err.Error())
		return
	}

	result, err := s.app.BatchService.Apply(r.Context(), types.BoardID(r.PathValue("boardID")), ops)
	if err != nil {
		writeError(w, err)
		return
	}

	for _, opResult := range result.Results {
		outcome := "success"
		if !opResult.Success {
			outcome = "failure"
		}
		batchOperationsTotal.WithLabelValues(string(opResult.Type), outcome).Inc()
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.app.TemplateService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

// decodeBody decodes a JSON request body, writing a 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		writeErrorCode(w, http.StatusBadRequest, batch.CodeValidationError, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP status codes and the wire error shape
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrBoardNotFound),
		errors.Is(err, models.ErrColumnNotFound),
		errors.Is(err, models.ErrCardNotFound),
		errors.Is(err, templateservice.ErrTemplateNotFound):
		status = http.StatusNotFound
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
		errors.Is(err, boardservice.ErrInvalidBoardID),
		errors.Is(err, boardservice.ErrInvalidColumnID),
		errors.Is(err, boardservice.ErrColumnNotEmpty),
		errors.Is(err, boardservice.ErrDuplicateColumn):
		status = http.StatusBadRequest
	}
	writeErrorCode(w, status, batch.ErrorCode(err), err.Error())
}

func writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
