package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tuckertucker/taskboard/internal/converters"
	"github.com/tuckertucker/taskboard/internal/position"
	"github.com/tuckertucker/taskboard/internal/services/batch"
	boardservice "github.com/tuckertucker/taskboard/internal/services/board"
	cardservice "github.com/tuckertucker/taskboard/internal/services/card"
	templateservice "github.com/tuckertucker/taskboard/internal/services/template"
	"github.com/tuckertucker/taskboard/internal/types"
)

// jsonResult renders v as a JSON tool result
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errResult renders a domain error as a tool error result.
// Tool handlers return domain failures in-band so the agent can react;
// the error return is reserved for protocol-level problems.
func errResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// ListBoardsTool lists all boards
type ListBoardsTool struct {
	boards boardservice.Service
}

func NewListBoardsTool(boards boardservice.Service) *ListBoardsTool {
	return &ListBoardsTool{boards: boards}
}

func (t *ListBoardsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_boards",
		mcp.WithDescription("List all kanban boards with card counts."),
	)
}

func (t *ListBoardsTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := t.boards.ListBoards(ctx)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(summaries)
}

// GetBoardTool returns one board with columns and ordered cards
type GetBoardTool struct {
	boards boardservice.Service
}

func NewGetBoardTool(boards boardservice.Service) *GetBoardTool {
	return &GetBoardTool{boards: boards}
}

func (t *GetBoardTool) Definition() mcp.Tool {
	return mcp.NewTool("get_board",
		mcp.WithDescription("Get a board with its columns and cards in position order."),
		mcp.WithString("boardId", mcp.Required(), mcp.Description("Board id")),
	)
}

func (t *GetBoardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireString("boardId")
	if err != nil {
		return errResult(err)
	}
	board, err := t.boards.GetBoard(ctx, types.BoardID(boardID))
	if err != nil {
		return errResult(err)
	}
	return jsonResult(converters.ToBoardView(board))
}

// CreateBoardTool creates a board from explicit columns or a template
type CreateBoardTool struct {
	boards    boardservice.Service
	templates templateservice.Service
}

func NewCreateBoardTool(boards boardservice.Service, templates templateservice.Service) *CreateBoardTool {
	return &CreateBoardTool{boards: boards, templates: templates}
}

func (t *CreateBoardTool) Definition() mcp.Tool {
	return mcp.NewTool("create_board",
		mcp.WithDescription("Create a new board. Provide comma-separated column names, or a template name (kanban, scrum, simple)."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Board name")),
		mcp.WithString("columns", mcp.Description("Comma-separated column names")),
		mcp.WithString("template", mcp.Description("Template name to instantiate")),
	)
}

func (t *CreateBoardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return errResult(err)
	}

	if template := req.GetString("template", ""); template != "" {
		board, err := t.templates.CreateBoard(ctx, template, name)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(converters.ToBoardView(board))
	}

	var columns []string
	for _, col := range strings.Split(req.GetString("columns", ""), ",") {
		if col = strings.TrimSpace(col); col != "" {
			columns = append(columns, col)
		}
	}
	board, err := t.boards.CreateBoard(ctx, name, columns)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(converters.ToBoardView(board))
}

// CreateCardTool adds one card to a column
type CreateCardTool struct {
	cards cardservice.Service
}

func NewCreateCardTool(cards cardservice.Service) *CreateCardTool {
	return &CreateCardTool{cards: cards}
}

func (t *CreateCardTool) Definition() mcp.Tool {
	return mcp.NewTool("create_card",
		mcp.WithDescription("Create a card in a column. Appends to the end unless a position is given."),
		mcp.WithString("boardId", mcp.Required(), mcp.Description("Board id")),
		mcp.WithString("columnId", mcp.Required(), mcp.Description("Target column id")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Card title")),
		mcp.WithString("content", mcp.Description("Card body, markdown allowed")),
		mcp.WithNumber("position", mcp.Description("Zero-based position; omitted means append")),
	)
}

func (t *CreateCardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireString("boardId")
	if err != nil {
		return errResult(err)
	}
	columnID, err := req.RequireString("columnId")
	if err != nil {
		return errResult(err)
	}
	title, err := req.RequireString("title")
	if err != nil {
		return errResult(err)
	}

	createReq := cardservice.CreateCardRequest{
		BoardID:  types.BoardID(boardID),
		ColumnID: types.ColumnID(columnID),
		Title:    title,
		Content:  req.GetString("content", ""),
	}
	if pos := req.GetInt("position", -1); pos >= 0 {
		createReq.Position = &pos
	}

	card, err := t.cards.CreateCard(ctx, createReq)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(card)
}

// UpdateCardTool changes a card's title or content
type UpdateCardTool struct {
	cards cardservice.Service
}

func NewUpdateCardTool(cards cardservice.Service) *UpdateCardTool {
	return &UpdateCardTool{cards: cards}
}

func (t *UpdateCardTool) Definition() mcp.Tool {
	return mcp.NewTool("update_card",
		mcp.WithDescription("Update a card's title and/or content. Column changes go through move_card."),
		mcp.WithString("boardId", mcp.Required(), mcp.Description("Board id")),
		mcp.WithString("cardId", mcp.Required(), mcp.Description("Card id")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("content", mcp.Description("New content")),
	)
}

func (t *UpdateCardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireString("boardId")
	if err != nil {
		return errResult(err)
	}
	cardID, err := req.RequireString("cardId")
	if err != nil {
		return errResult(err)
	}

	updateReq := cardservice.UpdateCardRequest{
		BoardID: types.BoardID(boardID),
		CardID:  types.CardID(cardID),
	}
	if title := req.GetString("title", ""); title != "" {
		updateReq.Title = &title
	}
	if content := req.GetString("content", ""); content != "" {
		updateReq.Content = &content
	}

	card, err := t.cards.UpdateCard(ctx, updateReq)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(card)
}

// MoveCardTool relocates one card
type MoveCardTool struct {
	cards cardservice.Service
}

func NewMoveCardTool(cards cardservice.Service) *MoveCardTool {
	return &MoveCardTool{cards: cards}
}

func (t *MoveCardTool) Definition() mcp.Tool {
	return mcp.NewTool("move_card",
		mcp.WithDescription("Move a card to a column and position. Position is a zero-based index or one of first|last|up|down; up/down only apply within the card's current column."),
		mcp.WithString("boardId", mcp.Required(), mcp.Description("Board id")),
		mcp.WithString("cardId", mcp.Required(), mcp.Description("Card id")),
		mcp.WithString("columnId", mcp.Required(), mcp.Description("Target column id")),
		mcp.WithString("position", mcp.Required(), mcp.Description("Index or first|last|up|down")),
	)
}

func (t *MoveCardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireString("boardId")
	if err != nil {
		return errResult(err)
	}
	cardID, err := req.RequireString("cardId")
	if err != nil {
		return errResult(err)
	}
	columnID, err := req.RequireString("columnId")
	if err != nil {
		return errResult(err)
	}
	rawSpec, err := req.RequireString("position")
	if err != nil {
		return errResult(err)
	}
	spec, err := position.Parse(rawSpec)
	if err != nil {
		return errResult(err)
	}

	card, err := t.cards.MoveCard(ctx, types.BoardID(boardID), types.CardID(cardID), types.ColumnID(columnID), spec)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(card)
}

// DeleteCardTool removes one card
type DeleteCardTool struct {
	cards cardservice.Service
}

func NewDeleteCardTool(cards cardservice.Service) *DeleteCardTool {
	return &DeleteCardTool{cards: cards}
}

func (t *DeleteCardTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_card",
		mcp.WithDescription("Delete a card. Remaining cards in its column close the gap."),
		mcp.WithString("boardId", mcp.Required(), mcp.Description("Board id")),
		mcp.WithString("cardId", mcp.Required(), mcp.Description("Card id")),
	)
}

func (t *DeleteCardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireString("boardId")
	if err != nil {
		return errResult(err)
	}
	cardID, err := req.RequireString("cardId")
	if err != nil {
		return errResult(err)
	}
	if err := t.cards.DeleteCard(ctx, types.BoardID(boardID), types.CardID(cardID)); err != nil {
		return errResult(err)
	}
	return jsonResult(map[string]any{"deleted": cardID})
}

// BatchCardsTool applies a list of operations as one unit of work
type BatchCardsTool struct {
	batches batch.Service
}

func NewBatchCardsTool(batches batch.Service) *BatchCardsTool {
	return &BatchCardsTool{batches: batches}
}

func (t *BatchCardsTool) Definition() mcp.Tool {
	return mcp.NewTool("batch_cards",
		mcp.WithDescription(`Apply a JSON array of operations to one board in order. Each operation carries a "type" of create|update|move|delete. A create may set "reference"; later operations can use "$ref:<reference>" wherever a card id is expected. Failed operations are reported per result and do not stop the rest.`),
		mcp.WithString("boardId", mcp.Required(), mcp.Description("Board id")),
		mcp.WithString("operations", mcp.Required(), mcp.Description("JSON array of operations")),
	)
}

func (t *BatchCardsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireString("boardId")
	if err != nil {
		return errResult(err)
	}
	rawOps, err := req.RequireString("operations")
	if err != nil {
		return errResult(err)
	}

	ops, err := converters.DecodeOperations([]byte(rawOps))
	if err != nil {
		return errResult(err)
	}

	result, err := t.batches.Apply(ctx, types.BoardID(boardID), ops)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(result)
}
