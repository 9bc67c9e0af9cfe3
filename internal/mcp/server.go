// Package mcp exposes the board services to AI agents over the Model Context
// Protocol. This is the composition root: it creates the MCP server, registers
// every tool, and owns no business logic of its own.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/tuckertucker/taskboard/internal/app"
)

// Version is set at build time via ldflags
var Version = "dev"

// New creates and configures the MCP server with all tools registered
func New(application *app.App) *server.MCPServer {
	s := server.NewMCPServer(
		"taskboard",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	listBoards := NewListBoardsTool(application.BoardService)
	s.AddTool(listBoards.Definition(), listBoards.Handle)

	getBoard := NewGetBoardTool(application.BoardService)
	s.AddTool(getBoard.Definition(), getBoard.Handle)

	createBoard := NewCreateBoardTool(application.BoardService, application.TemplateService)
	s.AddTool(createBoard.Definition(), createBoard.Handle)

	createCard := NewCreateCardTool(application.CardService)
	s.AddTool(createCard.Definition(), createCard.Handle)

	updateCard := NewUpdateCardTool(application.CardService)
	s.AddTool(updateCard.Definition(), updateCard.Handle)

	moveCard := NewMoveCardTool(application.CardService)
	s.AddTool(moveCard.Definition(), moveCard.Handle)

	deleteCard := NewDeleteCardTool(application.CardService)
	s.AddTool(deleteCard.Definition(), deleteCard.Handle)

	batchCards := NewBatchCardsTool(application.BatchService)
	s.AddTool(batchCards.Definition(), batchCards.Handle)

	return s
}

// Serve runs the MCP server over stdio until the client disconnects
func Serve(_ context.Context, s *server.MCPServer) error {
	return server.ServeStdio(s)
}

const serverInstructions = `TaskBoard is a kanban board backend: boards hold
columns, columns hold ordered cards. Use get_board to inspect state before
mutating. Card positions are zero-based and dense within each column. For
multiple changes to one board, prefer batch_cards: it applies the operations
in order and lets later operations reference cards created earlier in the
same batch via $ref:<reference>.`
