package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuckertucker/taskboard/internal/app"
	"github.com/tuckertucker/taskboard/internal/converters"
	"github.com/tuckertucker/taskboard/internal/services/batch"
	"github.com/tuckertucker/taskboard/internal/store"
)

// setupApp builds the application container over a temp file store
func setupApp(t *testing.T) *app.App {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return app.New(st, app.WithTemplatesDir(t.TempDir()))
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// textOf extracts the text payload from a tool result
func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestCreateBoardToolWithTemplate(t *testing.T) {
	application := setupApp(t)
	tool := NewCreateBoardTool(application.BoardService, application.TemplateService)

	result, err := tool.Handle(context.Background(), callReq(map[string]any{
		"name":     "Sprint",
		"template": "kanban",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, textOf(t, result))

	var view converters.BoardView
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &view))
	assert.Equal(t, "Sprint", view.Name)
	assert.Len(t, view.Columns, 3)
}

func TestCreateBoardToolWithColumns(t *testing.T) {
	application := setupApp(t)
	tool := NewCreateBoardTool(application.BoardService, application.TemplateService)

	result, err := tool.Handle(context.Background(), callReq(map[string]any{
		"name":    "Custom",
		"columns": "One, Two ,Three",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, textOf(t, result))

	var view converters.BoardView
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &view))
	require.Len(t, view.Columns, 3)
	assert.Equal(t, "Two", view.Columns[1].Name)
}

func TestGetBoardToolUnknownBoard(t *testing.T) {
	application := setupApp(t)
	tool := NewGetBoardTool(application.BoardService)

	result, err := tool.Handle(context.Background(), callReq(map[string]any{"boardId": "ghost"}))
	require.NoError(t, err, "domain errors stay in-band")
	assert.True(t, result.IsError)
}

func TestBatchCardsTool(t *testing.T) {
	application := setupApp(t)
	ctx := context.Background()

	board, err := application.BoardService.CreateBoard(ctx, "Sprint", []string{"Todo", "Done"})
	require.NoError(t, err)

	ops := []map[string]any{
		{"type": "create", "reference": "t1", "columnId": board.Columns[0].ID,
			"data": map[string]any{"title": "Design"}},
		{"type": "move", "cardId": "$ref:t1", "columnId": board.Columns[1].ID, "position": "first"},
	}
	rawOps, err := json.Marshal(ops)
	require.NoError(t, err)

	tool := NewBatchCardsTool(application.BatchService)
	result, err := tool.Handle(ctx, callReq(map[string]any{
		"boardId":    string(board.ID),
		"operations": string(rawOps),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, textOf(t, result))

	var batchResult batch.Result
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &batchResult))
	assert.True(t, batchResult.Success)
	assert.Contains(t, batchResult.ReferenceMap, "t1")
}

func TestBatchCardsToolRejectsBadOperations(t *testing.T) {
	application := setupApp(t)
	tool := NewBatchCardsTool(application.BatchService)

	result, err := tool.Handle(context.Background(), callReq(map[string]any{
		"boardId":    "board-1",
		"operations": `[{"type": "archive"}]`,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestToolsRequireArguments(t *testing.T) {
	application := setupApp(t)

	getBoard := NewGetBoardTool(application.BoardService)
	result, err := getBoard.Handle(context.Background(), callReq(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	deleteCard := NewDeleteCardTool(application.CardService)
	result, err = deleteCard.Handle(context.Background(), callReq(map[string]any{"boardId": "b"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
