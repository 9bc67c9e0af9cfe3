package card

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	cardservice "github.com/tuckertucker/taskboard/internal/services/card"
	"github.com/tuckertucker/taskboard/internal/types"
)

func updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <card-id>",
		Short: "Update a card's fields",
		Long: `Update a card. Only the flags you pass are changed; moving a card
between columns is "card move", not an update.

Examples:
  taskboard card update card-123 --board=9f1c2a7e-... --title="Fix login bug (prod)"
  taskboard card update card-123 --board=9f1c2a7e-... --tags="bug,auth,urgent"
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("content", "", "New content")
	cmd.Flags().String("tags", "", "Comma-separated tags (replaces existing)")
	cmd.Flags().String("dependencies", "", "Comma-separated card IDs (replaces existing)")
	cmd.Flags().String("subtasks", "", "Comma-separated subtasks (replaces existing)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress confirmation output")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetString("board")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, owned, err := cli.FromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	if owned {
		defer closeCLI(c)
	}

	req := cardservice.UpdateCardRequest{
		BoardID: types.BoardID(boardID),
		CardID:  types.CardID(args[0]),
	}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("content") {
		content, _ := cmd.Flags().GetString("content")
		req.Content = &content
	}
	if cmd.Flags().Changed("tags") {
		raw, _ := cmd.Flags().GetString("tags")
		tags := splitList(raw)
		req.Tags = &tags
	}
	if cmd.Flags().Changed("dependencies") {
		raw, _ := cmd.Flags().GetString("dependencies")
		var deps []types.CardID
		for _, dep := range splitList(raw) {
			deps = append(deps, types.CardID(dep))
		}
		req.Dependencies = &deps
	}
	if cmd.Flags().Changed("subtasks") {
		raw, _ := cmd.Flags().GetString("subtasks")
		subtasks := splitList(raw)
		req.Subtasks = &subtasks
	}

	card, err := c.App.CardService.UpdateCard(ctx, req)
	if err != nil {
		_ = formatter.Error("UPDATE_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	if quietMode {
		return nil
	}
	return formatter.Success(card)
}
