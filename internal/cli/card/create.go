package card

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	cardservice "github.com/tuckertucker/taskboard/internal/services/card"
	"github.com/tuckertucker/taskboard/internal/types"
)

func createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a card",
		Long: `Create a card in a column. Without --position the card is appended
at the end of the column.

Examples:
  taskboard card create --board=9f1c2a7e-... --column=col-123 --title="Fix login bug"
  taskboard card create --board=9f1c2a7e-... --column=col-123 --title="Fix login bug" \
    --content="Session cookie expires early" --tags="bug,auth" --position=0
  CARD_ID=$(taskboard card create --board=$BOARD --column=$COL --title="Fix login bug" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("title", "", "Card title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("content", "", "Card content (markdown)")
	cmd.Flags().String("tags", "", "Comma-separated tags")
	cmd.Flags().String("dependencies", "", "Comma-separated card IDs this card depends on")
	cmd.Flags().String("subtasks", "", "Comma-separated subtasks")
	cmd.Flags().Int("position", -1, "Insert position within the column (default append)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetString("board")
	columnID, _ := cmd.Flags().GetString("column")
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	tags, _ := cmd.Flags().GetString("tags")
	dependencies, _ := cmd.Flags().GetString("dependencies")
	subtasks, _ := cmd.Flags().GetString("subtasks")
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

	req := cardservice.CreateCardRequest{
		BoardID:  types.BoardID(boardID),
		ColumnID: types.ColumnID(columnID),
		Title:    title,
		Content:  content,
		Tags:     splitList(tags),
		Subtasks: splitList(subtasks),
	}
	for _, dep := range splitList(dependencies) {
		req.Dependencies = append(req.Dependencies, types.CardID(dep))
	}
	if cmd.Flags().Changed("position") {
		pos, _ := cmd.Flags().GetInt("position")
		req.Position = &pos
	}

	card, err := c.App.CardService.CreateCard(ctx, req)
	if err != nil {
		_ = formatter.Error("CREATE_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	if quietMode {
		cmd.Println(card.ID)
		return nil
	}
	return formatter.Success(card)
}
