package card

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/cli/styles"
	"github.com/tuckertucker/taskboard/internal/types"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a card",
		Long: `Show one card with its content, tags, dependencies and subtasks.

Examples:
  taskboard card show card-123 --board=9f1c2a7e-...
  taskboard card show card-123 --board=9f1c2a7e-... --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetString("board")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	c, owned, err := cli.FromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	if owned {
		defer closeCLI(c)
	}

	card, err := c.App.CardService.GetCard(ctx, types.BoardID(boardID), types.CardID(args[0]))
	if err != nil {
		_ = formatter.Error("SHOW_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	if jsonOutput {
		return formatter.Success(card)
	}

	cmd.Printf("%s %s\n", styles.Title.Render(card.Title), styles.Subtle.Render(string(card.ID)))
	cmd.Printf("Column: %s, position %d\n", card.ColumnID, card.Position)
	if card.Content != "" {
		cmd.Println()
		cmd.Println(card.Content)
	}
	if len(card.Tags) > 0 {
		cmd.Printf("Tags: %s\n", strings.Join(card.Tags, ", "))
	}
	if len(card.Dependencies) > 0 {
		deps := make([]string, len(card.Dependencies))
		for i, dep := range card.Dependencies {
			deps[i] = string(dep)
		}
		cmd.Printf("Depends on: %s\n", strings.Join(deps, ", "))
	}
	for _, sub := range card.Subtasks {
		cmd.Printf("  - %s\n", sub)
	}
	return nil
}
