package card

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/position"
	"github.com/tuckertucker/taskboard/internal/types"
)

func moveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <card-id>",
		Short: "Move a card",
		Long: `Move a card within its column or to another column. Position is a
zero-based index or one of the keywords first, last, up, down. The up and
down keywords only apply within the card's current column.

Examples:
  # Move to the top of its current column
  taskboard card move card-123 --board=9f1c2a7e-... --position=first

  # Move one slot down
  taskboard card move card-123 --board=9f1c2a7e-... --position=down

  # Move to another column at index 2
  taskboard card move card-123 --board=9f1c2a7e-... --column=col-456 --position=2
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("column", "", "Target column ID (default: card's current column)")
	cmd.Flags().String("position", "last", "Target position: index, first, last, up or down")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress confirmation output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetString("board")
	columnID, _ := cmd.Flags().GetString("column")
	rawPos, _ := cmd.Flags().GetString("position")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	spec, err := position.Parse(rawPos)
	if err != nil {
		_ = formatter.Error("INVALID_POSITION", err.Error())
		os.Exit(cli.ExitUsage)
	}

	c, owned, err := cli.FromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	if owned {
		defer closeCLI(c)
	}

	// Default to the card's current column when no target is given
	if columnID == "" {
		current, err := c.App.CardService.GetCard(ctx, types.BoardID(boardID), types.CardID(args[0]))
		if err != nil {
			_ = formatter.Error("MOVE_FAILED", err.Error())
			os.Exit(cli.ExitCodeFor(err))
		}
		columnID = string(current.ColumnID)
	}

	card, err := c.App.CardService.MoveCard(ctx, types.BoardID(boardID), types.CardID(args[0]), types.ColumnID(columnID), spec)
	if err != nil {
		_ = formatter.Error("MOVE_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	if quietMode {
		return nil
	}
	return formatter.Success(card)
}
