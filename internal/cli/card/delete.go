package card

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/types"
)

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card",
		Long: `Delete a card. The remaining cards in its column close the gap.

Examples:
  taskboard card delete card-123 --board=9f1c2a7e-...
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress confirmation output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := c.App.CardService.DeleteCard(ctx, types.BoardID(boardID), types.CardID(args[0])); err != nil {
		_ = formatter.Error("DELETE_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	formatter.Message("Card deleted")
	return nil
}
